package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// goTypeface names the embedded Go fonts in the plot font cache.
const goTypeface font.Typeface = "Go"

var (
	goOnce sync.Once
	goErr  error
)

// typeface registers the faces the plots are drawn with and returns their
// name: the embedded Go fonts, or the TrueType file at path for both weights.
// Text is measured and drawn with the same faces whatever the format.
func typeface(path string) (font.Typeface, error) {
	if path == "" {
		goOnce.Do(func() { goErr = register(goTypeface, goregular.TTF, gobold.TTF) })
		return goTypeface, goErr
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read font: %w", err)
	}
	name := font.Typeface(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err := register(name, b, b); err != nil {
		return "", err
	}
	return name, nil
}

func register(name font.Typeface, regularTTF, boldTTF []byte) error {
	regular, err := opentype.Parse(regularTTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	bold, err := opentype.Parse(boldTTF)
	if err != nil {
		return fmt.Errorf("parse bold font: %w", err)
	}
	font.DefaultCache.Add(font.Collection{
		{Font: font.Font{Typeface: name}, Face: regular},
		{Font: font.Font{Typeface: name, Weight: xfont.WeightBold}, Face: bold},
	})
	return nil
}

// setFont points st at tf with the given size and weight.
func setFont(st *text.Style, tf font.Typeface, size float64, bold bool) {
	st.Font = font.Font{Typeface: tf, Size: vg.Points(size)}
	if bold {
		st.Font.Weight = xfont.WeightBold
	}
}
