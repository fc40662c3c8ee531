package render

import (
	"image/color"
	"math"
	"testing"

	"contactplot/internal/domain"
)

func TestColorRange(t *testing.T) {
	lo, hi := colorRange(domain.Matrix{Min: 2, Max: 5})
	if lo != 2 || hi != 5 {
		t.Fatalf("range = %v..%v", lo, hi)
	}
	lo, hi = colorRange(domain.Matrix{Min: 3, Max: 3})
	if lo != 2.5 || hi != 3.5 {
		t.Fatalf("flat range = %v..%v", lo, hi)
	}
}

func TestPaletteIndex(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{10, 255},
		{5, 128},
		{-1, 0},
		{11, 255},
	}
	for _, c := range cases {
		if got := paletteIndex(c.v, 0, 10, 256); got != c.want {
			t.Errorf("paletteIndex(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestSample_Bounds(t *testing.T) {
	cm := metricColorMap(1.5, 4.25)
	pal, err := sample(cm, paletteSize)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(pal) != paletteSize {
		t.Fatalf("len = %d", len(pal))
	}
}

func TestGrid_MissingCellIsNaN(t *testing.T) {
	m := domain.Matrix{
		Ordinates: domain.Axis{Positions: []domain.Position{1, 2}, Labels: []string{"1ALA", "2GLY"}},
		Abscissas: domain.Axis{Positions: []domain.Position{7}, Labels: []string{"7SER"}},
		Cells:     map[domain.CellKey]domain.Cell{{Ordinate: 1, Abscissa: 7}: {Value: 3}},
	}
	g := grid{m: m}
	// first ordinate is the top row
	if v := g.Z(0, 1); v != 3 {
		t.Fatalf("Z(0,1) = %v", v)
	}
	if v := g.Z(0, 0); !math.IsNaN(v) {
		t.Fatalf("Z(0,0) = %v, want NaN", v)
	}
}

func TestIntegerTicks(t *testing.T) {
	for _, tk := range integerTicks(0, 3.3) {
		if tk.Value != math.Trunc(tk.Value) {
			t.Fatalf("fractional tick %v", tk.Value)
		}
	}
}

func TestParseHex(t *testing.T) {
	if c, ok := parseHex("#1f77b4"); !ok || c != (color.NRGBA{0x1f, 0x77, 0xb4, 0xff}) {
		t.Fatalf("parseHex = %v %v", c, ok)
	}
	for _, bad := range []string{"", "#fff", "#zzzzzz"} {
		if _, ok := parseHex(bad); ok {
			t.Errorf("parseHex(%q) accepted", bad)
		}
	}
}

func TestReadableOn(t *testing.T) {
	if readableOn(color.Black) != color.White || readableOn(color.White) != color.Black {
		t.Fatal("annotation ink does not contrast")
	}
}
