package render

import (
	"encoding/hex"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"contactplot/internal/domain"
)

const (
	barWidth   = 40.0
	barSlot    = 60.0
	plotHeight = 360.0
)

var defaultBar = color.NRGBA{0x4c, 0x72, 0xb0, 0xff}

// newDomainChart lays out one bar per domain, in the given order, filled
// with the domain colour.
func newDomainChart(counts []domain.DomainCount, labels domain.ChartLabels, tf font.Typeface) (*plot.Plot, vg.Length, vg.Length, error) {
	p := plot.New()
	styleTexts(p, tf)
	p.Title.Text = heading(labels.Title, labels.Subtitle)
	p.Y.Label.Text = labels.YLabel

	lines := plotter.NewGrid()
	lines.Vertical.Color = nil
	p.Add(lines)

	names := make([]string, len(counts))
	tops := make(plotter.XYs, len(counts))
	values := make([]string, len(counts))
	highest := 0
	for i, dc := range counts {
		bar, err := plotter.NewBarChart(plotter.Values{float64(dc.Count)}, vg.Points(barWidth))
		if err != nil {
			return nil, 0, 0, err
		}
		bar.XMin = float64(i)
		bar.Color = defaultBar
		if col, ok := parseHex(dc.Domain.Color); ok {
			bar.Color = col
		}
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)

		names[i] = dc.Domain.Name
		tops[i] = plotter.XY{X: float64(i), Y: float64(dc.Count)}
		values[i] = strconv.Itoa(dc.Count)
		highest = max(highest, dc.Count)
	}

	lb, err := plotter.NewLabels(plotter.XYLabels{XYs: tops, Labels: values})
	if err != nil {
		return nil, 0, 0, err
	}
	for i := range lb.TextStyle {
		setFont(&lb.TextStyle[i], tf, annotSize, false)
		lb.TextStyle[i].XAlign = text.XCenter
	}
	lb.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(lb)

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YTop
	p.Y.Min = 0
	p.Y.Max = math.Max(1, float64(highest)*1.1)
	p.Y.Tick.Marker = plot.TickerFunc(integerTicks)

	nameW := maxWidth(p.X.Tick.Label, names) * vg.Length(math.Sin(math.Pi/4))
	width := 2*vg.Points(margin) + vg.Points(60) + vg.Length(len(counts))*vg.Points(barSlot)
	width = max(width, nameW+vg.Points(margin), p.Title.TextStyle.Width(p.Title.Text)+2*vg.Points(margin))
	height := p.Title.TextStyle.Height(p.Title.Text) + vg.Points(plotHeight) + nameW + 2*vg.Points(margin)
	return p, width, height, nil
}

// integerTicks keeps the default tick marks that fall on whole counts.
func integerTicks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if t.Value != math.Trunc(t.Value) {
			continue
		}
		if t.Label != "" {
			t.Label = strconv.FormatFloat(t.Value, 'f', 0, 64)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// parseHex reads "#rrggbb".
func parseHex(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}, true
}
