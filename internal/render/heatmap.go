package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"contactplot/internal/domain"
)

const (
	titleSize     = 14.0
	axisTitleSize = 12.0
	tickSize      = 9.0
	annotSize     = 8.0

	// cell edge in points
	baseCell     = 18.0
	minCell      = 8.0
	cellsAtBase  = 60
	annotMinCell = 14.0

	paletteSize = 256
	colorbarW   = 90.0
	margin      = 24.0
)

// grid exposes a Matrix as a plotter.GridXYZ. Column c is abscissa c; grid
// row 0 is the last ordinate so the first ordinate is drawn at the top.
type grid struct {
	m      domain.Matrix
	lo, hi float64
}

func (g grid) Dims() (c, r int) { return g.m.Abscissas.Len(), g.m.Ordinates.Len() }

// Z is NaN for residue pairs without contact, which the heat map leaves blank.
func (g grid) Z(c, r int) float64 {
	cell, ok := g.m.At(g.ordinate(r), c)
	if !ok {
		return math.NaN()
	}
	return cell.Value
}

func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }
func (g grid) Min() float64    { return g.lo }
func (g grid) Max() float64    { return g.hi }

func (g grid) ordinate(r int) int { return g.m.Ordinates.Len() - 1 - r }

// colorRange returns the metric range of the colour scale. A flat range is
// widened so every cell maps to the middle colour.
func colorRange(m domain.Matrix) (float64, float64) {
	if m.Max > m.Min {
		return m.Min, m.Max
	}
	return m.Min - 0.5, m.Max + 0.5
}

func metricColorMap(lo, hi float64) palette.ColorMap {
	cm := moreland.ExtendedBlackBody()
	cm.SetMax(hi)
	cm.SetMin(lo)
	return cm
}

// colors is a fixed palette.Palette.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// sample takes n evenly spaced colours from cm, minimum first.
func sample(cm palette.ColorMap, n int) (colors, error) {
	lo, hi := cm.Min(), cm.Max()
	out := make(colors, n)
	for i := range out {
		v := math.Min(hi, lo+(hi-lo)*float64(i)/float64(n-1))
		c, err := cm.At(v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// paletteIndex mirrors the colour lookup of plotter.HeatMap.
func paletteIndex(v, lo, hi float64, n int) int {
	i := int((v-lo)*float64(n-1)/(hi-lo) + 0.5)
	return min(max(i, 0), n-1)
}

func readableOn(bg color.Color) color.Color {
	n := color.NRGBAModel.Convert(bg).(color.NRGBA)
	lum := 0.2126*float64(n.R) + 0.7152*float64(n.G) + 0.0722*float64(n.B)
	if lum < 128 {
		return color.White
	}
	return color.Black
}

// cellSize shrinks cells for large matrices.
func cellSize(m domain.Matrix) float64 {
	n := max(m.Ordinates.Len(), m.Abscissas.Len())
	if n <= cellsAtBase {
		return baseCell
	}
	return math.Max(minCell, baseCell*float64(cellsAtBase)/float64(n))
}

// indexTicks labels the whole grid coordinates in [min, max]; label maps a
// coordinate to its index in labels.
func indexTicks(labels []string, label func(int) int) plot.Ticker {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for v := int(math.Ceil(min)); v <= int(math.Floor(max)); v++ {
			if i := label(v); i >= 0 && i < len(labels) {
				ticks = append(ticks, plot.Tick{Value: float64(v), Label: labels[i]})
			}
		}
		return ticks
	})
}

func heading(title string, subtitle []string) string {
	return strings.Join(append([]string{title}, subtitle...), "\n")
}

func styleTexts(p *plot.Plot, tf font.Typeface) {
	setFont(&p.Title.TextStyle, tf, titleSize, true)
	setFont(&p.X.Label.TextStyle, tf, axisTitleSize, true)
	setFont(&p.Y.Label.TextStyle, tf, axisTitleSize, true)
	setFont(&p.X.Tick.Label, tf, tickSize, false)
	setFont(&p.Y.Tick.Label, tf, tickSize, false)
	setFont(&p.Legend.TextStyle, tf, tickSize, false)
}

func maxWidth(st text.Style, labels []string) vg.Length {
	var w vg.Length
	for _, l := range labels {
		w = max(w, st.Width(l))
	}
	return w
}

// heatmap lays m out as one plot, ordinates top to bottom and abscissas left
// to right, each cell annotated with its atom contact count, and a colour
// bar plot on its right.
type heatmap struct {
	plot, bar *plot.Plot
	// plot area size, and the bar crop margins matching the plot's frame
	width, height vg.Length
	top, bottom   vg.Length
}

func newHeatmap(m domain.Matrix, labels domain.HeatmapLabels, tf font.Typeface) (*heatmap, error) {
	lo, hi := colorRange(m)
	cm := metricColorMap(lo, hi)
	pal, err := sample(cm, paletteSize)
	if err != nil {
		return nil, err
	}
	g := grid{m: m, lo: lo, hi: hi}

	p := plot.New()
	styleTexts(p, tf)
	p.Title.Text = heading(labels.Title, labels.Subtitle)
	p.X.Label.Text = labels.XLabel
	p.Y.Label.Text = labels.YLabel

	hm := plotter.NewHeatMap(g, pal)
	hm.Min, hm.Max = lo, hi
	p.Add(hm)

	cell := cellSize(m)
	if cell >= annotMinCell {
		counts, err := cellCounts(g, pal, tf)
		if err != nil {
			return nil, err
		}
		p.Add(counts)
	}

	p.X.Tick.Marker = indexTicks(m.Abscissas.Labels, func(v int) int { return v })
	p.Y.Tick.Marker = indexTicks(m.Ordinates.Labels, g.ordinate)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	bar := plot.New()
	styleTexts(bar, tf)
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: paletteSize})
	bar.HideX()
	bar.Y.Label.Text = labels.Scale

	h := &heatmap{plot: p, bar: bar}
	titleH := p.Title.TextStyle.Height(p.Title.Text) + p.Title.Padding
	axisH := p.X.Label.TextStyle.Height(p.X.Label.Text)
	h.top = titleH + vg.Points(margin)
	h.bottom = maxWidth(p.X.Tick.Label, m.Abscissas.Labels) + axisH + vg.Points(margin)
	h.width = 2*vg.Points(margin) + axisH + maxWidth(p.Y.Tick.Label, m.Ordinates.Labels) +
		vg.Length(m.Abscissas.Len())*vg.Points(cell)
	h.width = max(h.width, p.Title.TextStyle.Width(p.Title.Text)+2*vg.Points(margin)-vg.Points(colorbarW))
	h.height = h.top + vg.Length(m.Ordinates.Len())*vg.Points(cell) + h.bottom
	return h, nil
}

// size is the full canvas size, colour bar included.
func (h *heatmap) size() (vg.Length, vg.Length) {
	return h.width + vg.Points(colorbarW), h.height
}

func (h *heatmap) draw(dc draw.Canvas) {
	h.plot.Draw(draw.Crop(dc, 0, -vg.Points(colorbarW), 0, 0))
	h.bar.Draw(draw.Crop(dc, h.width, 0, h.bottom, -h.top))
}

func cellCounts(g grid, pal colors, tf font.Typeface) (*plotter.Labels, error) {
	var (
		xys   plotter.XYs
		texts []string
		inks  []color.Color
	)
	cols, rows := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell, ok := g.m.At(g.ordinate(r), c)
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: g.X(c), Y: g.Y(r)})
			texts = append(texts, strconv.Itoa(cell.AtomContacts))
			inks = append(inks, readableOn(pal[paletteIndex(cell.Value, g.lo, g.hi, len(pal))]))
		}
	}
	lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range lb.TextStyle {
		st := &lb.TextStyle[i]
		setFont(st, tf, annotSize, false)
		st.XAlign, st.YAlign = text.XCenter, text.YCenter
		st.Color = inks[i]
	}
	return lb, nil
}
