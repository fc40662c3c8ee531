package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, jpeg
	_ "gonum.org/v1/plot/vg/vgsvg" // svg

	"contactplot/internal/domain"
)

// Renderer produces artifacts for one output format.
type Renderer struct {
	format   domain.Format
	typeface font.Typeface
}

// New returns a renderer for format. fontPath optionally replaces the
// embedded Go fonts with a TrueType file.
func New(format domain.Format, fontPath string) (*Renderer, error) {
	f := domain.Format(strings.ToLower(string(format)))
	if !f.Valid() {
		return nil, domain.Render(domain.StageRender, string(format),
			fmt.Errorf("unsupported output format, want one of %v", domain.Formats()))
	}
	tf, err := typeface(fontPath)
	if err != nil {
		return nil, domain.Render(domain.StageRender, fontPath, err)
	}
	return &Renderer{format: f, typeface: tf}, nil
}

// image encodes what build draws. gonum/plot reports some layout failures
// by panicking; they come back as ErrRender.
func (r *Renderer) image(name string, kind domain.ArtifactKind, build func() (io.WriterTo, error)) (art domain.Artifact, err error) {
	file := name + "." + r.format.String()
	defer func() {
		if p := recover(); p != nil {
			art, err = domain.Artifact{}, domain.Render(domain.StageRender, file, fmt.Errorf("plot: %v", p))
		}
	}()
	wt, err := build()
	if err != nil {
		return domain.Artifact{}, domain.Render(domain.StageRender, file, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return domain.Artifact{}, domain.Render(domain.StageRender, file, err)
	}
	return domain.Artifact{Name: file, Kind: kind, Data: buf.Bytes()}, nil
}

// Heatmap draws the contact matrix. An empty matrix is ErrNoData.
func (r *Renderer) Heatmap(name string, m domain.Matrix, labels domain.HeatmapLabels) (domain.Artifact, error) {
	if m.Empty() {
		return domain.Artifact{}, domain.NoData(domain.StageRender, "no contacts left to draw the heatmap")
	}
	for k, c := range m.Cells {
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return domain.Artifact{}, domain.Malformed(domain.StageRender, name, "",
				fmt.Sprintf("metric of %d-%d is not a finite number", k.Ordinate, k.Abscissa), nil)
		}
	}
	return r.image(name, domain.ArtifactHeatmap, func() (io.WriterTo, error) {
		h, err := newHeatmap(m, labels, r.typeface)
		if err != nil {
			return nil, err
		}
		w, ht := h.size()
		c, err := draw.NewFormattedCanvas(w, ht, r.format.String())
		if err != nil {
			return nil, err
		}
		h.draw(draw.New(c))
		return c, nil
	})
}

// DomainChart draws the contacts-by-domain bar chart.
func (r *Renderer) DomainChart(name string, counts []domain.DomainCount, labels domain.ChartLabels) (domain.Artifact, error) {
	if len(counts) == 0 {
		return domain.Artifact{}, domain.NoData(domain.StageRender, "no domains to draw")
	}
	return r.image(name, domain.ArtifactDomainChart, func() (io.WriterTo, error) {
		p, w, h, err := newDomainChart(counts, labels, r.typeface)
		if err != nil {
			return nil, err
		}
		return p.WriterTo(w, h, r.format.String())
	})
}

// DomainCountsCSV encodes domain, start, stop and contacts per domain.
func (r *Renderer) DomainCountsCSV(name string, counts []domain.DomainCount) (domain.Artifact, error) {
	data, err := encodeCSV(domainCountRows(counts))
	if err != nil {
		return domain.Artifact{}, domain.Render(domain.StageRender, name+".csv", err)
	}
	return domain.Artifact{Name: name + ".csv", Kind: domain.ArtifactDomainCounts, Data: data}, nil
}

// OutliersCSV encodes the qualifying residue pairs with their domains.
func (r *Renderer) OutliersCSV(name, metric string, pairs []domain.AnnotatedPair) (domain.Artifact, error) {
	data, err := encodeCSV(outlierRows(metric, pairs))
	if err != nil {
		return domain.Artifact{}, domain.Render(domain.StageRender, name+".csv", err)
	}
	return domain.Artifact{Name: name + ".csv", Kind: domain.ArtifactOutliers, Data: data}, nil
}

// Compile-time assertion that Renderer implements domain.Renderer.
var _ domain.Renderer = (*Renderer)(nil)
