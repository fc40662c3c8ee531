// internal/render/renderer_test.go
package render_test

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"contactplot/internal/domain"
	"contactplot/internal/render"
	"contactplot/internal/services/aggregate"
)

func pairs() []domain.ResiduePair {
	return []domain.ResiduePair{
		{OrdinatePosition: 10, OrdinateResidue: "ALA", AbscissaPosition: 20, AbscissaResidue: "GLY", Metric: 3.2, AtomContacts: 2, ContactIDs: []string{"a", "b"}, OrdinateType: domain.OrdinateDonor},
		{OrdinatePosition: 15, OrdinateResidue: "SER", AbscissaPosition: 25, AbscissaResidue: "THR", Metric: 2.8, AtomContacts: 1, OrdinateType: domain.OrdinateAcceptor},
	}
}

var labels = domain.HeatmapLabels{
	Title:    "Contact residues median distance: sample",
	Subtitle: []string{"Molecular Dynamics duration: 10 ns"},
	XLabel:   "Whole protein residues",
	YLabel:   "Region Of Interest 10 to 30 residues",
	Scale:    "Distance (Å)",
}

func TestHeatmap_Formats(t *testing.T) {
	m := aggregate.Heatmap(pairs())
	for _, f := range domain.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			r, err := render.New(f, "")
			if err != nil {
				t.Fatalf("new renderer: %v", err)
			}
			art, err := r.Heatmap("heatmap_distances_x", m, labels)
			if err != nil {
				t.Fatalf("heatmap: %v", err)
			}
			if art.Name != "heatmap_distances_x."+f.String() || art.Kind != domain.ArtifactHeatmap {
				t.Fatalf("artifact = %s %s", art.Name, art.Kind)
			}
			if f == domain.FormatSVG {
				if !bytes.Contains(art.Data, []byte("<svg")) || !bytes.Contains(art.Data, []byte("20GLY")) {
					t.Fatalf("svg output does not look right")
				}
				return
			}
			img, format, err := image.Decode(bytes.NewReader(art.Data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if format != map[domain.Format]string{domain.FormatPNG: "png", domain.FormatJPG: "jpeg", domain.FormatJPEG: "jpeg"}[f] {
				t.Fatalf("encoded as %s", format)
			}
			if b := img.Bounds(); b.Dx() < 100 || b.Dy() < 100 {
				t.Fatalf("image too small: %v", b)
			}
		})
	}
}

func TestHeatmap_Deterministic(t *testing.T) {
	r, err := render.New(domain.FormatPNG, "")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	a, err := r.Heatmap("h", aggregate.Heatmap(pairs()), labels)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := r.Heatmap("h", aggregate.Heatmap(pairs()), labels)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Fatal("same input rendered to different bytes")
	}
	if _, err := png.Decode(bytes.NewReader(a.Data)); err != nil {
		t.Fatalf("png: %v", err)
	}
}

func TestHeatmap_Empty_NoData(t *testing.T) {
	r, _ := render.New(domain.FormatPNG, "")
	if _, err := r.Heatmap("h", aggregate.Heatmap(nil), labels); !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := render.New("gif", ""); !errors.Is(err, domain.ErrRender) {
		t.Fatalf("gif: err = %v, want ErrRender", err)
	}
	if _, err := render.New(domain.FormatPNG, filepath.Join(t.TempDir(), "missing.ttf")); !errors.Is(err, domain.ErrRender) {
		t.Fatalf("missing font: err = %v, want ErrRender", err)
	}
	r, err := render.New("PNG", "")
	if err != nil {
		t.Fatalf("upper case format: %v", err)
	}
	art, err := r.Heatmap("h", aggregate.Heatmap(pairs()), labels)
	if err != nil || art.Name != "h.png" {
		t.Fatalf("upper case format: %s %v", art.Name, err)
	}
	if _, err := png.Decode(bytes.NewReader(art.Data)); err != nil {
		t.Fatalf("png: %v", err)
	}
}

func TestHeatmap_FlatColourScale(t *testing.T) {
	p := pairs()
	p[1].Metric = p[0].Metric
	cases := map[string][]domain.ResiduePair{
		"single cell": p[:1],
		"equal cells": p,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			r, _ := render.New(domain.FormatPNG, "")
			art, err := r.Heatmap("h", aggregate.Heatmap(in), labels)
			if err != nil {
				t.Fatalf("heatmap: %v", err)
			}
			if _, err := png.Decode(bytes.NewReader(art.Data)); err != nil {
				t.Fatalf("png: %v", err)
			}
		})
	}
}

func TestHeatmap_NonFiniteCell(t *testing.T) {
	cases := map[string]float64{
		"nan":  math.NaN(),
		"+inf": math.Inf(1),
		"-inf": math.Inf(-1),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			p := pairs()
			p[0].Metric = v
			r, _ := render.New(domain.FormatSVG, "")
			if _, err := r.Heatmap("h", aggregate.Heatmap(p), labels); !errors.Is(err, domain.ErrMalformedInput) {
				t.Fatalf("err = %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestDomainChart(t *testing.T) {
	counts := []domain.DomainCount{
		{Domain: domain.Domain{Name: "NiRAN", Interval: domain.Interval{Start: 1, End: 250}, Color: "#1f77b4"}, Count: 12},
		{Domain: domain.Domain{Name: "between NiRAN and fingers", Interval: domain.Interval{Start: 251, End: 365}, Color: "#cecece", Filler: true}, Count: 0},
	}
	r, _ := render.New(domain.FormatSVG, "")
	art, err := r.DomainChart("outliers_x", counts, domain.ChartLabels{Title: "t", YLabel: "y"})
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if art.Name != "outliers_x.svg" || art.Kind != domain.ArtifactDomainChart {
		t.Fatalf("artifact = %s %s", art.Name, art.Kind)
	}
	if !strings.Contains(string(art.Data), "<svg") || !strings.Contains(string(art.Data), "NiRAN") {
		t.Fatal("svg output does not name the domain")
	}
	if _, err := r.DomainChart("outliers_x", nil, domain.ChartLabels{}); !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestDomainCountsCSV(t *testing.T) {
	r, _ := render.New(domain.FormatPNG, "")
	art, err := r.DomainCountsCSV("contacts_by_domain_x", []domain.DomainCount{
		{Domain: domain.Domain{Name: "D1", Interval: domain.Interval{Start: 5, End: 22}}, Count: 2},
		{Domain: domain.Domain{Name: "a, b", Interval: domain.Interval{Start: 23, End: 30}}, Count: 0},
	})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	want := "domain,start,stop,contacts\nD1,5,22,2\n\"a, b\",23,30,0\n"
	if string(art.Data) != want || art.Name != "contacts_by_domain_x.csv" {
		t.Fatalf("got %s %q", art.Name, art.Data)
	}
}

func TestOutliersCSV(t *testing.T) {
	r, _ := render.New(domain.FormatPNG, "")
	p := pairs()
	art, err := r.OutliersCSV("outliers_x", "median distance", []domain.AnnotatedPair{
		{ResiduePair: p[0], OrdinateDomains: []string{"D1", "loop"}, AbscissaDomains: []string{"D1"}},
	})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(art.Data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "ordinate position,") || !strings.Contains(lines[0], ",median distance,") {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "10,ALA,D1 | loop,20,GLY,D1,3.2,2,donor,a | b" {
		t.Fatalf("row = %q", lines[1])
	}
}
