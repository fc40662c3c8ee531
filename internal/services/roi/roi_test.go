// internal/services/roi/roi_test.go
package roi_test

import (
	"errors"
	"testing"

	"contactplot/internal/domain"
	"contactplot/internal/services/roi"
)

func TestParse(t *testing.T) {
	got, err := roi.Parse(" 100 - 200 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != (domain.Interval{Start: 100, End: 200}) {
		t.Fatalf("got %v", got)
	}

	for _, bad := range []string{"", "100", "a-b", "100:200", "-5-10"} {
		if _, err := roi.Parse(bad); !errors.Is(err, domain.ErrMalformedInput) {
			t.Fatalf("Parse(%q) err = %v, want ErrMalformedInput", bad, err)
		}
	}
	for _, bad := range []string{"200-100", "0-10"} {
		if _, err := roi.Parse(bad); !errors.Is(err, domain.ErrInvalidRange) {
			t.Fatalf("Parse(%q) err = %v, want ErrInvalidRange", bad, err)
		}
	}
}

func contacts() []domain.Contact {
	return []domain.Contact{
		{ID: "c1", DonorPosition: 10, DonorResidue: "ALA", AcceptorPosition: 20, AcceptorResidue: "GLY", Metric: 5},
		{ID: "c2", DonorPosition: 15, DonorResidue: "SER", AcceptorPosition: 25, AcceptorResidue: "THR", Metric: 30},
		{ID: "c3", DonorPosition: 100, DonorResidue: "LYS", AcceptorPosition: 110, AcceptorResidue: "ASP", Metric: 50},
	}
}

func TestFilter_OrientsOnRegion(t *testing.T) {
	in := []domain.Contact{
		{ID: "donor-in", DonorPosition: 12, AcceptorPosition: 80, Metric: 1},
		{ID: "acceptor-in", DonorPosition: 90, DonorResidue: "GLU", AcceptorPosition: 14, AcceptorResidue: "ARG", Metric: 2},
		{ID: "both-in", DonorPosition: 11, AcceptorPosition: 13, Metric: 3},
		{ID: "none-in", DonorPosition: 50, AcceptorPosition: 60, Metric: 4},
	}
	got := roi.Filter(in, domain.Interval{Start: 10, End: 20})
	if len(got) != 3 {
		t.Fatalf("kept %d contacts, want 3", len(got))
	}
	if got[0].OrdinatePosition != 12 || got[0].OrdinateType != domain.OrdinateDonor {
		t.Fatalf("donor-in = %+v", got[0])
	}
	a := got[1]
	if a.OrdinatePosition != 14 || a.OrdinateResidue != "ARG" || a.AbscissaPosition != 90 || a.AbscissaResidue != "GLU" || a.OrdinateType != domain.OrdinateAcceptor {
		t.Fatalf("acceptor-in = %+v", a)
	}
	if got[2].OrdinatePosition != 11 || got[2].OrdinateType != domain.OrdinateDonor {
		t.Fatalf("both-in = %+v", got[2])
	}
}

func TestFilter_EveryOrdinateInRegion(t *testing.T) {
	region := domain.Interval{Start: 10, End: 30}
	for _, c := range roi.Filter(contacts(), region) {
		if !region.Contains(c.OrdinatePosition) {
			t.Fatalf("ordinate %d outside %s", c.OrdinatePosition, region)
		}
	}
	if got := roi.Filter(contacts(), domain.Interval{Start: 40, End: 90}); len(got) != 0 {
		t.Fatalf("expected no contact, got %d", len(got))
	}
}

func TestCheck(t *testing.T) {
	if err := roi.Check(contacts(), domain.Interval{Start: 40, End: 90}); err != nil {
		t.Fatalf("region inside the span: %v", err)
	}
	if err := roi.Check(contacts(), domain.Interval{Start: 500, End: 600}); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if err := roi.Check(nil, domain.Interval{Start: 1, End: 2}); err != nil {
		t.Fatalf("empty table: %v", err)
	}
}

func TestSpan(t *testing.T) {
	span, ok := roi.Span(contacts())
	if !ok || span != (domain.Interval{Start: 10, End: 110}) {
		t.Fatalf("span = %v %v", span, ok)
	}
	if _, ok := roi.Span(nil); ok {
		t.Fatal("expected no span for an empty table")
	}
}

func TestReducePairs_MinMetricAndCount(t *testing.T) {
	oriented := []domain.OrientedContact{
		{ID: "b", OrdinatePosition: 15, AbscissaPosition: 25, Metric: 4},
		{ID: "a1", OrdinatePosition: 10, AbscissaPosition: 20, Metric: 3.5},
		{ID: "a2", OrdinatePosition: 10, AbscissaPosition: 20, Metric: 2.5},
		{ID: "a3", OrdinatePosition: 10, AbscissaPosition: 20, Metric: 3.0},
		{OrdinatePosition: 10, AbscissaPosition: 18, Metric: 1},
	}
	got := roi.ReducePairs(oriented)
	if len(got) != 3 {
		t.Fatalf("pairs = %d, want 3", len(got))
	}
	// sorted by ordinate, then abscissa
	if got[0].AbscissaPosition != 18 || got[1].AbscissaPosition != 20 || got[2].OrdinatePosition != 15 {
		t.Fatalf("order = %+v", got)
	}
	p := got[1]
	if p.Metric != 2.5 || p.AtomContacts != 3 || len(p.ContactIDs) != 3 || p.ContactIDs[0] != "a1" {
		t.Fatalf("pair 10-20 = %+v", p)
	}
	if got[0].ContactIDs != nil {
		t.Fatalf("unnamed contact ids = %v", got[0].ContactIDs)
	}
}
