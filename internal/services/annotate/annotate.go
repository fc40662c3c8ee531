package annotate

import (
	"fmt"

	"contactplot/internal/domain"
)

// FillerColor is used for the pseudo-domains inserted by Resolve.
const FillerColor = "#cecece"

// Embedded reports whether a is a proper subset of b.
func Embedded(a, b domain.Interval) bool {
	return b.Start <= a.Start && a.End <= b.End && a != b
}

// Resolve returns the domains used for annotation, in declared order.
//
// Without useEmbedded a domain whose interval is a proper subset of another
// domain's interval is dropped, its residues stay attributed to the
// container. With fillGaps the residues from 1 not covered by any kept
// domain get a pseudo-domain named after its neighbours.
func Resolve(declared []domain.Domain, useEmbedded, fillGaps bool) []domain.Domain {
	kept := make([]domain.Domain, 0, len(declared))
	for i, d := range declared {
		if !useEmbedded && embeddedInAny(i, declared) {
			continue
		}
		kept = append(kept, d)
	}
	if !fillGaps {
		return kept
	}

	out := make([]domain.Domain, 0, 2*len(kept))
	next := domain.Position(1)
	previous := ""
	for _, d := range kept {
		if d.Interval.Start > next {
			name := "before " + d.Name
			if previous != "" {
				name = fmt.Sprintf("between %s and %s", previous, d.Name)
			}
			out = append(out, domain.Domain{
				Name:     name,
				Interval: domain.Interval{Start: next, End: d.Interval.Start - 1},
				Color:    FillerColor,
				Filler:   true,
			})
		}
		out = append(out, d)
		if d.Interval.End >= next {
			next = d.Interval.End + 1
			previous = d.Name
		}
	}
	return out
}

func embeddedInAny(i int, all []domain.Domain) bool {
	for j, other := range all {
		if i != j && Embedded(all[i].Interval, other.Interval) {
			return true
		}
	}
	return false
}

// CheckCoverage fails with ErrDomainRange when a declared domain lies
// entirely outside span, the residue numbering of the contacts table.
func CheckCoverage(declared []domain.Domain, span domain.Interval) error {
	for _, d := range declared {
		if !d.Interval.Valid() {
			return domain.InvalidRange(domain.StageAnnotate, d.Name,
				fmt.Sprintf("domain %q starts at %d after its end %d", d.Name, d.Interval.Start, d.Interval.End))
		}
		if !d.Interval.Overlaps(span) {
			return domain.DomainRange(d.Name, fmt.Sprintf(
				"domain %q (%s) lies outside the contacts residues %s, check the domains file matches the contacts",
				d.Name, d.Interval, span))
		}
	}
	return nil
}

// Qualifies reports whether the pair ends are at least threshold residues apart.
func Qualifies(p domain.ResiduePair, threshold int) bool {
	return p.Separation() >= threshold
}

// Outliers keeps the pairs satisfying Qualifies, in order.
func Outliers(pairs []domain.ResiduePair, threshold int) []domain.ResiduePair {
	out := make([]domain.ResiduePair, 0, len(pairs))
	for _, p := range pairs {
		if Qualifies(p, threshold) {
			out = append(out, p)
		}
	}
	return out
}

// Annotator answers domain membership queries over a resolved domain set.
type Annotator struct {
	domains []domain.Domain
}

// New returns an annotator over resolved domains.
func New(resolved []domain.Domain) *Annotator {
	return &Annotator{domains: resolved}
}

// DomainsOf returns the names of every domain containing p.
func (a *Annotator) DomainsOf(p domain.Position) []string {
	var names []string
	for _, d := range a.domains {
		if d.Interval.Contains(p) {
			names = append(names, d.Name)
		}
	}
	return names
}

// Touches reports whether d contains either end of the pair.
func Touches(d domain.Domain, p domain.ResiduePair) bool {
	return d.Interval.Contains(p.OrdinatePosition) || d.Interval.Contains(p.AbscissaPosition)
}

// Annotate attaches the ordinate and abscissa domains to each pair.
func (a *Annotator) Annotate(pairs []domain.ResiduePair) []domain.AnnotatedPair {
	out := make([]domain.AnnotatedPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.AnnotatedPair{
			ResiduePair:     p,
			OrdinateDomains: a.DomainsOf(p.OrdinatePosition),
			AbscissaDomains: a.DomainsOf(p.AbscissaPosition),
		})
	}
	return out
}
