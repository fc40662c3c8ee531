package roi

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"contactplot/internal/domain"
)

var roiPattern = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*$`)

// Parse reads a "start-end" region, e.g. "100-200".
func Parse(s string) (domain.Interval, error) {
	m := roiPattern.FindStringSubmatch(s)
	if m == nil {
		return domain.Interval{}, domain.Malformed(domain.StageFilter, s, "roi",
			"should be two integers separated by a hyphen, e.g. 100-200", nil)
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.Interval{}, domain.Malformed(domain.StageFilter, s, "roi", "start is not an integer", err)
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return domain.Interval{}, domain.Malformed(domain.StageFilter, s, "roi", "end is not an integer", err)
	}
	iv := domain.Interval{Start: domain.Position(start), End: domain.Position(end)}
	if start < 1 {
		return domain.Interval{}, domain.InvalidRange(domain.StageFilter, s, "residue positions start at 1")
	}
	if !iv.Valid() {
		return domain.Interval{}, domain.InvalidRange(domain.StageFilter, s,
			fmt.Sprintf("start %d is after end %d", start, end))
	}
	return iv, nil
}

// Span returns the smallest interval holding every donor and acceptor
// position, and false for an empty table.
func Span(contacts []domain.Contact) (domain.Interval, bool) {
	if len(contacts) == 0 {
		return domain.Interval{}, false
	}
	span := domain.Interval{Start: contacts[0].DonorPosition, End: contacts[0].DonorPosition}
	for _, c := range contacts {
		for _, p := range [2]domain.Position{c.DonorPosition, c.AcceptorPosition} {
			if p < span.Start {
				span.Start = p
			}
			if p > span.End {
				span.End = p
			}
		}
	}
	return span, true
}

// Check fails with ErrInvalidRange when region lies entirely outside the
// residue numbering of contacts.
func Check(contacts []domain.Contact, region domain.Interval) error {
	if !region.Valid() {
		return domain.InvalidRange(domain.StageFilter, region.String(), "start is after end")
	}
	span, ok := Span(contacts)
	if !ok {
		return nil
	}
	if !region.Overlaps(span) {
		return domain.InvalidRange(domain.StageFilter, region.String(),
			fmt.Sprintf("region of interest is outside the contacts residues %s", span))
	}
	return nil
}

// Filter keeps the contacts touching region, oriented so the residue inside
// region is the ordinate. Input order is preserved.
func Filter(contacts []domain.Contact, region domain.Interval) []domain.OrientedContact {
	out := make([]domain.OrientedContact, 0, len(contacts))
	for _, c := range contacts {
		switch {
		case region.Contains(c.DonorPosition):
			out = append(out, domain.OrientedContact{
				ID:               c.ID,
				OrdinatePosition: c.DonorPosition,
				OrdinateResidue:  c.DonorResidue,
				AbscissaPosition: c.AcceptorPosition,
				AbscissaResidue:  c.AcceptorResidue,
				Metric:           c.Metric,
				OrdinateType:     domain.OrdinateDonor,
			})
		case region.Contains(c.AcceptorPosition):
			out = append(out, domain.OrientedContact{
				ID:               c.ID,
				OrdinatePosition: c.AcceptorPosition,
				OrdinateResidue:  c.AcceptorResidue,
				AbscissaPosition: c.DonorPosition,
				AbscissaResidue:  c.DonorResidue,
				Metric:           c.Metric,
				OrdinateType:     domain.OrdinateAcceptor,
			})
		}
	}
	return out
}

// ReducePairs collapses oriented atom contacts sharing the same ordinate and
// abscissa positions into one residue pair, sorted by ordinate then abscissa.
func ReducePairs(contacts []domain.OrientedContact) []domain.ResiduePair {
	index := make(map[domain.CellKey]int, len(contacts))
	var out []domain.ResiduePair
	for _, c := range contacts {
		key := domain.CellKey{Ordinate: c.OrdinatePosition, Abscissa: c.AbscissaPosition}
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, domain.ResiduePair{
				OrdinatePosition: c.OrdinatePosition,
				OrdinateResidue:  c.OrdinateResidue,
				AbscissaPosition: c.AbscissaPosition,
				AbscissaResidue:  c.AbscissaResidue,
				OrdinateType:     c.OrdinateType,
				Metric:           c.Metric,
				AtomContacts:     1,
				ContactIDs:       appendID(nil, c.ID),
			})
			continue
		}
		p := &out[i]
		p.AtomContacts++
		p.ContactIDs = appendID(p.ContactIDs, c.ID)
		if c.Metric < p.Metric {
			p.Metric = c.Metric
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrdinatePosition != out[j].OrdinatePosition {
			return out[i].OrdinatePosition < out[j].OrdinatePosition
		}
		return out[i].AbscissaPosition < out[j].AbscissaPosition
	})
	return out
}

func appendID(ids []string, id string) []string {
	if id == "" {
		return ids
	}
	return append(ids, id)
}
