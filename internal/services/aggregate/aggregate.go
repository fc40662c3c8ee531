// Package aggregate builds the heatmap matrix and the per-domain contact
// counts from reduced residue pairs.
package aggregate

import (
	"fmt"
	"sort"

	"contactplot/internal/domain"
	"contactplot/internal/services/annotate"
)

// Heatmap builds the sparse ordinate x abscissa matrix. Cell values are the
// pair metric; residues without a contact are left out of the cell map.
func Heatmap(pairs []domain.ResiduePair) domain.Matrix {
	m := domain.Matrix{Cells: make(map[domain.CellKey]domain.Cell, len(pairs))}
	ordinates := map[domain.Position]string{}
	abscissas := map[domain.Position]string{}
	for i, p := range pairs {
		remember(ordinates, p.OrdinatePosition, p.OrdinateResidue)
		remember(abscissas, p.AbscissaPosition, p.AbscissaResidue)

		key := domain.CellKey{Ordinate: p.OrdinatePosition, Abscissa: p.AbscissaPosition}
		cell, seen := m.Cells[key]
		if !seen || p.Metric < cell.Value {
			cell.Value = p.Metric
		}
		cell.AtomContacts += p.AtomContacts
		m.Cells[key] = cell

		if i == 0 || p.Metric < m.Min {
			m.Min = p.Metric
		}
		if i == 0 || p.Metric > m.Max {
			m.Max = p.Metric
		}
	}
	m.Ordinates = axis(ordinates)
	m.Abscissas = axis(abscissas)
	return m
}

func remember(labels map[domain.Position]string, p domain.Position, residue string) {
	if cur, ok := labels[p]; !ok || cur == "" {
		labels[p] = residue
	}
}

func axis(labels map[domain.Position]string) domain.Axis {
	a := domain.Axis{Positions: make([]domain.Position, 0, len(labels))}
	for p := range labels {
		a.Positions = append(a.Positions, p)
	}
	sort.Slice(a.Positions, func(i, j int) bool { return a.Positions[i] < a.Positions[j] })
	a.Labels = make([]string, len(a.Positions))
	for i, p := range a.Positions {
		a.Labels[i] = fmt.Sprintf("%d%s", p, labels[p])
	}
	return a
}

// DomainCounts returns one entry per domain, in the given order, counting the
// atom contacts of every pair touching the domain. A pair touching a domain
// with both ends is counted once for it.
func DomainCounts(domains []domain.Domain, qualifying []domain.ResiduePair) []domain.DomainCount {
	out := make([]domain.DomainCount, 0, len(domains))
	for _, d := range domains {
		n := 0
		for _, p := range qualifying {
			if annotate.Touches(d, p) {
				n += p.AtomContacts
			}
		}
		out = append(out, domain.DomainCount{Domain: d, Count: n})
	}
	return out
}
