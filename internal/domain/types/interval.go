package types

import "fmt"

// Interval is a closed range [Start, End] of residue positions.
type Interval struct {
	Start Position
	End   Position
}

// Valid reports whether Start <= End.
func (iv Interval) Valid() bool { return iv.Start <= iv.End }

// Contains reports whether p lies in [Start, End].
func (iv Interval) Contains(p Position) bool { return iv.Start <= p && p <= iv.End }

// Overlaps reports whether the two intervals share at least one position.
func (iv Interval) Overlaps(o Interval) bool { return iv.Start <= o.End && o.Start <= iv.End }

// String renders the interval as "start-end".
func (iv Interval) String() string { return fmt.Sprintf("%d-%d", iv.Start, iv.End) }

// Domain is a named structural or functional region of the protein.
type Domain struct {
	Name     string
	Interval Interval
	Color    string // "#RRGGBB", empty when the table has no colour
	Filler   bool   // true for "before"/"between" gap domains
}
