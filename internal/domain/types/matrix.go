package types

// Axis is one sorted axis of the heatmap.
type Axis struct {
	Positions []Position
	Labels    []string // "<position><residue>"
}

// Len returns the number of ticks on the axis.
func (a Axis) Len() int { return len(a.Positions) }

// Cell is a non-empty heatmap cell.
type Cell struct {
	Value        float64
	AtomContacts int
}

// CellKey addresses a heatmap cell by ordinate and abscissa position.
type CellKey struct {
	Ordinate Position
	Abscissa Position
}

// Matrix is the sparse ordinate x abscissa heatmap source.
type Matrix struct {
	Ordinates Axis
	Abscissas Axis
	Cells     map[CellKey]Cell
	Min, Max  float64
}

// Empty reports whether the matrix has no cells.
func (m Matrix) Empty() bool { return len(m.Cells) == 0 }

// At returns the cell at (row, col) and whether it is set.
func (m Matrix) At(row, col int) (Cell, bool) {
	c, ok := m.Cells[CellKey{Ordinate: m.Ordinates.Positions[row], Abscissa: m.Abscissas.Positions[col]}]
	return c, ok
}

// DomainCount is the number of qualifying contacts touching a domain.
type DomainCount struct {
	Domain Domain
	Count  int
}
