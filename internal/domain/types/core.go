package types

// Position is a 1-based residue position in the protein chain.
type Position int

// Int returns the position as an int.
func (p Position) Int() int { return int(p) }

// Format is an image encoding requested for plots.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
)

// String returns the string form of the format.
func (f Format) String() string { return string(f) }

// Formats lists the accepted plot formats in help order.
func Formats() []Format { return []Format{FormatPNG, FormatJPG, FormatJPEG, FormatSVG} }

// Valid reports whether f is one of Formats.
func (f Format) Valid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// OrdinateType records which side of a contact lies in the region of interest.
type OrdinateType string

const (
	OrdinateDonor    OrdinateType = "donor"
	OrdinateAcceptor OrdinateType = "acceptor"
)

// String returns the string form of the ordinate type.
func (o OrdinateType) String() string { return string(o) }
