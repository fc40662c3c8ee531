package types

// Contact is one atom contact row from the contacts table.
type Contact struct {
	ID               string
	DonorPosition    Position
	DonorResidue     string
	AcceptorPosition Position
	AcceptorResidue  string
	Metric           float64
}

// OrientedContact is a contact seen from the region of interest: the ordinate
// is the residue inside the ROI and the abscissa is its partner.
type OrientedContact struct {
	ID               string
	OrdinatePosition Position
	OrdinateResidue  string
	AbscissaPosition Position
	AbscissaResidue  string
	Metric           float64
	OrdinateType     OrdinateType
}

// ResiduePair collapses every atom contact between two residues.
type ResiduePair struct {
	OrdinatePosition Position
	OrdinateResidue  string
	AbscissaPosition Position
	AbscissaResidue  string
	OrdinateType     OrdinateType
	Metric           float64  // minimum over the atom contacts
	AtomContacts     int      // number of atom contacts collapsed
	ContactIDs       []string // in input order
}

// Separation returns the absolute distance in residues between both ends.
func (p ResiduePair) Separation() int {
	d := int(p.OrdinatePosition - p.AbscissaPosition)
	if d < 0 {
		return -d
	}
	return d
}

// AnnotatedPair is a residue pair with the domains each end falls in.
type AnnotatedPair struct {
	ResiduePair
	OrdinateDomains []string
	AbscissaDomains []string
}
