package types

// FrameRange is the frame window the upstream contact search ran on.
type FrameRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Parameters is the run metadata written by the contact-extraction pipeline.
// It only feeds titles and labels.
type Parameters struct {
	Sample               string      `yaml:"sample"`
	MDDuration           string      `yaml:"MD duration"`
	ProteinLength        int         `yaml:"protein length"`
	Frames               *FrameRange `yaml:"frames"`
	ProportionContacts   float64     `yaml:"proportion contacts"`
	MaximalAtomsDistance float64     `yaml:"maximal atoms distance"`
	AngleCutoff          float64     `yaml:"angle cutoff"`

	// Entries holds every top-level key in document order, nested maps
	// flattened as "parent.child".
	Entries []ParameterEntry `yaml:"-"`
}

// ParameterEntry is one flattened key/value of the parameters document.
type ParameterEntry struct {
	Key   string
	Value string
}

// Title returns the sample name, falling back to fallback.
func (p Parameters) Title(fallback string) string {
	if p.Sample != "" {
		return p.Sample
	}
	return fallback
}
