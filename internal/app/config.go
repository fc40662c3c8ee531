package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"contactplot/internal/domain"
)

// Version is the tool version recorded in logs and manifests.
var Version = "2.0.0"

// Config holds everything one run needs. Fields with an env tag take their
// default from the environment; command-line flags override them.
type Config struct {
	// Inputs and outputs.
	ContactsPath   string
	ParametersPath string
	DomainsPath    string // optional
	OutDir         string

	// Region of interest on the ordinate axis.
	ROI domain.Interval

	// Domain options, ignored without DomainsPath. The residues distance
	// defaults to one alpha-helix turn.
	EmbeddedDomains  bool
	FillGaps         bool
	ResiduesDistance int `env:"CONTACTPLOT_RESIDUES_DISTANCE" envDefault:"4"`

	// ResiduesDistanceSet is true when --residues-distance was given.
	ResiduesDistanceSet bool

	Format   string `env:"CONTACTPLOT_FORMAT" envDefault:"png"`
	Metric   string `env:"CONTACTPLOT_METRIC" envDefault:"median distance"`
	FontPath string `env:"CONTACTPLOT_FONT"`

	// LogPath defaults to <OutDir>/contactplot.log.
	LogPath  string
	LogLevel string `env:"CONTACTPLOT_LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig returns a Config populated from the environment.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields a run cannot start without.
func (c Config) Validate() error {
	switch {
	case c.ContactsPath == "":
		return domain.Malformed(domain.StageLoad, "", "contacts", "contacts table path is required", nil)
	case c.ParametersPath == "":
		return domain.Malformed(domain.StageLoad, "", "parameters", "parameters file path is required", nil)
	case c.OutDir == "":
		return domain.Malformed(domain.StageLoad, "", "out", "output directory is required", nil)
	}
	if c.ROI.Start < 1 || !c.ROI.Valid() {
		return domain.InvalidRange(domain.StageFilter, c.ROI.String(), "region of interest must satisfy 1 <= start <= end")
	}
	if c.ResiduesDistance < 0 {
		return domain.Malformed(domain.StageLoad, fmt.Sprint(c.ResiduesDistance), "residues-distance", "must not be negative", nil)
	}
	if !domain.Format(strings.ToLower(c.Format)).Valid() {
		return domain.Render(domain.StageRender, c.Format,
			fmt.Errorf("unsupported output format, want one of %v", domain.Formats()))
	}
	return nil
}

// Basename is the contacts file name without directory and extension; it
// suffixes every artifact name.
func (c Config) Basename() string {
	base := filepath.Base(c.ContactsPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Warnings lists domain-only options given without a domain table.
func (c Config) Warnings() []string {
	if c.DomainsPath != "" {
		return nil
	}
	var out []string
	if c.EmbeddedDomains {
		out = append(out, "--embedded-domains will not be used as the --domains argument is missing")
	}
	if c.FillGaps {
		out = append(out, "--fill-gaps will not be used as the --domains argument is missing")
	}
	if c.ResiduesDistanceSet {
		out = append(out, fmt.Sprintf("--residues-distance %d will not be used as the --domains argument is missing", c.ResiduesDistance))
	}
	return out
}
