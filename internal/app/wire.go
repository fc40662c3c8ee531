package app

import (
	"strings"

	"contactplot/internal/domain"
	"contactplot/internal/render"
	"contactplot/internal/services/loader"
	"contactplot/internal/store"
)

// Wire bundles the loaders, renderer and store for one run.
type Wire struct {
	Contacts   domain.ContactLoader
	Parameters domain.ParametersLoader
	Domains    domain.DomainLoader
	Renderer   domain.Renderer
	Store      domain.ArtifactStore
}

// NewWire constructs the dependency graph from cfg. The output directory is
// created here so an unwritable destination fails before any input is read.
func NewWire(cfg Config) (*Wire, error) {
	files := loader.New()

	renderer, err := render.New(domain.Format(strings.ToLower(cfg.Format)), cfg.FontPath)
	if err != nil {
		return nil, err
	}

	dir, err := store.NewDir(cfg.OutDir)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Contacts:   files,
		Parameters: files,
		Domains:    files,
		Renderer:   renderer,
		Store:      dir,
	}, nil
}
