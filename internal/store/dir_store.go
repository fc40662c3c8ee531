package store

import (
	"fmt"
	"os"
	"path/filepath"

	"contactplot/internal/domain"
)

const artifactMode = 0o644

// Dir saves artifacts under one output directory.
type Dir struct {
	dir string
}

// NewDir creates dir if needed and checks it accepts new files.
func NewDir(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.Render(domain.StageWrite, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".contactplot-check-*")
	if err != nil {
		return nil, domain.Render(domain.StageWrite, dir, fmt.Errorf("output directory is not writable: %w", err))
	}
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	return &Dir{dir: dir}, nil
}

// Path returns where an artifact named name is saved.
func (s *Dir) Path(name string) string { return filepath.Join(s.dir, name) }

// Save writes a atomically and returns its path.
func (s *Dir) Save(a domain.Artifact) (string, error) {
	if a.Name == "" || filepath.Base(a.Name) != a.Name {
		return "", domain.Render(domain.StageWrite, a.Name, fmt.Errorf("artifact name must be a bare file name"))
	}
	path := s.Path(a.Name)
	if err := writeFile(path, a.Data, artifactMode); err != nil {
		return "", domain.Render(domain.StageWrite, path, err)
	}
	return path, nil
}

// SaveAll saves artifacts in order and returns their paths. It stops at the
// first failure.
func (s *Dir) SaveAll(artifacts []domain.Artifact) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		p, err := s.Save(a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Compile-time assertion that Dir implements domain.ArtifactStore.
var _ domain.ArtifactStore = (*Dir)(nil)
