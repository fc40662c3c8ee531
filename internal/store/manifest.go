package store

import (
	"fmt"
	"os"
	"path/filepath"

	"contactplot/internal/checksum"
	"contactplot/internal/domain"
)

// Manifest lists what a run read and produced.
type Manifest struct {
	Tool      string          `json:"tool"`
	Version   string          `json:"version"`
	Inputs    []InputEntry    `json:"inputs"`
	Artifacts []ArtifactEntry `json:"artifacts"`
}

// InputEntry is one input file and its digest.
type InputEntry struct {
	Role    string `json:"role"`
	Path    string `json:"path"`
	Blake2b string `json:"blake2b"`
}

// ArtifactEntry is one produced file and its digest.
type ArtifactEntry struct {
	Name    string              `json:"name"`
	Kind    domain.ArtifactKind `json:"kind"`
	Bytes   int                 `json:"bytes"`
	Blake2b string              `json:"blake2b"`
}

// Input names an input file by role, e.g. "contacts".
type Input struct {
	Role string
	Path string
}

// BuildManifest digests inputs and artifacts into the manifest artifact.
func BuildManifest(name, version string, inputs []Input, artifacts []domain.Artifact) (domain.Artifact, error) {
	m := Manifest{Tool: "contactplot", Version: version}
	for _, in := range inputs {
		sum, err := checksum.File(in.Path)
		if err != nil {
			return domain.Artifact{}, domain.Malformed(domain.StageWrite, in.Path, "", "cannot digest input", err)
		}
		m.Inputs = append(m.Inputs, InputEntry{Role: in.Role, Path: in.Path, Blake2b: sum})
	}
	for _, a := range artifacts {
		m.Artifacts = append(m.Artifacts, ArtifactEntry{
			Name:    a.Name,
			Kind:    a.Kind,
			Bytes:   len(a.Data),
			Blake2b: checksum.Sum(a.Data),
		})
	}
	data, err := encodeJSON(m)
	if err != nil {
		return domain.Artifact{}, domain.Render(domain.StageWrite, name, err)
	}
	return domain.Artifact{Name: name, Kind: domain.ArtifactManifest, Data: data}, nil
}

// ReadManifest decodes the manifest at path.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	if err := readJSON(path, &m); err != nil {
		return Manifest{}, domain.Malformed(domain.StageLoad, path, "", "cannot read manifest", err)
	}
	return m, nil
}

// Mismatch is an artifact whose file no longer matches the manifest.
type Mismatch struct {
	Name   string
	Reason string
}

// Verify re-digests every artifact listed in the manifest at path; artifacts
// are looked up next to the manifest.
func Verify(path string) ([]Mismatch, error) {
	m, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	var out []Mismatch
	for _, a := range m.Artifacts {
		b, err := os.ReadFile(filepath.Join(dir, a.Name))
		if err != nil {
			out = append(out, Mismatch{Name: a.Name, Reason: "missing"})
			continue
		}
		if sum := checksum.Sum(b); sum != a.Blake2b {
			out = append(out, Mismatch{Name: a.Name, Reason: fmt.Sprintf("digest %s, manifest %s", sum[:12], a.Blake2b[:min(12, len(a.Blake2b))])})
		}
	}
	return out, nil
}
