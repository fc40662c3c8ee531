// internal/store/dir_store_test.go
package store_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"contactplot/internal/domain"
	"contactplot/internal/store"
)

func TestDir_Save_WritesAtomically(t *testing.T) {
	dir := t.TempDir()
	var s domain.ArtifactStore
	d, err := store.NewDir(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("new dir: %v", err)
	}
	s = d

	path, err := s.Save(domain.Artifact{Name: "a.csv", Kind: domain.ArtifactDomainCounts, Data: []byte("x\n")})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != d.Path("a.csv") {
		t.Fatalf("path = %q, want %q", path, d.Path("a.csv"))
	}
	b, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(b, []byte("x\n")) {
		t.Fatalf("read back = %q, %v", b, err)
	}

	// overwrite, and no temp file is left behind
	if _, err := s.Save(domain.Artifact{Name: "a.csv", Data: []byte("y\n")}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "out"))
	if len(entries) != 1 {
		t.Fatalf("expected a single file, got %d", len(entries))
	}
}

func TestDir_Save_RejectsPaths(t *testing.T) {
	d, err := store.NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("new dir: %v", err)
	}
	for _, name := range []string{"", "../escape.csv", "sub/a.csv"} {
		if _, err := d.Save(domain.Artifact{Name: name}); !errors.Is(err, domain.ErrRender) {
			t.Fatalf("Save(%q) err = %v, want ErrRender", name, err)
		}
	}
}

func TestNewDir_NotADirectory_Fails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.NewDir(file); !errors.Is(err, domain.ErrRender) {
		t.Fatalf("err = %v, want ErrRender", err)
	}
}

func TestDir_SaveAll_KeepsOrder(t *testing.T) {
	d, err := store.NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("new dir: %v", err)
	}
	paths, err := d.SaveAll([]domain.Artifact{{Name: "b"}, {Name: "a"}})
	if err != nil {
		t.Fatalf("save all: %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "b" || filepath.Base(paths[1]) != "a" {
		t.Fatalf("paths = %v", paths)
	}
}
