package checksum_test

import (
	"os"
	"path/filepath"
	"testing"

	"contactplot/internal/checksum"
)

func TestSum_StableAndDistinct(t *testing.T) {
	a := checksum.Sum([]byte("domain,start,stop,contacts\n"))
	b := checksum.Sum([]byte("domain,start,stop,contacts\n"))
	c := checksum.Sum([]byte("domain,start,stop,contacts\r\n"))
	if a != b {
		t.Fatal("digest not stable")
	}
	if a == c {
		t.Fatal("different inputs share a digest")
	}
	if len(a) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(a))
	}
	if fp := checksum.Fingerprint([]byte("x")); len(fp) != 20 {
		t.Fatalf("want 20 hex chars, got %d", len(fp))
	}
}

func TestFile_MatchesSum(t *testing.T) {
	data := []byte("contact,donor position\n")
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := checksum.File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got != checksum.Sum(data) {
		t.Fatalf("File digest %s != Sum digest %s", got, checksum.Sum(data))
	}
}
