package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"contactplot/internal/domain"
)

// table is a header-indexed CSV reader.
type table struct {
	path   string
	f      *os.File
	r      *csv.Reader
	header map[string]int
}

func openTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.Malformed(domain.StageLoad, path, "", "cannot read file", err)
	}
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comment = '#'

	head, err := r.Read()
	if errors.Is(err, io.EOF) {
		_ = f.Close()
		return nil, domain.Malformed(domain.StageLoad, path, "", "empty table, a header row is required", nil)
	}
	if err != nil {
		_ = f.Close()
		return nil, domain.Malformed(domain.StageLoad, path, "", "cannot parse header", err)
	}
	idx := make(map[string]int, len(head))
	for i, name := range head {
		key := normalize(name)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return &table{path: path, f: f, r: r, header: idx}, nil
}

func (t *table) Close() error { return t.f.Close() }

// column returns the index of the first present alias.
func (t *table) column(aliases ...string) (int, bool) {
	for _, a := range aliases {
		if i, ok := t.header[normalize(a)]; ok {
			return i, true
		}
	}
	return 0, false
}

// require is column for mandatory fields.
func (t *table) require(aliases ...string) (int, error) {
	if i, ok := t.column(aliases...); ok {
		return i, nil
	}
	return 0, domain.Malformed(domain.StageLoad, t.path, aliases[0], "required column is missing", nil)
}

// next returns the next record and its 1-based line, or io.EOF.
func (t *table) next() ([]string, int, error) {
	rec, err := t.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, 0, domain.Malformed(domain.StageLoad, t.path, "", "cannot parse row", err)
	}
	line, _ := t.r.FieldPos(0)
	return rec, line, nil
}

// where formats "path:line" for error messages.
func (t *table) where(line int) string { return fmt.Sprintf("%s:%d", t.path, line) }

func (t *table) position(rec []string, i, line int, field string) (domain.Position, error) {
	raw := strings.TrimSpace(rec[i])
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.Malformed(domain.StageLoad, t.where(line), field,
			fmt.Sprintf("%q is not a positive integer", raw), nil)
	}
	return domain.Position(n), nil
}

func (t *table) number(rec []string, i, line int, field string) (float64, error) {
	raw := strings.TrimSpace(rec[i])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.Malformed(domain.StageLoad, t.where(line), field,
			fmt.Sprintf("%q is not a number", raw), nil)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.Malformed(domain.StageLoad, t.where(line), field,
			fmt.Sprintf("%q is not a finite number", raw), nil)
	}
	return v, nil
}

func optional(rec []string, i int, ok bool) string {
	if !ok {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
