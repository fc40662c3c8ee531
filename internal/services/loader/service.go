package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"contactplot/internal/domain"
)

// DefaultMetric is the contact metric column written by the extraction pipeline.
const DefaultMetric = "median distance"

// Column names of the contacts table.
const (
	colContact          = "contact"
	colDonorPosition    = "donor position"
	colDonorResidue     = "donor residue"
	colAcceptorPosition = "acceptor position"
	colAcceptorResidue  = "acceptor residue"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Service loads input files from the local filesystem.
type Service struct{}

// New returns a loader.
func New() *Service { return &Service{} }

// LoadContacts reads every contact row of the table at path.
func (s *Service) LoadContacts(path, metric string) ([]domain.Contact, error) {
	if metric == "" {
		metric = DefaultMetric
	}
	t, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	donorPos, err := t.require(colDonorPosition)
	if err != nil {
		return nil, err
	}
	acceptorPos, err := t.require(colAcceptorPosition)
	if err != nil {
		return nil, err
	}
	metricCol, err := t.require(metric)
	if err != nil {
		return nil, err
	}
	idCol, hasID := t.column(colContact)
	donorRes, hasDonorRes := t.column(colDonorResidue)
	acceptorRes, hasAcceptorRes := t.column(colAcceptorResidue)

	var out []domain.Contact
	for {
		rec, line, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		c := domain.Contact{
			ID:              optional(rec, idCol, hasID),
			DonorResidue:    optional(rec, donorRes, hasDonorRes),
			AcceptorResidue: optional(rec, acceptorRes, hasAcceptorRes),
		}
		if c.DonorPosition, err = t.position(rec, donorPos, line, colDonorPosition); err != nil {
			return nil, err
		}
		if c.AcceptorPosition, err = t.position(rec, acceptorPos, line, colAcceptorPosition); err != nil {
			return nil, err
		}
		if c.Metric, err = t.number(rec, metricCol, line, metric); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadParameters decodes the YAML parameters document at path.
func (s *Service) LoadParameters(path string) (domain.Parameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Parameters{}, domain.Malformed(domain.StageLoad, path, "", "cannot read file", err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return domain.Parameters{}, domain.Malformed(domain.StageLoad, path, "", "not a valid YAML document", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return domain.Parameters{}, domain.Malformed(domain.StageLoad, path, "", "expected a key/value mapping", nil)
	}
	doc := root.Content[0]

	var p domain.Parameters
	if err := doc.Decode(&p); err != nil {
		return domain.Parameters{}, domain.Malformed(domain.StageLoad, path, "", "unexpected value type", err)
	}
	p.Entries = flatten("", doc)
	return p, nil
}

// flatten lists the mapping's scalar leaves in document order.
func flatten(prefix string, m *yaml.Node) []domain.ParameterEntry {
	var out []domain.ParameterEntry
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := prefix + m.Content[i].Value
		val := m.Content[i+1]
		switch val.Kind {
		case yaml.MappingNode:
			out = append(out, flatten(key+".", val)...)
		case yaml.SequenceNode:
			items := make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				items = append(items, item.Value)
			}
			out = append(out, domain.ParameterEntry{Key: key, Value: "[" + strings.Join(items, ", ") + "]"})
		default:
			out = append(out, domain.ParameterEntry{Key: key, Value: val.Value})
		}
	}
	return out
}

// LoadDomains reads the domain table at path: name, start, stop and an
// optional colour.
func (s *Service) LoadDomains(path string) ([]domain.Domain, error) {
	t, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	nameCol, err := t.require("domain", "name")
	if err != nil {
		return nil, err
	}
	startCol, err := t.require("start")
	if err != nil {
		return nil, err
	}
	stopCol, err := t.require("stop", "end")
	if err != nil {
		return nil, err
	}
	colorCol, hasColor := t.column("color", "colour")

	var out []domain.Domain
	for {
		rec, line, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		d := domain.Domain{Name: strings.TrimSpace(rec[nameCol])}
		if d.Name == "" {
			return nil, domain.Malformed(domain.StageLoad, t.where(line), "domain", "empty domain name", nil)
		}
		if d.Interval.Start, err = t.position(rec, startCol, line, "start"); err != nil {
			return nil, err
		}
		if d.Interval.End, err = t.position(rec, stopCol, line, "stop"); err != nil {
			return nil, err
		}
		if !d.Interval.Valid() {
			return nil, domain.InvalidRange(domain.StageLoad, t.where(line),
				fmt.Sprintf("domain %q starts at %d after its end %d", d.Name, d.Interval.Start, d.Interval.End))
		}
		if c := optional(rec, colorCol, hasColor); c != "" {
			if !hexColor.MatchString(c) {
				return nil, domain.Malformed(domain.StageLoad, t.where(line), "color",
					fmt.Sprintf("%q is not a #RRGGBB colour", c), nil)
			}
			d.Color = strings.ToLower(c)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, domain.Malformed(domain.StageLoad, path, "", "no domain rows", nil)
	}
	return out, nil
}

// Compile-time assertions that Service implements the loader contracts.
var (
	_ domain.ContactLoader    = (*Service)(nil)
	_ domain.ParametersLoader = (*Service)(nil)
	_ domain.DomainLoader     = (*Service)(nil)
)
