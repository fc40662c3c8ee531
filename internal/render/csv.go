package render

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"contactplot/internal/domain"
)

const listSeparator = " | "

func encodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func domainCountRows(counts []domain.DomainCount) [][]string {
	rows := [][]string{{"domain", "start", "stop", "contacts"}}
	for _, dc := range counts {
		rows = append(rows, []string{
			dc.Domain.Name,
			strconv.Itoa(dc.Domain.Interval.Start.Int()),
			strconv.Itoa(dc.Domain.Interval.End.Int()),
			strconv.Itoa(dc.Count),
		})
	}
	return rows
}

func outlierRows(metric string, pairs []domain.AnnotatedPair) [][]string {
	rows := [][]string{{
		"ordinate position", "ordinate residue", "ordinate domains",
		"abscissa position", "abscissa residue", "abscissa domains",
		metric, "atoms contacts", "ordinate type", "contacts ID",
	}}
	for _, p := range pairs {
		rows = append(rows, []string{
			strconv.Itoa(p.OrdinatePosition.Int()),
			p.OrdinateResidue,
			strings.Join(p.OrdinateDomains, listSeparator),
			strconv.Itoa(p.AbscissaPosition.Int()),
			p.AbscissaResidue,
			strings.Join(p.AbscissaDomains, listSeparator),
			strconv.FormatFloat(p.Metric, 'f', -1, 64),
			strconv.Itoa(p.AtomContacts),
			p.OrdinateType.String(),
			strings.Join(p.ContactIDs, listSeparator),
		})
	}
	return rows
}
