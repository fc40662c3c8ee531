// Package loader reads and validates the three input files of a run: the
// contacts table, the run-parameters document and the optional domain table.
//
// Tables are comma separated with a header row; column names are matched
// case-insensitively after trimming. Every failure is a domain.Error of kind
// ErrMalformedInput (or ErrInvalidRange for reversed domain bounds) naming the
// file, the line and the column.
package loader
