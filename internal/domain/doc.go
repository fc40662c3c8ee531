// Package domain defines the records and contracts shared across contactplot.
// It contains plain types (contacts, intervals, domains, rendered artifacts),
// the error kinds surfaced to the CLI, and the interfaces services implement.
package domain
