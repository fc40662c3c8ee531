package interfaces

import domaintypes "contactplot/internal/domain/types"

// ContactLoader reads the contacts table.
type ContactLoader interface {
	// LoadContacts returns every row of the table at path, reading the
	// contact metric from the metric column.
	LoadContacts(path, metric string) ([]domaintypes.Contact, error)
}

// ParametersLoader reads the run-parameters document.
type ParametersLoader interface {
	LoadParameters(path string) (domaintypes.Parameters, error)
}

// DomainLoader reads the domain annotation table.
type DomainLoader interface {
	LoadDomains(path string) ([]domaintypes.Domain, error)
}
