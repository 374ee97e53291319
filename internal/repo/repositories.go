package repo

import "database/sql"

// Repositories groups one repository per resource.
type Repositories struct {
	References    map[ReferenceTable]NamedRepository
	Companies     CompanyRepository
	Documents     DocumentRepository
	DocumentLines DocumentLineRepository
	Products      ProductRepository
	Employees     EmployeeRepository
	StorageZones  StorageZoneRepository
	Metrics       MetricsRepository
}

func NewPostgresRepositories(db *sql.DB) Repositories {
	refs := make(map[ReferenceTable]NamedRepository, len(ReferenceTables))
	for _, t := range ReferenceTables {
		refs[t] = NewPostgresNamedRepository(db, t)
	}
	return Repositories{
		References:    refs,
		Companies:     NewPostgresCompanyRepository(db),
		Documents:     NewPostgresDocumentRepository(db),
		DocumentLines: NewPostgresDocumentLineRepository(db),
		Products:      NewPostgresProductRepository(db),
		Employees:     NewPostgresEmployeeRepository(db),
		StorageZones:  NewPostgresStorageZoneRepository(db),
		Metrics:       NewPostgresMetricsRepository(db),
	}
}
