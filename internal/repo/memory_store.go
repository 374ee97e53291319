package repo

import (
	"maps"
	"slices"
	"sync"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

// InMemoryStore keeps every table in process memory. It enforces the same
// foreign keys as the Postgres schema: references are checked on write and
// deleting a referenced row fails with ErrConflict.
type InMemoryStore struct {
	mu sync.RWMutex

	seq       map[string]int
	named     map[ReferenceTable]map[int]string
	companies map[int]models.Company
	documents map[int]models.Document
	lines     map[int]models.DocumentLine
	products  map[int]models.Product
	employees map[int]models.Employee
	zones     map[int]models.StorageZone
}

func NewInMemoryStore() *InMemoryStore {
	s := &InMemoryStore{
		seq:       map[string]int{},
		named:     map[ReferenceTable]map[int]string{},
		companies: map[int]models.Company{},
		documents: map[int]models.Document{},
		lines:     map[int]models.DocumentLine{},
		products:  map[int]models.Product{},
		employees: map[int]models.Employee{},
		zones:     map[int]models.StorageZone{},
	}
	for _, t := range ReferenceTables {
		s.named[t] = map[int]string{}
	}
	return s
}

// defaultReferences mirrors the rows seeded by the reference data migration.
var defaultReferences = map[ReferenceTable][]string{
	Roles:        {"administrator", "storekeeper", "manager"},
	Positions:    {"Warehouse manager", "Storekeeper", "Accountant"},
	Subdivisions: {"Main warehouse", "Accounting"},
}

// SeedReferences fills the read only lookup tables the way the migrations
// do for Postgres.
func (s *InMemoryStore) SeedReferences() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range ReferenceTables {
		for _, name := range defaultReferences[t] {
			s.named[t][s.nextID(string(t))] = name
		}
	}
}

// Repositories returns repositories that share this store.
func (s *InMemoryStore) Repositories() Repositories {
	refs := make(map[ReferenceTable]NamedRepository, len(ReferenceTables))
	for _, t := range ReferenceTables {
		refs[t] = NewInMemoryNamedRepository(s, t)
	}
	return Repositories{
		References:    refs,
		Companies:     NewInMemoryCompanyRepository(s),
		Documents:     NewInMemoryDocumentRepository(s),
		DocumentLines: NewInMemoryDocumentLineRepository(s),
		Products:      NewInMemoryProductRepository(s),
		Employees:     NewInMemoryEmployeeRepository(s),
		StorageZones:  NewInMemoryStorageZoneRepository(s),
		Metrics:       NewInMemoryMetricsRepository(s),
	}
}

// nextID mimics a SERIAL column. Callers hold the write lock.
func (s *InMemoryStore) nextID(table string) int {
	s.seq[table]++
	return s.seq[table]
}

func (s *InMemoryStore) exists(table string, id int) bool {
	var ok bool
	switch table {
	case "companies":
		_, ok = s.companies[id]
	case "documents":
		_, ok = s.documents[id]
	case "documentlines":
		_, ok = s.lines[id]
	case "products":
		_, ok = s.products[id]
	case "employees":
		_, ok = s.employees[id]
	case "storagezones":
		_, ok = s.zones[id]
	default:
		_, ok = s.named[ReferenceTable(table)][id]
	}
	return ok
}

func (s *InMemoryStore) requireRef(table string, id int, entity string) error {
	if !s.exists(table, id) {
		return &ReferenceError{Entity: entity, ID: id}
	}
	return nil
}

func (s *InMemoryStore) requireOptionalRef(table string, id *int, entity string) error {
	if id == nil {
		return nil
	}
	return s.requireRef(table, *id, entity)
}

func sameID(p *int, id int) bool {
	return p != nil && *p == id
}

// referenced reports whether any row points at table/id.
func (s *InMemoryStore) referenced(table string, id int) bool {
	switch table {
	case string(CompanyTypes):
		return anyRow(s.companies, func(c models.Company) bool { return c.CompanyTypeID == id })
	case string(DocumentTypes):
		return anyRow(s.documents, func(d models.Document) bool { return d.DocumentTypeID == id })
	case "companies":
		return anyRow(s.documents, func(d models.Document) bool { return sameID(d.CompanyID, id) })
	case string(Categories):
		return anyRow(s.products, func(p models.Product) bool { return sameID(p.CategoryID, id) })
	case string(Units):
		return anyRow(s.products, func(p models.Product) bool { return sameID(p.UnitID, id) })
	case string(Positions):
		return anyRow(s.employees, func(e models.Employee) bool { return sameID(e.PositionID, id) })
	case string(Subdivisions):
		return anyRow(s.employees, func(e models.Employee) bool { return sameID(e.SubdivisionID, id) })
	case string(Roles):
		return anyRow(s.employees, func(e models.Employee) bool { return sameID(e.RoleID, id) })
	case string(StorageConditions):
		return anyRow(s.zones, func(z models.StorageZone) bool { return z.StorageConditionID == id })
	case "products":
		return anyRow(s.lines, func(l models.DocumentLine) bool { return l.ProductID == id })
	case "documents":
		return anyRow(s.lines, func(l models.DocumentLine) bool { return l.DocumentID == id })
	case "storagezones":
		return anyRow(s.lines, func(l models.DocumentLine) bool {
			return sameID(l.StorageZoneSenderID, id) || sameID(l.StorageZoneReceiverID, id)
		})
	}
	return false
}

// remove deletes table/id honouring the foreign keys.
func (s *InMemoryStore) remove(table string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(table, id) {
		return ErrNotFound
	}
	if s.referenced(table, id) {
		return ErrConflict
	}
	switch table {
	case "companies":
		delete(s.companies, id)
	case "documents":
		delete(s.documents, id)
	case "documentlines":
		delete(s.lines, id)
	case "products":
		delete(s.products, id)
	case "employees":
		delete(s.employees, id)
	case "storagezones":
		delete(s.zones, id)
	default:
		delete(s.named[ReferenceTable(table)], id)
	}
	return nil
}

func (s *InMemoryStore) name(t ReferenceTable, id *int) *string {
	if id == nil {
		return nil
	}
	n, ok := s.named[t][*id]
	if !ok {
		return nil
	}
	return &n
}

func (s *InMemoryStore) zoneName(id *int) *string {
	if id == nil {
		return nil
	}
	z, ok := s.zones[*id]
	if !ok {
		return nil
	}
	return &z.Name
}

func anyRow[T any](rows map[int]T, match func(T) bool) bool {
	for _, r := range rows {
		if match(r) {
			return true
		}
	}
	return false
}

// sortedRows returns the rows ordered by id.
func sortedRows[T any](rows map[int]T) []T {
	out := make([]T, 0, len(rows))
	for _, id := range sortedIDs(rows) {
		out = append(out, rows[id])
	}
	return out
}

func sortedIDs[T any](rows map[int]T) []int {
	return slices.Sorted(maps.Keys(rows))
}
