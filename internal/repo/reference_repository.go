package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

// ReferenceTable names one of the id/name lookup tables.
type ReferenceTable string

const (
	CompanyTypes      ReferenceTable = "companytypes"
	DocumentTypes     ReferenceTable = "documenttypes"
	Categories        ReferenceTable = "categories"
	Units             ReferenceTable = "units"
	Roles             ReferenceTable = "roles"
	Positions         ReferenceTable = "positions"
	Subdivisions      ReferenceTable = "subdivisions"
	StorageConditions ReferenceTable = "storageconditions"
)

// ReferenceTables lists every lookup table in schema order.
var ReferenceTables = []ReferenceTable{
	CompanyTypes, DocumentTypes, Categories, Units,
	Roles, Positions, Subdivisions, StorageConditions,
}

// Label is the human readable entity name used in messages.
func (t ReferenceTable) Label() string {
	switch t {
	case CompanyTypes:
		return "Company type"
	case DocumentTypes:
		return "Document type"
	case Categories:
		return "Category"
	case Units:
		return "Unit"
	case Roles:
		return "Role"
	case Positions:
		return "Position"
	case Subdivisions:
		return "Subdivision"
	case StorageConditions:
		return "Storage condition"
	default:
		return string(t)
	}
}

// MaxNameLength is the width of the name column in characters.
func (t ReferenceTable) MaxNameLength() int {
	if t == StorageConditions {
		return 255
	}
	return 45
}

// NamedRepository serves a lookup table.
type NamedRepository interface {
	List(ctx context.Context) ([]models.NamedEntity, error)
	GetByID(ctx context.Context, id int) (models.NamedEntity, error)
	Create(ctx context.Context, name string) (models.NamedEntity, error)
	Update(ctx context.Context, id int, name string) (models.NamedEntity, error)
	Delete(ctx context.Context, id int) error
}
