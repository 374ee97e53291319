package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

// DocumentPatch carries the fields of a partial document update.
// Nil and unset fields keep their stored value; a set Optional with a nil
// value clears the column.
type DocumentPatch struct {
	Number         *string
	Date           *time.Time
	Comment        models.Optional[string]
	CompanyID      models.Optional[int]
	DocumentTypeID *int
}

func (p DocumentPatch) apply(d models.Document) models.Document {
	if p.Number != nil {
		d.Number = *p.Number
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	d.Comment = p.Comment.Or(d.Comment)
	d.CompanyID = p.CompanyID.Or(d.CompanyID)
	if p.DocumentTypeID != nil {
		d.DocumentTypeID = *p.DocumentTypeID
	}
	return d
}

type DocumentRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	GetByID(ctx context.Context, id int) (models.Document, error)
	Create(ctx context.Context, d models.Document) (models.Document, error)
	Update(ctx context.Context, id int, patch DocumentPatch) (models.Document, error)
	Delete(ctx context.Context, id int) error
}
