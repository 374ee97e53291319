package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type DocumentLineRepository interface {
	// ListByDocument returns ErrNotFound when the document does not exist.
	ListByDocument(ctx context.Context, documentID int) ([]models.DocumentLine, error)
	GetByID(ctx context.Context, id int) (models.DocumentLine, error)
	Create(ctx context.Context, l models.DocumentLine) (models.DocumentLine, error)
	Update(ctx context.Context, l models.DocumentLine) (models.DocumentLine, error)
	Delete(ctx context.Context, id int) error
}
