package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]models.Company, error)
	GetByID(ctx context.Context, id int) (models.Company, error)
	Create(ctx context.Context, c models.Company) (models.Company, error)
	Update(ctx context.Context, c models.Company) (models.Company, error)
	Delete(ctx context.Context, id int) error
}
