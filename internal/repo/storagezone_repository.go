package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type StorageZoneRepository interface {
	List(ctx context.Context) ([]models.StorageZone, error)
	GetByID(ctx context.Context, id int) (models.StorageZone, error)
	Create(ctx context.Context, z models.StorageZone) (models.StorageZone, error)
	Update(ctx context.Context, z models.StorageZone) (models.StorageZone, error)
	Delete(ctx context.Context, id int) error
}
