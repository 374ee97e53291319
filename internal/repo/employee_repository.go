package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int) (models.Employee, error)
	GetByLogin(ctx context.Context, login string) (models.Employee, error)
	// Create goes through the create_employee procedure. PasswordHash must
	// already be hashed.
	Create(ctx context.Context, e models.Employee) (models.Employee, error)
	// Update replaces every field. An empty PasswordHash keeps the stored one.
	Update(ctx context.Context, e models.Employee) (models.Employee, error)
	Delete(ctx context.Context, id int) error
}
