package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

// ProductPatch carries the fields of a partial product update.
// Nil and unset fields keep their stored value; a set Optional with a nil
// value clears the column.
type ProductPatch struct {
	Article       *int
	Name          *string
	PurchasePrice models.Optional[decimal.Decimal]
	SellPrice     models.Optional[decimal.Decimal]
	IsActive      *bool
	CategoryID    models.Optional[int]
	UnitID        models.Optional[int]
}

func (p ProductPatch) apply(pr models.Product) models.Product {
	if p.Article != nil {
		pr.Article = *p.Article
	}
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.PurchasePrice.Set {
		pr.PurchasePrice = nullDecimal(p.PurchasePrice.Value)
	}
	if p.SellPrice.Set {
		pr.SellPrice = nullDecimal(p.SellPrice.Value)
	}
	if p.IsActive != nil {
		pr.IsActive = *p.IsActive
	}
	pr.CategoryID = p.CategoryID.Or(pr.CategoryID)
	pr.UnitID = p.UnitID.Or(pr.UnitID)
	return pr
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// List returns the page selected by the filter and the number of
	// products matching it before pagination.
	List(ctx context.Context, filter ProductFilter) ([]models.Product, int, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetByArticle(ctx context.Context, article int) (models.Product, error)
	// Create goes through the create_product procedure; the product is always active.
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id int) error
	// Quantity returns the stock of a product held in a storage zone.
	Quantity(ctx context.Context, productID, zoneID int) (int, error)
}
