package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// It reproduces the checks made by create_product and get_inventory_quantity.
type InMemoryProductRepository struct {
	s *InMemoryStore
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(s *InMemoryStore) *InMemoryProductRepository {
	return &InMemoryProductRepository{s: s}
}

func (r *InMemoryProductRepository) resolve(p models.Product) models.Product {
	p.Category = r.s.name(Categories, p.CategoryID)
	p.Unit = r.s.name(Units, p.UnitID)
	return p
}

func (r *InMemoryProductRepository) validate(p models.Product) error {
	if err := r.s.requireOptionalRef(string(Categories), p.CategoryID, Categories.Label()); err != nil {
		return err
	}
	return r.s.requireOptionalRef(string(Units), p.UnitID, Units.Label())
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.Active != nil && p.IsActive != *pf.Active {
		return false
	}
	if pf.CategoryID != nil && !sameID(p.CategoryID, *pf.CategoryID) {
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (r *InMemoryProductRepository) List(_ context.Context, pf ProductFilter) ([]models.Product, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range sortedRows(r.s.products) {
		if matchesFilter(p, pf) {
			filtered = append(filtered, r.resolve(p))
		}
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return r.resolve(p), nil
}

func (r *InMemoryProductRepository) GetByArticle(_ context.Context, article int) (models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range sortedRows(r.s.products) {
		if p.Article == article {
			return r.resolve(p), nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Create adds a new active product.
func (r *InMemoryProductRepository) Create(_ context.Context, p models.Product) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.validate(p); err != nil {
		return models.Product{}, err
	}
	if (p.PurchasePrice.Valid && p.PurchasePrice.Decimal.IsNegative()) ||
		(p.SellPrice.Valid && p.SellPrice.Decimal.IsNegative()) {
		return models.Product{}, &ProcedureError{Procedure: "create_product", Err: errors.New("product price cannot be negative")}
	}
	p.ID = r.s.nextID("products")
	p.IsActive = true
	r.s.products[p.ID] = p
	return r.resolve(p), nil
}

// Update applies patch to an existing product.
func (r *InMemoryProductRepository) Update(_ context.Context, id int, patch ProductPatch) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	p := patch.apply(current)
	if err := r.validate(p); err != nil {
		return models.Product{}, err
	}
	r.s.products[id] = p
	return r.resolve(p), nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	return r.s.remove("products", id)
}

// Quantity sums the lines received into zoneID minus those sent from it,
// preferring the actual quantity when one was recorded.
func (r *InMemoryProductRepository) Quantity(_ context.Context, productID, zoneID int) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.products[productID]; !ok {
		return 0, &ProcedureError{Procedure: "get_inventory_quantity", Err: fmt.Errorf("product %d does not exist", productID)}
	}
	if _, ok := r.s.zones[zoneID]; !ok {
		return 0, &ProcedureError{Procedure: "get_inventory_quantity", Err: fmt.Errorf("storage zone %d does not exist", zoneID)}
	}

	total := 0
	for _, l := range r.s.lines {
		if l.ProductID != productID {
			continue
		}
		q := l.Quantity
		if l.ActualQuantity != nil {
			q = *l.ActualQuantity
		}
		if sameID(l.StorageZoneReceiverID, zoneID) {
			total += q
		}
		if sameID(l.StorageZoneSenderID, zoneID) {
			total -= q
		}
	}
	return total, nil
}
