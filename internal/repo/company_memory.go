package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type InMemoryCompanyRepository struct {
	s *InMemoryStore
}

func NewInMemoryCompanyRepository(s *InMemoryStore) *InMemoryCompanyRepository {
	return &InMemoryCompanyRepository{s: s}
}

func (r *InMemoryCompanyRepository) resolve(c models.Company) models.Company {
	c.CompanyType = r.s.named[CompanyTypes][c.CompanyTypeID]
	return c
}

func (r *InMemoryCompanyRepository) List(_ context.Context) ([]models.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	companies := sortedRows(r.s.companies)
	for i := range companies {
		companies[i] = r.resolve(companies[i])
	}
	return companies, nil
}

func (r *InMemoryCompanyRepository) GetByID(_ context.Context, id int) (models.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.companies[id]
	if !ok {
		return models.Company{}, ErrNotFound
	}
	return r.resolve(c), nil
}

func (r *InMemoryCompanyRepository) Create(_ context.Context, c models.Company) (models.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.requireRef(string(CompanyTypes), c.CompanyTypeID, CompanyTypes.Label()); err != nil {
		return models.Company{}, err
	}
	c.ID = r.s.nextID("companies")
	r.s.companies[c.ID] = c
	return r.resolve(c), nil
}

func (r *InMemoryCompanyRepository) Update(_ context.Context, c models.Company) (models.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[c.ID]; !ok {
		return models.Company{}, ErrNotFound
	}
	if err := r.s.requireRef(string(CompanyTypes), c.CompanyTypeID, CompanyTypes.Label()); err != nil {
		return models.Company{}, err
	}
	r.s.companies[c.ID] = c
	return r.resolve(c), nil
}

func (r *InMemoryCompanyRepository) Delete(_ context.Context, id int) error {
	return r.s.remove("companies", id)
}
