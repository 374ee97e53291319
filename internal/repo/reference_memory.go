package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type InMemoryNamedRepository struct {
	s     *InMemoryStore
	table ReferenceTable
}

func NewInMemoryNamedRepository(s *InMemoryStore, table ReferenceTable) *InMemoryNamedRepository {
	return &InMemoryNamedRepository{s: s, table: table}
}

func (r *InMemoryNamedRepository) List(_ context.Context) ([]models.NamedEntity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := r.s.named[r.table]
	items := make([]models.NamedEntity, 0, len(rows))
	for _, id := range sortedIDs(rows) {
		items = append(items, models.NamedEntity{ID: id, Name: rows[id]})
	}
	return items, nil
}

func (r *InMemoryNamedRepository) GetByID(_ context.Context, id int) (models.NamedEntity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	name, ok := r.s.named[r.table][id]
	if !ok {
		return models.NamedEntity{}, ErrNotFound
	}
	return models.NamedEntity{ID: id, Name: name}, nil
}

func (r *InMemoryNamedRepository) Create(_ context.Context, name string) (models.NamedEntity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := r.s.nextID(string(r.table))
	r.s.named[r.table][id] = name
	return models.NamedEntity{ID: id, Name: name}, nil
}

func (r *InMemoryNamedRepository) Update(_ context.Context, id int, name string) (models.NamedEntity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.named[r.table][id]; !ok {
		return models.NamedEntity{}, ErrNotFound
	}
	r.s.named[r.table][id] = name
	return models.NamedEntity{ID: id, Name: name}, nil
}

func (r *InMemoryNamedRepository) Delete(_ context.Context, id int) error {
	return r.s.remove(string(r.table), id)
}
