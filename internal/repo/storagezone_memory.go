package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type InMemoryStorageZoneRepository struct {
	s *InMemoryStore
}

func NewInMemoryStorageZoneRepository(s *InMemoryStore) *InMemoryStorageZoneRepository {
	return &InMemoryStorageZoneRepository{s: s}
}

func (r *InMemoryStorageZoneRepository) resolve(z models.StorageZone) models.StorageZone {
	z.StorageCondition = r.s.named[StorageConditions][z.StorageConditionID]
	return z
}

func (r *InMemoryStorageZoneRepository) List(_ context.Context) ([]models.StorageZone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	zones := sortedRows(r.s.zones)
	for i := range zones {
		zones[i] = r.resolve(zones[i])
	}
	return zones, nil
}

func (r *InMemoryStorageZoneRepository) GetByID(_ context.Context, id int) (models.StorageZone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	z, ok := r.s.zones[id]
	if !ok {
		return models.StorageZone{}, ErrNotFound
	}
	return r.resolve(z), nil
}

func (r *InMemoryStorageZoneRepository) Create(_ context.Context, z models.StorageZone) (models.StorageZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.requireRef(string(StorageConditions), z.StorageConditionID, StorageConditions.Label()); err != nil {
		return models.StorageZone{}, err
	}
	z.ID = r.s.nextID("storagezones")
	r.s.zones[z.ID] = z
	return r.resolve(z), nil
}

func (r *InMemoryStorageZoneRepository) Update(_ context.Context, z models.StorageZone) (models.StorageZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.zones[z.ID]; !ok {
		return models.StorageZone{}, ErrNotFound
	}
	if err := r.s.requireRef(string(StorageConditions), z.StorageConditionID, StorageConditions.Label()); err != nil {
		return models.StorageZone{}, err
	}
	r.s.zones[z.ID] = z
	return r.resolve(z), nil
}

func (r *InMemoryStorageZoneRepository) Delete(_ context.Context, id int) error {
	return r.s.remove("storagezones", id)
}
