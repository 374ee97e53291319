package repo

import "context"

type InMemoryMetricsRepository struct {
	s *InMemoryStore
}

func NewInMemoryMetricsRepository(s *InMemoryStore) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{s: s}
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(_ context.Context) (Metrics, error) {
	i.s.mu.RLock()
	defer i.s.mu.RUnlock()

	m := Metrics{
		TotalProducts:     len(i.s.products),
		TotalDocuments:    len(i.s.documents),
		TotalEmployees:    len(i.s.employees),
		TotalStorageZones: len(i.s.zones),
		TotalCompanies:    len(i.s.companies),
	}
	for _, p := range i.s.products {
		if p.IsActive {
			m.ActiveProducts++
		}
	}
	return m, nil
}
