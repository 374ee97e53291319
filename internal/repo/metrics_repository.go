package repo

import "context"

// Metrics is the dashboard summary of the inventory.
type Metrics struct {
	TotalProducts     int `json:"total_products"`
	ActiveProducts    int `json:"active_products"`
	TotalDocuments    int `json:"total_documents"`
	TotalEmployees    int `json:"total_employees"`
	TotalStorageZones int `json:"total_storage_zones"`
	TotalCompanies    int `json:"total_companies"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
