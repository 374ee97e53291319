package repo

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var m Metrics
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE is_active),
			(SELECT COUNT(*) FROM documents),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM storagezones),
			(SELECT COUNT(*) FROM companies)
	`).Scan(&m.TotalProducts, &m.ActiveProducts, &m.TotalDocuments, &m.TotalEmployees, &m.TotalStorageZones, &m.TotalCompanies)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to load dashboard metrics: %w", err)
	}
	return m, nil
}
