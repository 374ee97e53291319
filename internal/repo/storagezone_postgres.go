package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const storageZoneSelect = `
	SELECT z.id, z.name, z.comment, z.storage_condition_id, sc.name
	FROM storagezones z
	JOIN storageconditions sc ON sc.id = z.storage_condition_id`

type PostgresStorageZoneRepository struct {
	db *sql.DB
}

func NewPostgresStorageZoneRepository(db *sql.DB) *PostgresStorageZoneRepository {
	return &PostgresStorageZoneRepository{db: db}
}

func scanStorageZone(s scanner) (models.StorageZone, error) {
	var (
		z       models.StorageZone
		comment sql.NullString
	)
	if err := s.Scan(&z.ID, &z.Name, &comment, &z.StorageConditionID, &z.StorageCondition); err != nil {
		return models.StorageZone{}, err
	}
	z.Comment = stringPtr(comment)
	return z, nil
}

func getStorageZone(ctx context.Context, q queryer, id int) (models.StorageZone, error) {
	z, err := scanStorageZone(q.QueryRowContext(ctx, storageZoneSelect+" WHERE z.id = $1", id))
	if err != nil {
		return models.StorageZone{}, notFound(err)
	}
	return z, nil
}

func (r *PostgresStorageZoneRepository) List(ctx context.Context) ([]models.StorageZone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, storageZoneSelect+" ORDER BY z.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []models.StorageZone{}
	for rows.Next() {
		z, err := scanStorageZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *PostgresStorageZoneRepository) GetByID(ctx context.Context, id int) (models.StorageZone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getStorageZone(ctx, r.db, id)
}

func (r *PostgresStorageZoneRepository) Create(ctx context.Context, z models.StorageZone) (models.StorageZone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created models.StorageZone
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureExists(ctx, tx, string(StorageConditions), z.StorageConditionID, StorageConditions.Label()); err != nil {
			return err
		}
		var id int
		err := tx.QueryRowContext(ctx,
			`INSERT INTO storagezones (name, comment, storage_condition_id) VALUES ($1, $2, $3) RETURNING id`,
			z.Name, nullString(z.Comment), z.StorageConditionID).Scan(&id)
		if err != nil {
			return translateError(err)
		}
		created, err = getStorageZone(ctx, tx, id)
		return err
	})
	return created, err
}

func (r *PostgresStorageZoneRepository) Update(ctx context.Context, z models.StorageZone) (models.StorageZone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated models.StorageZone
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := rowExists(ctx, tx, "storagezones", z.ID); err != nil {
			return err
		}
		if err := ensureExists(ctx, tx, string(StorageConditions), z.StorageConditionID, StorageConditions.Label()); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE storagezones SET name = $1, comment = $2, storage_condition_id = $3 WHERE id = $4`,
			z.Name, nullString(z.Comment), z.StorageConditionID, z.ID)
		if err != nil {
			return translateError(err)
		}
		updated, err = getStorageZone(ctx, tx, z.ID)
		return err
	})
	return updated, err
}

func (r *PostgresStorageZoneRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "storagezones", id)
}
