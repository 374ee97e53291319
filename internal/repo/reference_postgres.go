package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type PostgresNamedRepository struct {
	db    *sql.DB
	table ReferenceTable
}

func NewPostgresNamedRepository(db *sql.DB, table ReferenceTable) *PostgresNamedRepository {
	return &PostgresNamedRepository{db: db, table: table}
}

func (r *PostgresNamedRepository) List(ctx context.Context) ([]models.NamedEntity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT id, name FROM %s ORDER BY id", r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.NamedEntity{}
	for rows.Next() {
		var e models.NamedEntity
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *PostgresNamedRepository) GetByID(ctx context.Context, id int) (models.NamedEntity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var e models.NamedEntity
	err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT id, name FROM %s WHERE id = $1", r.table), id).Scan(&e.ID, &e.Name)
	if err != nil {
		return models.NamedEntity{}, notFound(err)
	}
	return e, nil
}

func (r *PostgresNamedRepository) Create(ctx context.Context, name string) (models.NamedEntity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	e := models.NamedEntity{Name: name}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING id", r.table), name).Scan(&e.ID)
	})
	if err != nil {
		return models.NamedEntity{}, translateError(err)
	}
	return e, nil
}

func (r *PostgresNamedRepository) Update(ctx context.Context, id int, name string) (models.NamedEntity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET name = $1 WHERE id = $2", r.table), name, id)
		if err != nil {
			return translateError(err)
		}
		rowsAffected, _ := res.RowsAffected()
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return models.NamedEntity{}, err
	}
	return models.NamedEntity{ID: id, Name: name}, nil
}

func (r *PostgresNamedRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, string(r.table), id)
}
