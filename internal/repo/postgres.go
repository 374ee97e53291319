package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const queryTimeout = 3 * time.Second

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// succeeds and rolled back otherwise.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", translateError(err))
	}
	return nil
}

// ensureExists returns a *ReferenceError when table has no row with id.
func ensureExists(ctx context.Context, q queryer, table string, id int, entity string) error {
	var exists bool
	err := q.QueryRowContext(ctx, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table), id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check %s %d: %w", table, id, err)
	}
	if !exists {
		return &ReferenceError{Entity: entity, ID: id}
	}
	return nil
}

// ensureOptional is ensureExists for nullable foreign keys.
func ensureOptional(ctx context.Context, q queryer, table string, id *int, entity string) error {
	if id == nil {
		return nil
	}
	return ensureExists(ctx, q, table, *id, entity)
}

// rowExists reports ErrNotFound when table has no row with id.
func rowExists(ctx context.Context, q queryer, table string, id int) error {
	var exists bool
	err := q.QueryRowContext(ctx, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table), id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *sql.DB, table string, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return withTx(ctx, db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
		if err != nil {
			return translateError(err)
		}
		rowsAffected, _ := res.RowsAffected()
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// lastInsertedID reads the id assigned by the most recent insert into table
// on the current session. Stored procedures do not return the id themselves.
func lastInsertedID(ctx context.Context, tx *sql.Tx, table string) (int, error) {
	var id int
	err := tx.QueryRowContext(ctx, "SELECT currval(pg_get_serial_sequence($1, 'id'))", table).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("read %s id: %w", table, err)
	}
	return id, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
