package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound matches every *ReferenceError.
	ErrReferenceNotFound = errors.New("referenced entity not found")
	// ErrConflict is returned when the storage engine rejects a change
	// because of a foreign key or unique constraint.
	ErrConflict = errors.New("conflict")
)

// ReferenceError reports a foreign key id that points to no row.
type ReferenceError struct {
	Entity string
	ID     int
}

func (e *ReferenceError) Error() string {
	return e.Entity + " not found"
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// ProcedureError wraps a failure raised inside a stored procedure.
type ProcedureError struct {
	Procedure string
	Err       error
}

func (e *ProcedureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Procedure, e.Err)
}

func (e *ProcedureError) Unwrap() error {
	return e.Err
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError maps constraint violations reported by Postgres to ErrConflict.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.Message)
		}
	}
	return err
}
