package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const employeeSelect = `
	SELECT e.id, e.login, e.password, e.first_name, e.last_name, e.passport_series, e.passport_number,
	       e.email, e.number_phone, e.date_birth,
	       e.position_id, p.name, e.subdivision_id, s.name, e.role_id, r.name
	FROM employees e
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN subdivisions s ON s.id = e.subdivision_id
	LEFT JOIN roles r ON r.id = e.role_id`

type PostgresEmployeeRepository struct {
	db *sql.DB
}

func NewPostgresEmployeeRepository(db *sql.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func scanEmployee(s scanner) (models.Employee, error) {
	var (
		e                                 models.Employee
		email, phone, birth               sql.NullString
		positionID, subdivisionID, roleID sql.NullInt64
		position, subdivision, role       sql.NullString
	)
	err := s.Scan(&e.ID, &e.Login, &e.PasswordHash, &e.FirstName, &e.LastName, &e.PassportSeries, &e.PassportNumber,
		&email, &phone, &birth,
		&positionID, &position, &subdivisionID, &subdivision, &roleID, &role)
	if err != nil {
		return models.Employee{}, err
	}
	e.Email = stringPtr(email)
	e.NumberPhone = stringPtr(phone)
	e.DateBirth = stringPtr(birth)
	e.PositionID = intPtr(positionID)
	e.Position = stringPtr(position)
	e.SubdivisionID = intPtr(subdivisionID)
	e.Subdivision = stringPtr(subdivision)
	e.RoleID = intPtr(roleID)
	e.Role = stringPtr(role)
	return e, nil
}

func getEmployee(ctx context.Context, q queryer, where string, arg any) (models.Employee, error) {
	e, err := scanEmployee(q.QueryRowContext(ctx, employeeSelect+" WHERE "+where, arg))
	if err != nil {
		return models.Employee{}, notFound(err)
	}
	return e, nil
}

func validateEmployeeRefs(ctx context.Context, q queryer, e models.Employee) error {
	if err := ensureOptional(ctx, q, string(Positions), e.PositionID, Positions.Label()); err != nil {
		return err
	}
	if err := ensureOptional(ctx, q, string(Subdivisions), e.SubdivisionID, Subdivisions.Label()); err != nil {
		return err
	}
	return ensureOptional(ctx, q, string(Roles), e.RoleID, Roles.Label())
}

func (r *PostgresEmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, employeeSelect+" ORDER BY e.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id int) (models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getEmployee(ctx, r.db, "e.id = $1", id)
}

func (r *PostgresEmployeeRepository) GetByLogin(ctx context.Context, login string) (models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getEmployee(ctx, r.db, "e.login = $1", login)
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, e models.Employee) (models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created models.Employee
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := validateEmployeeRefs(ctx, tx, e); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`CALL create_employee($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			e.Login, e.PasswordHash, e.FirstName, e.LastName, e.PassportSeries, e.PassportNumber,
			nullString(e.Email), nullString(e.NumberPhone), nullString(e.DateBirth),
			nullInt(e.PositionID), nullInt(e.SubdivisionID), nullInt(e.RoleID))
		if err != nil {
			return &ProcedureError{Procedure: "create_employee", Err: err}
		}
		id, err := lastInsertedID(ctx, tx, "employees")
		if err != nil {
			return err
		}
		created, err = getEmployee(ctx, tx, "e.id = $1", id)
		return err
	})
	return created, err
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, e models.Employee) (models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated models.Employee
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getEmployee(ctx, tx, "e.id = $1", e.ID)
		if err != nil {
			return err
		}
		if e.PasswordHash == "" {
			e.PasswordHash = current.PasswordHash
		}
		if err := validateEmployeeRefs(ctx, tx, e); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE employees SET login = $1, password = $2, first_name = $3, last_name = $4,
			        passport_series = $5, passport_number = $6, email = $7, number_phone = $8, date_birth = $9,
			        position_id = $10, subdivision_id = $11, role_id = $12
			 WHERE id = $13`,
			e.Login, e.PasswordHash, e.FirstName, e.LastName, e.PassportSeries, e.PassportNumber,
			nullString(e.Email), nullString(e.NumberPhone), nullString(e.DateBirth),
			nullInt(e.PositionID), nullInt(e.SubdivisionID), nullInt(e.RoleID), e.ID)
		if err != nil {
			return translateError(err)
		}
		updated, err = getEmployee(ctx, tx, "e.id = $1", e.ID)
		return err
	})
	return updated, err
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "employees", id)
}
