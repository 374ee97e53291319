package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const companySelect = `
	SELECT c.id, c.name, c.company_type_id, ct.name
	FROM companies c
	JOIN companytypes ct ON ct.id = c.company_type_id`

type PostgresCompanyRepository struct {
	db *sql.DB
}

func NewPostgresCompanyRepository(db *sql.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func scanCompany(s scanner) (models.Company, error) {
	var c models.Company
	err := s.Scan(&c.ID, &c.Name, &c.CompanyTypeID, &c.CompanyType)
	return c, err
}

func getCompany(ctx context.Context, q queryer, id int) (models.Company, error) {
	c, err := scanCompany(q.QueryRowContext(ctx, companySelect+" WHERE c.id = $1", id))
	if err != nil {
		return models.Company{}, notFound(err)
	}
	return c, nil
}

func (r *PostgresCompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, companySelect+" ORDER BY c.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id int) (models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getCompany(ctx, r.db, id)
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c models.Company) (models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created models.Company
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureExists(ctx, tx, string(CompanyTypes), c.CompanyTypeID, CompanyTypes.Label()); err != nil {
			return err
		}
		var id int
		err := tx.QueryRowContext(ctx,
			`INSERT INTO companies (name, company_type_id) VALUES ($1, $2) RETURNING id`,
			c.Name, c.CompanyTypeID).Scan(&id)
		if err != nil {
			return translateError(err)
		}
		created, err = getCompany(ctx, tx, id)
		return err
	})
	return created, err
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c models.Company) (models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated models.Company
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := rowExists(ctx, tx, "companies", c.ID); err != nil {
			return err
		}
		if err := ensureExists(ctx, tx, string(CompanyTypes), c.CompanyTypeID, CompanyTypes.Label()); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE companies SET name = $1, company_type_id = $2 WHERE id = $3`,
			c.Name, c.CompanyTypeID, c.ID)
		if err != nil {
			return translateError(err)
		}
		updated, err = getCompany(ctx, tx, c.ID)
		return err
	})
	return updated, err
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "companies", id)
}
