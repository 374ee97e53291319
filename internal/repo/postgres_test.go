package repo

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestPostgresNamedRepository_List(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresNamedRepository(db, Units)

	mock.ExpectQuery(q("SELECT id, name FROM units ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "pcs").AddRow(2, "kg"))

	units, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "kg", units[1].Name)
}

func TestPostgresNamedRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresNamedRepository(db, Categories)

	mock.ExpectQuery(q("SELECT id, name FROM categories WHERE id = $1")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := r.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresNamedRepository_UpdateMissing(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresNamedRepository(db, CompanyTypes)

	mock.ExpectBegin()
	mock.ExpectExec(q("UPDATE companytypes SET name = $1 WHERE id = $2")).
		WithArgs("Retail", 4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := r.Update(context.Background(), 4, "Retail")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresCompanyRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresCompanyRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM companytypes WHERE id = $1)")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q("INSERT INTO companies (name, company_type_id) VALUES ($1, $2) RETURNING id")).
		WithArgs("Acme", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(q("WHERE c.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_type_id", "company_type"}).
			AddRow(1, "Acme", 1, "Distributor"))
	mock.ExpectCommit()

	c, err := r.Create(context.Background(), companyFixture("Acme", 1))
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "Distributor", c.CompanyType)
}

func TestPostgresCompanyRepository_Create_MissingType(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresCompanyRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM companytypes WHERE id = $1)")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := r.Create(context.Background(), companyFixture("Acme", 7))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Equal(t, "Company type not found", err.Error())
}

func TestDeleteByID(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(q("DELETE FROM products WHERE id = $1")).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewPostgresProductRepository(db).Delete(context.Background(), 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(q("DELETE FROM storagezones WHERE id = $1")).
			WithArgs(2).
			WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
		mock.ExpectRollback()

		err := NewPostgresStorageZoneRepository(db).Delete(context.Background(), 2)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(q("DELETE FROM companies WHERE id = $1")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, NewPostgresCompanyRepository(db).Delete(context.Background(), 1))
	})
}

var productColumns = []string{
	"id", "article", "name", "purchase_price", "sell_price", "is_active",
	"category_id", "category", "unit_id", "unit",
}

func TestPostgresProductRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(q("CALL create_product($1, $2, $3, $4, $5, $6)")).
		WithArgs(1001, "Bolt", sqlmock.AnyArg(), sqlmock.AnyArg(), 2, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q("SELECT currval(pg_get_serial_sequence($1, 'id'))")).
		WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"currval"}).AddRow(5))
	mock.ExpectQuery(q("WHERE p.id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(5, 1001, "Bolt", "1.50", "2.75", true, 2, "Hardware", nil, nil))
	mock.ExpectCommit()

	category := 2
	p, err := r.Create(context.Background(), productFixture(1001, "Bolt", "1.50", "2.75", &category))
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)
	assert.True(t, p.IsActive)
	assert.Equal(t, "2.75", p.SellPrice.Decimal.StringFixed(2))
	require.NotNil(t, p.Category)
	assert.Equal(t, "Hardware", *p.Category)
	assert.Nil(t, p.UnitID)
}

func TestPostgresProductRepository_Create_ProcedureFailure(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(q("CALL create_product")).
		WillReturnError(errors.New("product price cannot be negative"))
	mock.ExpectRollback()

	_, err := r.Create(context.Background(), productFixture(1, "Nut", "-1", "1", nil))
	var procErr *ProcedureError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "create_product", procErr.Procedure)
	assert.Contains(t, err.Error(), "product price cannot be negative")
}

func TestPostgresProductRepository_ListFiltered(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresProductRepository(db)

	limit := 10
	mock.ExpectQuery(q("SELECT COUNT(*) FROM products p WHERE 1=1 AND p.name ILIKE $1")).
		WithArgs("%bolt%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(q("WHERE 1=1 AND p.name ILIKE $1 ORDER BY p.id LIMIT $2")).
		WithArgs("%bolt%", 10).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(1, 1001, "Bolt", nil, nil, true, nil, nil, nil, nil))

	products, total, err := r.List(context.Background(), ProductFilter{Name: "bolt", Limit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.False(t, products[0].PurchasePrice.Valid)
}

func TestPostgresProductRepository_Quantity(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresProductRepository(db)

	mock.ExpectQuery(q("SELECT get_inventory_quantity($1, $2)")).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"get_inventory_quantity"}).AddRow(42))
	mock.ExpectQuery(q("SELECT get_inventory_quantity($1, $2)")).
		WithArgs(1, 99).
		WillReturnError(errors.New("storage zone 99 does not exist"))

	qty, err := r.Quantity(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, qty)

	_, err = r.Quantity(context.Background(), 1, 99)
	var procErr *ProcedureError
	assert.ErrorAs(t, err, &procErr)
}

var documentColumns = []string{
	"id", "number", "date", "comment", "company_id", "company", "document_type_id", "document_type",
}

func TestPostgresDocumentRepository_PartialUpdate(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresDocumentRepository(db)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(q("WHERE d.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(1, "INV-1", date, "first", nil, nil, 2, "Receipt"))
	mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM documenttypes WHERE id = $1)")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(q("UPDATE documents SET number = $1")).
		WithArgs("INV-1", date, "changed", nil, 2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(q("WHERE d.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(1, "INV-1", date, "changed", nil, nil, 2, "Receipt"))
	mock.ExpectCommit()

	d, err := r.Update(context.Background(), 1, DocumentPatch{Comment: models.Some("changed")})
	require.NoError(t, err)
	assert.Equal(t, "INV-1", d.Number)
	require.NotNil(t, d.Comment)
	assert.Equal(t, "changed", *d.Comment)
	assert.Nil(t, d.CompanyID)
}

func TestPostgresDocumentRepository_PatchClearsCompany(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresDocumentRepository(db)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(q("WHERE d.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(1, "INV-1", date, "first", 5, "Acme", 2, "Receipt"))
	mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM documenttypes WHERE id = $1)")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(q("UPDATE documents SET number = $1")).
		WithArgs("INV-1", date, "first", nil, 2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(q("WHERE d.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(1, "INV-1", date, "first", nil, nil, 2, "Receipt"))
	mock.ExpectCommit()

	d, err := r.Update(context.Background(), 1, DocumentPatch{CompanyID: models.Null[int]()})
	require.NoError(t, err)
	assert.Nil(t, d.CompanyID)
	require.NotNil(t, d.Comment)
	assert.Equal(t, "first", *d.Comment)
}

func TestPostgresDocumentLineRepository_ListByDocument_MissingDocument(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresDocumentLineRepository(db)

	mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := r.ListByDocument(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresEmployeeRepository_Create_DuplicateLogin(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(q("CALL create_employee")).
		WillReturnError(errors.New("employee with login jdoe already exists"))
	mock.ExpectRollback()

	_, err := r.Create(context.Background(), employeeFixture("jdoe"))
	var procErr *ProcedureError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "create_employee", procErr.Procedure)
}

func TestPostgresMetricsRepository(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresMetricsRepository(db)

	mock.ExpectQuery(q("(SELECT COUNT(*) FROM products WHERE is_active)")).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f"}).AddRow(4, 3, 2, 1, 5, 6))

	m, err := r.GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Metrics{
		TotalProducts: 4, ActiveProducts: 3, TotalDocuments: 2,
		TotalEmployees: 1, TotalStorageZones: 5, TotalCompanies: 6,
	}, m)
}
