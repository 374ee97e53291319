package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const productSelect = `
	SELECT p.id, p.article, p.name, p.purchase_price, p.sell_price, p.is_active,
	       p.category_id, c.name, p.unit_id, u.name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN units u ON u.id = p.unit_id`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func scanProduct(s scanner) (models.Product, error) {
	var (
		p                  models.Product
		categoryID, unitID sql.NullInt64
		category, unit     sql.NullString
	)
	err := s.Scan(&p.ID, &p.Article, &p.Name, &p.PurchasePrice, &p.SellPrice, &p.IsActive,
		&categoryID, &category, &unitID, &unit)
	if err != nil {
		return models.Product{}, err
	}
	p.CategoryID = intPtr(categoryID)
	p.Category = stringPtr(category)
	p.UnitID = intPtr(unitID)
	p.Unit = stringPtr(unit)
	return p, nil
}

func getProduct(ctx context.Context, q queryer, where string, arg any) (models.Product, error) {
	p, err := scanProduct(q.QueryRowContext(ctx, productSelect+" WHERE "+where, arg))
	if err != nil {
		return models.Product{}, notFound(err)
	}
	return p, nil
}

func validateProductRefs(ctx context.Context, q queryer, categoryID, unitID *int) error {
	if err := ensureOptional(ctx, q, string(Categories), categoryID, Categories.Label()); err != nil {
		return err
	}
	return ensureOptional(ctx, q, string(Units), unitID, Units.Label())
}

func (r *PostgresProductRepository) List(ctx context.Context, pf ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := filterConditions(pf)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products p WHERE 1=1"+conditions, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := productSelect + " WHERE 1=1" + conditions + " ORDER BY p.id"
	if pf.Limit != nil && *pf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *pf.Limit)
		argIdx++
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func filterConditions(pf ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if pf.Name != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", argIdx)
		args = append(args, "%"+pf.Name+"%")
		argIdx++
	}
	if pf.Active != nil {
		query += fmt.Sprintf(" AND p.is_active = $%d", argIdx)
		args = append(args, *pf.Active)
		argIdx++
	}
	if pf.CategoryID != nil {
		query += fmt.Sprintf(" AND p.category_id = $%d", argIdx)
		args = append(args, *pf.CategoryID)
		argIdx++
	}

	return query, args, argIdx
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getProduct(ctx, r.db, "p.id = $1", id)
}

func (r *PostgresProductRepository) GetByArticle(ctx context.Context, article int) (models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getProduct(ctx, r.db, "p.article = $1 ORDER BY p.id LIMIT 1", article)
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created models.Product
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := validateProductRefs(ctx, tx, p.CategoryID, p.UnitID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `CALL create_product($1, $2, $3, $4, $5, $6)`,
			p.Article, p.Name, p.PurchasePrice, p.SellPrice, nullInt(p.CategoryID), nullInt(p.UnitID))
		if err != nil {
			return &ProcedureError{Procedure: "create_product", Err: err}
		}
		id, err := lastInsertedID(ctx, tx, "products")
		if err != nil {
			return err
		}
		created, err = getProduct(ctx, tx, "p.id = $1", id)
		return err
	})
	return created, err
}

func (r *PostgresProductRepository) Update(ctx context.Context, id int, patch ProductPatch) (models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated models.Product
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getProduct(ctx, tx, "p.id = $1", id)
		if err != nil {
			return err
		}
		p := patch.apply(current)
		if err := validateProductRefs(ctx, tx, p.CategoryID, p.UnitID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET article = $1, name = $2, purchase_price = $3, sell_price = $4,
			        is_active = $5, category_id = $6, unit_id = $7
			 WHERE id = $8`,
			p.Article, p.Name, p.PurchasePrice, p.SellPrice, p.IsActive,
			nullInt(p.CategoryID), nullInt(p.UnitID), id)
		if err != nil {
			return translateError(err)
		}
		updated, err = getProduct(ctx, tx, "p.id = $1", id)
		return err
	})
	return updated, err
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "products", id)
}

func (r *PostgresProductRepository) Quantity(ctx context.Context, productID, zoneID int) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var quantity sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT get_inventory_quantity($1, $2)`, productID, zoneID).Scan(&quantity); err != nil {
		return 0, &ProcedureError{Procedure: "get_inventory_quantity", Err: err}
	}
	return int(quantity.Int64), nil
}
