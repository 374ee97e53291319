package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const documentSelect = `
	SELECT d.id, d.number, d.date, d.comment, d.company_id, c.name, d.document_type_id, dt.name
	FROM documents d
	LEFT JOIN companies c ON c.id = d.company_id
	JOIN documenttypes dt ON dt.id = d.document_type_id`

type PostgresDocumentRepository struct {
	db *sql.DB
}

func NewPostgresDocumentRepository(db *sql.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

func scanDocument(s scanner) (models.Document, error) {
	var (
		d         models.Document
		comment   sql.NullString
		companyID sql.NullInt64
		company   sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Number, &d.Date, &comment, &companyID, &company, &d.DocumentTypeID, &d.DocumentType); err != nil {
		return models.Document{}, err
	}
	d.Comment = stringPtr(comment)
	d.CompanyID = intPtr(companyID)
	d.Company = stringPtr(company)
	return d, nil
}

func getDocument(ctx context.Context, q queryer, id int) (models.Document, error) {
	d, err := scanDocument(q.QueryRowContext(ctx, documentSelect+" WHERE d.id = $1", id))
	if err != nil {
		return models.Document{}, notFound(err)
	}
	return d, nil
}

func validateDocumentRefs(ctx context.Context, q queryer, d models.Document) error {
	if err := ensureOptional(ctx, q, "companies", d.CompanyID, "Company"); err != nil {
		return err
	}
	return ensureExists(ctx, q, string(DocumentTypes), d.DocumentTypeID, DocumentTypes.Label())
}

func (r *PostgresDocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, documentSelect+" ORDER BY d.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id int) (models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getDocument(ctx, r.db, id)
}

func (r *PostgresDocumentRepository) Create(ctx context.Context, d models.Document) (models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created models.Document
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := validateDocumentRefs(ctx, tx, d); err != nil {
			return err
		}
		var id int
		err := tx.QueryRowContext(ctx,
			`INSERT INTO documents (number, date, comment, company_id, document_type_id)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			d.Number, d.Date, nullString(d.Comment), nullInt(d.CompanyID), d.DocumentTypeID).Scan(&id)
		if err != nil {
			return translateError(err)
		}
		created, err = getDocument(ctx, tx, id)
		return err
	})
	return created, err
}

// Update applies patch to the stored document. Only the supplied fields change.
func (r *PostgresDocumentRepository) Update(ctx context.Context, id int, patch DocumentPatch) (models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated models.Document
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getDocument(ctx, tx, id)
		if err != nil {
			return err
		}
		d := patch.apply(current)
		if err := validateDocumentRefs(ctx, tx, d); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE documents SET number = $1, date = $2, comment = $3, company_id = $4, document_type_id = $5
			 WHERE id = $6`,
			d.Number, d.Date, nullString(d.Comment), nullInt(d.CompanyID), d.DocumentTypeID, id)
		if err != nil {
			return translateError(err)
		}
		updated, err = getDocument(ctx, tx, id)
		return err
	})
	return updated, err
}

func (r *PostgresDocumentRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "documents", id)
}
