package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const documentLineSelect = `
	SELECT l.id, l.quantity, l.actual_quantity, l.product_id, p.name, l.document_id,
	       l.storage_zone_sender_id, zs.name, l.storage_zone_receiver_id, zr.name
	FROM documentlines l
	JOIN products p ON p.id = l.product_id
	LEFT JOIN storagezones zs ON zs.id = l.storage_zone_sender_id
	LEFT JOIN storagezones zr ON zr.id = l.storage_zone_receiver_id`

type PostgresDocumentLineRepository struct {
	db *sql.DB
}

func NewPostgresDocumentLineRepository(db *sql.DB) *PostgresDocumentLineRepository {
	return &PostgresDocumentLineRepository{db: db}
}

func scanDocumentLine(s scanner) (models.DocumentLine, error) {
	var (
		l                      models.DocumentLine
		actual                 sql.NullInt64
		senderID, receiverID   sql.NullInt64
		senderName, receiverNm sql.NullString
	)
	err := s.Scan(&l.ID, &l.Quantity, &actual, &l.ProductID, &l.Product, &l.DocumentID,
		&senderID, &senderName, &receiverID, &receiverNm)
	if err != nil {
		return models.DocumentLine{}, err
	}
	l.ActualQuantity = intPtr(actual)
	l.StorageZoneSenderID = intPtr(senderID)
	l.StorageZoneSender = stringPtr(senderName)
	l.StorageZoneReceiverID = intPtr(receiverID)
	l.StorageZoneReceiver = stringPtr(receiverNm)
	return l, nil
}

func getDocumentLine(ctx context.Context, q queryer, id int) (models.DocumentLine, error) {
	l, err := scanDocumentLine(q.QueryRowContext(ctx, documentLineSelect+" WHERE l.id = $1", id))
	if err != nil {
		return models.DocumentLine{}, notFound(err)
	}
	return l, nil
}

func validateDocumentLineRefs(ctx context.Context, q queryer, l models.DocumentLine) error {
	if err := ensureExists(ctx, q, "products", l.ProductID, "Product"); err != nil {
		return err
	}
	if err := ensureExists(ctx, q, "documents", l.DocumentID, "Document"); err != nil {
		return err
	}
	if err := ensureOptional(ctx, q, "storagezones", l.StorageZoneSenderID, "Sender storage zone"); err != nil {
		return err
	}
	return ensureOptional(ctx, q, "storagezones", l.StorageZoneReceiverID, "Receiver storage zone")
}

func (r *PostgresDocumentLineRepository) ListByDocument(ctx context.Context, documentID int) ([]models.DocumentLine, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := rowExists(ctx, r.db, "documents", documentID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, documentLineSelect+" WHERE l.document_id = $1 ORDER BY l.id", documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list document lines: %w", err)
	}
	defer rows.Close()

	lines := []models.DocumentLine{}
	for rows.Next() {
		l, err := scanDocumentLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresDocumentLineRepository) GetByID(ctx context.Context, id int) (models.DocumentLine, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return getDocumentLine(ctx, r.db, id)
}

func (r *PostgresDocumentLineRepository) Create(ctx context.Context, l models.DocumentLine) (models.DocumentLine, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created models.DocumentLine
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := validateDocumentLineRefs(ctx, tx, l); err != nil {
			return err
		}
		var id int
		err := tx.QueryRowContext(ctx,
			`INSERT INTO documentlines (quantity, actual_quantity, product_id, document_id, storage_zone_sender_id, storage_zone_receiver_id)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			l.Quantity, nullInt(l.ActualQuantity), l.ProductID, l.DocumentID,
			nullInt(l.StorageZoneSenderID), nullInt(l.StorageZoneReceiverID)).Scan(&id)
		if err != nil {
			return translateError(err)
		}
		created, err = getDocumentLine(ctx, tx, id)
		return err
	})
	return created, err
}

func (r *PostgresDocumentLineRepository) Update(ctx context.Context, l models.DocumentLine) (models.DocumentLine, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated models.DocumentLine
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := rowExists(ctx, tx, "documentlines", l.ID); err != nil {
			return err
		}
		if err := validateDocumentLineRefs(ctx, tx, l); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE documentlines SET quantity = $1, actual_quantity = $2, product_id = $3, document_id = $4,
			        storage_zone_sender_id = $5, storage_zone_receiver_id = $6
			 WHERE id = $7`,
			l.Quantity, nullInt(l.ActualQuantity), l.ProductID, l.DocumentID,
			nullInt(l.StorageZoneSenderID), nullInt(l.StorageZoneReceiverID), l.ID)
		if err != nil {
			return translateError(err)
		}
		updated, err = getDocumentLine(ctx, tx, l.ID)
		return err
	})
	return updated, err
}

func (r *PostgresDocumentLineRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "documentlines", id)
}
