package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type InMemoryDocumentLineRepository struct {
	s *InMemoryStore
}

func NewInMemoryDocumentLineRepository(s *InMemoryStore) *InMemoryDocumentLineRepository {
	return &InMemoryDocumentLineRepository{s: s}
}

func (r *InMemoryDocumentLineRepository) resolve(l models.DocumentLine) models.DocumentLine {
	l.Product = r.s.products[l.ProductID].Name
	l.StorageZoneSender = r.s.zoneName(l.StorageZoneSenderID)
	l.StorageZoneReceiver = r.s.zoneName(l.StorageZoneReceiverID)
	return l
}

func (r *InMemoryDocumentLineRepository) validate(l models.DocumentLine) error {
	if err := r.s.requireRef("products", l.ProductID, "Product"); err != nil {
		return err
	}
	if err := r.s.requireRef("documents", l.DocumentID, "Document"); err != nil {
		return err
	}
	if err := r.s.requireOptionalRef("storagezones", l.StorageZoneSenderID, "Sender storage zone"); err != nil {
		return err
	}
	return r.s.requireOptionalRef("storagezones", l.StorageZoneReceiverID, "Receiver storage zone")
}

func (r *InMemoryDocumentLineRepository) ListByDocument(_ context.Context, documentID int) ([]models.DocumentLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.documents[documentID]; !ok {
		return nil, ErrNotFound
	}
	lines := []models.DocumentLine{}
	for _, l := range sortedRows(r.s.lines) {
		if l.DocumentID == documentID {
			lines = append(lines, r.resolve(l))
		}
	}
	return lines, nil
}

func (r *InMemoryDocumentLineRepository) GetByID(_ context.Context, id int) (models.DocumentLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.lines[id]
	if !ok {
		return models.DocumentLine{}, ErrNotFound
	}
	return r.resolve(l), nil
}

func (r *InMemoryDocumentLineRepository) Create(_ context.Context, l models.DocumentLine) (models.DocumentLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.validate(l); err != nil {
		return models.DocumentLine{}, err
	}
	l.ID = r.s.nextID("documentlines")
	r.s.lines[l.ID] = l
	return r.resolve(l), nil
}

func (r *InMemoryDocumentLineRepository) Update(_ context.Context, l models.DocumentLine) (models.DocumentLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.lines[l.ID]; !ok {
		return models.DocumentLine{}, ErrNotFound
	}
	if err := r.validate(l); err != nil {
		return models.DocumentLine{}, err
	}
	r.s.lines[l.ID] = l
	return r.resolve(l), nil
}

func (r *InMemoryDocumentLineRepository) Delete(_ context.Context, id int) error {
	return r.s.remove("documentlines", id)
}
