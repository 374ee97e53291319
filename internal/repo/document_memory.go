package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type InMemoryDocumentRepository struct {
	s *InMemoryStore
}

func NewInMemoryDocumentRepository(s *InMemoryStore) *InMemoryDocumentRepository {
	return &InMemoryDocumentRepository{s: s}
}

func (r *InMemoryDocumentRepository) resolve(d models.Document) models.Document {
	d.Company = nil
	if d.CompanyID != nil {
		if c, ok := r.s.companies[*d.CompanyID]; ok {
			name := c.Name
			d.Company = &name
		}
	}
	d.DocumentType = r.s.named[DocumentTypes][d.DocumentTypeID]
	return d
}

func (r *InMemoryDocumentRepository) validate(d models.Document) error {
	if err := r.s.requireOptionalRef("companies", d.CompanyID, "Company"); err != nil {
		return err
	}
	return r.s.requireRef(string(DocumentTypes), d.DocumentTypeID, DocumentTypes.Label())
}

func (r *InMemoryDocumentRepository) List(_ context.Context) ([]models.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	documents := sortedRows(r.s.documents)
	for i := range documents {
		documents[i] = r.resolve(documents[i])
	}
	return documents, nil
}

func (r *InMemoryDocumentRepository) GetByID(_ context.Context, id int) (models.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.documents[id]
	if !ok {
		return models.Document{}, ErrNotFound
	}
	return r.resolve(d), nil
}

func (r *InMemoryDocumentRepository) Create(_ context.Context, d models.Document) (models.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.validate(d); err != nil {
		return models.Document{}, err
	}
	d.ID = r.s.nextID("documents")
	r.s.documents[d.ID] = d
	return r.resolve(d), nil
}

func (r *InMemoryDocumentRepository) Update(_ context.Context, id int, patch DocumentPatch) (models.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.documents[id]
	if !ok {
		return models.Document{}, ErrNotFound
	}
	d := patch.apply(current)
	if err := r.validate(d); err != nil {
		return models.Document{}, err
	}
	r.s.documents[id] = d
	return r.resolve(d), nil
}

func (r *InMemoryDocumentRepository) Delete(_ context.Context, id int) error {
	return r.s.remove("documents", id)
}
