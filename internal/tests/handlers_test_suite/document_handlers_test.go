package handlers_test_suite

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDocument_PartialUpdate(t *testing.T) {
	s := newServer(t)

	ct := s.createNamed(t, "companytypes", "Supplier")
	w := s.do(t, http.MethodPost, "/companies", handlers.CompanyRequest{Name: "Acme", CompanyTypeID: ct.ID}, "")
	require.Equal(t, http.StatusOK, w.Code)
	company := decode[handlers.CompanyResponse](t, w)

	doc := s.createDocument(t, "RC-001")
	assert.Equal(t, "2024-03-15", doc.Date)
	assert.Nil(t, doc.Company)

	w = s.do(t, http.MethodPut, "/documents/1", map[string]any{"comment": "checked"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[handlers.DocumentResponse](t, w)
	assert.Equal(t, "RC-001", updated.Number)
	assert.Equal(t, "2024-03-15", updated.Date)
	require.NotNil(t, updated.Comment)
	assert.Equal(t, "checked", *updated.Comment)

	w = s.do(t, http.MethodPut, "/documents/1", handlers.DocumentPatchRequest{
		Date:      ptr("2024-04-01"),
		CompanyID: models.Some(company.ID),
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated = decode[handlers.DocumentResponse](t, w)
	assert.Equal(t, "2024-04-01", updated.Date)
	require.NotNil(t, updated.Company)
	assert.Equal(t, "Acme", *updated.Company)
	require.NotNil(t, updated.Comment)
	assert.Equal(t, "checked", *updated.Comment)
}

func TestDocument_PatchNullClearsField(t *testing.T) {
	s := newServer(t)

	ct := s.createNamed(t, "companytypes", "Supplier")
	w := s.do(t, http.MethodPost, "/companies", handlers.CompanyRequest{Name: "Acme", CompanyTypeID: ct.ID}, "")
	require.Equal(t, http.StatusOK, w.Code)
	company := decode[handlers.CompanyResponse](t, w)

	s.createDocument(t, "RC-001")
	w = s.do(t, http.MethodPut, "/documents/1", map[string]any{"comment": "checked", "company_id": company.ID}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPut, "/documents/1", map[string]any{"comment": nil}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[handlers.DocumentResponse](t, w)
	assert.Nil(t, updated.Comment)
	require.NotNil(t, updated.Company)
	assert.Equal(t, "Acme", *updated.Company)

	w = s.do(t, http.MethodPut, "/documents/1", handlers.DocumentPatchRequest{CompanyID: models.Null[int]()}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated = decode[handlers.DocumentResponse](t, w)
	assert.Nil(t, updated.Company)
	assert.Nil(t, updated.Comment)
	assert.Equal(t, "RC-001", updated.Number)

	w = s.do(t, http.MethodPut, "/documents/1", map[string]any{"comment": strings.Repeat("x", 46)}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocument_InvalidDate(t *testing.T) {
	s := newServer(t)
	docType := s.createNamed(t, "documenttypes", "Receipt")

	w := s.do(t, http.MethodPost, "/documents", handlers.DocumentRequest{
		Number:         "RC-002",
		Date:           "15.03.2024",
		DocumentTypeID: docType.ID,
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode[[]handlers.ValidationError](t, w)
	require.Len(t, errs, 1)
	assert.Equal(t, "date", errs[0].Field)
}

func TestDocument_MalformedJSON(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/documents", "not an object", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[handlers.DetailResponse](t, w).Detail, "invalid input")
}

func TestDocumentLines(t *testing.T) {
	s := newServer(t)

	product := s.createProduct(t, 1001, "Mouse")
	doc := s.createDocument(t, "RC-003")
	zone := s.createZone(t, "Shelf A")

	w := s.do(t, http.MethodPost, "/documentlines", handlers.DocumentLineRequest{
		Quantity:              10,
		ProductID:             product.ID,
		DocumentID:            doc.ID,
		StorageZoneReceiverID: &zone.ID,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	line := decode[handlers.DocumentLineResponse](t, w)
	assert.Equal(t, "Mouse", line.Product)
	require.NotNil(t, line.StorageZoneReceiver)
	assert.Equal(t, "Shelf A", *line.StorageZoneReceiver)
	assert.Nil(t, line.StorageZoneSenderID)

	t.Run("document_id is required", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/documentlines", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "document_id query parameter is required", decode[handlers.DetailResponse](t, w).Detail)
	})

	t.Run("lines of a document", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/documentlines?document_id=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]handlers.DocumentLineResponse](t, w), 1)

		w = s.do(t, http.MethodGet, "/documents/1/lines", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]handlers.DocumentLineResponse](t, w), 1)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/documentlines", handlers.DocumentLineRequest{
			Quantity:   1,
			ProductID:  77,
			DocumentID: doc.ID,
		}, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", decode[handlers.DetailResponse](t, w).Detail)
	})

	t.Run("referenced product cannot be deleted", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/products/1", nil, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("quantity in zone", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/products/1/quantity?zone_id=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, handlers.QuantityResponse{Quantity: 10}, decode[handlers.QuantityResponse](t, w))
	})

	t.Run("actual quantity wins", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/documentlines/1", handlers.DocumentLineRequest{
			Quantity:              10,
			ActualQuantity:        ptr(8),
			ProductID:             product.ID,
			DocumentID:            doc.ID,
			StorageZoneReceiverID: &zone.ID,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.do(t, http.MethodGet, "/products/1/quantity?zone_id=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 8, decode[handlers.QuantityResponse](t, w).Quantity)
	})

	t.Run("delete line", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/documentlines/1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Document line deleted", decode[handlers.DetailResponse](t, w).Detail)
	})
}
