//go:build integration

package handlers_integrated_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
)

func TestAuthFlow(t *testing.T) {
	resetDatabase(t)

	w := do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: adminLogin, Password: adminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[handlers.LoginResult](t, w)
	assert.Equal(t, 1800, res.ExpiresIn)

	w = do(t, http.MethodGet, "/auth/validate", nil, res.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminLogin, decode[handlers.UserResponse](t, w).Login)

	wrong := do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: adminLogin, Password: "nope"}, "")
	unknown := do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: "ghost", Password: "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())

	w = do(t, http.MethodPost, "/auth/logout", nil, res.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, http.MethodGet, "/auth/validate", nil, res.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	resetDatabase(t)

	w := do(t, http.MethodPost, "/companytypes", handlers.NamedRequest{Name: "Distributor"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCompanyAndDocumentFlow(t *testing.T) {
	token := generateToken(t, resetDatabase(t))

	w := do(t, http.MethodPost, "/companytypes", handlers.NamedRequest{Name: "Distributor"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, handlers.NamedResponse{ID: 1, Name: "Distributor"}, decode[handlers.NamedResponse](t, w))

	w = do(t, http.MethodPost, "/companies", handlers.CompanyRequest{Name: "Acme", CompanyTypeID: 1}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, handlers.CompanyResponse{ID: 1, Name: "Acme", CompanyType: "Distributor"}, decode[handlers.CompanyResponse](t, w))

	w = do(t, http.MethodDelete, "/companytypes/1", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, http.MethodPost, "/documenttypes", handlers.NamedRequest{Name: "Receipt"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, http.MethodPost, "/documents", handlers.DocumentRequest{
		Number:         "RC-001",
		Date:           "2024-03-15",
		DocumentTypeID: 1,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, http.MethodPut, "/documents/1", map[string]any{"company_id": 1}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode[handlers.DocumentResponse](t, w)
	assert.Equal(t, "2024-03-15", doc.Date)
	require.NotNil(t, doc.Company)
	assert.Equal(t, "Acme", *doc.Company)

	w = do(t, http.MethodDelete, "/documents/9", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Document not found", decode[handlers.DetailResponse](t, w).Detail)
}

func TestInventoryQuantity(t *testing.T) {
	token := generateToken(t, resetDatabase(t))

	w := do(t, http.MethodPost, "/products", map[string]any{"article": 1001, "name": "Mouse", "sell_price": 25.99}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	product := decode[handlers.ProductResponse](t, w)
	assert.True(t, product.IsActive)

	w = do(t, http.MethodPost, "/storageconditions", handlers.NamedRequest{Name: "Dry"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	for _, name := range []string{"Shelf A", "Shelf B"} {
		w = do(t, http.MethodPost, "/storagezones", handlers.StorageZoneRequest{Name: name, StorageConditionID: 1}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w = do(t, http.MethodPost, "/documenttypes", handlers.NamedRequest{Name: "Transfer"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, http.MethodPost, "/documents", handlers.DocumentRequest{Number: "TR-1", Date: "2024-05-01", DocumentTypeID: 1}, token)
	require.Equal(t, http.StatusOK, w.Code)

	zoneA, zoneB := 1, 2
	lines := []handlers.DocumentLineRequest{
		{Quantity: 10, ProductID: product.ID, DocumentID: 1, StorageZoneReceiverID: &zoneA},
		{Quantity: 4, ProductID: product.ID, DocumentID: 1, StorageZoneSenderID: &zoneA, StorageZoneReceiverID: &zoneB},
	}
	for _, l := range lines {
		w = do(t, http.MethodPost, "/documentlines", l, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = do(t, http.MethodGet, "/products/1/quantity?zone_id=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handlers.QuantityResponse{Quantity: 6}, decode[handlers.QuantityResponse](t, w))

	w = do(t, http.MethodGet, "/products/1/quantity?zone_id=99", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[handlers.QuantityResponse](t, w)
	assert.Zero(t, res.Quantity)
	assert.Contains(t, res.Error, "storage zone 99 does not exist")
}

func TestCreateEmployeeDuplicateLogin(t *testing.T) {
	token := generateToken(t, resetDatabase(t))

	w := do(t, http.MethodPost, "/employees/create", handlers.EmployeeRequest{
		Login:          adminLogin,
		Password:       "another",
		FirstName:      "Copy",
		LastName:       "Cat",
		PassportSeries: 1,
		PassportNumber: 2,
	}, token)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode[handlers.DetailResponse](t, w).Detail, "already exists")
}

func TestImportProducts(t *testing.T) {
	token := generateToken(t, resetDatabase(t))

	upload := func(query, data string) handlers.ImportProductsResult {
		body, contentType := multipartCSV(t, data)
		req := httptest.NewRequest(http.MethodPost, "/products/import"+query, body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[handlers.ImportProductsResult](t, w)
	}

	res := upload("", "article,name,sell_price\n1,Mouse,10\n2,Keyboard,20\n1,Mouse again,5")
	assert.Equal(t, 2, res.ImportedProductsCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "row 4", res.Errors[0].Field)

	res = upload("?mode=update", "article,name,sell_price\n1,Mouse v2,12")
	assert.Equal(t, 1, res.ImportedProductsCount)

	w := do(t, http.MethodGet, "/products/search?name=v2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[handlers.ProductsSearchResult](t, w)
	require.Equal(t, 1, found.Meta.TotalCount)
	require.NotNil(t, found.Data[0].SellPrice)
	assert.InDelta(t, 12.0, *found.Data[0].SellPrice, 0.001)
}
