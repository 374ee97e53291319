package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/config"
	"github.com/rogerio-castellano/inventory-backend/internal/http/ban"
	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-backend/internal/http/router"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

const (
	adminLogin    = "admin"
	adminPassword = "s3cret-pass"
	testSecret    = "test-secret"
	testIssuer    = "inventory-backend-test"
	maxFailed     = 3
)

var (
	hashOnce  sync.Once
	adminHash string
)

type serverOptions struct {
	protectMutations bool
	redactErrors     bool
	tokenTTL         time.Duration
	wrapProducts     func(repo.ProductRepository) repo.ProductRepository
}

type serverOption func(*serverOptions)

func withProtectedMutations() serverOption {
	return func(o *serverOptions) { o.protectMutations = true }
}

func withRedactedErrors() serverOption {
	return func(o *serverOptions) { o.redactErrors = true }
}

func withTokenTTL(ttl time.Duration) serverOption {
	return func(o *serverOptions) { o.tokenTTL = ttl }
}

// withProductRepo replaces the product repository with a wrapper around the
// in-memory one.
func withProductRepo(wrap func(repo.ProductRepository) repo.ProductRepository) serverOption {
	return func(o *serverOptions) { o.wrapProducts = wrap }
}

type testServer struct {
	handler http.Handler
	tokens  *auth.TokenService
	admin   models.Employee
}

// newServer wires the handlers to a fresh in-memory store holding the seeded
// lookup tables and one administrator.
func newServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	o := serverOptions{tokenTTL: 30 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}

	hashOnce.Do(func() {
		h, err := auth.HashPassword(adminPassword)
		if err != nil {
			panic(err)
		}
		adminHash = h
	})

	store := repo.NewInMemoryStore()
	store.SeedReferences()
	repos := store.Repositories()

	roleID := 1
	admin, err := repos.Employees.Create(t.Context(), models.Employee{
		Login:          adminLogin,
		PasswordHash:   adminHash,
		FirstName:      "Anna",
		LastName:       "Petrova",
		PassportSeries: 4510,
		PassportNumber: 123456,
		RoleID:         &roleID,
	})
	require.NoError(t, err)

	tokens, err := auth.NewTokenService(config.JWTConfig{
		Secret:    testSecret,
		AccessTTL: o.tokenTTL,
		Issuer:    testIssuer,
	})
	require.NoError(t, err)
	authService := auth.NewAuthService(repos.Employees, tokens, auth.NewInMemoryRevocationStore())

	if o.wrapProducts != nil {
		repos.Products = o.wrapProducts(repos.Products)
	}

	handlers.SetRepositories(repos)
	handlers.SetAuthService(authService)
	handlers.SetLoginGuard(ban.NewGuard(ban.NewInMemoryStrikeStore(), maxFailed, time.Minute, nil))
	handlers.SetLogger(nil)
	handlers.SetRedactErrors(o.redactErrors)

	return &testServer{
		handler: router.NewRouter(router.Options{
			Auth:             authService,
			ProtectMutations: o.protectMutations,
		}),
		tokens: tokens,
		admin:  admin,
	}
}

// generateToken issues a token for the seeded administrator.
func (s *testServer) generateToken(t *testing.T) string {
	t.Helper()
	token, _, err := s.tokens.Generate(s.admin.ID, s.admin.Login)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), "body: %s", w.Body.String())
	return v
}

func (s *testServer) createNamed(t *testing.T, table, name string) handlers.NamedResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/"+table, handlers.NamedRequest{Name: name}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[handlers.NamedResponse](t, w)
}

func (s *testServer) createProduct(t *testing.T, article int, name string) handlers.ProductResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/products", handlers.ProductRequest{Article: article, Name: name}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[handlers.ProductResponse](t, w)
}

func (s *testServer) createZone(t *testing.T, name string) handlers.StorageZoneResponse {
	t.Helper()
	cond := s.createNamed(t, "storageconditions", "Dry "+name)
	w := s.do(t, http.MethodPost, "/storagezones", handlers.StorageZoneRequest{
		Name:               name,
		StorageConditionID: cond.ID,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[handlers.StorageZoneResponse](t, w)
}

func (s *testServer) createDocument(t *testing.T, number string) handlers.DocumentResponse {
	t.Helper()
	docType := s.createNamed(t, "documenttypes", "Receipt "+number)
	w := s.do(t, http.MethodPost, "/documents", handlers.DocumentRequest{
		Number:         number,
		Date:           "2024-03-15",
		DocumentTypeID: docType.ID,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[handlers.DocumentResponse](t, w)
}

// multipartCSV builds a multipart body holding one uploaded file.
func multipartCSV(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func (s *testServer) upload(t *testing.T, path, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartCSV(t, filename, data)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}
