package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/config"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

type employeeStub struct {
	employee models.Employee
}

func (s employeeStub) GetByLogin(_ context.Context, login string) (models.Employee, error) {
	if login != s.employee.Login {
		return models.Employee{}, repo.ErrNotFound
	}
	return s.employee, nil
}

func newAuth(t *testing.T, ttl time.Duration) (*auth.AuthService, string) {
	t.Helper()
	tokens, err := auth.NewTokenService(config.JWTConfig{Secret: "middleware-secret", AccessTTL: ttl})
	require.NoError(t, err)

	e := models.Employee{ID: 7, Login: "keeper", FirstName: "Olga", LastName: "Ivanova"}
	token, _, err := tokens.Generate(e.ID, e.Login)
	require.NoError(t, err)
	return auth.NewAuthService(employeeStub{employee: e}, tokens, nil), token
}

func TestRequireAuth(t *testing.T) {
	svc, token := newAuth(t, time.Minute)

	var seen models.Employee
	h := RequireAuth(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = EmployeeFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"no header", "", http.StatusUnauthorized, `{"detail":"not authenticated"}`},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, `{"detail":"not authenticated"}`},
		{"garbage", "Bearer abc", http.StatusUnauthorized, `{"detail":"invalid token"}`},
		{"valid", "Bearer " + token, http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/units", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
	assert.Equal(t, 7, seen.ID)
}

func TestRequireAuth_Expired(t *testing.T) {
	svc, token := newAuth(t, -time.Second)

	h := RequireAuth(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"token expired"}`, w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	statuses := map[string]int{"/ok": http.StatusOK, "/missing": http.StatusNotFound, "/boom": http.StatusInternalServerError}
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statuses[r.URL.Path])
	}))

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])
}
