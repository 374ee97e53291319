package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-backend/internal/http/ban"
	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
)

func login(t *testing.T, s *testServer, loginName, password string) *handlers.LoginResult {
	t.Helper()
	w := s.do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: loginName, Password: password}, "")
	if w.Code != http.StatusOK {
		return nil
	}
	res := decode[handlers.LoginResult](t, w)
	return &res
}

func TestLoginAndValidate(t *testing.T) {
	s := newServer(t)

	res := login(t, s, adminLogin, adminPassword)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, 1800, res.ExpiresIn)
	assert.Equal(t, "Anna Petrova", res.User.Name)
	require.NotNil(t, res.User.RoleID)
	assert.Equal(t, 1, *res.User.RoleID)

	w := s.do(t, http.MethodGet, "/auth/validate", nil, res.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[handlers.UserResponse](t, w)
	assert.Equal(t, res.User, user)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	s := newServer(t)

	wrongPassword := s.do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: adminLogin, Password: "nope"}, "")
	unknownLogin := s.do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: "ghost", Password: "nope"}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownLogin.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownLogin.Body.String())
	assert.Equal(t, "Bearer", wrongPassword.Header().Get("WWW-Authenticate"))
}

func TestLogin_Validation(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/auth/login", map[string]string{"login": adminLogin}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode[[]handlers.ValidationError](t, w)
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
}

func TestLogin_Lockout(t *testing.T) {
	s := newServer(t)

	for range maxFailed {
		assert.Nil(t, login(t, s, adminLogin, "wrong"))
	}

	w := s.do(t, http.MethodPost, "/auth/login", handlers.LoginRequest{Login: adminLogin, Password: adminPassword}, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too many failed login attempts, try again later", decode[handlers.DetailResponse](t, w).Detail)

	token := s.generateToken(t)
	w = s.do(t, http.MethodGet, "/auth/lockouts", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]ban.BanLogEntry](t, w)
	require.Len(t, entries, 1)
	assert.Equal(t, adminLogin, entries[0].Target)
	assert.Equal(t, "/auth/login", entries[0].Route)
}

func TestLockouts_RequiresToken(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/auth/lockouts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidate_TokenProblems(t *testing.T) {
	expired := newServer(t, withTokenTTL(-time.Minute))
	expiredToken := expired.generateToken(t)
	// newServer rewires the handlers, so build the checking server last.
	s := newServer(t)

	tests := []struct {
		name   string
		token  string
		detail string
	}{
		{"missing", "", "not authenticated"},
		{"garbage", "not-a-jwt", "invalid token"},
		{"expired", expiredToken, "token expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/auth/validate", nil, tt.token)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.detail, decode[handlers.DetailResponse](t, w).Detail)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	s := newServer(t)

	res := login(t, s, adminLogin, adminPassword)
	require.NotNil(t, res)

	w := s.do(t, http.MethodPost, "/auth/logout", nil, res.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "logged out", decode[handlers.DetailResponse](t, w).Detail)

	w = s.do(t, http.MethodGet, "/auth/validate", nil, res.AccessToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token revoked", decode[handlers.DetailResponse](t, w).Detail)
}

func TestRevokedToken_SameAnswerEverywhere(t *testing.T) {
	s := newServer(t)

	res := login(t, s, adminLogin, adminPassword)
	require.NotNil(t, res)
	w := s.do(t, http.MethodPost, "/auth/logout", nil, res.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	validate := s.do(t, http.MethodGet, "/auth/validate", nil, res.AccessToken)
	lockouts := s.do(t, http.MethodGet, "/auth/lockouts", nil, res.AccessToken)
	logout := s.do(t, http.MethodPost, "/auth/logout", nil, res.AccessToken)

	for _, w := range []*httptest.ResponseRecorder{validate, lockouts, logout} {
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "token revoked", decode[handlers.DetailResponse](t, w).Detail)
	}
}

func TestProtectMutations(t *testing.T) {
	s := newServer(t, withProtectedMutations())

	w := s.do(t, http.MethodPost, "/units", handlers.NamedRequest{Name: "kg"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "not authenticated", decode[handlers.DetailResponse](t, w).Detail)

	w = s.do(t, http.MethodGet, "/units", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/units", handlers.NamedRequest{Name: "kg"}, s.generateToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "kg", decode[handlers.NamedResponse](t, w).Name)
}
