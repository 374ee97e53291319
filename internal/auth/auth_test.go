package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/inventory-backend/internal/config"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

func init() {
	passwordCost = bcrypt.MinCost
}

type stubEmployees map[string]models.Employee

func (s stubEmployees) GetByLogin(_ context.Context, login string) (models.Employee, error) {
	e, ok := s[login]
	if !ok {
		return models.Employee{}, repo.ErrNotFound
	}
	return e, nil
}

func newTokens(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	tokens, err := NewTokenService(config.JWTConfig{Secret: "test-secret", AccessTTL: ttl, Issuer: "inventory-backend"})
	require.NoError(t, err)
	return tokens
}

func newService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	employees := stubEmployees{
		"jdoe": {ID: 7, Login: "jdoe", PasswordHash: hash, FirstName: "John", LastName: "Doe"},
	}
	return NewAuthService(employees, newTokens(t, ttl), NewInMemoryRevocationStore())
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))

	_, err = HashPassword(strings.Repeat("ж", MaxPasswordBytes/2+1))
	assert.Error(t, err)
}

func TestRejectionDetail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		detail string
		ok     bool
	}{
		{"expired", fmt.Errorf("parse: %w", ErrTokenExpired), "token expired", true},
		{"revoked", ErrTokenRevoked, "token revoked", true},
		{"invalid", fmt.Errorf("%w: bad signature", ErrInvalidToken), "invalid token", true},
		{"storage failure", errors.New("redis: connection refused"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, ok := RejectionDetail(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestTokenService_GenerateParse(t *testing.T) {
	tokens := newTokens(t, 30*time.Minute)

	token, expiresAt, err := tokens.Generate(7, "jdoe")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Subject)
	assert.Equal(t, 7, claims.EmployeeID)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_Rejects(t *testing.T) {
	tokens := newTokens(t, 30*time.Minute)

	t.Run("expired", func(t *testing.T) {
		token, _, err := newTokens(t, -time.Minute).Generate(7, "jdoe")
		require.NoError(t, err)
		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("bad signature", func(t *testing.T) {
		other, err := NewTokenService(config.JWTConfig{Secret: "other", AccessTTL: time.Minute, Issuer: "inventory-backend"})
		require.NoError(t, err)
		token, _, err := other.Generate(7, "jdoe")
		require.NoError(t, err)
		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := tokens.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    "inventory-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "jdoe",
			Issuer:    "inventory-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenService_GeneratesSecret(t *testing.T) {
	a, err := NewTokenService(config.JWTConfig{AccessTTL: time.Minute})
	require.NoError(t, err)
	b, err := NewTokenService(config.JWTConfig{AccessTTL: time.Minute})
	require.NoError(t, err)
	assert.True(t, a.GeneratedSecret())

	token, _, err := a.Generate(1, "jdoe")
	require.NoError(t, err)
	_, err = a.Parse(token)
	require.NoError(t, err)
	_, err = b.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_LoginValidate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, 30*time.Minute)

	session, err := svc.Login(ctx, "jdoe", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 7, session.Employee.ID)
	assert.Len(t, strings.Split(session.AccessToken, "."), 3)

	employee, err := svc.Validate(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.Employee.ID, employee.ID)
	assert.Equal(t, "John Doe", employee.FullName())
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, 30*time.Minute)

	_, wrongPassword := svc.Login(ctx, "jdoe", "nope")
	_, unknownLogin := svc.Login(ctx, "ghost", "s3cret")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownLogin, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownLogin.Error())
}

func TestAuthService_UnknownLoginRunsBcrypt(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, 30*time.Minute)

	var compared []string
	orig := comparePassword
	comparePassword = func(hash, password string) bool {
		compared = append(compared, hash)
		return orig(hash, password)
	}
	t.Cleanup(func() { comparePassword = orig })

	_, err := svc.Login(ctx, "ghost", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, compared, 1)
	cost, err := bcrypt.Cost([]byte(compared[0]))
	require.NoError(t, err)
	assert.Equal(t, passwordCost, cost)

	_, err = svc.Login(ctx, "jdoe", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, compared, 2)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, 30*time.Minute)

	session, err := svc.Login(ctx, "jdoe", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.AccessToken))

	_, err = svc.Validate(ctx, session.AccessToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.ErrorIs(t, svc.Logout(ctx, session.AccessToken), ErrTokenRevoked)
}

func TestAuthService_ValidateUnknownSubject(t *testing.T) {
	svc := newService(t, 30*time.Minute)

	token, _, err := svc.Tokens().Generate(99, "ghost")
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestInMemoryRevocationStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryRevocationStore()

	require.NoError(t, store.Revoke(ctx, "a", time.Hour))
	require.NoError(t, store.Revoke(ctx, "b", -time.Second))

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "b")
	require.NoError(t, err)
	assert.False(t, revoked)
}
