package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rogerio-castellano/inventory-backend/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// Claims identifies the employee a bearer token was issued to.
// Subject holds the login and ID the revocation key.
type Claims struct {
	jwt.RegisteredClaims
	EmployeeID int `json:"employee_id"`
}

// TokenService signs and verifies HS256 access tokens. The secret is fixed
// at construction.
type TokenService struct {
	secret    []byte
	ttl       time.Duration
	issuer    string
	generated bool
}

// NewTokenService builds the service from the jwt config section. When no
// secret is configured a random 32 byte one is generated.
func NewTokenService(cfg config.JWTConfig) (*TokenService, error) {
	s := &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.AccessTTL,
		issuer: cfg.Issuer,
	}
	if len(s.secret) == 0 {
		s.secret = make([]byte, 32)
		if _, err := rand.Read(s.secret); err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		s.generated = true
	}
	return s, nil
}

// GeneratedSecret reports whether the secret was generated at startup, in
// which case tokens do not survive a restart.
func (s *TokenService) GeneratedSecret() bool {
	return s.generated
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate issues a token for the given employee. It returns the token and
// its expiry.
func (s *TokenService) Generate(employeeID int, login string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		EmployeeID: employeeID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies the signature and expiry of tokenStr.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
