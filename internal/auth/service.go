package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

// ErrInvalidCredentials is returned for an unknown login and for a wrong
// password alike.
var ErrInvalidCredentials = errors.New("invalid login or password")

var comparePassword = CheckPassword

type EmployeeFinder interface {
	GetByLogin(ctx context.Context, login string) (models.Employee, error)
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	Employee    models.Employee
}

type AuthService struct {
	employees EmployeeFinder
	tokens    *TokenService
	revoked   RevocationStore
}

func NewAuthService(employees EmployeeFinder, tokens *TokenService, revoked RevocationStore) *AuthService {
	if revoked == nil {
		revoked = NewInMemoryRevocationStore()
	}
	return &AuthService{
		employees: employees,
		tokens:    tokens,
		revoked:   revoked,
	}
}

func (a *AuthService) Tokens() *TokenService {
	return a.tokens
}

func (a *AuthService) Login(ctx context.Context, login, password string) (Session, error) {
	employee, err := a.employees.GetByLogin(ctx, login)
	if errors.Is(err, repo.ErrNotFound) {
		comparePassword(dummyHash(), password)
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("load employee: %w", err)
	}
	if !comparePassword(employee.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Generate(employee.ID, employee.Login)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, ExpiresAt: expiresAt, Employee: employee}, nil
}

// Validate checks the token and returns the employee it was issued to, read
// fresh from storage.
func (a *AuthService) Validate(ctx context.Context, token string) (models.Employee, error) {
	claims, err := a.claims(ctx, token)
	if err != nil {
		return models.Employee{}, err
	}

	employee, err := a.employees.GetByLogin(ctx, claims.Subject)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Employee{}, ErrInvalidToken
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	return employee, nil
}

// Logout revokes the token for the rest of its lifetime.
func (a *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := a.claims(ctx, token)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := a.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (a *AuthService) claims(ctx context.Context, token string) (*Claims, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}
