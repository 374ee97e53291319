package handlers

import (
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/http/ban"
	repo "github.com/rogerio-castellano/inventory-backend/internal/repo"
)

var (
	references   map[repo.ReferenceTable]repo.NamedRepository
	companyRepo  repo.CompanyRepository
	documentRepo repo.DocumentRepository
	lineRepo     repo.DocumentLineRepository
	productRepo  repo.ProductRepository
	employeeRepo repo.EmployeeRepository
	zoneRepo     repo.StorageZoneRepository
	metricsRepo  repo.MetricsRepository

	authService  *auth.AuthService
	loginGuard   *ban.Guard
	logger       = zap.NewNop()
	redactErrors bool
)

// SetRepositories wires every resource handler to its repository.
func SetRepositories(r repo.Repositories) {
	references = r.References
	companyRepo = r.Companies
	documentRepo = r.Documents
	lineRepo = r.DocumentLines
	productRepo = r.Products
	employeeRepo = r.Employees
	zoneRepo = r.StorageZones
	metricsRepo = r.Metrics
}

func SetAuthService(s *auth.AuthService) {
	authService = s
}

// SetLoginGuard enables the failed login lockout. A nil guard disables it.
func SetLoginGuard(g *ban.Guard) {
	loginGuard = g
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// SetRedactErrors hides raw database messages from 500 responses.
func SetRedactErrors(v bool) {
	redactErrors = v
}
