package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/inventory-backend/docs"
	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-backend/internal/http/middleware"
	rl "github.com/rogerio-castellano/inventory-backend/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-backend/internal/metrics"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

// Options selects the optional parts of the router. Handlers read their
// repositories and services from the handlers package setters.
type Options struct {
	Logger *zap.Logger
	// Metrics enables request instrumentation and the /metrics endpoint.
	Metrics *metrics.Registry
	// LoginLimiter throttles /auth/login per client IP.
	LoginLimiter *rl.Limiter
	Auth         *auth.AuthService
	// ProtectMutations requires a bearer token on every write outside /auth.
	ProtectMutations bool
}

// writable reference tables; the rest are served read only.
var writableReferences = map[repo.ReferenceTable]bool{
	repo.CompanyTypes:      true,
	repo.DocumentTypes:     true,
	repo.Categories:        true,
	repo.Units:             true,
	repo.StorageConditions: true,
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	requireAuth := mw.RequireAuth(opts.Auth, log)

	// w registers state changing routes.
	var w chi.Router = r
	if opts.ProtectMutations {
		w = r.With(requireAuth)
	}

	r.Get("/health", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Route("/auth", func(ar chi.Router) {
		if opts.LoginLimiter != nil {
			ar.With(opts.LoginLimiter.Middleware).Post("/login", handlers.LoginHandler)
		} else {
			ar.Post("/login", handlers.LoginHandler)
		}
		ar.Get("/validate", handlers.ValidateTokenHandler)
		ar.Post("/logout", handlers.LogoutHandler)
		ar.With(requireAuth).Get("/lockouts", handlers.GetLockoutsHandler)
	})

	for _, table := range repo.ReferenceTables {
		base := "/" + string(table)
		r.Get(base, handlers.ListNamedHandler(table))
		r.Get(base+"/{id}", handlers.GetNamedHandler(table))
		if writableReferences[table] {
			w.Post(base, handlers.CreateNamedHandler(table))
			w.Put(base+"/{id}", handlers.UpdateNamedHandler(table))
			w.Delete(base+"/{id}", handlers.DeleteNamedHandler(table))
		}
	}

	r.Get("/companies", handlers.GetCompaniesHandler)
	r.Get("/companies/{id}", handlers.GetCompanyByIDHandler)
	w.Post("/companies", handlers.CreateCompanyHandler)
	w.Put("/companies/{id}", handlers.UpdateCompanyHandler)
	w.Delete("/companies/{id}", handlers.DeleteCompanyHandler)

	r.Get("/documents", handlers.GetDocumentsHandler)
	r.Get("/documents/{id}", handlers.GetDocumentByIDHandler)
	r.Get("/documents/{id}/lines", handlers.GetLinesOfDocumentHandler)
	w.Post("/documents", handlers.CreateDocumentHandler)
	w.Put("/documents/{id}", handlers.UpdateDocumentHandler)
	w.Delete("/documents/{id}", handlers.DeleteDocumentHandler)

	r.Get("/documentlines", handlers.GetDocumentLinesHandler)
	r.Get("/documentlines/{id}", handlers.GetDocumentLineByIDHandler)
	w.Post("/documentlines", handlers.CreateDocumentLineHandler)
	w.Put("/documentlines/{id}", handlers.UpdateDocumentLineHandler)
	w.Delete("/documentlines/{id}", handlers.DeleteDocumentLineHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.FilterProductsHandler)
	r.Get("/products/export", handlers.ExportProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/{id}/quantity", handlers.GetProductQuantityHandler)
	w.Post("/products", handlers.CreateProductHandler)
	w.Post("/products/create", handlers.CreateProductHandler)
	w.Post("/products/import", handlers.ImportProductsHandler)
	w.Put("/products/{id}", handlers.UpdateProductHandler)
	w.Delete("/products/{id}", handlers.DeleteProductHandler)

	r.Get("/employees", handlers.GetEmployeesHandler)
	r.Get("/employees/{id}", handlers.GetEmployeeByIDHandler)
	w.Post("/employees", handlers.CreateEmployeeHandler)
	w.Post("/employees/create", handlers.CreateEmployeeHandler)
	w.Put("/employees/{id}", handlers.UpdateEmployeeHandler)
	w.Delete("/employees/{id}", handlers.DeleteEmployeeHandler)

	r.Get("/storagezones", handlers.GetStorageZonesHandler)
	r.Get("/storagezones/{id}", handlers.GetStorageZoneByIDHandler)
	w.Post("/storagezones", handlers.CreateStorageZoneHandler)
	w.Put("/storagezones/{id}", handlers.UpdateStorageZoneHandler)
	w.Delete("/storagezones/{id}", handlers.DeleteStorageZoneHandler)

	return r
}
