package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type contextKey string

const employeeKey = contextKey("employee")

// EmployeeFromContext returns the employee authenticated by RequireAuth.
func EmployeeFromContext(ctx context.Context) (models.Employee, bool) {
	e, ok := ctx.Value(employeeKey).(models.Employee)
	return e, ok
}

// RequireAuth rejects requests without a valid, unrevoked bearer token and
// stores the token's employee in the request context.
func RequireAuth(svc *auth.AuthService, log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, auth.NotAuthenticated)
				return
			}

			employee, err := svc.Validate(r.Context(), token)
			if err != nil {
				if detail, ok := auth.RejectionDetail(err); ok {
					unauthorized(w, detail)
					return
				}
				log.Error("token check failed", zap.String("path", r.URL.Path), zap.Error(err))
				writeDetail(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), employeeKey, employee)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
