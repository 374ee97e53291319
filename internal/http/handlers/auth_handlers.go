package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/http/ban"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const tooManyAttemptsDetail = "too many failed login attempts, try again later"

func toUserResponse(e models.Employee) UserResponse {
	return UserResponse{
		ID:        e.ID,
		Login:     e.Login,
		Name:      e.FullName(),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		RoleID:    e.RoleID,
	}
}

// writeAuthError answers 401 for token problems and 500 for anything else.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	if detail, ok := auth.RejectionDetail(err); ok {
		writeUnauthorized(w, detail)
		return
	}
	logger.Error("token check failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, internalErrorDetail)
}

// LoginHandler godoc
// @Summary Authenticate an employee and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "login and password"
// @Success 200 {object} LoginResult
// @Failure 400 {array} ValidationError
// @Failure 401 {object} DetailResponse "Invalid login or password"
// @Failure 429 {object} DetailResponse "Too many failed attempts"
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	if loginGuard != nil && loginGuard.Banned(ctx, req.Login) {
		writeError(w, http.StatusTooManyRequests, tooManyAttemptsDetail)
		return
	}

	session, err := authService.Login(ctx, req.Login, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		if loginGuard != nil {
			loginGuard.Fail(ctx, req.Login, r.URL.Path)
		}
		writeUnauthorized(w, auth.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		logger.Error("login failed", zap.String("login", req.Login), zap.Error(err))
		writeError(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}
	if loginGuard != nil {
		loginGuard.Succeed(ctx, req.Login)
	}

	respond(w, http.StatusOK, LoginResult{
		AccessToken: session.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(authService.Tokens().TTL().Seconds()),
		User:        toUserResponse(session.Employee),
	})
}

// ValidateTokenHandler godoc
// @Summary Validate a bearer token
// @Description Returns the current profile of the employee the token was issued to.
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} DetailResponse
// @Router /auth/validate [get]
// @Security BearerAuth
func ValidateTokenHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.BearerToken(r.Header.Get("Authorization"))
	if !ok {
		writeUnauthorized(w, auth.NotAuthenticated)
		return
	}
	employee, err := authService.Validate(r.Context(), token)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}
	respond(w, http.StatusOK, toUserResponse(employee))
}

// LogoutHandler godoc
// @Summary Revoke the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} DetailResponse
// @Failure 401 {object} DetailResponse
// @Router /auth/logout [post]
// @Security BearerAuth
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.BearerToken(r.Header.Get("Authorization"))
	if !ok {
		writeUnauthorized(w, auth.NotAuthenticated)
		return
	}
	if err := authService.Logout(r.Context(), token); err != nil {
		writeAuthError(w, r, err)
		return
	}
	respond(w, http.StatusOK, DetailResponse{Detail: "logged out"})
}

// GetLockoutsHandler godoc
// @Summary Recorded login lockouts
// @Tags auth
// @Produce json
// @Success 200 {array} ban.BanLogEntry
// @Failure 500 {object} DetailResponse
// @Router /auth/lockouts [get]
// @Security BearerAuth
func GetLockoutsHandler(w http.ResponseWriter, r *http.Request) {
	if loginGuard == nil {
		respond(w, http.StatusOK, []ban.BanLogEntry{})
		return
	}
	entries, err := loginGuard.BanLog(r.Context())
	if err != nil {
		logger.Error("failed to read ban log", zap.Error(err))
		writeError(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}
	respond(w, http.StatusOK, entries)
}
