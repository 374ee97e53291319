package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	repo "github.com/rogerio-castellano/inventory-backend/internal/repo"
)

const internalErrorDetail = "internal server error"

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any, headers ...http.Header) {
	if err := writeJSON(w, status, data, headers...); err != nil {
		logger.Warn("failed to write JSON response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	respond(w, status, DetailResponse{Detail: detail})
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	respond(w, http.StatusUnauthorized, DetailResponse{Detail: detail}, http.Header{
		"Www-Authenticate": []string{"Bearer"},
	})
}

func writeDeleted(w http.ResponseWriter, entity string) {
	respond(w, http.StatusOK, DetailResponse{Detail: entity + " deleted"})
}

// writeRepoError maps repository errors to status codes. entity names the
// resource addressed by the request.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	var refErr *repo.ReferenceError
	var procErr *repo.ProcedureError

	switch {
	case errors.As(err, &refErr):
		writeError(w, http.StatusNotFound, refErr.Error())
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.As(err, &procErr):
		logger.Error("stored procedure failed",
			zap.String("procedure", procErr.Procedure),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		detail := err.Error()
		if redactErrors {
			detail = internalErrorDetail
		}
		writeError(w, http.StatusInternalServerError, detail)
	case errors.Is(err, repo.ErrConflict):
		detail := err.Error()
		if redactErrors {
			detail = entity + " conflicts with existing records"
		}
		writeError(w, http.StatusConflict, detail)
	default:
		logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, internalErrorDetail)
	}
}

// parseID reads a positive integer path parameter.
func parseID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}
