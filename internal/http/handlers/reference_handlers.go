package handlers

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
	repo "github.com/rogerio-castellano/inventory-backend/internal/repo"
)

func toNamedResponse(e models.NamedEntity) NamedResponse {
	return NamedResponse{ID: e.ID, Name: e.Name}
}

// decodeNamed reads a NamedRequest and checks the name against the width of
// the table's column.
func decodeNamed(w http.ResponseWriter, r *http.Request, table repo.ReferenceTable) (NamedRequest, bool) {
	var req NamedRequest
	if !decodeAndValidate(w, r, &req) {
		return req, false
	}
	if limit := table.MaxNameLength(); utf8.RuneCountInString(req.Name) > limit {
		respond(w, http.StatusBadRequest, []ValidationError{{
			Field:       "name",
			Description: fmt.Sprintf("name must be at most %d characters", limit),
		}})
		return req, false
	}
	return req, true
}

// ListNamedHandler godoc
// @Summary List a lookup table
// @Tags reference
// @Produce json
// @Success 200 {array} NamedResponse
// @Failure 500 {object} DetailResponse
// @Router /companytypes [get]
// @Router /documenttypes [get]
// @Router /categories [get]
// @Router /units [get]
// @Router /storageconditions [get]
// @Router /roles [get]
// @Router /positions [get]
// @Router /subdivisions [get]
func ListNamedHandler(table repo.ReferenceTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := references[table].List(r.Context())
		if err != nil {
			writeRepoError(w, r, err, table.Label())
			return
		}
		resp := make([]NamedResponse, len(items))
		for i, item := range items {
			resp[i] = toNamedResponse(item)
		}
		respond(w, http.StatusOK, resp)
	}
}

// GetNamedHandler godoc
// @Summary Get a lookup row by ID
// @Tags reference
// @Produce json
// @Param id path int true "Row ID"
// @Success 200 {object} NamedResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /companytypes/{id} [get]
// @Router /documenttypes/{id} [get]
// @Router /categories/{id} [get]
// @Router /units/{id} [get]
// @Router /storageconditions/{id} [get]
// @Router /roles/{id} [get]
// @Router /positions/{id} [get]
// @Router /subdivisions/{id} [get]
func GetNamedHandler(table repo.ReferenceTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		item, err := references[table].GetByID(r.Context(), id)
		if err != nil {
			writeRepoError(w, r, err, table.Label())
			return
		}
		respond(w, http.StatusOK, toNamedResponse(item))
	}
}

// CreateNamedHandler godoc
// @Summary Create a lookup row
// @Tags reference
// @Accept json
// @Produce json
// @Param body body NamedRequest true "Name"
// @Success 200 {object} NamedResponse
// @Failure 400 {array} ValidationError
// @Router /companytypes [post]
// @Router /documenttypes [post]
// @Router /categories [post]
// @Router /units [post]
// @Router /storageconditions [post]
// @Security BearerAuth
func CreateNamedHandler(table repo.ReferenceTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeNamed(w, r, table)
		if !ok {
			return
		}
		created, err := references[table].Create(r.Context(), req.Name)
		if err != nil {
			writeRepoError(w, r, err, table.Label())
			return
		}
		respond(w, http.StatusOK, toNamedResponse(created))
	}
}

// UpdateNamedHandler godoc
// @Summary Rename a lookup row
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Row ID"
// @Param body body NamedRequest true "Name"
// @Success 200 {object} NamedResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse
// @Router /companytypes/{id} [put]
// @Router /documenttypes/{id} [put]
// @Router /categories/{id} [put]
// @Router /units/{id} [put]
// @Router /storageconditions/{id} [put]
// @Security BearerAuth
func UpdateNamedHandler(table repo.ReferenceTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req, ok := decodeNamed(w, r, table)
		if !ok {
			return
		}
		updated, err := references[table].Update(r.Context(), id, req.Name)
		if err != nil {
			writeRepoError(w, r, err, table.Label())
			return
		}
		respond(w, http.StatusOK, toNamedResponse(updated))
	}
}

// DeleteNamedHandler godoc
// @Summary Delete a lookup row
// @Tags reference
// @Produce json
// @Param id path int true "Row ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse
// @Router /companytypes/{id} [delete]
// @Router /documenttypes/{id} [delete]
// @Router /categories/{id} [delete]
// @Router /units/{id} [delete]
// @Router /storageconditions/{id} [delete]
// @Security BearerAuth
func DeleteNamedHandler(table repo.ReferenceTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := references[table].Delete(r.Context(), id); err != nil {
			writeRepoError(w, r, err, table.Label())
			return
		}
		writeDeleted(w, table.Label())
	}
}
