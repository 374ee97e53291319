package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
	repo "github.com/rogerio-castellano/inventory-backend/internal/repo"
)

const (
	documentEntity = "Document"
	dateLayout     = "2006-01-02"
)

func toDocumentResponse(d models.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		Number:       d.Number,
		Date:         d.Date.Format(dateLayout),
		Comment:      d.Comment,
		Company:      d.Company,
		DocumentType: d.DocumentType,
	}
}

// GetDocumentsHandler godoc
// @Summary List all documents
// @Tags documents
// @Produce json
// @Success 200 {array} DocumentResponse
// @Failure 500 {object} DetailResponse
// @Router /documents [get]
func GetDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := documentRepo.List(r.Context())
	if err != nil {
		writeRepoError(w, r, err, documentEntity)
		return
	}
	resp := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		resp[i] = toDocumentResponse(d)
	}
	respond(w, http.StatusOK, resp)
}

// GetDocumentByIDHandler godoc
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /documents/{id} [get]
func GetDocumentByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d, err := documentRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, documentEntity)
		return
	}
	respond(w, http.StatusOK, toDocumentResponse(d))
}

// CreateDocumentHandler godoc
// @Summary Create a document
// @Tags documents
// @Accept json
// @Produce json
// @Param document body DocumentRequest true "Document to add"
// @Success 200 {object} DocumentResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Company or document type not found"
// @Router /documents [post]
// @Security BearerAuth
func CreateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse(dateLayout, req.Date)

	created, err := documentRepo.Create(r.Context(), models.Document{
		Number:         req.Number,
		Date:           date,
		Comment:        req.Comment,
		CompanyID:      req.CompanyID,
		DocumentTypeID: req.DocumentTypeID,
	})
	if err != nil {
		writeRepoError(w, r, err, documentEntity)
		return
	}
	respond(w, http.StatusOK, toDocumentResponse(created))
}

// UpdateDocumentHandler godoc
// @Summary Update a document
// @Description Only the fields present in the body are changed.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param document body DocumentPatchRequest true "Fields to change"
// @Success 200 {object} DocumentResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse
// @Router /documents/{id} [put]
// @Security BearerAuth
func UpdateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req DocumentPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := repo.DocumentPatch{
		Number:         req.Number,
		Comment:        req.Comment,
		CompanyID:      req.CompanyID,
		DocumentTypeID: req.DocumentTypeID,
	}
	if req.Date != nil {
		date, _ := time.Parse(dateLayout, *req.Date)
		patch.Date = &date
	}

	updated, err := documentRepo.Update(r.Context(), id, patch)
	if err != nil {
		writeRepoError(w, r, err, documentEntity)
		return
	}
	respond(w, http.StatusOK, toDocumentResponse(updated))
}

// DeleteDocumentHandler godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse
// @Router /documents/{id} [delete]
// @Security BearerAuth
func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := documentRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, err, documentEntity)
		return
	}
	writeDeleted(w, documentEntity)
}
