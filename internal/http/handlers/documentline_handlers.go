package handlers

import (
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const documentLineEntity = "Document line"

func toDocumentLineResponse(l models.DocumentLine) DocumentLineResponse {
	return DocumentLineResponse{
		ID:                    l.ID,
		Quantity:              l.Quantity,
		ActualQuantity:        l.ActualQuantity,
		ProductID:             l.ProductID,
		Product:               l.Product,
		DocumentID:            l.DocumentID,
		StorageZoneSenderID:   l.StorageZoneSenderID,
		StorageZoneSender:     l.StorageZoneSender,
		StorageZoneReceiverID: l.StorageZoneReceiverID,
		StorageZoneReceiver:   l.StorageZoneReceiver,
	}
}

func (req DocumentLineRequest) toModel(id int) models.DocumentLine {
	return models.DocumentLine{
		ID:                    id,
		Quantity:              req.Quantity,
		ActualQuantity:        req.ActualQuantity,
		ProductID:             req.ProductID,
		DocumentID:            req.DocumentID,
		StorageZoneSenderID:   req.StorageZoneSenderID,
		StorageZoneReceiverID: req.StorageZoneReceiverID,
	}
}

// GetDocumentLinesHandler godoc
// @Summary List the lines of a document
// @Tags documentlines
// @Produce json
// @Param document_id query int true "Document ID"
// @Success 200 {array} DocumentLineResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse "Document not found"
// @Router /documentlines [get]
func GetDocumentLinesHandler(w http.ResponseWriter, r *http.Request) {
	documentID, err := strconv.Atoi(r.URL.Query().Get("document_id"))
	if err != nil || documentID <= 0 {
		writeError(w, http.StatusBadRequest, "document_id query parameter is required")
		return
	}
	listDocumentLines(w, r, documentID)
}

// GetLinesOfDocumentHandler godoc
// @Summary List the lines of a document
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {array} DocumentLineResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse "Document not found"
// @Router /documents/{id}/lines [get]
func GetLinesOfDocumentHandler(w http.ResponseWriter, r *http.Request) {
	documentID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	listDocumentLines(w, r, documentID)
}

func listDocumentLines(w http.ResponseWriter, r *http.Request, documentID int) {
	lines, err := lineRepo.ListByDocument(r.Context(), documentID)
	if err != nil {
		writeRepoError(w, r, err, documentEntity)
		return
	}
	resp := make([]DocumentLineResponse, len(lines))
	for i, l := range lines {
		resp[i] = toDocumentLineResponse(l)
	}
	respond(w, http.StatusOK, resp)
}

// GetDocumentLineByIDHandler godoc
// @Summary Get document line by ID
// @Tags documentlines
// @Produce json
// @Param id path int true "Line ID"
// @Success 200 {object} DocumentLineResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /documentlines/{id} [get]
func GetDocumentLineByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := lineRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, documentLineEntity)
		return
	}
	respond(w, http.StatusOK, toDocumentLineResponse(l))
}

// CreateDocumentLineHandler godoc
// @Summary Add a line to a document
// @Tags documentlines
// @Accept json
// @Produce json
// @Param line body DocumentLineRequest true "Line to add"
// @Success 200 {object} DocumentLineResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Product, document or storage zone not found"
// @Router /documentlines [post]
// @Security BearerAuth
func CreateDocumentLineHandler(w http.ResponseWriter, r *http.Request) {
	var req DocumentLineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := lineRepo.Create(r.Context(), req.toModel(0))
	if err != nil {
		writeRepoError(w, r, err, documentLineEntity)
		return
	}
	respond(w, http.StatusOK, toDocumentLineResponse(created))
}

// UpdateDocumentLineHandler godoc
// @Summary Update a document line
// @Tags documentlines
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Param line body DocumentLineRequest true "Updated line"
// @Success 200 {object} DocumentLineResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse
// @Router /documentlines/{id} [put]
// @Security BearerAuth
func UpdateDocumentLineHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req DocumentLineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := lineRepo.Update(r.Context(), req.toModel(id))
	if err != nil {
		writeRepoError(w, r, err, documentLineEntity)
		return
	}
	respond(w, http.StatusOK, toDocumentLineResponse(updated))
}

// DeleteDocumentLineHandler godoc
// @Summary Delete a document line
// @Tags documentlines
// @Produce json
// @Param id path int true "Line ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /documentlines/{id} [delete]
// @Security BearerAuth
func DeleteDocumentLineHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := lineRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, err, documentLineEntity)
		return
	}
	writeDeleted(w, documentLineEntity)
}
