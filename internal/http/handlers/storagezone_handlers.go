package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const storageZoneEntity = "Storage zone"

func toStorageZoneResponse(z models.StorageZone) StorageZoneResponse {
	return StorageZoneResponse{
		ID:               z.ID,
		Name:             z.Name,
		Comment:          z.Comment,
		StorageCondition: z.StorageCondition,
	}
}

// GetStorageZonesHandler godoc
// @Summary List all storage zones
// @Tags storagezones
// @Produce json
// @Success 200 {array} StorageZoneResponse
// @Failure 500 {object} DetailResponse
// @Router /storagezones [get]
func GetStorageZonesHandler(w http.ResponseWriter, r *http.Request) {
	zones, err := zoneRepo.List(r.Context())
	if err != nil {
		writeRepoError(w, r, err, storageZoneEntity)
		return
	}
	resp := make([]StorageZoneResponse, len(zones))
	for i, z := range zones {
		resp[i] = toStorageZoneResponse(z)
	}
	respond(w, http.StatusOK, resp)
}

// GetStorageZoneByIDHandler godoc
// @Summary Get storage zone by ID
// @Tags storagezones
// @Produce json
// @Param id path int true "Storage zone ID"
// @Success 200 {object} StorageZoneResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /storagezones/{id} [get]
func GetStorageZoneByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	z, err := zoneRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, storageZoneEntity)
		return
	}
	respond(w, http.StatusOK, toStorageZoneResponse(z))
}

// CreateStorageZoneHandler godoc
// @Summary Create a storage zone
// @Tags storagezones
// @Accept json
// @Produce json
// @Param zone body StorageZoneRequest true "Zone to add"
// @Success 200 {object} StorageZoneResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Storage condition not found"
// @Router /storagezones [post]
// @Security BearerAuth
func CreateStorageZoneHandler(w http.ResponseWriter, r *http.Request) {
	var req StorageZoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := zoneRepo.Create(r.Context(), models.StorageZone{
		Name:               req.Name,
		Comment:            req.Comment,
		StorageConditionID: req.StorageConditionID,
	})
	if err != nil {
		writeRepoError(w, r, err, storageZoneEntity)
		return
	}
	respond(w, http.StatusOK, toStorageZoneResponse(created))
}

// UpdateStorageZoneHandler godoc
// @Summary Update a storage zone
// @Tags storagezones
// @Accept json
// @Produce json
// @Param id path int true "Storage zone ID"
// @Param zone body StorageZoneRequest true "Updated zone"
// @Success 200 {object} StorageZoneResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse
// @Router /storagezones/{id} [put]
// @Security BearerAuth
func UpdateStorageZoneHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req StorageZoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := zoneRepo.Update(r.Context(), models.StorageZone{
		ID:                 id,
		Name:               req.Name,
		Comment:            req.Comment,
		StorageConditionID: req.StorageConditionID,
	})
	if err != nil {
		writeRepoError(w, r, err, storageZoneEntity)
		return
	}
	respond(w, http.StatusOK, toStorageZoneResponse(updated))
}

// DeleteStorageZoneHandler godoc
// @Summary Delete a storage zone
// @Tags storagezones
// @Produce json
// @Param id path int true "Storage zone ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse
// @Router /storagezones/{id} [delete]
// @Security BearerAuth
func DeleteStorageZoneHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := zoneRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, err, storageZoneEntity)
		return
	}
	writeDeleted(w, storageZoneEntity)
}
