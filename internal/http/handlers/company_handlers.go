package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const companyEntity = "Company"

func toCompanyResponse(c models.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, CompanyType: c.CompanyType}
}

// GetCompaniesHandler godoc
// @Summary List all companies
// @Tags companies
// @Produce json
// @Success 200 {array} CompanyResponse
// @Failure 500 {object} DetailResponse
// @Router /companies [get]
func GetCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := companyRepo.List(r.Context())
	if err != nil {
		writeRepoError(w, r, err, companyEntity)
		return
	}
	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toCompanyResponse(c)
	}
	respond(w, http.StatusOK, resp)
}

// GetCompanyByIDHandler godoc
// @Summary Get company by ID
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} CompanyResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /companies/{id} [get]
func GetCompanyByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := companyRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, companyEntity)
		return
	}
	respond(w, http.StatusOK, toCompanyResponse(c))
}

// CreateCompanyHandler godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body CompanyRequest true "Company to add"
// @Success 200 {object} CompanyResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Company type not found"
// @Router /companies [post]
// @Security BearerAuth
func CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := companyRepo.Create(r.Context(), models.Company{
		Name:          req.Name,
		CompanyTypeID: req.CompanyTypeID,
	})
	if err != nil {
		writeRepoError(w, r, err, companyEntity)
		return
	}
	respond(w, http.StatusOK, toCompanyResponse(created))
}

// UpdateCompanyHandler godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param company body CompanyRequest true "Updated company"
// @Success 200 {object} CompanyResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse
// @Router /companies/{id} [put]
// @Security BearerAuth
func UpdateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req CompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := companyRepo.Update(r.Context(), models.Company{
		ID:            id,
		Name:          req.Name,
		CompanyTypeID: req.CompanyTypeID,
	})
	if err != nil {
		writeRepoError(w, r, err, companyEntity)
		return
	}
	respond(w, http.StatusOK, toCompanyResponse(updated))
}

// DeleteCompanyHandler godoc
// @Summary Delete a company
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse
// @Router /companies/{id} [delete]
// @Security BearerAuth
func DeleteCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := companyRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, err, companyEntity)
		return
	}
	writeDeleted(w, companyEntity)
}
