package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

const employeeEntity = "Employee"

func toEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Login:          e.Login,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		PassportSeries: e.PassportSeries,
		PassportNumber: e.PassportNumber,
		Email:          e.Email,
		NumberPhone:    e.NumberPhone,
		DateBirth:      e.DateBirth,
		PositionID:     e.PositionID,
		Position:       e.Position,
		SubdivisionID:  e.SubdivisionID,
		Subdivision:    e.Subdivision,
		RoleID:         e.RoleID,
		Role:           e.Role,
	}
}

// GetEmployeesHandler godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Success 200 {array} EmployeeResponse
// @Failure 500 {object} DetailResponse
// @Router /employees [get]
func GetEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := employeeRepo.List(r.Context())
	if err != nil {
		writeRepoError(w, r, err, employeeEntity)
		return
	}
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = toEmployeeResponse(e)
	}
	respond(w, http.StatusOK, resp)
}

// GetEmployeeByIDHandler godoc
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} EmployeeResponse
// @Failure 400 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /employees/{id} [get]
func GetEmployeeByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, employeeEntity)
		return
	}
	respond(w, http.StatusOK, toEmployeeResponse(e))
}

// CreateEmployeeHandler godoc
// @Summary Create an employee
// @Description Hashes the password and calls the create_employee procedure, which rejects duplicate logins.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body EmployeeRequest true "Employee to add"
// @Success 200 {object} EmployeeResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Position, subdivision or role not found"
// @Failure 500 {object} DetailResponse "Procedure failure"
// @Router /employees [post]
// @Router /employees/create [post]
// @Security BearerAuth
func CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		writeError(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}

	created, err := employeeRepo.Create(r.Context(), models.Employee{
		Login:          req.Login,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PassportSeries: req.PassportSeries,
		PassportNumber: req.PassportNumber,
		Email:          req.Email,
		NumberPhone:    req.NumberPhone,
		DateBirth:      req.DateBirth,
		PositionID:     req.PositionID,
		SubdivisionID:  req.SubdivisionID,
		RoleID:         req.RoleID,
	})
	if err != nil {
		writeRepoError(w, r, err, employeeEntity)
		return
	}
	respond(w, http.StatusOK, toEmployeeResponse(created))
}

// UpdateEmployeeHandler godoc
// @Summary Update an employee
// @Description Replaces every field. An omitted password keeps the current one.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body EmployeeUpdateRequest true "Updated employee"
// @Success 200 {object} EmployeeResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse "Login already taken"
// @Router /employees/{id} [put]
// @Security BearerAuth
func UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req EmployeeUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var hash string
	if req.Password != "" {
		if hash, err = auth.HashPassword(req.Password); err != nil {
			logger.Error("failed to hash password", zap.Error(err))
			writeError(w, http.StatusInternalServerError, internalErrorDetail)
			return
		}
	}

	updated, err := employeeRepo.Update(r.Context(), models.Employee{
		ID:             id,
		Login:          req.Login,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PassportSeries: req.PassportSeries,
		PassportNumber: req.PassportNumber,
		Email:          req.Email,
		NumberPhone:    req.NumberPhone,
		DateBirth:      req.DateBirth,
		PositionID:     req.PositionID,
		SubdivisionID:  req.SubdivisionID,
		RoleID:         req.RoleID,
	})
	if err != nil {
		writeRepoError(w, r, err, employeeEntity)
		return
	}
	respond(w, http.StatusOK, toEmployeeResponse(updated))
}

// DeleteEmployeeHandler godoc
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /employees/{id} [delete]
// @Security BearerAuth
func DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := employeeRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, err, employeeEntity)
		return
	}
	writeDeleted(w, employeeEntity)
}
