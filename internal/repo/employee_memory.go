package repo

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type InMemoryEmployeeRepository struct {
	s *InMemoryStore
}

func NewInMemoryEmployeeRepository(s *InMemoryStore) *InMemoryEmployeeRepository {
	return &InMemoryEmployeeRepository{s: s}
}

func (r *InMemoryEmployeeRepository) resolve(e models.Employee) models.Employee {
	e.Position = r.s.name(Positions, e.PositionID)
	e.Subdivision = r.s.name(Subdivisions, e.SubdivisionID)
	e.Role = r.s.name(Roles, e.RoleID)
	return e
}

func (r *InMemoryEmployeeRepository) validate(e models.Employee) error {
	if err := r.s.requireOptionalRef(string(Positions), e.PositionID, Positions.Label()); err != nil {
		return err
	}
	if err := r.s.requireOptionalRef(string(Subdivisions), e.SubdivisionID, Subdivisions.Label()); err != nil {
		return err
	}
	return r.s.requireOptionalRef(string(Roles), e.RoleID, Roles.Label())
}

func (r *InMemoryEmployeeRepository) loginTaken(login string, exceptID int) bool {
	return anyRow(r.s.employees, func(e models.Employee) bool {
		return e.Login == login && e.ID != exceptID
	})
}

func (r *InMemoryEmployeeRepository) List(_ context.Context) ([]models.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	employees := sortedRows(r.s.employees)
	for i := range employees {
		employees[i] = r.resolve(employees[i])
	}
	return employees, nil
}

func (r *InMemoryEmployeeRepository) GetByID(_ context.Context, id int) (models.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	return r.resolve(e), nil
}

func (r *InMemoryEmployeeRepository) GetByLogin(_ context.Context, login string) (models.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if e.Login == login {
			return r.resolve(e), nil
		}
	}
	return models.Employee{}, ErrNotFound
}

func (r *InMemoryEmployeeRepository) Create(_ context.Context, e models.Employee) (models.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.validate(e); err != nil {
		return models.Employee{}, err
	}
	if r.loginTaken(e.Login, 0) {
		return models.Employee{}, &ProcedureError{
			Procedure: "create_employee",
			Err:       fmt.Errorf("employee with login %s already exists", e.Login),
		}
	}
	e.ID = r.s.nextID("employees")
	r.s.employees[e.ID] = e
	return r.resolve(e), nil
}

func (r *InMemoryEmployeeRepository) Update(_ context.Context, e models.Employee) (models.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.employees[e.ID]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	if e.PasswordHash == "" {
		e.PasswordHash = current.PasswordHash
	}
	if err := r.validate(e); err != nil {
		return models.Employee{}, err
	}
	if r.loginTaken(e.Login, e.ID) {
		return models.Employee{}, fmt.Errorf("%w: login %s is taken", ErrConflict, e.Login)
	}
	r.s.employees[e.ID] = e
	return r.resolve(e), nil
}

func (r *InMemoryEmployeeRepository) Delete(_ context.Context, id int) error {
	return r.s.remove("employees", id)
}
