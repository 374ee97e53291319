package models

type Employee struct {
	ID             int
	Login          string
	PasswordHash   string
	FirstName      string
	LastName       string
	PassportSeries int
	PassportNumber int
	Email          *string
	NumberPhone    *string
	DateBirth      *string
	PositionID     *int
	Position       *string
	SubdivisionID  *int
	Subdivision    *string
	RoleID         *int
	Role           *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
