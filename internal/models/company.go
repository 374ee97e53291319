package models

type Company struct {
	ID            int
	Name          string
	CompanyTypeID int
	CompanyType   string
}
