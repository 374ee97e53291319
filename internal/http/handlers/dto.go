package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type DetailResponse struct {
	Detail string `json:"detail"`
}

// NamedRequest names a lookup row. The handler also enforces the column
// width of the target table.
type NamedRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type NamedResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CompanyRequest struct {
	Name          string `json:"name" validate:"required,max=45"`
	CompanyTypeID int    `json:"company_type_id" validate:"required,gt=0"`
}

type CompanyResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CompanyType string `json:"company_type"`
}

type DocumentRequest struct {
	Number         string  `json:"number" validate:"required,max=45"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	Comment        *string `json:"comment" validate:"omitempty,max=45"`
	CompanyID      *int    `json:"company_id" validate:"omitempty,gt=0"`
	DocumentTypeID int     `json:"document_type_id" validate:"required,gt=0"`
}

// DocumentPatchRequest changes only the fields present in the payload. An
// explicit null clears comment or company_id.
type DocumentPatchRequest struct {
	Number         *string                 `json:"number" validate:"omitempty,min=1,max=45"`
	Date           *string                 `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Comment        models.Optional[string] `json:"comment,omitzero" validate:"omitempty,max=45" swaggertype:"string"`
	CompanyID      models.Optional[int]    `json:"company_id,omitzero" validate:"omitempty,gt=0" swaggertype:"integer"`
	DocumentTypeID *int                    `json:"document_type_id" validate:"omitempty,gt=0"`
}

type DocumentResponse struct {
	ID           int     `json:"id"`
	Number       string  `json:"number"`
	Date         string  `json:"date"`
	Comment      *string `json:"comment"`
	Company      *string `json:"company"`
	DocumentType string  `json:"document_type"`
}

type DocumentLineRequest struct {
	Quantity              int  `json:"quantity" validate:"gte=0"`
	ActualQuantity        *int `json:"actual_quantity" validate:"omitempty,gte=0"`
	ProductID             int  `json:"product_id" validate:"required,gt=0"`
	DocumentID            int  `json:"document_id" validate:"required,gt=0"`
	StorageZoneSenderID   *int `json:"storage_zone_sender_id" validate:"omitempty,gt=0"`
	StorageZoneReceiverID *int `json:"storage_zone_receiver_id" validate:"omitempty,gt=0"`
}

type DocumentLineResponse struct {
	ID                    int     `json:"id"`
	Quantity              int     `json:"quantity"`
	ActualQuantity        *int    `json:"actual_quantity"`
	ProductID             int     `json:"product_id"`
	Product               string  `json:"product"`
	DocumentID            int     `json:"document_id"`
	StorageZoneSenderID   *int    `json:"storage_zone_sender_id"`
	StorageZoneSender     *string `json:"storage_zone_sender"`
	StorageZoneReceiverID *int    `json:"storage_zone_receiver_id"`
	StorageZoneReceiver   *string `json:"storage_zone_receiver"`
}

type ProductRequest struct {
	Article       int              `json:"article" validate:"required,gt=0"`
	Name          string           `json:"name" validate:"required,max=45"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,gte=0" swaggertype:"number"`
	SellPrice     *decimal.Decimal `json:"sell_price" validate:"omitempty,gte=0" swaggertype:"number"`
	CategoryID    *int             `json:"category_id" validate:"omitempty,gt=0"`
	UnitID        *int             `json:"unit_id" validate:"omitempty,gt=0"`
}

// ProductPatchRequest changes only the fields present in the payload. An
// explicit null clears a price, the category or the unit.
type ProductPatchRequest struct {
	Article       *int                             `json:"article" validate:"omitempty,gt=0"`
	Name          *string                          `json:"name" validate:"omitempty,min=1,max=45"`
	PurchasePrice models.Optional[decimal.Decimal] `json:"purchase_price,omitzero" validate:"omitempty,gte=0" swaggertype:"number"`
	SellPrice     models.Optional[decimal.Decimal] `json:"sell_price,omitzero" validate:"omitempty,gte=0" swaggertype:"number"`
	IsActive      *bool                            `json:"is_active"`
	CategoryID    models.Optional[int]             `json:"category_id,omitzero" validate:"omitempty,gt=0" swaggertype:"integer"`
	UnitID        models.Optional[int]             `json:"unit_id,omitzero" validate:"omitempty,gt=0" swaggertype:"integer"`
}

type ProductResponse struct {
	ID            int      `json:"id"`
	Article       int      `json:"article"`
	Name          string   `json:"name"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellPrice     *float64 `json:"sell_price"`
	IsActive      bool     `json:"is_active"`
	Category      *string  `json:"category"`
	Unit          *string  `json:"unit"`
}

type QuantityResponse struct {
	Quantity int    `json:"quantity"`
	Error    string `json:"error,omitempty"`
}

type ImportProductsResult struct {
	ImportedProductsCount int               `json:"imported"`
	Errors                []ValidationError `json:"errors"`
}

type EmployeeRequest struct {
	Login          string  `json:"login" validate:"required,max=45"`
	Password       string  `json:"password" validate:"required,password_bytes"`
	FirstName      string  `json:"first_name" validate:"required,max=45"`
	LastName       string  `json:"last_name" validate:"required,max=45"`
	PassportSeries int     `json:"passport_series" validate:"required,gt=0"`
	PassportNumber int     `json:"passport_number" validate:"required,gt=0"`
	Email          *string `json:"email" validate:"omitempty,email,max=45"`
	NumberPhone    *string `json:"number_phone" validate:"omitempty,max=45"`
	DateBirth      *string `json:"date_birth" validate:"omitempty,datetime=2006-01-02"`
	PositionID     *int    `json:"position_id" validate:"omitempty,gt=0"`
	SubdivisionID  *int    `json:"subdivision_id" validate:"omitempty,gt=0"`
	RoleID         *int    `json:"role_id" validate:"omitempty,gt=0"`
}

// EmployeeUpdateRequest replaces the employee. An omitted password keeps
// the current one.
type EmployeeUpdateRequest struct {
	Login          string  `json:"login" validate:"required,max=45"`
	Password       string  `json:"password" validate:"omitempty,password_bytes"`
	FirstName      string  `json:"first_name" validate:"required,max=45"`
	LastName       string  `json:"last_name" validate:"required,max=45"`
	PassportSeries int     `json:"passport_series" validate:"required,gt=0"`
	PassportNumber int     `json:"passport_number" validate:"required,gt=0"`
	Email          *string `json:"email" validate:"omitempty,email,max=45"`
	NumberPhone    *string `json:"number_phone" validate:"omitempty,max=45"`
	DateBirth      *string `json:"date_birth" validate:"omitempty,datetime=2006-01-02"`
	PositionID     *int    `json:"position_id" validate:"omitempty,gt=0"`
	SubdivisionID  *int    `json:"subdivision_id" validate:"omitempty,gt=0"`
	RoleID         *int    `json:"role_id" validate:"omitempty,gt=0"`
}

type EmployeeResponse struct {
	ID             int     `json:"id"`
	Login          string  `json:"login"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	PassportSeries int     `json:"passport_series"`
	PassportNumber int     `json:"passport_number"`
	Email          *string `json:"email"`
	NumberPhone    *string `json:"number_phone"`
	DateBirth      *string `json:"date_birth"`
	PositionID     *int    `json:"position_id"`
	Position       *string `json:"position"`
	SubdivisionID  *int    `json:"subdivision_id"`
	Subdivision    *string `json:"subdivision"`
	RoleID         *int    `json:"role_id"`
	Role           *string `json:"role"`
}

type StorageZoneRequest struct {
	Name               string  `json:"name" validate:"required,max=255"`
	Comment            *string `json:"comment" validate:"omitempty,max=255"`
	StorageConditionID int     `json:"storage_condition_id" validate:"required,gt=0"`
}

type StorageZoneResponse struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Comment          *string `json:"comment"`
	StorageCondition string  `json:"storage_condition"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    *int   `json:"role_id"`
}

type LoginResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}
