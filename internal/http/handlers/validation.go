package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Prices are validated as numbers.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	// Patch fields validate their value; unset and null are skipped by omitempty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		switch o := field.Interface().(type) {
		case models.Optional[string]:
			if o.Value != nil {
				return *o.Value
			}
		case models.Optional[int]:
			if o.Value != nil {
				return *o.Value
			}
		case models.Optional[decimal.Decimal]:
			if o.Value != nil {
				return o.Value.InexactFloat64()
			}
		}
		return nil
	}, models.Optional[string]{}, models.Optional[int]{}, models.Optional[decimal.Decimal]{})

	// bcrypt counts bytes, so a short Cyrillic password can still be too long.
	_ = v.RegisterValidation("password_bytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= auth.MaxPasswordBytes
	})

	return v
}

func validationErrors(err error) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Description: err.Error()}}
	}

	errs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{Field: fe.Field(), Description: describe(fe)})
	}
	return errs
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be less than %s", field, fe.Param())
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "email":
		return field + " must be a valid email address"
	case "password_bytes":
		return fmt.Sprintf("%s must be at most %d bytes", field, auth.MaxPasswordBytes)
	default:
		return field + " is invalid"
	}
}

// decodeAndValidate reads the request body into dst and validates it. On
// failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := readJSON(w, r, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respond(w, http.StatusBadRequest, validationErrors(err))
		return false
	}
	return true
}
