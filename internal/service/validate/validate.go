// Package validate checks service inputs against their `validate` struct
// tags and reports failures as *domain.ValidationError keyed by JSON field
// name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/localcrm/internal/domain"
)

// DateLayout is the wire format of calendar dates (close_date, due_date).
const DateLayout = "2006-01-02"

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Struct validates s. It returns nil or a *domain.ValidationError holding
// one FieldError per failed field, in struct order.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

// Date parses an optional calendar date. nil and "" mean no date; anything
// that is not YYYY-MM-DD is a *domain.ValidationError for field.
func Date(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a date (YYYY-MM-DD)")
	}
	return &d, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	default:
		return "is invalid"
	}
}
