package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return toSnakeCase(fld.Name)
		}
		return name
	})

	// Register custom timezone validator
	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		if tz == "" {
			return false
		}
		_, err := time.LoadLocation(tz)
		return err == nil
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range verrs {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   err.Field(),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.String {
			return "must be at most " + err.Param() + " characters"
		}
		return "must be at most " + err.Param()
	case "gt":
		return "must be greater than " + err.Param()
	case "gte":
		return "must be at least " + err.Param()
	case "lt":
		return "must be less than " + err.Param()
	case "lte":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "datetime":
		if err.Param() == domain.DateLayout {
			return "must be a date in YYYY-MM-DD format"
		}
		return "must match the format " + err.Param()
	case "timezone":
		return "must be a valid IANA timezone"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
