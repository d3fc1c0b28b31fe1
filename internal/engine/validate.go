package engine

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Errors: []FieldError{{Field: "input", Message: err.Error()}}}
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: validationMessage(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

type weightSeries struct {
	Weights []WeightEntry `json:"weights" validate:"dive"`
}

type nutritionSeries struct {
	Nutrition []NutritionDay `json:"nutrition" validate:"dive"`
}

// ValidateBiological rejects a profile that cannot select a BMR equation.
func ValidateBiological(b BiologicalProfile) error {
	return validateStruct(b)
}

// ValidateActivity rejects an unknown activity tier or out of range optionals.
func ValidateActivity(a ActivityProfile) error {
	return validateStruct(a)
}

// ValidateMacros rejects a non-positive or absurd target.
func ValidateMacros(m Macros) error {
	return validateStruct(m)
}

// ValidateWeights rejects non-positive weights and undated entries.
// Ordering is not checked; estimators sort their own input.
func ValidateWeights(ws []WeightEntry) error {
	return validateStruct(weightSeries{Weights: ws})
}

// ValidateNutrition rejects negative totals and undated entries.
func ValidateNutrition(ns []NutritionDay) error {
	return validateStruct(nutritionSeries{Nutrition: ns})
}

// day truncates t to its UTC calendar day.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(day(b).Sub(day(a)).Hours() / 24)
}
