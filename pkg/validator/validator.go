package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
func NewDefaultValidator() *DefaultValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names instead of Go struct field names
	v.RegisterTagNameFunc(jsonTagName)

	// Decimals are validated through their float64 value so numeric tags (gte, lte) apply
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})

	// notblank rejects strings made only of whitespace
	//nolint:errcheck
	v.RegisterValidation("notblank", validators.NotBlank)
	// decimal=P:S mirrors a NUMERIC(P,S) column, e.g. decimal=18:2
	//nolint:errcheck
	v.RegisterValidation("decimal", validateDecimal)

	return &DefaultValidator{v: v}
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "notblank":
		return "must not be blank"
	case "decimal":
		precision, scale, _ := parseDecimalParam(fe.Param())
		return fmt.Sprintf("must have at most %d integer digits and %d decimal places", precision-scale, scale)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return "is invalid"
	}
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func decimalValue(field reflect.Value) any {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := d.Float64()
		return f
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		f, _ := d.Decimal.Float64()
		return f
	}
	return nil
}

// validateDecimal reads the original decimal from the parent struct, since the
// field value it is handed has already been converted to float64.
func validateDecimal(fl validator.FieldLevel) bool {
	precision, scale, err := parseDecimalParam(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("invalid decimal param %q: %v", fl.Param(), err))
	}

	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() {
		return false
	}

	var d decimal.Decimal
	switch v := field.Interface().(type) {
	case decimal.Decimal:
		d = v
	case decimal.NullDecimal:
		if !v.Valid {
			return true
		}
		d = v.Decimal
	default:
		return false
	}

	if !d.Equal(d.Truncate(int32(scale))) {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, int32(precision-scale)))
}

func parseDecimalParam(param string) (precision, scale int, err error) {
	p, s, ok := strings.Cut(param, ":")
	if !ok {
		return 0, 0, fmt.Errorf("want precision:scale")
	}
	if precision, err = strconv.Atoi(p); err != nil {
		return 0, 0, err
	}
	if scale, err = strconv.Atoi(s); err != nil {
		return 0, 0, err
	}
	if scale < 0 || scale > precision {
		return 0, 0, fmt.Errorf("scale %d out of range for precision %d", scale, precision)
	}
	return precision, scale, nil
}
