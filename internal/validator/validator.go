// Package validator wires custom validation rules into gin's binding engine
// and converts validation failures into per-field messages.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// decimalPattern accepts non-negative fixed-point amounts like "10" or "10.00".
var decimalPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Init registers the custom validation tags on gin's binding validator.
// Must run before the engine starts binding requests.
func Init() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a *validator.Validate")
	}

	if err := v.RegisterValidation("decimal", validateDecimal); err != nil {
		return fmt.Errorf("failed to register decimal validation: %w", err)
	}
	if err := v.RegisterValidation("responsehours", validateResponseHours); err != nil {
		return fmt.Errorf("failed to register responsehours validation: %w", err)
	}
	return nil
}

// validateDecimal checks that the field is a non-negative fixed-point
// decimal with at most two fractional digits.
func validateDecimal(fl validator.FieldLevel) bool {
	return decimalPattern.MatchString(fl.Field().String())
}

// validateResponseHours checks that the field parses to an integer >= 1.
// The field is a json.Number, so this sees its string form.
func validateResponseHours(fl validator.FieldLevel) bool {
	n, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil && n >= 1
}

// FieldErrors flattens a binding error into field -> message pairs for 400
// responses. Non-validation errors map to a single "body" entry.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "malformed request body"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field()[:1])+fe.Field()[1:]] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "decimal":
		return "must be a non-negative decimal amount"
	case "responsehours":
		return "must be a whole number of hours, at least 1"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
