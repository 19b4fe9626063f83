package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"camping_arequita/internal/domain"
)

// ErrSubmissionInFlight means an identical submission has not resolved yet.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ValidationError carries one message per failing field; the first failing
// rule per field wins, matching the form's inline error display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the json field names the forms use
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidatePreReservation checks the static field bounds. The dynamic
// guest-vs-capacity bound is the gateway's job since it needs the listing.
func ValidatePreReservation(req domain.PreReservation) map[string]string {
	return collect(validate.Struct(req))
}

func ValidateSuggestion(req domain.Suggestion) map[string]string {
	fields := collect(validate.Struct(req))
	if _, taken := fields["category"]; !taken && !domain.ValidSuggestionCategory(req.Category) {
		fields["category"] = "Unknown category"
	}
	return fields
}

func collect(err error) map[string]string {
	fields := map[string]string{}
	if err == nil {
		return fields
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		name := fe.Field()
		if _, taken := fields[name]; taken {
			continue // first failing rule per field
		}
		fields[name] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "eqfield":
		return "Emails don't match"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Min %s characters", fe.Param())
		}
		return fmt.Sprintf("Min %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Max %s characters", fe.Param())
		}
		return fmt.Sprintf("Max %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	default:
		return "Invalid value"
	}
}
