// Package validation holds the field-scoped error types shared by the domain
// validators. Failures accumulate: every failing field yields its own entry
// so the presentation layer can render all of them at once.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return ""
	}
	messages := make([]string, 0, len(f))
	for _, err := range f {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(f), strings.Join(messages, "; "))
}

// ByField flattens the errors into a map for AppError details.
func (f FieldErrors) ByField() map[string]any {
	out := make(map[string]any, len(f))
	for _, err := range f {
		out[err.Field] = err.Message
	}
	return out
}

// Translate converts validator/v10 struct errors into field errors with
// human-readable messages. Unknown tags fall back to the library message.
func Translate(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var structErrs validator.ValidationErrors
	if !errors.As(err, &structErrs) {
		return FieldErrors{{Field: "", Message: err.Error()}}
	}

	var out FieldErrors
	for _, fe := range structErrs {
		message := fe.Error()

		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		}

		out = append(out, FieldError{Field: fe.Field(), Message: message})
	}

	return out
}
