package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/validation"
)

type RoomValidator struct {
	validate     *validator.Validate
	allowedTypes []string
	log          *logger.Logger
}

func NewRoomValidator(allowedTypes []string, log *logger.Logger) *RoomValidator {
	return &RoomValidator{
		validate:     validator.New(),
		allowedTypes: allowedTypes,
		log:          log,
	}
}

// Validate checks every field and accumulates all failures so the caller can
// render them together.
func (v *RoomValidator) Validate(in *model.RoomInput) error {
	var fields validation.FieldErrors

	if err := v.validate.Struct(in); err != nil {
		fields = append(fields, validation.Translate(err)...)
	}

	if in.Type != "" && !v.allowed(in.Type) {
		fields = append(fields, validation.FieldError{
			Field:   "Type",
			Message: fmt.Sprintf("Type must be one of: %s", strings.Join(v.allowedTypes, " ")),
		})
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

func (v *RoomValidator) allowed(roomType string) bool {
	for _, t := range v.allowedTypes {
		if strings.EqualFold(t, roomType) {
			return true
		}
	}
	return false
}
