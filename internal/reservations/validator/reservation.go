package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/validation"
)

type ReservationValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewReservationValidator(log *logger.Logger) *ReservationValidator {
	return &ReservationValidator{
		validate: validator.New(),
		log:      log,
	}
}

// Validate checks every field, parses the dates, and enforces the check-out
// after check-in rule. All failures accumulate; the parsed dates are only
// meaningful when the returned error is nil.
func (v *ReservationValidator) Validate(in *model.ReservationInput) (model.Date, model.Date, error) {
	var fields validation.FieldErrors

	if err := v.validate.Struct(in); err != nil {
		fields = append(fields, validation.Translate(err)...)
	}

	checkIn, checkOut, dateFields := v.parseRange(in.CheckIn, in.CheckOut)
	fields = append(fields, dateFields...)

	if len(fields) > 0 {
		return model.Date{}, model.Date{}, fields
	}
	return checkIn, checkOut, nil
}

// ValidateQuote applies the same date rules for the pre-commit preview.
func (v *ReservationValidator) ValidateQuote(in *model.QuoteInput) (model.Date, model.Date, error) {
	var fields validation.FieldErrors

	if err := v.validate.Struct(in); err != nil {
		fields = append(fields, validation.Translate(err)...)
	}

	checkIn, checkOut, dateFields := v.parseRange(in.CheckIn, in.CheckOut)
	fields = append(fields, dateFields...)

	if len(fields) > 0 {
		return model.Date{}, model.Date{}, fields
	}
	return checkIn, checkOut, nil
}

func (v *ReservationValidator) parseRange(rawIn, rawOut string) (model.Date, model.Date, validation.FieldErrors) {
	var fields validation.FieldErrors

	var checkIn, checkOut model.Date
	var err error

	// A missing date is already reported by the required tag; only parse
	// what was actually submitted.
	if rawIn != "" {
		if checkIn, err = model.ParseDate(rawIn); err != nil {
			fields = append(fields, validation.FieldError{
				Field:   "CheckIn",
				Message: "CheckIn must be a valid YYYY-MM-DD date",
			})
		}
	}
	if rawOut != "" {
		if checkOut, err = model.ParseDate(rawOut); err != nil {
			fields = append(fields, validation.FieldError{
				Field:   "CheckOut",
				Message: "CheckOut must be a valid YYYY-MM-DD date",
			})
		}
	}

	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		fields = append(fields, validation.FieldError{
			Field:   "CheckOut",
			Message: "CheckOut must be strictly after CheckIn",
		})
	}

	return checkIn, checkOut, fields
}
