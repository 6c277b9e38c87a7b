package validator

import (
	"errors"
	"io"
	"testing"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/validation"
)

func testValidator() *RoomValidator {
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	return NewRoomValidator([]string{"Simple", "Double", "Suite"}, log)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     model.RoomInput
		wantError bool
	}{
		{
			name:  "valid room",
			input: model.RoomInput{Number: 101, Type: "Simple", Price: 450, Status: "Available"},
		},
		{
			name:  "status may be omitted",
			input: model.RoomInput{Number: 101, Type: "Double", Price: 700},
		},
		{
			name:      "number must be positive",
			input:     model.RoomInput{Number: 0, Type: "Simple", Price: 450},
			wantError: true,
		},
		{
			name:      "type is required",
			input:     model.RoomInput{Number: 101, Price: 450},
			wantError: true,
		},
		{
			name:      "type outside the category set",
			input:     model.RoomInput{Number: 101, Type: "Penthouse", Price: 450},
			wantError: true,
		},
		{
			name:      "price must be positive",
			input:     model.RoomInput{Number: 101, Type: "Simple", Price: 0},
			wantError: true,
		},
		{
			name:      "unknown status",
			input:     model.RoomInput{Number: 101, Type: "Simple", Price: 450, Status: "Cleaning"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testValidator().Validate(&tt.input)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidate_AccumulatesAllFields(t *testing.T) {
	err := testValidator().Validate(&model.RoomInput{Number: 0, Type: "", Price: -1})

	var fields validation.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fields) < 3 {
		t.Errorf("expected one error per failing field, got %d: %v", len(fields), fields)
	}

	byField := fields.ByField()
	for _, want := range []string{"Number", "Type", "Price"} {
		if _, ok := byField[want]; !ok {
			t.Errorf("missing error for field %s: %v", want, byField)
		}
	}
}

func TestValidate_TypeMatchIsCaseInsensitive(t *testing.T) {
	if err := testValidator().Validate(&model.RoomInput{Number: 101, Type: "suite", Price: 900}); err != nil {
		t.Errorf("category comparison should ignore case: %v", err)
	}
}
