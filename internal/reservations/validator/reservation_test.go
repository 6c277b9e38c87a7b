package validator

import (
	"errors"
	"io"
	"testing"

	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/validation"
)

func testValidator() *ReservationValidator {
	return NewReservationValidator(logger.New(logger.Config{Level: "error", Output: io.Discard}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     model.ReservationInput
		wantError bool
	}{
		{
			name: "valid reservation",
			input: model.ReservationInput{
				ClientName: "Amina El Fassi",
				RoomNumber: 101,
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-05",
			},
		},
		{
			name: "client name too short",
			input: model.ReservationInput{
				ClientName: "A",
				RoomNumber: 101,
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-05",
			},
			wantError: true,
		},
		{
			name: "room selection required",
			input: model.ReservationInput{
				ClientName: "Amina El Fassi",
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-05",
			},
			wantError: true,
		},
		{
			name: "malformed check-in",
			input: model.ReservationInput{
				ClientName: "Amina El Fassi",
				RoomNumber: 101,
				CheckIn:    "01/06/2025",
				CheckOut:   "2025-06-05",
			},
			wantError: true,
		},
		{
			name: "checkout equal to check-in",
			input: model.ReservationInput{
				ClientName: "Amina El Fassi",
				RoomNumber: 101,
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-01",
			},
			wantError: true,
		},
		{
			name: "checkout before check-in",
			input: model.ReservationInput{
				ClientName: "Amina El Fassi",
				RoomNumber: 101,
				CheckIn:    "2025-06-05",
				CheckOut:   "2025-06-01",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := testValidator().Validate(&tt.input)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidate_ReturnsParsedDates(t *testing.T) {
	checkIn, checkOut, err := testValidator().Validate(&model.ReservationInput{
		ClientName: "Amina El Fassi",
		RoomNumber: 101,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-05",
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if checkIn.String() != "2025-06-01" || checkOut.String() != "2025-06-05" {
		t.Errorf("parsed dates = %s/%s", checkIn, checkOut)
	}
}

func TestValidate_AccumulatesAllFields(t *testing.T) {
	_, _, err := testValidator().Validate(&model.ReservationInput{
		ClientName: "",
		RoomNumber: 0,
		CheckIn:    "bad",
		CheckOut:   "",
	})

	var fields validation.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}

	byField := fields.ByField()
	for _, want := range []string{"ClientName", "RoomNumber", "CheckIn", "CheckOut"} {
		if _, ok := byField[want]; !ok {
			t.Errorf("missing error for field %s: %v", want, byField)
		}
	}
}

func TestValidateQuote(t *testing.T) {
	_, _, err := testValidator().ValidateQuote(&model.QuoteInput{
		RoomNumber: 101,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-05",
	})
	if err != nil {
		t.Errorf("ValidateQuote: %v", err)
	}

	_, _, err = testValidator().ValidateQuote(&model.QuoteInput{
		RoomNumber: 101,
		CheckIn:    "2025-06-05",
		CheckOut:   "2025-06-05",
	})
	if err == nil {
		t.Errorf("zero-night quote should fail validation")
	}
}
