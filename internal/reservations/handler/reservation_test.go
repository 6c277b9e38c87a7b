package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/elmaatouquii/Gestion-Hotel/internal/inventory"
	"github.com/elmaatouquii/Gestion-Hotel/internal/reservations/service"
	"github.com/elmaatouquii/Gestion-Hotel/internal/reservations/validator"
	"github.com/elmaatouquii/Gestion-Hotel/internal/storage"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/confirm"
	apperrors "github.com/elmaatouquii/Gestion-Hotel/pkg/errors"
	httputil "github.com/elmaatouquii/Gestion-Hotel/pkg/http"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

var testToday = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*httprouter.Router, *inventory.Inventory, *confirm.Registry) {
	t.Helper()

	ctx := context.Background()
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	inv := inventory.New(storage.NewMemoryStore(), log, inventory.WithClock(func() time.Time { return testToday }))

	for _, room := range []model.Room{
		{Number: 101, Type: "Simple", Price: 450},
		{Number: 201, Type: "Suite", Price: 1200},
	} {
		if _, err := inv.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom(%d): %v", room.Number, err)
		}
	}

	svc := service.NewReservationService(inv, validator.NewReservationValidator(log), log)
	confirms := confirm.NewRegistry()

	router := httprouter.New()
	NewReservationHandler(svc, confirms, log).RegisterRoutes(router)
	return router, inv, confirms
}

func doJSON(t *testing.T, router *httprouter.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCreateAndGet(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"clientName":"Amina El Fassi","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-05"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body)
	}
	created := decodeData[model.Reservation](t, rec.Body)
	if created.ID == "" || created.Total != 4*450 {
		t.Fatalf("created = %+v", created)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/reservations/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	if got := decodeData[model.Reservation](t, rec.Body); got.ClientName != "Amina El Fassi" {
		t.Errorf("ClientName = %s", got.ClientName)
	}
}

func TestCreate_Conflict(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"clientName":"Amina El Fassi","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-05"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"clientName":"Youssef Benali","roomNumber":101,"checkIn":"2025-06-04","checkOut":"2025-06-08"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	var errResp httputil.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != apperrors.CodeBookingConflict {
		t.Errorf("code = %s, want %s", errResp.Code, apperrors.CodeBookingConflict)
	}
	if _, ok := errResp.Details["conflicting_reservation"]; !ok {
		t.Errorf("details missing conflicting_reservation: %+v", errResp.Details)
	}
}

func TestQuote(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations/quote",
		`{"roomNumber":201,"checkIn":"2025-06-01","checkOut":"2025-06-04"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	quote := decodeData[inventory.Quote](t, rec.Body)
	if quote.Nights != 3 || quote.Total != 3600 {
		t.Errorf("quote = %+v", quote)
	}
}

func TestList_ActivityFilter(t *testing.T) {
	router, _, _ := newTestRouter(t)
	for _, body := range []string{
		`{"clientName":"Amina El Fassi","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-05"}`,
		`{"clientName":"Youssef Benali","roomNumber":201,"checkIn":"2025-05-10","checkOut":"2025-05-12"}`,
	} {
		if rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed reservation: status %d, body %s", rec.Code, rec.Body)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reservations?activity=active", "")
	active := decodeData[[]model.Reservation](t, rec.Body)
	if len(active) != 1 || active[0].ClientName != "Amina El Fassi" {
		t.Errorf("active = %+v", active)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/reservations?activity=past", "")
	past := decodeData[[]model.Reservation](t, rec.Body)
	if len(past) != 1 || past[0].ClientName != "Youssef Benali" {
		t.Errorf("past = %+v", past)
	}
}

func TestDelete_StagesConfirmation(t *testing.T) {
	router, inv, confirms := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"clientName":"Amina El Fassi","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-05"}`)
	created := decodeData[model.Reservation](t, rec.Body)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/reservations/"+created.ID, "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("DELETE status = %d, want %d", rec.Code, http.StatusAccepted)
	}

	var pending httputil.PendingResponse
	if err := json.NewDecoder(rec.Body).Decode(&pending); err != nil {
		t.Fatalf("decode pending response: %v", err)
	}
	if !strings.Contains(pending.Summary, "Amina El Fassi") {
		t.Errorf("summary should name the client: %q", pending.Summary)
	}

	if _, ok := inv.ReservationByID(created.ID); !ok {
		t.Fatal("reservation deleted before confirmation")
	}

	if err := confirms.Resolve(context.Background(), pending.ConfirmToken); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := inv.ReservationByID(created.ID); ok {
		t.Error("reservation still present after confirmation")
	}

	// Confirming the cancellation releases the room.
	room, _ := inv.RoomByNumber(101)
	if room.Status != model.RoomAvailable {
		t.Errorf("room status = %s, want %s", room.Status, model.RoomAvailable)
	}
}

func TestDelete_SecondStageReplacesFirst(t *testing.T) {
	router, inv, confirms := newTestRouter(t)

	var ids []string
	for _, body := range []string{
		`{"clientName":"Amina El Fassi","roomNumber":101,"checkIn":"2025-06-01","checkOut":"2025-06-05"}`,
		`{"clientName":"Youssef Benali","roomNumber":201,"checkIn":"2025-06-01","checkOut":"2025-06-03"}`,
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations", body)
		ids = append(ids, decodeData[model.Reservation](t, rec.Body).ID)
	}

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/reservations/"+ids[0], "")
	var first httputil.PendingResponse
	if err := json.NewDecoder(rec.Body).Decode(&first); err != nil {
		t.Fatalf("decode first pending: %v", err)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/reservations/"+ids[1], "")
	var second httputil.PendingResponse
	if err := json.NewDecoder(rec.Body).Decode(&second); err != nil {
		t.Fatalf("decode second pending: %v", err)
	}

	// The first token died when the second action was staged.
	if err := confirms.Resolve(context.Background(), first.ConfirmToken); err == nil {
		t.Error("stale token should not resolve")
	}
	if err := confirms.Resolve(context.Background(), second.ConfirmToken); err != nil {
		t.Fatalf("Resolve(second): %v", err)
	}

	if _, ok := inv.ReservationByID(ids[0]); !ok {
		t.Error("first reservation should survive its staged-then-replaced deletion")
	}
	if _, ok := inv.ReservationByID(ids[1]); ok {
		t.Error("second reservation should be deleted")
	}
}
