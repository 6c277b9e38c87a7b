package system

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/elmaatouquii/Gestion-Hotel/internal/storage"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/confirm"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
)

func newTestRouter() (*httprouter.Router, *confirm.Registry) {
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	confirms := confirm.NewRegistry()

	router := httprouter.New()
	NewHandler(storage.NewMemoryStore(), confirms, log).RegisterRoutes(router)
	return router, confirms
}

func do(router *httprouter.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestConfirm(t *testing.T) {
	router, confirms := newTestRouter()

	var ran bool
	token := confirms.Stage("delete something", func(context.Context) error {
		ran = true
		return nil
	})

	t.Run("pending is visible", func(t *testing.T) {
		rec := do(router, http.MethodGet, "/api/v1/confirm", "")
		var resp struct {
			Pending bool   `json:"pending"`
			Summary string `json:"summary"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Pending || resp.Summary != "delete something" {
			t.Errorf("pending = %+v", resp)
		}
	})

	t.Run("wrong token is rejected and keeps the action", func(t *testing.T) {
		rec := do(router, http.MethodPost, "/api/v1/confirm", `{"token":"wrong"}`)
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
		if ran {
			t.Error("action ran on a mismatched token")
		}
	})

	t.Run("matching token runs the action", func(t *testing.T) {
		rec := do(router, http.MethodPost, "/api/v1/confirm", `{"token":"`+token+`"}`)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
		if !ran {
			t.Error("action did not run")
		}
	})

	t.Run("second confirm finds nothing pending", func(t *testing.T) {
		rec := do(router, http.MethodPost, "/api/v1/confirm", `{"token":"`+token+`"}`)
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
	})
}

func TestConfirm_MissingToken(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(router, http.MethodPost, "/api/v1/confirm", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCancelConfirm(t *testing.T) {
	router, confirms := newTestRouter()
	confirms.Stage("delete something", func(context.Context) error { return nil })

	rec := do(router, http.MethodDelete, "/api/v1/confirm", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if _, ok := confirms.Pending(); ok {
		t.Error("cancel left the action pending")
	}
}
