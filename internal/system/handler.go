// Package system exposes the non-domain endpoints: liveness and the
// confirmation flow shared by every staged deletion.
package system

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/elmaatouquii/Gestion-Hotel/internal/storage"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/confirm"
	apperrors "github.com/elmaatouquii/Gestion-Hotel/pkg/errors"
	httputil "github.com/elmaatouquii/Gestion-Hotel/pkg/http"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
)

type Handler struct {
	store    storage.Store
	confirms *confirm.Registry
	log      *logger.Logger
}

func NewHandler(store storage.Store, confirms *confirm.Registry, log *logger.Logger) *Handler {
	return &Handler{
		store:    store,
		confirms: confirms,
		log:      log,
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.Warn("Storage ping failed", "error", err)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "degraded",
			Storage: err.Error(),
		})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "ok"})
}

type confirmRequest struct {
	Token string `json:"token"`
}

// Confirm resolves a previously staged action. A mismatched or stale token
// fails without touching the pending action.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	if req.Token == "" {
		httputil.WriteError(w, apperrors.InvalidInput("Confirmation token is required"))
		return
	}

	if err := h.confirms.Resolve(r.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, confirm.ErrNoPending):
			httputil.WriteError(w, apperrors.New(
				apperrors.CodeConfirmationRequired,
				"No action is awaiting confirmation",
				http.StatusConflict,
			))
		case errors.Is(err, confirm.ErrTokenMismatch):
			httputil.WriteError(w, apperrors.New(
				apperrors.CodeConfirmationRequired,
				"Confirmation token does not match the pending action",
				http.StatusConflict,
			))
		default:
			httputil.WriteError(w, err)
		}
		return
	}
	httputil.WriteNoContent(w)
}

// CancelConfirm discards the pending action, if any. Idempotent.
func (h *Handler) CancelConfirm(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.confirms.Cancel()
	httputil.WriteNoContent(w)
}

type pendingResponse struct {
	Pending bool   `json:"pending"`
	Summary string `json:"summary,omitempty"`
}

// PendingConfirm describes the staged action without resolving it.
func (h *Handler) PendingConfirm(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	summary, ok := h.confirms.Pending()
	httputil.WriteJSON(w, http.StatusOK, pendingResponse{Pending: ok, Summary: summary})
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.POST("/api/v1/confirm", h.Confirm)
	router.DELETE("/api/v1/confirm", h.CancelConfirm)
	router.GET("/api/v1/confirm", h.PendingConfirm)
}
