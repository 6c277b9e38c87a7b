package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/elmaatouquii/Gestion-Hotel/internal/query"
	"github.com/elmaatouquii/Gestion-Hotel/internal/reservations/service"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/confirm"
	httputil "github.com/elmaatouquii/Gestion-Hotel/pkg/http"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

type ReservationHandler struct {
	service  service.ReservationService
	confirms *confirm.Registry
	log      *logger.Logger
}

func NewReservationHandler(service service.ReservationService, confirms *confirm.Registry, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service:  service,
		confirms: confirms,
		log:      log,
	}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	reservations := h.service.List(r.Context(), service.ListQuery{
		Search:   q.Get("search"),
		Activity: q.Get("activity"),
		Sort:     query.FromRequest(r),
	})
	httputil.WriteSuccess(w, reservations)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, res)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	res, warning, err := h.service.Create(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreatedWarn(w, res, warning)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	res, warning, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccessWarn(w, res, warning)
}

// Delete stages the removal instead of executing it; the cancellation runs
// when the returned token is confirmed.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	res, err := h.service.PrepareDelete(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	summary := fmt.Sprintf("Cancel reservation for %s, room %d, %s to %s",
		res.ClientName, res.RoomNumber, res.CheckIn, res.CheckOut)

	token := h.confirms.Stage(summary, func(ctx context.Context) error {
		_, warning, err := h.service.Delete(ctx, id)
		if err != nil {
			return err
		}
		if warning != "" {
			h.log.Warn("Reservation deletion confirmed but not persisted", "id", id, "warning", warning)
		}
		return nil
	})

	httputil.WritePending(w, token, summary, "")
}

// Quote prices a stay without creating it.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.QuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	quote, err := h.service.Quote(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, quote)
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/reservations", h.List)
	router.POST("/api/v1/reservations", h.Create)
	router.POST("/api/v1/reservations/quote", h.Quote)
	router.GET("/api/v1/reservations/:id", h.Get)
	router.PUT("/api/v1/reservations/:id", h.Update)
	router.DELETE("/api/v1/reservations/:id", h.Delete)
}
