package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/elmaatouquii/Gestion-Hotel/internal/query"
	"github.com/elmaatouquii/Gestion-Hotel/internal/rooms/service"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/confirm"
	httputil "github.com/elmaatouquii/Gestion-Hotel/pkg/http"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/logger"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/model"
)

type RoomHandler struct {
	service  service.RoomService
	confirms *confirm.Registry
	log      *logger.Logger
}

func NewRoomHandler(service service.RoomService, confirms *confirm.Registry, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service:  service,
		confirms: confirms,
		log:      log,
	}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	rooms := h.service.List(r.Context(), service.ListQuery{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Sort:   query.FromRequest(r),
	})
	httputil.WriteSuccess(w, rooms)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, room)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.RoomInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	room, warning, err := h.service.Create(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreatedWarn(w, room, warning)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.RoomInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	room, warning, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccessWarn(w, room, warning)
}

// Delete stages the removal instead of executing it. The response carries a
// confirmation token and a summary mentioning how many reservations would be
// orphaned; the deletion runs when the token is confirmed.
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	room, dependents, err := h.service.PrepareDelete(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	summary := fmt.Sprintf("Delete room %d (%s)", room.Number, room.Type)
	if dependents > 0 {
		summary = fmt.Sprintf("%s; %d reservation(s) will keep referencing the deleted room", summary, dependents)
	}

	token := h.confirms.Stage(summary, func(ctx context.Context) error {
		_, warning, err := h.service.Delete(ctx, id)
		if err != nil {
			return err
		}
		if warning != "" {
			h.log.Warn("Room deletion confirmed but not persisted", "id", id, "warning", warning)
		}
		return nil
	})

	httputil.WritePending(w, token, summary, "")
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/rooms", h.List)
	router.POST("/api/v1/rooms", h.Create)
	router.GET("/api/v1/rooms/:id", h.Get)
	router.PUT("/api/v1/rooms/:id", h.Update)
	router.DELETE("/api/v1/rooms/:id", h.Delete)
}
