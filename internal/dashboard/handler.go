package dashboard

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "github.com/elmaatouquii/Gestion-Hotel/pkg/http"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.Summary(r.Context()))
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/dashboard/summary", h.Summary)
}
