package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/elmaatouquii/Gestion-Hotel/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
	// Warning carries non-fatal notices, e.g. a failed durable write after a
	// mutation that still applied in memory.
	Warning string `json:"warning,omitempty"`
}

// PendingResponse answers a destructive request that was staged rather than
// executed. The client resolves it via the confirmation endpoint.
type PendingResponse struct {
	ConfirmToken string `json:"confirm_token"`
	Summary      string `json:"summary"`
	Warning      string `json:"warning,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	WriteJSON(w, status, ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteSuccessWarn(w http.ResponseWriter, data any, warning string) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Data: data, Warning: warning})
}

func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteCreatedWarn(w http.ResponseWriter, data any, warning string) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data, Warning: warning})
}

func WritePending(w http.ResponseWriter, token, summary, warning string) {
	WriteJSON(w, http.StatusAccepted, PendingResponse{
		ConfirmToken: token,
		Summary:      summary,
		Warning:      warning,
	})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
