package submissions

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/httpx"
	"github.com/CryptoCardia/pilotroom-web/internal/metrics"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if !h.service.Enabled() {
		metrics.Submissions.WithLabelValues(metrics.OutcomeSkipped).Inc()
		log.Warn("pilot submit: email not configured, skipped")
		httpx.WriteJSON(w, http.StatusOK, submitResponse{Success: true})
		return
	}

	// The body is forwarded with its own key set, so it is not bound to PilotSubmission.
	var raw map[string]json.RawMessage
	if err := httpx.DecodeJSON(r.Body, &raw); err != nil || raw == nil {
		log.Warn("pilot submit: invalid json")
		httpx.WriteJSON(w, http.StatusBadRequest, submitResponse{Success: false, Error: "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	outcome, id, err := h.service.SubmitPayload(ctx, PayloadFromJSON(raw))
	if err != nil {
		log.Error("pilot submit: email error", slog.String("error", err.Error()))
		httpx.WriteJSON(w, http.StatusInternalServerError, submitResponse{Success: false})
		return
	}

	log.Info("pilot submit: ok", slog.String("outcome", string(outcome)), slog.String("message_id", id))
	httpx.WriteJSON(w, http.StatusOK, submitResponse{Success: true})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
