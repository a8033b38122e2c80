package checkout

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/httpx"
	"github.com/CryptoCardia/pilotroom-web/internal/metrics"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
	"github.com/CryptoCardia/pilotroom-web/internal/validation"
)

// CreateRequest needs only the company; any other keys in the body are ignored.
type CreateRequest struct {
	Company string `json:"company" validate:"notblank"`
}

type createResponse struct {
	URL string `json:"url"`
}

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if !h.service.Enabled() {
		metrics.CheckoutSessions.WithLabelValues(metrics.OutcomeNotEnabled).Inc()
		log.Error("pilot checkout: payments not configured")
		httpx.WriteError(w, http.StatusInternalServerError, "Stripe not configured", nil)
		return
	}

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("pilot checkout: invalid json")
		httpx.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("pilot checkout: validation error")
		httpx.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	url, err := h.service.CreateSession(ctx, req.Company)
	if err != nil {
		log.Error("pilot checkout: session error", slog.String("error", err.Error()))
		httpx.WriteError(w, http.StatusInternalServerError, "Checkout failed", nil)
		return
	}

	log.Info("pilot checkout: ok")
	httpx.WriteJSON(w, http.StatusOK, createResponse{URL: url})
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
