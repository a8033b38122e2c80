package resources

import (
	"log/slog"
	"net/http"

	"github.com/CryptoCardia/pilotroom-web/internal/httpx"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
)

type Handler struct {
	log *slog.Logger
}

func NewHandler(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

type listResponse struct {
	Items []Artifact `json:"items"`
	Note  Note       `json:"note"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items := Artifacts()
	h.logWithRequest(r).Info("resources list: ok", slog.Int("count", len(items)))
	httpx.WriteJSON(w, http.StatusOK, listResponse{Items: items, Note: WhyStandardized()})
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
