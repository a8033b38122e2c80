package pilots

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/cache"
	"github.com/CryptoCardia/pilotroom-web/internal/httpx"
	"github.com/CryptoCardia/pilotroom-web/internal/metrics"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  *Service
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(service *Service, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

type listResponse struct {
	Items   []ListingView   `json:"items"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
	Filters FilterSelection `json:"filters"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	sel := SelectionFromQuery(r.URL.Query())

	count := 0
	payload, hit, err := cache.Fetch(r.Context(), h.cache, listCacheKey(sel), h.cacheTTL, func() ([]byte, error) {
		items := h.service.Browse(sel)
		count = len(items)
		return json.Marshal(listResponse{
			Items:   items,
			Count:   len(items),
			Total:   h.service.Total(),
			Filters: sel,
		})
	})
	if err != nil {
		log.Error("pilots list: encode error", slog.String("error", err.Error()))
		httpx.WriteError(w, http.StatusInternalServerError, "encode error", nil)
		return
	}

	if hit {
		log.Info("pilots list: cache hit")
	} else {
		metrics.BrowseResults.Observe(float64(count))
		log.Info("pilots list: ok", slog.Int("count", count))
	}
	httpx.WriteRawJSON(w, http.StatusOK, payload)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	rawID := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.Atoi(rawID)
	if err != nil {
		log.Warn("pilots get: invalid id", slog.String("id", rawID))
		httpx.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("pilots get: not found", slog.Int("pilot_id", id))
			httpx.WriteError(w, http.StatusNotFound, "pilot not found", nil)
			return
		}
		log.Error("pilots get: lookup error", slog.String("error", err.Error()))
		httpx.WriteError(w, http.StatusInternalServerError, "lookup error", nil)
		return
	}

	log.Info("pilots get: ok", slog.Int("pilot_id", id))
	httpx.WriteJSON(w, http.StatusOK, item)
}

// listCacheKey is unambiguous because the field values are quoted.
func listCacheKey(sel FilterSelection) string {
	return "pilots:list:" + strconv.Quote(sel.Category) + "|" + strconv.Quote(sel.Duration) + "|" + strconv.Quote(sel.Risk)
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
