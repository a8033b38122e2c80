package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/cache"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

// Server serves the small site-wide endpoints that do not belong to a feature package.
type Server struct {
	Log      *slog.Logger
	Cache    cache.Cache
	CacheTTL time.Duration
	Checks   map[string]Check
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
