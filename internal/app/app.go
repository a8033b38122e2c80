package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/cache"
	"github.com/CryptoCardia/pilotroom-web/internal/checkout"
	"github.com/CryptoCardia/pilotroom-web/internal/config"
	"github.com/CryptoCardia/pilotroom-web/internal/db"
	"github.com/CryptoCardia/pilotroom-web/internal/handlers"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
	"github.com/CryptoCardia/pilotroom-web/internal/notifications"
	"github.com/CryptoCardia/pilotroom-web/internal/pilots"
	"github.com/CryptoCardia/pilotroom-web/internal/resources"
	"github.com/CryptoCardia/pilotroom-web/internal/submissions"
	"github.com/CryptoCardia/pilotroom-web/internal/validation"
	"github.com/CryptoCardia/pilotroom-web/internal/web"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

// App owns the router and every connection opened to build it.
type App struct {
	Router http.Handler

	log     *slog.Logger
	closers []func(context.Context) error
}

// New connects the optional backing services named in cfg and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{log: logger}
	checks := map[string]handlers.Check{}

	cacheStore, err := a.openCache(ctx, cfg, checks)
	if err != nil {
		a.Close(context.Background())
		return nil, err
	}

	repo, err := a.openCatalog(ctx, cfg, checks)
	if err != nil {
		a.Close(context.Background())
		return nil, err
	}

	store, err := pilots.LoadStore(ctx, repo)
	if err != nil {
		a.Close(context.Background())
		return nil, fmt.Errorf("load pilot catalog: %w", err)
	}
	logger.Info("pilot catalog loaded", slog.Int("count", store.Len()), slog.Bool("mongo", repo != nil))

	mailer, err := newMailer(ctx, cfg)
	if err != nil {
		a.Close(context.Background())
		return nil, err
	}
	if mailer == nil {
		logger.Info("email disabled", slog.String("provider", cfg.EmailProvider))
	} else {
		logger.Info("email enabled", slog.String("provider", cfg.EmailProvider), slog.Int("recipients", len(cfg.EmailTo)))
	}

	payments := checkout.NewService(checkout.Config{
		SecretKey: cfg.StripeSecretKey,
		BaseURL:   cfg.PublicBaseURL,
	})
	logger.Info("payments", slog.Bool("enabled", payments.Enabled()))

	pilotService := pilots.NewService(store)
	submissionService := submissions.NewService(mailer, cfg.EmailFrom, cfg.EmailTo)

	webHandler, err := web.NewHandler(pilotService, submissionService, payments, logger)
	if err != nil {
		a.Close(context.Background())
		return nil, fmt.Errorf("web templates: %w", err)
	}

	a.Router = NewRouter(cfg, logger, Handlers{
		Server: &handlers.Server{
			Log:      logger,
			Cache:    cacheStore,
			CacheTTL: cfg.CacheTTL(),
			Checks:   checks,
		},
		Pilots:      pilots.NewHandler(pilotService, cacheStore, cfg.CacheTTL(), logger),
		Submissions: submissions.NewHandler(submissionService, logger),
		Checkout:    checkout.NewHandler(payments, validation.New(), logger),
		Resources:   resources.NewHandler(logger),
		Web:         webHandler,
	})
	return a, nil
}

func (a *App) openCache(ctx context.Context, cfg *config.Config, checks map[string]handlers.Check) (cache.Cache, error) {
	if cfg.RedisURL == "" && cfg.RedisAddr == "" {
		a.log.Info("redis disabled, using noop cache")
		return cache.NewNoop(), nil
	}

	var redisCache *cache.RedisCache
	var err error
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
	} else {
		redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return redisCache.Close() })

	if err := redisCache.Ping(ctx); err != nil {
		return nil, err
	}
	if cfg.RedisURL != "" {
		a.log.Info("redis connected (url)")
	} else {
		a.log.Info("redis connected", slog.String("addr", cfg.RedisAddr))
	}
	checks["redis"] = redisCache.Ping
	return redisCache, nil
}

func (a *App) openCatalog(ctx context.Context, cfg *config.Config, checks map[string]handlers.Check) (pilots.Repository, error) {
	if cfg.MongoURI == "" {
		a.log.Info("mongo disabled, using sample catalog")
		return nil, nil
	}

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	a.closers = append(a.closers, client.Disconnect)
	a.log.Info("mongo connected", slog.String("db", cfg.MongoDB))

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		return nil, fmt.Errorf("index creation failed: %w", err)
	}
	checks["mongo"] = mongoPing(client)
	return pilots.NewRepository(cols.Pilots), nil
}

func mongoPing(client *mongo.Client) handlers.Check {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

// newMailer returns a nil Mailer when the selected provider has no credentials or, for SES,
// no region.
func newMailer(ctx context.Context, cfg *config.Config) (notifications.Mailer, error) {
	switch cfg.EmailProvider {
	case config.EmailProviderSES:
		m, err := notifications.NewSESMailerFromEnv(ctx, cfg.AWSRegion)
		if errors.Is(err, notifications.ErrNotConfigured) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		if c := notifications.NewResendClient(cfg.ResendAPIKey); c != nil {
			return c, nil
		}
		return nil, nil
	}
}

// Close releases connections in reverse order of opening.
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn("app close error", slog.String("error", err.Error()))
		}
	}
	a.closers = nil
}

type Handlers struct {
	Server      *handlers.Server
	Pilots      *pilots.Handler
	Submissions *submissions.Handler
	Checkout    *checkout.Handler
	Resources   *resources.Handler
	Web         *web.Handler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	submitLimiter := middleware.NewRateLimiter(cfg.RateLimitSubmit, cfg.RateLimitWindow())
	checkoutLimiter := middleware.NewRateLimiter(cfg.RateLimitCheckout, cfg.RateLimitWindow())

	r.Get("/healthz", h.Server.Healthz)
	r.Get("/readyz", h.Server.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/pilots", h.Pilots.List)
		api.Get("/pilots/{id}", h.Pilots.Get)
		api.Get("/meta", h.Server.GetMeta)
		api.Get("/resources", h.Resources.List)
		api.With(submitLimiter.Middleware).Post("/pilot", h.Submissions.Create)
		api.With(checkoutLimiter.Middleware).Post("/pilot/checkout", h.Checkout.Create)
	})

	r.Get("/", h.Web.Browse)
	r.Get("/create", h.Web.CreateForm)
	r.With(submitLimiter.Middleware).Post("/create", h.Web.CreateSubmit)
	r.With(checkoutLimiter.Middleware).Post("/create/checkout", h.Web.Checkout)
	r.Get("/resources", h.Web.Resources)
	r.Get("/success", h.Web.Success)

	return r
}
