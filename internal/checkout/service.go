package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/metrics"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var (
	ErrNotConfigured = errors.New("payments not configured")
	ErrMissingURL    = errors.New("checkout session has no url")
)

// Listing fee charged for one pilot listing.
const (
	ListingPriceCents int64 = 4900
	ListingCurrency         = "usd"
	ListingQuantity   int64 = 1
	ListingProduct          = "PilotRoom — Pilot Listing"
)

type Config struct {
	SecretKey string
	// BaseURL is the public site root the hosted page returns to.
	BaseURL string
	// APIURL overrides the payment API base, e.g. for a test server.
	APIURL string
}

type Service struct {
	api     *client.API
	baseURL string
}

// NewService returns a Service whose CreateSession fails with ErrNotConfigured when no
// secret key is set.
func NewService(cfg Config) *Service {
	s := &Service{baseURL: strings.TrimRight(cfg.BaseURL, "/")}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return s
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: 10 * time.Second},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg)
	s.api = client.New(cfg.SecretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return s
}

func (s *Service) Enabled() bool {
	return s != nil && s.api != nil
}

// SessionParams builds the one-line-item payment session for company.
func (s *Service) SessionParams(company string) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(ListingCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(ListingProduct),
						Description: stripe.String("Pilot listing for " + company),
					},
					UnitAmount: stripe.Int64(ListingPriceCents),
				},
				Quantity: stripe.Int64(ListingQuantity),
			},
		},
		SuccessURL: stripe.String(s.baseURL + "/success"),
		CancelURL:  stripe.String(s.baseURL + "/create"),
	}
}

// CreateSession opens a hosted checkout session and returns its URL. It makes at most one
// outbound call and keeps no state.
func (s *Service) CreateSession(ctx context.Context, company string) (string, error) {
	if !s.Enabled() {
		metrics.CheckoutSessions.WithLabelValues(metrics.OutcomeNotEnabled).Inc()
		return "", ErrNotConfigured
	}

	params := s.SessionParams(company)
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	if session.URL == "" {
		metrics.CheckoutSessions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return "", ErrMissingURL
	}

	metrics.CheckoutSessions.WithLabelValues(metrics.OutcomeCreated).Inc()
	return session.URL, nil
}
