package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/CryptoCardia/pilotroom-web/internal/cache"
	"github.com/CryptoCardia/pilotroom-web/internal/checkout"
	"github.com/CryptoCardia/pilotroom-web/internal/httpx"
	"github.com/CryptoCardia/pilotroom-web/internal/pilots"
	"github.com/CryptoCardia/pilotroom-web/internal/submissions"
)

const metaCacheKey = "meta:v1"

type riskOption struct {
	Value pilots.RiskLevel  `json:"value"`
	Label string            `json:"label"`
	Badge pilots.BadgeStyle `json:"badge"`
}

type listingFee struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Product  string `json:"product"`
}

type metaResponse struct {
	Categories        []pilots.Category           `json:"categories"`
	Durations         []pilots.DurationDays       `json:"durations"`
	RiskLevels        []riskOption                `json:"riskLevels"`
	IntegrationDepths []pilots.IntegrationDepth   `json:"integrationDepths"`
	IncentiveOptions  []string                    `json:"incentiveOptions"`
	FormDefaults      submissions.PilotSubmission `json:"formDefaults"`
	RequiredFields    []submissions.Field         `json:"requiredFields"`
	ListingFee        listingFee                  `json:"listingFee"`
}

func buildMeta() metaResponse {
	risks := make([]riskOption, 0, len(pilots.RiskLevels))
	for _, r := range pilots.RiskLevels {
		badge, _ := pilots.Badge(r)
		risks = append(risks, riskOption{Value: r, Label: pilots.RiskLabel(r), Badge: badge})
	}
	return metaResponse{
		Categories:        pilots.Categories,
		Durations:         pilots.Durations,
		RiskLevels:        risks,
		IntegrationDepths: pilots.IntegrationDepths,
		IncentiveOptions:  submissions.IncentiveOptions,
		FormDefaults:      submissions.NewForm(),
		RequiredFields:    submissions.RequiredFields,
		ListingFee: listingFee{
			Amount:   checkout.ListingPriceCents,
			Currency: checkout.ListingCurrency,
			Product:  checkout.ListingProduct,
		},
	}
}

func (s *Server) GetMeta(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	payload, hit, err := cache.Fetch(r.Context(), s.Cache, metaCacheKey, s.CacheTTL, func() ([]byte, error) {
		return json.Marshal(buildMeta())
	})
	if err != nil {
		log.Error("meta: encode error", slog.String("error", err.Error()))
		httpx.WriteError(w, http.StatusInternalServerError, "encode error", nil)
		return
	}

	if hit {
		log.Info("meta: cache hit")
	} else {
		log.Info("meta: ok")
	}
	httpx.WriteRawJSON(w, http.StatusOK, payload)
}
