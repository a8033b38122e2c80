package pilots

import (
	"errors"
	"fmt"
	"sync"

	"github.com/CryptoCardia/pilotroom-web/internal/validation"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type IntegrationDepth string

const (
	IntegrationNone       IntegrationDepth = "None"
	IntegrationAPI        IntegrationDepth = "API"
	IntegrationSDK        IntegrationDepth = "SDK"
	IntegrationDataAccess IntegrationDepth = "Data access"
)

type Category string

const (
	CategoryWalletPayments Category = "Wallet / payments tooling"
	CategoryRiskCompliance Category = "Risk, fraud, compliance"
	CategoryAnalytics      Category = "Analytics & observability"
	CategoryDevInfra       Category = "Developer infrastructure"
	CategoryAITooling      Category = "AI tooling (infra-level)"
	CategorySecurity       Category = "Security & access control"
)

// DurationDays is the length of a pilot in days.
type DurationDays int

const (
	Days30 DurationDays = 30
	Days60 DurationDays = 60
	Days90 DurationDays = 90
)

// Display order for selects and meta responses.
var (
	RiskLevels        = []RiskLevel{RiskLow, RiskMedium, RiskHigh}
	IntegrationDepths = []IntegrationDepth{IntegrationNone, IntegrationAPI, IntegrationSDK, IntegrationDataAccess}
	Categories        = []Category{
		CategoryWalletPayments,
		CategoryRiskCompliance,
		CategoryAnalytics,
		CategoryDevInfra,
		CategoryAITooling,
		CategorySecurity,
	}
	Durations = []DurationDays{Days30, Days60, Days90}
)

func IsValidRisk(value string) bool {
	for _, r := range RiskLevels {
		if string(r) == value {
			return true
		}
	}
	return false
}

func IsValidIntegration(value string) bool {
	for _, d := range IntegrationDepths {
		if string(d) == value {
			return true
		}
	}
	return false
}

func IsValidCategory(value string) bool {
	for _, c := range Categories {
		if string(c) == value {
			return true
		}
	}
	return false
}

var ErrInvalidListing = errors.New("invalid pilot listing")

type Readiness struct {
	SandboxAvailable        bool   `bson:"sandbox_available" json:"sandboxAvailable"`
	SecurityReviewCompleted bool   `bson:"security_review_completed" json:"securityReviewCompleted"`
	IntegrationDocsReady    bool   `bson:"integration_docs_ready" json:"integrationDocsReady"`
	SupportSLA              string `bson:"support_sla" json:"supportSLA"`
}

type PilotListing struct {
	ID          int              `bson:"_id" json:"id" validate:"gt=0"`
	Company     string           `bson:"company" json:"company" validate:"notblank"`
	Website     string           `bson:"website" json:"website"`
	Problem     string           `bson:"problem" json:"problem"`
	Title       string           `bson:"title" json:"title" validate:"notblank"`
	Impact      string           `bson:"impact" json:"impact"`
	Duration    DurationDays     `bson:"duration" json:"duration" validate:"oneof=30 60 90"`
	Success     []string         `bson:"success" json:"success"`
	Integration IntegrationDepth `bson:"integration" json:"integration" validate:"integration"`
	Risk        RiskLevel        `bson:"risk" json:"risk" validate:"risk"`
	Incentive   string           `bson:"incentive" json:"incentive"`
	Category    Category         `bson:"category" json:"category" validate:"category"`
	Team        string           `bson:"team" json:"team"`
	Users       string           `bson:"users" json:"users"`
	Exclusions  []string         `bson:"exclusions" json:"exclusions"`
	Readiness   Readiness        `bson:"pilot_readiness" json:"pilotReadiness"`
}

var (
	listingValidatorOnce sync.Once
	listingValidator     *validation.Validator
)

func listingRules() *validation.Validator {
	listingValidatorOnce.Do(func() {
		v := validation.New()
		_ = v.RegisterEnum("risk", IsValidRisk)
		_ = v.RegisterEnum("integration", IsValidIntegration)
		_ = v.RegisterEnum("category", IsValidCategory)
		listingValidator = v
	})
	return listingValidator
}

// NewListing validates l and returns an owned copy. A risk level outside RiskLevels is always
// rejected: it keys the badge lookup.
func NewListing(l PilotListing) (PilotListing, error) {
	v := listingRules()
	if err := v.Struct(l); err != nil {
		if errs := v.ValidationErrors(err); len(errs) > 0 {
			return PilotListing{}, fmt.Errorf("%w: listing %d field %s failed %q", ErrInvalidListing, l.ID, errs[0].Field(), errs[0].Tag())
		}
		return PilotListing{}, fmt.Errorf("%w: %v", ErrInvalidListing, err)
	}
	return l.clone(), nil
}

func (l PilotListing) clone() PilotListing {
	l.Success = append([]string(nil), l.Success...)
	l.Exclusions = append([]string(nil), l.Exclusions...)
	return l
}
