package pilots

import "strconv"

// readinessAttribute is one named readiness check and the predicate that satisfies it.
type readinessAttribute struct {
	Key       string
	Label     string
	Satisfied func(Readiness) bool
}

var readinessAttributes = [...]readinessAttribute{
	{
		Key:       "sandboxAvailable",
		Label:     "Sandbox Available",
		Satisfied: func(r Readiness) bool { return r.SandboxAvailable },
	},
	{
		Key:       "securityReviewCompleted",
		Label:     "Security Review",
		Satisfied: func(r Readiness) bool { return r.SecurityReviewCompleted },
	},
	{
		Key:       "integrationDocsReady",
		Label:     "Integration Docs",
		Satisfied: func(r Readiness) bool { return r.IntegrationDocsReady },
	},
	{
		Key:       "supportSLA",
		Label:     "Support",
		Satisfied: func(r Readiness) bool { return r.SupportSLA != "" },
	},
}

// ReadinessTotal is the number of readiness attributes a listing is scored on.
const ReadinessTotal = len(readinessAttributes)

type ReadinessScore struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

func (s ReadinessScore) String() string {
	return strconv.Itoa(s.Completed) + "/" + strconv.Itoa(s.Total)
}

// Score counts satisfied readiness attributes. Display only: it never affects filtering or order.
func Score(r Readiness) ReadinessScore {
	completed := 0
	for _, attr := range readinessAttributes {
		if attr.Satisfied(r) {
			completed++
		}
	}
	return ReadinessScore{Completed: completed, Total: ReadinessTotal}
}

type ReadinessCheck struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Done   bool   `json:"done"`
	Detail string `json:"detail,omitempty"`
}

// Checklist lists every readiness attribute in fixed order with its state.
func Checklist(r Readiness) []ReadinessCheck {
	checks := make([]ReadinessCheck, 0, ReadinessTotal)
	for _, attr := range readinessAttributes {
		check := ReadinessCheck{Key: attr.Key, Label: attr.Label, Done: attr.Satisfied(r)}
		if attr.Key == "supportSLA" {
			check.Detail = r.SupportSLA
		}
		checks = append(checks, check)
	}
	return checks
}
