package submissions

import "net/url"

// Field names a submission form input. The values double as JSON keys.
type Field string

const (
	FieldCompany     Field = "company"
	FieldWebsite     Field = "website"
	FieldProblem     Field = "problem"
	FieldPilotTitle  Field = "pilotTitle"
	FieldImpact      Field = "impact"
	FieldDuration    Field = "duration"
	FieldIntegration Field = "integration"
	FieldRisk        Field = "risk"
	FieldIncentive   Field = "incentive"
)

// Fields lists every submission field in form order.
var Fields = []Field{
	FieldCompany,
	FieldWebsite,
	FieldProblem,
	FieldPilotTitle,
	FieldImpact,
	FieldDuration,
	FieldIntegration,
	FieldRisk,
	FieldIncentive,
}

// RequiredFields are marked as required on the form. Nothing enforces them.
var RequiredFields = []Field{FieldCompany, FieldWebsite, FieldProblem, FieldPilotTitle, FieldImpact}

var IncentiveOptions = []string{"Free", "Discount", "Co-build", "Revenue share"}

type PilotSubmission struct {
	Company     string `json:"company"`
	Website     string `json:"website"`
	Problem     string `json:"problem"`
	PilotTitle  string `json:"pilotTitle"`
	Impact      string `json:"impact"`
	Duration    string `json:"duration"`
	Integration string `json:"integration"`
	Risk        string `json:"risk"`
	Incentive   string `json:"incentive"`
}

// NewForm returns the values the create form starts with.
func NewForm() PilotSubmission {
	return PilotSubmission{
		Duration:    "60",
		Integration: "API",
		Risk:        "Medium",
		Incentive:   "Free",
	}
}

// Set returns s with field bound to value. Unknown fields return s unchanged.
func (s PilotSubmission) Set(field Field, value string) PilotSubmission {
	switch field {
	case FieldCompany:
		s.Company = value
	case FieldWebsite:
		s.Website = value
	case FieldProblem:
		s.Problem = value
	case FieldPilotTitle:
		s.PilotTitle = value
	case FieldImpact:
		s.Impact = value
	case FieldDuration:
		s.Duration = value
	case FieldIntegration:
		s.Integration = value
	case FieldRisk:
		s.Risk = value
	case FieldIncentive:
		s.Incentive = value
	}
	return s
}

func (s PilotSubmission) Get(field Field) string {
	switch field {
	case FieldCompany:
		return s.Company
	case FieldWebsite:
		return s.Website
	case FieldProblem:
		return s.Problem
	case FieldPilotTitle:
		return s.PilotTitle
	case FieldImpact:
		return s.Impact
	case FieldDuration:
		return s.Duration
	case FieldIntegration:
		return s.Integration
	case FieldRisk:
		return s.Risk
	case FieldIncentive:
		return s.Incentive
	}
	return ""
}

// FormFromValues binds posted form values onto the defaults. Absent keys keep their default.
func FormFromValues(values url.Values) PilotSubmission {
	form := NewForm()
	for _, f := range Fields {
		if v, ok := values[string(f)]; ok && len(v) > 0 {
			form = form.Set(f, v[0])
		}
	}
	return form
}
