package web

import (
	"html/template"
	"net/url"
	"strconv"

	"github.com/CryptoCardia/pilotroom-web/internal/pilots"
	"github.com/CryptoCardia/pilotroom-web/internal/submissions"
)

// View identifies the page the layout highlights in its navigation.
type View string

const (
	ViewBrowse    View = "browse"
	ViewCreate    View = "create"
	ViewResources View = "resources"
	ViewSuccess   View = "success"
)

type navItem struct {
	Label  string
	Href   string
	Active bool
}

var navOrder = []struct {
	view  View
	label string
	href  string
}{
	{ViewBrowse, "Browse Pilots", "/"},
	{ViewCreate, "Create Pilot", "/create"},
	{ViewResources, "Resources", "/resources"},
}

// Nav returns the navigation entries with the one for v marked active.
func (v View) Nav() []navItem {
	items := make([]navItem, 0, len(navOrder))
	for _, n := range navOrder {
		items = append(items, navItem{Label: n.label, Href: n.href, Active: n.view == v})
	}
	return items
}

// Visibility is the browse header's Public/Anonymous toggle. It travels in the query string
// and only changes how the header presents the visitor.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityAnonymous Visibility = "anonymous"
)

const visibilityParam = "browse"

func visibilityFromQuery(q url.Values) Visibility {
	if Visibility(q.Get(visibilityParam)) == VisibilityAnonymous {
		return VisibilityAnonymous
	}
	return VisibilityPublic
}

func (v Visibility) Anonymous() bool {
	return v == VisibilityAnonymous
}

func (v Visibility) Label() string {
	if v.Anonymous() {
		return "Anonymous"
	}
	return "Public"
}

func (v Visibility) Toggle() Visibility {
	if v.Anonymous() {
		return VisibilityPublic
	}
	return VisibilityAnonymous
}

// browseURL links to the browse view with the active filters and v. Default values are left out.
func browseURL(sel pilots.FilterSelection, v Visibility) string {
	q := url.Values{}
	for field, value := range map[pilots.FilterField]string{
		pilots.FieldCategory: sel.Category,
		pilots.FieldDuration: sel.Duration,
		pilots.FieldRisk:     sel.Risk,
	} {
		if value != pilots.All {
			q.Set(string(field), value)
		}
	}
	if v.Anonymous() {
		q.Set(visibilityParam, string(v))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

func options(current string, values, labels []string) []option {
	out := make([]option, 0, len(values))
	for i, v := range values {
		out = append(out, option{Value: v, Label: labels[i], Selected: v == current})
	}
	return out
}

type filterOptions struct {
	Categories []option
	Durations  []option
	Risks      []option
}

func newFilterOptions(sel pilots.FilterSelection) filterOptions {
	cats := []string{pilots.All}
	catLabels := []string{"All Categories"}
	for _, c := range pilots.Categories {
		cats = append(cats, string(c))
		catLabels = append(catLabels, string(c))
	}

	durs := []string{pilots.All}
	durLabels := []string{"All Durations"}
	for _, d := range pilots.Durations {
		durs = append(durs, strconv.Itoa(int(d)))
		durLabels = append(durLabels, strconv.Itoa(int(d))+" days")
	}

	risks := []string{pilots.All}
	riskLabels := []string{"All Risk Levels"}
	for _, r := range pilots.RiskLevels {
		risks = append(risks, string(r))
		riskLabels = append(riskLabels, pilots.RiskLabel(r))
	}

	return filterOptions{
		Categories: options(sel.Category, cats, catLabels),
		Durations:  options(sel.Duration, durs, durLabels),
		Risks:      options(sel.Risk, risks, riskLabels),
	}
}

// The create form labels the low risk level differently from the browse filter.
var formRiskLabels = map[pilots.RiskLevel]string{
	pilots.RiskLow:    "Low (sandbox only)",
	pilots.RiskMedium: "Medium (limited prod)",
	pilots.RiskHigh:   "High (core flow)",
}

type formOptions struct {
	Durations    []option
	Integrations []option
	Risks        []option
	Incentives   []option
}

func newFormOptions(form submissions.PilotSubmission) formOptions {
	var durs, durLabels []string
	for _, d := range pilots.Durations {
		durs = append(durs, strconv.Itoa(int(d)))
		durLabels = append(durLabels, strconv.Itoa(int(d))+" days")
	}

	var ints []string
	for _, i := range pilots.IntegrationDepths {
		ints = append(ints, string(i))
	}

	var risks, riskLabels []string
	for _, r := range pilots.RiskLevels {
		risks = append(risks, string(r))
		riskLabels = append(riskLabels, formRiskLabels[r])
	}

	return formOptions{
		Durations:    options(form.Duration, durs, durLabels),
		Integrations: options(form.Integration, ints, ints),
		Risks:        options(form.Risk, risks, riskLabels),
		Incentives:   options(form.Incentive, submissions.IncentiveOptions, submissions.IncentiveOptions),
	}
}

func badgeCSS(b pilots.BadgeStyle) template.CSS {
	return template.CSS("background:" + b.Background + ";color:" + b.Text + ";border:1px solid " + b.Border)
}

func checkMark(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}
