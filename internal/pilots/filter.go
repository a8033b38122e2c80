package pilots

import (
	"net/url"
	"strconv"
	"strings"
)

// All disables a filter criterion.
const All = "all"

type FilterField string

const (
	FieldCategory FilterField = "category"
	FieldDuration FilterField = "duration"
	FieldRisk     FilterField = "risk"
)

// FilterSelection is the browse view's query state. It is a plain value: transitions return a
// new selection and never mutate the receiver.
type FilterSelection struct {
	Category string `json:"category"`
	Duration string `json:"duration"`
	Risk     string `json:"risk"`
}

type FilterAction struct {
	Field FilterField
	Value string
}

func DefaultSelection() FilterSelection {
	return FilterSelection{Category: All, Duration: All, Risk: All}
}

// Apply returns the selection that results from a. An empty value resets the field to All;
// an unknown field returns s unchanged.
func (s FilterSelection) Apply(a FilterAction) FilterSelection {
	value := a.Value
	if value == "" {
		value = All
	}
	switch a.Field {
	case FieldCategory:
		s.Category = value
	case FieldDuration:
		s.Duration = value
	case FieldRisk:
		s.Risk = value
	}
	return s
}

func (s FilterSelection) IsDefault() bool {
	return s == DefaultSelection()
}

// SelectionFromQuery folds the category, duration and risk query parameters into a selection.
func SelectionFromQuery(values url.Values) FilterSelection {
	sel := DefaultSelection()
	for _, field := range []FilterField{FieldCategory, FieldDuration, FieldRisk} {
		if _, ok := values[string(field)]; ok {
			sel = sel.Apply(FilterAction{Field: field, Value: values.Get(string(field))})
		}
	}
	return sel
}

// Filter returns the listings that pass every active criterion, in catalog order.
// Unknown category or risk values and non-numeric durations match nothing.
func Filter(listings []PilotListing, sel FilterSelection) []PilotListing {
	matchDuration := durationMatcher(sel.Duration)
	out := make([]PilotListing, 0, len(listings))
	for _, l := range listings {
		if sel.Category != All && string(l.Category) != sel.Category {
			continue
		}
		if !matchDuration(l.Duration) {
			continue
		}
		if sel.Risk != All && string(l.Risk) != sel.Risk {
			continue
		}
		out = append(out, l)
	}
	return out
}

func durationMatcher(value string) func(DurationDays) bool {
	if value == All {
		return func(DurationDays) bool { return true }
	}
	want, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return func(DurationDays) bool { return false }
	}
	return func(d DurationDays) bool { return float64(d) == want }
}
