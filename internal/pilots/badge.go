package pilots

type BadgeStyle struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

var riskBadges = map[RiskLevel]BadgeStyle{
	RiskLow:    {Background: "#F0FDF4", Text: "#166534", Border: "#BBF7D0"},
	RiskMedium: {Background: "#FEFCE8", Text: "#854D0E", Border: "#FEF08A"},
	RiskHigh:   {Background: "#FEF2F2", Text: "#991B1B", Border: "#FECACA"},
}

var riskLabels = map[RiskLevel]string{
	RiskLow:    "Low (sandbox)",
	RiskMedium: "Medium (limited prod)",
	RiskHigh:   "High (core flow)",
}

// Badge returns the display style for a risk level. ok is false only for values NewListing
// would have rejected.
func Badge(r RiskLevel) (BadgeStyle, bool) {
	style, ok := riskBadges[r]
	return style, ok
}

func RiskLabel(r RiskLevel) string {
	if label, ok := riskLabels[r]; ok {
		return label
	}
	return string(r)
}
