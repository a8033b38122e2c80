package resources

// Artifact is one standard pilot document offered for download.
type Artifact struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Icon        string `json:"icon"`
}

type Note struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var artifacts = []Artifact{
	{
		Slug:        "pilot-loi",
		Title:       "Standardized Pilot LOI",
		Description: "Letter of Intent template defining scope, timelines, and mutual commitments",
		Action:      "Download Template",
		Icon:        "file-text",
	},
	{
		Slug:        "mutual-nda",
		Title:       "Mutual NDA",
		Description: "Pre-vetted confidentiality agreement for pilot partnerships",
		Action:      "Download Template",
		Icon:        "shield",
	},
	{
		Slug:        "success-checklist",
		Title:       "Pilot Success Checklist",
		Description: "Week-by-week framework for running effective pilots",
		Action:      "Download Checklist",
		Icon:        "users",
	},
	{
		Slug:        "end-of-pilot-review",
		Title:       "End-of-Pilot Review",
		Description: "Structured template for evaluating results and next steps",
		Action:      "Download Template",
		Icon:        "trending-up",
	},
}

var whyStandardized = Note{
	Title: "Why Standardized Artifacts Matter",
	Body: "These templates create shared language between startups and pilot partners, reduce legal friction, " +
		"set clear expectations, and establish PilotRoom as the default standard for running professional pilots.",
}

// Artifacts returns the standard documents in display order.
func Artifacts() []Artifact {
	return append([]Artifact(nil), artifacts...)
}

func WhyStandardized() Note {
	return whyStandardized
}
