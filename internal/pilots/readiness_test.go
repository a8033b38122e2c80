package pilots

import "testing"

func TestScoreAllSatisfied(t *testing.T) {
	got := Score(Readiness{
		SandboxAvailable:        true,
		SecurityReviewCompleted: true,
		IntegrationDocsReady:    true,
		SupportSLA:              "24h response",
	})
	if got != (ReadinessScore{Completed: 4, Total: 4}) {
		t.Fatalf("expected 4/4, got %s", got)
	}
}

func TestScorePartial(t *testing.T) {
	got := Score(Readiness{
		SandboxAvailable:        true,
		SecurityReviewCompleted: false,
		IntegrationDocsReady:    true,
		SupportSLA:              "",
	})
	if got != (ReadinessScore{Completed: 2, Total: 4}) {
		t.Fatalf("expected 2/4, got %s", got)
	}
}

func TestScoreBounds(t *testing.T) {
	got := Score(Readiness{})
	if got.Completed != 0 || got.Total != ReadinessTotal {
		t.Fatalf("expected 0/%d, got %s", ReadinessTotal, got)
	}
	if ReadinessTotal != 4 {
		t.Fatalf("expected 4 readiness attributes, got %d", ReadinessTotal)
	}
}

func TestScoreSampleCatalog(t *testing.T) {
	want := map[string]string{"PayFlow": "4/4", "DevTrace": "3/4", "ChainGuard": "4/4"}
	for _, l := range SampleListings() {
		if got := Score(l.Readiness).String(); got != want[l.Company] {
			t.Fatalf("%s: expected %s, got %s", l.Company, want[l.Company], got)
		}
	}
}

func TestChecklist(t *testing.T) {
	checks := Checklist(Readiness{SandboxAvailable: true, SupportSLA: "12h response"})
	if len(checks) != ReadinessTotal {
		t.Fatalf("expected %d checks, got %d", ReadinessTotal, len(checks))
	}
	if !checks[0].Done || checks[1].Done || checks[2].Done || !checks[3].Done {
		t.Fatalf("unexpected states: %+v", checks)
	}
	if checks[3].Label != "Support" || checks[3].Detail != "12h response" {
		t.Fatalf("unexpected support check: %+v", checks[3])
	}
}
