package workflow_test

import (
	"testing"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/workflow"
)

func TestIsInternalOnlyStatus(t *testing.T) {
	cases := []struct {
		stage  string
		status string
		want   bool
	}{
		{"screening", "assessment_waived", true},
		{"Screening", "Assessment Waived", true},
		{"screening", "assessment-waived", true},
		{"screening", "assessment_sent", false},
		{"screening", "shortlisted", false},
		{"interview", "assessment_waived", false}, // flag is per (stage, status)
		{"probation", "assessment_waived", false}, // unknown stage
		{"screening", "ghosted", false},           // unknown status
	}
	for _, c := range cases {
		if got := workflow.IsInternalOnlyStatus(c.stage, c.status); got != c.want {
			t.Errorf("IsInternalOnlyStatus(%q, %q) = %v, want %v", c.stage, c.status, got, c.want)
		}
	}
}

func TestInternalOnlyStatusesStayVisibleToManagers(t *testing.T) {
	// Manager viewpoint always renders the true label, even for statuses the
	// candidate registry masks. assessment_waived has no manager entry, so the
	// manager side humanizes it rather than masking.
	got := workflow.StatusLabel("screening", "assessment_waived", domain.ViewpointManager)
	if got == "In Progress" {
		t.Fatalf("manager label must never be masked, got %q", got)
	}
	if got != "Assessment Waived" {
		t.Errorf("manager label = %q, want humanized true status", got)
	}
}

func TestVisibilityFilterGeneralizesBeyondWaived(t *testing.T) {
	// The filter reads the flag, not a hard-coded key: every flagged entry in
	// the candidate registry must be reported, and only those.
	for _, stage := range workflow.Stages(domain.ViewpointCandidate) {
		for _, cfg := range workflow.StatusesFor(stage.Key, domain.ViewpointCandidate) {
			got := workflow.IsInternalOnlyStatus(stage.Key, cfg.Key)
			if got != cfg.InternalOnly {
				t.Errorf("IsInternalOnlyStatus(%s, %s) = %v, want %v", stage.Key, cfg.Key, got, cfg.InternalOnly)
			}
		}
	}
}
