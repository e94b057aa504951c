package workflow_test

import (
	"testing"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/workflow"
)

func TestCandidateActionRequired_OwnedByCandidate(t *testing.T) {
	action := workflow.CandidateActionRequired("interview", "slots_available")
	if action == nil {
		t.Fatal("expected action for interview/slots_available, got nil")
	}
	if action.ActionType != domain.ActionSelectSlot {
		t.Errorf("ActionType = %q, want %q", action.ActionType, domain.ActionSelectSlot)
	}
	if action.ActionOwner != domain.OwnerCandidate {
		t.Errorf("ActionOwner = %q, want %q", action.ActionOwner, domain.OwnerCandidate)
	}
	if action.Label != "Select interview slot" {
		t.Errorf("Label = %q, want %q", action.Label, "Select interview slot")
	}
}

func TestCandidateActionRequired_NotOwner(t *testing.T) {
	// Owner is HR, not Candidate: the candidate UI must render nothing.
	if action := workflow.CandidateActionRequired("screening", "shortlisted"); action != nil {
		t.Errorf("expected nil for HR-owned status, got %+v", action)
	}
	// System-owned.
	if action := workflow.CandidateActionRequired("offer", "declined"); action != nil {
		t.Errorf("expected nil for System-owned status, got %+v", action)
	}
}

func TestCandidateActionRequired_UnknownKeys(t *testing.T) {
	if action := workflow.CandidateActionRequired("probation", "pending"); action != nil {
		t.Errorf("expected nil for unknown stage, got %+v", action)
	}
	if action := workflow.CandidateActionRequired("interview", "ghosted"); action != nil {
		t.Errorf("expected nil for unknown status, got %+v", action)
	}
}

func TestCandidateActionRequired_ActionTypes(t *testing.T) {
	cases := []struct {
		stage  string
		status string
		want   domain.ActionType
	}{
		{"application", "incomplete", domain.ActionCompleteProfile},
		{"interview", "scheduled", domain.ActionConfirmInterview},
		{"interview", "confirmed", domain.ActionAttendInterview},
		{"offer", "released", domain.ActionReviewOffer},
		{"onboarding", "initiated", domain.ActionUploadOnboarding},
		{"onboarding", "documents_pending", domain.ActionUploadOnboarding},
		{"onboarding", "pre_joining", domain.ActionCompleteOnboarding},
		// Candidate-owned but with no concrete UI action mapped.
		{"screening", "assessment_sent", domain.ActionNone},
		{"offer", "negotiating", domain.ActionNone},
	}
	for _, c := range cases {
		action := workflow.CandidateActionRequired(c.stage, c.status)
		if action == nil {
			t.Errorf("CandidateActionRequired(%s, %s) = nil, want action", c.stage, c.status)
			continue
		}
		if action.ActionType != c.want {
			t.Errorf("CandidateActionRequired(%s, %s).ActionType = %q, want %q", c.stage, c.status, action.ActionType, c.want)
		}
	}
}

func TestCandidateActionRequired_NormalizesInputs(t *testing.T) {
	action := workflow.CandidateActionRequired("Interview", "Slots Available")
	if action == nil || action.ActionType != domain.ActionSelectSlot {
		t.Fatalf("raw-cased inputs should resolve, got %+v", action)
	}
}

func TestManagerActionRequired_ProvideAvailabilityIsForced(t *testing.T) {
	// The branch fires regardless of hasAvailableSlots.
	for _, hasSlots := range []bool{false, true} {
		action := workflow.ManagerActionRequired("interview", "pending", hasSlots, 0)
		if action == nil {
			t.Fatalf("expected action with hasAvailableSlots=%v, got nil", hasSlots)
		}
		if action.Label != "Provide Availability" {
			t.Errorf("Label = %q, want %q", action.Label, "Provide Availability")
		}
		if action.ActionType != domain.ActionAddSlots {
			t.Errorf("ActionType = %q, want %q", action.ActionType, domain.ActionAddSlots)
		}
		if action.Description != "Add available interview time slots" {
			t.Errorf("Description = %q", action.Description)
		}
	}
}

func TestManagerActionRequired_EvaluationPluralization(t *testing.T) {
	cases := []struct {
		pending   int
		wantLabel string
		wantDesc  string
	}{
		{1, "Submit Evaluation", "1 evaluation pending"},
		{3, "Submit Evaluations", "3 evaluations pending"},
	}
	for _, c := range cases {
		action := workflow.ManagerActionRequired("interview", "feedback_pending", true, c.pending)
		if action == nil {
			t.Fatalf("expected action for feedback_pending with %d evaluations", c.pending)
		}
		if action.Label != c.wantLabel {
			t.Errorf("pending=%d: Label = %q, want %q", c.pending, action.Label, c.wantLabel)
		}
		if action.Description != c.wantDesc {
			t.Errorf("pending=%d: Description = %q, want %q", c.pending, action.Description, c.wantDesc)
		}
		if action.ActionType != domain.ActionSubmitEvaluation {
			t.Errorf("ActionType = %q, want %q", action.ActionType, domain.ActionSubmitEvaluation)
		}
	}
}

func TestManagerActionRequired_GenericAction(t *testing.T) {
	action := workflow.ManagerActionRequired("screening", "in_progress", false, 0)
	if action == nil {
		t.Fatal("expected generic manager action, got nil")
	}
	if action.ActionType != domain.ActionManagerGeneric {
		t.Errorf("ActionType = %q, want %q", action.ActionType, domain.ActionManagerGeneric)
	}
	if action.Label != "Review candidate profile" {
		t.Errorf("Label = %q, want registry next action", action.Label)
	}
}

func TestManagerActionRequired_LegacyDecisionStage(t *testing.T) {
	action := workflow.ManagerActionRequired("decision", "pending", false, 0)
	if action == nil {
		t.Fatal("legacy 'decision' stage should resolve to offer, got nil")
	}
	if action.Label != "Make hire/no-hire decision" {
		t.Errorf("Label = %q", action.Label)
	}
}

func TestManagerActionRequired_NotOwner(t *testing.T) {
	// slots_provided is System-owned: the manager waits.
	if action := workflow.ManagerActionRequired("interview", "slots_provided", true, 0); action != nil {
		t.Errorf("expected nil for System-owned status, got %+v", action)
	}
	if action := workflow.ManagerActionRequired("offer", "approved", false, 0); action != nil {
		t.Errorf("expected nil for HR-owned status, got %+v", action)
	}
}

func TestNextActionInfo_CoversEveryRegistryEntry(t *testing.T) {
	for _, view := range []domain.Viewpoint{domain.ViewpointCandidate, domain.ViewpointManager} {
		for _, stage := range workflow.Stages(view) {
			for _, cfg := range workflow.StatusesFor(stage.Key, view) {
				info := workflow.NextActionInfo(stage.Key, cfg.Key, view)
				if info == nil {
					t.Errorf("NextActionInfo(%s, %s, %s) = nil", stage.Key, cfg.Key, view)
					continue
				}
				if info.ActionOwner != cfg.ActionOwner {
					t.Errorf("NextActionInfo(%s, %s, %s).ActionOwner = %q, want %q",
						stage.Key, cfg.Key, view, info.ActionOwner, cfg.ActionOwner)
				}
				if info.NextAction != cfg.NextAction {
					t.Errorf("NextActionInfo(%s, %s, %s).NextAction = %q, want %q",
						stage.Key, cfg.Key, view, info.NextAction, cfg.NextAction)
				}
			}
		}
	}
}

func TestNextActionInfo_NoOwnerFiltering(t *testing.T) {
	// HR-owned entries are still reported: this accessor shows who acts next.
	info := workflow.NextActionInfo("screening", "shortlisted", domain.ViewpointCandidate)
	if info == nil {
		t.Fatal("expected info for HR-owned status")
	}
	if info.ActionOwner != domain.OwnerHR {
		t.Errorf("ActionOwner = %q, want HR", info.ActionOwner)
	}
}

func TestNextActionInfo_UnknownReturnsNil(t *testing.T) {
	if info := workflow.NextActionInfo("interview", "ghosted", domain.ViewpointManager); info != nil {
		t.Errorf("expected nil, got %+v", info)
	}
}
