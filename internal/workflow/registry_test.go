package workflow_test

import (
	"testing"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/workflow"
)

func TestStages_OrderAndKeys(t *testing.T) {
	want := []string{"application", "screening", "interview", "offer", "onboarding"}
	for _, view := range []domain.Viewpoint{domain.ViewpointCandidate, domain.ViewpointManager} {
		stages := workflow.Stages(view)
		if len(stages) != len(want) {
			t.Fatalf("Stages(%s) returned %d stages, want %d", view, len(stages), len(want))
		}
		for i, key := range want {
			if stages[i].Key != key {
				t.Errorf("Stages(%s)[%d].Key = %q, want %q", view, i, stages[i].Key, key)
			}
		}
	}
}

func TestStatusKeysUniquePerStageAndViewpoint(t *testing.T) {
	for _, view := range []domain.Viewpoint{domain.ViewpointCandidate, domain.ViewpointManager} {
		for _, stage := range workflow.Stages(view) {
			seen := make(map[string]bool)
			for _, cfg := range workflow.StatusesFor(stage.Key, view) {
				if seen[cfg.Key] {
					t.Errorf("duplicate status key %q in %s/%s", cfg.Key, stage.Key, view)
				}
				seen[cfg.Key] = true
			}
		}
	}
}

func TestEveryStatusHasSingularKnownOwner(t *testing.T) {
	known := map[domain.ActionOwner]bool{
		domain.OwnerHR:        true,
		domain.OwnerCandidate: true,
		domain.OwnerManager:   true,
		domain.OwnerSystem:    true,
	}
	for _, view := range []domain.Viewpoint{domain.ViewpointCandidate, domain.ViewpointManager} {
		for _, stage := range workflow.Stages(view) {
			for _, cfg := range workflow.StatusesFor(stage.Key, view) {
				if !known[cfg.ActionOwner] {
					t.Errorf("%s/%s/%s has unknown owner %q", stage.Key, cfg.Key, view, cfg.ActionOwner)
				}
			}
		}
	}
}

func TestRegistriesAreIndependentNamespaces(t *testing.T) {
	// assessment_sent exists for candidates only; shortlisted exists in both
	// with different next actions.
	if cfgs := workflow.StatusesFor("screening", domain.ViewpointManager); containsKey(cfgs, "assessment_sent") {
		t.Error("assessment_sent should not exist in the manager screening registry")
	}
	cand := workflow.NextActionInfo("screening", "shortlisted", domain.ViewpointCandidate)
	mgr := workflow.NextActionInfo("screening", "shortlisted", domain.ViewpointManager)
	if cand == nil || mgr == nil {
		t.Fatal("shortlisted should resolve in both registries")
	}
	if cand.NextAction == mgr.NextAction {
		t.Error("candidate and manager registries should be independent for shared keys")
	}
}

func TestManagerRegistryHasNoInternalOnlyStatuses(t *testing.T) {
	for _, stage := range workflow.Stages(domain.ViewpointManager) {
		for _, cfg := range workflow.StatusesFor(stage.Key, domain.ViewpointManager) {
			if cfg.InternalOnly {
				t.Errorf("manager status %s/%s must not be internal-only", stage.Key, cfg.Key)
			}
		}
	}
}

func TestStatusesFor_UnknownStage(t *testing.T) {
	if cfgs := workflow.StatusesFor("probation", domain.ViewpointCandidate); cfgs != nil {
		t.Errorf("expected nil for unknown stage, got %d configs", len(cfgs))
	}
}

func TestStageIndex(t *testing.T) {
	cases := []struct {
		stage string
		want  int
	}{
		{"application", 0},
		{"screening", 1},
		{"Interview", 2},
		{"decision", 3},
		{"onboarding", 4},
		{"unknown", 0},
	}
	for _, c := range cases {
		if got := workflow.StageIndex(c.stage); got != c.want {
			t.Errorf("StageIndex(%q) = %d, want %d", c.stage, got, c.want)
		}
	}
}

func containsKey(cfgs []domain.StatusConfig, key string) bool {
	for _, cfg := range cfgs {
		if cfg.Key == key {
			return true
		}
	}
	return false
}
