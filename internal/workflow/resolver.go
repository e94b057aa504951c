package workflow

import (
	"fmt"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

// NextAction is the display-only projection of a status: who acts next and
// what they are expected to do. No owner filtering is applied.
type NextAction struct {
	NextAction  string             `json:"next_action"`
	ActionOwner domain.ActionOwner `json:"action_owner"`
}

// CandidateActionRequired derives the candidate's pending action for a raw
// (stage, status) pair. It returns nil when the pair is unknown or when the
// candidate is not the action owner: the UI must never prompt an actor who
// cannot act.
func CandidateActionRequired(stage, status string) *domain.ActionConfig {
	cfg := statusConfig(stage, status, domain.ViewpointCandidate)
	if cfg == nil || cfg.ActionOwner != domain.OwnerCandidate {
		return nil
	}
	actionType := cfg.ActionType
	if actionType == "" {
		actionType = domain.ActionNone
	}
	return &domain.ActionConfig{
		Label:       cfg.NextAction,
		Description: fmt.Sprintf("Action required by %s", cfg.ActionOwner),
		ActionType:  actionType,
		ActionOwner: cfg.ActionOwner,
	}
}

// ManagerActionRequired derives the manager's pending action for a raw
// (stage, status) pair. hasAvailableSlots is accepted for interface parity
// but does not gate the interview/pending branch: "Provide Availability"
// fires whenever that status holds, whether or not slots already exist.
// pendingEvaluations drives the pluralized evaluation action.
func ManagerActionRequired(stage, status string, hasAvailableSlots bool, pendingEvaluations int) *domain.ActionConfig {
	cfg := statusConfig(stage, status, domain.ViewpointManager)
	if cfg == nil || cfg.ActionOwner != domain.OwnerManager {
		return nil
	}

	stageKey := NormalizeStageKey(stage)
	statusKey := NormalizeStatusKey(status)

	if stageKey == domain.StageInterview && statusKey == "pending" {
		return &domain.ActionConfig{
			Label:       "Provide Availability",
			Description: "Add available interview time slots",
			ActionType:  domain.ActionAddSlots,
			ActionOwner: domain.OwnerManager,
		}
	}

	if stageKey == domain.StageInterview && statusKey == "feedback_pending" {
		plural := ""
		if pendingEvaluations > 1 {
			plural = "s"
		}
		return &domain.ActionConfig{
			Label:       fmt.Sprintf("Submit Evaluation%s", plural),
			Description: fmt.Sprintf("%d evaluation%s pending", pendingEvaluations, plural),
			ActionType:  domain.ActionSubmitEvaluation,
			ActionOwner: domain.OwnerManager,
		}
	}

	return &domain.ActionConfig{
		Label:       cfg.NextAction,
		Description: fmt.Sprintf("Action required by %s", cfg.ActionOwner),
		ActionType:  domain.ActionManagerGeneric,
		ActionOwner: cfg.ActionOwner,
	}
}

// NextActionInfo returns the configured next action and owner for display
// contexts that show who needs to act without gating on the current viewer.
func NextActionInfo(stage, status string, view domain.Viewpoint) *NextAction {
	cfg := statusConfig(stage, status, view)
	if cfg == nil {
		return nil
	}
	return &NextAction{
		NextAction:  cfg.NextAction,
		ActionOwner: cfg.ActionOwner,
	}
}
