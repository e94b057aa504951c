package domain

// ActionOwner identifies the single actor responsible for the next step at a
// given status. Ownership is singular: no status has joint accountability.
type ActionOwner string

const (
	OwnerHR        ActionOwner = "HR"
	OwnerCandidate ActionOwner = "Candidate"
	OwnerManager   ActionOwner = "Manager"
	OwnerSystem    ActionOwner = "System"
)

// Viewpoint selects which side of the recruitment pass is being rendered.
// The same underlying stage can carry different labels and expose different
// actions per viewpoint.
type Viewpoint string

const (
	ViewpointCandidate Viewpoint = "candidate"
	ViewpointManager   Viewpoint = "manager"
)

// ActionType classifies the concrete UI action a status prompts for.
type ActionType string

const (
	ActionNone               ActionType = "none"
	ActionCompleteProfile    ActionType = "complete_profile"
	ActionSelectSlot         ActionType = "select_slot"
	ActionConfirmInterview   ActionType = "confirm_interview"
	ActionAttendInterview    ActionType = "attend_interview"
	ActionReviewOffer        ActionType = "review_offer"
	ActionUploadOnboarding   ActionType = "upload_onboarding_docs"
	ActionCompleteOnboarding ActionType = "complete_onboarding"
	ActionAddSlots           ActionType = "add_slots"
	ActionSubmitEvaluation   ActionType = "submit_evaluation"
	ActionManagerGeneric     ActionType = "manager_action"
)

// StatusConfig describes one status within a (stage, viewpoint) pair.
// Keys are unique within their stage and viewpoint; candidate and manager
// registries are independent namespaces, so the same key may exist in both.
type StatusConfig struct {
	Key          string
	Label        string
	NextAction   string
	ActionType   ActionType
	ActionOwner  ActionOwner
	InternalOnly bool
}

// ActionConfig is the derived next-action payload for rendering. It is
// computed on demand from a (stage, status, viewpoint) triple, never stored.
type ActionConfig struct {
	Label       string      `json:"label"`
	Description string      `json:"description"`
	ActionType  ActionType  `json:"action_type"`
	ActionOwner ActionOwner `json:"action_owner"`
}
