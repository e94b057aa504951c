// Package workflow holds the recruitment status taxonomy and derives the
// single next action due at any (stage, status, viewpoint).
//
// Governing rules:
//   - Statuses do not do work — actions do.
//   - Each status maps to one primary next action with a singular owner.
//   - The candidate pass is visibility only; HR or the system moves stages.
//   - Manager actions are decision-gated; HR is the superuser.
//
// All lookups are total: an unknown stage or status resolves to nil or a
// generic fallback label, never an error.
package workflow

import "github.com/spec-kit/recruitment-service/internal/domain"

// unifiedStages is the ordered stage set shared by both viewpoints today.
// Candidate and manager progressions were historically separate; the two
// label projections stay independent so they can diverge again without
// touching callers.
var unifiedStages = []domain.Stage{
	{
		Key:            domain.StageApplication,
		Label:          "Application",
		CandidateLabel: "Application",
		ManagerLabel:   "Request",
		Icon:           "M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z",
	},
	{
		Key:            domain.StageScreening,
		Label:          "Assessment",
		CandidateLabel: "Shortlist",
		ManagerLabel:   "Screening",
		Icon:           "M9 5H7a2 2 0 00-2 2v12a2 2 0 002 2h10a2 2 0 002-2V7a2 2 0 00-2-2h-2M9 5a2 2 0 002 2h2a2 2 0 002-2M9 5a2 2 0 012-2h2a2 2 0 012 2m-6 9l2 2 4-4",
	},
	{
		Key:            domain.StageInterview,
		Label:          "Interview",
		CandidateLabel: "Interview",
		ManagerLabel:   "Interview",
		Icon:           "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z",
	},
	{
		Key:            domain.StageOffer,
		Label:          "Offer",
		CandidateLabel: "Offer",
		ManagerLabel:   "Decision",
		Icon:           "M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z",
	},
	{
		Key:            domain.StageOnboarding,
		Label:          "Onboarding",
		CandidateLabel: "Onboard",
		ManagerLabel:   "Onboard",
		Icon:           "M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z",
	},
}

// candidateStatuses maps stage key to the candidate-viewpoint status set.
var candidateStatuses = map[string][]domain.StatusConfig{
	domain.StageApplication: {
		{Key: "submitted", Label: "Submitted", NextAction: "Validate application completeness", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "incomplete", Label: "Incomplete", NextAction: "Submit missing information", ActionType: domain.ActionCompleteProfile, ActionOwner: domain.OwnerCandidate},
		{Key: "validated", Label: "Application Validated", NextAction: "Initiate screening", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "withdrawn", Label: "Withdrawn", NextAction: "Close application", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
	},
	domain.StageScreening: {
		{Key: "under_review", Label: "Under Review", NextAction: "Complete screening", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "shortlisted", Label: "Shortlisted", NextAction: "Prepare interview", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "not_shortlisted", Label: "Not Shortlisted", NextAction: "Close candidate record", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
		{Key: "on_hold", Label: "On Hold", NextAction: "Await decision", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		// Assessment overlay statuses: sub-status flags, not stage drivers.
		{Key: "assessment_required", Label: "Assessment Required", NextAction: "Complete assessment", ActionType: domain.ActionNone, ActionOwner: domain.OwnerCandidate},
		{Key: "assessment_sent", Label: "Assessment Sent", NextAction: "Complete assessment", ActionType: domain.ActionNone, ActionOwner: domain.OwnerCandidate},
		{Key: "assessment_completed", Label: "Assessment Completed", NextAction: "Review results", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "assessment_failed", Label: "Assessment Failed", NextAction: "Review for rejection", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		// assessment_waived is internal only and never shown to candidates.
		{Key: "assessment_waived", Label: "Assessment Waived", NextAction: "Proceed to interview", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR, InternalOnly: true},
	},
	domain.StageInterview: {
		{Key: "pending", Label: "Interview Pending", NextAction: "Schedule interview", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "slots_available", Label: "Slots Available", NextAction: "Select interview slot", ActionType: domain.ActionSelectSlot, ActionOwner: domain.OwnerCandidate},
		{Key: "scheduled", Label: "Interview Scheduled", NextAction: "Confirm attendance", ActionType: domain.ActionConfirmInterview, ActionOwner: domain.OwnerCandidate},
		{Key: "confirmed", Label: "Interview Confirmed", NextAction: "Attend interview", ActionType: domain.ActionAttendInterview, ActionOwner: domain.OwnerCandidate},
		{Key: "completed", Label: "Interview Completed", NextAction: "Await feedback", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "cancelled", Label: "Interview Cancelled", NextAction: "Reschedule interview", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "no_show", Label: "Interview No-Show", NextAction: "Close or reschedule", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		// Assessment overlay statuses for late-stage technical assessments.
		{Key: "assessment_required", Label: "Assessment Required", NextAction: "Complete assessment", ActionType: domain.ActionNone, ActionOwner: domain.OwnerCandidate},
		{Key: "assessment_sent", Label: "Assessment Sent", NextAction: "Complete assessment", ActionType: domain.ActionNone, ActionOwner: domain.OwnerCandidate},
		{Key: "assessment_completed", Label: "Assessment Completed", NextAction: "Review results", ActionType: domain.ActionNone, ActionOwner: domain.OwnerManager},
	},
	domain.StageOffer: {
		{Key: "in_preparation", Label: "Offer In Preparation", NextAction: "Await offer", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "released", Label: "Offer Released", NextAction: "Review and respond to offer", ActionType: domain.ActionReviewOffer, ActionOwner: domain.OwnerCandidate},
		{Key: "accepted", Label: "Offer Accepted", NextAction: "Initiate onboarding", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "declined", Label: "Offer Declined", NextAction: "Close candidate", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
		{Key: "negotiating", Label: "Negotiating", NextAction: "Review revised terms", ActionType: domain.ActionNone, ActionOwner: domain.OwnerCandidate},
		{Key: "expired", Label: "Offer Expired", NextAction: "Close or re-offer", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "withdrawn", Label: "Offer Withdrawn", NextAction: "Close candidate", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
	},
	domain.StageOnboarding: {
		{Key: "initiated", Label: "Onboarding Initiated", NextAction: "Submit onboarding documents", ActionType: domain.ActionUploadOnboarding, ActionOwner: domain.OwnerCandidate},
		{Key: "documents_pending", Label: "Documents Pending", NextAction: "Upload required documents", ActionType: domain.ActionUploadOnboarding, ActionOwner: domain.OwnerCandidate},
		{Key: "documents_submitted", Label: "Documents Submitted", NextAction: "Verify documents", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "pre_joining", Label: "Pre-Joining In Progress", NextAction: "Complete pre-joining tasks", ActionType: domain.ActionCompleteOnboarding, ActionOwner: domain.OwnerCandidate},
		{Key: "joining_confirmed", Label: "Joining Confirmed", NextAction: "Prepare for Day 1", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "completed", Label: "Onboarding Completed", NextAction: "Convert to employee", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "no_show", Label: "No Show", NextAction: "Close candidate", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
	},
}

// managerStatuses maps stage key to the manager-viewpoint status set. No
// manager status is internal-only: staff always see true status.
var managerStatuses = map[string][]domain.StatusConfig{
	domain.StageApplication: {
		{Key: "raised", Label: "Request Raised", NextAction: "Review & approve request", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "approved", Label: "Request Approved", NextAction: "Open application intake", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "on_hold", Label: "Request On Hold", NextAction: "Monitor / await decision", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "cancelled", Label: "Request Cancelled", NextAction: "Close request", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
	},
	domain.StageScreening: {
		{Key: "in_progress", Label: "Screening In Progress", NextAction: "Review candidate profile", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "shortlisted", Label: "Shortlisted", NextAction: "Confirm interview intent", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "rejected", Label: "Rejected at Screening", NextAction: "Close candidate", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "on_hold", Label: "Screening On Hold", NextAction: "Reassess later", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
	},
	domain.StageInterview: {
		{Key: "pending", Label: "Interview Pending", NextAction: "Provide availability", ActionType: domain.ActionAddSlots, ActionOwner: domain.OwnerManager},
		{Key: "slots_provided", Label: "Slots Provided", NextAction: "Await candidate selection", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
		{Key: "scheduled", Label: "Interview Scheduled", NextAction: "Conduct interview", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "completed", Label: "Interview Completed", NextAction: "Submit feedback", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "feedback_pending", Label: "Feedback Pending", NextAction: "Submit evaluation", ActionType: domain.ActionSubmitEvaluation, ActionOwner: domain.OwnerManager},
		{Key: "additional_required", Label: "Additional Interview Required", NextAction: "Schedule next round", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "cancelled", Label: "Interview Cancelled", NextAction: "Reschedule or close", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
	},
	domain.StageOffer: {
		{Key: "pending", Label: "Decision Pending", NextAction: "Make hire/no-hire decision", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "approved", Label: "Approved for Offer", NextAction: "Prepare offer letter", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "not_approved", Label: "Not Approved", NextAction: "Close candidate", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "released", Label: "Offer Released", NextAction: "Await candidate response", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
		{Key: "accepted", Label: "Offer Accepted", NextAction: "Initiate onboarding", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "declined", Label: "Offer Declined by Candidate", NextAction: "Review pipeline", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
	},
	domain.StageOnboarding: {
		{Key: "initiated", Label: "Onboarding Initiated", NextAction: "Monitor progress", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "documentation", Label: "Documentation In Progress", NextAction: "Await completion", ActionType: domain.ActionNone, ActionOwner: domain.OwnerSystem},
		{Key: "joining_confirmed", Label: "Joining Confirmed", NextAction: "Prepare workspace", ActionType: domain.ActionManagerGeneric, ActionOwner: domain.OwnerManager},
		{Key: "completed", Label: "Onboarding Completed", NextAction: "Close recruitment pass", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
		{Key: "failed", Label: "Onboarding Failed", NextAction: "Review and close", ActionType: domain.ActionNone, ActionOwner: domain.OwnerHR},
	},
}

// Stages returns the ordered stage descriptors for a viewpoint. Both
// viewpoints currently share the unified set.
func Stages(view domain.Viewpoint) []domain.Stage {
	out := make([]domain.Stage, len(unifiedStages))
	copy(out, unifiedStages)
	return out
}

// StageByKey returns the stage descriptor for a raw stage string, or nil if
// the stage is unknown after normalization.
func StageByKey(stage string) *domain.Stage {
	key := NormalizeStageKey(stage)
	for i := range unifiedStages {
		if unifiedStages[i].Key == key {
			s := unifiedStages[i]
			return &s
		}
	}
	return nil
}

// StageIndex returns the timeline position of a stage, or 0 when unknown.
func StageIndex(stage string) int {
	key := NormalizeStageKey(stage)
	for i := range unifiedStages {
		if unifiedStages[i].Key == key {
			return i
		}
	}
	return 0
}

// StatusesFor returns the status set for (stage, viewpoint), or nil when the
// stage is unknown. The returned slice is a copy.
func StatusesFor(stage string, view domain.Viewpoint) []domain.StatusConfig {
	registry := candidateStatuses
	if view == domain.ViewpointManager {
		registry = managerStatuses
	}
	configs, ok := registry[NormalizeStageKey(stage)]
	if !ok {
		return nil
	}
	out := make([]domain.StatusConfig, len(configs))
	copy(out, configs)
	return out
}

// statusConfig looks up a single status within (stage, viewpoint), both keys
// already raw; returns nil on any miss.
func statusConfig(stage, status string, view domain.Viewpoint) *domain.StatusConfig {
	registry := candidateStatuses
	if view == domain.ViewpointManager {
		registry = managerStatuses
	}
	configs, ok := registry[NormalizeStageKey(stage)]
	if !ok {
		return nil
	}
	key := NormalizeStatusKey(status)
	for i := range configs {
		if configs[i].Key == key {
			c := configs[i]
			return &c
		}
	}
	return nil
}
