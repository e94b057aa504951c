package domain

import (
	"strings"
	"time"
)

// InterviewType enumerates the interview formats offered per round.
type InterviewType string

const (
	InterviewTypePhoneScreen InterviewType = "phone_screen"
	InterviewTypeTechnical   InterviewType = "technical"
	InterviewTypeHR          InterviewType = "hr"
	InterviewTypeManager     InterviewType = "manager"
	InterviewTypePanel       InterviewType = "panel"
	InterviewTypeFinal       InterviewType = "final"
)

// InterviewStatus tracks the scheduling lifecycle of a single round.
type InterviewStatus string

const (
	InterviewPending         InterviewStatus = "pending"
	InterviewSlotsProvided   InterviewStatus = "slots_provided"
	InterviewScheduled       InterviewStatus = "scheduled"
	InterviewCompleted       InterviewStatus = "completed"
	InterviewFeedbackPending InterviewStatus = "feedback_pending"
	InterviewCancelled       InterviewStatus = "cancelled"
)

// Interview groups the slots offered for one (round, type) of a pass.
type Interview struct {
	ID          string
	PassID      string
	Round       int
	Type        InterviewType
	Status      InterviewStatus
	Location    string
	MeetingLink string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InterviewSlot is a bookable time interval provided by a manager and claimed
// by at most one candidate. A booked slot is immutable to non-HR actors.
type InterviewSlot struct {
	ID            string     `json:"id"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	IsBooked      bool       `json:"is_booked"`
	BookedBy      *string    `json:"booked_by,omitempty"`
	CandidateName *string    `json:"candidate_name,omitempty"`
	BookedAt      *time.Time `json:"booked_at,omitempty"`
}

// Duration returns the slot length.
func (s InterviewSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// BookedByCandidate reports whether the slot is held by the given candidate.
// Identifiers are compared as trimmed strings; an empty id never matches.
func (s InterviewSlot) BookedByCandidate(candidateID string) bool {
	candidateID = strings.TrimSpace(candidateID)
	if !s.IsBooked || s.BookedBy == nil || candidateID == "" {
		return false
	}
	return strings.TrimSpace(*s.BookedBy) == candidateID
}
