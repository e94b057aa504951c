package dto

import (
	"time"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

// CreateInterviewRequest payload.
type CreateInterviewRequest struct {
	Type        domain.InterviewType `json:"type"`
	Location    string               `json:"location"`
	MeetingLink string               `json:"meeting_link"`
}

// SlotRequest is one entry of a full slot-list submission. An entry with an
// id keeps the persisted slot; times are only read for new entries.
type SlotRequest struct {
	ID      string     `json:"id,omitempty"`
	StartAt *time.Time `json:"start_at,omitempty"`
	EndAt   *time.Time `json:"end_at,omitempty"`
}

// ProvideSlotsRequest payload. The list is the full desired state, not a diff.
type ProvideSlotsRequest struct {
	Slots []SlotRequest `json:"slots"`
}

// ConfirmSlotRequest payload.
type ConfirmSlotRequest struct {
	InterviewID string `json:"interview_id"`
	SlotID      string `json:"slot_id"`
}

// InterviewResponse describes one interview round.
type InterviewResponse struct {
	ID          string                 `json:"id"`
	PassID      string                 `json:"pass_id"`
	Round       int                    `json:"round"`
	Type        domain.InterviewType   `json:"type"`
	TypeLabel   string                 `json:"type_label"`
	Status      domain.InterviewStatus `json:"status"`
	Location    string                 `json:"location,omitempty"`
	MeetingLink string                 `json:"meeting_link,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
