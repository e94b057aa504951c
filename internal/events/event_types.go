package events

import (
	"time"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPassCreated      EventType = "pass_created"
	EventPassStageChanged EventType = "pass_stage_changed"
	EventSlotsProvided    EventType = "slots_provided"
	EventSlotBooked       EventType = "slot_booked"
	EventSlotReleased     EventType = "slot_released"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type    domain.SubjectType `json:"type"`
	StaffID *string            `json:"staff_id,omitempty"`
	PassID  *string            `json:"pass_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	PassID    string      `json:"pass_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PassCreatedPayload payload.
type PassCreatedPayload struct {
	PassNumber    string `json:"pass_number"`
	CandidateName string `json:"candidate_name"`
	PositionTitle string `json:"position_title"`
}

// PassStageChangedPayload payload.
type PassStageChangedPayload struct {
	OldStage  string `json:"old_stage"`
	NewStage  string `json:"new_stage"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// SlotsProvidedPayload payload.
type SlotsProvidedPayload struct {
	InterviewID string `json:"interview_id"`
	SlotCount   int    `json:"slot_count"`
}

// SlotBookedPayload payload.
type SlotBookedPayload struct {
	InterviewID string    `json:"interview_id"`
	SlotID      string    `json:"slot_id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
}

// SlotReleasedPayload payload.
type SlotReleasedPayload struct {
	InterviewID string `json:"interview_id"`
	SlotID      string `json:"slot_id"`
}
