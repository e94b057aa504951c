// Package scheduler manages interview time slots: the manager-side working
// copy used while authoring availability, and the candidate-side projection
// used for selection. The authoritative booking claim lives in the
// persistence layer; this package never assumes a booking succeeded before
// the collaborator confirms it.
package scheduler

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/recruitment-service/internal/domain"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// User-facing rejection messages. These surface verbatim in API responses.
const (
	msgMissingSlotTimes = "Please select date and time for the slot"
	msgEndBeforeStart   = "End time must be after start time"
	msgSlotOverlap      = "This time slot overlaps with an existing slot"
	msgBookedSlotLocked = "Only HR can remove booked slots"
	msgNoSlots          = "Please add at least one time slot"
)

// Planner holds the mutable working copy of one interview's slot list during
// an authoring session. The copy becomes authoritative only after Submit's
// result is persisted by the caller as one atomic batch; after that the
// caller must replace local state with the server's returned state.
type Planner struct {
	slots      []domain.InterviewSlot
	editBooked bool
}

// NewPlanner seeds a planner with the slots already persisted for the
// interview. editBooked grants HR authority over booked slots.
func NewPlanner(existing []domain.InterviewSlot, editBooked bool) *Planner {
	p := &Planner{
		slots:      make([]domain.InterviewSlot, len(existing)),
		editBooked: editBooked,
	}
	copy(p.slots, existing)
	p.sortSlots()
	return p
}

// Add validates and inserts a new unbooked slot, keeping the working list
// sorted ascending by start time. A rejected add leaves the list unchanged.
func (p *Planner) Add(start, end time.Time) (domain.InterviewSlot, error) {
	if start.IsZero() || end.IsZero() {
		return domain.InterviewSlot{}, apperrors.NewValidationError(msgMissingSlotTimes, nil)
	}
	if !end.After(start) {
		return domain.InterviewSlot{}, apperrors.NewValidationError(msgEndBeforeStart, nil)
	}
	for _, existing := range p.slots {
		// Half-open interval overlap: [start,end) intersects [s,e).
		if start.Before(existing.End) && end.After(existing.Start) {
			return domain.InterviewSlot{}, apperrors.NewValidationError(msgSlotOverlap, nil)
		}
	}

	slot := domain.InterviewSlot{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
	}
	p.slots = append(p.slots, slot)
	p.sortSlots()
	return slot, nil
}

// Remove drops a slot from the working copy. Unbooked slots may always be
// removed; booked slots require HR edit authority. Removing an id that is
// not present is a no-op.
func (p *Planner) Remove(slotID string) error {
	for i, slot := range p.slots {
		if slot.ID != slotID {
			continue
		}
		if slot.IsBooked && !p.editBooked {
			return apperrors.NewForbidden(msgBookedSlotLocked)
		}
		p.slots = append(p.slots[:i], p.slots[i+1:]...)
		return nil
	}
	return nil
}

// Slots returns a copy of the current working list.
func (p *Planner) Slots() []domain.InterviewSlot {
	out := make([]domain.InterviewSlot, len(p.slots))
	copy(out, p.slots)
	return out
}

// Submit returns the full slot list for atomic persistence. The batch is
// intentionally a full replacement rather than incremental diffs, which
// avoids partial-update races between overlapping edits by different
// managers. An empty working set is rejected.
func (p *Planner) Submit() ([]domain.InterviewSlot, error) {
	if len(p.slots) == 0 {
		return nil, apperrors.NewValidationError(msgNoSlots, nil)
	}
	return p.Slots(), nil
}

// Replace discards the working copy in favor of server truth, typically after
// a successful batch submit or booking confirmation. Partial merges are never
// performed.
func (p *Planner) Replace(server []domain.InterviewSlot) {
	p.slots = make([]domain.InterviewSlot, len(server))
	copy(p.slots, server)
	p.sortSlots()
}

func (p *Planner) sortSlots() {
	sort.Slice(p.slots, func(i, j int) bool {
		return p.slots[i].Start.Before(p.slots[j].Start)
	})
}
