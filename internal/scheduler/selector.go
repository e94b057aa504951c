package scheduler

import (
	"sort"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

// SlotGroup is one calendar day of selectable slots, ordered by start time.
type SlotGroup struct {
	Date  string                 `json:"date"`
	Slots []domain.InterviewSlot `json:"slots"`
}

// VisibleSlots returns the slots a candidate may see: every unbooked slot
// plus any slot booked by that candidate, so they can re-view their own
// confirmed booking. Slots taken by someone else are omitted entirely rather
// than shown as unavailable.
func VisibleSlots(slots []domain.InterviewSlot, candidateID string) []domain.InterviewSlot {
	visible := make([]domain.InterviewSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBooked || slot.BookedByCandidate(candidateID) {
			visible = append(visible, slot)
		}
	}
	return visible
}

// GroupByDate buckets slots by the calendar date of their start time. Groups
// are sorted chronologically and so are the slots within each group.
func GroupByDate(slots []domain.InterviewSlot) []SlotGroup {
	byDate := make(map[string][]domain.InterviewSlot)
	for _, slot := range slots {
		key := slot.Start.Format("2006-01-02")
		byDate[key] = append(byDate[key], slot)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]SlotGroup, 0, len(dates))
	for _, date := range dates {
		daySlots := byDate[date]
		sort.Slice(daySlots, func(i, j int) bool {
			return daySlots[i].Start.Before(daySlots[j].Start)
		})
		groups = append(groups, SlotGroup{Date: date, Slots: daySlots})
	}
	return groups
}
