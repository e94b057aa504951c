package scheduler_test

import (
	"testing"
	"time"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/scheduler"
)

func bookedBy(id string, start, end time.Time, by string) domain.InterviewSlot {
	return domain.InterviewSlot{ID: id, Start: start, End: end, IsBooked: true, BookedBy: &by}
}

func TestVisibleSlots_OwnBookingVisible(t *testing.T) {
	slots := []domain.InterviewSlot{
		{ID: "free", Start: at(9, 0), End: at(10, 0)},
		bookedBy("mine", at(11, 0), at(12, 0), "C123"),
		bookedBy("theirs", at(13, 0), at(14, 0), "C456"),
	}

	visible := scheduler.VisibleSlots(slots, "C123")
	if len(visible) != 2 {
		t.Fatalf("C123 sees %d slots, want 2", len(visible))
	}
	ids := map[string]bool{}
	for _, s := range visible {
		ids[s.ID] = true
	}
	if !ids["free"] || !ids["mine"] {
		t.Errorf("C123 should see free + own booking, got %v", ids)
	}
	if ids["theirs"] {
		t.Error("slot booked by another candidate must be omitted entirely")
	}

	other := scheduler.VisibleSlots(slots, "C789")
	if len(other) != 1 || other[0].ID != "free" {
		t.Errorf("C789 should only see the free slot, got %v", other)
	}
}

func TestVisibleSlots_EmptyCandidateIDNeverMatchesBooking(t *testing.T) {
	by := ""
	slots := []domain.InterviewSlot{
		{ID: "anon", Start: at(9, 0), End: at(10, 0), IsBooked: true, BookedBy: &by},
	}
	if visible := scheduler.VisibleSlots(slots, ""); len(visible) != 0 {
		t.Errorf("empty candidate id must not claim bookings, got %v", visible)
	}
}

func TestGroupByDate(t *testing.T) {
	day := func(d, hour int) time.Time {
		return time.Date(2026, time.September, d, hour, 0, 0, 0, time.UTC)
	}
	slots := []domain.InterviewSlot{
		{ID: "b2", Start: day(15, 14), End: day(15, 15)},
		{ID: "a1", Start: day(14, 9), End: day(14, 10)},
		{ID: "b1", Start: day(15, 9), End: day(15, 10)},
		{ID: "a2", Start: day(14, 11), End: day(14, 12)},
	}

	groups := scheduler.GroupByDate(slots)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Date != "2026-09-14" || groups[1].Date != "2026-09-15" {
		t.Errorf("groups not chronological: %s, %s", groups[0].Date, groups[1].Date)
	}
	if groups[0].Slots[0].ID != "a1" || groups[0].Slots[1].ID != "a2" {
		t.Error("slots within first group not chronological")
	}
	if groups[1].Slots[0].ID != "b1" || groups[1].Slots[1].ID != "b2" {
		t.Error("slots within second group not chronological")
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if groups := scheduler.GroupByDate(nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
