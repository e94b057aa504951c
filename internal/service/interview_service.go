package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/events"
	"github.com/spec-kit/recruitment-service/internal/observability"
	"github.com/spec-kit/recruitment-service/internal/repository"
	"github.com/spec-kit/recruitment-service/internal/scheduler"
	"github.com/spec-kit/recruitment-service/internal/workflow"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// InterviewService coordinates interview rounds and slot scheduling. Slot
// authoring goes through the scheduler planner; the booking claim itself is
// delegated to the repository's compare-and-set so two candidates can never
// hold the same slot.
type InterviewService struct {
	interviews repository.InterviewRepository
	passes     repository.PassRepository
	metrics    *observability.Metrics
	dispatcher events.Dispatcher
}

// InterviewDependencies bundles collaborators for the interview service.
type InterviewDependencies struct {
	InterviewRepo repository.InterviewRepository
	PassRepo      repository.PassRepository
	Metrics       *observability.Metrics
	Dispatcher    events.Dispatcher
}

// SlotInput is one entry of a full slot-list submission. Entries carrying an
// ID keep the persisted slot; entries without one are new additions.
type SlotInput struct {
	ID    string
	Start time.Time
	End   time.Time
}

// CandidateSchedule is the candidate-facing slot selection view.
type CandidateSchedule struct {
	InterviewID string                 `json:"interview_id"`
	TypeLabel   string                 `json:"type_label"`
	Status      domain.InterviewStatus `json:"status"`
	Location    string                 `json:"location,omitempty"`
	MeetingLink string                 `json:"meeting_link,omitempty"`
	Days        []scheduler.SlotGroup  `json:"days"`
}

// NewInterviewService constructs the service.
func NewInterviewService(deps InterviewDependencies) *InterviewService {
	return &InterviewService{
		interviews: deps.InterviewRepo,
		passes:     deps.PassRepo,
		metrics:    deps.Metrics,
		dispatcher: deps.Dispatcher,
	}
}

// CreateInterview opens the next interview round for a pass.
func (s *InterviewService) CreateInterview(ctx context.Context, staff *domain.StaffMember, passID string, interviewType domain.InterviewType, location, meetingLink string) (*domain.Interview, error) {
	if _, err := s.passes.GetByID(ctx, passID); err != nil {
		return nil, err
	}

	round := 1
	if latest, err := s.interviews.GetLatestForPass(ctx, passID); err == nil {
		round = latest.Round + 1
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	interview := &domain.Interview{
		PassID:      passID,
		Round:       round,
		Type:        interviewType,
		Status:      domain.InterviewPending,
		Location:    location,
		MeetingLink: meetingLink,
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// ProvideSlots reconciles the persisted slot list against a full submission
// from a manager: persisted slots absent from the submission are removed,
// entries without an id are added, and the result is persisted as one atomic
// batch. Booked slots can only be dropped by HR. The returned list is the
// authoritative post-submit state.
func (s *InterviewService) ProvideSlots(ctx context.Context, staff *domain.StaffMember, interviewID string, inputs []SlotInput) ([]domain.InterviewSlot, error) {
	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	existing, err := s.interviews.ListSlots(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	planner := scheduler.NewPlanner(existing, staff.CanEditBookings())

	keep := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		if input.ID != "" {
			keep[input.ID] = struct{}{}
		}
	}
	for _, slot := range existing {
		if _, kept := keep[slot.ID]; kept {
			continue
		}
		if err := planner.Remove(slot.ID); err != nil {
			return nil, err
		}
	}
	for _, input := range inputs {
		if input.ID != "" {
			continue
		}
		if _, err := planner.Add(input.Start, input.End); err != nil {
			return nil, err
		}
	}

	batch, err := planner.Submit()
	if err != nil {
		return nil, err
	}
	if err := s.interviews.ReplaceSlots(ctx, interviewID, batch); err != nil {
		return nil, err
	}

	if interview.Status == domain.InterviewPending {
		if err := s.interviews.UpdateStatus(ctx, interviewID, domain.InterviewSlotsProvided); err != nil {
			return nil, err
		}
		if err := s.passes.UpdateStatus(ctx, interview.PassID, "slots_available"); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, events.Event{
		Type:   events.EventSlotsProvided,
		PassID: interview.PassID,
		Actor:  staffActor(staff.ID),
		Payload: events.SlotsProvidedPayload{
			InterviewID: interviewID,
			SlotCount:   len(batch),
		},
	})

	server, err := s.interviews.ListSlots(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	planner.Replace(server)
	return planner.Slots(), nil
}

// ScheduleForCandidate returns the selectable slots for the candidate's
// current interview round, grouped by day. Slots booked by someone else are
// omitted entirely.
func (s *InterviewService) ScheduleForCandidate(ctx context.Context, pass *domain.RecruitmentPass) (*CandidateSchedule, error) {
	interview, err := s.interviews.GetLatestForPass(ctx, pass.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("interview", nil)
		}
		return nil, err
	}

	slots, err := s.interviews.ListSlots(ctx, interview.ID)
	if err != nil {
		return nil, err
	}

	visible := scheduler.VisibleSlots(slots, pass.ID)
	return &CandidateSchedule{
		InterviewID: interview.ID,
		TypeLabel:   workflow.InterviewTypeLabel(interview.Type),
		Status:      interview.Status,
		Location:    interview.Location,
		MeetingLink: interview.MeetingLink,
		Days:        scheduler.GroupByDate(visible),
	}, nil
}

// ConfirmSlot books a slot for the candidate. The claim is a compare-and-set:
// at most one candidate wins; the loser receives a conflict and the refreshed
// authoritative slot list so the UI can re-render remaining availability.
func (s *InterviewService) ConfirmSlot(ctx context.Context, pass *domain.RecruitmentPass, interviewID, slotID string) (*CandidateSchedule, error) {
	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("interview", nil)
		}
		return nil, err
	}
	if interview.PassID != pass.ID {
		return nil, apperrors.NewNotFound("interview", nil)
	}

	err = s.interviews.BookSlot(ctx, interviewID, slotID, pass.ID, pass.CandidateName)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			s.metrics.RecordBookingConflict()
		}
		return nil, err
	}

	if err := s.interviews.UpdateStatus(ctx, interviewID, domain.InterviewScheduled); err != nil {
		return nil, err
	}
	if err := s.passes.UpdateStatus(ctx, pass.ID, "scheduled"); err != nil {
		return nil, err
	}

	booked, _ := s.bookedSlot(ctx, interviewID, slotID)
	payload := events.SlotBookedPayload{InterviewID: interviewID, SlotID: slotID}
	if booked != nil {
		payload.StartAt = booked.Start
		payload.EndAt = booked.End
	}
	s.publish(ctx, events.Event{
		Type:    events.EventSlotBooked,
		PassID:  pass.ID,
		Actor:   candidateActor(pass.ID),
		Payload: payload,
	})

	return s.ScheduleForCandidate(ctx, pass)
}

// ReleaseSlot frees a booked slot. Only HR may override a booking; the round
// reverts to slots_provided so the candidate can pick again.
func (s *InterviewService) ReleaseSlot(ctx context.Context, staff *domain.StaffMember, interviewID, slotID string) error {
	if !staff.CanEditBookings() {
		return apperrors.NewForbidden("Only HR can remove booked slots")
	}

	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return err
	}
	if err := s.interviews.UnbookSlot(ctx, interviewID, slotID); err != nil {
		return err
	}
	if err := s.interviews.UpdateStatus(ctx, interviewID, domain.InterviewSlotsProvided); err != nil {
		return err
	}
	if err := s.passes.UpdateStatus(ctx, interview.PassID, "slots_available"); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventSlotReleased,
		PassID: interview.PassID,
		Actor:  staffActor(staff.ID),
		Payload: events.SlotReleasedPayload{
			InterviewID: interviewID,
			SlotID:      slotID,
		},
	})
	return nil
}

// SlotsForStaff returns the raw slot list with booking details.
func (s *InterviewService) SlotsForStaff(ctx context.Context, interviewID string) ([]domain.InterviewSlot, error) {
	if _, err := s.interviews.GetByID(ctx, interviewID); err != nil {
		return nil, err
	}
	return s.interviews.ListSlots(ctx, interviewID)
}

// LatestForPass fetches the current interview round for a pass.
func (s *InterviewService) LatestForPass(ctx context.Context, passID string) (*domain.Interview, error) {
	interview, err := s.interviews.GetLatestForPass(ctx, passID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("interview", nil)
		}
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) bookedSlot(ctx context.Context, interviewID, slotID string) (*domain.InterviewSlot, error) {
	slots, err := s.interviews.ListSlots(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i], nil
		}
	}
	return nil, nil
}

func (s *InterviewService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
