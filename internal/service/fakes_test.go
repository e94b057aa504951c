package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/repository"
)

type fakePassRepo struct {
	passes map[string]*domain.RecruitmentPass
	seq    int
}

func newFakePassRepo() *fakePassRepo {
	return &fakePassRepo{passes: make(map[string]*domain.RecruitmentPass)}
}

func (f *fakePassRepo) Create(_ context.Context, pass *domain.RecruitmentPass) error {
	f.seq++
	pass.ID = fmt.Sprintf("pass-%d", f.seq)
	pass.CreatedAt = time.Now()
	pass.UpdatedAt = pass.CreatedAt
	clone := *pass
	f.passes[pass.ID] = &clone
	return nil
}

func (f *fakePassRepo) GetByID(_ context.Context, id string) (*domain.RecruitmentPass, error) {
	pass, ok := f.passes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *pass
	return &clone, nil
}

func (f *fakePassRepo) GetByNumber(_ context.Context, passNumber string) (*domain.RecruitmentPass, error) {
	for _, pass := range f.passes {
		if pass.PassNumber == passNumber {
			clone := *pass
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePassRepo) GetByTokenHash(_ context.Context, tokenHash string) (*domain.RecruitmentPass, error) {
	for _, pass := range f.passes {
		if pass.TokenHash == tokenHash {
			clone := *pass
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePassRepo) ListWithFilter(_ context.Context, filter repository.PassFilter) ([]domain.RecruitmentPass, error) {
	var out []domain.RecruitmentPass
	for _, pass := range f.passes {
		if filter.Stage != nil && pass.Stage != *filter.Stage {
			continue
		}
		if filter.Status != nil && pass.Status != *filter.Status {
			continue
		}
		out = append(out, *pass)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePassRepo) UpdateStage(_ context.Context, id, stage, status string) error {
	pass, ok := f.passes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	pass.Stage = stage
	pass.Status = status
	pass.UpdatedAt = time.Now()
	return nil
}

func (f *fakePassRepo) UpdateStatus(_ context.Context, id, status string) error {
	pass, ok := f.passes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	pass.Status = status
	pass.UpdatedAt = time.Now()
	return nil
}

func (f *fakePassRepo) CountByStage(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, pass := range f.passes {
		counts[pass.Stage]++
	}
	return counts, nil
}

type fakeInterviewRepo struct {
	interviews map[string]*domain.Interview
	slots      map[string][]domain.InterviewSlot
	seq        int
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{
		interviews: make(map[string]*domain.Interview),
		slots:      make(map[string][]domain.InterviewSlot),
	}
}

func (f *fakeInterviewRepo) Create(_ context.Context, interview *domain.Interview) error {
	f.seq++
	interview.ID = fmt.Sprintf("iv-%d", f.seq)
	interview.CreatedAt = time.Now()
	interview.UpdatedAt = interview.CreatedAt
	clone := *interview
	f.interviews[interview.ID] = &clone
	return nil
}

func (f *fakeInterviewRepo) GetByID(_ context.Context, id string) (*domain.Interview, error) {
	interview, ok := f.interviews[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *interview
	return &clone, nil
}

func (f *fakeInterviewRepo) GetLatestForPass(_ context.Context, passID string) (*domain.Interview, error) {
	var latest *domain.Interview
	for _, interview := range f.interviews {
		if interview.PassID != passID {
			continue
		}
		if latest == nil || interview.Round > latest.Round {
			latest = interview
		}
	}
	if latest == nil {
		return nil, pgx.ErrNoRows
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeInterviewRepo) UpdateStatus(_ context.Context, id string, status domain.InterviewStatus) error {
	interview, ok := f.interviews[id]
	if !ok {
		return pgx.ErrNoRows
	}
	interview.Status = status
	return nil
}

func (f *fakeInterviewRepo) UpdateLogistics(_ context.Context, id, location, meetingLink string) error {
	interview, ok := f.interviews[id]
	if !ok {
		return pgx.ErrNoRows
	}
	interview.Location = location
	interview.MeetingLink = meetingLink
	return nil
}

func (f *fakeInterviewRepo) ListSlots(_ context.Context, interviewID string) ([]domain.InterviewSlot, error) {
	slots := f.slots[interviewID]
	out := make([]domain.InterviewSlot, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (f *fakeInterviewRepo) ReplaceSlots(_ context.Context, interviewID string, slots []domain.InterviewSlot) error {
	replacement := make([]domain.InterviewSlot, len(slots))
	copy(replacement, slots)
	f.slots[interviewID] = replacement
	return nil
}

func (f *fakeInterviewRepo) BookSlot(_ context.Context, interviewID, slotID, candidateID, candidateName string) error {
	slots := f.slots[interviewID]
	for i := range slots {
		if slots[i].ID != slotID {
			continue
		}
		if slots[i].IsBooked {
			return repository.ErrSlotTaken
		}
		now := time.Now()
		slots[i].IsBooked = true
		slots[i].BookedBy = &candidateID
		slots[i].CandidateName = &candidateName
		slots[i].BookedAt = &now
		return nil
	}
	return pgx.ErrNoRows
}

func (f *fakeInterviewRepo) UnbookSlot(_ context.Context, interviewID, slotID string) error {
	slots := f.slots[interviewID]
	for i := range slots {
		if slots[i].ID != slotID {
			continue
		}
		slots[i].IsBooked = false
		slots[i].BookedBy = nil
		slots[i].CandidateName = nil
		slots[i].BookedAt = nil
		return nil
	}
	return pgx.ErrNoRows
}

func (f *fakeInterviewRepo) CountPendingEvaluations(_ context.Context, passID string) (int, error) {
	count := 0
	for _, interview := range f.interviews {
		if interview.PassID == passID && interview.Status == domain.InterviewFeedbackPending {
			count++
		}
	}
	return count, nil
}
