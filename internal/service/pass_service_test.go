package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/events"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

func newPassService(passes *fakePassRepo, interviews *fakeInterviewRepo) *PassService {
	return NewPassService(PassDependencies{
		PassRepo:      passes,
		InterviewRepo: interviews,
		Dispatcher:    events.NewInMemoryDispatcher(zap.NewNop()),
	})
}

func hrMember() *domain.StaffMember {
	return &domain.StaffMember{ID: "staff-hr", Role: domain.StaffRoleHR, IsActive: true}
}

func TestCreatePassStartsAtSubmitted(t *testing.T) {
	passes := newFakePassRepo()
	svc := newPassService(passes, newFakeInterviewRepo())

	pass, token, err := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName:  "Priya Nair",
		CandidateEmail: "priya@example.com",
		PositionTitle:  "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("CreatePass: %v", err)
	}
	if pass.Stage != domain.StageApplication || pass.Status != "submitted" {
		t.Fatalf("got (%s, %s), want (application, submitted)", pass.Stage, pass.Status)
	}
	if token == "" {
		t.Fatal("expected a plaintext pass token")
	}
	if pass.TokenHash == "" || pass.TokenHash == token {
		t.Fatal("stored hash must be set and differ from the plaintext token")
	}
}

func TestCreatePassRejectsBlankFields(t *testing.T) {
	svc := newPassService(newFakePassRepo(), newFakeInterviewRepo())

	_, _, err := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName: "  ",
		PositionTitle: "Backend Engineer",
	})
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMoveStageRejectsUnknownTargets(t *testing.T) {
	passes := newFakePassRepo()
	svc := newPassService(passes, newFakeInterviewRepo())
	pass, _, _ := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName:  "Priya Nair",
		CandidateEmail: "priya@example.com",
		PositionTitle:  "Backend Engineer",
	})

	cases := []struct {
		name   string
		stage  string
		status string
	}{
		{name: "unknown stage", stage: "limbo", status: "pending"},
		{name: "unknown status", stage: "interview", status: "daydreaming"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.MoveStage(context.Background(), hrMember(), pass.ID, tc.stage, tc.status); err == nil {
				t.Fatalf("expected rejection for (%s, %s)", tc.stage, tc.status)
			}
		})
	}
}

func TestMoveStageAcceptsLegacyDecisionAlias(t *testing.T) {
	passes := newFakePassRepo()
	svc := newPassService(passes, newFakeInterviewRepo())
	pass, _, _ := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName:  "Priya Nair",
		CandidateEmail: "priya@example.com",
		PositionTitle:  "Backend Engineer",
	})

	moved, err := svc.MoveStage(context.Background(), hrMember(), pass.ID, "Decision", "released")
	if err != nil {
		t.Fatalf("MoveStage: %v", err)
	}
	if moved.Stage != domain.StageOffer {
		t.Fatalf("stage = %q, want %q", moved.Stage, domain.StageOffer)
	}
	if moved.Status != "released" {
		t.Fatalf("status = %q, want released", moved.Status)
	}
}

func TestCandidateViewMasksInternalOnlyStatus(t *testing.T) {
	passes := newFakePassRepo()
	svc := newPassService(passes, newFakeInterviewRepo())
	pass, _, _ := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName:  "Priya Nair",
		CandidateEmail: "priya@example.com",
		PositionTitle:  "Backend Engineer",
	})
	if _, err := svc.MoveStage(context.Background(), hrMember(), pass.ID, "screening", "assessment_waived"); err != nil {
		t.Fatalf("MoveStage: %v", err)
	}

	stored, _ := passes.GetByID(context.Background(), pass.ID)
	view, err := svc.CandidateViewFor(context.Background(), stored)
	if err != nil {
		t.Fatalf("CandidateViewFor: %v", err)
	}
	if view.StatusLabel != "In Progress" {
		t.Fatalf("candidate label = %q, want In Progress", view.StatusLabel)
	}

	managerView, err := svc.ManagerViewFor(context.Background(), pass.ID)
	if err != nil {
		t.Fatalf("ManagerViewFor: %v", err)
	}
	if !managerView.InternalOnly {
		t.Fatal("manager view should flag internal-only status")
	}
}

func TestManagerViewPluralizesPendingEvaluations(t *testing.T) {
	passes := newFakePassRepo()
	interviews := newFakeInterviewRepo()
	svc := newPassService(passes, interviews)
	pass, _, _ := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName:  "Priya Nair",
		CandidateEmail: "priya@example.com",
		PositionTitle:  "Backend Engineer",
	})
	if _, err := svc.MoveStage(context.Background(), hrMember(), pass.ID, "interview", "feedback_pending"); err != nil {
		t.Fatalf("MoveStage: %v", err)
	}
	for i := 0; i < 2; i++ {
		iv := &domain.Interview{PassID: pass.ID, Round: i + 1, Type: domain.InterviewTypeTechnical, Status: domain.InterviewFeedbackPending}
		if err := interviews.Create(context.Background(), iv); err != nil {
			t.Fatalf("seed interview: %v", err)
		}
	}

	view, err := svc.ManagerViewFor(context.Background(), pass.ID)
	if err != nil {
		t.Fatalf("ManagerViewFor: %v", err)
	}
	if view.PendingEvaluations != 2 {
		t.Fatalf("pending evaluations = %d, want 2", view.PendingEvaluations)
	}
	if view.Action == nil || view.Action.Label != "Submit Evaluations" {
		t.Fatalf("action = %+v, want Submit Evaluations", view.Action)
	}
}

func TestPipelineCountsZeroFillsEveryStage(t *testing.T) {
	passes := newFakePassRepo()
	svc := newPassService(passes, newFakeInterviewRepo())
	if _, _, err := svc.CreatePass(context.Background(), hrMember(), PassCreateInput{
		CandidateName:  "Priya Nair",
		CandidateEmail: "priya@example.com",
		PositionTitle:  "Backend Engineer",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}

	counts, err := svc.PipelineCounts(context.Background())
	if err != nil {
		t.Fatalf("PipelineCounts: %v", err)
	}
	if len(counts) != 5 {
		t.Fatalf("got %d stages, want 5", len(counts))
	}
	if counts[domain.StageApplication] != 1 {
		t.Fatalf("application count = %d, want 1", counts[domain.StageApplication])
	}
	if counts[domain.StageOnboarding] != 0 {
		t.Fatalf("onboarding count = %d, want 0", counts[domain.StageOnboarding])
	}
}
