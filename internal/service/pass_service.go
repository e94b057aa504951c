package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/recruitment-service/internal/auth"
	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/events"
	"github.com/spec-kit/recruitment-service/internal/persistence"
	"github.com/spec-kit/recruitment-service/internal/repository"
	"github.com/spec-kit/recruitment-service/internal/workflow"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

const (
	pipelineCountsKey = "pipeline:counts"
	pipelineCountsTTL = 30 * time.Second
)

// PassService coordinates recruitment pass workflows and projects the
// viewpoint-specific views served to candidates and staff.
type PassService struct {
	passes     repository.PassRepository
	interviews repository.InterviewRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
}

// PassDependencies bundles collaborators for the pass service.
type PassDependencies struct {
	PassRepo      repository.PassRepository
	InterviewRepo repository.InterviewRepository
	Cache         *persistence.Redis
	Dispatcher    events.Dispatcher
}

// PassCreateInput describes pass creation payload.
type PassCreateInput struct {
	CandidateName  string
	CandidateEmail string
	PositionTitle  string
}

// StageStep is one entry of the stage timeline rendered on a pass.
type StageStep struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Index     int    `json:"index"`
	Current   bool   `json:"current"`
	Completed bool   `json:"completed"`
}

// CandidateView is the candidate-facing projection of a pass. Internal-only
// statuses are already masked; the true status never appears here.
type CandidateView struct {
	PassNumber    string               `json:"pass_number"`
	CandidateName string               `json:"candidate_name"`
	PositionTitle string               `json:"position_title"`
	StageLabel    string               `json:"stage_label"`
	StatusLabel   string               `json:"status_label"`
	Timeline      []StageStep          `json:"timeline"`
	Action        *domain.ActionConfig `json:"action,omitempty"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ManagerView is the staff-facing projection: true stage and status plus the
// derived next action for the hiring manager.
type ManagerView struct {
	Pass               *domain.RecruitmentPass `json:"pass"`
	StageLabel         string                  `json:"stage_label"`
	StatusLabel        string                  `json:"status_label"`
	Timeline           []StageStep             `json:"timeline"`
	NextAction         *workflow.NextAction    `json:"next_action,omitempty"`
	Action             *domain.ActionConfig    `json:"action,omitempty"`
	PendingEvaluations int                     `json:"pending_evaluations"`
	InternalOnly       bool                    `json:"internal_only"`
}

// NewPassService constructs the service.
func NewPassService(deps PassDependencies) *PassService {
	return &PassService{
		passes:     deps.PassRepo,
		interviews: deps.InterviewRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// CreatePass opens a new pass in application/submitted and mints the opaque
// candidate token. The plaintext token is returned exactly once; only its
// hash is stored.
func (s *PassService) CreatePass(ctx context.Context, staff *domain.StaffMember, input PassCreateInput) (*domain.RecruitmentPass, string, error) {
	name := strings.TrimSpace(input.CandidateName)
	email := strings.TrimSpace(input.CandidateEmail)
	position := strings.TrimSpace(input.PositionTitle)
	if name == "" || email == "" || position == "" {
		return nil, "", apperrors.NewValidationError("candidate name, email and position are required", nil)
	}

	token, tokenHash, err := auth.NewPassToken()
	if err != nil {
		return nil, "", err
	}

	pass := &domain.RecruitmentPass{
		PassNumber:     generatePassNumber(),
		CandidateName:  name,
		CandidateEmail: email,
		PositionTitle:  position,
		Stage:          domain.StageApplication,
		Status:         "submitted",
		TokenHash:      tokenHash,
	}
	if err := s.passes.Create(ctx, pass); err != nil {
		return nil, "", err
	}

	s.invalidatePipelineCounts(ctx)
	s.publishEvent(ctx, events.Event{
		Type:   events.EventPassCreated,
		PassID: pass.ID,
		Actor:  staffActor(staff.ID),
		Payload: events.PassCreatedPayload{
			PassNumber:    pass.PassNumber,
			CandidateName: pass.CandidateName,
			PositionTitle: pass.PositionTitle,
		},
	})
	return pass, token, nil
}

// CandidateViewFor projects a pass for its candidate. The pass has already
// been resolved from the token by the auth middleware.
func (s *PassService) CandidateViewFor(ctx context.Context, pass *domain.RecruitmentPass) (*CandidateView, error) {
	return &CandidateView{
		PassNumber:    pass.PassNumber,
		CandidateName: pass.CandidateName,
		PositionTitle: pass.PositionTitle,
		StageLabel:    workflow.StageLabel(pass.Stage, domain.ViewpointCandidate),
		StatusLabel:   workflow.StatusLabel(pass.Stage, pass.Status, domain.ViewpointCandidate),
		Timeline:      s.timeline(pass.Stage, domain.ViewpointCandidate),
		Action:        workflow.CandidateActionRequired(pass.Stage, pass.Status),
		UpdatedAt:     pass.UpdatedAt,
	}, nil
}

// ManagerViewFor projects a pass for staff, deriving the manager's next
// action from interview state.
func (s *PassService) ManagerViewFor(ctx context.Context, passID string) (*ManagerView, error) {
	pass, err := s.passes.GetByID(ctx, passID)
	if err != nil {
		return nil, err
	}

	pendingEvals := 0
	hasSlots := false
	if workflow.NormalizeStageKey(pass.Stage) == domain.StageInterview {
		pendingEvals, err = s.interviews.CountPendingEvaluations(ctx, pass.ID)
		if err != nil {
			return nil, err
		}
		hasSlots, err = s.hasUnbookedSlots(ctx, pass.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ManagerView{
		Pass:               pass,
		StageLabel:         workflow.StageLabel(pass.Stage, domain.ViewpointManager),
		StatusLabel:        workflow.StatusLabel(pass.Stage, pass.Status, domain.ViewpointManager),
		Timeline:           s.timeline(pass.Stage, domain.ViewpointManager),
		NextAction:         workflow.NextActionInfo(pass.Stage, pass.Status, domain.ViewpointManager),
		Action:             workflow.ManagerActionRequired(pass.Stage, pass.Status, hasSlots, pendingEvals),
		PendingEvaluations: pendingEvals,
		InternalOnly:       workflow.IsInternalOnlyStatus(pass.Stage, pass.Status),
	}, nil
}

// ListPasses returns the staff pipeline listing.
func (s *PassService) ListPasses(ctx context.Context, filter repository.PassFilter) ([]domain.RecruitmentPass, error) {
	return s.passes.ListWithFilter(ctx, filter)
}

// MoveStage advances or rewinds a pass to a new (stage, status). HR only;
// the middleware enforces the role, the service validates the target.
func (s *PassService) MoveStage(ctx context.Context, staff *domain.StaffMember, passID, stage, status string) (*domain.RecruitmentPass, error) {
	if workflow.StageByKey(stage) == nil {
		return nil, apperrors.NewValidationError("unknown stage", map[string]any{"stage": stage})
	}
	if !statusKnownForStage(stage, status) {
		return nil, apperrors.NewValidationError("unknown status for stage", map[string]any{"stage": stage, "status": status})
	}

	pass, err := s.passes.GetByID(ctx, passID)
	if err != nil {
		return nil, err
	}

	oldStage, oldStatus := pass.Stage, pass.Status
	newStage := workflow.NormalizeStageKey(stage)
	newStatus := workflow.NormalizeStatusKey(status)
	if err := s.passes.UpdateStage(ctx, pass.ID, newStage, newStatus); err != nil {
		return nil, err
	}
	pass.Stage = newStage
	pass.Status = newStatus

	s.invalidatePipelineCounts(ctx)
	s.publishEvent(ctx, events.Event{
		Type:   events.EventPassStageChanged,
		PassID: pass.ID,
		Actor:  staffActor(staff.ID),
		Payload: events.PassStageChangedPayload{
			OldStage:  oldStage,
			NewStage:  pass.Stage,
			OldStatus: oldStatus,
			NewStatus: pass.Status,
		},
	})
	return pass, nil
}

// UpdateStatus changes the status within the current stage.
func (s *PassService) UpdateStatus(ctx context.Context, staff *domain.StaffMember, passID, status string) (*domain.RecruitmentPass, error) {
	pass, err := s.passes.GetByID(ctx, passID)
	if err != nil {
		return nil, err
	}
	if !statusKnownForStage(pass.Stage, status) {
		return nil, apperrors.NewValidationError("unknown status for stage", map[string]any{"stage": pass.Stage, "status": status})
	}

	oldStatus := pass.Status
	newStatus := workflow.NormalizeStatusKey(status)
	if err := s.passes.UpdateStatus(ctx, pass.ID, newStatus); err != nil {
		return nil, err
	}
	pass.Status = newStatus

	s.publishEvent(ctx, events.Event{
		Type:   events.EventPassStageChanged,
		PassID: pass.ID,
		Actor:  staffActor(staff.ID),
		Payload: events.PassStageChangedPayload{
			OldStage:  pass.Stage,
			NewStage:  pass.Stage,
			OldStatus: oldStatus,
			NewStatus: pass.Status,
		},
	})
	return pass, nil
}

// PipelineCounts returns per-stage pass counts for the staff dashboard,
// cached briefly in Redis. Cache failures fall through to Postgres.
func (s *PassService) PipelineCounts(ctx context.Context) (map[string]int, error) {
	if s.cache != nil && s.cache.Client != nil {
		if raw, err := s.cache.Client.Get(ctx, pipelineCountsKey).Bytes(); err == nil {
			var cached map[string]int
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	counts, err := s.passes.CountByStage(ctx)
	if err != nil {
		return nil, err
	}
	// Zero-fill so every stage column renders even when empty.
	full := make(map[string]int, len(workflow.Stages(domain.ViewpointManager)))
	for _, stage := range workflow.Stages(domain.ViewpointManager) {
		full[stage.Key] = counts[stage.Key]
	}

	if s.cache != nil && s.cache.Client != nil {
		if raw, err := json.Marshal(full); err == nil {
			s.cache.Client.Set(ctx, pipelineCountsKey, raw, pipelineCountsTTL)
		}
	}
	return full, nil
}

// GetByNumber fetches a pass by its public number for staff lookups.
func (s *PassService) GetByNumber(ctx context.Context, passNumber string) (*domain.RecruitmentPass, error) {
	pass, err := s.passes.GetByNumber(ctx, passNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("pass", map[string]any{"pass_number": passNumber})
		}
		return nil, err
	}
	return pass, nil
}

func (s *PassService) timeline(currentStage string, view domain.Viewpoint) []StageStep {
	current := workflow.StageIndex(currentStage)
	stages := workflow.Stages(view)
	steps := make([]StageStep, 0, len(stages))
	for i, stage := range stages {
		steps = append(steps, StageStep{
			Key:       stage.Key,
			Label:     workflow.StageLabel(stage.Key, view),
			Icon:      stage.Icon,
			Index:     i,
			Current:   i == current,
			Completed: i < current,
		})
	}
	return steps
}

func (s *PassService) hasUnbookedSlots(ctx context.Context, passID string) (bool, error) {
	interview, err := s.interviews.GetLatestForPass(ctx, passID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	slots, err := s.interviews.ListSlots(ctx, interview.ID)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if !slot.IsBooked {
			return true, nil
		}
	}
	return false, nil
}

func (s *PassService) invalidatePipelineCounts(ctx context.Context) {
	if s.cache != nil && s.cache.Client != nil {
		s.cache.Client.Del(ctx, pipelineCountsKey)
	}
}

func (s *PassService) publishEvent(ctx context.Context, event events.Event) {
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

// statusKnownForStage accepts a status present in either viewpoint registry
// for the stage. HR writes manager-side statuses, but assessment overlay
// statuses live only in the candidate registry.
func statusKnownForStage(stage, status string) bool {
	for _, view := range []domain.Viewpoint{domain.ViewpointManager, domain.ViewpointCandidate} {
		key := workflow.NormalizeStatusKey(status)
		for _, cfg := range workflow.StatusesFor(stage, view) {
			if cfg.Key == key {
				return true
			}
		}
	}
	return false
}

func generatePassNumber() string {
	return "RP-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func staffActor(staffID string) events.Actor {
	return events.Actor{
		Type:    domain.SubjectTypeStaff,
		StaffID: &staffID,
	}
}

func candidateActor(passID string) events.Actor {
	return events.Actor{
		Type:   domain.SubjectTypeCandidate,
		PassID: &passID,
	}
}
