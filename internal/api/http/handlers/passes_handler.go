package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruitment-service/internal/api/dto"
	"github.com/spec-kit/recruitment-service/internal/auth"
	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/repository"
	"github.com/spec-kit/recruitment-service/internal/service"
	"github.com/spec-kit/recruitment-service/internal/workflow"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// PassesHandler manages staff-side pass and interview endpoints.
type PassesHandler struct {
	passes     *service.PassService
	interviews *service.InterviewService
}

// NewPassesHandler constructs handler.
func NewPassesHandler(passService *service.PassService, interviewService *service.InterviewService) *PassesHandler {
	return &PassesHandler{passes: passService, interviews: interviewService}
}

// Create POST /api/passes.
func (h *PassesHandler) Create(c *fiber.Ctx) error {
	staff, err := staffFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreatePassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	pass, token, err := h.passes.CreatePass(c.Context(), staff, service.PassCreateInput{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		PositionTitle:  req.PositionTitle,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CreatePassResponse{
		Pass:      passSummary(pass),
		PassToken: token,
	}})
}

// List GET /api/passes.
func (h *PassesHandler) List(c *fiber.Ctx) error {
	if _, err := staffFromContext(c); err != nil {
		return err
	}
	filter := parsePassQuery(c)
	passes, err := h.passes.ListPasses(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.PassSummary, 0, len(passes))
	for i := range passes {
		items = append(items, passSummary(&passes[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/passes/:id.
func (h *PassesHandler) Get(c *fiber.Ctx) error {
	if _, err := staffFromContext(c); err != nil {
		return err
	}
	view, err := h.passes.ManagerViewFor(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// MoveStage PATCH /api/passes/:id/stage. HR only, enforced by the router.
func (h *PassesHandler) MoveStage(c *fiber.Ctx) error {
	staff, err := staffFromContext(c)
	if err != nil {
		return err
	}
	var req dto.MoveStageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pass, err := h.passes.MoveStage(c.Context(), staff, c.Params("id"), req.Stage, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": passSummary(pass)})
}

// UpdateStatus PATCH /api/passes/:id/status. HR only, enforced by the router.
func (h *PassesHandler) UpdateStatus(c *fiber.Ctx) error {
	staff, err := staffFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pass, err := h.passes.UpdateStatus(c.Context(), staff, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": passSummary(pass)})
}

// PipelineCounts GET /api/pipeline/counts.
func (h *PassesHandler) PipelineCounts(c *fiber.Ctx) error {
	if _, err := staffFromContext(c); err != nil {
		return err
	}
	counts, err := h.passes.PipelineCounts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": counts})
}

// CreateInterview POST /api/passes/:id/interviews. HR only.
func (h *PassesHandler) CreateInterview(c *fiber.Ctx) error {
	staff, err := staffFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Type == "" {
		return apperrors.NewValidationError("interview type required", nil)
	}

	interview, err := h.interviews.CreateInterview(c.Context(), staff, c.Params("id"), req.Type, req.Location, req.MeetingLink)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": interviewResponse(interview)})
}

// LatestInterview GET /api/passes/:id/interviews/latest.
func (h *PassesHandler) LatestInterview(c *fiber.Ctx) error {
	if _, err := staffFromContext(c); err != nil {
		return err
	}
	interview, err := h.interviews.LatestForPass(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponse(interview)})
}

// ProvideSlots PUT /api/interviews/:id/slots. The submitted list is the full
// desired state; the service reconciles it against persisted slots.
func (h *PassesHandler) ProvideSlots(c *fiber.Ctx) error {
	staff, err := staffFromContext(c)
	if err != nil {
		return err
	}
	var req dto.ProvideSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	inputs := make([]service.SlotInput, 0, len(req.Slots))
	for _, slot := range req.Slots {
		input := service.SlotInput{ID: slot.ID}
		if slot.StartAt != nil {
			input.Start = *slot.StartAt
		}
		if slot.EndAt != nil {
			input.End = *slot.EndAt
		}
		inputs = append(inputs, input)
	}

	slots, err := h.interviews.ProvideSlots(c.Context(), staff, c.Params("id"), inputs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": slots})
}

// ListSlots GET /api/interviews/:id/slots.
func (h *PassesHandler) ListSlots(c *fiber.Ctx) error {
	if _, err := staffFromContext(c); err != nil {
		return err
	}
	slots, err := h.interviews.SlotsForStaff(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": slots})
}

// ReleaseSlot DELETE /api/interviews/:id/slots/:slotID/booking. HR only.
func (h *PassesHandler) ReleaseSlot(c *fiber.Ctx) error {
	staff, err := staffFromContext(c)
	if err != nil {
		return err
	}
	if err := h.interviews.ReleaseSlot(c.Context(), staff, c.Params("id"), c.Params("slotID")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func staffFromContext(c *fiber.Ctx) (*domain.StaffMember, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return nil, apperrors.NewUnauthorized("staff required")
	}
	return principal.Staff, nil
}

func parsePassQuery(c *fiber.Ctx) repository.PassFilter {
	filter := repository.PassFilter{
		Limit:  20,
		Offset: 0,
	}
	if stage := c.Query("stage"); stage != "" {
		normalized := workflow.NormalizeStageKey(stage)
		filter.Stage = &normalized
	}
	if status := c.Query("status"); status != "" {
		normalized := workflow.NormalizeStatusKey(status)
		filter.Status = &normalized
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset >= 0 {
		filter.Offset = offset
	}
	return filter
}

func passSummary(pass *domain.RecruitmentPass) dto.PassSummary {
	return dto.PassSummary{
		ID:            pass.ID,
		PassNumber:    pass.PassNumber,
		CandidateName: pass.CandidateName,
		PositionTitle: pass.PositionTitle,
		Stage:         pass.Stage,
		Status:        pass.Status,
		StageLabel:    workflow.StageLabel(pass.Stage, domain.ViewpointManager),
		StatusLabel:   workflow.StatusLabel(pass.Stage, pass.Status, domain.ViewpointManager),
		CreatedAt:     pass.CreatedAt,
		UpdatedAt:     pass.UpdatedAt,
	}
}

func interviewResponse(interview *domain.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:          interview.ID,
		PassID:      interview.PassID,
		Round:       interview.Round,
		Type:        interview.Type,
		TypeLabel:   workflow.InterviewTypeLabel(interview.Type),
		Status:      interview.Status,
		Location:    interview.Location,
		MeetingLink: interview.MeetingLink,
		CreatedAt:   interview.CreatedAt,
	}
}
