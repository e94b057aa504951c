package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruitment-service/internal/api/dto"
	"github.com/spec-kit/recruitment-service/internal/auth"
	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/service"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// CandidateHandler serves the public pass endpoints reached through the
// per-pass token link. Everything returned here goes through the candidate
// viewpoint: internal-only statuses are masked and foreign bookings hidden.
type CandidateHandler struct {
	passes     *service.PassService
	interviews *service.InterviewService
}

// NewCandidateHandler constructs handler.
func NewCandidateHandler(passService *service.PassService, interviewService *service.InterviewService) *CandidateHandler {
	return &CandidateHandler{passes: passService, interviews: interviewService}
}

// GetPass GET /pass/:token.
func (h *CandidateHandler) GetPass(c *fiber.Ctx) error {
	pass, err := passFromContext(c)
	if err != nil {
		return err
	}
	view, err := h.passes.CandidateViewFor(c.Context(), pass)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// GetSchedule GET /pass/:token/schedule.
func (h *CandidateHandler) GetSchedule(c *fiber.Ctx) error {
	pass, err := passFromContext(c)
	if err != nil {
		return err
	}
	schedule, err := h.interviews.ScheduleForCandidate(c.Context(), pass)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedule})
}

// ConfirmSlot POST /pass/:token/schedule/confirm. A lost booking race comes
// back as 409 with the refreshed schedule absent; the client re-fetches.
func (h *CandidateHandler) ConfirmSlot(c *fiber.Ctx) error {
	pass, err := passFromContext(c)
	if err != nil {
		return err
	}
	var req dto.ConfirmSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.InterviewID == "" || req.SlotID == "" {
		return apperrors.NewValidationError("interview_id and slot_id required", nil)
	}

	schedule, err := h.interviews.ConfirmSlot(c.Context(), pass, req.InterviewID, req.SlotID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedule})
}

func passFromContext(c *fiber.Ctx) (*domain.RecruitmentPass, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Pass == nil {
		return nil, apperrors.NewNotFound("pass", nil)
	}
	return principal.Pass, nil
}
