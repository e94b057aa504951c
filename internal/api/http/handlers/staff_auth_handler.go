package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruitment-service/internal/api/dto"
	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/service"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// StaffAuthHandler manages staff authentication endpoints.
type StaffAuthHandler struct {
	service *service.AuthService
}

// NewStaffAuthHandler constructs handler.
func NewStaffAuthHandler(authService *service.AuthService) *StaffAuthHandler {
	return &StaffAuthHandler{service: authService}
}

// Login POST /auth/staff/login.
func (h *StaffAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	staff, token, exp, err := h.service.LoginStaff(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StaffLoginResponse{
		Staff:     staffResponse(staff),
		Token:     token,
		ExpiresAt: exp,
	}})
}

// Register POST /api/staff/register. HR only, enforced by the router.
func (h *StaffAuthHandler) Register(c *fiber.Ctx) error {
	var req dto.StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email and password required", nil)
	}

	staff, err := h.service.RegisterStaff(c.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(staff)})
}

func staffResponse(staff *domain.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:    staff.ID,
		Name:  staff.Name,
		Email: staff.Email,
		Role:  staff.Role,
	}
}
