package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/recruitment-service/internal/domain"
	"github.com/spec-kit/recruitment-service/internal/repository"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Exactly one of Staff or Pass
// is set: staff members authenticate with bearer JWTs, candidates with the
// opaque token embedded in their pass link.
type Principal struct {
	SubjectType domain.SubjectType
	Staff       *domain.StaffMember
	Pass        *domain.RecruitmentPass
}

// AuthMiddleware validates credentials and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	staff  repository.StaffRepository
	passes repository.PassRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, staff repository.StaffRepository, passes repository.PassRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, staff: staff, passes: passes}
}

// HandleStaff enforces bearer-token authentication for back-office routes.
func (m *AuthMiddleware) HandleStaff(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if claims.Subject != domain.SubjectTypeStaff {
		return apperrors.NewUnauthorized("unknown subject")
	}

	staff, err := m.staff.GetByID(c.Context(), claims.SubjectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("staff not found")
		}
		return apperrors.MapError(err)
	}
	if !staff.IsActive {
		return apperrors.NewUnauthorized("account disabled")
	}

	c.Locals(principalKey, &Principal{SubjectType: domain.SubjectTypeStaff, Staff: staff})
	return c.Next()
}

// HandleCandidate resolves the :token path parameter to a recruitment pass.
// An unknown token reads as "pass not found" rather than "unauthorized" so
// the response does not confirm whether a guessed token ever existed.
func (m *AuthMiddleware) HandleCandidate(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return apperrors.NewNotFound("pass", nil)
	}

	pass, err := m.passes.GetByTokenHash(c.Context(), HashPassToken(token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("pass", nil)
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{SubjectType: domain.SubjectTypeCandidate, Pass: pass})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
