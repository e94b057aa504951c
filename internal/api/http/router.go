package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruitment-service/internal/api/http/handlers"
	"github.com/spec-kit/recruitment-service/internal/auth"
	"github.com/spec-kit/recruitment-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	StaffAuth      *handlers.StaffAuthHandler
	Passes         *handlers.PassesHandler
	Candidate      *handlers.CandidateHandler
	AuthMiddleware *auth.AuthMiddleware
	CandidateLimit fiber.Handler
}

// RegisterRoutes wires HTTP routes. Staff routes sit behind bearer auth with
// HR-only guards on mutating pass operations; candidate routes resolve the
// opaque pass token and are rate limited.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/staff/login", cfg.StaffAuth.Login)

	api := app.Group("/api", cfg.AuthMiddleware.HandleStaff, auth.RequireStaffRole())
	hrOnly := auth.RequireStaffRole(domain.StaffRoleHR)

	api.Post("/staff/register", hrOnly, cfg.StaffAuth.Register)

	api.Get("/passes", cfg.Passes.List)
	api.Post("/passes", hrOnly, cfg.Passes.Create)
	api.Get("/passes/:id", cfg.Passes.Get)
	api.Patch("/passes/:id/stage", hrOnly, cfg.Passes.MoveStage)
	api.Patch("/passes/:id/status", hrOnly, cfg.Passes.UpdateStatus)
	api.Get("/pipeline/counts", cfg.Passes.PipelineCounts)

	api.Post("/passes/:id/interviews", hrOnly, cfg.Passes.CreateInterview)
	api.Get("/passes/:id/interviews/latest", cfg.Passes.LatestInterview)
	api.Put("/interviews/:id/slots", cfg.Passes.ProvideSlots)
	api.Get("/interviews/:id/slots", cfg.Passes.ListSlots)
	api.Delete("/interviews/:id/slots/:slotID/booking", hrOnly, cfg.Passes.ReleaseSlot)

	pass := app.Group("/pass/:token")
	if cfg.CandidateLimit != nil {
		pass.Use(cfg.CandidateLimit)
	}
	pass.Use(cfg.AuthMiddleware.HandleCandidate, auth.RequireCandidate())
	pass.Get("/", cfg.Candidate.GetPass)
	pass.Get("/schedule", cfg.Candidate.GetSchedule)
	pass.Post("/schedule/confirm", cfg.Candidate.ConfirmSlot)
}
