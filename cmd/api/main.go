package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/recruitment-service/internal/api/http"
	"github.com/spec-kit/recruitment-service/internal/api/http/handlers"
	"github.com/spec-kit/recruitment-service/internal/auth"
	"github.com/spec-kit/recruitment-service/internal/config"
	"github.com/spec-kit/recruitment-service/internal/events"
	"github.com/spec-kit/recruitment-service/internal/observability"
	"github.com/spec-kit/recruitment-service/internal/persistence"
	"github.com/spec-kit/recruitment-service/internal/repository"
	"github.com/spec-kit/recruitment-service/internal/service"
	"github.com/spec-kit/recruitment-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	passRepo := repository.NewPassRepository(pool)
	interviewRepo := repository.NewInterviewRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		StaffRepo: staffRepo,
	})
	passService := service.NewPassService(service.PassDependencies{
		PassRepo:      passRepo,
		InterviewRepo: interviewRepo,
		Cache:         redis,
		Dispatcher:    dispatcher,
	})
	interviewService := service.NewInterviewService(service.InterviewDependencies{
		InterviewRepo: interviewRepo,
		PassRepo:      passRepo,
		Metrics:       metrics,
		Dispatcher:    dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), staffRepo, passRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		StaffAuth:      handlers.NewStaffAuthHandler(authService),
		Passes:         handlers.NewPassesHandler(passService, interviewService),
		Candidate:      handlers.NewCandidateHandler(passService, interviewService),
		AuthMiddleware: authMiddleware,
		CandidateLimit: httptransport.RateLimitCandidate(redis, cfg.RateLimit, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
