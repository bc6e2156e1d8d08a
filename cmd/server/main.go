package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/config"
	"github.com/stemsi/skills-assessment/internal/database"
	"github.com/stemsi/skills-assessment/internal/handler"
	"github.com/stemsi/skills-assessment/internal/logger"
	"github.com/stemsi/skills-assessment/internal/middleware"
	"github.com/stemsi/skills-assessment/internal/repository"
	"github.com/stemsi/skills-assessment/internal/router"
	"github.com/stemsi/skills-assessment/internal/seed"
	"github.com/stemsi/skills-assessment/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("result_store", cfg.ResultStore).
		Msg("Starting Skills Assessment API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Load Seed Catalog ─────────────────────────────────────────────
	catalog, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("seed_file", cfg.SeedFile).Msg("Failed to load seed catalog")
	}
	log.Info().
		Int("exams", len(catalog.Exams)).
		Int("candidates", len(catalog.Candidates)).
		Int("users", len(catalog.Users)).
		Msg("Seed catalog loaded")

	users, err := service.HashPasswords(catalog.Users, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed passwords")
	}

	// ─── Result Store ──────────────────────────────────────────────────
	var (
		resultRepo repository.ResultRepository
		rdb        *redis.Client
	)
	switch cfg.ResultStore {
	case config.ResultStoreRedis:
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		resultRepo = repository.NewRedisResultRepository(rdb)
	case config.ResultStoreMemory:
		resultRepo = repository.NewMemoryResultRepository()
	default:
		log.Fatal().Str("result_store", cfg.ResultStore).Msg("Unknown RESULT_STORE, expected memory or redis")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	candidateRepo := repository.NewCandidateRepository(catalog.Candidates)
	bankRepo := repository.NewQuestionBankRepository(catalog.Exams)
	userRepo := repository.NewUserRepository(users)
	templateRepo := repository.NewTemplateRepository(catalog.Templates)
	subjectRepo := repository.NewSubjectRepository(catalog.Subjects)
	scheduleRepo := repository.NewScheduleRepository()
	dashboardRepo := repository.NewDashboardRepository(catalog.Dashboard)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(userRepo, cfg.BcryptCost, log)
	scoringService := service.NewScoringService(candidateRepo, bankRepo, resultRepo, log)
	candidateExamService := service.NewCandidateExamService(candidateRepo, bankRepo, log)
	userService := service.NewUserService(userRepo, authService, log)
	templateService := service.NewTemplateService(templateRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, log)
	hubService := service.NewAssessmentHubService(templateRepo, userRepo, scheduleRepo, catalog.GeneratedQuestions, log)
	dashboardService := service.NewDashboardService(dashboardRepo, userRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Candidate:     handler.NewCandidateHandler(candidateExamService, scoringService, log),
		Auth:          handler.NewAuthHandler(authService),
		User:          handler.NewUserHandler(userService),
		Subject:       handler.NewSubjectHandler(subjectService),
		Template:      handler.NewTemplateHandler(templateService),
		AssessmentHub: handler.NewAssessmentHubHandler(hubService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		Health:        handler.NewHealthHandler(rdb, cfg.ResultStore, log),
	}

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute)
	defer loginLimiter.Stop()

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, loginLimiter, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
