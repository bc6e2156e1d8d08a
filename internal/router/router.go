package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/config"
	"github.com/stemsi/skills-assessment/internal/handler"
	"github.com/stemsi/skills-assessment/internal/middleware"
	"github.com/stemsi/skills-assessment/internal/response"
	"github.com/stemsi/skills-assessment/internal/validator"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Candidate     *handler.CandidateHandler
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Subject       *handler.SubjectHandler
	Template      *handler.TemplateHandler
	AssessmentHub *handler.AssessmentHubHandler
	Dashboard     *handler.DashboardHandler
	Health        *handler.HealthHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// loginLimiter guards the sign-in route; the caller owns its lifetime.
func SetupRouter(
	handlers *Handlers,
	loginLimiter *middleware.RateLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	validator.Setup()

	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware(log))
	router.Use(middleware.Brotli())
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api/v1")

	// ─── Candidate ─────────────────────────────────────────────────────
	candidate := api.Group("/candidates/:candidate_id")
	candidate.Use(middleware.NoStore())
	{
		candidate.GET("/exams", handlers.Candidate.ListExams)
		candidate.GET("/exams/:exam_id", handlers.Candidate.GetExam)
		candidate.POST("/exams/:exam_id/submit", handlers.Candidate.SubmitExam)
		candidate.GET("/results", handlers.Candidate.ListResults)
		candidate.GET("/results/:exam_id", handlers.Candidate.GetResult)
	}

	// ─── Auth ──────────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)
	}

	// ─── Admin ─────────────────────────────────────────────────────────
	users := api.Group("/users")
	{
		users.GET("", handlers.User.List)
		users.POST("", handlers.User.Create)
		users.PATCH("/:id", handlers.User.Update)
		users.DELETE("/:id", handlers.User.Delete)
		users.PATCH("/:id/toggle-status", handlers.User.ToggleStatus)
	}

	api.GET("/managers", handlers.User.ListManagers)
	api.GET("/managers/:email/dashboard", handlers.Dashboard.ForManager)

	subjects := api.Group("/subjects")
	{
		subjects.GET("", handlers.Subject.GetAll)
		subjects.POST("", handlers.Subject.Create)
	}

	templates := api.Group("/templates")
	{
		templates.GET("", handlers.Template.List)
		templates.POST("", handlers.Template.Create)
		templates.PATCH("/:id", handlers.Template.Update)
		templates.DELETE("/:id", handlers.Template.Delete)
	}

	// ─── Assessment Hub (manager) ──────────────────────────────────────
	hub := api.Group("/assessment-hub")
	{
		hub.GET("/templates", handlers.AssessmentHub.ListTemplates)
		hub.GET("/candidates", handlers.AssessmentHub.ListCandidates)
		hub.POST("/generate-questions", handlers.AssessmentHub.GenerateQuestions)
		hub.POST("/schedule-exam", handlers.AssessmentHub.ScheduleExam)
		hub.GET("/schedules", handlers.AssessmentHub.ListSchedules)
	}

	return router
}
