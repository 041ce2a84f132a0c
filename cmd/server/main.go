package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mettlehq/ats-api/internal/config"
	"github.com/mettlehq/ats-api/internal/database"
	"github.com/mettlehq/ats-api/internal/handlers"
	"github.com/mettlehq/ats-api/internal/middleware"
	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/repository"
	"github.com/mettlehq/ats-api/internal/services"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.GinMode != "release" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Initialize services
	tokenExpiry := time.Duration(cfg.JWTExpireMinutes) * time.Minute
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, tokenExpiry)
	jobService := services.NewJobService(jobRepo)
	candidateService := services.NewCandidateService(candidateRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, candidateRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(log.Logger), gin.Recovery())

	requireAuth := middleware.RequireAuth(authService, cfg.JWTSecret)
	requireRecruiter := middleware.RequireRole(models.RoleAdmin, models.RoleRecruiter)

	// Health check endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ATS API is running",
		})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":      "healthy",
			"environment": cfg.Environment,
			"version":     version,
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Job routes (protected)
		jobs := api.Group("/jobs")
		jobs.Use(requireAuth)
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PATCH("/:id", jobHandler.UpdateJob)
			jobs.DELETE("/:id", requireRecruiter, jobHandler.DeleteJob)
		}

		// Candidate routes (protected)
		candidates := api.Group("/candidates")
		candidates.Use(requireAuth)
		{
			candidates.GET("", candidateHandler.ListCandidates)
			candidates.POST("", candidateHandler.CreateCandidate)
			candidates.GET("/:id", candidateHandler.GetCandidate)
			candidates.PATCH("/:id", candidateHandler.UpdateCandidate)
			candidates.DELETE("/:id", requireRecruiter, candidateHandler.DeleteCandidate)
		}

		// Application routes (protected)
		applications := api.Group("/applications")
		applications.Use(requireAuth)
		{
			applications.GET("", applicationHandler.ListApplications)
			applications.POST("", applicationHandler.CreateApplication)
			applications.GET("/:id", applicationHandler.GetApplication)
			applications.PATCH("/:id", applicationHandler.UpdateApplication)
			applications.DELETE("/:id", applicationHandler.DeleteApplication)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
