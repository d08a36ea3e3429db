package routes

import (
	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/api/middleware"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	hackathonRepo := repository.NewHackathonRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	hackathonService := service.NewHackathonService(hackathonRepo, validator)
	teamService := service.NewTeamService(teamRepo, hackathonRepo, userRepo, notificationService, validator)
	pollService := service.NewPollService(teamRepo, hackathonRepo, notificationService, validator,
		cfg.PollMinDurationMinutes, cfg.PollMaxDurationMinutes)
	submissionService := service.NewSubmissionService(teamRepo, hackathonRepo, notificationService, validator)
	invitationService := service.NewInvitationService(invitationRepo, teamRepo, hackathonRepo, userRepo,
		notificationService, validator)
	userService := service.NewUserService(userRepo, validator)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpirationHours)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService)
	teamHandler := handlers.NewTeamHandler(teamService)
	pollHandler := handlers.NewPollHandler(pollService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	userHandler := handlers.NewUserHandler(userService, notificationService, authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Public login routes
	public := router.Group("/api/v1/users")
	{
		public.POST("/verify-user", userHandler.VerifyUser)
		public.POST("/admin-login", userHandler.AdminLogin)
	}

	// API v1 routes - all remaining endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", authMiddleware.RequireAdmin(), userHandler.ListUsers)
			users.POST("/upload-users", authMiddleware.RequireAdmin(), userHandler.UploadUsers)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/notifications", userHandler.ListNotifications)
			users.POST("/:id/notifications/read", userHandler.MarkNotificationsRead)
		}

		// Hackathon routes
		hackathons := v1.Group("/hackathons")
		{
			hackathons.GET("", hackathonHandler.ListHackathons)
			hackathons.POST("", authMiddleware.RequireAdmin(), hackathonHandler.CreateHackathon)
			hackathons.GET("/:id", hackathonHandler.GetHackathon)
			hackathons.PUT("/:id", authMiddleware.RequireAdmin(), hackathonHandler.UpdateHackathon)
			hackathons.DELETE("/:id", authMiddleware.RequireAdmin(), hackathonHandler.DeleteHackathon)
			hackathons.GET("/:id/teams", teamHandler.ListTeamsByHackathon)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", authMiddleware.RequireAdmin(), teamHandler.DeleteTeam)
			teams.DELETE("/:id/members/:user_id", teamHandler.RemoveMember)

			// Poll lifecycle
			teams.POST("/:id/poll/start", pollHandler.StartPoll)
			teams.POST("/:id/poll/vote", pollHandler.Vote)
			teams.POST("/:id/poll/conclude", pollHandler.ConcludePoll)
			teams.GET("/:id/poll/status", pollHandler.PollStatus)

			// Submission
			teams.POST("/:id/submission", submissionHandler.SubmitProject)
			teams.GET("/:id/submission/status", submissionHandler.SubmissionStatus)
		}

		// Invitation routes
		invitations := v1.Group("/invitations")
		{
			invitations.GET("", invitationHandler.ListMyInvitations)
			invitations.POST("", invitationHandler.CreateInvitation)
			invitations.POST("/:id/accept", invitationHandler.AcceptInvitation)
			invitations.POST("/:id/decline", invitationHandler.DeclineInvitation)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
