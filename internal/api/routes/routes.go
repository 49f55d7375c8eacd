package routes

import (
	"event-portal-backend/internal/api/handlers"
	"event-portal-backend/internal/api/middleware"
	"event-portal-backend/internal/auth"
	"event-portal-backend/internal/config"
	"event-portal-backend/internal/database/models"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	log := logger.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Services
	notifier := service.NewTicketNotifier(cfg, log)
	teamService := service.NewTeamService(teamRepo, eventRepo, userRepo, registrationRepo, notifier, validator, log)
	registrationService := service.NewRegistrationService(registrationRepo, eventRepo, userRepo, teamRepo, notifier, validator, log)
	eventService := service.NewEventService(eventRepo, validator, log)
	adminService := service.NewAdminService(userRepo, validator, log)
	authService := auth.NewAuthService(userRepo, cfg, validator, log)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	eventHandler := handlers.NewEventHandler(eventService)
	adminHandler := handlers.NewAdminHandler(adminService)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	v1 := router.Group("/api/v1")

	// Auth routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Public event browsing
	v1.GET("/events", eventHandler.ListEvents)
	v1.GET("/events/:id", eventHandler.GetEvent)

	// Participant routes
	participant := v1.Group("")
	participant.Use(authMiddleware.RequireAuth(),
		authMiddleware.RequireRole(models.UserRoleStudent, models.UserRoleExternal))
	{
		participant.GET("/events/:id/teams", teamHandler.ListTeams)
		participant.GET("/events/:id/my-team", teamHandler.GetMyTeam)
		participant.POST("/teams", teamHandler.CreateTeam)
		participant.POST("/teams/join", teamHandler.JoinTeam)
		participant.GET("/teams/:id", teamHandler.GetTeam)
		participant.POST("/teams/:id/leave", teamHandler.LeaveTeam)
		participant.POST("/registrations", registrationHandler.Register)
		participant.GET("/registrations/me", registrationHandler.MyRegistrations)
		participant.GET("/registrations/:ticket_id", registrationHandler.GetTicket)
		participant.POST("/registrations/:ticket_id/cancel", registrationHandler.Cancel)
	}

	// Organizer routes
	organizer := v1.Group("/organizer")
	organizer.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.UserRoleOrganizer))
	{
		organizer.POST("/events", eventHandler.CreateEvent)
		organizer.GET("/events", eventHandler.ListMyEvents)
		organizer.POST("/events/:id/publish", eventHandler.PublishEvent)
		organizer.PUT("/events/:id", eventHandler.UpdateEvent)
		organizer.DELETE("/events/:id", eventHandler.DeleteEvent)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.UserRoleAdmin))
	{
		admin.POST("/organizers", adminHandler.CreateOrganizer)
		admin.GET("/organizers", adminHandler.ListOrganizers)
		admin.PUT("/organizers/:id/active", adminHandler.SetOrganizerActive)
		admin.POST("/organizers/:id/archive", adminHandler.ArchiveOrganizer)
	}

	return router
}
