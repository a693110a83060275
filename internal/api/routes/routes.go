package routes

import (
	"time"

	"oncall-portal-backend/internal/api/handlers"
	"oncall-portal-backend/internal/api/middleware"
	"oncall-portal-backend/internal/auth"
	"oncall-portal-backend/internal/config"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/service"
	"oncall-portal-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(s *store.Store, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Initialize services
	organizationService := service.NewOrganizationService(s, validate)
	physicianService := service.NewPhysicianService(s, validate)
	scheduleService := service.NewScheduleService(s, validate)
	requestService := service.NewRequestService(s, validate)
	userService := service.NewUserService(s, validate)

	authService := auth.NewAuthService(userService, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	physicianHandler := handlers.NewPhysicianHandler(physicianService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	requestHandler := handlers.NewRequestHandler(requestService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Auth routes
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authMiddleware.RequireAuth(), authHandler.Me)

	// Authenticated API routes
	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())

	organizations := api.Group("/organizations")
	{
		organizations.GET("", organizationHandler.ListOrganizations)
		organizations.POST("", organizationHandler.CreateOrganization)
		organizations.GET("/:id", organizationHandler.GetOrganization)
		organizations.PATCH("/:id", organizationHandler.UpdateOrganization)
		organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
		organizations.GET("/:id/physicians", organizationHandler.GetOrganizationPhysicians)
		organizations.POST("/:id/physicians", organizationHandler.AssignPhysician)
		organizations.DELETE("/:id/physicians/:physicianId", organizationHandler.RemovePhysician)
		organizations.GET("/:id/schedules", organizationHandler.GetOrganizationSchedules)
		organizations.GET("/:id/schedules/active", organizationHandler.GetActiveSchedules)
		organizations.GET("/:id/requests", organizationHandler.GetOrganizationRequests)
	}

	physicians := api.Group("/physicians")
	{
		physicians.GET("", physicianHandler.ListPhysicians)
		physicians.POST("", physicianHandler.CreatePhysician)
		physicians.GET("/:id", physicianHandler.GetPhysician)
		physicians.PATCH("/:id", physicianHandler.UpdatePhysician)
		physicians.DELETE("/:id", physicianHandler.DeletePhysician)
		physicians.GET("/:id/organizations", physicianHandler.GetPhysicianOrganizations)
		physicians.GET("/:id/schedules", physicianHandler.GetPhysicianSchedules)
		physicians.GET("/:id/requests", physicianHandler.GetPhysicianRequests)
	}

	schedules := api.Group("/schedules")
	{
		schedules.GET("", scheduleHandler.ListSchedules)
		schedules.POST("", scheduleHandler.CreateSchedule)
		schedules.GET("/:id", scheduleHandler.GetSchedule)
		schedules.PATCH("/:id", scheduleHandler.UpdateSchedule)
		schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
	}

	requests := api.Group("/requests")
	{
		requests.GET("", requestHandler.ListRequests)
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PATCH("/:id", requestHandler.UpdateRequest)
		requests.POST("/:id/status", requestHandler.UpdateRequestStatus)
		requests.DELETE("/:id", requestHandler.DeleteRequest)
	}

	// User management is admin-only
	users := api.Group("/users")
	users.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/by-username/:username", userHandler.GetUserByUsername)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return router
}
