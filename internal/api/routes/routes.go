package routes

import (
	"serving-scheduler-backend/internal/api/handlers"
	"serving-scheduler-backend/internal/api/middleware"
	"serving-scheduler-backend/internal/config"
	"serving-scheduler-backend/internal/repository"
	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The serving
// request service is returned alongside the router so the expiry sweep job
// can share it.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.ServingRequestService) {
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
	ministryRepo := repository.NewMinistryRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	profileRepo := repository.NewServingProfileRepository(db)
	blockoutRepo := repository.NewBlockoutRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	instanceRepo := repository.NewServiceInstanceRepository(db)
	requestRepo := repository.NewServingRequestRepository(db)

	// Initialize services
	events := service.NewLogEventPublisher()
	ministryService := service.NewMinistryService(ministryRepo, validator)
	positionService := service.NewPositionService(positionRepo, ministryRepo, validator)
	profileService := service.NewServingProfileService(profileRepo, ministryRepo, blockoutRepo, availabilityRepo, validator)
	instanceService := service.NewServiceInstanceService(instanceRepo, ministryRepo, validator)
	requestService := service.NewServingRequestService(requestRepo, instanceRepo, profileRepo, positionRepo, events, validator)
	suggestService := service.NewSuggestService(instanceRepo, profileRepo, positionRepo, cfg.SuggestRecencyBandDays, cfg.SuggestMaxResults)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	ministryHandler := handlers.NewMinistryHandler(ministryService)
	positionHandler := handlers.NewPositionHandler(positionService)
	profileHandler := handlers.NewProfileHandler(profileService)
	instanceHandler := handlers.NewServiceInstanceHandler(instanceService)
	requestHandler := handlers.NewServingRequestHandler(requestService)
	suggestHandler := handlers.NewSuggestHandler(suggestService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Ministry routes
		ministries := v1.Group("/ministries")
		{
			ministries.GET("", ministryHandler.ListMinistries)
			ministries.POST("", ministryHandler.CreateMinistry)
			ministries.POST("/:id/profiles", profileHandler.CreateProfile)
			ministries.GET("/:id/grid", instanceHandler.GetScheduleGrid)
		}

		// Position routes
		positions := v1.Group("/positions")
		{
			positions.GET("", positionHandler.ListPositions) // Requires ministry_id parameter
			positions.POST("", positionHandler.CreatePosition)
			positions.PATCH("/:id/active", positionHandler.SetPositionActive)
		}

		// Serving profile routes
		profiles := v1.Group("/profiles")
		{
			profiles.GET("/:id", profileHandler.GetProfile)
			profiles.PATCH("/:id", profileHandler.UpdateProfile)
			profiles.PUT("/:id/availability", profileHandler.SetAvailability)
			profiles.POST("/:id/blockouts", profileHandler.AddBlockout)
		}

		// Blockout routes
		blockouts := v1.Group("/blockouts")
		{
			blockouts.DELETE("/:id", profileHandler.RemoveBlockout)
		}

		// Service instance routes
		services := v1.Group("/services")
		{
			services.GET("", instanceHandler.ListServices) // Requires ministry_id, from, to parameters
			services.POST("", instanceHandler.CreateServiceInstance)
			services.GET("/:id", instanceHandler.GetServiceInstance)
			services.POST("/:id/requests", requestHandler.CreateServingRequest)
			services.GET("/:id/suggest", suggestHandler.SuggestCandidates)
		}

		// Serving request routes
		requests := v1.Group("/requests")
		{
			requests.GET("/:id", requestHandler.GetServingRequest)
			requests.PATCH("/:id/respond", requestHandler.RespondToRequest)
			requests.POST("/:id/reopen", requestHandler.ReopenRequest)
		}

		// Expiry sweep (also scheduled via the cron job)
		v1.POST("/sweep/expire-requests", requestHandler.SweepRequests)
	}

	return router, requestService
}
