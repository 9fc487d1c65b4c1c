package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"commission-reporting-api/internal/fixtures"
	"commission-reporting-api/internal/middleware"
	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/services"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Services    *services.ServiceContainer
	Health      HealthChecker
	Logger      *logrus.Logger
	Version     string
	Environment string
}

// MiddlewareConfig holds the settings of the global middleware chain.
type MiddlewareConfig struct {
	Logger         *logrus.Logger
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	personnelHandler := NewPersonnelHandler(config.Services.PersonnelService, logger)
	profileHandler := NewCommissionProfileHandler(config.Services.CommissionProfileService, logger)
	salesHandler := NewSalesHandler(config.Services.SalesService, logger)
	reportHandler := NewReportHandler(config.Services.ReportService, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler(config))

	api := router.Group("/api")
	{
		personnel := api.Group("/personnel")
		{
			personnel.GET("", personnelHandler.ListPersonnel)
			personnel.POST("", personnelHandler.CreatePersonnel)
			personnel.GET("/:id", personnelHandler.GetPersonnel)
			personnel.PUT("/:id", personnelHandler.UpdatePersonnel)
			personnel.DELETE("/:id", personnelHandler.DeletePersonnel)
		}

		profiles := api.Group("/commissionprofile")
		{
			profiles.GET("", profileHandler.ListCommissionProfiles)
			profiles.POST("", profileHandler.CreateCommissionProfile)
			profiles.GET("/:id", profileHandler.GetCommissionProfile)
			profiles.PUT("/:id", profileHandler.UpdateCommissionProfile)
			profiles.DELETE("/:id", profileHandler.DeleteCommissionProfile)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", salesHandler.ListSales)
			sales.POST("", salesHandler.CreateSale)
			sales.GET("/:id", salesHandler.GetSale)
			sales.DELETE("/:id", salesHandler.DeleteSale)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/management-overview", reportHandler.ManagementOverview)
			reports.GET("/commission-payout", reportHandler.CommissionPayout)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})
}

// healthHandler answers 503 when the database does not respond.
func healthHandler(config *RouterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := models.HealthCheck{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   config.Version,
			Services:  map[string]string{"database": "healthy"},
		}

		status := http.StatusOK
		if config.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()

			if err := config.Health.Health(ctx); err != nil {
				if config.Logger != nil {
					config.Logger.WithError(err).Error("Health check failed")
				}
				health.Status = "unhealthy"
				health.Services["database"] = "unhealthy"
				status = http.StatusServiceUnavailable
			}
		}

		c.JSON(status, health)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.CORS(config.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())

	if config.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSizeLimit(config.MaxBodyBytes))
	}

	router.Use(middleware.ContentTypeValidation("application/json"))

	if config.RateLimitRPS > 0 {
		router.Use(middleware.RateLimiter(config.RateLimitRPS, config.RateLimitBurst, logger))
	}
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, config *RouterConfig) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	dev := router.Group("/dev")
	{
		dev.POST("/fixtures", func(c *gin.Context) {
			result, err := fixtures.Load(c.Request.Context(), config.Services, logger)
			if err != nil {
				handleServiceError(c, logger, err, "load_fixtures")
				return
			}

			message := "Fixtures loaded"
			if result.Skipped {
				message = "Store already holds data; fixtures skipped"
			}
			respondSuccess(c, http.StatusOK, result, message)
		})

		dev.GET("/config", func(c *gin.Context) {
			respondSuccess(c, http.StatusOK, gin.H{
				"environment": config.Environment,
				"api_version": config.Version,
				"swagger_url": "/swagger/index.html",
			}, "")
		})
	}
}
