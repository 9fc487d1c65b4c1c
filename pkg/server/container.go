package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/config"
	"commission-reporting-api/internal/database"
	"commission-reporting-api/internal/fixtures"
	"commission-reporting-api/internal/handlers"
	"commission-reporting-api/internal/repositories"
	"commission-reporting-api/internal/repositories/sqlite"
	"commission-reporting-api/internal/services"
)

// Version is reported by /health and the swagger document.
const Version = "1.0.0"

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Services *services.ServiceContainer

	connections  *database.ConnectionManager
	repositories repositories.RepositoryManager
}

// Option adjusts a container before its services are built.
type Option func(*services.ServiceConfig)

// WithClock overrides the clock the services use for "today".
func WithClock(clock services.Clock) Option {
	return func(sc *services.ServiceConfig) {
		sc.Clock = clock
	}
}

// NewContainer opens the database, migrating it when configured, and wires
// repositories and services on top of it.
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = logrus.New()
	}

	connections := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath:    cfg.Database.ConnectionString,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
		Logger:          logger,
	})
	if err := connections.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos := sqlite.NewSQLiteRepositoryManager(connections.GetDB(), logger)

	serviceConfig := &services.ServiceConfig{Logger: logger}
	for _, opt := range opts {
		opt(serviceConfig)
	}

	serviceContainer, err := services.NewServiceContainer(repos, serviceConfig)
	if err != nil {
		connections.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	container := &Container{
		Config:       cfg,
		Logger:       logger,
		Services:     serviceContainer,
		connections:  connections,
		repositories: repos,
	}

	if cfg.SeedFixtures && !cfg.IsProduction() {
		result, err := fixtures.Load(ctx, serviceContainer, logger)
		if err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"profiles":  result.Profiles,
			"personnel": result.Personnel,
			"sales":     result.Sales,
			"skipped":   result.Skipped,
		}).Info("Fixtures processed")
	}

	return container, nil
}

// Health checks the connection and that foreign keys are enforced.
func (c *Container) Health(ctx context.Context) error {
	if err := c.connections.HealthCheck(ctx); err != nil {
		return err
	}
	return c.repositories.Health(ctx)
}

// Router builds the gin engine with middleware and all routes.
func (c *Container) Router() *gin.Engine {
	router := gin.New()

	handlers.SetupMiddleware(router, &handlers.MiddlewareConfig{
		Logger:         c.Logger,
		AllowedOrigins: c.Config.CORS.AllowedOrigins,
		RateLimitRPS:   c.Config.RateLimit.RequestsPerSecond,
		RateLimitBurst: c.Config.RateLimit.Burst,
		MaxBodyBytes:   c.Config.Server.MaxBodyBytes,
	})

	routerConfig := &handlers.RouterConfig{
		Services:    c.Services,
		Health:      c,
		Logger:      c.Logger,
		Version:     Version,
		Environment: c.Config.Environment,
	}
	handlers.SetupRoutes(router, routerConfig)

	if !c.Config.IsProduction() {
		handlers.SetupDevelopmentRoutes(router, routerConfig)
	}

	return router
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.connections != nil {
		if err := c.connections.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// MonitorStats logs connection pool statistics every interval until ctx ends.
func (c *Container) MonitorStats(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.connections.LogStats()
		}
	}
}
