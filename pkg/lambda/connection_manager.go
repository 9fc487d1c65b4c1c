package lambda

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/config"
	"commission-reporting-api/pkg/server"
)

// ConnectionManager keeps the container and router alive across warm
// invocations of a Lambda sandbox.
type ConnectionManager struct {
	container *server.Container
	router    *gin.Engine
	lastUsed  time.Time
	mu        sync.Mutex
	config    *config.Config
	logger    *logrus.Logger
}

// NewConnectionManager creates a manager. A nil config is loaded from the
// environment on first use.
func NewConnectionManager(cfg *config.Config, logger *logrus.Logger) *ConnectionManager {
	return &ConnectionManager{config: cfg, logger: logger}
}

// GetContainer returns the container, initializing it on first use
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if err := cm.initialize(ctx); err != nil {
		return nil, err
	}
	cm.lastUsed = time.Now()
	return cm.container, nil
}

func (cm *ConnectionManager) initialize(ctx context.Context) error {
	if cm.container != nil {
		return nil
	}

	if cm.config == nil {
		cfg, err := config.GetOptimizedConfig()
		if err != nil {
			return err
		}
		cm.config = cfg
	}
	if cm.logger == nil {
		cm.logger = config.NewLogger(cm.config)
	}

	if cm.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	container, err := server.NewContainer(ctx, cm.config, cm.logger)
	if err != nil {
		return err
	}

	cm.container = container
	cm.router = container.Router()

	runtime := config.GetServerlessConfig()
	cm.logger.WithFields(logrus.Fields{
		"function": runtime.FunctionName,
		"region":   runtime.Region,
		"stage":    runtime.Stage,
		"database": cm.config.Database.ConnectionString,
	}).Info("Lambda container initialized")
	return nil
}

// Handle serves one API Gateway proxy event through the gin router.
func (cm *ConnectionManager) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if _, err := cm.GetContainer(ctx); err != nil {
		if cm.logger != nil {
			cm.logger.WithError(err).Error("Failed to initialize container")
		}
		return internalError(), nil
	}

	req, err := FromAPIGateway(event)
	if err != nil {
		cm.logger.WithError(err).Warn("Rejected malformed event")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"message":"Invalid request body"}`,
		}, nil
	}

	resp, err := Serve(ctx, cm.router, req)
	if err != nil {
		cm.logger.WithError(err).Error("Failed to serve event")
		return internalError(), nil
	}

	return resp.ToAPIGateway(), nil
}

// IsHealthy reports whether the container is initialized and was used in
// the last five minutes
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return false
	}
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup closes the container
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
		cm.router = nil
	}
	return nil
}

func internalError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"success":false,"message":"Internal server error"}`,
	}
}
