package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	CommissionProfileService CommissionProfileService
	PersonnelService         PersonnelService
	SalesService             SalesService
	ReportService            ReportService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	// Clock decides "today" for sales dates and the default report month.
	Clock  Clock
	Logger *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos repositories.RepositoryManager, config *ServiceConfig) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository manager cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.Logger == nil {
		config.Logger = logrus.New()
	}

	return &ServiceContainer{
		CommissionProfileService: NewCommissionProfileService(repos.CommissionProfiles(), repos.Personnel(), config.Logger),
		PersonnelService:         NewPersonnelService(repos.Personnel(), repos.CommissionProfiles(), config.Logger),
		SalesService:             NewSalesService(repos.Sales(), repos.Personnel(), config.Clock, config.Logger),
		ReportService:            NewReportService(repos.Personnel(), repos.Sales(), config.Clock, config.Logger),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.CommissionProfileService == nil {
		return fmt.Errorf("commission profile service is nil")
	}
	if sc.PersonnelService == nil {
		return fmt.Errorf("personnel service is nil")
	}
	if sc.SalesService == nil {
		return fmt.Errorf("sales service is nil")
	}
	if sc.ReportService == nil {
		return fmt.Errorf("report service is nil")
	}

	return nil
}
