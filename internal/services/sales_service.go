package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

// salesService implements the SalesService interface
type salesService struct {
	salesRepo     repositories.SalesRepository
	personnelRepo repositories.PersonnelRepository
	validator     *validator.Validate
	clock         Clock
	logger        *logrus.Logger
}

// NewSalesService creates a new sales service instance. A nil clock uses
// time.Now.
func NewSalesService(
	salesRepo repositories.SalesRepository,
	personnelRepo repositories.PersonnelRepository,
	clock Clock,
	logger *logrus.Logger,
) SalesService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &salesService{
		salesRepo:     salesRepo,
		personnelRepo: personnelRepo,
		validator:     newValidator(),
		clock:         clock,
		logger:        logger,
	}
}

// CreateSale records a sales figure for an existing person
func (s *salesService) CreateSale(ctx context.Context, req *SaleRequest) (*models.SalesRecord, error) {
	if req == nil {
		return nil, fmt.Errorf("create sale request cannot be nil")
	}

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	sale := models.NewSalesRecord(req.PersonnelID, *req.ReportDate, *req.SalesAmount)
	if err := modelValidationError(sale.Validate()); err != nil {
		return nil, err
	}

	if sale.ReportDate.After(models.DateOf(s.clock())) {
		return nil, newBusinessRuleError("Report date cannot be in the future")
	}

	exists, err := s.personnelRepo.Exists(ctx, sale.PersonnelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check personnel: %w", err)
	}
	if !exists {
		return nil, newBusinessRuleError("Personnel with ID %d does not exist", sale.PersonnelID)
	}

	if err := s.salesRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"sale_id":      sale.ID,
		"personnel_id": sale.PersonnelID,
		"report_date":  sale.ReportDate.String(),
	}).Info("Sales record created")

	return s.GetSale(ctx, sale.ID)
}

// GetSale retrieves a sales record by ID
func (s *salesService) GetSale(ctx context.Context, id int64) (*models.SalesRecord, error) {
	sale, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale, nil
}

// DeleteSale deletes a sales record
func (s *salesService) DeleteSale(ctx context.Context, id int64) error {
	if err := s.salesRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}

// ListSales returns sales newest first
func (s *salesService) ListSales(ctx context.Context, filters *SalesFilters) ([]*models.SalesRecord, error) {
	var filter models.SalesFilter
	if filters != nil {
		filter.PersonnelID = filters.PersonnelID
		filter.From = filters.From
		filter.To = filters.To
	}

	sales, err := s.salesRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
