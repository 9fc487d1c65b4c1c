package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

// personnelService implements the PersonnelService interface
type personnelService struct {
	personnelRepo repositories.PersonnelRepository
	profileRepo   repositories.CommissionProfileRepository
	validator     *validator.Validate
	logger        *logrus.Logger
}

// NewPersonnelService creates a new personnel service instance
func NewPersonnelService(
	personnelRepo repositories.PersonnelRepository,
	profileRepo repositories.CommissionProfileRepository,
	logger *logrus.Logger,
) PersonnelService {
	if logger == nil {
		logger = logrus.New()
	}
	return &personnelService{
		personnelRepo: personnelRepo,
		profileRepo:   profileRepo,
		validator:     newValidator(),
		logger:        logger,
	}
}

// CreatePersonnel creates a new personnel record
func (s *personnelService) CreatePersonnel(ctx context.Context, req *PersonnelRequest) (*models.Personnel, error) {
	if req == nil {
		return nil, fmt.Errorf("create personnel request cannot be nil")
	}

	personnel, err := s.buildPersonnel(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.personnelRepo.Create(ctx, personnel); err != nil {
		return nil, fmt.Errorf("failed to create personnel: %w", err)
	}

	s.logger.WithField("personnel_id", personnel.ID).Info("Personnel created")

	return s.GetPersonnel(ctx, personnel.ID)
}

// GetPersonnel retrieves a personnel record with its commission profile
func (s *personnelService) GetPersonnel(ctx context.Context, id int64) (*models.Personnel, error) {
	personnel, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	return personnel, nil
}

// UpdatePersonnel replaces the mutable fields of an existing record
func (s *personnelService) UpdatePersonnel(ctx context.Context, id int64, req *PersonnelRequest) (*models.Personnel, error) {
	if req == nil {
		return nil, fmt.Errorf("update personnel request cannot be nil")
	}

	updated, err := s.buildPersonnel(ctx, req)
	if err != nil {
		return nil, err
	}

	personnel, err := s.GetPersonnel(ctx, id)
	if err != nil {
		return nil, err
	}

	personnel.Name = updated.Name
	personnel.Age = updated.Age
	personnel.Phone = updated.Phone
	personnel.CommissionProfileID = updated.CommissionProfileID
	personnel.BankName = updated.BankName
	personnel.BankAccountNo = updated.BankAccountNo

	if err := s.personnelRepo.Update(ctx, personnel); err != nil {
		return nil, fmt.Errorf("failed to update personnel: %w", err)
	}

	return s.GetPersonnel(ctx, id)
}

// DeletePersonnel deletes a personnel record; the store cascades to sales
func (s *personnelService) DeletePersonnel(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		return newBusinessRuleError("Delete confirmation required. Add ?confirm=true to the request.")
	}

	if err := s.personnelRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}

	s.logger.WithField("personnel_id", id).Info("Personnel deleted with associated sales")
	return nil
}

// ListPersonnel returns personnel ordered by ID
func (s *personnelService) ListPersonnel(ctx context.Context, filters *PersonnelFilters) ([]*models.Personnel, error) {
	var filter models.PersonnelFilter
	if filters != nil {
		filter.ID = filters.ID
	}

	personnel, err := s.personnelRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	return personnel, nil
}

// buildPersonnel validates req and returns the normalized record. Field
// failures and an unknown commission profile are reported together.
func (s *personnelService) buildPersonnel(ctx context.Context, req *PersonnelRequest) (*models.Personnel, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	personnel := models.NewPersonnel(req.Name, *req.Age, req.Phone, req.CommissionProfileID)
	personnel.BankName = req.BankName
	personnel.BankAccountNo = req.BankAccountNo
	personnel.Normalize()

	var extra []string
	if personnel.CommissionProfileID > 0 {
		exists, err := s.profileRepo.Exists(ctx, personnel.CommissionProfileID)
		if err != nil {
			return nil, fmt.Errorf("failed to check commission profile: %w", err)
		}
		if !exists {
			extra = append(extra, fmt.Sprintf("Commission profile with ID %d does not exist", personnel.CommissionProfileID))
		}
	}

	if err := modelValidationError(personnel.Validate(), extra...); err != nil {
		return nil, err
	}

	return personnel, nil
}
