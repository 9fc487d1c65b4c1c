package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

// commissionProfileService implements the CommissionProfileService interface
type commissionProfileService struct {
	profileRepo   repositories.CommissionProfileRepository
	personnelRepo repositories.PersonnelRepository
	validator     *validator.Validate
	logger        *logrus.Logger
}

// NewCommissionProfileService creates a new commission profile service instance
func NewCommissionProfileService(
	profileRepo repositories.CommissionProfileRepository,
	personnelRepo repositories.PersonnelRepository,
	logger *logrus.Logger,
) CommissionProfileService {
	if logger == nil {
		logger = logrus.New()
	}
	return &commissionProfileService{
		profileRepo:   profileRepo,
		personnelRepo: personnelRepo,
		validator:     newValidator(),
		logger:        logger,
	}
}

// CreateCommissionProfile creates a new commission profile
func (s *commissionProfileService) CreateCommissionProfile(ctx context.Context, req *CommissionProfileRequest) (*models.CommissionProfile, error) {
	if req == nil {
		return nil, fmt.Errorf("create commission profile request cannot be nil")
	}

	profile, err := s.buildProfile(req)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create commission profile: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"commission_profile_id": profile.ID,
		"profile_name":          profile.ProfileName,
	}).Info("Commission profile created")

	return profile, nil
}

// GetCommissionProfile retrieves a commission profile by ID
func (s *commissionProfileService) GetCommissionProfile(ctx context.Context, id int64) (*models.CommissionProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get commission profile: %w", err)
	}
	return profile, nil
}

// UpdateCommissionProfile replaces the profile's values
func (s *commissionProfileService) UpdateCommissionProfile(ctx context.Context, id int64, req *CommissionProfileRequest) (*models.CommissionProfile, error) {
	if req == nil {
		return nil, fmt.Errorf("update commission profile request cannot be nil")
	}

	updated, err := s.buildProfile(req)
	if err != nil {
		return nil, err
	}

	profile, err := s.GetCommissionProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.ProfileName = updated.ProfileName
	profile.CommissionFixed = updated.CommissionFixed
	profile.CommissionPercentage = updated.CommissionPercentage

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update commission profile: %w", err)
	}

	return profile, nil
}

// DeleteCommissionProfile deletes a profile that no personnel references
func (s *commissionProfileService) DeleteCommissionProfile(ctx context.Context, id int64) error {
	exists, err := s.profileRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check commission profile: %w", err)
	}
	if !exists {
		return repositories.NotFoundError(repositories.EntityCommissionProfile, id)
	}

	references, err := s.personnelRepo.CountByCommissionProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count personnel for commission profile: %w", err)
	}
	if references > 0 {
		s.logger.WithFields(logrus.Fields{
			"commission_profile_id": id,
			"references":            references,
		}).Warn("Attempt to delete commission profile with personnel references")
		return newBusinessRuleError("Cannot delete commission profile that is referenced by personnel records")
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete commission profile: %w", err)
	}

	return nil
}

// ListCommissionProfiles returns all profiles ordered by profile name
func (s *commissionProfileService) ListCommissionProfiles(ctx context.Context) ([]*models.CommissionProfile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission profiles: %w", err)
	}
	return profiles, nil
}

func (s *commissionProfileService) buildProfile(req *CommissionProfileRequest) (*models.CommissionProfile, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	profile := models.NewCommissionProfile(*req.ProfileName, *req.CommissionFixed, *req.CommissionPercentage)
	if err := modelValidationError(profile.Validate()); err != nil {
		return nil, err
	}

	return profile, nil
}
