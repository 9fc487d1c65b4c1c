package repositories

import (
	"context"

	"commission-reporting-api/internal/models"
)

// BaseRepository defines common operations for all repositories
type BaseRepository[T any] interface {
	// Create inserts the entity and sets its ID
	Create(ctx context.Context, entity *T) error

	// GetByID retrieves an entity by its ID
	GetByID(ctx context.Context, id int64) (*T, error)

	// Delete deletes an entity by its ID
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of entities
	Count(ctx context.Context) (int64, error)

	// Exists checks if an entity with the given ID exists
	Exists(ctx context.Context, id int64) (bool, error)
}

// CommissionProfileRepository defines operations for commission profiles
type CommissionProfileRepository interface {
	BaseRepository[models.CommissionProfile]

	// Update overwrites the stored profile
	Update(ctx context.Context, profile *models.CommissionProfile) error

	// List returns every profile ordered by profile name
	List(ctx context.Context) ([]*models.CommissionProfile, error)
}

// PersonnelRepository defines operations for personnel records
type PersonnelRepository interface {
	BaseRepository[models.Personnel]

	// Update overwrites the stored record
	Update(ctx context.Context, personnel *models.Personnel) error

	// List returns personnel ordered by ID with their commission profile
	// attached
	List(ctx context.Context, filter models.PersonnelFilter) ([]*models.Personnel, error)

	// CountByCommissionProfile counts personnel assigned to a profile
	CountByCommissionProfile(ctx context.Context, profileID int64) (int64, error)
}

// SalesRepository defines operations for sales records
type SalesRepository interface {
	BaseRepository[models.SalesRecord]

	// List returns sales matching filter with the personnel name attached
	List(ctx context.Context, filter models.SalesFilter) ([]*models.SalesRecord, error)
}

// RepositoryManager provides access to all repositories
type RepositoryManager interface {
	CommissionProfiles() CommissionProfileRepository
	Personnel() PersonnelRepository
	Sales() SalesRepository

	// Close closes all repository connections
	Close() error

	// Health checks the health of the repository connections
	Health(ctx context.Context) error
}
