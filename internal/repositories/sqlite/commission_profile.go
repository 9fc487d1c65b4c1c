package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

const commissionProfileColumns = `id, profile_name, commission_fixed, commission_percentage, created_at, updated_at`

// CommissionProfileRepository implements the CommissionProfileRepository interface for SQLite
type CommissionProfileRepository struct {
	*BaseRepository[models.CommissionProfile]
}

// NewCommissionProfileRepository creates a new SQLite commission profile repository
func NewCommissionProfileRepository(db *sql.DB, logger *logrus.Logger) repositories.CommissionProfileRepository {
	return &CommissionProfileRepository{
		BaseRepository: NewBaseRepository[models.CommissionProfile](db, "commission_profiles", repositories.EntityCommissionProfile, logger),
	}
}

// Create creates a new commission profile
func (r *CommissionProfileRepository) Create(ctx context.Context, profile *models.CommissionProfile) error {
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return repositories.ValidationError(r.entity, profile.ID, err)
	}

	query := `
		INSERT INTO commission_profiles (
			profile_name, commission_fixed, commission_percentage, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?)`

	result, err := r.executeExec(ctx, "create", query,
		profile.ProfileName,
		profile.CommissionFixed,
		profile.CommissionPercentage,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := r.insertedID(result)
	if err != nil {
		return err
	}
	profile.ID = id

	return nil
}

// GetByID retrieves a commission profile by ID
func (r *CommissionProfileRepository) GetByID(ctx context.Context, id int64) (*models.CommissionProfile, error) {
	if err := r.validateID("get_by_id", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + commissionProfileColumns + ` FROM commission_profiles WHERE id = ?`

	profile, err := scanCommissionProfile(r.executeQueryRow(ctx, "get_by_id", query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.entity, id)
		}
		return nil, r.wrapError("get_by_id", id, err)
	}

	return profile, nil
}

// Update updates an existing commission profile
func (r *CommissionProfileRepository) Update(ctx context.Context, profile *models.CommissionProfile) error {
	if err := r.validateID("update", profile.ID); err != nil {
		return err
	}

	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return repositories.ValidationError(r.entity, profile.ID, err)
	}

	profile.UpdateTimestamp()

	query := `
		UPDATE commission_profiles
		SET profile_name = ?, commission_fixed = ?, commission_percentage = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.executeExec(ctx, "update", query,
		profile.ProfileName,
		profile.CommissionFixed,
		profile.CommissionPercentage,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return err
	}

	return r.checkRowsAffected(result, "update", profile.ID)
}

// List returns every profile ordered by profile name
func (r *CommissionProfileRepository) List(ctx context.Context) ([]*models.CommissionProfile, error) {
	query := `SELECT ` + commissionProfileColumns + ` FROM commission_profiles ORDER BY profile_name, id`

	rows, err := r.executeQuery(ctx, "list", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*models.CommissionProfile, 0)
	for rows.Next() {
		profile, err := scanCommissionProfile(rows)
		if err != nil {
			return nil, r.wrapError("list", 0, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrapError("list", 0, err)
	}

	return profiles, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCommissionProfile(row rowScanner) (*models.CommissionProfile, error) {
	profile := &models.CommissionProfile{}
	err := row.Scan(
		&profile.ID,
		&profile.ProfileName,
		&profile.CommissionFixed,
		&profile.CommissionPercentage,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
