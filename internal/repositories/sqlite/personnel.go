package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

const personnelSelect = `
	SELECT p.id, p.name, p.age, p.phone, p.commission_profile_id,
		   p.bank_name, p.bank_account_no, p.created_at, p.updated_at,
		   c.id, c.profile_name, c.commission_fixed, c.commission_percentage,
		   c.created_at, c.updated_at
	FROM personnel p
	JOIN commission_profiles c ON c.id = p.commission_profile_id`

// PersonnelRepository implements the PersonnelRepository interface for SQLite
type PersonnelRepository struct {
	*BaseRepository[models.Personnel]
}

// NewPersonnelRepository creates a new SQLite personnel repository
func NewPersonnelRepository(db *sql.DB, logger *logrus.Logger) repositories.PersonnelRepository {
	return &PersonnelRepository{
		BaseRepository: NewBaseRepository[models.Personnel](db, "personnel", repositories.EntityPersonnel, logger),
	}
}

// Create creates a new personnel record
func (r *PersonnelRepository) Create(ctx context.Context, personnel *models.Personnel) error {
	personnel.Normalize()
	if err := personnel.Validate(); err != nil {
		return repositories.ValidationError(r.entity, personnel.ID, err)
	}

	query := `
		INSERT INTO personnel (
			name, age, phone, commission_profile_id, bank_name, bank_account_no,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.executeExec(ctx, "create", query,
		personnel.Name,
		personnel.Age,
		personnel.Phone,
		personnel.CommissionProfileID,
		personnel.BankName,
		personnel.BankAccountNo,
		personnel.CreatedAt,
		personnel.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := r.insertedID(result)
	if err != nil {
		return err
	}
	personnel.ID = id

	return nil
}

// GetByID retrieves a personnel record with its commission profile
func (r *PersonnelRepository) GetByID(ctx context.Context, id int64) (*models.Personnel, error) {
	if err := r.validateID("get_by_id", id); err != nil {
		return nil, err
	}

	query := personnelSelect + ` WHERE p.id = ?`

	personnel, err := scanPersonnel(r.executeQueryRow(ctx, "get_by_id", query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.entity, id)
		}
		return nil, r.wrapError("get_by_id", id, err)
	}

	return personnel, nil
}

// Update updates an existing personnel record
func (r *PersonnelRepository) Update(ctx context.Context, personnel *models.Personnel) error {
	if err := r.validateID("update", personnel.ID); err != nil {
		return err
	}

	personnel.Normalize()
	if err := personnel.Validate(); err != nil {
		return repositories.ValidationError(r.entity, personnel.ID, err)
	}

	personnel.UpdateTimestamp()

	query := `
		UPDATE personnel
		SET name = ?, age = ?, phone = ?, commission_profile_id = ?,
			bank_name = ?, bank_account_no = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.executeExec(ctx, "update", query,
		personnel.Name,
		personnel.Age,
		personnel.Phone,
		personnel.CommissionProfileID,
		personnel.BankName,
		personnel.BankAccountNo,
		personnel.UpdatedAt,
		personnel.ID,
	)
	if err != nil {
		return err
	}

	return r.checkRowsAffected(result, "update", personnel.ID)
}

// List returns personnel ordered by ID with their commission profile
func (r *PersonnelRepository) List(ctx context.Context, filter models.PersonnelFilter) ([]*models.Personnel, error) {
	query := personnelSelect
	var args []interface{}
	if filter.ID != nil {
		query += ` WHERE p.id = ?`
		args = append(args, *filter.ID)
	}
	query += ` ORDER BY p.id`

	rows, err := r.executeQuery(ctx, "list", query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	personnel := make([]*models.Personnel, 0)
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, r.wrapError("list", 0, err)
		}
		personnel = append(personnel, p)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrapError("list", 0, err)
	}

	return personnel, nil
}

// CountByCommissionProfile counts personnel assigned to a profile
func (r *PersonnelRepository) CountByCommissionProfile(ctx context.Context, profileID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM personnel WHERE commission_profile_id = ?`

	var count int64
	if err := r.executeQueryRow(ctx, "count_by_profile", query, profileID).Scan(&count); err != nil {
		return 0, r.wrapError("count_by_profile", 0, err)
	}

	return count, nil
}

func scanPersonnel(row rowScanner) (*models.Personnel, error) {
	p := &models.Personnel{CommissionProfile: &models.CommissionProfile{}}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Phone,
		&p.CommissionProfileID,
		&p.BankName,
		&p.BankAccountNo,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CommissionProfile.ID,
		&p.CommissionProfile.ProfileName,
		&p.CommissionProfile.CommissionFixed,
		&p.CommissionProfile.CommissionPercentage,
		&p.CommissionProfile.CreatedAt,
		&p.CommissionProfile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
