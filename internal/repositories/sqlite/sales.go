package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

const salesSelect = `
	SELECT s.id, s.personnel_id, s.report_date, s.sales_amount, s.created_at, p.name
	FROM sales s
	JOIN personnel p ON p.id = s.personnel_id`

// SalesRepository implements the SalesRepository interface for SQLite
type SalesRepository struct {
	*BaseRepository[models.SalesRecord]
}

// NewSalesRepository creates a new SQLite sales repository
func NewSalesRepository(db *sql.DB, logger *logrus.Logger) repositories.SalesRepository {
	return &SalesRepository{
		BaseRepository: NewBaseRepository[models.SalesRecord](db, "sales", repositories.EntitySalesRecord, logger),
	}
}

// Create creates a new sales record
func (r *SalesRepository) Create(ctx context.Context, sale *models.SalesRecord) error {
	sale.SalesAmount = sale.SalesAmount.Round(models.MoneyPlaces)
	if err := sale.Validate(); err != nil {
		return repositories.ValidationError(r.entity, sale.ID, err)
	}

	query := `
		INSERT INTO sales (personnel_id, report_date, sales_amount, created_at)
		VALUES (?, ?, ?, ?)`

	result, err := r.executeExec(ctx, "create", query,
		sale.PersonnelID,
		sale.ReportDate,
		sale.SalesAmount,
		sale.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := r.insertedID(result)
	if err != nil {
		return err
	}
	sale.ID = id

	return nil
}

// GetByID retrieves a sales record by ID
func (r *SalesRepository) GetByID(ctx context.Context, id int64) (*models.SalesRecord, error) {
	if err := r.validateID("get_by_id", id); err != nil {
		return nil, err
	}

	query := salesSelect + ` WHERE s.id = ?`

	sale, err := scanSale(r.executeQueryRow(ctx, "get_by_id", query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.entity, id)
		}
		return nil, r.wrapError("get_by_id", id, err)
	}

	return sale, nil
}

// List returns sales matching filter. Results are newest first unless
// filter.Ascending is set.
func (r *SalesRepository) List(ctx context.Context, filter models.SalesFilter) ([]*models.SalesRecord, error) {
	var conditions []string
	var args []interface{}

	if filter.PersonnelID != nil {
		conditions = append(conditions, "s.personnel_id = ?")
		args = append(args, *filter.PersonnelID)
	}
	if filter.From != nil {
		conditions = append(conditions, "s.report_date >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "s.report_date <= ?")
		args = append(args, *filter.To)
	}

	query := salesSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.Ascending {
		query += " ORDER BY s.report_date ASC, s.id ASC"
	} else {
		query += " ORDER BY s.report_date DESC, s.id DESC"
	}

	rows, err := r.executeQuery(ctx, "list", query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]*models.SalesRecord, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, r.wrapError("list", 0, err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrapError("list", 0, err)
	}

	return sales, nil
}

func scanSale(row rowScanner) (*models.SalesRecord, error) {
	sale := &models.SalesRecord{}
	err := row.Scan(
		&sale.ID,
		&sale.PersonnelID,
		&sale.ReportDate,
		&sale.SalesAmount,
		&sale.CreatedAt,
		&sale.PersonnelName,
	)
	if err != nil {
		return nil, err
	}
	return sale, nil
}
