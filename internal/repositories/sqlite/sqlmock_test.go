package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
)

func TestCommissionProfileRepository_List_StoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM commission_profiles ORDER BY profile_name").
		WillReturnError(errors.New("disk I/O error"))

	repo := NewCommissionProfileRepository(db, testLogger())
	_, err = repo.List(context.Background())

	require.Error(t, err)
	var repoErr *repositories.RepositoryError
	require.True(t, errors.As(err, &repoErr))
	assert.Equal(t, "list", repoErr.Op)
	assert.Equal(t, repositories.EntityCommissionProfile, repoErr.Entity)
	assert.False(t, repositories.IsNotFound(err))
	assert.False(t, repositories.IsConstraint(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommissionProfileRepository_GetByID_Scans(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "profile_name", "commission_fixed", "commission_percentage", "created_at", "updated_at"}).
		AddRow(int64(7), 2, "750.00", "0.03", now, now)
	mock.ExpectQuery("SELECT (.+) FROM commission_profiles WHERE id = ?").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	repo := NewCommissionProfileRepository(db, testLogger())
	profile, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, 2, profile.ProfileName)
	assert.Equal(t, "750", profile.CommissionFixed.String())
	assert.Equal(t, "0.03", profile.CommissionPercentage.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sales s").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "personnel_id", "report_date", "sales_amount", "created_at", "name"}))

	repo := NewSalesRepository(db, testLogger())
	_, err = repo.GetByID(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, repositories.IsNotFound(err))
	assert.Equal(t, "Sales record with ID 5 not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_List_BuildsFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := models.NewDate(2025, time.July, 1)
	to := models.NewDate(2025, time.July, 31)
	rows := sqlmock.NewRows([]string{"id", "personnel_id", "report_date", "sales_amount", "created_at", "name"}).
		AddRow(int64(1), int64(3), "2025-07-15", "1250.00", time.Now(), "John Smith")

	mock.ExpectQuery(`WHERE s.personnel_id = \? AND s.report_date >= \? AND s.report_date <= \? ORDER BY s.report_date ASC, s.id ASC`).
		WithArgs(int64(3), "2025-07-01", "2025-07-31").
		WillReturnRows(rows)

	repo := NewSalesRepository(db, testLogger())
	personnelID := int64(3)
	sales, err := repo.List(context.Background(), models.SalesFilter{
		PersonnelID: &personnelID,
		From:        &from,
		To:          &to,
		Ascending:   true,
	})

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "2025-07-15", sales[0].ReportDate.String())
	assert.Equal(t, "John Smith", sales[0].PersonnelName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseRepository_InvalidID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonnelRepository(db, testLogger())
	err = repo.Delete(context.Background(), 0)

	assert.ErrorIs(t, err, repositories.ErrInvalidID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseRepository_ClassifiesConstraints(t *testing.T) {
	tests := []struct {
		name     string
		extended sqlite3.ErrNoExtended
		want     repositories.ConstraintKind
	}{
		{"foreign key", sqlite3.ErrConstraintForeignKey, repositories.ConstraintForeignKey},
		{"unique", sqlite3.ErrConstraintUnique, repositories.ConstraintUnique},
		{"check", sqlite3.ErrConstraintCheck, repositories.ConstraintCheck},
		{"trigger", sqlite3.ErrConstraintTrigger, repositories.ConstraintOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec("DELETE FROM commission_profiles WHERE id = ?").
				WithArgs(int64(3)).
				WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: tt.extended})

			repo := NewCommissionProfileRepository(db, testLogger())
			err = repo.Delete(context.Background(), 3)

			require.Error(t, err)
			assert.True(t, repositories.IsConstraint(err))
			assert.Equal(t, tt.want, repositories.ConstraintOf(err))
			assert.Contains(t, err.Error(), string(tt.want))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
