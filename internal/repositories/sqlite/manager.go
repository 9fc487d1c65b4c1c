package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/repositories"
)

// SQLiteRepositoryManager implements the RepositoryManager interface for SQLite
type SQLiteRepositoryManager struct {
	db                    *sql.DB
	logger                *logrus.Logger
	commissionProfileRepo repositories.CommissionProfileRepository
	personnelRepo         repositories.PersonnelRepository
	salesRepo             repositories.SalesRepository
}

// NewSQLiteRepositoryManager creates a repository manager over an open
// database connection
func NewSQLiteRepositoryManager(db *sql.DB, logger *logrus.Logger) repositories.RepositoryManager {
	if logger == nil {
		logger = logrus.New()
	}

	return &SQLiteRepositoryManager{
		db:                    db,
		logger:                logger,
		commissionProfileRepo: NewCommissionProfileRepository(db, logger),
		personnelRepo:         NewPersonnelRepository(db, logger),
		salesRepo:             NewSalesRepository(db, logger),
	}
}

// CommissionProfiles returns the commission profile repository
func (m *SQLiteRepositoryManager) CommissionProfiles() repositories.CommissionProfileRepository {
	return m.commissionProfileRepo
}

// Personnel returns the personnel repository
func (m *SQLiteRepositoryManager) Personnel() repositories.PersonnelRepository {
	return m.personnelRepo
}

// Sales returns the sales repository
func (m *SQLiteRepositoryManager) Sales() repositories.SalesRepository {
	return m.salesRepo
}

// Close closes all repository connections
func (m *SQLiteRepositoryManager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// Health checks the health of the repository connections
func (m *SQLiteRepositoryManager) Health(ctx context.Context) error {
	if m.db == nil {
		return repositories.ConnectionError(repositories.ErrConnection)
	}

	if err := m.db.PingContext(ctx); err != nil {
		return repositories.ConnectionError(err)
	}

	var result int
	if err := m.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return repositories.ConnectionError(err)
	}

	return nil
}
