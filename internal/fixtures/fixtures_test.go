package fixtures

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commission-reporting-api/internal/database"
	"commission-reporting-api/internal/repositories/sqlite"
	"commission-reporting-api/internal/services"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	dbPath := filepath.Join(t.TempDir(), "fixtures.db")
	require.NoError(t, database.NewMigrationManager(dbPath, logger).RunMigrations(ctx))
	db, err := database.Open(ctx, dbPath)
	require.NoError(t, err)
	repos := sqlite.NewSQLiteRepositoryManager(db, logger)
	defer repos.Close()

	svc, err := services.NewServiceContainer(repos, &services.ServiceConfig{
		Clock:  func() time.Time { return time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC) },
		Logger: logger,
	})
	require.NoError(t, err)

	result, err := Load(ctx, svc, logger)
	require.NoError(t, err)
	assert.Equal(t, &Result{Profiles: 3, Personnel: 5, Sales: 5}, result)

	people, err := svc.PersonnelService.ListPersonnel(ctx, nil)
	require.NoError(t, err)
	require.Len(t, people, 5)
	assert.Equal(t, "Emily Davis", people[3].Name)
	assert.Equal(t, 3, people[3].CommissionProfile.ProfileName)

	again, err := Load(ctx, svc, logger)
	require.NoError(t, err)
	assert.True(t, again.Skipped)

	count, err := repos.Sales().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
