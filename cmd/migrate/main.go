package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/config"
	"commission-reporting-api/internal/database"
	"commission-reporting-api/internal/fixtures"
	"commission-reporting-api/internal/repositories/sqlite"
	"commission-reporting-api/internal/services"
)

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("DB_CONNECTION_STRING", config.DefaultDatabasePath), "Database file path")
		action  = flag.String("action", "up", "Migration action: up, down, status, validate, seed, backup")
		output  = flag.String("out", "", "Backup file path (backup action only)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  *action,
	}).Info("Starting migration tool")

	ctx := context.Background()
	migrations := database.NewMigrationManager(absDBPath, logger)

	switch *action {
	case "up":
		if err := migrations.WithBackup().RunMigrations(ctx); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := migrations.WithBackup().RollbackMigration(ctx); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "status":
		if err := showMigrationStatus(ctx, migrations); err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
	case "validate":
		if err := validateSchema(ctx, absDBPath, logger); err != nil {
			logger.WithError(err).Fatal("Schema validation failed")
		}
	case "seed":
		if err := seed(ctx, absDBPath, logger); err != nil {
			logger.WithError(err).Fatal("Seeding failed")
		}
	case "backup":
		if err := backup(ctx, absDBPath, *output, logger); err != nil {
			logger.WithError(err).Fatal("Backup failed")
		}
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, status, validate, seed, backup")
	}

	logger.Info("Migration tool completed successfully")
}

func showMigrationStatus(ctx context.Context, migrations *database.MigrationManager) error {
	status, err := migrations.GetMigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	fmt.Printf("Migration Status:\n")
	fmt.Printf("  Version: %d\n", status.Version)
	fmt.Printf("  Applied: %t\n", status.Applied)
	fmt.Printf("  Dirty: %t\n", status.Dirty)
	fmt.Printf("  Timestamp: %s\n", status.Timestamp.Format("2006-01-02 15:04:05"))

	return nil
}

func validateSchema(ctx context.Context, dbPath string, logger *logrus.Logger) error {
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.ValidateSchema(ctx, db, logger); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	fmt.Println("Schema validation passed successfully")
	return nil
}

func connect(ctx context.Context, dbPath string, logger *logrus.Logger) (*database.ConnectionManager, error) {
	cm := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath:    dbPath,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		AutoMigrate:     true,
		Logger:          logger,
	})
	if err := cm.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cm, nil
}

func seed(ctx context.Context, dbPath string, logger *logrus.Logger) error {
	cm, err := connect(ctx, dbPath, logger)
	if err != nil {
		return err
	}
	defer cm.Close()

	repos := sqlite.NewSQLiteRepositoryManager(cm.GetDB(), logger)
	svc, err := services.NewServiceContainer(repos, &services.ServiceConfig{Logger: logger})
	if err != nil {
		return err
	}

	result, err := fixtures.Load(ctx, svc, logger)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Println("Database already holds data; fixtures skipped")
		return nil
	}
	fmt.Printf("Seeded %d commission profiles, %d personnel and %d sales records\n",
		result.Profiles, result.Personnel, result.Sales)
	return nil
}

func backup(ctx context.Context, dbPath, output string, logger *logrus.Logger) error {
	if output == "" {
		output = fmt.Sprintf("%s.backup_%s", dbPath, time.Now().Format("20060102_150405"))
	}

	cm, err := connect(ctx, dbPath, logger)
	if err != nil {
		return err
	}
	defer cm.Close()

	if err := cm.Backup(ctx, output); err != nil {
		return err
	}

	fmt.Printf("Backup written to %s\n", output)
	return nil
}
