package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/config"
	"commission-reporting-api/internal/fixtures"
	"commission-reporting-api/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	cfg.Database.AutoMigrate = true
	cfg.SeedFixtures = false

	logger := config.NewLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	container, err := server.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize application")
	}
	defer container.Close()

	result, err := fixtures.Load(ctx, container.Services, logger)
	if err != nil {
		logger.WithError(err).Error("Seeding failed")
		container.Close()
		os.Exit(1)
	}

	if result.Skipped {
		fmt.Printf("%s already holds data; fixtures skipped\n", cfg.Database.ConnectionString)
		return
	}
	fmt.Printf("Seeded %d commission profiles, %d personnel and %d sales records into %s\n",
		result.Profiles, result.Personnel, result.Sales, cfg.Database.ConnectionString)
}
