// Package fixtures loads the demo commission profiles, personnel and July 2025
// sales through the service layer.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/services"
)

type profileFixture struct {
	name       int
	fixed      string
	percentage string
}

type personnelFixture struct {
	name          string
	age           int
	phone         string
	profileName   int
	bankName      string
	bankAccountNo string
}

type saleFixture struct {
	personnel string
	day       int
	amount    string
}

var profileFixtures = []profileFixture{
	{1, "500.00", "0.05"},
	{2, "750.00", "0.03"},
	{3, "300.00", "0.08"},
}

var personnelFixtures = []personnelFixture{
	{"John Smith", 25, "555-0101", 1, "Chase Bank", "1234567890"},
	{"Sarah Johnson", 28, "555-0102", 2, "Wells Fargo", "2345678901"},
	{"Michael Brown", 32, "555-0103", 1, "Bank of America", "3456789012"},
	{"Emily Davis", 24, "555-0104", 3, "Citibank", "4567890123"},
	{"David Wilson", 29, "555-0105", 2, "TD Bank", "5678901234"},
}

var saleFixtures = []saleFixture{
	{"John Smith", 15, "1250.00"},
	{"John Smith", 20, "980.50"},
	{"Sarah Johnson", 18, "2150.00"},
	{"Sarah Johnson", 22, "1875.50"},
	{"Michael Brown", 25, "950.00"},
}

// Result reports what Load created.
type Result struct {
	Profiles  int  `json:"profiles"`
	Personnel int  `json:"personnel"`
	Sales     int  `json:"sales"`
	Skipped   bool `json:"skipped"`
}

// Load creates the demo data. It does nothing when the store already holds
// any commission profile or personnel record.
func Load(ctx context.Context, svc *services.ServiceContainer, logger *logrus.Logger) (*Result, error) {
	if svc == nil {
		return nil, fmt.Errorf("service container cannot be nil")
	}
	if logger == nil {
		logger = logrus.New()
	}

	existingProfiles, err := svc.CommissionProfileService.ListCommissionProfiles(ctx)
	if err != nil {
		return nil, err
	}
	existingPersonnel, err := svc.PersonnelService.ListPersonnel(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(existingProfiles) > 0 || len(existingPersonnel) > 0 {
		logger.Info("Store already holds data, skipping fixtures")
		return &Result{Skipped: true}, nil
	}

	result := &Result{}

	profileIDs := make(map[int]int64, len(profileFixtures))
	for _, f := range profileFixtures {
		fixed := decimal.RequireFromString(f.fixed)
		pct := decimal.RequireFromString(f.percentage)
		name := f.name
		profile, err := svc.CommissionProfileService.CreateCommissionProfile(ctx, &services.CommissionProfileRequest{
			ProfileName:          &name,
			CommissionFixed:      &fixed,
			CommissionPercentage: &pct,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create commission profile %d: %w", f.name, err)
		}
		profileIDs[f.name] = profile.ID
		result.Profiles++
	}

	personnelIDs := make(map[string]int64, len(personnelFixtures))
	for _, f := range personnelFixtures {
		age := f.age
		bankName := f.bankName
		bankAccountNo := f.bankAccountNo
		person, err := svc.PersonnelService.CreatePersonnel(ctx, &services.PersonnelRequest{
			Name:                f.name,
			Age:                 &age,
			Phone:               f.phone,
			CommissionProfileID: profileIDs[f.profileName],
			BankName:            &bankName,
			BankAccountNo:       &bankAccountNo,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create personnel %s: %w", f.name, err)
		}
		personnelIDs[f.name] = person.ID
		result.Personnel++
	}

	for _, f := range saleFixtures {
		date := models.NewDate(2025, time.July, f.day)
		amount := decimal.RequireFromString(f.amount)
		if _, err := svc.SalesService.CreateSale(ctx, &services.SaleRequest{
			PersonnelID: personnelIDs[f.personnel],
			ReportDate:  &date,
			SalesAmount: &amount,
		}); err != nil {
			return result, fmt.Errorf("failed to create sale for %s: %w", f.personnel, err)
		}
		result.Sales++
	}

	logger.WithFields(logrus.Fields{
		"profiles":  result.Profiles,
		"personnel": result.Personnel,
		"sales":     result.Sales,
	}).Info("Demo fixtures loaded")

	return result, nil
}
