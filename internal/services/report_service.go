package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/reporting"
	"commission-reporting-api/internal/repositories"
)

// reportService implements the ReportService interface
type reportService struct {
	personnelRepo repositories.PersonnelRepository
	salesRepo     repositories.SalesRepository
	clock         Clock
	logger        *logrus.Logger
}

// NewReportService creates a new report service instance. A nil clock uses
// time.Now.
func NewReportService(
	personnelRepo repositories.PersonnelRepository,
	salesRepo repositories.SalesRepository,
	clock Clock,
	logger *logrus.Logger,
) ReportService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &reportService{
		personnelRepo: personnelRepo,
		salesRepo:     salesRepo,
		clock:         clock,
		logger:        logger,
	}
}

// ManagementOverview summarises one month of sales. The average per person
// always divides by the number of personnel on record, even when the request
// is narrowed to one person.
func (s *reportService) ManagementOverview(ctx context.Context, req *ReportRequest) (*reporting.ManagementOverview, error) {
	period, err := s.ResolvePeriod(req)
	if err != nil {
		return nil, err
	}

	personnelCount, err := s.personnelRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count personnel: %w", err)
	}

	entries, err := s.monthSales(ctx, period, personnelFilter(req))
	if err != nil {
		return nil, err
	}

	report := reporting.BuildManagementOverview(period, entries, personnelCount)

	s.logger.WithFields(logrus.Fields{
		"period":       period.String(),
		"transactions": report.Summary.TotalTransactions,
	}).Debug("Management overview generated")

	return report, nil
}

// CommissionPayout computes what every matching person is owed for the month.
func (s *reportService) CommissionPayout(ctx context.Context, req *ReportRequest) (*reporting.CommissionPayout, error) {
	period, err := s.ResolvePeriod(req)
	if err != nil {
		return nil, err
	}

	personnelID := personnelFilter(req)
	personnel, err := s.personnelRepo.List(ctx, models.PersonnelFilter{ID: personnelID})
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}

	inputs := make([]reporting.PayoutInput, 0, len(personnel))
	for _, p := range personnel {
		if p.CommissionProfile == nil {
			return nil, fmt.Errorf("personnel %d has no commission profile loaded", p.ID)
		}
		inputs = append(inputs, reporting.PayoutInput{
			PersonnelID:          p.ID,
			PersonnelName:        p.Name,
			CommissionFixed:      p.CommissionProfile.CommissionFixed,
			CommissionPercentage: p.CommissionProfile.CommissionPercentage,
		})
	}

	entries, err := s.monthSales(ctx, period, personnelID)
	if err != nil {
		return nil, err
	}

	report := reporting.BuildCommissionPayout(period, inputs, entries)

	s.logger.WithFields(logrus.Fields{
		"period":    period.String(),
		"personnel": report.Summary.PersonnelCount,
	}).Debug("Commission payout generated")

	return report, nil
}

// ResolvePeriod applies the current-month defaults and range checks.
func (s *reportService) ResolvePeriod(req *ReportRequest) (reporting.Period, error) {
	current := reporting.PeriodOf(s.clock())
	if req == nil {
		return current, nil
	}

	year, month := current.Year, int(current.Month)
	if req.Year != nil {
		year = *req.Year
	}
	if req.Month != nil {
		month = *req.Month
	}

	var messages []string
	if month < 1 || month > 12 {
		messages = append(messages, "Month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		messages = append(messages, "Year must be between 1 and 9999")
	}
	if len(messages) > 0 {
		return reporting.Period{}, &ValidationError{Messages: messages}
	}

	return reporting.NewPeriod(year, month)
}

// monthSales loads the period's sales oldest first so grouping sees rows in a
// stable order.
func (s *reportService) monthSales(ctx context.Context, period reporting.Period, personnelID *int64) ([]reporting.SaleEntry, error) {
	from, to := period.Start(), period.End()
	sales, err := s.salesRepo.List(ctx, models.SalesFilter{
		PersonnelID: personnelID,
		From:        &from,
		To:          &to,
		Ascending:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for %s: %w", period, err)
	}

	entries := make([]reporting.SaleEntry, 0, len(sales))
	for _, sale := range sales {
		entries = append(entries, reporting.SaleEntry{
			PersonnelID:   sale.PersonnelID,
			PersonnelName: sale.PersonnelName,
			ReportDate:    sale.ReportDate,
			Amount:        sale.SalesAmount,
		})
	}
	return entries, nil
}

func personnelFilter(req *ReportRequest) *int64 {
	if req == nil {
		return nil
	}
	return req.PersonnelID
}
