// Package reporting computes the monthly management overview and commission
// payout reports and renders them as delimited text. Everything here is pure:
// callers load rows from the store and pass them in.
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"commission-reporting-api/internal/models"
)

// TopPerformerLimit caps the ranked list in the management overview.
const TopPerformerLimit = 5

// SaleEntry is one sales row joined to its personnel name.
type SaleEntry struct {
	PersonnelID   int64
	PersonnelName string
	ReportDate    models.Date
	Amount        decimal.Decimal
}

// ManagementOverview summarizes one month of sales.
type ManagementOverview struct {
	ReportPeriod  ReportPeriod    `json:"reportPeriod"`
	Summary       OverviewSummary `json:"summary"`
	TopPerformers []TopPerformer  `json:"topPerformers"`
}

// OverviewSummary holds the headline figures of a ManagementOverview.
type OverviewSummary struct {
	TotalSales           decimal.Decimal `json:"totalSales"`
	TotalTransactions    int             `json:"totalTransactions"`
	AveragePerPerson     decimal.Decimal `json:"averagePerPerson"`
	DaysWithNoSales      int             `json:"daysWithNoSales"`
	DaysInMonth          int             `json:"daysInMonth"`
	ActivePersonnelCount int64           `json:"activePersonnelCount"`
}

// TopPerformer is one ranked personnel group.
type TopPerformer struct {
	PersonnelID      int64           `json:"personnelId"`
	PersonnelName    string          `json:"personnelName"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TransactionCount int             `json:"transactionCount"`
}

// BuildManagementOverview aggregates sales for period. Entries outside the
// month are ignored. personnelCount is the number of personnel on record and
// is the divisor for AveragePerPerson even when sales were pre-filtered to a
// single person.
//
// Top performers are ordered by total sales; equal totals keep the order in
// which each person first appears in sales. The report service loads sales
// ascending by report date then sale id, so among ties the earliest seller
// ranks first.
func BuildManagementOverview(period Period, sales []SaleEntry, personnelCount int64) *ManagementOverview {
	total := decimal.Zero
	transactions := 0
	activeDays := make(map[int]struct{})

	var groups []TopPerformer
	index := make(map[int64]int)

	for _, s := range sales {
		if !period.Contains(s.ReportDate) {
			continue
		}
		total = total.Add(s.Amount)
		transactions++
		activeDays[s.ReportDate.Day()] = struct{}{}

		i, ok := index[s.PersonnelID]
		if !ok {
			i = len(groups)
			index[s.PersonnelID] = i
			groups = append(groups, TopPerformer{
				PersonnelID:   s.PersonnelID,
				PersonnelName: s.PersonnelName,
				TotalSales:    decimal.Zero,
			})
		}
		groups[i].TotalSales = groups[i].TotalSales.Add(s.Amount)
		groups[i].TransactionCount++
	}

	// Stable so equal totals keep first-seen order.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalSales.GreaterThan(groups[j].TotalSales)
	})
	if len(groups) > TopPerformerLimit {
		groups = groups[:TopPerformerLimit]
	}
	top := make([]TopPerformer, 0, len(groups))
	top = append(top, groups...)

	daysInMonth := period.DaysInMonth()

	return &ManagementOverview{
		ReportPeriod: period.describe(),
		Summary: OverviewSummary{
			TotalSales:           total,
			TotalTransactions:    transactions,
			AveragePerPerson:     AveragePerPerson(total, personnelCount),
			DaysWithNoSales:      daysInMonth - len(activeDays),
			DaysInMonth:          daysInMonth,
			ActivePersonnelCount: personnelCount,
		},
		TopPerformers: top,
	}
}

// AveragePerPerson divides total by count, rounding half away from zero to
// cents. A zero or negative count yields zero.
func AveragePerPerson(total decimal.Decimal, count int64) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(count), models.MoneyPlaces)
}
