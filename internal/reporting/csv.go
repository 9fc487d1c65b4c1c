package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Report names used in export filenames and routes.
const (
	ManagementOverviewReport = "management-overview"
	CommissionPayoutReport   = "commission-payout"
)

// CSVFilename returns "{report}-{year}-{month:02}.csv".
func CSVFilename(report string, p Period) string {
	return fmt.Sprintf("%s-%d-%02d.csv", report, p.Year, int(p.Month))
}

// WriteManagementOverviewCSV renders the overview as a two-section document.
func WriteManagementOverviewCSV(w io.Writer, r *ManagementOverview) error {
	s := r.Summary
	records := [][]string{
		{fmt.Sprintf("Management Overview Report - %s %d", r.ReportPeriod.MonthName, r.ReportPeriod.Year)},
		{""},
		{"Summary"},
		{"Metric", "Value"},
		{"Total Sales", FormatCurrency(s.TotalSales)},
		{"Total Transactions", strconv.Itoa(s.TotalTransactions)},
		{"Average Per Person", FormatCurrency(s.AveragePerPerson)},
		{"Days with No Sales", strconv.Itoa(s.DaysWithNoSales)},
		{"Days in Month", strconv.Itoa(s.DaysInMonth)},
		{"Active Personnel Count", strconv.FormatInt(s.ActivePersonnelCount, 10)},
		{""},
		{"Top Performers"},
		{"Rank", "Personnel Name", "Total Sales", "Transaction Count"},
	}
	for i, p := range r.TopPerformers {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			p.PersonnelName,
			FormatCurrency(p.TotalSales),
			strconv.Itoa(p.TransactionCount),
		})
	}
	return writeAll(w, records)
}

// WriteCommissionPayoutCSV renders the payout report as a two-section document.
func WriteCommissionPayoutCSV(w io.Writer, r *CommissionPayout) error {
	s := r.Summary
	records := [][]string{
		{fmt.Sprintf("Commission Payout Report - %s %d", s.ReportPeriod.MonthName, s.ReportPeriod.Year)},
		{""},
		{"Summary"},
		{"Metric", "Value"},
		{"Total Sales", FormatCurrency(s.TotalSales)},
		{"Total Fixed Commissions", FormatCurrency(s.TotalFixedCommissions)},
		{"Total Variable Commissions", FormatCurrency(s.TotalVariableCommissions)},
		{"Total Payout", FormatCurrency(s.TotalPayout)},
		{"Personnel Count", strconv.Itoa(s.PersonnelCount)},
		{""},
		{"Personnel Payouts"},
		{"Personnel Name", "Monthly Sales", "Fixed Commission", "Commission %", "Variable Commission", "Total Payout"},
	}
	for _, p := range r.PersonnelPayouts {
		records = append(records, []string{
			p.PersonnelName,
			FormatCurrency(p.MonthlySales),
			FormatCurrency(p.CommissionFixed),
			FormatPercentage(p.CommissionPercentage),
			FormatCurrency(p.CommissionVariable),
			FormatCurrency(p.TotalPayout),
		})
	}
	return writeAll(w, records)
}

// writeAll quotes fields per RFC 4180; amounts such as "$1,250.00" contain the
// delimiter.
func writeAll(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
