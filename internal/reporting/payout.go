package reporting

import (
	"github.com/shopspring/decimal"

	"commission-reporting-api/internal/models"
)

// PayoutInput is a personnel record joined to its commission profile.
type PayoutInput struct {
	PersonnelID          int64
	PersonnelName        string
	CommissionFixed      decimal.Decimal
	CommissionPercentage decimal.Decimal
}

// CommissionPayout lists what each person earns for a month.
type CommissionPayout struct {
	Summary          PayoutSummary     `json:"summary"`
	PersonnelPayouts []PersonnelPayout `json:"personnelPayouts"`
}

// PayoutSummary totals the per-person rows.
type PayoutSummary struct {
	ReportPeriod             MonthLabel      `json:"reportPeriod"`
	TotalSales               decimal.Decimal `json:"totalSales"`
	TotalFixedCommissions    decimal.Decimal `json:"totalFixedCommissions"`
	TotalVariableCommissions decimal.Decimal `json:"totalVariableCommissions"`
	TotalPayout              decimal.Decimal `json:"totalPayout"`
	PersonnelCount           int             `json:"personnelCount"`
}

// PersonnelPayout is one person's payout line.
type PersonnelPayout struct {
	PersonnelID          int64           `json:"personnelId"`
	PersonnelName        string          `json:"personnelName"`
	MonthlySales         decimal.Decimal `json:"monthlySales"`
	CommissionFixed      decimal.Decimal `json:"commissionFixed"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	CommissionVariable   decimal.Decimal `json:"commissionVariable"`
	TotalPayout          decimal.Decimal `json:"totalPayout"`
}

// ComputePayout returns the rounded variable commission and the total payout.
// The total is rounded from fixed + percentage*sales, not from the rounded
// variable part.
func ComputePayout(fixed, percentage, monthlySales decimal.Decimal) (variable, total decimal.Decimal) {
	raw := percentage.Mul(monthlySales)
	variable = raw.Round(models.MoneyPlaces)
	total = fixed.Add(raw).Round(models.MoneyPlaces)
	return variable, total
}

// BuildCommissionPayout produces one row per input, in input order. Sales
// outside the month or belonging to personnel not in inputs are ignored.
func BuildCommissionPayout(period Period, inputs []PayoutInput, sales []SaleEntry) *CommissionPayout {
	monthly := make(map[int64]decimal.Decimal, len(inputs))
	for _, s := range sales {
		if !period.Contains(s.ReportDate) {
			continue
		}
		monthly[s.PersonnelID] = monthly[s.PersonnelID].Add(s.Amount)
	}

	summary := PayoutSummary{
		ReportPeriod:             period.label(),
		TotalSales:               decimal.Zero,
		TotalFixedCommissions:    decimal.Zero,
		TotalVariableCommissions: decimal.Zero,
		TotalPayout:              decimal.Zero,
	}
	rows := make([]PersonnelPayout, 0, len(inputs))

	for _, in := range inputs {
		monthlySales := monthly[in.PersonnelID]
		variable, total := ComputePayout(in.CommissionFixed, in.CommissionPercentage, monthlySales)

		rows = append(rows, PersonnelPayout{
			PersonnelID:          in.PersonnelID,
			PersonnelName:        in.PersonnelName,
			MonthlySales:         monthlySales,
			CommissionFixed:      in.CommissionFixed,
			CommissionPercentage: in.CommissionPercentage,
			CommissionVariable:   variable,
			TotalPayout:          total,
		})

		summary.TotalSales = summary.TotalSales.Add(monthlySales)
		summary.TotalFixedCommissions = summary.TotalFixedCommissions.Add(in.CommissionFixed)
		summary.TotalVariableCommissions = summary.TotalVariableCommissions.Add(variable)
		summary.TotalPayout = summary.TotalPayout.Add(total)
	}
	summary.PersonnelCount = len(rows)

	return &CommissionPayout{Summary: summary, PersonnelPayouts: rows}
}
