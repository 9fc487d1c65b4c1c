package reporting

import (
	"fmt"
	"time"

	"commission-reporting-api/internal/models"
)

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year and month.
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("year must be between 1 and 9999, got %d", year)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf returns the month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Start is the first day of the month.
func (p Period) Start() models.Date {
	return models.NewDate(p.Year, p.Month, 1)
}

// End is the last day of the month, inclusive.
func (p Period) End() models.Date {
	return p.Start().AddDays(p.DaysInMonth() - 1)
}

// DaysInMonth counts calendar days, leap years included.
func (p Period) DaysInMonth() int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName is the English month name.
func (p Period) MonthName() string {
	return p.Month.String()
}

// Contains reports whether d falls inside the month.
func (p Period) Contains(d models.Date) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// MonthLabel identifies a report month.
type MonthLabel struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
}

// Period converts the label back to a Period.
func (m MonthLabel) Period() Period {
	return Period{Year: m.Year, Month: time.Month(m.Month)}
}

// ReportPeriod is a MonthLabel with its inclusive date bounds.
type ReportPeriod struct {
	MonthLabel
	StartDate models.Date `json:"startDate"`
	EndDate   models.Date `json:"endDate"`
}

func (p Period) label() MonthLabel {
	return MonthLabel{
		Year:      p.Year,
		Month:     int(p.Month),
		MonthName: p.MonthName(),
	}
}

func (p Period) describe() ReportPeriod {
	return ReportPeriod{
		MonthLabel: p.label(),
		StartDate:  p.Start(),
		EndDate:    p.End(),
	}
}
