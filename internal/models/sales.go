package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one reported sales figure for one person on one day.
type SalesRecord struct {
	ID            int64           `json:"id" db:"id"`
	PersonnelID   int64           `json:"personnelId" db:"personnel_id"`
	ReportDate    Date            `json:"reportDate" db:"report_date"`
	SalesAmount   decimal.Decimal `json:"salesAmount" db:"sales_amount"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	PersonnelName string          `json:"personnelName,omitempty" db:"-"`
}

// NewSalesRecord creates a sales record with the amount rounded to cents.
func NewSalesRecord(personnelID int64, reportDate Date, amount decimal.Decimal) *SalesRecord {
	return &SalesRecord{
		PersonnelID: personnelID,
		ReportDate:  reportDate,
		SalesAmount: amount.Round(MoneyPlaces),
		CreatedAt:   time.Now(),
	}
}

// Validate validates the field constraints. The future-date rule depends on
// the clock and is checked by the service.
func (s *SalesRecord) Validate() error {
	var errs ValidationErrors

	if s.PersonnelID <= 0 {
		errs.add(&ValidationError{Field: "personnelId", Message: "Personnel ID is required", Value: s.PersonnelID})
	}
	if s.ReportDate.IsZero() {
		errs.add(&ValidationError{Field: "reportDate", Message: "Report date is required"})
	}
	errs.add(ValidateNonNegative(s.SalesAmount, "salesAmount", "Sales amount must be non-negative"))
	errs.add(ValidateMoneyRange(s.SalesAmount, "salesAmount", "Sales amount"))

	return errs.orNil()
}

// SalesFilter narrows a sales listing. Nil fields are ignored; the date
// bounds are inclusive. Listings are newest first unless Ascending is set.
type SalesFilter struct {
	PersonnelID *int64
	From        *Date
	To          *Date
	Ascending   bool
}
