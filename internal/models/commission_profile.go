package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionProfile bundles a fixed monthly amount and a percentage-of-sales
// rate assigned to personnel.
type CommissionProfile struct {
	ID                   int64           `json:"id" db:"id"`
	ProfileName          int             `json:"profileName" db:"profile_name"`
	CommissionFixed      decimal.Decimal `json:"commissionFixed" db:"commission_fixed"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage" db:"commission_percentage"`
	CreatedAt            time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time       `json:"updatedAt" db:"updated_at"`
}

// NewCommissionProfile creates a profile with timestamps set and amounts
// rounded to their stored precision.
func NewCommissionProfile(profileName int, fixed, percentage decimal.Decimal) *CommissionProfile {
	now := time.Now()
	p := &CommissionProfile{
		ProfileName:          profileName,
		CommissionFixed:      fixed,
		CommissionPercentage: percentage,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	p.Normalize()
	return p
}

// Normalize rounds the amounts to the precision the store keeps.
func (p *CommissionProfile) Normalize() {
	p.CommissionFixed = p.CommissionFixed.Round(MoneyPlaces)
	p.CommissionPercentage = p.CommissionPercentage.Round(PercentagePlaces)
}

// Validate validates the commission profile data
func (p *CommissionProfile) Validate() error {
	var errs ValidationErrors

	if p.ProfileName < 1 {
		errs.add(&ValidationError{
			Field:   "profileName",
			Message: "Profile name must be a positive integer",
			Value:   p.ProfileName,
		})
	}
	errs.add(ValidateNonNegative(p.CommissionFixed, "commissionFixed", "Fixed commission must be non-negative"))
	errs.add(ValidateMoneyRange(p.CommissionFixed, "commissionFixed", "Fixed commission"))
	errs.add(ValidateFraction(p.CommissionPercentage, "commissionPercentage", "Commission percentage must be between 0 and 1"))

	return errs.orNil()
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (p *CommissionProfile) UpdateTimestamp() {
	p.UpdatedAt = time.Now()
}
