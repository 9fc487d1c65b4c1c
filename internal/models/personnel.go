package models

import (
	"time"
)

// Personnel represents a salesperson on record.
type Personnel struct {
	ID                  int64              `json:"id" db:"id"`
	Name                string             `json:"name" db:"name"`
	Age                 int                `json:"age" db:"age"`
	Phone               string             `json:"phone" db:"phone"`
	CommissionProfileID int64              `json:"commissionProfileId" db:"commission_profile_id"`
	BankName            *string            `json:"bankName" db:"bank_name"`
	BankAccountNo       *string            `json:"bankAccountNo" db:"bank_account_no"`
	CreatedAt           time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time          `json:"updatedAt" db:"updated_at"`
	CommissionProfile   *CommissionProfile `json:"commissionProfile,omitempty" db:"-"`
}

// NewPersonnel creates a new personnel record with timestamps set
func NewPersonnel(name string, age int, phone string, commissionProfileID int64) *Personnel {
	now := time.Now()
	p := &Personnel{
		Name:                name,
		Age:                 age,
		Phone:               phone,
		CommissionProfileID: commissionProfileID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	p.Normalize()
	return p
}

// Normalize trims text fields; blank bank fields become unset.
func (p *Personnel) Normalize() {
	p.Name = SanitizeString(p.Name)
	p.Phone = SanitizeString(p.Phone)
	p.BankName = SanitizeOptional(p.BankName)
	p.BankAccountNo = SanitizeOptional(p.BankAccountNo)
}

// Validate validates the personnel data. It expects Normalize to have run.
func (p *Personnel) Validate() error {
	var errs ValidationErrors

	errs.add(ValidateRequired(p.Name, "name", "Name cannot be empty or whitespace only"))
	errs.add(ValidateMaxLength(p.Name, "name", "Name", MaxPersonnelNameLen))
	if p.Age < MinPersonnelAge {
		errs.add(&ValidationError{Field: "age", Message: "Age must be 19 or older", Value: p.Age})
	}
	errs.add(ValidateRequired(p.Phone, "phone", "Phone cannot be empty or whitespace only"))
	errs.add(ValidateMaxLength(p.Phone, "phone", "Phone", MaxPhoneLen))
	if p.BankName != nil {
		errs.add(ValidateMaxLength(*p.BankName, "bankName", "Bank name", MaxBankFieldLen))
	}
	if p.BankAccountNo != nil {
		errs.add(ValidateMaxLength(*p.BankAccountNo, "bankAccountNo", "Bank account number", MaxBankFieldLen))
	}
	if p.CommissionProfileID <= 0 {
		errs.add(&ValidationError{
			Field:   "commissionProfileId",
			Message: "Commission profile ID must be provided",
			Value:   p.CommissionProfileID,
		})
	}

	return errs.orNil()
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (p *Personnel) UpdateTimestamp() {
	p.UpdatedAt = time.Now()
}

// PersonnelFilter narrows a personnel listing. A nil ID returns everyone.
type PersonnelFilter struct {
	ID *int64
}
