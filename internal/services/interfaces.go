package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/reporting"
)

// CommissionProfileService defines the interface for commission profile operations
type CommissionProfileService interface {
	CreateCommissionProfile(ctx context.Context, req *CommissionProfileRequest) (*models.CommissionProfile, error)
	GetCommissionProfile(ctx context.Context, id int64) (*models.CommissionProfile, error)
	UpdateCommissionProfile(ctx context.Context, id int64, req *CommissionProfileRequest) (*models.CommissionProfile, error)
	DeleteCommissionProfile(ctx context.Context, id int64) error
	ListCommissionProfiles(ctx context.Context) ([]*models.CommissionProfile, error)
}

// PersonnelService defines the interface for personnel operations
type PersonnelService interface {
	CreatePersonnel(ctx context.Context, req *PersonnelRequest) (*models.Personnel, error)
	GetPersonnel(ctx context.Context, id int64) (*models.Personnel, error)
	UpdatePersonnel(ctx context.Context, id int64, req *PersonnelRequest) (*models.Personnel, error)
	// DeletePersonnel removes the record and every sale it owns. confirm must
	// be true.
	DeletePersonnel(ctx context.Context, id int64, confirm bool) error
	ListPersonnel(ctx context.Context, filters *PersonnelFilters) ([]*models.Personnel, error)
}

// SalesService defines the interface for sales operations
type SalesService interface {
	CreateSale(ctx context.Context, req *SaleRequest) (*models.SalesRecord, error)
	GetSale(ctx context.Context, id int64) (*models.SalesRecord, error)
	DeleteSale(ctx context.Context, id int64) error
	ListSales(ctx context.Context, filters *SalesFilters) ([]*models.SalesRecord, error)
}

// ReportService builds the monthly reports from stored records.
type ReportService interface {
	ManagementOverview(ctx context.Context, req *ReportRequest) (*reporting.ManagementOverview, error)
	CommissionPayout(ctx context.Context, req *ReportRequest) (*reporting.CommissionPayout, error)
	// ResolvePeriod applies the current-month defaults and range checks.
	ResolvePeriod(req *ReportRequest) (reporting.Period, error)
}

// Clock returns the current time. Services use it to decide what "today" is.
type Clock func() time.Time

// Request and response types for service operations

// CommissionProfileRequest is the body of create and update calls.
type CommissionProfileRequest struct {
	ProfileName          *int             `json:"profileName" validate:"required"`
	CommissionFixed      *decimal.Decimal `json:"commissionFixed" validate:"required" swaggertype:"number"`
	CommissionPercentage *decimal.Decimal `json:"commissionPercentage" validate:"required" swaggertype:"number"`
}

// PersonnelRequest is the body of create and update calls.
type PersonnelRequest struct {
	Name                string  `json:"name" validate:"required"`
	Age                 *int    `json:"age" validate:"required"`
	Phone               string  `json:"phone" validate:"required"`
	CommissionProfileID int64   `json:"commissionProfileId"`
	BankName            *string `json:"bankName,omitempty"`
	BankAccountNo       *string `json:"bankAccountNo,omitempty"`
}

// PersonnelFilters narrows a personnel listing.
type PersonnelFilters struct {
	ID *int64 `json:"id,omitempty"`
}

// SaleRequest is the body of a create call.
type SaleRequest struct {
	PersonnelID int64            `json:"personnelId" validate:"required"`
	ReportDate  *models.Date     `json:"reportDate" validate:"required" swaggertype:"string" example:"2025-07-15"`
	SalesAmount *decimal.Decimal `json:"salesAmount" validate:"required" swaggertype:"number"`
}

// SalesFilters narrows a sales listing; date bounds are inclusive.
type SalesFilters struct {
	PersonnelID *int64       `json:"personnelId,omitempty"`
	From        *models.Date `json:"from,omitempty"`
	To          *models.Date `json:"to,omitempty"`
}

// ReportRequest selects the month and optionally one person. Nil year or
// month means the current one.
type ReportRequest struct {
	Year        *int   `json:"year,omitempty"`
	Month       *int   `json:"month,omitempty"`
	PersonnelID *int64 `json:"personnelId,omitempty"`
}
