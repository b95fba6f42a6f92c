package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateSaleRequest represents a sale recording request
type CreateSaleRequest struct {
	VendorID      uuid.UUID  `json:"vendor_id" binding:"required"`
	SaleDate      *time.Time `json:"sale_date"`
	CratesSold    int        `json:"crates_sold" binding:"required"`
	PricePerCrate float64    `json:"price_per_crate" binding:"required"`
	AmountPaid    float64    `json:"amount_paid" binding:"omitempty,min=0"`
}

// UpdateSaleRequest represents a sale edit request. Derived fields
// (total, balance, status) are recomputed server-side and cannot be set.
type UpdateSaleRequest struct {
	SaleDate      *time.Time `json:"sale_date"`
	CratesSold    *int       `json:"crates_sold"`
	PricePerCrate *float64   `json:"price_per_crate"`
	AmountPaid    *float64   `json:"amount_paid"`
}

// RecordPaymentRequest represents a payment application request
type RecordPaymentRequest struct {
	Amount float64    `json:"amount" binding:"required"`
	Date   *time.Time `json:"date"`
}

// SaleFilterRequest represents sale list filter parameters
type SaleFilterRequest struct {
	VendorID  string `form:"vendor_id"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
