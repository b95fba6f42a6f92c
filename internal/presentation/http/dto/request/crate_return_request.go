package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateCrateReturnRequest represents a crate return recording request
type CreateCrateReturnRequest struct {
	VendorID       uuid.UUID  `json:"vendor_id" binding:"required"`
	Date           *time.Time `json:"date"`
	CratesReturned int        `json:"crates_returned" binding:"required"`
}
