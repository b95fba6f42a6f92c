package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrateReturn records crates physically returned by a vendor, independent
// of payment status. Returns are created and deleted, never edited.
type CrateReturn struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VendorID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"vendor_id"`
	VendorName     string         `gorm:"size:255;not null" json:"vendor_name"`
	Date           time.Time      `gorm:"type:date;not null" json:"date"`
	CratesReturned int            `gorm:"not null" json:"crates_returned"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new crate return
func (r *CrateReturn) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CrateReturn model
func (CrateReturn) TableName() string {
	return "crate_returns"
}
