package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a counterparty that receives crates and owes payment for sales.
// CratesHeld and CratesReturned are running counts adjusted only by sale and
// crate-return operations, never set directly through the API.
type Vendor struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Phone          string         `gorm:"size:50;not null" json:"phone"`
	Address        string         `gorm:"type:text;not null" json:"address"`
	CratesHeld     int            `gorm:"not null;default:0" json:"crates_held"`
	CratesReturned int            `gorm:"not null;default:0" json:"crates_returned"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales   []Sale        `gorm:"foreignKey:VendorID" json:"-"`
	Returns []CrateReturn `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
