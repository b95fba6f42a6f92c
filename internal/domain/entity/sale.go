package entity

import (
	"encoding/json"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents crates sold to a vendor, tracked until fully paid.
// VendorName is a point-in-time snapshot taken at creation; renaming the
// vendor later does not rewrite historical sales.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	VendorID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	VendorName    string          `gorm:"size:255;not null" json:"vendor_name"`
	SaleDate      time.Time       `gorm:"type:date;not null" json:"sale_date"`
	CratesSold    int             `gorm:"not null" json:"crates_sold"`
	PricePerCrate int64           `gorm:"not null" json:"-"`  // Stored in cents, excluded from JSON
	TotalAmount   int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	AmountPaid    int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Balance       int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status        enum.SaleStatus `gorm:"default:0" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Vendor   *Vendor   `gorm:"foreignKey:VendorID" json:"-"`
	Payments []Payment `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		PricePerCrate float64 `json:"price_per_crate"`
		TotalAmount   float64 `json:"total_amount"`
		AmountPaid    float64 `json:"amount_paid"`
		Balance       float64 `json:"balance"`
	}{
		Alias:         Alias(s),
		PricePerCrate: float64(s.PricePerCrate) / 100,
		TotalAmount:   float64(s.TotalAmount) / 100,
		AmountPaid:    float64(s.AmountPaid) / 100,
		Balance:       float64(s.Balance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
