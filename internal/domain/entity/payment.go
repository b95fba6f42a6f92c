package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents one payment event applied to a sale. Rows are
// append-only and inserted in the same transaction that updates the
// parent sale, so the aggregate fields and the history cannot diverge.
type Payment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	Amount    int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaidAt    time.Time      `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
