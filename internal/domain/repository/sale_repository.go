package repository

import (
	"context"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/enum"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// RecordPayment executes a read-modify-write on one sale inside a single
	// transaction with the row locked, so concurrent payments never read a
	// stale balance. mutate updates the sale's derived fields and returns the
	// payment row to append; both writes commit together.
	RecordPayment(ctx context.Context, id uuid.UUID, mutate func(sale *entity.Sale) (*entity.Payment, error)) (*entity.Sale, error)
	// CountOutstandingByVendor counts the vendor's sales that still carry a balance.
	CountOutstandingByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	VendorID   *uuid.UUID
	Status     *enum.SaleStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// PaymentRepository defines the interface for payment history operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error)
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}
