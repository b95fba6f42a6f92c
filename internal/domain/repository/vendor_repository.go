package repository

import (
	"context"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error)
	// AdjustCrateCounts atomically applies deltas to the vendor's running
	// crate counts. Held count is floored at zero.
	AdjustCrateCounts(ctx context.Context, id uuid.UUID, heldDelta, returnedDelta int) error
	Count(ctx context.Context) (int64, error)
}
