package repository

import (
	"context"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// CrateReturnRepository defines the interface for crate return data operations
type CrateReturnRepository interface {
	Create(ctx context.Context, ret *entity.CrateReturn) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CrateReturn, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns crate returns newest first, optionally filtered by vendor.
	List(ctx context.Context, params *pagination.PaginationParams, vendorID *uuid.UUID) ([]entity.CrateReturn, int64, error)
}
