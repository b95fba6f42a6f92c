package service

import (
	"context"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/pkg/apperror"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// CrateReturnService handles crate return operations
type CrateReturnService struct {
	returnRepo repository.CrateReturnRepository
	vendorRepo repository.VendorRepository
}

// NewCrateReturnService creates a new crate return service
func NewCrateReturnService(returnRepo repository.CrateReturnRepository, vendorRepo repository.VendorRepository) *CrateReturnService {
	return &CrateReturnService{returnRepo: returnRepo, vendorRepo: vendorRepo}
}

// CreateCrateReturnInput represents the create crate return input
type CreateCrateReturnInput struct {
	VendorID       uuid.UUID
	Date           time.Time
	CratesReturned int
}

// CreateCrateReturn records crates coming back from a vendor, moving them
// from the vendor's held count to its returned count. A return larger than
// the crates the vendor currently holds is rejected so the held count can
// never go negative.
func (s *CrateReturnService) CreateCrateReturn(ctx context.Context, input *CreateCrateReturnInput) (*entity.CrateReturn, error) {
	if input.CratesReturned <= 0 {
		return nil, apperror.NewFieldValidationError("crates_returned", "must be greater than zero")
	}

	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.CratesReturned > vendor.CratesHeld {
		return nil, apperror.NewFieldValidationError("crates_returned", "exceeds the crates currently held by the vendor")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	ret := &entity.CrateReturn{
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		Date:           date,
		CratesReturned: input.CratesReturned,
	}

	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.AdjustCrateCounts(ctx, vendor.ID, -input.CratesReturned, input.CratesReturned); err != nil {
		return nil, err
	}

	return ret, nil
}

// GetCrateReturn retrieves a crate return by ID
func (s *CrateReturnService) GetCrateReturn(ctx context.Context, id uuid.UUID) (*entity.CrateReturn, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Crate return")
	}
	return ret, nil
}

// ListCrateReturns lists crate returns newest first, optionally by vendor
func (s *CrateReturnService) ListCrateReturns(ctx context.Context, params *pagination.PaginationParams, vendorID *uuid.UUID) (*pagination.PaginatedResult[entity.CrateReturn], error) {
	params.Validate()
	returns, total, err := s.returnRepo.List(ctx, params, vendorID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(returns, pag), nil
}

// DeleteCrateReturn deletes a crate return and reverses its count adjustment
func (s *CrateReturnService) DeleteCrateReturn(ctx context.Context, id uuid.UUID) error {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ret == nil {
		return apperror.NewNotFoundError("Crate return")
	}

	if err := s.returnRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.vendorRepo.AdjustCrateCounts(ctx, ret.VendorID, ret.CratesReturned, -ret.CratesReturned)
}
