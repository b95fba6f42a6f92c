package service

import (
	"context"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/pkg/apperror"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// VendorService handles vendor-related operations
type VendorService struct {
	vendorRepo repository.VendorRepository
	saleRepo   repository.SaleRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, saleRepo repository.SaleRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, saleRepo: saleRepo}
}

// CreateVendorInput represents the create vendor input
type CreateVendorInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateVendor registers a new vendor. Crate counts start at zero and are
// only ever moved by sale and crate-return operations.
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldValidationError("name", "must not be empty")
	}

	vendor := &entity.Vendor{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors lists vendors with pagination and optional search
func (s *VendorService) ListVendors(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	params.Validate()
	vendors, total, err := s.vendorRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// UpdateVendorInput represents the update vendor input
type UpdateVendorInput struct {
	ID      uuid.UUID
	Name    *string
	Phone   *string
	Address *string
}

// UpdateVendor updates a vendor's contact details. Renaming does not rewrite
// the vendor-name snapshots on historical sales and returns.
func (s *VendorService) UpdateVendor(ctx context.Context, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewFieldValidationError("name", "must not be empty")
		}
		vendor.Name = *input.Name
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// DeleteVendor deletes a vendor. Deletion is refused while the vendor has
// sales with an outstanding balance; otherwise the row is soft-deleted so
// historical sales and returns keep a resolvable reference.
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}

	outstanding, err := s.saleRepo.CountOutstandingByVendor(ctx, id)
	if err != nil {
		return err
	}
	if outstanding > 0 {
		return apperror.NewConflictError("Vendor has sales with an outstanding balance")
	}

	return s.vendorRepo.Delete(ctx, id)
}
