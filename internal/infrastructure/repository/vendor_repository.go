package repository

import (
	"context"
	"errors"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	domainRepo "github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vendor, err
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vendor{}, "id = ?", id).Error
}

func (r *vendorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	var vendors []entity.Vendor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Vendor{})

	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&vendors).Error

	return vendors, total, err
}

func (r *vendorRepository) AdjustCrateCounts(ctx context.Context, id uuid.UUID, heldDelta, returnedDelta int) error {
	updates := map[string]interface{}{}
	if heldDelta != 0 {
		updates["crates_held"] = gorm.Expr("GREATEST(crates_held + ?, 0)", heldDelta)
	}
	if returnedDelta != 0 {
		updates["crates_returned"] = gorm.Expr("GREATEST(crates_returned + ?, 0)", returnedDelta)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.Vendor{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *vendorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Vendor{}).Count(&total).Error
	return total, err
}
