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

type crateReturnRepository struct {
	db *gorm.DB
}

// NewCrateReturnRepository creates a new crate return repository
func NewCrateReturnRepository(db *gorm.DB) domainRepo.CrateReturnRepository {
	return &crateReturnRepository{db: db}
}

func (r *crateReturnRepository) Create(ctx context.Context, ret *entity.CrateReturn) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *crateReturnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CrateReturn, error) {
	var ret entity.CrateReturn
	err := r.db.WithContext(ctx).First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *crateReturnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CrateReturn{}, "id = ?", id).Error
}

func (r *crateReturnRepository) List(ctx context.Context, params *pagination.PaginationParams, vendorID *uuid.UUID) ([]entity.CrateReturn, int64, error) {
	var returns []entity.CrateReturn
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CrateReturn{})

	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC").
		Find(&returns).Error

	return returns, total, err
}
