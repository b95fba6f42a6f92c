package repository

import (
	"context"
	"errors"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	domainRepo "github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.VendorID != nil {
		query = query.Where("vendor_id = ?", *params.VendorID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("sale_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("sale_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "sale_date"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&sales).Error

	return sales, total, err
}

// RecordPayment locks the sale row for the duration of the transaction so a
// concurrent payment cannot read the balance before this one commits.
func (r *saleRepository) RecordPayment(ctx context.Context, id uuid.UUID, mutate func(sale *entity.Sale) (*entity.Payment, error)) (*entity.Sale, error) {
	var sale entity.Sale

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sale, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		if err != nil {
			return err
		}

		payment, err := mutate(&sale)
		if err != nil {
			return err
		}

		if err := tx.Save(&sale).Error; err != nil {
			return err
		}
		if payment != nil {
			payment.SaleID = sale.ID
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) CountOutstandingByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("vendor_id = ? AND balance > 0", vendorID).
		Count(&total).Error
	return total, err
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("paid_at ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Payment{}, "sale_id = ?", saleID).Error
}
