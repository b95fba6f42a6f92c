package service

import (
	"context"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/ledger"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/pkg/apperror"
	"github.com/cratetracker/cratetracker-api/pkg/money"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleService owns the sale lifecycle: creation, payment application,
// edits and deletion. All derived financial fields flow through the
// ledger package; nothing here recomputes them independently.
type SaleService struct {
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentRepository
	vendorRepo  repository.VendorRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
	vendorRepo repository.VendorRepository,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
		vendorRepo:  vendorRepo,
	}
}

// CreateSaleInput represents the create sale input. Amounts are decimals
// as received on the wire; they are converted to cents exactly once here.
type CreateSaleInput struct {
	VendorID      uuid.UUID
	SaleDate      time.Time
	CratesSold    int
	PricePerCrate float64
	AmountPaid    float64
}

// CreateSale records a new sale. The vendor's name is snapshotted onto the
// sale, the vendor's held-crate count grows by cratesSold, and an up-front
// payment is persisted as the first payment-history row.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	priceCents := money.ToCents(input.PricePerCrate)
	paidCents := money.ToCents(input.AmountPaid)

	totals, err := ledger.Compute(input.CratesSold, priceCents, paidCents)
	if err != nil {
		return nil, err
	}

	saleDate := input.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	sale := &entity.Sale{
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		SaleDate:      saleDate,
		CratesSold:    input.CratesSold,
		PricePerCrate: priceCents,
		TotalAmount:   totals.TotalAmount,
		AmountPaid:    totals.AmountPaid,
		Balance:       totals.Balance,
		Status:        totals.Status,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	if paidCents > 0 {
		payment := &entity.Payment{
			SaleID: sale.ID,
			Amount: paidCents,
			PaidAt: saleDate,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
	}

	if err := s.vendorRepo.AdjustCrateCounts(ctx, vendor.ID, input.CratesSold, 0); err != nil {
		return nil, err
	}

	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filters and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	params.Pagination.Validate()
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ApplyPayment applies one payment to a sale as a single read-modify-write:
// the repository locks the sale row, the ledger derives the new state, and
// the payment-history row commits in the same transaction. Two concurrent
// payments therefore always sum rather than losing an update.
func (s *SaleService) ApplyPayment(ctx context.Context, saleID uuid.UUID, amount float64, paidAt time.Time) (*entity.Sale, error) {
	amountCents := money.ToCents(amount)
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	sale, err := s.saleRepo.RecordPayment(ctx, saleID, func(sale *entity.Sale) (*entity.Payment, error) {
		totals, err := ledger.FromSale(sale.TotalAmount, sale.AmountPaid).ApplyPayment(amountCents)
		if err != nil {
			return nil, err
		}

		sale.AmountPaid = totals.AmountPaid
		sale.Balance = totals.Balance
		sale.Status = totals.Status

		return &entity.Payment{Amount: amountCents, PaidAt: paidAt}, nil
	})
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListPayments returns the payment history of a sale, oldest first
func (s *SaleService) ListPayments(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.paymentRepo.ListBySaleID(ctx, saleID)
}

// UpdateSaleInput represents the update sale input
type UpdateSaleInput struct {
	ID            uuid.UUID
	SaleDate      *time.Time
	CratesSold    *int
	PricePerCrate *float64
	AmountPaid    *float64
}

// UpdateSale edits a sale with full-replacement semantics: totals, balance
// and status are recomputed from scratch with the same formulas as creation,
// never diffed incrementally. The vendor's held-crate count is adjusted by
// the cratesSold delta.
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	crates := sale.CratesSold
	if input.CratesSold != nil {
		crates = *input.CratesSold
	}
	priceCents := sale.PricePerCrate
	if input.PricePerCrate != nil {
		priceCents = money.ToCents(*input.PricePerCrate)
	}
	paidCents := sale.AmountPaid
	if input.AmountPaid != nil {
		paidCents = money.ToCents(*input.AmountPaid)
	}

	totals, err := ledger.Compute(crates, priceCents, paidCents)
	if err != nil {
		return nil, err
	}

	cratesDelta := crates - sale.CratesSold

	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	sale.CratesSold = crates
	sale.PricePerCrate = priceCents
	sale.TotalAmount = totals.TotalAmount
	sale.AmountPaid = totals.AmountPaid
	sale.Balance = totals.Balance
	sale.Status = totals.Status

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	if cratesDelta != 0 {
		if err := s.vendorRepo.AdjustCrateCounts(ctx, sale.VendorID, cratesDelta, 0); err != nil {
			return nil, err
		}
	}

	return sale, nil
}

// DeleteSale deletes a sale along with its payment history and gives the
// crates back to the pool by reversing the vendor's held-crate adjustment.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if err := s.paymentRepo.DeleteBySaleID(ctx, id); err != nil {
		return err
	}
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.vendorRepo.AdjustCrateCounts(ctx, sale.VendorID, -sale.CratesSold, 0)
}
