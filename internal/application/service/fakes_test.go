package service

import (
	"context"
	"strings"
	"sync"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/google/uuid"
)

// In-memory repository fakes so service behavior can be tested without a
// database. They honor the same contracts as the GORM implementations:
// GetByID returns (nil, nil) when missing, RecordPayment is a locked
// read-modify-write that appends the payment row atomically.

type fakeVendorRepo struct {
	mu      sync.Mutex
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	cp := *vendor
	r.vendors[vendor.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *vendor
	r.vendors[vendor.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Vendor
	for _, v := range r.vendors {
		if search != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVendorRepo) AdjustCrateCounts(_ context.Context, id uuid.UUID, heldDelta, returnedDelta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vendors[id]
	if !ok {
		return nil
	}
	v.CratesHeld += heldDelta
	if v.CratesHeld < 0 {
		v.CratesHeld = 0
	}
	v.CratesReturned += returnedDelta
	return nil
}

func (r *fakeVendorRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.vendors)), nil
}

type fakeSaleRepo struct {
	mu       sync.Mutex
	sales    map[uuid.UUID]*entity.Sale
	payments *fakePaymentRepo
}

func newFakeSaleRepo(payments *fakePaymentRepo) *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale), payments: payments}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Sale
	for _, s := range r.sales {
		if params.VendorID != nil && s.VendorID != *params.VendorID {
			continue
		}
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) RecordPayment(_ context.Context, id uuid.UUID, mutate func(sale *entity.Sale) (*entity.Payment, error)) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}

	cp := *s
	payment, err := mutate(&cp)
	if err != nil {
		return nil, err
	}
	r.sales[id] = &cp

	if payment != nil {
		payment.SaleID = cp.ID
		r.payments.append(payment)
	}
	out := cp
	return &out, nil
}

func (r *fakeSaleRepo) CountOutstandingByVendor(_ context.Context, vendorID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.sales {
		if s.VendorID == vendorID && s.Balance > 0 {
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) append(p *entity.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, *p)
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	r.append(payment)
	return nil
}

func (r *fakePaymentRepo) ListBySaleID(_ context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Payment
	for _, p := range r.payments {
		if p.SaleID == saleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) DeleteBySaleID(_ context.Context, saleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.payments[:0]
	for _, p := range r.payments {
		if p.SaleID != saleID {
			kept = append(kept, p)
		}
	}
	r.payments = kept
	return nil
}

type fakeCrateReturnRepo struct {
	mu      sync.Mutex
	returns map[uuid.UUID]*entity.CrateReturn
}

func newFakeCrateReturnRepo() *fakeCrateReturnRepo {
	return &fakeCrateReturnRepo{returns: make(map[uuid.UUID]*entity.CrateReturn)}
}

func (r *fakeCrateReturnRepo) Create(_ context.Context, ret *entity.CrateReturn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	cp := *ret
	r.returns[ret.ID] = &cp
	return nil
}

func (r *fakeCrateReturnRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CrateReturn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret, ok := r.returns[id]
	if !ok {
		return nil, nil
	}
	cp := *ret
	return &cp, nil
}

func (r *fakeCrateReturnRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.returns, id)
	return nil
}

func (r *fakeCrateReturnRepo) List(_ context.Context, params *pagination.PaginationParams, vendorID *uuid.UUID) ([]entity.CrateReturn, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.CrateReturn
	for _, ret := range r.returns {
		if vendorID != nil && ret.VendorID != *vendorID {
			continue
		}
		out = append(out, *ret)
	}
	return out, int64(len(out)), nil
}
