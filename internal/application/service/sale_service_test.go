package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/enum"
	"github.com/cratetracker/cratetracker-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	vendors  *fakeVendorRepo
	sales    *fakeSaleRepo
	payments *fakePaymentRepo
	svc      *SaleService
	vendor   *entity.Vendor
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()

	vendors := newFakeVendorRepo()
	payments := newFakePaymentRepo()
	sales := newFakeSaleRepo(payments)

	vendor := &entity.Vendor{Name: "Hillside Orchard", Phone: "0712345678"}
	require.NoError(t, vendors.Create(context.Background(), vendor))

	return &saleFixture{
		vendors:  vendors,
		sales:    sales,
		payments: payments,
		svc:      NewSaleService(sales, payments, vendors),
		vendor:   vendor,
	}
}

func TestCreateSaleDerivesTotalsAndSnapshotsVendor(t *testing.T) {
	f := newSaleFixture(t)

	sale, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    30,
		PricePerCrate: 45.00,
		AmountPaid:    1000.00,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(135000), sale.TotalAmount)
	assert.Equal(t, int64(100000), sale.AmountPaid)
	assert.Equal(t, int64(35000), sale.Balance)
	assert.Equal(t, enum.SaleStatusPartial, sale.Status)
	assert.Equal(t, "Hillside Orchard", sale.VendorName)
	assert.False(t, sale.SaleDate.IsZero())

	// Up-front payment lands in the payment history
	history, err := f.payments.ListBySaleID(context.Background(), sale.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(100000), history[0].Amount)

	// The sold crates move onto the vendor's held count
	vendor, err := f.vendors.GetByID(context.Background(), f.vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, vendor.CratesHeld)
}

func TestCreateSaleWithoutPaymentIsUnpaid(t *testing.T) {
	f := newSaleFixture(t)

	sale, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    10,
		PricePerCrate: 50.00,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.SaleStatusUnpaid, sale.Status)
	assert.Equal(t, sale.TotalAmount, sale.Balance)

	history, err := f.payments.ListBySaleID(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCreateSaleUnknownVendor(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		VendorID:      uuid.New(),
		CratesSold:    5,
		PricePerCrate: 40.00,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestCreateSaleRejectsOverpayment(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    2,
		PricePerCrate: 10.00,
		AmountPaid:    25.00,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestApplyPaymentSequence(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    20,
		PricePerCrate: 50.00,
	})
	require.NoError(t, err)
	require.Equal(t, int64(100000), sale.Balance)

	sale, err = f.svc.ApplyPayment(ctx, sale.ID, 300.00, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(70000), sale.Balance)
	assert.Equal(t, enum.SaleStatusPartial, sale.Status)

	sale, err = f.svc.ApplyPayment(ctx, sale.ID, 400.00, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), sale.Balance)

	sale, err = f.svc.ApplyPayment(ctx, sale.ID, 300.00, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), sale.Balance)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)

	history, err := f.svc.ListPayments(ctx, sale.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestApplyPaymentRejectsOverAndNonPositive(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    4,
		PricePerCrate: 25.00,
	})
	require.NoError(t, err)

	_, err = f.svc.ApplyPayment(ctx, sale.ID, 150.00, time.Time{})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.svc.ApplyPayment(ctx, sale.ID, 0, time.Time{})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	// Failed attempts leave no payment rows behind
	history, err := f.svc.ListPayments(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestApplyPaymentUnknownSale(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.ApplyPayment(context.Background(), uuid.New(), 10.00, time.Time{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestUpdateSaleRecomputesFromScratch(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    30,
		PricePerCrate: 45.00,
		AmountPaid:    1000.00,
	})
	require.NoError(t, err)

	crates := 40
	updated, err := f.svc.UpdateSale(ctx, &UpdateSaleInput{
		ID:         sale.ID,
		CratesSold: &crates,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(180000), updated.TotalAmount)
	assert.Equal(t, int64(100000), updated.AmountPaid)
	assert.Equal(t, int64(80000), updated.Balance)
	assert.Equal(t, enum.SaleStatusPartial, updated.Status)

	// Crates delta is applied to the vendor's held count
	vendor, err := f.vendors.GetByID(ctx, f.vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, vendor.CratesHeld)
}

func TestUpdateSaleWithNoChangesIsIdempotent(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    12,
		PricePerCrate: 33.33,
		AmountPaid:    100.00,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateSale(ctx, &UpdateSaleInput{ID: sale.ID})
	require.NoError(t, err)

	assert.Equal(t, sale.TotalAmount, updated.TotalAmount)
	assert.Equal(t, sale.AmountPaid, updated.AmountPaid)
	assert.Equal(t, sale.Balance, updated.Balance)
	assert.Equal(t, sale.Status, updated.Status)
}

func TestDeleteSaleRemovesHistoryAndReturnsCrates(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		VendorID:      f.vendor.ID,
		CratesSold:    15,
		PricePerCrate: 20.00,
		AmountPaid:    100.00,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteSale(ctx, sale.ID))

	_, err = f.svc.GetSale(ctx, sale.ID)
	require.Error(t, err)

	history, err := f.payments.ListBySaleID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	vendor, err := f.vendors.GetByID(ctx, f.vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, vendor.CratesHeld)
}
