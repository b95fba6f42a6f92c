package service

import (
	"context"
	"testing"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	crates repository.CrateSummaryResult
	sales  repository.SaleSummaryResult
}

func (r *fakeReportRepo) GetCrateSummary(_ context.Context) (*repository.CrateSummaryResult, error) {
	out := r.crates
	return &out, nil
}

func (r *fakeReportRepo) GetSaleSummary(_ context.Context) (*repository.SaleSummaryResult, error) {
	out := r.sales
	return &out, nil
}

func TestGetSummary(t *testing.T) {
	vendors := newFakeVendorRepo()
	require.NoError(t, vendors.Create(context.Background(), &entity.Vendor{Name: "A"}))
	require.NoError(t, vendors.Create(context.Background(), &entity.Vendor{Name: "B"}))

	reports := &fakeReportRepo{
		crates: repository.CrateSummaryResult{Sent: 120, Returned: 45},
		sales: repository.SaleSummaryResult{
			TotalSales:       7,
			TotalAmount:      350000,
			TotalPaid:        200000,
			TotalOutstanding: 150000,
			PaidCount:        3,
			PartialCount:     2,
			UnpaidCount:      2,
		},
	}

	svc := NewReportService(reports, vendors)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), summary.CrateStats.Sent)
	assert.Equal(t, int64(45), summary.CrateStats.Returned)
	assert.Equal(t, int64(75), summary.CrateStats.Outstanding)

	assert.Equal(t, int64(7), summary.SaleStats.TotalSales)
	assert.InDelta(t, 3500.00, summary.SaleStats.TotalAmount, 0.001)
	assert.InDelta(t, 2000.00, summary.SaleStats.TotalPaid, 0.001)
	assert.InDelta(t, 1500.00, summary.SaleStats.TotalOutstanding, 0.001)
	assert.Equal(t, int64(3), summary.SaleStats.PaidCount)
	assert.Equal(t, int64(2), summary.SaleStats.PartialCount)
	assert.Equal(t, int64(2), summary.SaleStats.UnpaidCount)

	assert.Equal(t, int64(2), summary.TotalVendors)
}
