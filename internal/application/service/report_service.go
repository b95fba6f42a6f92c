package service

import (
	"context"

	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/pkg/money"
)

// ReportService provides summary statistics
type ReportService struct {
	reportRepo repository.ReportRepository
	vendorRepo repository.VendorRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, vendorRepo repository.VendorRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo, vendorRepo: vendorRepo}
}

// CrateStats summarizes crate movement
type CrateStats struct {
	Sent        int64 `json:"sent"`
	Returned    int64 `json:"returned"`
	Outstanding int64 `json:"outstanding"`
}

// SaleStats summarizes the financial state of all sales
type SaleStats struct {
	TotalSales       int64   `json:"total_sales"`
	TotalAmount      float64 `json:"total_amount"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`
	PaidCount        int64   `json:"paid_count"`
	PartialCount     int64   `json:"partial_count"`
	UnpaidCount      int64   `json:"unpaid_count"`
}

// Summary is the report returned by the summary endpoint
type Summary struct {
	CrateStats   CrateStats `json:"crateStats"`
	SaleStats    SaleStats  `json:"saleStats"`
	TotalVendors int64      `json:"total_vendors"`
}

// GetSummary aggregates crate movement and sale financials
func (s *ReportService) GetSummary(ctx context.Context) (*Summary, error) {
	crates, err := s.reportRepo.GetCrateSummary(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := s.reportRepo.GetSaleSummary(ctx)
	if err != nil {
		return nil, err
	}

	vendors, err := s.vendorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		CrateStats: CrateStats{
			Sent:        crates.Sent,
			Returned:    crates.Returned,
			Outstanding: crates.Sent - crates.Returned,
		},
		SaleStats: SaleStats{
			TotalSales:       sales.TotalSales,
			TotalAmount:      money.ToDecimal(sales.TotalAmount),
			TotalPaid:        money.ToDecimal(sales.TotalPaid),
			TotalOutstanding: money.ToDecimal(sales.TotalOutstanding),
			PaidCount:        sales.PaidCount,
			PartialCount:     sales.PartialCount,
			UnpaidCount:      sales.UnpaidCount,
		},
		TotalVendors: vendors,
	}, nil
}
