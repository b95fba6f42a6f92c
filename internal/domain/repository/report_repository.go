package repository

import "context"

// CrateSummaryResult aggregates crate movement across all sales and returns
type CrateSummaryResult struct {
	Sent     int64 `json:"sent"`
	Returned int64 `json:"returned"`
}

// SaleSummaryResult aggregates the financial state of all sales (cents)
type SaleSummaryResult struct {
	TotalSales       int64
	TotalAmount      int64
	TotalPaid        int64
	TotalOutstanding int64
	PaidCount        int64
	PartialCount     int64
	UnpaidCount      int64
}

// ReportRepository defines the interface for summary aggregation queries
type ReportRepository interface {
	GetCrateSummary(ctx context.Context) (*CrateSummaryResult, error)
	GetSaleSummary(ctx context.Context) (*SaleSummaryResult, error)
}
