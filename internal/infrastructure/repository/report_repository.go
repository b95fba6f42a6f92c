package repository

import (
	"context"

	domainRepo "github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetCrateSummary(ctx context.Context) (*domainRepo.CrateSummaryResult, error) {
	var result domainRepo.CrateSummaryResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(crates_sold), 0) FROM sales WHERE deleted_at IS NULL) as sent,
			(SELECT COALESCE(SUM(crates_returned), 0) FROM crate_returns WHERE deleted_at IS NULL) as returned
	`).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) GetSaleSummary(ctx context.Context) (*domainRepo.SaleSummaryResult, error) {
	var result domainRepo.SaleSummaryResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as total_sales,
			COALESCE(SUM(total_amount), 0) as total_amount,
			COALESCE(SUM(amount_paid), 0) as total_paid,
			COALESCE(SUM(balance), 0) as total_outstanding,
			COUNT(*) FILTER (WHERE status = 2) as paid_count,
			COUNT(*) FILTER (WHERE status = 1) as partial_count,
			COUNT(*) FILTER (WHERE status = 0) as unpaid_count
		FROM sales
		WHERE deleted_at IS NULL
	`).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}
