package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	domainRepo "github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key, endpoint string) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND endpoint = ?", key, endpoint).
		First(&ikey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ikey, err
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	// Upsert so re-executing after an expired key refreshes the stored
	// response instead of tripping the unique index.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}, {Name: "endpoint"}},
			UpdateAll: true,
		}).
		Create(ikey).Error
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error
}
