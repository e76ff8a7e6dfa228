package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/types"
)

type PartRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]types.Part, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, parts []types.Part) error
}

type partRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPartRepo(db *gorm.DB, baseLog *logger.Logger) PartRepo {
	repoLog := baseLog.With("repo", "PartRepo")
	return &partRepo{db: db, log: repoLog}
}

func (pr *partRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]types.Part, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []types.Part
	// Catalog order is the ranking tie-break, so the read must be stable.
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *partRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Part{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (pr *partRepo) CreateBatch(ctx context.Context, tx *gorm.DB, parts []types.Part) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(parts) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).CreateInBatches(parts, 200).Error
}
