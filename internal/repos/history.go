package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/types"
)

type HistoryRepo interface {
	Append(ctx context.Context, tx *gorm.DB, entries []*types.HistoryEntry) ([]*types.HistoryEntry, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.HistoryEntry, error)
	ClearByUserID(ctx context.Context, tx *gorm.DB, userID string) error
}

type historyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHistoryRepo(db *gorm.DB, baseLog *logger.Logger) HistoryRepo {
	repoLog := baseLog.With("repo", "HistoryRepo")
	return &historyRepo{db: db, log: repoLog}
}

func (hr *historyRepo) Append(ctx context.Context, tx *gorm.DB, entries []*types.HistoryEntry) ([]*types.HistoryEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	if len(entries) == 0 {
		return []*types.HistoryEntry{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (hr *historyRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.HistoryEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var results []*types.HistoryEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *historyRepo) ClearByUserID(ctx context.Context, tx *gorm.DB, userID string) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.HistoryEntry{}).Error
}
