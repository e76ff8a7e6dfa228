package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/repos"
	"github.com/robokit/robokit-backend/internal/requestdata"
	"github.com/robokit/robokit-backend/internal/types"
)

type HistoryService interface {
	List(ctx context.Context) ([]*types.HistoryEntry, error)
	Clear(ctx context.Context) error
}

type historyService struct {
	db          *gorm.DB
	log         *logger.Logger
	historyRepo repos.HistoryRepo
}

func NewHistoryService(
	db *gorm.DB,
	log *logger.Logger,
	historyRepo repos.HistoryRepo,
) HistoryService {
	serviceLog := log.With("service", "HistoryService")
	return &historyService{
		db:          db,
		log:         serviceLog,
		historyRepo: historyRepo,
	}
}

func (hs *historyService) List(ctx context.Context) ([]*types.HistoryEntry, error) {
	userID, uErr := hs.requireUserID(ctx)
	if uErr != nil {
		return nil, uErr
	}
	entries, lErr := hs.historyRepo.GetByUserID(ctx, nil, userID)
	if lErr != nil {
		return nil, fmt.Errorf("failed to load history: %w", lErr)
	}
	return entries, nil
}

func (hs *historyService) Clear(ctx context.Context) error {
	userID, uErr := hs.requireUserID(ctx)
	if uErr != nil {
		return uErr
	}
	if dErr := hs.historyRepo.ClearByUserID(ctx, nil, userID); dErr != nil {
		return fmt.Errorf("failed to clear history: %w", dErr)
	}
	return nil
}

func (hs *historyService) requireUserID(ctx context.Context) (string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return "", errors.ErrUnauthorized
	}
	return rd.UserID.String(), nil
}
