package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/robokit/robokit-backend/internal/configurator"
	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/repos"
	"github.com/robokit/robokit-backend/internal/requestdata"
	"github.com/robokit/robokit-backend/internal/types"
)

const anonymousUserID = "anonymous"

// ConfigService runs the configurator over the current catalog and records
// each request/result pair in the history table.
type ConfigService interface {
	Generate(ctx context.Context, req *types.ConfigRequest) (*types.ConfigResponse, error)
}

type configService struct {
	db          *gorm.DB
	log         *logger.Logger
	catalog     CatalogService
	historyRepo repos.HistoryRepo
}

func NewConfigService(
	db *gorm.DB,
	log *logger.Logger,
	catalog CatalogService,
	historyRepo repos.HistoryRepo,
) ConfigService {
	serviceLog := log.With("service", "ConfigService")
	return &configService{
		db:          db,
		log:         serviceLog,
		catalog:     catalog,
		historyRepo: historyRepo,
	}
}

func (cs *configService) Generate(ctx context.Context, req *types.ConfigRequest) (*types.ConfigResponse, error) {
	parts, pErr := cs.catalog.List(ctx)
	if pErr != nil {
		return nil, pErr
	}

	engine := configurator.New(cs.log, parts)
	resp, cErr := engine.Configure(*req)
	if cErr != nil {
		return nil, cErr
	}

	if hErr := cs.recordHistory(ctx, req, resp); hErr != nil {
		// history is best effort, a failed write never fails the request
		cs.log.Warn("failed to record config history", "error", hErr)
	}
	return resp, nil
}

func (cs *configService) recordHistory(ctx context.Context, req *types.ConfigRequest, resp *types.ConfigResponse) error {
	userID := anonymousUserID
	if rd := requestdata.GetRequestData(ctx); rd != nil && rd.UserID != uuid.Nil {
		userID = rd.UserID.String()
	}

	rawReq, mErr := json.Marshal(req)
	if mErr != nil {
		return fmt.Errorf("marshal request: %w", mErr)
	}
	rawResp, mErr := json.Marshal(resp)
	if mErr != nil {
		return fmt.Errorf("marshal result: %w", mErr)
	}

	entry := types.HistoryEntry{
		ID:      uuid.New(),
		UserID:  userID,
		Request: datatypes.JSON(rawReq),
		Result:  datatypes.JSON(rawResp),
	}
	_, aErr := cs.historyRepo.Append(ctx, nil, []*types.HistoryEntry{&entry})
	return aErr
}
