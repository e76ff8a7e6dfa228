package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	redisclient "github.com/robokit/robokit-backend/internal/clients/redis"
	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/repos"
	"github.com/robokit/robokit-backend/internal/types"
)

// CatalogService loads the parts catalog for the configurator and the
// /components endpoint. Reads go through the optional redis cache when one
// is wired; writes (seeding) invalidate it.
type CatalogService interface {
	List(ctx context.Context) ([]types.Part, error)
	SeedFromFile(ctx context.Context, path string) (int, error)
}

type catalogService struct {
	db       *gorm.DB
	log      *logger.Logger
	partRepo repos.PartRepo
	cache    redisclient.CatalogCache
}

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	partRepo repos.PartRepo,
	cache redisclient.CatalogCache,
) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		db:       db,
		log:      serviceLog,
		partRepo: partRepo,
		cache:    cache,
	}
}

func (cs *catalogService) List(ctx context.Context) ([]types.Part, error) {
	if cs.cache != nil {
		cached, cErr := cs.cache.GetCatalog(ctx)
		if cErr != nil {
			cs.log.Warn("catalog cache read failed, falling back to db", "error", cErr)
		} else if cached != nil {
			return cached, nil
		}
	}

	parts, pErr := cs.partRepo.GetAll(ctx, nil)
	if pErr != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", pErr)
	}
	if len(parts) == 0 {
		return nil, errors.ErrCatalogEmpty
	}

	if cs.cache != nil {
		if sErr := cs.cache.SetCatalog(ctx, parts); sErr != nil {
			cs.log.Warn("catalog cache write failed", "error", sErr)
		}
	}
	return parts, nil
}

// SeedFromFile loads parts from a JSON file into the database when the part
// table is empty. Returns the number of parts inserted (0 when already seeded).
func (cs *catalogService) SeedFromFile(ctx context.Context, path string) (int, error) {
	count, cErr := cs.partRepo.Count(ctx, nil)
	if cErr != nil {
		return 0, fmt.Errorf("failed to count parts: %w", cErr)
	}
	if count > 0 {
		return 0, nil
	}

	raw, rErr := os.ReadFile(path)
	if rErr != nil {
		return 0, fmt.Errorf("failed to read catalog seed file: %w", rErr)
	}
	var parts []types.Part
	if uErr := json.Unmarshal(raw, &parts); uErr != nil {
		return 0, fmt.Errorf("failed to parse catalog seed file: %w", uErr)
	}
	if len(parts) == 0 {
		return 0, nil
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return cs.partRepo.CreateBatch(ctx, tx, parts)
	}); err != nil {
		return 0, fmt.Errorf("failed to insert catalog seed: %w", err)
	}

	if cs.cache != nil {
		if iErr := cs.cache.Invalidate(ctx); iErr != nil {
			cs.log.Warn("catalog cache invalidate failed", "error", iErr)
		}
	}
	cs.log.Info("catalog seeded", "parts", len(parts), "path", path)
	return len(parts), nil
}
