package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/robokit/robokit-backend/internal/configurator"
	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/types"
)

const (
	BenchmarkMinN = 10
	BenchmarkMaxN = 1_000_000
)

type BenchmarkResult struct {
	N                   int     `json:"n"`
	GenerationTimeMs    float64 `json:"generation_time_ms"`
	AlgorithmTimeMs     float64 `json:"algorithm_time_ms"`
	TotalItemsProcessed int     `json:"total_items_processed"`
	Success             bool    `json:"success"`
	ItemsSelected       int     `json:"items_selected"`
}

// BenchmarkService measures configurator throughput over a synthetic catalog
// grown from the real one.
type BenchmarkService interface {
	Run(ctx context.Context, n int) (*BenchmarkResult, error)
}

type benchmarkService struct {
	log     *logger.Logger
	catalog CatalogService
}

func NewBenchmarkService(log *logger.Logger, catalog CatalogService) BenchmarkService {
	serviceLog := log.With("service", "BenchmarkService")
	return &benchmarkService{log: serviceLog, catalog: catalog}
}

func (bs *benchmarkService) Run(ctx context.Context, n int) (*BenchmarkResult, error) {
	if n < BenchmarkMinN || n > BenchmarkMaxN {
		return nil, fmt.Errorf("%w: n must be between %d and %d", errors.ErrInvalidArgument, BenchmarkMinN, BenchmarkMaxN)
	}

	real, cErr := bs.catalog.List(ctx)
	if cErr != nil {
		return nil, cErr
	}

	startGen := time.Now()
	dataset := synthesizeCatalog(real, n)
	genElapsed := time.Since(startGen)

	engine := configurator.New(bs.log, dataset)
	req := benchmarkRequest()

	startAlgo := time.Now()
	resp, runErr := engine.Configure(*req)
	algoElapsed := time.Since(startAlgo)

	result := &BenchmarkResult{
		N:                   n,
		GenerationTimeMs:    float64(genElapsed.Microseconds()) / 1000.0,
		AlgorithmTimeMs:     float64(algoElapsed.Microseconds()) / 1000.0,
		TotalItemsProcessed: len(dataset),
		Success:             runErr == nil,
	}
	if runErr == nil {
		result.ItemsSelected = len(resp.Selected)
	}
	return result, nil
}

// synthesizeCatalog grows the real catalog to n parts by cloning random donors
// with jittered price (±20%), weight (±10%) and motor rpm (±10%).
func synthesizeCatalog(real []types.Part, n int) []types.Part {
	if len(real) == 0 {
		return nil
	}

	out := make([]types.Part, 0, n)
	out = append(out, real...)
	if len(out) > n {
		return out[:n]
	}

	maxID := 0
	for _, p := range real {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	currentID := maxID + 1

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for len(out) < n {
		donor := real[rng.Intn(len(real))]
		item := clonePart(donor)
		item.ID = currentID
		item.Name = fmt.Sprintf("%s (Gen-%d)", donor.Name, currentID)
		item.Price = math.Round(item.Price * (0.8 + rng.Float64()*0.4))
		item.Weight = math.Round(item.Weight*(0.9+rng.Float64()*0.2)*100) / 100
		if item.Electronics != nil && item.Electronics.RPMNominal > 0 {
			item.Electronics.RPMNominal = math.Trunc(item.Electronics.RPMNominal * (0.9 + rng.Float64()*0.2))
		}
		out = append(out, item)
		currentID++
	}
	return out
}

func clonePart(p types.Part) types.Part {
	c := p
	if p.Geometry != nil {
		g := *p.Geometry
		c.Geometry = &g
	}
	if p.Electronics != nil {
		e := *p.Electronics
		c.Electronics = &e
	}
	if p.Scores != nil {
		s := *p.Scores
		c.Scores = &s
	}
	if len(p.Roles) > 0 {
		c.Roles = append([]string(nil), p.Roles...)
	}
	if len(p.Connectors) > 0 {
		c.Connectors = append([]types.Connector(nil), p.Connectors...)
	}
	return c
}

// benchmarkRequest is deliberately heavy: two functions plus sensors so the
// run exercises most of the selection paths.
func benchmarkRequest() *types.ConfigRequest {
	budget := 100000.0
	weight := 50000.0
	return &types.ConfigRequest{
		Functions:    []string{"drive", "fly", "scan"},
		SubFunctions: map[string]string{"drive": "wheels", "fly": "quadcopter"},
		Budget:       &budget,
		Weight:       &weight,
		Priority:     "speed",
		Sensors:      []string{"Distance sensor (US)", "Gyroscope", "Camera"},
	}
}
