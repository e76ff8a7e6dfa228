package configurator

import (
	"fmt"
	"math"
	"strings"

	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/types"
)

// Engine is the greedy robot configurator. It owns a normalized copy of
// the catalog and a category index built once at construction; nothing on
// the instance mutates per request, so a single Engine is safe to share
// across concurrent Configure calls.
type Engine struct {
	log        *logger.Logger
	parts      []types.Part
	byCategory map[string][]*types.Part
}

func New(log *logger.Logger, catalog []types.Part) *Engine {
	if log != nil {
		log = log.With("component", "ConfiguratorEngine")
	}
	parts := Normalize(catalog)
	byCategory := make(map[string][]*types.Part)
	for i := range parts {
		category := parts[i].Category
		if category == "" {
			category = "unknown"
		}
		byCategory[category] = append(byCategory[category], &parts[i])
	}
	return &Engine{log: log, parts: parts, byCategory: byCategory}
}

// Configure resolves one request against the catalog. Failure is
// all-or-nothing: any hard gap or exceeded ceiling discards the whole
// selection and returns a single typed error.
func (e *Engine) Configure(req types.ConfigRequest) (*types.ConfigResponse, error) {
	if len(req.Functions) == 0 || req.Budget == nil || req.Weight == nil {
		return nil, ErrMissingInput
	}

	bp, err := buildBlueprint(req)
	if err != nil {
		return nil, &PlanningError{Err: err}
	}

	priority := strings.ToLower(req.Priority)
	hasFly := hasFunction(req.Functions, FunctionFly)
	hasSwim := hasFunction(req.Functions, FunctionSwim)

	var chosen []*types.Part
	for _, key := range bp.order {
		entry := bp.entries[key]
		if entry.quantity <= 0 {
			continue
		}

		// Sensors resolve per requested name, one slot each.
		if entry.category == types.CategorySensor {
			for _, sensorName := range req.Sensors {
				part := e.findBestRelaxed(entry.category, priority, sensorName, "", []string{types.DomainUniversal})
				if part == nil {
					return nil, &UnavailableError{Key: fmt.Sprintf("sensor:%s", sensorName)}
				}
				chosen = append(chosen, part)
			}
			continue
		}

		part := e.findBestRelaxed(entry.category, priority, entry.nameHint, entry.role, entry.domains)
		if part == nil {
			return nil, &UnavailableError{Key: key}
		}
		for i := 0; i < entry.quantity; i++ {
			chosen = append(chosen, part)
		}
	}

	chosen = e.repair(chosen, priority, hasSwim)
	chosen = e.dropForbiddenDomains(chosen, hasFly, hasSwim)

	var totalPrice, totalWeight float64
	for _, part := range chosen {
		totalPrice += part.Price
		totalWeight += part.Weight
	}

	if totalPrice > *req.Budget {
		return nil, &BudgetError{Total: totalPrice, Budget: *req.Budget}
	}
	if totalWeight > *req.Weight {
		return nil, &WeightError{Total: totalWeight, Limit: *req.Weight}
	}

	selected := make([]types.Part, len(chosen))
	for i, part := range chosen {
		instance := *part
		instance.UniqueID = fmt.Sprintf("%d-%d", part.ID, i)
		selected[i] = instance
	}

	return &types.ConfigResponse{
		Selected:        selected,
		TotalPrice:      round2(totalPrice),
		TotalWeight:     round2(totalWeight),
		RemainingBudget: round2(*req.Budget - totalPrice),
	}, nil
}

// findBestRelaxed retries a failed selection once without the domain
// restriction before the caller gives up on the role entirely. The
// domain-forbidden pass downstream still strips anything that relaxation
// let through inappropriately.
func (e *Engine) findBestRelaxed(category, priority, nameHint, role string, allowedDomains []string) *types.Part {
	if part := e.findBest(category, priority, nameHint, role, allowedDomains); part != nil {
		return part
	}
	return e.findBest(category, priority, nameHint, role, nil)
}

// dropForbiddenDomains removes parts whose environment was never asked
// for: air gear without a fly function, water gear without a swim one.
func (e *Engine) dropForbiddenDomains(chosen []*types.Part, hasFly, hasSwim bool) []*types.Part {
	result := make([]*types.Part, 0, len(chosen))
	for _, part := range chosen {
		category := strings.ToLower(part.Category)
		domain := strings.ToLower(part.Domain)
		if domain == "" {
			domain = types.DomainUniversal
		}
		if !hasFly && (category == types.CategoryPropeller || category == types.CategoryWing || domain == types.DomainAir) {
			continue
		}
		if !hasSwim && (category == types.CategoryWater || domain == types.DomainWater) {
			continue
		}
		result = append(result, part)
	}
	return result
}

func hasFunction(functions []string, name string) bool {
	for _, f := range functions {
		if strings.Contains(strings.ToLower(f), name) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
