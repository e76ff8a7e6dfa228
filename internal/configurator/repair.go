package configurator

import (
	"strings"

	"github.com/robokit/robokit-backend/internal/types"
)

// repair enforces cross-part invariants that independent per-role
// selection cannot guarantee. Best-effort: a shortfall with no candidate
// to fill it is left as-is rather than failing the configuration.
func (e *Engine) repair(chosen []*types.Part, priority string, hasSwim bool) []*types.Part {
	chosen = e.pairWheelsAndTires(chosen, priority)
	if hasSwim {
		chosen = e.ensureHull(chosen, priority)
	}
	return chosen
}

// pairWheelsAndTires synthesizes the missing side when only wheels or
// only tires were selected, duplicating the best match to equal counts.
func (e *Engine) pairWheelsAndTires(chosen []*types.Part, priority string) []*types.Part {
	groundUni := []string{types.DomainGround, types.DomainUniversal}

	wheels := countCategory(chosen, types.CategoryWheel)
	tires := countCategory(chosen, types.CategoryTire)
	if wheels > 0 && tires == 0 {
		if tire := e.findBest(types.CategoryTire, priority, "", "", groundUni); tire != nil {
			for i := 0; i < wheels; i++ {
				chosen = append(chosen, tire)
			}
		}
	}

	wheels = countCategory(chosen, types.CategoryWheel)
	tires = countCategory(chosen, types.CategoryTire)
	if tires > 0 && wheels == 0 {
		if wheel := e.findBest(types.CategoryWheel, priority, "", "", groundUni); wheel != nil {
			for i := 0; i < tires; i++ {
				chosen = append(chosen, wheel)
			}
		}
	}

	return chosen
}

// ensureHull guarantees a swimming build has a hull to float on: at least
// one hull part, and at least three hull-related structural parts overall.
func (e *Engine) ensureHull(chosen []*types.Part, priority string) []*types.Part {
	waterUni := []string{types.DomainWater, types.DomainUniversal}

	hulls := 0
	related := 0
	for _, part := range chosen {
		if part.Category != types.CategoryStructure {
			continue
		}
		if part.Family == "hull_frame" || strings.Contains(strings.ToLower(part.Name), "hull") {
			hulls++
			related++
			continue
		}
		if part.Family == "plate" || part.Family == "frame" {
			related++
		}
	}

	if hulls == 0 {
		if hull := e.findBest(types.CategoryStructure, priority, "hull", "hull", waterUni); hull != nil {
			chosen = append(chosen, hull)
			related++
		}
	}

	if related < 3 {
		if plate := e.findBest(types.CategoryStructure, priority, "", "body_plate", waterUni); plate != nil {
			for ; related < 3; related++ {
				chosen = append(chosen, plate)
			}
		}
	}

	return chosen
}

func countCategory(parts []*types.Part, category string) int {
	count := 0
	for _, part := range parts {
		if part.Category == category {
			count++
		}
	}
	return count
}
