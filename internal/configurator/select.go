package configurator

import (
	"strings"

	"github.com/robokit/robokit-backend/internal/types"
)

// Pseudo-categories that really live inside another category.
var aliasCategory = map[string]string{
	"wing":       types.CategoryStructure,
	"wing_plate": types.CategoryStructure,
}

// findBest resolves one blueprint entry to a single catalog part, or nil
// when the catalog cannot satisfy it. Stages narrow the candidate set in
// order: alias resolution, category lookup, domain filter, role filter,
// name hint, pseudo-category re-filter, priority ranking. Apart from the
// category lookup and the domain filter, a stage that would empty the set
// is skipped instead.
func (e *Engine) findBest(category, priority, nameHint, role string, allowedDomains []string) *types.Part {
	originalCategory := category
	baseCategory := category
	if base, ok := aliasCategory[category]; ok {
		baseCategory = base
	}
	if (originalCategory == "wing" || originalCategory == "wing_plate") && role == "" {
		role = "wing"
	}

	candidates := e.byCategory[baseCategory]
	if len(candidates) == 0 {
		return nil
	}

	if allowedDomains != nil {
		candidates = filterByDomain(candidates, allowedDomains)
		if len(candidates) == 0 {
			return nil
		}
	}

	candidates = applyRoleFilter(candidates, baseCategory, role)

	if nameHint != "" {
		filtered := keep(candidates, func(c *types.Part) bool {
			return nameContains(c, strings.ToLower(nameHint))
		})
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	switch baseCategory {
	case types.CategoryMotor:
		return pickTop(candidates, func(c *types.Part) []float64 {
			return motorKey(c, priority)
		})
	case types.CategoryStructure:
		return pickTop(candidates, func(c *types.Part) []float64 {
			return structureKey(c, priority)
		})
	default:
		return pickTop(candidates, func(c *types.Part) []float64 {
			return generalKey(c, priority)
		})
	}
}
