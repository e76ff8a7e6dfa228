package configurator

import (
	"strings"

	"github.com/robokit/robokit-backend/internal/types"
)

// filterByDomain keeps candidates whose domain is universal or listed in
// allowed. A nil/empty allowed set means no restriction.
func filterByDomain(candidates []*types.Part, allowed []string) []*types.Part {
	if len(allowed) == 0 {
		return candidates
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, d := range allowed {
		allowedSet[d] = struct{}{}
	}
	result := make([]*types.Part, 0, len(candidates))
	for _, c := range candidates {
		dom := c.Domain
		if dom == "" {
			dom = types.DomainUniversal
		}
		if dom == types.DomainUniversal {
			result = append(result, c)
			continue
		}
		if _, ok := allowedSet[dom]; ok {
			result = append(result, c)
		}
	}
	return result
}

// applyRoleFilter narrows candidates to the semantic role within a
// category. A role that would eliminate every candidate falls back to the
// unfiltered set instead of starving the selection.
func applyRoleFilter(candidates []*types.Part, category, role string) []*types.Part {
	if role == "" {
		return candidates
	}

	if category == types.CategoryStructure {
		switch role {
		case "body_plate":
			return fallback(candidates, func(c *types.Part) bool {
				return familyIn(c, "plate", "frame", "wing_plate", "hull_frame") && sizeIn(c, "medium", "large")
			})
		case "body_brick":
			return fallback(candidates, func(c *types.Part) bool {
				return familyIn(c, "brick", "panel", "hull_frame") && sizeIn(c, "medium", "large")
			})
		case "beam":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "beam"
			})
		case "axle":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "axle" || hasConnector(c, "axle")
			})
		case "pin":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "pin" || hasConnector(c, "pin")
			})
		case "gear":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "gear"
			})
		case "small_brick":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "brick" && sizeIn(c, "small")
			})
		case "small_plate":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "plate" && sizeIn(c, "small")
			})
		case "small_detail":
			return fallback(candidates, func(c *types.Part) bool {
				return sizeIn(c, "small") && (c.PrimaryRole == "" || c.PrimaryRole == "structural")
			})
		case "kit":
			return fallback(candidates, func(c *types.Part) bool {
				return nameContains(c, "kit") || nameContains(c, "set")
			})
		case "gearbox":
			filtered := keep(candidates, func(c *types.Part) bool {
				return nameContains(c, "gearbox")
			})
			if len(filtered) > 0 {
				return filtered
			}
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "gear"
			})
		case "wing":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "wing_plate" || nameContains(c, "wing")
			})
		case "hull":
			return fallback(candidates, func(c *types.Part) bool {
				return c.Family == "hull_frame" || nameContains(c, "hull")
			})
		}
	}

	if category == types.CategoryAccessory && role == "lights" {
		return fallback(candidates, func(c *types.Part) bool {
			return nameContains(c, "light") || nameContains(c, "led") || nameContains(c, "lamp")
		})
	}

	return candidates
}

func keep(candidates []*types.Part, pred func(*types.Part) bool) []*types.Part {
	result := make([]*types.Part, 0, len(candidates))
	for _, c := range candidates {
		if pred(c) {
			result = append(result, c)
		}
	}
	return result
}

func fallback(candidates []*types.Part, pred func(*types.Part) bool) []*types.Part {
	filtered := keep(candidates, pred)
	if len(filtered) > 0 {
		return filtered
	}
	return candidates
}

func familyIn(c *types.Part, families ...string) bool {
	for _, f := range families {
		if c.Family == f {
			return true
		}
	}
	return false
}

func sizeIn(c *types.Part, sizes ...string) bool {
	size := "medium"
	if c.Geometry != nil && c.Geometry.SizeClass != "" {
		size = c.Geometry.SizeClass
	}
	for _, s := range sizes {
		if size == s {
			return true
		}
	}
	return false
}

func hasConnector(c *types.Part, connType string) bool {
	for _, conn := range c.Connectors {
		if conn.Type == connType {
			return true
		}
	}
	return false
}

func nameContains(c *types.Part, token string) bool {
	return strings.Contains(strings.ToLower(c.Name), token)
}
