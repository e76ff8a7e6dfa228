package configurator

import (
	"strings"

	"github.com/robokit/robokit-backend/internal/types"
)

// familyKeywords maps name tokens to structural families. Matching is
// case-insensitive, substring-based, first match wins, so the order here
// is load-bearing: "wing plate" must classify as wing_plate, not plate.
var familyKeywords = []struct {
	family string
	tokens []string
}{
	{"wing_plate", []string{"wing", "wedge"}},
	{"hull_frame", []string{"hull"}},
	{"plate", []string{"plate"}},
	{"brick", []string{"brick"}},
	{"panel", []string{"panel"}},
	{"beam", []string{"beam"}},
	{"connector", []string{"connector"}},
	{"pin", []string{"pin"}},
	{"axle", []string{"axle"}},
	{"gear", []string{"gear"}},
}

// Normalize returns a normalized copy of the catalog. The input slice is
// left untouched, so one raw catalog can safely feed many engines.
// Running Normalize over already-normalized parts is a no-op.
func Normalize(parts []types.Part) []types.Part {
	out := make([]types.Part, len(parts))
	for i := range parts {
		out[i] = normalizePart(parts[i])
	}
	return out
}

func normalizePart(p types.Part) types.Part {
	if p.Domain == "" {
		p.Domain = defaultDomain(p.Category)
	}
	if p.Family == "" {
		p.Family = inferFamily(p.Name)
	}
	if p.Geometry == nil {
		p.Geometry = &types.Geometry{}
	}
	if p.Scores == nil {
		p.Scores = &types.Scores{}
	}
	if p.Connectors == nil {
		p.Connectors = []types.Connector{}
	}
	if p.Roles == nil {
		p.Roles = []string{}
	}
	return p
}

func defaultDomain(category string) string {
	switch category {
	case "water":
		return types.DomainWater
	case "propeller":
		return types.DomainAir
	case "wheel", "tire", "track", "tread":
		return types.DomainGround
	default:
		return types.DomainUniversal
	}
}

func inferFamily(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range familyKeywords {
		for _, token := range entry.tokens {
			if strings.Contains(lower, token) {
				return entry.family
			}
		}
	}
	return ""
}
