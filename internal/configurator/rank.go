package configurator

import (
	"github.com/robokit/robokit-backend/internal/types"
)

// Ranking keys are descending tuples: the candidate with the
// lexicographically greatest key wins, catalog order breaking ties.

func rpm(p *types.Part) float64 {
	if p.Electronics == nil {
		return 0
	}
	return p.Electronics.RPMNominal
}

func torque(p *types.Part) float64 {
	if p.Electronics == nil {
		return 0
	}
	return p.Electronics.TorqueNominalNcm
}

func strength(p *types.Part) float64 {
	if p.Scores == nil {
		return 0
	}
	return p.Scores.StructuralStrength
}

func costEfficiency(p *types.Part) float64 {
	if p.Scores == nil {
		return 0
	}
	return p.Scores.CostEfficiency
}

func connectionVersatility(p *types.Part) float64 {
	if p.Scores == nil {
		return 0
	}
	return p.Scores.ConnectionVersatility
}

func studsTotal(p *types.Part) float64 {
	if p.Geometry == nil {
		return 0
	}
	return float64(p.Geometry.StudLength * p.Geometry.StudWidth)
}

func motorKey(p *types.Part, priority string) []float64 {
	perf := rpm(p) * torque(p)
	switch priority {
	case "speed":
		return []float64{rpm(p), torque(p), -p.Price}
	case "stability":
		return []float64{torque(p), p.Weight, -p.Price}
	case "cheapness":
		return []float64{-p.Price, perf, torque(p)}
	case "durability":
		return []float64{p.Weight, torque(p), -p.Price}
	default:
		return []float64{perf, -p.Price}
	}
}

func structureKey(p *types.Part, priority string) []float64 {
	studs := studsTotal(p)
	str := strength(p)
	costEff := costEfficiency(p)
	connVers := connectionVersatility(p)

	// Plain catalogs carry no scoring metadata at all; price is the only
	// signal left.
	if studs == 0 && str == 0 && costEff == 0 && connVers == 0 {
		return []float64{-p.Price}
	}

	switch priority {
	case "cheapness":
		return []float64{costEff, str, connVers, -p.Price}
	default: // durability, speed, stability: a good load-bearing part
		return []float64{str, connVers, studs, -p.Price}
	}
}

func generalKey(p *types.Part, priority string) []float64 {
	switch priority {
	case "cheapness":
		return []float64{-p.Price, costEfficiency(p)}
	case "durability":
		return []float64{strength(p), -p.Price}
	case "speed":
		return []float64{rpm(p), -p.Price}
	case "stability":
		return []float64{torque(p), p.Weight, -p.Price}
	default:
		return []float64{-p.Price}
	}
}

// keyGreater compares two ranking tuples element-wise; a longer tuple
// beats a shorter one that matches it on every shared element.
func keyGreater(a, b []float64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}

// pickTop returns the candidate with the greatest key; the first of equal
// candidates wins, which keeps selection deterministic for a stable
// catalog order.
func pickTop(candidates []*types.Part, key func(*types.Part) []float64) *types.Part {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	bestKey := key(best)
	for _, c := range candidates[1:] {
		k := key(c)
		if keyGreater(k, bestKey) {
			best = c
			bestKey = k
		}
	}
	return best
}
