package configurator

import (
	"math"
	"strings"

	"github.com/robokit/robokit-backend/internal/types"
)

// Canonical function vocabulary. Matching is substring-based so request
// values like "drive around" still land on the drive branch.
const (
	FunctionDrive      = "drive"
	FunctionFly        = "fly"
	FunctionSwim       = "swim"
	FunctionManipulate = "manipulate"
)

// Human sub-choices mapped to technical categories.
var functionCategories = map[string]map[string]string{
	FunctionDrive: {
		"tracks": types.CategoryTrack,
		"wheels": types.CategoryWheel,
		"legs":   types.CategoryLeg,
	},
	FunctionFly: {
		"quadcopter": types.CategoryPropeller,
		"helicopter": types.CategoryPropeller,
		"airplane":   types.CategoryWing, // airplane goes through the wing pseudo-category
	},
	FunctionSwim: {
		"jets":     types.CategoryWater,
		"impeller": types.CategoryWater,
		"fins":     types.CategoryWater,
	},
	FunctionManipulate: {
		"claw":            types.CategoryManipulator,
		"linear actuator": types.CategoryManipulator,
		"suction cup":     types.CategoryManipulator,
		"bionic arm":      types.CategoryManipulator,
	},
}

var allDomains = []string{types.DomainUniversal, types.DomainGround, types.DomainAir, types.DomainWater}

type blueprintEntry struct {
	category string
	role     string
	quantity int
	nameHint string
	domains  []string
}

// blueprint is the quantified demand list for one request. Keys are
// "category" or "category:role"; insertion order is preserved so that two
// identical requests always resolve entries in the same order.
type blueprint struct {
	order   []string
	entries map[string]*blueprintEntry
}

func newBlueprint() *blueprint {
	return &blueprint{entries: map[string]*blueprintEntry{}}
}

func (bp *blueprint) add(key string, qty int, nameHint string, domains []string) {
	entry, ok := bp.entries[key]
	if !ok {
		category, role := key, ""
		if idx := strings.IndexByte(key, ':'); idx >= 0 {
			category, role = key[:idx], key[idx+1:]
		}
		entry = &blueprintEntry{
			category: category,
			role:     role,
			domains:  allDomains,
		}
		bp.entries[key] = entry
		bp.order = append(bp.order, key)
	}
	entry.quantity += qty
	if nameHint != "" && entry.nameHint == "" {
		entry.nameHint = nameHint
	}
	if domains != nil {
		entry.domains = domains
	}
}

// scaled rounds base×mult to the nearest integer and floors the result at
// min, so shrunken builds never lose a structurally required part.
func scaled(base int, mult float64, min int) int {
	qty := int(math.Round(float64(base) * mult))
	if qty < min {
		return min
	}
	return qty
}

func subChoiceCategory(function, subChoice, def string) string {
	if table, ok := functionCategories[function]; ok {
		if cat, ok := table[subChoice]; ok {
			return cat
		}
	}
	return def
}

// buildBlueprint translates the functional request into the demand list.
// Deterministic for a given request; the request itself is never mutated.
func buildBlueprint(req types.ConfigRequest) (*blueprint, error) {
	bp := newBlueprint()

	sizePref := strings.ToLower(req.SizeClass)
	if sizePref == "" {
		sizePref = "medium"
	}
	complexity := req.ComplexityLevel
	if complexity == 0 {
		complexity = 2
	}
	decorationLevel := strings.ToLower(req.DecorationLevel)
	if decorationLevel == "" {
		decorationLevel = "normal"
	}
	priority := strings.ToLower(req.Priority)

	var structMult, gearMult, smallMult float64
	switch complexity {
	case 1:
		structMult, gearMult, smallMult = 0.7, 0.5, 0.8
	case 3:
		structMult, gearMult, smallMult = 1.4, 1.5, 1.2
	default:
		structMult, gearMult, smallMult = 1.0, 1.0, 1.0
	}

	bodyMult := 1.0
	switch sizePref {
	case "small":
		bodyMult = 0.7
	case "large":
		bodyMult = 1.5
	}

	universal := []string{types.DomainUniversal}

	// Baseline for any robot: brain, power, body, and a pile of small parts.
	bp.add("controller", 1, "", universal)
	bp.add("power", 1, "", universal)
	bp.add("structure:body_plate", scaled(1, bodyMult, 1), "", universal)
	bp.add("structure:body_brick", scaled(2, bodyMult, 1), "", universal)
	bp.add("structure:kit", scaled(1, structMult, 1), "", universal)
	bp.add("structure:small_brick", scaled(4, smallMult, 2), "", universal)
	bp.add("structure:small_plate", scaled(4, smallMult, 2), "", universal)
	bp.add("structure:small_detail", scaled(4, smallMult, 2), "", universal)

	for _, function := range req.Functions {
		funcLower := strings.ToLower(function)
		subChoice := strings.ToLower(req.SubFunctions[function])

		switch {
		case strings.Contains(funcLower, FunctionDrive):
			driveType := subChoiceCategory(FunctionDrive, subChoice, types.CategoryWheel)

			bp.add("motor", 2, "", []string{types.DomainGround, types.DomainUniversal})
			bp.add(driveType, 4, "", []string{types.DomainGround})
			if driveType == types.CategoryWheel {
				// Wheels ride paired with tires.
				bp.add("tire", 4, "", []string{types.DomainGround})
			}

			groundUni := []string{types.DomainGround, types.DomainUniversal}
			bp.add("structure:beam", scaled(4, structMult, 2), "", groundUni)
			bp.add("structure:axle", scaled(2, structMult, 1), "", groundUni)
			bp.add("structure:pin", scaled(6, structMult, 4), "", groundUni)

			if strings.Contains(subChoice, "track") || priority == "stability" {
				bp.add("structure:gearbox", scaled(1, gearMult, 1), "", groundUni)
				bp.add("structure:gear", scaled(2, gearMult, 1), "", groundUni)
			}

			if decorationLevel != "minimal" {
				lightsQty := 1
				if decorationLevel == "rich" {
					lightsQty = 2
				}
				bp.add("accessory:lights", lightsQty, "", groundUni)
			}

		case strings.Contains(funcLower, FunctionFly):
			flyType := subChoiceCategory(FunctionFly, subChoice, types.CategoryPropeller)
			airUni := []string{types.DomainAir, types.DomainUniversal}

			switch {
			case strings.Contains(subChoice, "quad"):
				bp.add("motor", 4, "", airUni)
				bp.add(flyType, 4, "", []string{types.DomainAir})
			case strings.Contains(subChoice, "helicopter"):
				bp.add("motor", 1, "", airUni)
				bp.add(flyType, 1, "", []string{types.DomainAir})
			case strings.Contains(subChoice, "plane"):
				bp.add("motor", 2, "", airUni)
				bp.add("wing", 2, "", []string{types.DomainAir})
				bp.add("structure:body_plate", scaled(1, bodyMult, 1), "fuselage", airUni)
				bp.add("propeller", 2, "turbine", airUni)
			default:
				bp.add("motor", 2, "", airUni)
				bp.add(flyType, 2, "", []string{types.DomainAir})
			}

			bp.add("structure:beam", scaled(2, structMult, 2), "", airUni)
			bp.add("structure:pin", scaled(4, structMult, 2), "", airUni)

		case strings.Contains(funcLower, FunctionManipulate):
			manipType := subChoiceCategory(FunctionManipulate, subChoice, types.CategoryManipulator)
			nameHint := ""
			if strings.Contains(subChoice, "arm") {
				nameHint = "arm"
			}

			bp.add(manipType, 1, nameHint, universal)
			bp.add("motor", 1, "", universal)
			bp.add("structure:beam", scaled(3, structMult, 3), "", universal)
			bp.add("structure:pin", scaled(6, structMult, 4), "", universal)
			bp.add("structure:axle", scaled(2, structMult, 2), "", universal)

		case strings.Contains(funcLower, FunctionSwim):
			waterType := subChoiceCategory(FunctionSwim, subChoice, types.CategoryWater)
			waterUni := []string{types.DomainWater, types.DomainUniversal}

			bp.add("motor", 2, "", waterUni)
			bp.add(waterType, 2, "", []string{types.DomainWater})

			// Boat body: extra plating plus an explicit hull.
			bp.add("structure:body_plate", scaled(2, bodyMult, 2), "", waterUni)
			bp.add("structure:body_brick", scaled(1, bodyMult, 1), "", waterUni)
			bp.add("structure:hull", scaled(1, bodyMult*structMult, 1), "", waterUni)

			bp.add("structure:beam", scaled(2, structMult, 2), "", waterUni)
			bp.add("structure:axle", scaled(1, structMult, 1), "", waterUni)
			bp.add("structure:pin", scaled(4, structMult, 2), "", waterUni)
		}
	}

	if len(req.Sensors) > 0 {
		bp.add("sensor", len(req.Sensors), "", universal)
	}

	return bp, nil
}
