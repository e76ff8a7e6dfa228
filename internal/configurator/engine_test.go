package configurator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/robokit/robokit-backend/internal/types"
)

func fptr(v float64) *float64 { return &v }

func testCatalog() []types.Part {
	return []types.Part{
		{ID: 1, Name: "Servo Motor M", Category: "motor", Price: 10, Weight: 10,
			Electronics: &types.Electronics{RPMNominal: 100, TorqueNominalNcm: 5}},
		{ID: 2, Name: "Wheel 30mm", Category: "wheel", Price: 5, Weight: 2},
		{ID: 3, Name: "Tire 30mm", Category: "tire", Price: 5, Weight: 1},
		{ID: 4, Name: "Smart Controller Hub", Category: "controller", Price: 50, Weight: 100},
		{ID: 5, Name: "Battery Box AA", Category: "power", Price: 20, Weight: 150},
		{ID: 6, Name: "Plate 4x8", Category: "structure", Price: 2, Weight: 8,
			Geometry: &types.Geometry{SizeClass: "medium", StudLength: 8, StudWidth: 4}},
		{ID: 7, Name: "Brick 2x4", Category: "structure", Price: 1, Weight: 5,
			Geometry: &types.Geometry{SizeClass: "medium", StudLength: 4, StudWidth: 2}},
		{ID: 8, Name: "Plate 1x2", Category: "structure", Price: 0.5, Weight: 1,
			Geometry: &types.Geometry{SizeClass: "small", StudLength: 2, StudWidth: 1}},
		{ID: 9, Name: "Brick 1x1", Category: "structure", Price: 0.5, Weight: 1,
			Geometry: &types.Geometry{SizeClass: "small", StudLength: 1, StudWidth: 1}},
		{ID: 10, Name: "Technic Beam 7", Category: "structure", Price: 1.5, Weight: 3},
		{ID: 11, Name: "Axle 5", Category: "structure", Price: 1, Weight: 2},
		{ID: 12, Name: "Technic Pin", Category: "structure", Price: 0.5, Weight: 1},
		{ID: 13, Name: "Gear 24T", Category: "structure", Price: 1, Weight: 2},
		{ID: 14, Name: "Builder Kit Basic", Category: "structure", Price: 10, Weight: 50},
		{ID: 15, Name: "LED Light Pair", Category: "accessory", Price: 3, Weight: 2},
		{ID: 16, Name: "Ultrasonic Distance Sensor", Category: "sensor", Price: 15, Weight: 10},
		{ID: 17, Name: "Gyroscope Sensor", Category: "sensor", Price: 12, Weight: 8},
		{ID: 18, Name: "Propeller 9443", Category: "propeller", Price: 4, Weight: 3},
		{ID: 19, Name: "Water Jet Impeller", Category: "water", Price: 8, Weight: 6},
		{ID: 20, Name: "Claw Gripper Arm", Category: "manipulator", Price: 18, Weight: 30},
		{ID: 21, Name: "Track Tread Set", Category: "track", Price: 12, Weight: 20},
		{ID: 22, Name: "Hull Frame 16x8", Category: "structure", Price: 9, Weight: 40,
			Geometry: &types.Geometry{SizeClass: "large", StudLength: 16, StudWidth: 8}},
		{ID: 23, Name: "Wing Plate 8x4", Category: "structure", Price: 3, Weight: 6,
			Geometry: &types.Geometry{SizeClass: "medium", StudLength: 8, StudWidth: 4}},
		{ID: 24, Name: "Basic Motor S", Category: "motor", Price: 6, Weight: 8,
			Electronics: &types.Electronics{RPMNominal: 60, TorqueNominalNcm: 3}},
	}
}

func driveRequest() types.ConfigRequest {
	return types.ConfigRequest{
		Functions: []string{"drive"},
		Budget:    fptr(1000),
		Weight:    fptr(1000),
		Priority:  "speed",
	}
}

func countByCategory(selected []types.Part, category string) int {
	count := 0
	for _, p := range selected {
		if p.Category == category {
			count++
		}
	}
	return count
}

func TestConfigure_MissingInput(t *testing.T) {
	engine := New(nil, testCatalog())

	cases := []types.ConfigRequest{
		{Functions: nil, Budget: fptr(100), Weight: fptr(100)},
		{Functions: []string{"drive"}, Budget: nil, Weight: fptr(100)},
		{Functions: []string{"drive"}, Budget: fptr(100), Weight: nil},
	}
	for i, req := range cases {
		_, err := engine.Configure(req)
		if !errors.Is(err, ErrMissingInput) {
			t.Fatalf("case %d: expected ErrMissingInput, got %v", i, err)
		}
	}
}

func TestConfigure_DriveScenario(t *testing.T) {
	engine := New(nil, testCatalog())

	resp, err := engine.Configure(driveRequest())
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	if got := countByCategory(resp.Selected, "motor"); got != 2 {
		t.Fatalf("expected 2 motors, got %d", got)
	}
	if got := countByCategory(resp.Selected, "wheel"); got != 4 {
		t.Fatalf("expected 4 wheels, got %d", got)
	}
	if got := countByCategory(resp.Selected, "tire"); got != 4 {
		t.Fatalf("expected 4 tires, got %d", got)
	}

	// Priority "speed" must prefer the high-rpm motor.
	for _, p := range resp.Selected {
		if p.Category == "motor" && p.ID != 1 {
			t.Fatalf("expected motor id=1 under speed priority, got id=%d", p.ID)
		}
	}

	var sum, weightSum float64
	for _, p := range resp.Selected {
		sum += p.Price
		weightSum += p.Weight
	}
	if resp.TotalPrice != round2(sum) {
		t.Fatalf("total_price %v != sum of part prices %v", resp.TotalPrice, round2(sum))
	}
	if resp.TotalWeight != round2(weightSum) {
		t.Fatalf("total_weight %v != sum of part weights %v", resp.TotalWeight, round2(weightSum))
	}
	if resp.RemainingBudget != round2(1000-sum) {
		t.Fatalf("remaining_budget %v != budget minus total %v", resp.RemainingBudget, round2(1000-sum))
	}
	if resp.TotalPrice > 1000 || resp.TotalWeight > 1000 {
		t.Fatalf("ceilings exceeded on a successful result: price=%v weight=%v", resp.TotalPrice, resp.TotalWeight)
	}

	seen := map[string]bool{}
	for _, p := range resp.Selected {
		if p.UniqueID == "" {
			t.Fatalf("selected part %d has no unique id", p.ID)
		}
		if seen[p.UniqueID] {
			t.Fatalf("duplicate unique id %s", p.UniqueID)
		}
		seen[p.UniqueID] = true
	}
}

func TestConfigure_BudgetExceeded(t *testing.T) {
	engine := New(nil, testCatalog())

	req := driveRequest()
	req.Budget = fptr(1)
	_, err := engine.Configure(req)

	var budgetErr *BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError, got %v", err)
	}
	if budgetErr.Budget != 1 {
		t.Fatalf("expected budget ceiling 1, got %v", budgetErr.Budget)
	}
}

func TestConfigure_WeightExceeded(t *testing.T) {
	engine := New(nil, testCatalog())

	req := driveRequest()
	req.Weight = fptr(1)
	_, err := engine.Configure(req)

	var weightErr *WeightError
	if !errors.As(err, &weightErr) {
		t.Fatalf("expected WeightError, got %v", err)
	}
}

func TestConfigure_BudgetCheckedBeforeWeight(t *testing.T) {
	engine := New(nil, testCatalog())

	req := driveRequest()
	req.Budget = fptr(1)
	req.Weight = fptr(1)
	_, err := engine.Configure(req)

	var budgetErr *BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError when both ceilings fail, got %v", err)
	}
}

func TestConfigure_UnavailableCategory(t *testing.T) {
	catalog := []types.Part{}
	for _, p := range testCatalog() {
		if p.Category != "controller" {
			catalog = append(catalog, p)
		}
	}
	engine := New(nil, catalog)

	_, err := engine.Configure(driveRequest())

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if unavailable.Key != "controller" {
		t.Fatalf("expected missing key controller, got %s", unavailable.Key)
	}
}

func TestConfigure_NoFlyDropsAirParts(t *testing.T) {
	engine := New(nil, testCatalog())

	resp, err := engine.Configure(driveRequest())
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	for _, p := range resp.Selected {
		if p.Domain == types.DomainAir || p.Category == "propeller" || p.Category == "wing" {
			t.Fatalf("air part %q selected without a fly function", p.Name)
		}
	}
}

func TestConfigure_NoSwimDropsWaterParts(t *testing.T) {
	// The only accessory is water-domain: the lights slot fails its ground
	// filter, relaxation picks the water accessory, and the forbidden-domain
	// pass must then strip it without failing the configuration.
	catalog := testCatalog()
	for i := range catalog {
		if catalog[i].Category == "accessory" {
			catalog[i].Domain = types.DomainWater
		}
	}
	engine := New(nil, catalog)

	resp, err := engine.Configure(driveRequest())
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	for _, p := range resp.Selected {
		if p.Domain == types.DomainWater || p.Category == "water" {
			t.Fatalf("water part %q selected without a swim function", p.Name)
		}
	}
	if got := countByCategory(resp.Selected, "accessory"); got != 0 {
		t.Fatalf("expected the water accessory to be dropped, found %d", got)
	}
}

func TestConfigure_SwimGuaranteesHull(t *testing.T) {
	engine := New(nil, testCatalog())

	req := types.ConfigRequest{
		Functions: []string{"swim"},
		Budget:    fptr(1000),
		Weight:    fptr(1000),
	}
	resp, err := engine.Configure(req)
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	if got := countByCategory(resp.Selected, "water"); got != 2 {
		t.Fatalf("expected 2 water propulsion units, got %d", got)
	}
	if got := countByCategory(resp.Selected, "motor"); got != 2 {
		t.Fatalf("expected 2 motors, got %d", got)
	}

	hulls := 0
	for _, p := range resp.Selected {
		if p.Family == "hull_frame" {
			hulls++
		}
	}
	if hulls == 0 {
		t.Fatalf("swim configuration carries no hull part")
	}
}

func TestConfigure_Deterministic(t *testing.T) {
	engine := New(nil, testCatalog())

	req := types.ConfigRequest{
		Functions:    []string{"drive", "fly", "manipulate"},
		SubFunctions: map[string]string{"fly": "quadcopter"},
		Budget:       fptr(10000),
		Weight:       fptr(10000),
		Priority:     "durability",
		Sensors:      []string{"Gyroscope", "Ultrasonic"},
	}

	first, err := engine.Configure(req)
	if err != nil {
		t.Fatalf("first configure failed: %v", err)
	}
	second, err := engine.Configure(req)
	if err != nil {
		t.Fatalf("second configure failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical requests produced different results")
	}
}

func TestConfigure_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	engine := New(nil, catalog)

	if _, err := engine.Configure(driveRequest()); err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	for i, p := range catalog {
		if p.UniqueID != "" {
			t.Fatalf("catalog part %d was stamped with a unique id", i)
		}
		if p.Domain != "" && p.Domain != testCatalog()[i].Domain {
			t.Fatalf("catalog part %d domain mutated", i)
		}
	}
	if catalog[1].Domain != "" {
		t.Fatalf("raw wheel gained a domain: normalization leaked into the input")
	}
}
