package configurator

import (
	"reflect"
	"testing"

	"github.com/robokit/robokit-backend/internal/types"
)

func TestNormalize_DomainDefaults(t *testing.T) {
	parts := Normalize([]types.Part{
		{ID: 1, Name: "Impeller", Category: "water"},
		{ID: 2, Name: "Prop", Category: "propeller"},
		{ID: 3, Name: "Wheel", Category: "wheel"},
		{ID: 4, Name: "Tire", Category: "tire"},
		{ID: 5, Name: "Tread", Category: "tread"},
		{ID: 6, Name: "Hub", Category: "controller"},
		{ID: 7, Name: "Marine Motor", Category: "motor", Domain: types.DomainWater},
	})

	expected := []string{
		types.DomainWater, types.DomainAir, types.DomainGround,
		types.DomainGround, types.DomainGround, types.DomainUniversal,
		types.DomainWater, // explicit domain survives
	}
	for i, p := range parts {
		if p.Domain != expected[i] {
			t.Fatalf("part %d: expected domain %s, got %s", p.ID, expected[i], p.Domain)
		}
	}
}

func TestNormalize_FamilyInferencePriority(t *testing.T) {
	cases := []struct {
		name   string
		family string
	}{
		{"Wing Plate 8x4", "wing_plate"}, // wing beats plate
		{"Hull Frame 16x8", "hull_frame"},
		{"Plate 4x8", "plate"},
		{"Brick 2x4", "brick"},
		{"Side Panel 1x4", "panel"},
		{"Technic Beam 11", "beam"},
		{"Angle Connector", "connector"},
		{"Technic Pin", "pin"},
		{"Axle 7", "axle"},
		{"Gear 40T", "gear"},
		{"Mystery Part", ""},
	}
	for _, tc := range cases {
		parts := Normalize([]types.Part{{ID: 1, Name: tc.name, Category: "structure"}})
		if parts[0].Family != tc.family {
			t.Fatalf("%q: expected family %q, got %q", tc.name, tc.family, parts[0].Family)
		}
	}
}

func TestNormalize_ExplicitFamilySurvives(t *testing.T) {
	parts := Normalize([]types.Part{
		{ID: 1, Name: "Wing Plate 8x4", Category: "structure", Family: "plate"},
	})
	if parts[0].Family != "plate" {
		t.Fatalf("explicit family overwritten: %q", parts[0].Family)
	}
}

func TestNormalize_ContainersPresent(t *testing.T) {
	parts := Normalize([]types.Part{{ID: 1, Name: "Bare", Category: "motor"}})

	p := parts[0]
	if p.Geometry == nil || p.Scores == nil || p.Connectors == nil || p.Roles == nil {
		t.Fatalf("normalization left a container field nil: %+v", p)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(testCatalog())
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second normalization changed already-normalized parts")
	}
}

func TestNormalize_InputUntouched(t *testing.T) {
	raw := []types.Part{{ID: 1, Name: "Wheel 30mm", Category: "wheel"}}
	_ = Normalize(raw)
	if raw[0].Domain != "" || raw[0].Geometry != nil {
		t.Fatalf("input slice was mutated: %+v", raw[0])
	}
}
