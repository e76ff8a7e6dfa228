package configurator

import (
	"testing"

	"github.com/robokit/robokit-backend/internal/types"
)

func partsByID(engine *Engine) map[int]*types.Part {
	byID := map[int]*types.Part{}
	for i := range engine.parts {
		byID[engine.parts[i].ID] = &engine.parts[i]
	}
	return byID
}

func TestRepair_SynthesizesTiresForWheels(t *testing.T) {
	engine := New(nil, testCatalog())
	byID := partsByID(engine)

	chosen := []*types.Part{byID[2], byID[2], byID[2]} // three bare wheels
	repaired := engine.repair(chosen, "", false)

	wheels, tires := 0, 0
	for _, p := range repaired {
		switch p.Category {
		case "wheel":
			wheels++
		case "tire":
			tires++
		}
	}
	if wheels != 3 || tires != 3 {
		t.Fatalf("expected 3 wheels and 3 tires, got %d/%d", wheels, tires)
	}
}

func TestRepair_SynthesizesWheelsForTires(t *testing.T) {
	engine := New(nil, testCatalog())
	byID := partsByID(engine)

	chosen := []*types.Part{byID[3], byID[3]} // two bare tires
	repaired := engine.repair(chosen, "", false)

	wheels, tires := 0, 0
	for _, p := range repaired {
		switch p.Category {
		case "wheel":
			wheels++
		case "tire":
			tires++
		}
	}
	if wheels != 2 || tires != 2 {
		t.Fatalf("expected 2 wheels and 2 tires, got %d/%d", wheels, tires)
	}
}

func TestRepair_NoTireCandidateLeavesShortfall(t *testing.T) {
	catalog := []types.Part{}
	for _, p := range testCatalog() {
		if p.Category != "tire" {
			catalog = append(catalog, p)
		}
	}
	engine := New(nil, catalog)
	byID := partsByID(engine)

	chosen := []*types.Part{byID[2]} // one wheel, no tire in the catalog
	repaired := engine.repair(chosen, "", false)

	// Best-effort: the missing side stays missing, no error, no panic.
	if len(repaired) != 1 {
		t.Fatalf("expected the shortfall to be left alone, got %d parts", len(repaired))
	}
}

func TestRepair_AddsHullForSwim(t *testing.T) {
	engine := New(nil, testCatalog())
	byID := partsByID(engine)

	chosen := []*types.Part{byID[19]} // a water jet, no hull
	repaired := engine.repair(chosen, "", true)

	hulls := 0
	for _, p := range repaired {
		if p.Family == "hull_frame" {
			hulls++
		}
	}
	if hulls == 0 {
		t.Fatalf("swim repair did not add a hull")
	}

	// Hull plus plate padding must reach three hull-related parts.
	related := 0
	for _, p := range repaired {
		if p.Category != "structure" {
			continue
		}
		if p.Family == "hull_frame" || p.Family == "plate" || p.Family == "frame" {
			related++
		}
	}
	if related < 3 {
		t.Fatalf("expected at least 3 hull-related parts, got %d", related)
	}
}

func TestRepair_SwimWithHullPresentAddsNothing(t *testing.T) {
	engine := New(nil, testCatalog())
	byID := partsByID(engine)

	chosen := []*types.Part{byID[22], byID[22], byID[22]} // three hull frames
	repaired := engine.repair(chosen, "", true)

	if len(repaired) != 3 {
		t.Fatalf("repair touched a complete hull: %d parts", len(repaired))
	}
}
