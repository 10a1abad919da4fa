package ecs

import (
	"reflect"
	"testing"
)

func reflectTypes(values ...any) []reflect.Type {
	types := make([]reflect.Type, len(values))
	for i, v := range values {
		types[i] = reflect.TypeOf(v)
	}
	return types
}

func TestWorldStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)

	world := NewWorld(registry)

	stats := world.CollectStats()
	if stats.ArchetypeCount != 0 {
		t.Errorf("expected 0 archetypes, got %d", stats.ArchetypeCount)
	}
	if stats.TotalEntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.TotalEntityCount)
	}

	world.Insert(42, "hello")
	world.Insert(100, "world")
	world.Insert(200.0, "test")

	stats = world.CollectStats()

	if stats.ArchetypeCount != 2 {
		t.Errorf("expected 2 archetypes, got %d", stats.ArchetypeCount)
	}
	if stats.TotalEntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.TotalEntityCount)
	}
	if len(stats.ArchetypeBreakdown) != 2 {
		t.Fatalf("expected 2 archetype breakdown entries, got %d", len(stats.ArchetypeBreakdown))
	}

	// breakdown follows archetype creation order
	if stats.ArchetypeBreakdown[0].EntityCount != 2 || stats.ArchetypeBreakdown[1].EntityCount != 1 {
		t.Errorf("archetype breakdown incorrect: %+v", stats.ArchetypeBreakdown)
	}
	if got := stats.ArchetypeBreakdown[0].ComponentTypes; len(got) != 2 || got[0] != "int" || got[1] != "string" {
		t.Errorf("unexpected component types %v", got)
	}
}

func TestArchetypeMigrationVacatesRow(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)

	world := NewWorld(registry)
	first := world.Insert(1)
	second := world.Insert(2)

	world.AddComponent(first, "tagged")

	ints := world.GetArchetype(reflectTypes(1)...)
	if ints.Len() != 1 {
		t.Fatalf("expected 1 entity left in int archetype, got %d", ints.Len())
	}
	for id := range ints.Iter() {
		if id != second {
			t.Errorf("expected %d in int archetype, got %d", second, id)
		}
	}

	// the vacated row is reused by the next insert
	third := world.Insert(3)
	if loc, _ := world.location(third); loc.row != 0 {
		t.Errorf("expected row 0 to be reused, got %d", loc.row)
	}
}

func TestGenericStorageBlocks(t *testing.T) {
	cs := &genericComponentStorage[int]{}
	for i := 0; i < genericBlockSize*2+1; i++ {
		if idx := cs.Append(i); idx != i {
			t.Fatalf("expected index %d, got %d", i, idx)
		}
	}
	if len(cs.blocks) != 3 {
		t.Errorf("expected 3 blocks, got %d", len(cs.blocks))
	}
	if cs.Append("wrong") != -1 {
		t.Error("expected rejection of mismatched type")
	}
	if !cs.Set(5, 500) || *cs.Get(5).(*int) != 500 {
		t.Error("expected Set to overwrite slot 5")
	}

	cs.Delete(5)
	if cs.Has(5) || cs.Get(5) != nil {
		t.Error("expected slot 5 to be empty")
	}
	if cs.Set(5, 1) {
		t.Error("expected Set on empty slot to fail")
	}
	if cs.Has(-1) || cs.Has(10_000) {
		t.Error("expected out of range slots to be empty")
	}
}
