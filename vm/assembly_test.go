package vm

import (
	"testing"

	"netuno/strintern"
)

func TestAddConstantObjectDedupsByIdentity(t *testing.T) {
	strings := strintern.Process()
	asm := NewAssembly()
	m := NewModule(strings, "m")

	i1 := asm.AddConstantObject(m)
	i2 := asm.AddConstantObject(m)
	if i1 != i2 {
		t.Fatalf("expected the same module object to dedup to index %d, got %d", i1, i2)
	}

	other := NewModule(strings, "other")
	i3 := asm.AddConstantObject(other)
	if i3 == i1 {
		t.Fatalf("distinct objects must not collide")
	}
	if got := asm.GetConstantObject(i3); got != &other.Object {
		t.Fatalf("GetConstantObject(%d) did not round-trip the stored object", i3)
	}
}

func TestAddModuleThenLookupByName(t *testing.T) {
	strings := strintern.Process()
	asm := NewAssembly()
	m := NewModule(strings, "mymodule")
	asm.AddModule(m)

	got, ok := asm.Module("mymodule")
	if !ok || got != m {
		t.Fatalf("Module(%q) = (%v, %v), want (m, true)", "mymodule", got, ok)
	}

	if _, ok := asm.Module("missing"); ok {
		t.Fatalf("expected lookup of an unregistered module to fail")
	}
}
