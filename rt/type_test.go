package rt

import "testing"

func TestTypeTypeSelfReferential(t *testing.T) {
	tt := TypeType()
	if tt.Object.Type != tt {
		t.Fatalf("TypeType() must be its own Type")
	}
}

func TestObjectTypeIsRootOfTypeType(t *testing.T) {
	ot := ObjectType()
	tt := TypeType()
	if tt.BaseType != ot {
		t.Fatalf("TypeType()'s BaseType must be ObjectType()")
	}
}

func TestIsAssignableFromWalksBaseChain(t *testing.T) {
	base := NewType(KindCustom, nil, ObjectType(), 8, 16)
	mid := NewType(KindCustom, nil, base, 8, 16)
	leaf := NewType(KindCustom, nil, mid, 8, 16)

	if !base.IsAssignableFrom(leaf) {
		t.Fatalf("base must be assignable from a descendant")
	}
	if leaf.IsAssignableFrom(base) {
		t.Fatalf("leaf must not be assignable from its own base")
	}
	if !leaf.IsAssignableFrom(leaf) {
		t.Fatalf("a type is always assignable from itself")
	}
}

func TestIsAssignableFromStopsOnSelfCycle(t *testing.T) {
	cyclic := &Type{Kind: KindCustom}
	cyclic.BaseType = cyclic

	if ObjectType().IsAssignableFrom(cyclic) {
		t.Fatalf("unrelated type must not be assignable")
	}
}

func TestNewTypeInstanceIsTypedByTypeType(t *testing.T) {
	custom := NewType(KindCustom, nil, ObjectType(), 8, 32)
	if custom.Object.Type != TypeType() {
		t.Fatalf("every Type instance's Type must be TypeType()")
	}
}
