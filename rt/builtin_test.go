package rt

import (
	"testing"

	"netuno/strintern"
)

func TestNewStringInternsValue(t *testing.T) {
	strings := strintern.Process()
	a := NewString(strings, "hi")
	b := NewString(strings, "hi")

	if a.Value != b.Value {
		t.Fatalf("equal content must intern to the same *strintern.String")
	}
	if a.Object.Type != StringType(strings) {
		t.Fatalf("NewString must tag the object with StringType()")
	}
}

func TestStringTypeEqualsComparesValue(t *testing.T) {
	strings := strintern.Process()
	a := NewString(strings, "same")
	b := NewString(strings, "same")
	c := NewString(strings, "different")

	st := StringType(strings)
	if !st.Equals(&a.Object, &b.Object) {
		t.Fatalf("equal-content strings must compare equal")
	}
	if st.Equals(&a.Object, &c.Object) {
		t.Fatalf("different-content strings must not compare equal")
	}
}

func TestIntegerFloatBooleanTypesAreDistinctSingletons(t *testing.T) {
	strings := strintern.Process()
	it := IntegerType(strings)
	ft := FloatType(strings)
	bt := BooleanType(strings)

	if it == ft || it == bt || ft == bt {
		t.Fatalf("primitive runtime types must be distinct")
	}
	if IntegerType(strings) != it {
		t.Fatalf("IntegerType must return the same singleton on repeat calls")
	}
}
