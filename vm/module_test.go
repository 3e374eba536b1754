package vm

import (
	"testing"

	"netuno/strintern"
)

func TestAddConstant32And64Roundtrip(t *testing.T) {
	strings := strintern.Process()
	m := NewModule(strings, "m")

	off32 := m.AddConstant32(0xdeadbeef)
	if got := m.Constant32At(off32); got != 0xdeadbeef {
		t.Fatalf("Constant32At = %#x, want %#x", got, 0xdeadbeef)
	}

	off64 := m.AddConstant64(0x0102030405060708)
	if got := m.Constant64At(off64); got != 0x0102030405060708 {
		t.Fatalf("Constant64At = %#x, want %#x", got, 0x0102030405060708)
	}
}

func TestAddConstantDedupsByLinearSearch(t *testing.T) {
	strings := strintern.Process()
	m := NewModule(strings, "m")

	a := m.AddConstant32(42)
	b := m.AddConstant32(42)
	if a != b {
		t.Fatalf("expected identical constants to dedup to the same offset, got %d and %d", a, b)
	}

	c := m.AddConstant32(43)
	if c == a {
		t.Fatalf("distinct constants must not collide")
	}
}

func TestLineAtResolvesRunLengthTable(t *testing.T) {
	strings := strintern.Process()
	m := NewModule(strings, "m")

	m.Write(0xAA, 10)
	m.Write(0xAA, 10)
	m.Write(0xAA, 11)

	if got := m.LineAt(0); got != 10 {
		t.Fatalf("LineAt(0) = %d, want 10", got)
	}
	if got := m.LineAt(1); got != 10 {
		t.Fatalf("LineAt(1) = %d, want 10", got)
	}
	if got := m.LineAt(2); got != 11 {
		t.Fatalf("LineAt(2) = %d, want 11", got)
	}
}

func TestDeclareWeakThenDefineStrongPromotesInPlace(t *testing.T) {
	strings := strintern.Process()
	m := NewModule(strings, "m")

	m.DeclareWeak(strings, "f", SymbolFunction|SymbolPublic)
	sym, ok := m.Lookup(strings, "f")
	if !ok || sym.Kind&SymbolWeak == 0 {
		t.Fatalf("expected a weak symbol to be registered")
	}

	m.DefineStrong(strings, "f", SymbolFunction|SymbolPublic, 128)
	sym, ok = m.Lookup(strings, "f")
	if !ok {
		t.Fatalf("symbol disappeared after promotion")
	}
	if sym.Kind&SymbolWeak != 0 {
		t.Fatalf("expected promotion to clear the weak bit")
	}
	if sym.Address != 128 {
		t.Fatalf("Address = %d, want 128", sym.Address)
	}
}
