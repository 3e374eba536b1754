package vm

import (
	"testing"

	"netuno/ir"
	"netuno/strintern"
)

func TestTakeDelegateTypeDedupsByGeneratedName(t *testing.T) {
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := NewAssembly()

	params := []*ir.Type{ctx.GetInt32Type(), ctx.GetFloatType()}
	a := TakeDelegateType(strings, asm, ctx.GetInt32Type(), params)
	b := TakeDelegateType(strings, asm, ctx.GetInt32Type(), params)
	if a != b {
		t.Fatalf("expected identical (return, params) to dedup to the same DelegateType")
	}

	c := TakeDelegateType(strings, asm, ctx.GetVoidType(), params)
	if c == a {
		t.Fatalf("a distinct return type must not dedup with a")
	}
}

func TestNativeDelegateIsNative(t *testing.T) {
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := NewAssembly()
	dt := TakeDelegateType(strings, asm, ctx.GetVoidType(), nil)

	native := NewNativeDelegate(strings, dt, "n", func(vm *VM) bool { return true })
	if !native.IsNative() {
		t.Fatalf("expected native delegate to report IsNative() == true")
	}

	mod := NewModule(strings, "m")
	bytecode := NewBytecodeDelegate(strings, dt, "b", mod, 0)
	if bytecode.IsNative() {
		t.Fatalf("expected bytecode delegate to report IsNative() == false")
	}
}
