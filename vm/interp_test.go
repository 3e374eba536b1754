package vm

import (
	"testing"

	"netuno/ir"
	"netuno/rt"
	"netuno/strintern"
)

func newTestAssembly(t *testing.T) (*strintern.Table, *ir.Context, *Assembly, *Module) {
	t.Helper()
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := NewAssembly()
	mod := NewModule(strings, "test")
	asm.AddModule(mod)
	asm.AddConstantObject(mod)
	return strings, ctx, asm, mod
}

func entryDelegate(strings *strintern.Table, asm *Assembly, ctx *ir.Context, mod *Module, address int) *Delegate {
	dt := TakeDelegateType(strings, asm, ctx.GetInt32Type(), nil)
	return NewBytecodeDelegate(strings, dt, "main", mod, address)
}

// one_32; one_32; add_i32; return, reached by skipping a dead zero_32
// through an unconditional branch, should leave 2 on the stack.
func TestAddI32ViaBranchSkip(t *testing.T) {
	strings, ctx, asm, mod := newTestAssembly(t)

	branchStart := mod.Code().Len()
	mod.Write(byte(Branch), 1)
	mod.WriteVarint(4, 1) // target = branchStart + 4 - 1 = branchStart + 3

	mod.Write(byte(Zero32), 2) // skipped

	entry := mod.Code().Len()
	mod.Write(byte(One32), 3)
	mod.Write(byte(One32), 3)
	mod.Write(byte(AddI32), 3)
	mod.Write(byte(Return), 3)

	if entry != branchStart+3 {
		t.Fatalf("test setup: entry at %d, want %d", entry, branchStart+3)
	}

	d := entryDelegate(strings, asm, ctx, mod, branchStart)
	vm := NewVM(false)
	if res := vm.Run(asm, d); res != ResultOK {
		t.Fatalf("run: got %v", res)
	}
	got, ok := vm.PopI32()
	if !ok || got != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", got, ok)
	}
}

// const_32(-6); const_32(2); div_i32 must produce -3, and the same bit
// pattern read as unsigned and divided unsigned must produce 0x7FFFFFFD.
func TestDivI32VsDivU32SameBits(t *testing.T) {
	strings, ctx, asm, mod := newTestAssembly(t)

	offsetNeg6 := mod.AddConstant32(uint32(int32(-6)))
	offsetTwo := mod.AddConstant32(2)

	entry := mod.Code().Len()
	mod.Write(byte(Const32), 1)
	mod.WriteVarint(int64(offsetNeg6), 1)
	mod.Write(byte(Const32), 1)
	mod.WriteVarint(int64(offsetTwo), 1)
	mod.Write(byte(DivI32), 1)
	mod.Write(byte(Return), 1)

	d := entryDelegate(strings, asm, ctx, mod, entry)
	vm := NewVM(false)
	if res := vm.Run(asm, d); res != ResultOK {
		t.Fatalf("run: got %v", res)
	}
	got, ok := vm.PopI32()
	if !ok || got != -3 {
		t.Fatalf("signed div: got (%d, %v), want (-3, true)", got, ok)
	}

	mod2 := NewModule(strings, "test2")
	asm.AddModule(mod2)
	asm.AddConstantObject(mod2)
	offsetNeg6b := mod2.AddConstant32(uint32(int32(-6)))
	offsetTwob := mod2.AddConstant32(2)
	entry2 := mod2.Code().Len()
	mod2.Write(byte(Const32), 1)
	mod2.WriteVarint(int64(offsetNeg6b), 1)
	mod2.Write(byte(Const32), 1)
	mod2.WriteVarint(int64(offsetTwob), 1)
	mod2.Write(byte(DivU32), 1)
	mod2.Write(byte(Return), 1)

	d2 := entryDelegate(strings, asm, ctx, mod2, entry2)
	vm2 := NewVM(false)
	if res := vm2.Run(asm, d2); res != ResultOK {
		t.Fatalf("run: got %v", res)
	}
	gotU, ok := vm2.PopI32()
	if !ok || uint32(gotU) != 0x7FFFFFFD {
		t.Fatalf("unsigned div: got (0x%x, %v), want (0x7FFFFFFD, true)", uint32(gotU), ok)
	}
}

// A native delegate call must leave the stack depth exactly where the
// call protocol predicts, regardless of what the native body itself does
// internally.
func TestNativeCallLeavesStackDepthUnchanged(t *testing.T) {
	strings, ctx, asm, mod := newTestAssembly(t)

	dt := TakeDelegateType(strings, asm, ctx.GetInt32Type(), []*ir.Type{ctx.GetInt32Type(), ctx.GetInt32Type()})
	native := NewNativeDelegate(strings, dt, "add2", func(vm *VM) bool {
		b, _ := vm.values.popI32()
		a, _ := vm.values.popI32()
		return vm.values.pushI32(a + b)
	})
	idx := asm.AddConstantObject(native)

	entry := mod.Code().Len()
	mod.Write(byte(One32), 1)
	mod.Write(byte(One32), 1)
	mod.Write(byte(ConstObject), 1)
	mod.WriteVarint(int64(idx), 1)
	mod.Write(byte(Call), 1)
	mod.Write(byte(Return), 1)

	d := entryDelegate(strings, asm, ctx, mod, entry)
	vm := NewVM(false)
	before := vm.values.top
	if res := vm.Run(asm, d); res != ResultOK {
		t.Fatalf("run: got %v", res)
	}
	got, ok := vm.PopI32()
	if !ok || got != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", got, ok)
	}
	if vm.values.top != before {
		t.Fatalf("stack depth changed: before=%d after=%d", before, vm.values.top)
	}
}

// concat("hello", "world") must intern "helloworld" with length 10.
func TestConcatInternsJoinedString(t *testing.T) {
	strings, ctx, asm, mod := newTestAssembly(t)

	hello := rt.NewString(strings, "hello")
	world := rt.NewString(strings, "world")
	helloIdx := asm.AddConstantRuntimeObject(&hello.Object)
	worldIdx := asm.AddConstantRuntimeObject(&world.Object)

	entry := mod.Code().Len()
	mod.Write(byte(ConstObject), 1)
	mod.WriteVarint(int64(helloIdx), 1)
	mod.Write(byte(ConstObject), 1)
	mod.WriteVarint(int64(worldIdx), 1)
	mod.Write(byte(Concat), 1)
	mod.Write(byte(Return), 1)

	d := entryDelegate(strings, asm, ctx, mod, entry)
	vm := NewVM(false)
	if res := vm.Run(asm, d); res != ResultOK {
		t.Fatalf("run: got %v", res)
	}
	ref, ok := vm.PopRef()
	if !ok {
		t.Fatalf("popref failed")
	}
	s := rt.AsString(ref)
	if s.Value.Chars() != "helloworld" || s.Value.Len() != 10 {
		t.Fatalf("got %q (len %d), want \"helloworld\" (len 10)", s.Value.Chars(), s.Value.Len())
	}
}
