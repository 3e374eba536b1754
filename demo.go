package main

import (
	"netuno/ir"
	"netuno/rt"
	"netuno/strintern"
	"netuno/vm"
)

// knownDemo reports whether name names one of the built-in demo programs.
func knownDemo(name string) bool {
	switch name {
	case "add", "div", "concat", "native":
		return true
	}
	return false
}

// buildDemo assembles one of the built-in sample programs and returns its
// assembly plus the delegate a launcher would resolve as "main". Real
// source compilation is out of scope here (spec.md §1's ntc front end);
// this stands in for what a compiler would otherwise hand the VM.
func buildDemo(name string) (*vm.Assembly, *vm.Delegate, bool) {
	switch name {
	case "add":
		return buildAddDemo()
	case "div":
		return buildDivDemo()
	case "concat":
		return buildConcatDemo()
	case "native":
		return buildNativeDemo()
	}
	return nil, nil, false
}

func entryDelegateType(strings *strintern.Table, ctx *ir.Context, asm *vm.Assembly) *vm.DelegateType {
	return vm.TakeDelegateType(strings, asm, ctx.GetInt32Type(), nil)
}

// buildAddDemo: one_32; one_32; add_i32; return -> 2.
func buildAddDemo() (*vm.Assembly, *vm.Delegate, bool) {
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := vm.NewAssembly()
	mod := vm.NewModule(strings, "demo")
	asm.AddModule(mod)
	asm.AddConstantObject(mod)

	entry := mod.Code().Len()
	mod.Write(byte(vm.One32), 1)
	mod.Write(byte(vm.One32), 1)
	mod.Write(byte(vm.AddI32), 1)
	mod.Write(byte(vm.Return), 1)

	dt := entryDelegateType(strings, ctx, asm)
	d := vm.NewBytecodeDelegate(strings, dt, "main", mod, entry)
	return asm, d, true
}

// buildDivDemo: const_32(-6); const_32(2); div_i32; return -> -3.
func buildDivDemo() (*vm.Assembly, *vm.Delegate, bool) {
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := vm.NewAssembly()
	mod := vm.NewModule(strings, "demo")
	asm.AddModule(mod)
	asm.AddConstantObject(mod)

	offA := mod.AddConstant32(uint32(int32(-6)))
	offB := mod.AddConstant32(2)

	entry := mod.Code().Len()
	mod.Write(byte(vm.Const32), 1)
	mod.WriteVarint(int64(offA), 1)
	mod.Write(byte(vm.Const32), 1)
	mod.WriteVarint(int64(offB), 1)
	mod.Write(byte(vm.DivI32), 1)
	mod.Write(byte(vm.Return), 1)

	dt := entryDelegateType(strings, ctx, asm)
	d := vm.NewBytecodeDelegate(strings, dt, "main", mod, entry)
	return asm, d, true
}

// buildConcatDemo: const_object("hello"); const_object("world"); concat;
// return -> a reference to the interned "helloworld".
func buildConcatDemo() (*vm.Assembly, *vm.Delegate, bool) {
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := vm.NewAssembly()
	mod := vm.NewModule(strings, "demo")
	asm.AddModule(mod)
	asm.AddConstantObject(mod)

	hello := rt.NewString(strings, "hello")
	world := rt.NewString(strings, "world")
	helloIdx := asm.AddConstantRuntimeObject(&hello.Object)
	worldIdx := asm.AddConstantRuntimeObject(&world.Object)

	entry := mod.Code().Len()
	mod.Write(byte(vm.ConstObject), 1)
	mod.WriteVarint(int64(helloIdx), 1)
	mod.Write(byte(vm.ConstObject), 1)
	mod.WriteVarint(int64(worldIdx), 1)
	mod.Write(byte(vm.Concat), 1)
	mod.Write(byte(vm.Return), 1)

	dt := vm.TakeDelegateType(strings, asm, ctx.GetOpaquePointerType(), nil)
	d := vm.NewBytecodeDelegate(strings, dt, "main", mod, entry)
	return asm, d, true
}

// buildNativeDemo: one_32; one_32; const_object(native add); call; return.
// Exercises the call protocol's native path (spec.md §4.9).
func buildNativeDemo() (*vm.Assembly, *vm.Delegate, bool) {
	strings := strintern.Process()
	ctx := ir.NewContext()
	asm := vm.NewAssembly()
	mod := vm.NewModule(strings, "demo")
	asm.AddModule(mod)
	asm.AddConstantObject(mod)

	addType := vm.TakeDelegateType(strings, asm, ctx.GetInt32Type(), []*ir.Type{ctx.GetInt32Type(), ctx.GetInt32Type()})
	native := vm.NewNativeDelegate(strings, addType, "add2", nativeAdd)
	nativeIdx := asm.AddConstantObject(native)

	entry := mod.Code().Len()
	mod.Write(byte(vm.One32), 1)
	mod.Write(byte(vm.One32), 1)
	mod.Write(byte(vm.ConstObject), 1)
	mod.WriteVarint(int64(nativeIdx), 1)
	mod.Write(byte(vm.Call), 1)
	mod.Write(byte(vm.Return), 1)

	dt := entryDelegateType(strings, ctx, asm)
	d := vm.NewBytecodeDelegate(strings, dt, "main", mod, entry)
	return asm, d, true
}

func nativeAdd(v *vm.VM) bool {
	b, ok1 := v.PopI32()
	a, ok2 := v.PopI32()
	if !ok1 || !ok2 {
		return false
	}
	return v.PushI32(a + b)
}
