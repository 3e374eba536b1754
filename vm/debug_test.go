package vm

import "testing"

// stepOne is RunDebug's single-instruction primitive; exercised directly
// since RunDebug itself reads from os.Stdin.
func TestStepOneAdvancesPastOneInstruction(t *testing.T) {
	strings, ctx, asm, mod := newTestAssembly(t)

	entry := mod.Code().Len()
	mod.Write(byte(One32), 1)
	mod.Write(byte(One32), 1)
	mod.Write(byte(AddI32), 1)
	mod.Write(byte(Return), 1)

	d := entryDelegate(strings, asm, ctx, mod, entry)
	v := NewVM(false)
	v.assembly = asm
	v.pc = pcHalt
	if !v.invoke(d) {
		t.Fatalf("invoke failed")
	}

	for i := 0; i < 3; i++ {
		if !v.stepOne() {
			t.Fatalf("stepOne failed at instruction %d: %v", i, v.errcode)
		}
	}
	if v.values.top != 4 {
		t.Fatalf("after add_i32, stack depth = %d, want 4", v.values.top)
	}
	if !v.stepOne() {
		t.Fatalf("return step failed: %v", v.errcode)
	}
	if v.module != nil || v.pc != pcHalt {
		t.Fatalf("after return, module=%v pc=%d, want nil/pcHalt", v.module, v.pc)
	}
}
