package vm

import "testing"

func TestOpcodeStringKnownMnemonics(t *testing.T) {
	cases := map[Opcode]string{
		Nop:      "nop",
		Branch:   "branch",
		AddI32:   "add_i32",
		DivU64:   "div_u64",
		Popcnt64: "popcnt_64",
		Call:     "call",
		Return:   "return",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}

func TestOpcodeStringUnknownFallsBack(t *testing.T) {
	if got := opcodeCount.String(); got != "?unknown?" {
		t.Errorf("opcodeCount.String() = %q, want \"?unknown?\"", got)
	}
}

func TestOpcodeNamesCoverEveryDefinedOpcode(t *testing.T) {
	for op := Nop; op < opcodeCount; op++ {
		if _, ok := opcodeNames[op]; !ok {
			t.Errorf("opcode %d has no entry in opcodeNames", op)
		}
	}
}
