package vm

// Opcode is a single bytecode instruction tag. Grounded on
// original_source/ntr/include/netuno/vm.h's NT_RESULT/BC_* family and
// ntr/source/vm.c's ntRun dispatch switch (spec.md §4.9). Values are
// assigned sequentially by family, mirroring the grouped-by-concern
// layout of teacher vm/bytecode.go's Bytecode const block but without
// reserving hex gaps, since this opcode set is fixed rather than
// open for hand-assembled extension.
type Opcode byte

const (
	Nop Opcode = iota

	// Branch family.
	Branch
	BranchZ32
	BranchZ64
	BranchNZ32
	BranchNZ64

	// Constants family.
	Zero32
	Zero64
	ZeroF32
	ZeroF64
	One32
	One64
	OneF32
	OneF64
	Const32
	Const64
	ConstObject

	// Stack frame addressing.
	LoadSp32
	LoadSp64
	StoreSp32
	StoreSp64

	// Comparisons: eq/ne/gt/lt/ge/le, specialised per operand kind.
	EqI32
	NeI32
	GtI32
	LtI32
	GeI32
	LeI32
	EqU32
	NeU32
	GtU32
	LtU32
	GeU32
	LeU32
	EqI64
	NeI64
	GtI64
	LtI64
	GeI64
	LeI64
	EqU64
	NeU64
	GtU64
	LtU64
	GeU64
	LeU64
	EqF32
	NeF32
	GtF32
	LtF32
	GeF32
	LeF32
	EqF64
	NeF64
	GtF64
	LtF64
	GeF64
	LeF64

	// Negate / bitwise-not.
	NegI32
	NegI64
	NegF32
	NegF64
	Not32
	Not64

	// Is-zero / is-non-zero, specialised per width.
	IsZero32
	IsZero64
	IsZeroF32
	IsZeroF64
	IsNonZero32
	IsNonZero64
	IsNonZeroF32
	IsNonZeroF64

	// Concatenation of two references' to_string results.
	Concat

	// Arithmetic: add/sub/mul/div/rem per kind.
	AddI32
	SubI32
	MulI32
	DivI32
	RemI32
	AddU32
	SubU32
	MulU32
	DivU32
	RemU32
	AddI64
	SubI64
	MulI64
	DivI64
	RemI64
	AddU64
	SubU64
	MulU64
	DivU64
	RemU64
	AddF32
	SubF32
	MulF32
	DivF32
	RemF32
	AddF64
	SubF64
	MulF64
	DivF64
	RemF64

	// Width conversions.
	ExtendI32
	ExtendU32
	WrapI64
	PromoteF32
	DemoteF64
	ConvertI32F32
	ConvertI32F64
	ConvertU32F32
	ConvertU32F64
	ConvertI64F32
	ConvertI64F64
	ConvertU64F32
	ConvertU64F64
	ConvertF32I32
	ConvertF32U32
	ConvertF32I64
	ConvertF32U64
	ConvertF64I32
	ConvertF64U32
	ConvertF64I64
	ConvertF64U64

	// String conversions: parse (convert_<kind>_str) and format
	// (convert_str_<kind>).
	ConvertI32Str
	ConvertU32Str
	ConvertI64Str
	ConvertU64Str
	ConvertF32Str
	ConvertF64Str
	ConvertStrI32
	ConvertStrU32
	ConvertStrI64
	ConvertStrU64
	ConvertStrF32
	ConvertStrF64

	// Float helpers, per width.
	MinF32
	MaxF32
	NearestF32
	CeilF32
	FloorF32
	TruncF32
	AbsF32
	SqrtF32
	CopysignF32
	MinF64
	MaxF64
	NearestF64
	CeilF64
	FloorF64
	TruncF64
	AbsF64
	SqrtF64
	CopysignF64

	// Bitwise, per width.
	And32
	Or32
	Xor32
	Shl32
	ShrLogical32
	ShrArithmetic32
	Rol32
	Ror32
	Clz32
	Ctz32
	Popcnt32
	And64
	Or64
	Xor64
	Shl64
	ShrLogical64
	ShrArithmetic64
	Rol64
	Ror64
	Clz64
	Ctz64
	Popcnt64

	// Pop.
	Pop
	Pop32
	Pop64

	// Call / return.
	Call
	Return

	opcodeCount
)

var opcodeNames = map[Opcode]string{
	Nop: "nop",

	Branch:    "branch",
	BranchZ32: "branch_z_32", BranchZ64: "branch_z_64",
	BranchNZ32: "branch_nz_32", BranchNZ64: "branch_nz_64",

	Zero32: "zero_32", Zero64: "zero_64", ZeroF32: "zero_f32", ZeroF64: "zero_f64",
	One32: "one_32", One64: "one_64", OneF32: "one_f32", OneF64: "one_f64",
	Const32: "const_32", Const64: "const_64", ConstObject: "const_object",

	LoadSp32: "load_sp_32", LoadSp64: "load_sp_64",
	StoreSp32: "store_sp_32", StoreSp64: "store_sp_64",

	EqI32: "eq_i32", NeI32: "ne_i32", GtI32: "gt_i32", LtI32: "lt_i32", GeI32: "ge_i32", LeI32: "le_i32",
	EqU32: "eq_u32", NeU32: "ne_u32", GtU32: "gt_u32", LtU32: "lt_u32", GeU32: "ge_u32", LeU32: "le_u32",
	EqI64: "eq_i64", NeI64: "ne_i64", GtI64: "gt_i64", LtI64: "lt_i64", GeI64: "ge_i64", LeI64: "le_i64",
	EqU64: "eq_u64", NeU64: "ne_u64", GtU64: "gt_u64", LtU64: "lt_u64", GeU64: "ge_u64", LeU64: "le_u64",
	EqF32: "eq_f32", NeF32: "ne_f32", GtF32: "gt_f32", LtF32: "lt_f32", GeF32: "ge_f32", LeF32: "le_f32",
	EqF64: "eq_f64", NeF64: "ne_f64", GtF64: "gt_f64", LtF64: "lt_f64", GeF64: "ge_f64", LeF64: "le_f64",

	NegI32: "neg_i32", NegI64: "neg_i64", NegF32: "neg_f32", NegF64: "neg_f64",
	Not32: "not_32", Not64: "not_64",

	IsZero32: "is_zero_32", IsZero64: "is_zero_64", IsZeroF32: "is_zero_f32", IsZeroF64: "is_zero_f64",
	IsNonZero32: "is_nonzero_32", IsNonZero64: "is_nonzero_64", IsNonZeroF32: "is_nonzero_f32", IsNonZeroF64: "is_nonzero_f64",

	Concat: "concat",

	AddI32: "add_i32", SubI32: "sub_i32", MulI32: "mul_i32", DivI32: "div_i32", RemI32: "rem_i32",
	AddU32: "add_u32", SubU32: "sub_u32", MulU32: "mul_u32", DivU32: "div_u32", RemU32: "rem_u32",
	AddI64: "add_i64", SubI64: "sub_i64", MulI64: "mul_i64", DivI64: "div_i64", RemI64: "rem_i64",
	AddU64: "add_u64", SubU64: "sub_u64", MulU64: "mul_u64", DivU64: "div_u64", RemU64: "rem_u64",
	AddF32: "add_f32", SubF32: "sub_f32", MulF32: "mul_f32", DivF32: "div_f32", RemF32: "rem_f32",
	AddF64: "add_f64", SubF64: "sub_f64", MulF64: "mul_f64", DivF64: "div_f64", RemF64: "rem_f64",

	ExtendI32: "extend_i32", ExtendU32: "extend_u32", WrapI64: "wrap_i64",
	PromoteF32: "promote_f32", DemoteF64: "demote_f64",
	ConvertI32F32: "convert_i32_f32", ConvertI32F64: "convert_i32_f64",
	ConvertU32F32: "convert_u32_f32", ConvertU32F64: "convert_u32_f64",
	ConvertI64F32: "convert_i64_f32", ConvertI64F64: "convert_i64_f64",
	ConvertU64F32: "convert_u64_f32", ConvertU64F64: "convert_u64_f64",
	ConvertF32I32: "convert_f32_i32", ConvertF32U32: "convert_f32_u32",
	ConvertF32I64: "convert_f32_i64", ConvertF32U64: "convert_f32_u64",
	ConvertF64I32: "convert_f64_i32", ConvertF64U32: "convert_f64_u32",
	ConvertF64I64: "convert_f64_i64", ConvertF64U64: "convert_f64_u64",

	ConvertI32Str: "convert_i32_str", ConvertU32Str: "convert_u32_str",
	ConvertI64Str: "convert_i64_str", ConvertU64Str: "convert_u64_str",
	ConvertF32Str: "convert_f32_str", ConvertF64Str: "convert_f64_str",
	ConvertStrI32: "convert_str_i32", ConvertStrU32: "convert_str_u32",
	ConvertStrI64: "convert_str_i64", ConvertStrU64: "convert_str_u64",
	ConvertStrF32: "convert_str_f32", ConvertStrF64: "convert_str_f64",

	MinF32: "min_f32", MaxF32: "max_f32", NearestF32: "nearest_f32", CeilF32: "ceil_f32",
	FloorF32: "floor_f32", TruncF32: "trunc_f32", AbsF32: "abs_f32", SqrtF32: "sqrt_f32", CopysignF32: "copysign_f32",
	MinF64: "min_f64", MaxF64: "max_f64", NearestF64: "nearest_f64", CeilF64: "ceil_f64",
	FloorF64: "floor_f64", TruncF64: "trunc_f64", AbsF64: "abs_f64", SqrtF64: "sqrt_f64", CopysignF64: "copysign_f64",

	And32: "and_32", Or32: "or_32", Xor32: "xor_32", Shl32: "shl_32",
	ShrLogical32: "shr_logical_32", ShrArithmetic32: "shr_arithmetic_32",
	Rol32: "rol_32", Ror32: "ror_32", Clz32: "clz_32", Ctz32: "ctz_32", Popcnt32: "popcnt_32",
	And64: "and_64", Or64: "or_64", Xor64: "xor_64", Shl64: "shl_64",
	ShrLogical64: "shr_logical_64", ShrArithmetic64: "shr_arithmetic_64",
	Rol64: "rol_64", Ror64: "ror_64", Clz64: "clz_64", Ctz64: "ctz_64", Popcnt64: "popcnt_64",

	Pop: "pop", Pop32: "pop_32", Pop64: "pop_64",

	Call: "call", Return: "return",
}

// String renders an opcode's mnemonic, falling back for unrecognised
// values the way teacher Bytecode.String() does.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "?unknown?"
}
