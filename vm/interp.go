package vm

import (
	"go.uber.org/zap"

	"netuno/rt"
)

// VM is one interpreter instance: its value/call stacks, the bytecode
// module and assembly it is currently executing, and a program counter.
// Grounded on original_source/ntr/include/netuno/vm.h's NT_VM and
// ntr/source/vm.c's ntRun; the fetch-decode-dispatch idiom follows
// teacher vm/exec.go's execNextInstruction switch.
type VM struct {
	module   *Module
	assembly *Assembly
	pc       int // byte offset into module.code, or pcHalt to stop

	values *valueStack
	calls  *callStack

	stackOverflow bool
	errcode       error

	debug  bool
	logger *zap.Logger
}

// pcHalt is the sentinel program counter meaning "return from run"
// (spec.md §4.9: "module == null && pc == MAX").
const pcHalt = -1

var (
	vmLogger     *zap.Logger
	vmLoggerOnce bool
)

// debugLogger lazily builds the singleton structured trace logger on its
// first call, guarded by the plain vmLoggerOnce flag rather than a
// sync.Once (singleton shape grounded on
// wippyai-wasm-runtime/linker/logger.go).
func debugLogger() *zap.Logger {
	if !vmLoggerOnce {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		vmLogger = l
		vmLoggerOnce = true
	}
	return vmLogger
}

// NewVM returns an idle VM instance ready to Run an assembly.
func NewVM(debug bool) *VM {
	vm := &VM{
		values: newValueStack(debug),
		calls:  &callStack{},
		debug:  debug,
	}
	if debug {
		vm.logger = debugLogger()
	}
	return vm
}

// Run executes entryPoint to completion (spec.md §4.9's call protocol and
// dispatch loop).
func (vm *VM) Run(assembly *Assembly, entryPoint *Delegate) Result {
	vm.assembly = assembly
	vm.pc = pcHalt
	vm.module = nil
	vm.stackOverflow = false
	vm.errcode = nil

	if !vm.invoke(entryPoint) {
		return vm.resultFromError()
	}

	for {
		if vm.module == nil && vm.pc == pcHalt {
			return ResultOK
		}

		op := Opcode(vm.module.code.Bytes()[vm.pc])
		instrStart := vm.pc
		vm.pc++

		if vm.debug {
			vm.logger.Debug("exec", zap.Int("pc", instrStart), zap.String("op", op.String()))
		}

		if !vm.step(op, instrStart) {
			return vm.resultFromError()
		}
	}
}

func (vm *VM) resultFromError() Result {
	if vm.stackOverflow {
		return ResultStackOverflow
	}
	if vm.errcode != nil {
		return ResultRuntimeError
	}
	return ResultOK
}

func (vm *VM) fail(err error) bool {
	vm.errcode = err
	return false
}

func (vm *VM) overflow() bool {
	vm.stackOverflow = true
	return false
}

// step executes exactly one opcode and reports whether execution may
// continue.
func (vm *VM) step(op Opcode, instrStart int) bool {
	switch op {
	case Nop:
		return true

	case Branch, BranchZ32, BranchZ64, BranchNZ32, BranchNZ64:
		return vm.execBranch(op, instrStart)

	case Zero32, Zero64, ZeroF32, ZeroF64, One32, One64, OneF32, OneF64, Const32, Const64, ConstObject:
		return vm.execConst(op)

	case LoadSp32, LoadSp64, StoreSp32, StoreSp64:
		return vm.execFrame(op)

	case EqI32, NeI32, GtI32, LtI32, GeI32, LeI32,
		EqU32, NeU32, GtU32, LtU32, GeU32, LeU32,
		EqI64, NeI64, GtI64, LtI64, GeI64, LeI64,
		EqU64, NeU64, GtU64, LtU64, GeU64, LeU64,
		EqF32, NeF32, GtF32, LtF32, GeF32, LeF32,
		EqF64, NeF64, GtF64, LtF64, GeF64, LeF64:
		return vm.execCompare(op)

	case NegI32, NegI64, NegF32, NegF64, Not32, Not64:
		return vm.execNegNot(op)

	case IsZero32, IsZero64, IsZeroF32, IsZeroF64, IsNonZero32, IsNonZero64, IsNonZeroF32, IsNonZeroF64:
		return vm.execIsZero(op)

	case Concat:
		return vm.execConcat()

	case AddI32, SubI32, MulI32, DivI32, RemI32,
		AddU32, SubU32, MulU32, DivU32, RemU32,
		AddI64, SubI64, MulI64, DivI64, RemI64,
		AddU64, SubU64, MulU64, DivU64, RemU64,
		AddF32, SubF32, MulF32, DivF32, RemF32,
		AddF64, SubF64, MulF64, DivF64, RemF64:
		return vm.execArith(op)

	case ExtendI32, ExtendU32, WrapI64, PromoteF32, DemoteF64,
		ConvertI32F32, ConvertI32F64, ConvertU32F32, ConvertU32F64,
		ConvertI64F32, ConvertI64F64, ConvertU64F32, ConvertU64F64,
		ConvertF32I32, ConvertF32U32, ConvertF32I64, ConvertF32U64,
		ConvertF64I32, ConvertF64U32, ConvertF64I64, ConvertF64U64:
		return vm.execConvertNumeric(op)

	case ConvertI32Str, ConvertU32Str, ConvertI64Str, ConvertU64Str, ConvertF32Str, ConvertF64Str,
		ConvertStrI32, ConvertStrU32, ConvertStrI64, ConvertStrU64, ConvertStrF32, ConvertStrF64:
		return vm.execConvertString(op)

	case MinF32, MaxF32, NearestF32, CeilF32, FloorF32, TruncF32, AbsF32, SqrtF32, CopysignF32,
		MinF64, MaxF64, NearestF64, CeilF64, FloorF64, TruncF64, AbsF64, SqrtF64, CopysignF64:
		return vm.execFloatHelper(op)

	case And32, Or32, Xor32, Shl32, ShrLogical32, ShrArithmetic32, Rol32, Ror32, Clz32, Ctz32, Popcnt32,
		And64, Or64, Xor64, Shl64, ShrLogical64, ShrArithmetic64, Rol64, Ror64, Clz64, Ctz64, Popcnt64:
		return vm.execBitwise(op)

	case Pop, Pop32, Pop64:
		return vm.execPop(op)

	case Call:
		return vm.execCall()

	case Return:
		return vm.execReturn()

	default:
		return vm.fail(errUnknownOpcode)
	}
}

// readVarintOperand reads a zig-zag varint operand starting at vm.pc and
// advances vm.pc past it.
func (vm *VM) readVarintOperand() int64 {
	v, n := vm.module.code.ReadVarint(vm.pc)
	vm.pc += n
	return v
}

// invoke implements the call protocol (spec.md §4.9): bytecode delegates
// push a return frame and transfer control; native delegates run to
// completion on the current Go stack with predicted-stack-delta checking.
func (vm *VM) invoke(d *Delegate) bool {
	if d.IsNative() {
		return vm.invokeNative(d)
	}

	if vm.module != nil {
		if !vm.calls.push(callFrame{module: vm.module, pc: vm.pc}) {
			return vm.fail(errCallStackOverflow)
		}
	} else {
		// Entry-point invocation: a synthetic halt frame so Return
		// unwinds to (module=nil, pc=pcHalt).
		if !vm.calls.push(callFrame{module: nil, pc: pcHalt}) {
			return vm.fail(errCallStackOverflow)
		}
	}
	vm.module = d.Module
	vm.pc = d.Address
	return true
}

func (vm *VM) invokeNative(d *Delegate) bool {
	predicted := vm.values.top
	for _, p := range d.DelegateType.Params {
		predicted -= p.StackSize()
	}
	if d.DelegateType.Return != nil && !d.DelegateType.Return.IsVoid() {
		predicted += d.DelegateType.Return.StackSize()
	}

	ok := d.Native(vm)
	if !ok {
		return vm.fail(errNativeStackFault)
	}

	if vm.values.top < predicted {
		deficit := predicted - vm.values.top
		if _, ok := vm.values.pop(deficit); !ok {
			return vm.overflow()
		}
		return true
	}
	if vm.values.top > predicted {
		return vm.fail(errNativeStackFault)
	}
	return true
}

// PopI32/PopI64/PopF32/PopF64/PopRef let a caller retrieve a value left on
// the stack after Run returns ResultOK — e.g. the popped i32 return value
// a launcher uses as its process exit code (spec.md §6). PushI32 is their
// counterpart, used by native delegates (NativeFunc bodies) to return a
// value to their caller.
func (vm *VM) PopI32() (int32, bool)      { return vm.values.popI32() }
func (vm *VM) PopI64() (int64, bool)      { return vm.values.popI64() }
func (vm *VM) PopF32() (float32, bool)    { return vm.values.popF32() }
func (vm *VM) PopF64() (float64, bool)    { return vm.values.popF64() }
func (vm *VM) PopRef() (*rt.Object, bool) { return vm.values.popRef() }
func (vm *VM) PushI32(v int32) bool       { return vm.values.pushI32(v) }

func boolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
