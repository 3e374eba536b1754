package vm

import "netuno/strintern"

// execConvertNumeric implements the width-conversion family: sign/zero
// extension, narrowing, and the truncating int<->float conversions
// (spec.md §4.9 "Width conversions").
func (vm *VM) execConvertNumeric(op Opcode) bool {
	switch op {
	case ExtendI32:
		return unaryWiden(vm, vm.values.popI32, vm.values.pushI64, func(v int32) int64 { return int64(v) })
	case ExtendU32:
		return unaryWiden(vm, vm.values.popU32, vm.values.pushU64, func(v uint32) uint64 { return uint64(v) })
	case WrapI64:
		return unaryWiden(vm, vm.values.popI64, vm.values.pushI32, func(v int64) int32 { return int32(v) })
	case PromoteF32:
		return unaryWiden(vm, vm.values.popF32, vm.values.pushF64, func(v float32) float64 { return float64(v) })
	case DemoteF64:
		return unaryWiden(vm, vm.values.popF64, vm.values.pushF32, func(v float64) float32 { return float32(v) })

	case ConvertI32F32:
		return unaryWiden(vm, vm.values.popI32, vm.values.pushF32, func(v int32) float32 { return float32(v) })
	case ConvertI32F64:
		return unaryWiden(vm, vm.values.popI32, vm.values.pushF64, func(v int32) float64 { return float64(v) })
	case ConvertU32F32:
		return unaryWiden(vm, vm.values.popU32, vm.values.pushF32, func(v uint32) float32 { return float32(v) })
	case ConvertU32F64:
		return unaryWiden(vm, vm.values.popU32, vm.values.pushF64, func(v uint32) float64 { return float64(v) })
	case ConvertI64F32:
		return unaryWiden(vm, vm.values.popI64, vm.values.pushF32, func(v int64) float32 { return float32(v) })
	case ConvertI64F64:
		return unaryWiden(vm, vm.values.popI64, vm.values.pushF64, func(v int64) float64 { return float64(v) })
	case ConvertU64F32:
		return unaryWiden(vm, vm.values.popU64, vm.values.pushF32, func(v uint64) float32 { return float32(v) })
	case ConvertU64F64:
		return unaryWiden(vm, vm.values.popU64, vm.values.pushF64, func(v uint64) float64 { return float64(v) })

	case ConvertF32I32:
		return unaryWiden(vm, vm.values.popF32, vm.values.pushI32, func(v float32) int32 { return int32(v) })
	case ConvertF32U32:
		return unaryWiden(vm, vm.values.popF32, vm.values.pushU32, func(v float32) uint32 { return uint32(v) })
	case ConvertF32I64:
		return unaryWiden(vm, vm.values.popF32, vm.values.pushI64, func(v float32) int64 { return int64(v) })
	case ConvertF32U64:
		return unaryWiden(vm, vm.values.popF32, vm.values.pushU64, func(v float32) uint64 { return uint64(v) })
	case ConvertF64I32:
		return unaryWiden(vm, vm.values.popF64, vm.values.pushI32, func(v float64) int32 { return int32(v) })
	case ConvertF64U32:
		return unaryWiden(vm, vm.values.popF64, vm.values.pushU32, func(v float64) uint32 { return uint32(v) })
	case ConvertF64I64:
		return unaryWiden(vm, vm.values.popF64, vm.values.pushI64, func(v float64) int64 { return int64(v) })
	case ConvertF64U64:
		return unaryWiden(vm, vm.values.popF64, vm.values.pushU64, func(v float64) uint64 { return uint64(v) })
	}
	return vm.fail(errUnknownOpcode)
}

func unaryWiden[A, B any](vm *VM, pop func() (A, bool), push func(B) bool, f func(A) B) bool {
	v, ok := pop()
	if !ok {
		return vm.overflow()
	}
	return vm.pushOrOverflow(push(f(v)))
}

// execConvertString implements convert_str_<kind> (format number to an
// interned string) and convert_<kind>_str (parse a string into a number),
// delegating the saturating/NaN-on-malformed parse semantics to
// netuno/strintern (spec.md §4.9 "String conversions").
func (vm *VM) execConvertString(op Opcode) bool {
	switch op {
	case ConvertStrI32:
		return numberToString(vm, vm.values.popI32, strintern.FormatInt32)
	case ConvertStrU32:
		return numberToString(vm, vm.values.popU32, strintern.FormatUint32)
	case ConvertStrI64:
		return numberToString(vm, vm.values.popI64, strintern.FormatInt64)
	case ConvertStrU64:
		return numberToString(vm, vm.values.popU64, strintern.FormatUint64)
	case ConvertStrF32:
		return numberToString(vm, vm.values.popF32, strintern.FormatFloat32)
	case ConvertStrF64:
		return numberToString(vm, vm.values.popF64, strintern.FormatFloat64)

	case ConvertI32Str:
		return stringToNumber(vm, vm.values.pushI32, strintern.ToInt32)
	case ConvertU32Str:
		return stringToNumber(vm, vm.values.pushU32, strintern.ToUint32)
	case ConvertI64Str:
		return stringToNumber(vm, vm.values.pushI64, strintern.ToInt64)
	case ConvertU64Str:
		return stringToNumber(vm, vm.values.pushU64, strintern.ToUint64)
	case ConvertF32Str:
		return stringToNumber(vm, vm.values.pushF32, strintern.ToFloat32)
	case ConvertF64Str:
		return stringToNumber(vm, vm.values.pushF64, strintern.ToFloat64)
	}
	return vm.fail(errUnknownOpcode)
}

func numberToString[T any](vm *VM, pop func() (T, bool), format func(T) string) bool {
	v, ok := pop()
	if !ok {
		return vm.overflow()
	}
	strings := strintern.Process()
	s := rtStringObject(strings, format(v))
	return vm.pushOrOverflow(vm.values.pushRef(s))
}

func stringToNumber[T any](vm *VM, push func(T) bool, parse func(*strintern.String) T) bool {
	ref, ok := vm.values.popRef()
	if !ok {
		return vm.overflow()
	}
	return vm.pushOrOverflow(push(parse(toDisplayString(ref))))
}
