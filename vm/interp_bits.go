package vm

import "math/bits"

// execBitwise implements and/or/xor, the shift/rotate family, and
// clz/ctz/popcnt, per width (spec.md §4.9 "Bitwise").
func (vm *VM) execBitwise(op Opcode) bool {
	switch op {
	case And32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return a & b })
	case Or32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return a | b })
	case Xor32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return a ^ b })
	case Shl32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return a << (b & 31) })
	case ShrLogical32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return a >> (b & 31) })
	case ShrArithmetic32:
		return binaryOp(vm, vm.values.popI32, vm.values.pushI32, func(a, b int32) int32 { return a >> (uint32(b) & 31) })
	case Rol32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return bits.RotateLeft32(a, int(b&31)) })
	case Ror32:
		return binaryOp(vm, vm.values.popU32, vm.values.pushU32, func(a, b uint32) uint32 { return bits.RotateLeft32(a, -int(b&31)) })
	case Clz32:
		return unaryOp(vm, vm.values.popU32, vm.values.pushU32, func(v uint32) uint32 { return uint32(bits.LeadingZeros32(v)) })
	case Ctz32:
		return unaryOp(vm, vm.values.popU32, vm.values.pushU32, func(v uint32) uint32 { return uint32(bits.TrailingZeros32(v)) })
	case Popcnt32:
		return unaryOp(vm, vm.values.popU32, vm.values.pushU32, func(v uint32) uint32 { return uint32(bits.OnesCount32(v)) })

	case And64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return a & b })
	case Or64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return a | b })
	case Xor64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return a ^ b })
	case Shl64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return a << (b & 63) })
	case ShrLogical64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return a >> (b & 63) })
	case ShrArithmetic64:
		return binaryOp(vm, vm.values.popI64, vm.values.pushI64, func(a, b int64) int64 { return a >> (uint64(b) & 63) })
	case Rol64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return bits.RotateLeft64(a, int(b&63)) })
	case Ror64:
		return binaryOp(vm, vm.values.popU64, vm.values.pushU64, func(a, b uint64) uint64 { return bits.RotateLeft64(a, -int(b&63)) })
	case Clz64:
		return unaryOp(vm, vm.values.popU64, vm.values.pushU64, func(v uint64) uint64 { return uint64(bits.LeadingZeros64(v)) })
	case Ctz64:
		return unaryOp(vm, vm.values.popU64, vm.values.pushU64, func(v uint64) uint64 { return uint64(bits.TrailingZeros64(v)) })
	case Popcnt64:
		return unaryOp(vm, vm.values.popU64, vm.values.pushU64, func(v uint64) uint64 { return uint64(bits.OnesCount64(v)) })
	}
	return vm.fail(errUnknownOpcode)
}
