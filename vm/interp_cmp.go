package vm

// execCompare implements eq/ne/gt/lt/ge/le specialised per operand kind:
// pop two operands, push a 32-bit boolean (spec.md §4.9 "Comparisons").
func (vm *VM) execCompare(op Opcode) bool {
	switch op {
	case EqI32:
		return compareOp(vm, vm.values.popI32, func(a, b int32) bool { return a == b })
	case NeI32:
		return compareOp(vm, vm.values.popI32, func(a, b int32) bool { return a != b })
	case GtI32:
		return compareOp(vm, vm.values.popI32, func(a, b int32) bool { return a > b })
	case LtI32:
		return compareOp(vm, vm.values.popI32, func(a, b int32) bool { return a < b })
	case GeI32:
		return compareOp(vm, vm.values.popI32, func(a, b int32) bool { return a >= b })
	case LeI32:
		return compareOp(vm, vm.values.popI32, func(a, b int32) bool { return a <= b })

	case EqU32:
		return compareOp(vm, vm.values.popU32, func(a, b uint32) bool { return a == b })
	case NeU32:
		return compareOp(vm, vm.values.popU32, func(a, b uint32) bool { return a != b })
	case GtU32:
		return compareOp(vm, vm.values.popU32, func(a, b uint32) bool { return a > b })
	case LtU32:
		return compareOp(vm, vm.values.popU32, func(a, b uint32) bool { return a < b })
	case GeU32:
		return compareOp(vm, vm.values.popU32, func(a, b uint32) bool { return a >= b })
	case LeU32:
		return compareOp(vm, vm.values.popU32, func(a, b uint32) bool { return a <= b })

	case EqI64:
		return compareOp(vm, vm.values.popI64, func(a, b int64) bool { return a == b })
	case NeI64:
		return compareOp(vm, vm.values.popI64, func(a, b int64) bool { return a != b })
	case GtI64:
		return compareOp(vm, vm.values.popI64, func(a, b int64) bool { return a > b })
	case LtI64:
		return compareOp(vm, vm.values.popI64, func(a, b int64) bool { return a < b })
	case GeI64:
		return compareOp(vm, vm.values.popI64, func(a, b int64) bool { return a >= b })
	case LeI64:
		return compareOp(vm, vm.values.popI64, func(a, b int64) bool { return a <= b })

	case EqU64:
		return compareOp(vm, vm.values.popU64, func(a, b uint64) bool { return a == b })
	case NeU64:
		return compareOp(vm, vm.values.popU64, func(a, b uint64) bool { return a != b })
	case GtU64:
		return compareOp(vm, vm.values.popU64, func(a, b uint64) bool { return a > b })
	case LtU64:
		return compareOp(vm, vm.values.popU64, func(a, b uint64) bool { return a < b })
	case GeU64:
		return compareOp(vm, vm.values.popU64, func(a, b uint64) bool { return a >= b })
	case LeU64:
		return compareOp(vm, vm.values.popU64, func(a, b uint64) bool { return a <= b })

	case EqF32:
		return compareOp(vm, vm.values.popF32, func(a, b float32) bool { return a == b })
	case NeF32:
		return compareOp(vm, vm.values.popF32, func(a, b float32) bool { return a != b })
	case GtF32:
		return compareOp(vm, vm.values.popF32, func(a, b float32) bool { return a > b })
	case LtF32:
		return compareOp(vm, vm.values.popF32, func(a, b float32) bool { return a < b })
	case GeF32:
		return compareOp(vm, vm.values.popF32, func(a, b float32) bool { return a >= b })
	case LeF32:
		return compareOp(vm, vm.values.popF32, func(a, b float32) bool { return a <= b })

	case EqF64:
		return compareOp(vm, vm.values.popF64, func(a, b float64) bool { return a == b })
	case NeF64:
		return compareOp(vm, vm.values.popF64, func(a, b float64) bool { return a != b })
	case GtF64:
		return compareOp(vm, vm.values.popF64, func(a, b float64) bool { return a > b })
	case LtF64:
		return compareOp(vm, vm.values.popF64, func(a, b float64) bool { return a < b })
	case GeF64:
		return compareOp(vm, vm.values.popF64, func(a, b float64) bool { return a >= b })
	case LeF64:
		return compareOp(vm, vm.values.popF64, func(a, b float64) bool { return a <= b })
	}
	return vm.fail(errUnknownOpcode)
}

// compareOp pops b then a (a was pushed first), applies f, and pushes the
// i32 boolean result.
func compareOp[T any](vm *VM, pop func() (T, bool), f func(a, b T) bool) bool {
	b, ok1 := pop()
	a, ok2 := pop()
	if !ok1 || !ok2 {
		return vm.overflow()
	}
	return vm.pushOrOverflow(vm.values.pushI32(boolToI32(f(a, b))))
}
