package vm

import (
	"netuno/rt"
	"netuno/strintern"
)

func unaryOp[T any](vm *VM, pop func() (T, bool), push func(T) bool, f func(T) T) bool {
	v, ok := pop()
	if !ok {
		return vm.overflow()
	}
	return vm.pushOrOverflow(push(f(v)))
}

// execNegNot implements neg_i32/i64/f32/f64 and not_32/64 (spec.md §4.9
// "Negate/bitwise-not").
func (vm *VM) execNegNot(op Opcode) bool {
	switch op {
	case NegI32:
		return unaryOp(vm, vm.values.popI32, vm.values.pushI32, func(v int32) int32 { return -v })
	case NegI64:
		return unaryOp(vm, vm.values.popI64, vm.values.pushI64, func(v int64) int64 { return -v })
	case NegF32:
		return unaryOp(vm, vm.values.popF32, vm.values.pushF32, func(v float32) float32 { return -v })
	case NegF64:
		return unaryOp(vm, vm.values.popF64, vm.values.pushF64, func(v float64) float64 { return -v })
	case Not32:
		return unaryOp(vm, vm.values.popU32, vm.values.pushU32, func(v uint32) uint32 { return ^v })
	case Not64:
		return unaryOp(vm, vm.values.popU64, vm.values.pushU64, func(v uint64) uint64 { return ^v })
	}
	return vm.fail(errUnknownOpcode)
}

// execIsZero implements is_zero_32/64/f32/f64 and is_nonzero_32/64/f32/f64:
// pop a value, push a boolean (spec.md §4.9 "Is-zero / is-non-zero").
func (vm *VM) execIsZero(op Opcode) bool {
	switch op {
	case IsZero32:
		return compareToZero(vm, vm.values.popU32, func(v uint32) bool { return v == 0 })
	case IsZero64:
		return compareToZero(vm, vm.values.popU64, func(v uint64) bool { return v == 0 })
	case IsZeroF32:
		return compareToZero(vm, vm.values.popF32, func(v float32) bool { return v == 0 })
	case IsZeroF64:
		return compareToZero(vm, vm.values.popF64, func(v float64) bool { return v == 0 })
	case IsNonZero32:
		return compareToZero(vm, vm.values.popU32, func(v uint32) bool { return v != 0 })
	case IsNonZero64:
		return compareToZero(vm, vm.values.popU64, func(v uint64) bool { return v != 0 })
	case IsNonZeroF32:
		return compareToZero(vm, vm.values.popF32, func(v float32) bool { return v != 0 })
	case IsNonZeroF64:
		return compareToZero(vm, vm.values.popF64, func(v float64) bool { return v != 0 })
	}
	return vm.fail(errUnknownOpcode)
}

func compareToZero[T any](vm *VM, pop func() (T, bool), f func(T) bool) bool {
	v, ok := pop()
	if !ok {
		return vm.overflow()
	}
	return vm.pushOrOverflow(vm.values.pushI32(boolToI32(f(v))))
}

// execConcat pops two object references, computes the concatenation of
// their to_string results, and pushes the resulting interned string
// (spec.md §4.9 "Concat").
func (vm *VM) execConcat() bool {
	second, ok1 := vm.values.popRef()
	first, ok2 := vm.values.popRef()
	if !ok1 || !ok2 {
		return vm.overflow()
	}

	strings := strintern.Process()
	s1 := toDisplayString(first)
	s2 := toDisplayString(second)

	result := &rt.String{Value: strings.Concat(s1, s2)}
	result.Object.Type = rt.StringType(strings)
	return vm.pushOrOverflow(vm.values.pushRef(&result.Object))
}

// toDisplayString resolves an object's display value via its type's
// String dispatch; objects whose type has no such dispatch (plain
// rt.String instances) are read directly.
func toDisplayString(o *rt.Object) *strintern.String {
	if o.Type != nil && o.Type.String != nil {
		return rt.AsString(o.Type.String(o)).Value
	}
	return rt.AsString(o).Value
}
