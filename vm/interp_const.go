package vm

// execConst implements the zero/one/const/const_object family (spec.md
// §4.9 "Constants").
func (vm *VM) execConst(op Opcode) bool {
	switch op {
	case Zero32:
		return vm.pushOrOverflow(vm.values.pushU32(0))
	case Zero64:
		return vm.pushOrOverflow(vm.values.pushU64(0))
	case ZeroF32:
		return vm.pushOrOverflow(vm.values.pushF32(0))
	case ZeroF64:
		return vm.pushOrOverflow(vm.values.pushF64(0))
	case One32:
		return vm.pushOrOverflow(vm.values.pushU32(1))
	case One64:
		return vm.pushOrOverflow(vm.values.pushU64(1))
	case OneF32:
		return vm.pushOrOverflow(vm.values.pushF32(1))
	case OneF64:
		return vm.pushOrOverflow(vm.values.pushF64(1))
	case Const32:
		offset := vm.readVarintOperand()
		return vm.pushOrOverflow(vm.values.pushU32(vm.module.Constant32At(int(offset))))
	case Const64:
		offset := vm.readVarintOperand()
		return vm.pushOrOverflow(vm.values.pushU64(vm.module.Constant64At(int(offset))))
	case ConstObject:
		index := vm.readVarintOperand()
		obj := vm.assembly.GetConstantObject(int(index))
		return vm.pushOrOverflow(vm.values.pushRef(obj))
	}
	return vm.fail(errUnknownOpcode)
}

func (vm *VM) pushOrOverflow(ok bool) bool {
	if !ok {
		return vm.overflow()
	}
	return true
}
