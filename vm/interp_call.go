package vm

import (
	"unsafe"

	"netuno/rt"
)

// asDelegate recovers the enclosing *Delegate from a *rt.Object known to
// carry a delegate's runtime type, mirroring rt.AsString's reinterpret
// cast: Delegate's first field is its embedded rt.Object, so the header
// pointer and the struct pointer share an address.
func asDelegate(o *rt.Object) *Delegate {
	if o == nil || o.Type == nil || o.Type.Kind != rt.KindDelegate {
		return nil
	}
	return (*Delegate)(unsafe.Pointer(o))
}

// execPop implements the pop family: pop discards a varint-counted number
// of 32-bit slots, pop_32/pop_64 discard a single fixed-width slot
// (spec.md §4.9 "Pop").
func (vm *VM) execPop(op Opcode) bool {
	switch op {
	case Pop:
		n := vm.readVarintOperand()
		if _, ok := vm.values.pop(int(n) * 4); !ok {
			return vm.overflow()
		}
		return true
	case Pop32:
		if _, ok := vm.values.pop(4); !ok {
			return vm.overflow()
		}
		return true
	case Pop64:
		if _, ok := vm.values.pop(8); !ok {
			return vm.overflow()
		}
		return true
	}
	return vm.fail(errUnknownOpcode)
}

// execCall pops a delegate reference and transfers control to it, per the
// call protocol in spec.md §4.9.
func (vm *VM) execCall() bool {
	ref, ok := vm.values.popRef()
	if !ok {
		return vm.overflow()
	}
	del := asDelegate(ref)
	if del == nil {
		return vm.fail(errNotADelegate)
	}
	return vm.invoke(del)
}

// execReturn unwinds the current call frame, restoring the caller's module
// and program counter. Popping the synthetic halt frame that entry-point
// invocation pushes first yields (module=nil, pc=pcHalt), which
// terminates Run's dispatch loop (spec.md §4.9 "Return"); a return with
// an empty call stack fails with errNoReturnFrame.
func (vm *VM) execReturn() bool {
	frame, ok := vm.calls.pop()
	if !ok {
		return vm.fail(errNoReturnFrame)
	}
	vm.module = frame.module
	vm.pc = frame.pc
	return true
}
