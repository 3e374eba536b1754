// Package rt implements the runtime object/type substrate shared by the
// VM: an object header (type pointer + refcount) and a per-type virtual
// dispatch table (free/to-string/equals) plus static descriptors (stack
// size, instance size, base type, field symbol table). Grounded on
// original_source/ntr/source/object.c and
// original_source/ntr/include/netuno/{nto,custom_type}.h.
//
// The C original dispatches through function pointers embedded in each
// NT_TYPE. This port keeps that shape but expresses it as Go struct
// fields holding func values — see DESIGN.md's §9 design note on
// replacing C vtables with explicit dispatch fields/interfaces.
package rt

// Object is the header every runtime value (Type, String, Delegate,
// DelegateType, Module, Assembly, ...) embeds. A refcount of 0 marks a
// constant, immortal object never freed; this port leaves actual
// reclamation to the Go garbage collector and keeps RefCount only for
// API fidelity and liveness assertions in tests (spec.md §3, "Object
// header").
type Object struct {
	Type     *Type
	RefCount int
}

// Ref increments a non-constant object's refcount.
func Ref(o *Object) {
	if o != nil && o.RefCount > 0 {
		o.RefCount++
	}
}

// Unref decrements a non-constant object's refcount. Reaching zero would
// trigger Type.Free in a manually-managed runtime; here it is a no-op
// left for symmetry and for tests that want to assert balanced
// ref/unref pairs.
func Unref(o *Object) {
	if o != nil && o.RefCount > 0 {
		o.RefCount--
	}
}

// MakeConstant resets refcount to 0, marking o immortal.
func MakeConstant(o *Object) { o.RefCount = 0 }

// IsConstant reports whether o is immortal (refcount 0).
func IsConstant(o *Object) bool { return o.RefCount == 0 }
