package vm

import (
	"fmt"

	"netuno/ir"
	"netuno/rt"
	"netuno/strintern"
)

// NativeFunc is a host callback invoked by a native delegate. It receives
// the running VM and reports success; returning false signals a runtime
// error to the interpreter (spec.md §4.9 call protocol, §7).
type NativeFunc func(vm *VM) bool

// DelegateType describes the shape of a delegate: its return type and
// parameter types. Its own Type is the DelegateType singleton. It has no
// name field: the interned "delegate(<paramtypes>):<returntype>" string
// built by TakeDelegateType is only its dedup key within an assembly
// (spec.md §4.7).
type DelegateType struct {
	rt.Object
	Return *ir.Type
	Params []*ir.Type
}

var delegateTypeType *rt.Type

// delegateTypeSingleton returns the runtime type tagging every
// DelegateType value (DelegateType's own object.type).
func delegateTypeSingleton(strings *strintern.Table) *rt.Type {
	if delegateTypeType == nil {
		delegateTypeType = rt.NewType(rt.KindDelegateType, strings.Constant("DelegateType"), rt.ObjectType(), 8, 24)
	}
	return delegateTypeType
}

func delegateTypeName(ret *ir.Type, params []*ir.Type) string {
	s := "delegate("
	for i, p := range params {
		if i > 0 {
			s += ","
		}
		s += p.String()
	}
	s += "):" + ret.String()
	return s
}

// TakeDelegateType finds an existing delegate type in asm by its generated
// name, or creates and registers a new one (spec.md §4.7's
// take_delegate_type).
func TakeDelegateType(strings *strintern.Table, asm *Assembly, ret *ir.Type, params []*ir.Type) *DelegateType {
	name := strings.Copy(delegateTypeName(ret, params))
	if existing, ok := asm.findDelegateTypeByName(name); ok {
		return existing
	}

	dt := &DelegateType{Return: ret, Params: append([]*ir.Type(nil), params...)}
	dt.Object.Type = delegateTypeSingleton(strings)
	asm.AddConstantObject(dt)
	asm.registerDelegateType(name, dt)
	return dt
}

// Delegate is a callable runtime value: either bytecode (module + address)
// or native (a host Go function), per spec.md §4.7.
type Delegate struct {
	rt.Object
	DelegateType *DelegateType
	Name         *strintern.String

	Module  *Module // non-nil for bytecode delegates
	Address int

	Native NativeFunc // non-nil for native delegates
}

// IsNative reports whether d invokes a host function rather than bytecode.
func (d *Delegate) IsNative() bool { return d.Native != nil }

// NewBytecodeDelegate constructs a delegate that runs module code starting
// at address.
func NewBytecodeDelegate(strings *strintern.Table, dt *DelegateType, name string, module *Module, address int) *Delegate {
	d := &Delegate{DelegateType: dt, Name: strings.Copy(name), Module: module, Address: address}
	d.Object.Type = dt.objectType(strings)
	return d
}

// NewNativeDelegate constructs a delegate that invokes a host callback.
func NewNativeDelegate(strings *strintern.Table, dt *DelegateType, name string, fn NativeFunc) *Delegate {
	d := &Delegate{DelegateType: dt, Name: strings.Copy(name), Native: fn}
	d.Object.Type = dt.objectType(strings)
	return d
}

// objectType returns the runtime type of delegate instances shaped like dt:
// a KindDelegate rt.Type created once per dt and cached in
// delegateObjectTypes. A delegate's object.type is that separate rt.Type,
// not dt itself; the return/param shape is reached through the
// Delegate's DelegateType field.
func (dt *DelegateType) objectType(strings *strintern.Table) *rt.Type {
	return delegateObjectType(strings, dt)
}

var delegateObjectTypes = map[*DelegateType]*rt.Type{}

func delegateObjectType(strings *strintern.Table, dt *DelegateType) *rt.Type {
	if t, ok := delegateObjectTypes[dt]; ok {
		return t
	}
	t := rt.NewType(rt.KindDelegate, strings.Copy(fmt.Sprintf("delegate<%p>", dt)), rt.ObjectType(), 8, 32)
	delegateObjectTypes[dt] = t
	return t
}
