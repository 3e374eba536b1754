package vm

import (
	"netuno/rt"
	"netuno/strintern"
)

// Assembly is the top-level loaded unit: an ordered table of every
// reachable constant object (modules, delegates, delegate types, and
// others) plus the modules it comprises. Grounded on original_source
// ntr/include/netuno/assembly.h and ntr/source/nto.c's constant-object
// table (spec.md §4.8).
type Assembly struct {
	objects     []*rt.Object
	objectIndex map[*rt.Object]int

	modules map[string]*Module

	delegateTypesByName map[*strintern.String]*DelegateType
}

// NewAssembly returns an empty assembly.
func NewAssembly() *Assembly {
	return &Assembly{
		objectIndex:         make(map[*rt.Object]int),
		modules:             make(map[string]*Module),
		delegateTypesByName: make(map[*strintern.String]*DelegateType),
	}
}

// hasObject is satisfied by any runtime value (Module, Delegate,
// DelegateType, ...) that exposes its embedded *rt.Object header.
type hasObject interface {
	object() *rt.Object
}

func (m *Module) object() *rt.Object       { return &m.Object }
func (d *Delegate) object() *rt.Object     { return &d.Object }
func (d *DelegateType) object() *rt.Object { return &d.Object }

// AddConstantObject deduplicates obj by identity through a map keyed by its
// object header and returns its index (spec.md §4.8's add_constant_object).
func (a *Assembly) AddConstantObject(obj hasObject) int {
	header := obj.object()
	if header == nil {
		return -1
	}
	if idx, ok := a.objectIndex[header]; ok {
		return idx
	}
	idx := len(a.objects)
	a.objects = append(a.objects, header)
	a.objectIndex[header] = idx
	return idx
}

// GetConstantObject retrieves the object registered at index.
func (a *Assembly) GetConstantObject(index int) *rt.Object {
	return a.objects[index]
}

// runtimeObjectRef adapts a bare *rt.Object — e.g. a boxed string that
// carries no vm-level wrapper — to hasObject, for constant kinds this
// package doesn't itself define a wrapper type for.
type runtimeObjectRef struct{ o *rt.Object }

func (r runtimeObjectRef) object() *rt.Object { return r.o }

// AddConstantRuntimeObject registers a bare rt.Object as a constant,
// deduped by identity the same way AddConstantObject dedups Modules,
// Delegates, and DelegateTypes.
func (a *Assembly) AddConstantRuntimeObject(o *rt.Object) int {
	return a.AddConstantObject(runtimeObjectRef{o})
}

// AddModule registers a module under its own name for later lookup.
func (a *Assembly) AddModule(m *Module) {
	a.modules[m.Name.Chars()] = m
}

// Module looks up a registered module by name.
func (a *Assembly) Module(name string) (*Module, bool) {
	m, ok := a.modules[name]
	return m, ok
}

func (a *Assembly) findDelegateTypeByName(name *strintern.String) (*DelegateType, bool) {
	dt, ok := a.delegateTypesByName[name]
	return dt, ok
}

func (a *Assembly) registerDelegateType(name *strintern.String, dt *DelegateType) {
	a.delegateTypesByName[name] = dt
}
