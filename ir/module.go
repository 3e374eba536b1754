package ir

import "netuno/strintern"

// Module is a named container of functions, keyed by interned name.
// Grounded on original_source/nil/include/netuno/nil/module.h.
type Module struct {
	ctx            *Context
	identifier     string
	sourceFileName string
	functions      map[*strintern.String]*Function
	order          []*strintern.String
}

// NewModule creates a module with the given identifier, owned by ctx.
func NewModule(ctx *Context, name string) *Module {
	return &Module{
		ctx:        ctx,
		identifier: name,
		functions:  make(map[*strintern.String]*Function),
	}
}

// Context returns the owning context.
func (m *Module) Context() *Context { return m.ctx }

// Identifier returns the module's name.
func (m *Module) Identifier() string { return m.identifier }

// SetIdentifier renames the module.
func (m *Module) SetIdentifier(name string) { m.identifier = name }

// SourceFileName returns the module's recorded source file name.
func (m *Module) SourceFileName() string { return m.sourceFileName }

// SetSourceFileName records the module's source file name.
func (m *Module) SetSourceFileName(name string) { m.sourceFileName = name }

// GetOrInsertFunction looks up name in the module's function table. If
// absent, it inserts and returns a fresh function of type typ. If
// present with a different function type, it still returns the existing
// function — per spec.md §4.6 and DESIGN.md's recorded Open Question
// decision, callers are responsible for detecting that mismatch
// themselves; this call never replaces an existing function.
func (m *Module) GetOrInsertFunction(name string, typ *Type) *Function {
	interned := m.ctx.intern(name)
	if fn, ok := m.functions[interned]; ok {
		return fn
	}
	fn := newFunction(m.ctx, interned, typ)
	fn.module = m
	m.functions[interned] = fn
	m.order = append(m.order, interned)
	return fn
}

// GetFunction looks up name in the module's function table, returning
// nil if absent.
func (m *Module) GetFunction(name string) *Function {
	interned := m.ctx.intern(name)
	return m.functions[interned]
}

// Functions returns the module's functions in insertion order.
func (m *Module) Functions() []*Function {
	out := make([]*Function, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.functions[name])
	}
	return out
}
