package ir

import "netuno/strintern"

// Function is a named, typed sequence of basic blocks. The first
// inserted block is its entry block. Grounded on
// original_source/nil/include/netuno/nil/function.h.
type Function struct {
	name   *strintern.String
	typ    *Type // function type
	params []*Argument
	blocks []*BasicBlock
	module *Module
}

func newFunction(ctx *Context, name *strintern.String, typ *Type) *Function {
	f := &Function{name: name, typ: typ}
	for i := 0; i < typ.FunctionNumParams(); i++ {
		f.params = append(f.params, newArgument(nil, typ.FunctionParamType(i), i, f))
	}
	return f
}

// Name returns the function's interned name.
func (f *Function) Name() *strintern.String { return f.name }

// Type returns the function's function-type signature.
func (f *Function) Type() *Type { return f.typ }

// Module returns the enclosing module.
func (f *Function) Module() *Module { return f.module }

// ParamCount returns the number of parameters.
func (f *Function) ParamCount() int { return len(f.params) }

// ParamValue returns the i'th parameter as an Argument value.
func (f *Function) ParamValue(i int) *Argument { return f.params[i] }

// EntryBlock returns the first inserted block, or nil if none.
func (f *Function) EntryBlock() *BasicBlock {
	if len(f.blocks) == 0 {
		return nil
	}
	return f.blocks[0]
}

// Blocks returns the function's ordered basic blocks.
func (f *Function) Blocks() []*BasicBlock { return f.blocks }

// BlockCount returns the number of blocks.
func (f *Function) BlockCount() int { return len(f.blocks) }
