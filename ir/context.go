// Package ir implements the NIL/NIR intermediate representation: a
// context-owned uniquing arena for types, SSA values, instructions, basic
// blocks, functions, and modules. Grounded on
// original_source/nir/include/netuno/nir/{context,type,value,instruction}.h
// and original_source/nil/include/netuno/nil/{basic_block,function,module}.h.
package ir

import (
	"fmt"

	"netuno/strintern"
)

// functionTypeKey and the other cache keys below give the context's type
// caches structural identity: two requests for the same shape return the
// same *Type pointer, per spec.md §4.4.
type functionTypeKey struct {
	result *Type
	params string // joined param type names, cheap structural key
	varArg bool
}

type arrayTypeKey struct {
	elem  *Type
	count uint64
}

// Context is the uniquing arena every IR object in a translation unit
// hangs off of. All types are canonicalized through it; destroying the
// context (letting it become unreachable) destroys everything it owns,
// same as the C original's arena-style lifetime.
type Context struct {
	Strings *strintern.Table

	voidType   *Type
	labelType  *Type
	floatType  *Type
	doubleType *Type
	errorType  *Type
	ptrType    *Type

	integerTypes  map[int]*Type
	functionTypes map[functionTypeKey]*Type
	structTypes   map[string]*Type
	arrayTypes    map[arrayTypeKey]*Type

	prefixCounters map[string]int
}

// NewContext returns a fresh, empty context with its own intern table.
func NewContext() *Context {
	return &Context{
		Strings:       &strintern.Table{},
		integerTypes:  make(map[int]*Type),
		functionTypes: make(map[functionTypeKey]*Type),
		structTypes:   make(map[string]*Type),
		arrayTypes:    make(map[arrayTypeKey]*Type),
		prefixCounters: make(map[string]int),
	}
}

// FreshName returns a fresh identifier `<prefix><n>` using this context's
// per-prefix monotonic counter; "entry" is handled specially by callers
// (spec.md §4.6: the first block's name is used verbatim when it is
// exactly "entry").
func (c *Context) FreshName(prefix string) string {
	n := c.prefixCounters[prefix]
	c.prefixCounters[prefix] = n + 1
	return fmt.Sprintf("%s%d", prefix, n)
}

func (c *Context) intern(s string) *strintern.String {
	return c.Strings.Copy(s)
}
