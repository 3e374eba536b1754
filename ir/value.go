package ir

import "netuno/strintern"

// ValueKind identifies which of the three value variants a Value is.
// Grounded on NIR_VALUE_TYPE.
type ValueKind int

const (
	ArgumentValueKind ValueKind = iota
	ConstantValueKind
	InstructionValueKind
)

// DebugLoc is an optional source-location tag attached to a value.
type DebugLoc struct {
	File string
	Line int
	Col  int
}

// Value is anything that can be used as an operand: an Argument, a
// Constant, or an Instruction. Grounded on
// original_source/nir/include/netuno/nir/value.h.
type Value interface {
	Name() *strintern.String
	SetName(name *strintern.String)
	Type() *Type
	ValueKind() ValueKind
	DebugLoc() *DebugLoc
	SetDebugLoc(loc *DebugLoc)
}

// valueBase is the common header every value variant embeds: kind, name,
// type, and an optional debug location.
type valueBase struct {
	kind     ValueKind
	name     *strintern.String
	typ      *Type
	debugLoc *DebugLoc
}

func (v *valueBase) Name() *strintern.String        { return v.name }
func (v *valueBase) SetName(name *strintern.String) { v.name = name }
func (v *valueBase) Type() *Type                    { return v.typ }
func (v *valueBase) ValueKind() ValueKind            { return v.kind }
func (v *valueBase) DebugLoc() *DebugLoc            { return v.debugLoc }
func (v *valueBase) SetDebugLoc(loc *DebugLoc)      { v.debugLoc = loc }

// IsValueType reports whether v's kind matches want.
func IsValueType(v Value, want ValueKind) bool { return v.ValueKind() == want }

// Undef is an undefined-value sentinel. It carries no type of its own;
// callers compare by identity. RemoveIncomingValue does not substitute it
// for the uses of an emptied phi.
var Undef Value = &undefValue{}

type undefValue struct{ valueBase }

func (u *undefValue) String() string { return "undef" }

// Argument is a function parameter materialised as a first-class value.
type Argument struct {
	valueBase
	index  int
	parent *Function
}

func newArgument(name *strintern.String, typ *Type, index int, parent *Function) *Argument {
	return &Argument{valueBase: valueBase{kind: ArgumentValueKind, name: name, typ: typ}, index: index, parent: parent}
}

// Index returns the argument's zero-based position in its function's
// parameter list.
func (a *Argument) Index() int { return a.index }

// Parent returns the owning function.
func (a *Argument) Parent() *Function { return a.parent }
