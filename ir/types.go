package ir

import (
	"strconv"
	"strings"
)

// TypeKind identifies the shape of a Type. Grounded on NIR_TYPE_ID
// (original_source/nir/include/netuno/nir/type.h).
type TypeKind int

const (
	ErrorTypeKind TypeKind = iota
	VoidTypeKind
	LabelTypeKind
	FloatTypeKind
	DoubleTypeKind
	IntegerTypeKind
	FunctionTypeKind
	PointerTypeKind
	StructTypeKind
	ArrayTypeKind
)

// Integer bit-width bounds, per NIR_INTEGER_BITS.
const (
	MinIntegerBits = 1
	MaxIntegerBits = 1 << 31
)

// Type is a uniqued, structurally-interned IR type. Types are only ever
// constructed through a Context, which guarantees that two requests for
// the same shape return the same *Type.
type Type struct {
	ctx  *Context
	kind TypeKind

	bitWidth int // IntegerTypeKind

	result  *Type   // FunctionTypeKind
	params  []*Type // FunctionTypeKind
	varArg  bool    // FunctionTypeKind

	elem  *Type  // PointerTypeKind, ArrayTypeKind
	count uint64 // ArrayTypeKind

	fields []*Type // StructTypeKind
}

// Context returns the owning context.
func (t *Type) Context() *Context { return t.ctx }

// Kind returns the type's kind tag.
func (t *Type) Kind() TypeKind { return t.kind }

func (c *Context) GetErrorType() *Type {
	if c.errorType == nil {
		c.errorType = &Type{ctx: c, kind: ErrorTypeKind}
	}
	return c.errorType
}

func (c *Context) GetVoidType() *Type {
	if c.voidType == nil {
		c.voidType = &Type{ctx: c, kind: VoidTypeKind}
	}
	return c.voidType
}

func (c *Context) GetLabelType() *Type {
	if c.labelType == nil {
		c.labelType = &Type{ctx: c, kind: LabelTypeKind}
	}
	return c.labelType
}

func (c *Context) GetFloatType() *Type {
	if c.floatType == nil {
		c.floatType = &Type{ctx: c, kind: FloatTypeKind}
	}
	return c.floatType
}

func (c *Context) GetDoubleType() *Type {
	if c.doubleType == nil {
		c.doubleType = &Type{ctx: c, kind: DoubleTypeKind}
	}
	return c.doubleType
}

// GetIntegerType returns the unique integer type of the given bit width,
// clamped to [MinIntegerBits, MaxIntegerBits].
func (c *Context) GetIntegerType(numBits int) *Type {
	if numBits < MinIntegerBits {
		numBits = MinIntegerBits
	}
	if numBits > MaxIntegerBits {
		numBits = MaxIntegerBits
	}
	if t, ok := c.integerTypes[numBits]; ok {
		return t
	}
	t := &Type{ctx: c, kind: IntegerTypeKind, bitWidth: numBits}
	c.integerTypes[numBits] = t
	return t
}

func (c *Context) GetInt1Type() *Type  { return c.GetIntegerType(1) }
func (c *Context) GetInt8Type() *Type  { return c.GetIntegerType(8) }
func (c *Context) GetInt16Type() *Type { return c.GetIntegerType(16) }
func (c *Context) GetInt32Type() *Type { return c.GetIntegerType(32) }
func (c *Context) GetInt64Type() *Type { return c.GetIntegerType(64) }

// GetOpaquePointerType returns the context's single opaque pointer type.
// NIR/NTR pointers carry no pointee; GetPointerTo exists for API parity
// with the original and is just an alias.
func (c *Context) GetOpaquePointerType() *Type {
	if c.ptrType == nil {
		c.ptrType = &Type{ctx: c, kind: PointerTypeKind}
	}
	return c.ptrType
}

// GetPointerTo mirrors nirGetPointerTo: since this port's pointers are
// opaque, every type's pointer-to is the same singleton.
func (c *Context) GetPointerTo(*Type) *Type { return c.GetOpaquePointerType() }

func typeKey(t *Type) string {
	switch t.kind {
	case IntegerTypeKind:
		return "i" + strconv.Itoa(t.bitWidth)
	case PointerTypeKind:
		return "ptr"
	case FloatTypeKind:
		return "f32"
	case DoubleTypeKind:
		return "f64"
	case VoidTypeKind:
		return "void"
	case LabelTypeKind:
		return "label"
	default:
		return "?"
	}
}

// GetFunctionType returns the unique function type for (result, params,
// isVarArg).
func (c *Context) GetFunctionType(result *Type, params []*Type, isVarArg bool) *Type {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	key := functionTypeKey{result: result, params: strings.Join(names, ","), varArg: isVarArg}
	if t, ok := c.functionTypes[key]; ok {
		return t
	}
	t := &Type{ctx: c, kind: FunctionTypeKind, result: result, params: append([]*Type(nil), params...), varArg: isVarArg}
	c.functionTypes[key] = t
	return t
}

// GetStructType returns the unique struct type for an ordered field tuple.
func (c *Context) GetStructType(elementTypes []*Type) *Type {
	names := make([]string, len(elementTypes))
	for i, f := range elementTypes {
		names[i] = f.String()
	}
	key := strings.Join(names, ",")
	if t, ok := c.structTypes[key]; ok {
		return t
	}
	t := &Type{ctx: c, kind: StructTypeKind, fields: append([]*Type(nil), elementTypes...)}
	c.structTypes[key] = t
	return t
}

// GetArrayType returns the unique array type for (elementType, numElements).
func (c *Context) GetArrayType(elementType *Type, numElements uint64) *Type {
	key := arrayTypeKey{elem: elementType, count: numElements}
	if t, ok := c.arrayTypes[key]; ok {
		return t
	}
	t := &Type{ctx: c, kind: ArrayTypeKind, elem: elementType, count: numElements}
	c.arrayTypes[key] = t
	return t
}

// String renders a human-readable type name, used for debug printing and
// as the building block of delegate type names ("delegate(i32,i32):i32").
func (t *Type) String() string {
	switch t.kind {
	case FunctionTypeKind:
		names := make([]string, len(t.params))
		for i, p := range t.params {
			names[i] = p.String()
		}
		variadic := ""
		if t.varArg {
			variadic = ",..."
		}
		return "fn(" + strings.Join(names, ",") + variadic + ")->" + t.result.String()
	case StructTypeKind:
		names := make([]string, len(t.fields))
		for i, f := range t.fields {
			names[i] = f.String()
		}
		return "struct{" + strings.Join(names, ",") + "}"
	case ArrayTypeKind:
		return "[" + strconv.FormatUint(t.count, 10) + "]" + t.elem.String()
	case ErrorTypeKind:
		return "error"
	default:
		return typeKey(t)
	}
}

// ---- predicates ----

func (t *Type) IsVoid() bool    { return t.kind == VoidTypeKind }
func (t *Type) IsLabel() bool   { return t.kind == LabelTypeKind }
func (t *Type) IsFloat() bool   { return t.kind == FloatTypeKind }
func (t *Type) IsDouble() bool  { return t.kind == DoubleTypeKind }
func (t *Type) IsInteger() bool { return t.kind == IntegerTypeKind }

// IsIntegerN reports whether t is the integer type of exactly n bits.
func (t *Type) IsIntegerN(n int) bool { return t.kind == IntegerTypeKind && t.bitWidth == n }

func (t *Type) IsFunction() bool { return t.kind == FunctionTypeKind }
func (t *Type) IsStruct() bool   { return t.kind == StructTypeKind }
func (t *Type) IsArray() bool    { return t.kind == ArrayTypeKind }
func (t *Type) IsPointer() bool  { return t.kind == PointerTypeKind }

// IsFirstClass reports whether t may be the type of an ordinary SSA value
// (any type except void, label, and function).
func (t *Type) IsFirstClass() bool {
	return t.kind != VoidTypeKind && t.kind != LabelTypeKind && t.kind != FunctionTypeKind
}

// IsSingleValue reports whether t is first-class and not an aggregate.
func (t *Type) IsSingleValue() bool {
	return t.IsFirstClass() && !t.IsAggregate()
}

// IsAggregate reports whether t is a struct or array.
func (t *Type) IsAggregate() bool {
	return t.kind == StructTypeKind || t.kind == ArrayTypeKind
}

// IsSized reports whether t has a well-defined size (everything except
// void, label, function, and the error type).
func (t *Type) IsSized() bool {
	switch t.kind {
	case VoidTypeKind, LabelTypeKind, FunctionTypeKind, ErrorTypeKind:
		return false
	default:
		return true
	}
}

// PrimitiveSizeInBits returns the bit width of float/double/integer
// types, or 0 for anything else.
func (t *Type) PrimitiveSizeInBits() int {
	switch t.kind {
	case FloatTypeKind:
		return 32
	case DoubleTypeKind:
		return 64
	case IntegerTypeKind:
		return t.bitWidth
	default:
		return 0
	}
}

// IntegerBitWidth returns the bit width of an integer type (0 otherwise).
func (t *Type) IntegerBitWidth() int {
	if t.kind != IntegerTypeKind {
		return 0
	}
	return t.bitWidth
}

func (t *Type) FunctionNumParams() int { return len(t.params) }
func (t *Type) FunctionParamType(i int) *Type { return t.params[i] }
func (t *Type) FunctionResult() *Type { return t.result }
func (t *Type) IsFunctionVarArg() bool { return t.varArg }

func (t *Type) StructNumElements() int          { return len(t.fields) }
func (t *Type) StructElementType(n int) *Type   { return t.fields[n] }
func (t *Type) ArrayNumElements() uint64        { return t.count }
func (t *Type) ArrayElementType() *Type         { return t.elem }
func (t *Type) PointeeType() *Type              { return t.elem }

// IsValidElementType reports whether t may be an array/struct element
// type: void and label are excluded.
func IsValidElementType(t *Type) bool {
	return t.kind != VoidTypeKind && t.kind != LabelTypeKind
}

// IsValidReturnType reports whether t may be a function's return type:
// label is excluded (void is fine).
func IsValidReturnType(t *Type) bool {
	return t.kind != LabelTypeKind
}

// IsValidArgumentType reports whether t may be a function parameter type:
// void and label are excluded.
func IsValidArgumentType(t *Type) bool {
	return t.kind != VoidTypeKind && t.kind != LabelTypeKind
}

// IsOpaque reports whether t is the pointer type (opaque: no pointee is
// ever tracked in this port).
func (t *Type) IsOpaque() bool { return t.kind == PointerTypeKind }

// StackSize returns the number of bytes a value of this type occupies on
// the VM value stack: 4 for 32-bit scalars, 8 for 64-bit, pointer width
// for references (spec.md §3, "Type").
func (t *Type) StackSize() int {
	switch t.kind {
	case FloatTypeKind:
		return 4
	case DoubleTypeKind:
		return 8
	case IntegerTypeKind:
		if t.bitWidth <= 32 {
			return 4
		}
		return 8
	case PointerTypeKind, StructTypeKind, ArrayTypeKind, FunctionTypeKind:
		return 8
	default:
		return 0
	}
}
