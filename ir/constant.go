package ir

import (
	"math"

	"netuno/strintern"
)

// Constant is a literal value: an integer or float bit pattern, an
// interned string, or an aggregate of other constants. Grounded on
// spec.md §3 ("Constant additionally carries...") and
// original_source/nil/include/netuno/nil/constant.h.
type Constant struct {
	valueBase
	raw      uint64 // integer/float bit pattern
	isString bool
	str      *strintern.String
	elements []*Constant // aggregate constants
}

// IsString reports whether this constant is an interned string literal.
func (c *Constant) IsString() bool { return c.isString }

// StringValue returns the interned string this constant holds. Only
// meaningful when IsString() is true.
func (c *Constant) StringValue() *strintern.String { return c.str }

// Raw returns the constant's bit pattern: for integers, the value masked
// to its type's width; for floats/doubles, the IEEE-754 bits.
func (c *Constant) Raw() uint64 { return c.raw }

// Elements returns an aggregate constant's member constants.
func (c *Constant) Elements() []*Constant { return c.elements }

func maskToWidth(value uint64, bits int) uint64 {
	if bits >= 64 {
		return value
	}
	return value & ((uint64(1) << uint(bits)) - 1)
}

// IsIntValueValid reports whether value fits in t's bit width as an
// unsigned number (no bits set above the width); widths of 64 or more
// accept any value.
func IsIntValueValid(t *Type, value uint64) bool {
	bits := t.IntegerBitWidth()
	if bits <= 0 || bits >= 64 {
		return true
	}
	return value == maskToWidth(value, bits)
}

// ConstInt constructs an integer constant of type t holding value masked
// to t's bit width.
func ConstInt(ctx *Context, t *Type, value uint64) *Constant {
	return &Constant{
		valueBase: valueBase{kind: ConstantValueKind, typ: t},
		raw:       maskToWidth(value, t.IntegerBitWidth()),
	}
}

// ConstSignedInt constructs an integer constant from a signed value,
// sign-extending into the low bits of t's width per spec.md §3.
func ConstSignedInt(ctx *Context, t *Type, value int64) *Constant {
	return ConstInt(ctx, t, uint64(value))
}

// GetIntAllOnes returns the all-ones constant of t's width. For width 64
// this is math.MaxUint64, not an overflowing (1<<64)-1 computation — see
// DESIGN.md's Open Question decision.
func GetIntAllOnes(ctx *Context, t *Type) *Constant {
	bits := t.IntegerBitWidth()
	if bits >= 64 {
		return &Constant{valueBase: valueBase{kind: ConstantValueKind, typ: t}, raw: math.MaxUint64}
	}
	return ConstInt(ctx, t, (uint64(1)<<uint(bits))-1)
}

// IsFloatValueValid reports whether a float32 constant's double-precision
// source value round-trips exactly through float32.
func IsFloatValueValid(v float64) bool {
	return float64(float32(v)) == v
}

// ConstFloat constructs a float (32-bit) constant.
func ConstFloat(ctx *Context, t *Type, value float64) *Constant {
	return &Constant{
		valueBase: valueBase{kind: ConstantValueKind, typ: t},
		raw:       uint64(math.Float32bits(float32(value))),
	}
}

// ConstDouble constructs a double (64-bit) constant.
func ConstDouble(ctx *Context, t *Type, value float64) *Constant {
	return &Constant{
		valueBase: valueBase{kind: ConstantValueKind, typ: t},
		raw:       math.Float64bits(value),
	}
}

// ConstString constructs a string constant.
func ConstString(ctx *Context, t *Type, value *strintern.String) *Constant {
	return &Constant{
		valueBase: valueBase{kind: ConstantValueKind, typ: t},
		isString:  true,
		str:       value,
	}
}

// ConstAggregate constructs a struct or array constant from its member
// constants.
func ConstAggregate(t *Type, elements []*Constant) *Constant {
	return &Constant{
		valueBase: valueBase{kind: ConstantValueKind, typ: t},
		elements:  append([]*Constant(nil), elements...),
	}
}

// FloatBits returns the constant's value as a float32 (valid when
// Type().IsFloat()).
func (c *Constant) FloatBits() float32 { return math.Float32frombits(uint32(c.raw)) }

// DoubleBits returns the constant's value as a float64 (valid when
// Type().IsDouble()).
func (c *Constant) DoubleBits() float64 { return math.Float64frombits(c.raw) }

// IntBits returns the constant's raw unsigned bit pattern.
func (c *Constant) IntBits() uint64 { return c.raw }

// SignedIntBits sign-extends the constant's bit pattern according to its
// integer type's width.
func (c *Constant) SignedIntBits() int64 {
	bits := c.typ.IntegerBitWidth()
	if bits <= 0 || bits >= 64 {
		return int64(c.raw)
	}
	shift := uint(64 - bits)
	return int64(c.raw<<shift) >> shift
}
