package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerTypesAreUniqued(t *testing.T) {
	ctx := NewContext()
	a := ctx.GetIntegerType(32)
	b := ctx.GetIntegerType(32)
	assert.Same(t, a, b)
	assert.NotSame(t, a, ctx.GetIntegerType(64))
}

func TestIntegerTypeWidthClamped(t *testing.T) {
	ctx := NewContext()
	t1 := ctx.GetIntegerType(0)
	assert.Equal(t, MinIntegerBits, t1.IntegerBitWidth())
	t2 := ctx.GetIntegerType(MaxIntegerBits + 100)
	assert.Equal(t, MaxIntegerBits, t2.IntegerBitWidth())
}

func TestFunctionTypeUniquedByShape(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	a := ctx.GetFunctionType(i32, []*Type{i32, i32}, false)
	b := ctx.GetFunctionType(i32, []*Type{i32, i32}, false)
	assert.Same(t, a, b)

	c := ctx.GetFunctionType(i32, []*Type{i32}, false)
	assert.NotSame(t, a, c)
}

func TestArrayTypeUniquedByElementAndCount(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	a := ctx.GetArrayType(i32, 4)
	b := ctx.GetArrayType(i32, 4)
	assert.Same(t, a, b)
	assert.NotSame(t, a, ctx.GetArrayType(i32, 5))
}

func TestStructTypeUniquedByFieldTuple(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	i64 := ctx.GetInt64Type()
	a := ctx.GetStructType([]*Type{i32, i64})
	b := ctx.GetStructType([]*Type{i32, i64})
	assert.Same(t, a, b)
	assert.NotSame(t, a, ctx.GetStructType([]*Type{i64, i32}))
}

func TestStructTypeUniquedByNestedAggregateField(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	i64 := ctx.GetInt64Type()
	innerA := ctx.GetStructType([]*Type{i32, i64})
	innerB := ctx.GetStructType([]*Type{i64, i32})
	require.NotSame(t, innerA, innerB)

	outerA := ctx.GetStructType([]*Type{innerA})
	outerB := ctx.GetStructType([]*Type{innerB})
	assert.NotSame(t, outerA, outerB, "structs differing only in a nested struct field must not collapse to the same type")

	outerA2 := ctx.GetStructType([]*Type{innerA})
	assert.Same(t, outerA, outerA2)
}

func TestFunctionTypeUniquedByNestedAggregateParam(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	i64 := ctx.GetInt64Type()
	arrI32 := ctx.GetArrayType(i32, 4)
	arrI64 := ctx.GetArrayType(i64, 4)

	a := ctx.GetFunctionType(i32, []*Type{arrI32}, false)
	b := ctx.GetFunctionType(i32, []*Type{arrI64}, false)
	assert.NotSame(t, a, b, "function types differing only in an array-typed param must not collapse to the same type")

	fnParam := ctx.GetFunctionType(i32, []*Type{i32}, false)
	c := ctx.GetFunctionType(i32, []*Type{fnParam}, false)
	d := ctx.GetFunctionType(i32, []*Type{i32}, false)
	assert.NotSame(t, c, d, "a function-typed param must not be confused with a scalar param")
}

func TestFirstClassSingleValueAggregatePredicates(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	void := ctx.GetVoidType()
	label := ctx.GetLabelType()
	arr := ctx.GetArrayType(i32, 3)

	assert.True(t, i32.IsFirstClass())
	assert.True(t, i32.IsSingleValue())
	assert.False(t, i32.IsAggregate())

	assert.False(t, void.IsFirstClass())
	assert.False(t, label.IsFirstClass())

	assert.True(t, arr.IsFirstClass())
	assert.True(t, arr.IsAggregate())
	assert.False(t, arr.IsSingleValue())
}

func TestValidElementReturnArgumentTypeRules(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	void := ctx.GetVoidType()
	label := ctx.GetLabelType()

	assert.True(t, IsValidElementType(i32))
	assert.False(t, IsValidElementType(void))
	assert.False(t, IsValidElementType(label))

	assert.True(t, IsValidReturnType(void))
	assert.False(t, IsValidReturnType(label))

	assert.True(t, IsValidArgumentType(i32))
	assert.False(t, IsValidArgumentType(void))
}

func TestStackSizeByKind(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, 4, ctx.GetInt32Type().StackSize())
	assert.Equal(t, 8, ctx.GetInt64Type().StackSize())
	assert.Equal(t, 4, ctx.GetFloatType().StackSize())
	assert.Equal(t, 8, ctx.GetDoubleType().StackSize())
	assert.Equal(t, 8, ctx.GetOpaquePointerType().StackSize())
}

func TestFreshNameIsMonotonicPerPrefix(t *testing.T) {
	ctx := NewContext()
	require.Equal(t, "tmp0", ctx.FreshName("tmp"))
	require.Equal(t, "tmp1", ctx.FreshName("tmp"))
	require.Equal(t, "v0", ctx.FreshName("v"))
}
