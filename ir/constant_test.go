package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstIntMasksToWidth(t *testing.T) {
	ctx := NewContext()
	i8 := ctx.GetInt8Type()
	c := ConstInt(ctx, i8, 0x1FF)
	assert.Equal(t, uint64(0xFF), c.IntBits())
}

func TestConstSignedIntSignExtends(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetInt32Type()
	c := ConstSignedInt(ctx, i32, -1)
	assert.Equal(t, int64(-1), c.SignedIntBits())
}

func TestIsIntValueValid(t *testing.T) {
	ctx := NewContext()
	i8 := ctx.GetInt8Type()
	assert.True(t, IsIntValueValid(i8, 0xFF))
	assert.False(t, IsIntValueValid(i8, 0x1FF))
}

func TestIsFloatValueValidRoundTrip(t *testing.T) {
	assert.True(t, IsFloatValueValid(3.5))
	assert.False(t, IsFloatValueValid(0.1+1e-300)) // 0.1 has no exact float32 representation
}

func TestConstFloatAndDoubleRoundTrip(t *testing.T) {
	ctx := NewContext()
	f32 := ctx.GetFloatType()
	f64 := ctx.GetDoubleType()

	cf := ConstFloat(ctx, f32, 2.5)
	assert.Equal(t, float32(2.5), cf.FloatBits())

	cd := ConstDouble(ctx, f64, -2.5e10)
	assert.Equal(t, -2.5e10, cd.DoubleBits())
}

func TestConstDoubleSpecialValues(t *testing.T) {
	ctx := NewContext()
	f64 := ctx.GetDoubleType()
	assert.True(t, math.IsInf(ConstDouble(ctx, f64, math.Inf(1)).DoubleBits(), 1))
	assert.True(t, math.IsNaN(ConstDouble(ctx, f64, math.NaN()).DoubleBits()))
}
