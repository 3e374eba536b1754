package bytebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendReadTypedValues(t *testing.T) {
	b := New(0)

	off32 := b.AppendUint32(0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), b.ReadUint32(off32))

	off64 := b.AppendUint64(0x1122334455667788)
	assert.Equal(t, uint64(0x1122334455667788), b.ReadUint64(off64))

	offI32 := b.AppendInt32(-12345)
	assert.Equal(t, int32(-12345), b.ReadInt32(offI32))

	offI64 := b.AppendInt64(-9223372036854775000)
	assert.Equal(t, int64(-9223372036854775000), b.ReadInt64(offI64))

	offF32 := b.AppendFloat32(3.25)
	assert.Equal(t, float32(3.25), b.ReadFloat32(offF32))

	offF64 := b.AppendFloat64(-2.5e10)
	assert.Equal(t, float64(-2.5e10), b.ReadFloat64(offF64))
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, 64, -64, -65, 1 << 20, -(1 << 20), 9223372036854775807, -9223372036854775808}
	b := New(0)
	offsets := make([]int, len(values))
	for i, v := range values {
		offsets[i] = b.AppendVarint(v)
	}
	for i, v := range values {
		got, n := b.ReadVarint(offsets[i])
		assert.Equal(t, v, got)
		assert.Greater(t, n, 0)
	}
}

func TestVarintSingleByteForSmallValues(t *testing.T) {
	b := New(0)
	off := b.AppendVarint(5)
	_, n := b.ReadVarint(off)
	assert.Equal(t, 1, n)
}

func TestInsertShiftsTail(t *testing.T) {
	b := New(0)
	b.Append([]byte{1, 2, 3, 4, 5})
	b.Insert(2, []byte{0xaa, 0xbb})
	require.Equal(t, []byte{1, 2, 0xaa, 0xbb, 3, 4, 5}, b.Bytes())
}

func TestSetGrowsBuffer(t *testing.T) {
	b := New(0)
	b.Set(4, []byte{9, 9})
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, byte(9), b.Bytes()[4])
}

func TestFindLeftmostMatch(t *testing.T) {
	b := New(0)
	b.Append([]byte("abcabcabc"))
	off, ok := b.Find([]byte("abc"))
	require.True(t, ok)
	assert.Equal(t, 0, off)

	off, ok = b.Find([]byte("cab"))
	require.True(t, ok)
	assert.Equal(t, 2, off)

	_, ok = b.Find([]byte("xyz"))
	assert.False(t, ok)
}

func TestAppendGrowthFactor(t *testing.T) {
	b := New(2)
	for i := 0; i < 100; i++ {
		b.Append([]byte{byte(i)})
	}
	assert.Equal(t, 100, b.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, byte(i), b.Bytes()[i])
	}
}
