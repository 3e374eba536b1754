// Package bytebuffer implements a growable byte buffer with typed
// append/read helpers and a zig-zag varint codec. It backs IR
// serialisation and the VM's per-module code/lines/constants buffers.
package bytebuffer

import (
	"encoding/binary"
	"math"
)

// Buffer is a contiguous, resizable byte region. The zero value is an
// empty, ready-to-use buffer.
type Buffer struct {
	data []byte
}

// New returns a buffer pre-sized to hold at least capacity bytes.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the underlying storage. Callers must not retain it across
// further mutation of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) grow(extra int) {
	need := len(b.data) + extra
	if need <= cap(b.data) {
		return
	}
	newCap := cap(b.data) + cap(b.data)/2
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Append copies data onto the end of the buffer and returns the offset at
// which it was written.
func (b *Buffer) Append(data []byte) int {
	offset := len(b.data)
	b.grow(len(data))
	b.data = b.data[:offset+len(data)]
	copy(b.data[offset:], data)
	return offset
}

// Set overwrites the buffer at offset, growing the buffer if the write
// extends past the current length.
func (b *Buffer) Set(offset int, data []byte) {
	end := offset + len(data)
	if end > len(b.data) {
		b.grow(end - len(b.data))
		b.data = b.data[:end]
	}
	copy(b.data[offset:end], data)
}

// Insert shifts the tail starting at offset to the right by len(data) and
// copies data into the gap.
func (b *Buffer) Insert(offset int, data []byte) {
	b.grow(len(data))
	b.data = b.data[:len(b.data)+len(data)]
	copy(b.data[offset+len(data):], b.data[offset:len(b.data)-len(data)])
	copy(b.data[offset:offset+len(data)], data)
}

// Find performs a deterministic, leftmost linear substring search for data
// and reports whether it was found along with its offset.
func (b *Buffer) Find(data []byte) (offset int, found bool) {
	if len(data) == 0 || len(data) > len(b.data) {
		return 0, false
	}
	for i := 0; i+len(data) <= len(b.data); i++ {
		if string(b.data[i:i+len(data)]) == string(data) {
			return i, true
		}
	}
	return 0, false
}

// AppendUint32 appends a 32-bit unsigned integer in little-endian byte order.
func (b *Buffer) AppendUint32(v uint32) int {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return b.Append(tmp[:])
}

// ReadUint32 reads a 32-bit unsigned integer at offset.
func (b *Buffer) ReadUint32(offset int) uint32 {
	return binary.LittleEndian.Uint32(b.data[offset:])
}

// AppendUint64 appends a 64-bit unsigned integer in little-endian byte order.
func (b *Buffer) AppendUint64(v uint64) int {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return b.Append(tmp[:])
}

// ReadUint64 reads a 64-bit unsigned integer at offset.
func (b *Buffer) ReadUint64(offset int) uint64 {
	return binary.LittleEndian.Uint64(b.data[offset:])
}

// AppendInt32 appends a 32-bit signed integer in little-endian byte order.
func (b *Buffer) AppendInt32(v int32) int {
	return b.AppendUint32(uint32(v))
}

// ReadInt32 reads a 32-bit signed integer at offset.
func (b *Buffer) ReadInt32(offset int) int32 {
	return int32(b.ReadUint32(offset))
}

// AppendInt64 appends a 64-bit signed integer in little-endian byte order.
func (b *Buffer) AppendInt64(v int64) int {
	return b.AppendUint64(uint64(v))
}

// ReadInt64 reads a 64-bit signed integer at offset.
func (b *Buffer) ReadInt64(offset int) int64 {
	return int64(b.ReadUint64(offset))
}

// AppendFloat32 appends an IEEE-754 32-bit float in little-endian byte order.
func (b *Buffer) AppendFloat32(v float32) int {
	return b.AppendUint32(math.Float32bits(v))
}

// ReadFloat32 reads an IEEE-754 32-bit float at offset.
func (b *Buffer) ReadFloat32(offset int) float32 {
	return math.Float32frombits(b.ReadUint32(offset))
}

// AppendFloat64 appends an IEEE-754 64-bit float in little-endian byte order.
func (b *Buffer) AppendFloat64(v float64) int {
	return b.AppendUint64(math.Float64bits(v))
}

// ReadFloat64 reads an IEEE-754 64-bit float at offset.
func (b *Buffer) ReadFloat64(offset int) float64 {
	return math.Float64frombits(b.ReadUint64(offset))
}

// zigzag transforms a signed 64-bit integer so that small-magnitude values
// occupy few bits regardless of sign: (v << 1) XOR (v >> 63).
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendVarint encodes v with a zig-zag transform followed by a
// little-endian base-128 varint (7 payload bits, 1 continuation bit per
// byte) and appends it. Returns the offset written.
func (b *Buffer) AppendVarint(v int64) int {
	u := zigzag(v)
	offset := len(b.data)
	for {
		c := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b.Append([]byte{c | 0x80})
		} else {
			b.Append([]byte{c})
			break
		}
	}
	return offset
}

// InsertVarint inserts a zig-zag varint encoding of v at offset, shifting
// the tail to the right.
func (b *Buffer) InsertVarint(offset int, v int64) int {
	encoded := encodeVarintBytes(v)
	b.Insert(offset, encoded)
	return len(encoded)
}

func encodeVarintBytes(v int64) []byte {
	u := zigzag(v)
	var out []byte
	for {
		c := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			out = append(out, c|0x80)
		} else {
			out = append(out, c)
			break
		}
	}
	return out
}

// ReadVarint decodes a zig-zag varint starting at offset, returning the
// decoded value and the number of bytes it occupied.
func (b *Buffer) ReadVarint(offset int) (value int64, n int) {
	var u uint64
	var shift uint
	i := offset
	for {
		c := b.data[i]
		i++
		u |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			break
		}
		shift += 7
	}
	return unzigzag(u), i - offset
}
