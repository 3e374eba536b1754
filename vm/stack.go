package vm

import (
	"encoding/binary"
	"math"

	"netuno/rt"
)

// stackMax and callStackMax are the fixed buffer sizes spec.md §4.9
// specifies for the value and call stacks.
const (
	stackMax     = 4096
	callStackMax = 4096
)

// valueStack is a fixed 4096-byte buffer with a byte-oriented top pointer.
// Debug builds additionally track a parallel per-push byte-width, used for
// tracing (spec.md §4.9, §9's note on the stackType debug array).
type valueStack struct {
	data  [stackMax]byte
	top   int
	trace bool
	width []int // parallel per-push byte widths, only populated when trace
}

func newValueStack(trace bool) *valueStack {
	return &valueStack{trace: trace}
}

func (s *valueStack) push(b []byte) bool {
	if s.top+len(b) > stackMax {
		return false
	}
	copy(s.data[s.top:], b)
	s.top += len(b)
	if s.trace {
		s.width = append(s.width, len(b))
	}
	return true
}

func (s *valueStack) pop(n int) ([]byte, bool) {
	if s.top-n < 0 {
		return nil, false
	}
	s.top -= n
	if s.trace && len(s.width) > 0 {
		s.width = s.width[:len(s.width)-1]
	}
	return s.data[s.top : s.top+n], true
}

func (s *valueStack) peek(n int) ([]byte, bool) {
	if s.top-n < 0 {
		return nil, false
	}
	return s.data[s.top-n : s.top], true
}

// peekAt returns n bytes starting offset bytes below the current top,
// without popping (used by load_sp_32/64).
func (s *valueStack) peekAt(offset, n int) ([]byte, bool) {
	start := s.top - offset
	if start < 0 || start+n > s.top {
		return nil, false
	}
	return s.data[start : start+n], true
}

// writeAt overwrites n bytes starting offset bytes below the current top
// (used by store_sp_32/64).
func (s *valueStack) writeAt(offset int, b []byte) bool {
	start := s.top - offset
	if start < 0 || start+len(b) > s.top {
		return false
	}
	copy(s.data[start:start+len(b)], b)
	return true
}

func (s *valueStack) pushU32(v uint32) bool {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return s.push(tmp[:])
}

func (s *valueStack) popU32() (uint32, bool) {
	b, ok := s.pop(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (s *valueStack) peekU32() (uint32, bool) {
	b, ok := s.peek(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (s *valueStack) pushU64(v uint64) bool {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return s.push(tmp[:])
}

func (s *valueStack) popU64() (uint64, bool) {
	b, ok := s.pop(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

func (s *valueStack) peekU64() (uint64, bool) {
	b, ok := s.peek(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

func (s *valueStack) pushI32(v int32) bool   { return s.pushU32(uint32(v)) }
func (s *valueStack) popI32() (int32, bool)  { v, ok := s.popU32(); return int32(v), ok }
func (s *valueStack) peekI32() (int32, bool) { v, ok := s.peekU32(); return int32(v), ok }

func (s *valueStack) pushI64(v int64) bool   { return s.pushU64(uint64(v)) }
func (s *valueStack) popI64() (int64, bool)  { v, ok := s.popU64(); return int64(v), ok }
func (s *valueStack) peekI64() (int64, bool) { v, ok := s.peekU64(); return int64(v), ok }

func (s *valueStack) pushF32(v float32) bool   { return s.pushU32(math.Float32bits(v)) }
func (s *valueStack) popF32() (float32, bool)  { v, ok := s.popU32(); return math.Float32frombits(v), ok }
func (s *valueStack) peekF32() (float32, bool) { v, ok := s.peekU32(); return math.Float32frombits(v), ok }

func (s *valueStack) pushF64(v float64) bool { return s.pushU64(math.Float64bits(v)) }
func (s *valueStack) popF64() (float64, bool) {
	v, ok := s.popU64()
	return math.Float64frombits(v), ok
}
func (s *valueStack) peekF64() (float64, bool) {
	v, ok := s.peekU64()
	return math.Float64frombits(v), ok
}

// refTable keeps rt.Objects reachable while only a handle for them lives
// on the byte-oriented value stack: storing a raw Go pointer's bits as an
// integer would hide it from the garbage collector. popRef retires a
// handle by deleting its entry; peeking leaves the entry in place.
var (
	refTable   = map[uintptr]*rt.Object{}
	nextHandle uintptr = 1
)

func refHandle(o *rt.Object) uintptr {
	if o == nil {
		return 0
	}
	h := nextHandle
	nextHandle++
	refTable[h] = o
	return h
}

func refFromHandle(h uintptr) *rt.Object {
	if h == 0 {
		return nil
	}
	return refTable[h]
}

// pushRef/popRef store an rt.Object reference. Reference stack size is
// platform-dependent (spec.md §4.9); this port stores them as 8-byte
// pointer-sized slots regardless of host architecture.
func (s *valueStack) pushRef(o *rt.Object) bool {
	return s.pushU64(uint64(uintptr(refHandle(o))))
}

func (s *valueStack) popRef() (*rt.Object, bool) {
	v, ok := s.popU64()
	if !ok {
		return nil, false
	}
	h := uintptr(v)
	obj := refFromHandle(h)
	delete(refTable, h)
	return obj, true
}

func (s *valueStack) peekRef() (*rt.Object, bool) {
	v, ok := s.peekU64()
	if !ok {
		return nil, false
	}
	return refFromHandle(uintptr(v)), true
}

// callFrame is a return address: the module and byte offset execution
// resumes at after the callee returns (spec.md §4.9's call-stack entry).
type callFrame struct {
	module *Module
	pc     int
}

// callStack is a fixed-depth LIFO of callFrame values.
type callStack struct {
	frames [callStackMax]callFrame
	top    int
}

func (c *callStack) push(f callFrame) bool {
	if c.top >= callStackMax {
		return false
	}
	c.frames[c.top] = f
	c.top++
	return true
}

func (c *callStack) pop() (callFrame, bool) {
	if c.top == 0 {
		return callFrame{}, false
	}
	c.top--
	return c.frames[c.top], true
}
