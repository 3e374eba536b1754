package vm

import (
	"netuno/bytebuffer"
	"netuno/rt"
	"netuno/strintern"
	"netuno/strtable"
)

// Module is a bytecode module: three parallel buffers (code, source lines,
// constants) plus the symbol table mapping names to delegates defined or
// forward-declared within it. Grounded on original_source
// ntr/include/netuno/nto.h's NT_MODULE/NT_CHUNK shape and
// ntr/source/module.c's ntWriteChunk/ntAddConstant* family (spec.md §4.8).
type Module struct {
	rt.Object
	Name *strintern.String

	code      *bytebuffer.Buffer
	lines     *bytebuffer.Buffer // run-length varint pairs: (length of the previous run, line of the run starting here)
	constants *bytebuffer.Buffer

	lastLine    int
	lastLineRun int

	symbols *strtable.Table
}

// SymbolKind distinguishes function/subroutine and public/private/weak,
// matching spec.md §4.8's module function-registration flag set.
type SymbolKind uint8

const (
	SymbolFunction SymbolKind = 1 << iota
	SymbolSubroutine
	SymbolPublic
	SymbolPrivate
	SymbolWeak
)

// Symbol is a module-level function table entry. A weak symbol has no
// Address yet (IsWeak); a strong symbol's Address is the byte offset of
// its first instruction in code; a native symbol carries Native instead.
type Symbol struct {
	Name    *strintern.String
	Kind    SymbolKind
	Address int
	Native  NativeFunc
}

// NewModule returns an empty module named name.
func NewModule(strings *strintern.Table, name string) *Module {
	return &Module{
		Name:      strings.Copy(name),
		code:      bytebuffer.New(64),
		lines:     bytebuffer.New(16),
		constants: bytebuffer.New(32),
		symbols:   strtable.New(),
		lastLine:  -1,
	}
}

// Code exposes the module's code buffer for the interpreter's fetch loop.
func (m *Module) Code() *bytebuffer.Buffer { return m.code }

// Write appends one opcode byte at the current end of code, extending the
// line-run table, and returns the offset it was written at.
func (m *Module) Write(b byte, line int) int {
	offset := m.code.Append([]byte{b})
	m.extendLine(line)
	return offset
}

// WriteVarint appends a zig-zag varint to code and extends the line-run
// table once per emitted byte.
func (m *Module) WriteVarint(v int64, line int) int {
	before := m.code.Len()
	offset := m.code.AppendVarint(v)
	for i := 0; i < m.code.Len()-before; i++ {
		m.extendLine(line)
	}
	return offset
}

func (m *Module) extendLine(line int) {
	if line == m.lastLine {
		m.lastLineRun++
		return
	}
	m.lines.AppendVarint(int64(m.lastLineRun))
	m.lines.AppendVarint(int64(line))
	m.lastLine = line
	m.lastLineRun = 1
}

// LineAt resolves the source line responsible for the instruction byte at
// codeOffset by walking the run-length line table.
func (m *Module) LineAt(codeOffset int) int {
	pos, line := 0, -1
	consumed := 0
	for pos < m.lines.Len() {
		prevRun, n := m.lines.ReadVarint(pos)
		pos += n
		consumed += int(prevRun)
		if consumed > codeOffset {
			return line
		}
		ln, n2 := m.lines.ReadVarint(pos)
		pos += n2
		line = int(ln)
	}
	return line
}

// addConstant deduplicates data within the constants buffer via linear
// search (spec.md §4.8: "deduplicate by linear search of the constants
// buffer") and returns the byte offset it lives at.
func (m *Module) addConstant(data []byte) int {
	if offset, found := m.constants.Find(data); found {
		return offset
	}
	return m.constants.Append(data)
}

// AddConstant32 stores a 32-bit constant and returns its byte offset.
func (m *Module) AddConstant32(v uint32) int {
	var tmp [4]byte
	tmp[0] = byte(v)
	tmp[1] = byte(v >> 8)
	tmp[2] = byte(v >> 16)
	tmp[3] = byte(v >> 24)
	return m.addConstant(tmp[:])
}

// AddConstant64 stores a 64-bit constant and returns its byte offset.
func (m *Module) AddConstant64(v uint64) int {
	var tmp [8]byte
	for i := 0; i < 8; i++ {
		tmp[i] = byte(v >> (8 * i))
	}
	return m.addConstant(tmp[:])
}

// AddConstantString stores chars as a null-terminated UTF-32 string in the
// constants buffer and returns its byte offset.
func (m *Module) AddConstantString(chars string) int {
	runes := []rune(chars)
	data := make([]byte, 0, (len(runes)+1)*4)
	for _, r := range runes {
		data = append(data, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}
	data = append(data, 0, 0, 0, 0)
	return m.addConstant(data)
}

// Constant32At reads a 32-bit constant at a byte offset into the constants
// buffer.
func (m *Module) Constant32At(offset int) uint32 { return m.constants.ReadUint32(offset) }

// Constant64At reads a 64-bit constant at a byte offset into the constants
// buffer.
func (m *Module) Constant64At(offset int) uint64 { return m.constants.ReadUint64(offset) }

// DeclareWeak registers a forward declaration for name with no address yet.
func (m *Module) DeclareWeak(strings *strintern.Table, name string, kind SymbolKind) {
	key := strings.Copy(name)
	m.symbols.Set(key, &Symbol{Name: key, Kind: kind | SymbolWeak})
}

// DefineStrong adds (or promotes a pre-existing weak entry for) a bytecode
// delegate at a definite address, matching spec.md §4.8's "strong symbol
// ... promotes any pre-existing weak entry in place".
func (m *Module) DefineStrong(strings *strintern.Table, name string, kind SymbolKind, address int) *Symbol {
	key := strings.Copy(name)
	sym := &Symbol{Name: key, Kind: kind &^ SymbolWeak, Address: address}
	m.symbols.Set(key, sym)
	return sym
}

// DefineNative registers a native-backed symbol.
func (m *Module) DefineNative(strings *strintern.Table, name string, kind SymbolKind, fn NativeFunc) *Symbol {
	key := strings.Copy(name)
	sym := &Symbol{Name: key, Kind: kind &^ SymbolWeak, Native: fn}
	m.symbols.Set(key, sym)
	return sym
}

// Lookup finds a module-level symbol by name.
func (m *Module) Lookup(strings *strintern.Table, name string) (*Symbol, bool) {
	v, ok := m.symbols.Get(strings.Copy(name))
	if !ok {
		return nil, false
	}
	return v.(*Symbol), true
}
