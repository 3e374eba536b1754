package ir

import "netuno/strintern"

// BasicBlock is a straight-line sequence of instructions ending in a
// terminator. Grounded on
// original_source/nil/include/netuno/nil/basic_block.h.
type BasicBlock struct {
	name         *strintern.String
	parent       *Function
	instructions []*Instruction
	terminator   *Instruction
	predecessors []*BasicBlock
}

// NewBasicBlock creates a detached block. Per spec.md §4.6, a name of
// exactly "entry" is used verbatim; any other name is suffixed by the
// context's per-prefix counter so that repeated calls with the same base
// name never collide.
func NewBasicBlock(ctx *Context, name string) *BasicBlock {
	var resolved string
	if name == "entry" {
		resolved = "entry"
	} else {
		resolved = ctx.FreshName(name)
	}
	return &BasicBlock{name: ctx.intern(resolved)}
}

// Name returns the block's interned name.
func (b *BasicBlock) Name() *strintern.String { return b.name }

// Parent returns the owning function, or nil before insertion.
func (b *BasicBlock) Parent() *Function { return b.parent }

// InsertBlockInto appends b to function's block list and sets its parent. A
// block may be inserted into at most one function.
func InsertBlockInto(b *BasicBlock, function *Function) {
	b.parent = function
	function.blocks = append(function.blocks, b)
}

// Count returns the number of instructions in the block.
func (b *BasicBlock) Count() int { return len(b.instructions) }

// InstructionAt returns the instruction at index.
func (b *BasicBlock) InstructionAt(index int) *Instruction { return b.instructions[index] }

// Terminator returns the block's terminator instruction, or nil if the
// block is not yet terminated.
func (b *BasicBlock) Terminator() *Instruction { return b.terminator }

// Predecessor returns the predecessor block at index.
func (b *BasicBlock) Predecessor(index int) *BasicBlock { return b.predecessors[index] }

// PredecessorCount returns the number of predecessor blocks.
func (b *BasicBlock) PredecessorCount() int { return len(b.predecessors) }

// SinglePredecessor returns the sole predecessor iff there is exactly
// one, else nil.
func (b *BasicBlock) SinglePredecessor() *BasicBlock {
	if len(b.predecessors) == 1 {
		return b.predecessors[0]
	}
	return nil
}

// UniquePredecessor returns a predecessor iff all predecessors are
// pointer-equal to each other (i.e. the block is reached from exactly
// one distinct block, possibly via multiple edges), else nil.
func (b *BasicBlock) UniquePredecessor() *BasicBlock {
	if len(b.predecessors) == 0 {
		return nil
	}
	first := b.predecessors[0]
	for _, p := range b.predecessors[1:] {
		if p != first {
			return nil
		}
	}
	return first
}
