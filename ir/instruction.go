package ir

import "netuno/strintern"

// InstType groups instructions into the families the original's C API
// dispatches on (NIR_INST_TYPE). Most callers only need Opcode; InstType
// exists for the handful of operations (incoming-value management,
// successor rewriting) whose shape is family-specific rather than
// opcode-specific.
type InstType int

const (
	BinaryOperatorInst InstType = iota
	UnaryOperatorInst
	BranchInst
	CallInst
	CmpInst
	PhiNodeInst
	ReturnInst
	SelectInst
	StoreInst
)

// Instruction is a value produced by executing one IR operation. It
// carries its opcode, operands, and whatever family-specific state that
// opcode needs (branch successors, phi incoming edges, call arguments,
// ...). Grounded on
// original_source/nir/include/netuno/nir/instruction.h.
type Instruction struct {
	valueBase
	opcode   Opcode
	instType InstType
	parent   *BasicBlock
	operands []Value

	// branch
	successors []*BasicBlock

	// cmp
	predicate CmpPredicate

	// phi
	incomingValues []Value
	incomingBlocks []*BasicBlock

	// call
	calleeType *Type
	callee     Value
	args       []Value
}

// Opcode returns the instruction's operation.
func (i *Instruction) Opcode() Opcode { return i.opcode }

// InstType returns the instruction's family.
func (i *Instruction) InstType() InstType { return i.instType }

// Parent returns the basic block the instruction is inserted into, or
// nil if not yet inserted.
func (i *Instruction) Parent() *BasicBlock { return i.parent }

// Operands returns the instruction's operand list.
func (i *Instruction) Operands() []Value { return i.operands }

// IsCommutative reports whether this particular instruction commutes:
// associative opcodes always do; a cmp instruction does only for the
// eq/ne predicates (spec.md §4.5).
func (i *Instruction) IsCommutative() bool {
	if i.opcode == OpCmp {
		return i.predicate == ICmpEQ || i.predicate == ICmpNE || i.predicate == FCmpEQ || i.predicate == FCmpNE
	}
	return IsCommutative(i.opcode)
}

func newInstruction(ctx *Context, opcode Opcode, instType InstType, typ *Type, name string, operands ...Value) *Instruction {
	var interned *strintern.String
	if name != "" {
		interned = ctx.intern(name)
	}
	return &Instruction{
		valueBase: valueBase{kind: InstructionValueKind, name: interned, typ: typ},
		opcode:    opcode,
		instType:  instType,
		operands:  operands,
	}
}

// insertAtEnd appends inst to block, unless block is already terminated
// (spec.md §4.5: "once a block is terminated, further insertions are
// no-ops"). If inst is itself a terminator, it becomes the block's
// terminator; predecessor links are not touched here (the branch
// constructors record them).
func insertAtEnd(block *BasicBlock, inst *Instruction) {
	if block.terminator != nil {
		return
	}
	inst.parent = block
	block.instructions = append(block.instructions, inst)
	if IsTerminator(inst.opcode) {
		block.terminator = inst
	}
}

func addPredecessor(block, pred *BasicBlock) {
	block.predecessors = append(block.predecessors, pred)
}

// ---- binary ----

// CreateBinary constructs a binary instruction. Requires source1.Type()
// == source2.Type() and that type to match the opcode family (integer
// for integer ops, float/double for float ops); this is asserted by
// callers building well-typed IR, not re-validated here (spec.md §4.5).
func CreateBinary(ctx *Context, op Opcode, source1, source2 Value, name string, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, op, BinaryOperatorInst, source1.Type(), name, source1, source2)
	insertAtEnd(block, inst)
	return inst
}

// CreateNeg builds unary negation as sub(0, x).
func CreateNeg(ctx *Context, source Value, name string, block *BasicBlock) *Instruction {
	zero := zeroOperand(ctx, source.Type())
	op := OpSub
	if source.Type().IsFloat() || source.Type().IsDouble() {
		op = OpFSub
	}
	return CreateBinary(ctx, op, zero, source, name, block)
}

// CreateNot builds unary bitwise-not as xor(x, allOnes).
func CreateNot(ctx *Context, source Value, name string, block *BasicBlock) *Instruction {
	allOnes := GetIntAllOnes(ctx, source.Type())
	return CreateBinary(ctx, OpXor, source, allOnes, name, block)
}

func zeroOperand(ctx *Context, t *Type) Value {
	switch {
	case t.IsFloat():
		return ConstFloat(ctx, t, 0)
	case t.IsDouble():
		return ConstDouble(ctx, t, 0)
	default:
		return ConstInt(ctx, t, 0)
	}
}

// ---- branch ----

// CreateBranch1 constructs an unconditional branch to destBlock.
func CreateBranch1(ctx *Context, destBlock *BasicBlock, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpBr, BranchInst, ctx.GetVoidType(), "")
	inst.successors = []*BasicBlock{destBlock}
	insertAtEnd(block, inst)
	addPredecessor(destBlock, block)
	return inst
}

// CreateBranch2 constructs a conditional branch. cond must be of type i1.
func CreateBranch2(ctx *Context, ifTrue, ifFalse *BasicBlock, cond Value, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpBr, BranchInst, ctx.GetVoidType(), "", cond)
	inst.successors = []*BasicBlock{ifTrue, ifFalse}
	insertAtEnd(block, inst)
	addPredecessor(ifTrue, block)
	addPredecessor(ifFalse, block)
	return inst
}

// IsUnconditional reports whether branch has a single successor.
func (i *Instruction) IsUnconditional() bool {
	return i.instType == BranchInst && len(i.successors) == 1
}

// IsConditional reports whether branch has two successors.
func (i *Instruction) IsConditional() bool {
	return i.instType == BranchInst && len(i.successors) == 2
}

// Condition returns a conditional branch's condition operand, or nil.
func (i *Instruction) Condition() Value {
	if i.instType == BranchInst && len(i.operands) > 0 {
		return i.operands[0]
	}
	if i.instType == SelectInst {
		return i.operands[0]
	}
	return nil
}

// SetCondition replaces a branch or select instruction's condition.
func (i *Instruction) SetCondition(cond Value) {
	if len(i.operands) == 0 {
		i.operands = []Value{cond}
		return
	}
	i.operands[0] = cond
}

// SuccessorCount returns the number of successor blocks of a terminator.
func (i *Instruction) SuccessorCount() int { return len(i.successors) }

// Successor returns the successor block at index.
func (i *Instruction) Successor(index int) *BasicBlock { return i.successors[index] }

// SetSuccessor rewrites successor index to point at newTarget, fixing up
// both the old and new target's predecessor lists.
func (i *Instruction) SetSuccessor(index int, newTarget *BasicBlock) {
	old := i.successors[index]
	i.successors[index] = newTarget
	removePredecessor(old, i.parent)
	addPredecessor(newTarget, i.parent)
}

func removePredecessor(block, pred *BasicBlock) {
	for idx, p := range block.predecessors {
		if p == pred {
			block.predecessors = append(block.predecessors[:idx], block.predecessors[idx+1:]...)
			return
		}
	}
}

// ---- call ----

// CreateCall constructs a call instruction against a callee value whose
// type is assignable to functionType.
func CreateCall(ctx *Context, functionType *Type, callee Value, args []Value, name string, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpCall, CallInst, functionType.FunctionResult(), name, args...)
	inst.calleeType = functionType
	inst.callee = callee
	inst.args = append([]Value(nil), args...)
	insertAtEnd(block, inst)
	return inst
}

func (i *Instruction) CallFunctionType() *Type { return i.calleeType }
func (i *Instruction) Callee() Value           { return i.callee }

func (i *Instruction) SetCallee(functionType *Type, callee Value) {
	i.calleeType = functionType
	i.callee = callee
}

func (i *Instruction) ArgCount() int        { return len(i.args) }
func (i *Instruction) Arg(index int) Value  { return i.args[index] }
func (i *Instruction) SetArg(index int, v Value) { i.args[index] = v }

// ---- compare ----

// CreateCmp constructs a comparison instruction with the given predicate.
func CreateCmp(ctx *Context, predicate CmpPredicate, source1, source2 Value, name string, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpCmp, CmpInst, ctx.GetInt1Type(), name, source1, source2)
	inst.predicate = predicate
	insertAtEnd(block, inst)
	return inst
}

func (i *Instruction) Predicate() CmpPredicate { return i.predicate }

func (i *Instruction) InversePredicate() CmpPredicate { return InversePredicate(i.predicate) }

// ---- phi ----

// CreatePhi constructs an empty phi node of the given value type.
func CreatePhi(ctx *Context, valueType *Type, name string, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpPhi, PhiNodeInst, valueType, name)
	insertAtEnd(block, inst)
	return inst
}

func (i *Instruction) NumIncomingValues() int { return len(i.incomingValues) }
func (i *Instruction) IncomingValue(idx int) Value { return i.incomingValues[idx] }
func (i *Instruction) SetIncomingValue(idx int, v Value) { i.incomingValues[idx] = v }
func (i *Instruction) IncomingBlock(idx int) *BasicBlock { return i.incomingBlocks[idx] }
func (i *Instruction) SetIncomingBlock(idx int, b *BasicBlock) { i.incomingBlocks[idx] = b }

// AddIncoming appends an incoming (value, block) edge.
func (i *Instruction) AddIncoming(value Value, block *BasicBlock) {
	i.incomingValues = append(i.incomingValues, value)
	i.incomingBlocks = append(i.incomingBlocks, block)
}

// RemoveIncomingValue removes the incoming edge at idx and returns its
// value. Only the edge is removed: a phi left with no incoming edges stays
// in its block, and its uses are not replaced with Undef.
func (i *Instruction) RemoveIncomingValue(idx int) Value {
	removed := i.incomingValues[idx]
	i.incomingValues = append(i.incomingValues[:idx], i.incomingValues[idx+1:]...)
	i.incomingBlocks = append(i.incomingBlocks[:idx], i.incomingBlocks[idx+1:]...)
	return removed
}

// RemoveIncomingBlock removes the incoming edge for block, if any.
func (i *Instruction) RemoveIncomingBlock(block *BasicBlock) Value {
	for idx, b := range i.incomingBlocks {
		if b == block {
			return i.RemoveIncomingValue(idx)
		}
	}
	return nil
}

// IncomingIndexForBlock returns the incoming-edge index for block, or -1.
func (i *Instruction) IncomingIndexForBlock(block *BasicBlock) int {
	for idx, b := range i.incomingBlocks {
		if b == block {
			return idx
		}
	}
	return -1
}

// IncomingValueForBlock returns the incoming value for block, or nil.
func (i *Instruction) IncomingValueForBlock(block *BasicBlock) Value {
	idx := i.IncomingIndexForBlock(block)
	if idx < 0 {
		return nil
	}
	return i.incomingValues[idx]
}

// PhiHasConstantValue returns the single value all incoming edges merge
// to, ignoring Undef, or nil if they disagree.
func (i *Instruction) PhiHasConstantValue() Value {
	var found Value
	for _, v := range i.incomingValues {
		if v == Undef {
			continue
		}
		if found == nil {
			found = v
		} else if found != v {
			return nil
		}
	}
	return found
}

// PhiHasConstantOrUndefValue reports whether every incoming edge agrees,
// treating Undef as compatible with any value.
func (i *Instruction) PhiHasConstantOrUndefValue() bool {
	var found Value
	for _, v := range i.incomingValues {
		if v == Undef {
			continue
		}
		if found == nil {
			found = v
		} else if found != v {
			return false
		}
	}
	return true
}

// PhiIsComplete reports whether the phi has an incoming edge for every
// predecessor of its parent block.
func (i *Instruction) PhiIsComplete() bool {
	for _, pred := range i.parent.predecessors {
		if i.IncomingIndexForBlock(pred) < 0 {
			return false
		}
	}
	return true
}

// ---- return ----

// CreateReturn constructs a return instruction. returnValue must be nil
// exactly when the enclosing function returns void.
func CreateReturn(ctx *Context, returnValue Value, block *BasicBlock) *Instruction {
	var operands []Value
	if returnValue != nil {
		operands = []Value{returnValue}
	}
	inst := newInstruction(ctx, OpRet, ReturnInst, ctx.GetVoidType(), "", operands...)
	insertAtEnd(block, inst)
	return inst
}

// ReturnValue returns the returned value, or nil for a void return.
func (i *Instruction) ReturnValue() Value {
	if len(i.operands) == 0 {
		return nil
	}
	return i.operands[0]
}

// ---- select ----

// CreateSelect constructs a select instruction. cond must be i1 and t/f
// must share a type.
func CreateSelect(ctx *Context, cond, whenTrue, whenFalse Value, name string, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpSelect, SelectInst, whenTrue.Type(), name, cond, whenTrue, whenFalse)
	insertAtEnd(block, inst)
	return inst
}

func (i *Instruction) TrueValue() Value  { return i.operands[1] }
func (i *Instruction) FalseValue() Value { return i.operands[2] }
func (i *Instruction) SetTrueValue(v Value)  { i.operands[1] = v }
func (i *Instruction) SetFalseValue(v Value) { i.operands[2] = v }

// SwapValues exchanges a select instruction's true/false operands and
// inverts the feeding cmp's predicate when the condition is itself a cmp
// instruction produced by this package (a trivial, always-safe rewrite).
func (i *Instruction) SwapValues() {
	i.operands[1], i.operands[2] = i.operands[2], i.operands[1]
	if cmp, ok := i.operands[0].(*Instruction); ok && cmp.opcode == OpCmp {
		cmp.predicate = InversePredicate(cmp.predicate)
	}
}

// AreSelectInvalidOperands returns a diagnostic string if the operands
// are unsuitable for a select instruction, or "" if they are fine.
func AreSelectInvalidOperands(cond, trueValue, falseValue Value) string {
	if !cond.Type().IsIntegerN(1) {
		return "select condition must be i1"
	}
	if trueValue.Type() != falseValue.Type() {
		return "select true/false values must share a type"
	}
	return ""
}

// ---- store ----

// CreateStore constructs a store instruction. pointer's type must be a
// pointer type.
func CreateStore(ctx *Context, value, pointer Value, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, OpStore, StoreInst, ctx.GetVoidType(), "", value, pointer)
	insertAtEnd(block, inst)
	return inst
}

func (i *Instruction) PointerOperand() Value     { return i.operands[1] }
func (i *Instruction) PointerOperandType() *Type { return i.operands[1].Type() }
func (i *Instruction) ValueOperand() Value       { return i.operands[0] }

// ---- unary ----

// CreateUnaryInst constructs a unary instruction (cast, fneg, alloca, or
// load) producing resultType.
func CreateUnaryInst(ctx *Context, op Opcode, resultType *Type, value Value, name string, block *BasicBlock) *Instruction {
	inst := newInstruction(ctx, op, UnaryOperatorInst, resultType, name, value)
	insertAtEnd(block, inst)
	return inst
}

func (i *Instruction) UnaryValueOperand() Value { return i.operands[0] }
func (i *Instruction) UnaryTypeOperand() *Type  { return i.typ }
