package vm

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// RunDebug runs entryPoint one instruction at a time under an interactive
// console, grounded on teacher vm/run.go's RunProgramDebugMode: the same
// n/next, r/run, b/break <offset> command set, but reporting netuno's own
// state (stack depth, call depth, next opcode) instead of GVM's registers.
func (vm *VM) RunDebug(assembly *Assembly, entryPoint *Delegate) Result {
	vm.assembly = assembly
	vm.pc = pcHalt
	vm.module = nil
	vm.stackOverflow = false
	vm.errcode = nil
	vm.debug = true

	fmt.Println("Commands:\n\tn or next: execute next instruction\n\tr or run: run program\n\tb or break <line>: toggle breakpoint at instruction offset")

	if !vm.invoke(entryPoint) {
		return vm.resultFromError()
	}

	vm.printState()

	reader := bufio.NewReader(os.Stdin)
	waitForInput := true
	breakAt := make(map[int]struct{})
	lastBreak := -1

	for {
		if vm.module == nil && vm.pc == pcHalt {
			return ResultOK
		}

		line := ""
		if waitForInput {
			fmt.Print("\n->")
			line, _ = reader.ReadString('\n')
			line = strings.ToLower(strings.TrimSpace(line))
		} else {
			instrStart := vm.pc
			if _, hit := breakAt[instrStart]; hit && lastBreak != instrStart {
				color.Yellow("breakpoint at %d", instrStart)
				vm.printState()
				waitForInput = true
				lastBreak = instrStart
				continue
			}
		}

		switch {
		case !waitForInput || line == "n" || line == "next":
			lastBreak = -1
			if !vm.stepOne() {
				res := vm.resultFromError()
				if res != ResultOK {
					color.Red("%v", vm.errcode)
				}
				return res
			}
			if waitForInput {
				vm.printState()
			}
		case line == "r" || line == "run":
			waitForInput = false
		case strings.HasPrefix(line, "b"):
			arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "break"), "b"))
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("unknown instruction offset:", arg)
				continue
			}
			if _, ok := breakAt[n]; ok {
				delete(breakAt, n)
			} else {
				breakAt[n] = struct{}{}
			}
		}
	}
}

// stepOne fetches and executes exactly one instruction, the single-step
// primitive RunDebug drives; Run's loop is the all-at-once equivalent.
func (vm *VM) stepOne() bool {
	op := Opcode(vm.module.code.Bytes()[vm.pc])
	instrStart := vm.pc
	vm.pc++
	return vm.step(op, instrStart)
}

func (vm *VM) printState() {
	if vm.module == nil {
		color.Cyan("halted")
		return
	}
	op := Opcode(vm.module.code.Bytes()[vm.pc])
	color.Cyan("pc=%d op=%s stack_depth=%d call_depth=%d", vm.pc, op, vm.values.top, vm.calls.top)
}
