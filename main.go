// Command netuno is a small demo launcher for the netuno VM: it assembles
// one of a handful of built-in sample programs via the ir/vm Go API,
// resolves its "main" entry delegate, runs it, and reports the same exit
// codes a full source-level launcher would (spec.md §6). It does not
// compile netuno source — the ntc front end is out of scope.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"

	"github.com/urfave/cli"

	"netuno/rt"
	"netuno/vm"
)

// Exit codes reproduced for test compatibility with the original launcher
// (spec.md §6).
const (
	exitOK             = 0
	exitBadArgument    = 2
	exitNoEntryPoint   = -1234
	exitCompileFailure = -4321
)

func exitRuntimeError() int { return math.MaxInt32 }

func main() {
	app := cli.NewApp()
	app.Name = "netuno"
	app.Usage = "run a built-in netuno demo program"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "program, p",
			Value: "add",
			Usage: "demo program to run: add, div, concat, native",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "trace every executed instruction",
		},
		cli.BoolFlag{
			Name:  "interactive, i",
			Usage: "step through the program in an interactive console",
		},
	}
	app.Action = func(c *cli.Context) error {
		os.Exit(runDemo(c.String("program"), c.Bool("debug"), c.Bool("interactive")))
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitBadArgument)
	}
}

// runDemo builds, runs, and reports on program, returning the process
// exit code it should produce.
func runDemo(program string, debugTrace, interactive bool) (code int) {
	if !knownDemo(program) {
		fmt.Fprintf(os.Stderr, "netuno: unknown or missing program %q (want add, div, concat, native)\n", program)
		return exitBadArgument
	}

	asm, entry, assembled := func() (asm *vm.Assembly, entry *vm.Delegate, assembled bool) {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "netuno: assembly failed: %v\n", r)
				assembled = false
			}
		}()
		a, d, _ := buildDemo(program)
		return a, d, true
	}()
	if !assembled {
		return exitCompileFailure
	}
	if entry == nil || asm == nil {
		fmt.Fprintln(os.Stderr, "netuno: no entry point")
		return exitNoEntryPoint
	}

	// Bytecode is allocated up front; disable GC for the run itself so the
	// interpreter's tight fetch-decode loop isn't slowed by collection
	// pauses (mirrors teacher vm/run.go's RunProgram).
	gcPercent := debug.SetGCPercent(-1)
	defer debug.SetGCPercent(gcPercent)

	machine := vm.NewVM(debugTrace)
	var result vm.Result
	if interactive {
		result = machine.RunDebug(asm, entry)
	} else {
		result = machine.Run(asm, entry)
	}

	switch result {
	case vm.ResultOK:
		return reportSuccess(program, machine)
	case vm.ResultStackOverflow, vm.ResultRuntimeError:
		fmt.Fprintf(os.Stderr, "netuno: %s\n", result)
		return exitRuntimeError()
	case vm.ResultCompileError:
		fmt.Fprintln(os.Stderr, "netuno: compile failure")
		return exitCompileFailure
	default:
		return exitRuntimeError()
	}
}

// reportSuccess prints whatever runDemo's program left on the stack (a
// string for concat, an i32 otherwise) and returns exitOK; the popped i32
// is printed, not used as the exit code.
func reportSuccess(program string, machine *vm.VM) int {
	if program == "concat" {
		ref, ok := machine.PopRef()
		if !ok {
			fmt.Fprintln(os.Stderr, "netuno: expected a reference result")
			return exitRuntimeError()
		}
		s := rt.AsString(ref)
		fmt.Println(s.Value.Chars())
		return exitOK
	}

	v, ok := machine.PopI32()
	if !ok {
		fmt.Fprintln(os.Stderr, "netuno: expected an i32 result")
		return exitRuntimeError()
	}
	fmt.Println(v)
	return exitOK
}
