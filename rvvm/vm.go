package rvvm

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/reusee/rv/rvcode"
	"github.com/reusee/rv/rvlang"
)

const StackMax = 256

type Result uint8

const (
	ResultOK Result = iota
	ResultCompileError
	ResultRuntimeError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultCompileError:
		return "compile error"
	case ResultRuntimeError:
		return "runtime error"
	}
	return fmt.Sprintf("Result(%d)", uint8(r))
}

type Options struct {
	Stdout    io.Writer // if nil, default to os.Stdout
	Stderr    io.Writer // if nil, default to os.Stderr
	Logger    *slog.Logger
	MaxDepth  int  // compiler nesting limit, rvlang.DefaultMaxDepth if zero
	Trace     bool // log every instruction with the stack
	PrintCode bool // disassemble compiled programs to Stdout
}

// VM executes programs. A VM runs one program at a time; separate VMs are
// independent.
type VM struct {
	program *rvcode.Program
	ip      int
	stack   [StackMax]rvcode.Value
	sp      int

	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
	maxDepth  int
	trace     bool
	printCode bool
}

func New(options *Options) *VM {
	vm := &VM{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if options != nil {
		if options.Stdout != nil {
			vm.stdout = options.Stdout
		}
		if options.Stderr != nil {
			vm.stderr = options.Stderr
		}
		vm.logger = options.Logger
		vm.maxDepth = options.MaxDepth
		vm.trace = options.Trace
		vm.printCode = options.PrintCode
	}
	if vm.logger == nil {
		vm.logger = slog.New(slog.DiscardHandler)
	}
	return vm
}

func (v *VM) compileOptions(diagnostics io.Writer) []rvlang.Option {
	options := []rvlang.Option{
		rvlang.WithDiagnostics(diagnostics),
		rvlang.WithLogger(v.logger),
	}
	if v.maxDepth > 0 {
		options = append(options, rvlang.WithMaxDepth(v.maxDepth))
	}
	if v.printCode {
		options = append(options, rvlang.WithCodeDump(v.stdout))
	}
	return options
}

// Compile compiles src into a fresh program, reporting errors to stderr.
func (v *VM) Compile(src string) (*rvcode.Program, error) {
	program := rvcode.NewProgram()
	if err := rvlang.Compile(src, program, v.compileOptions(v.stderr)...); err != nil {
		return nil, err
	}
	return program, nil
}

// Interpret compiles and runs src, printing the result to stdout.
func (v *VM) Interpret(src string) Result {
	program, err := v.Compile(src)
	if err != nil {
		return ResultCompileError
	}
	return v.InterpretProgram(program)
}

// InterpretProgram runs an already compiled program, printing the result to
// stdout.
func (v *VM) InterpretProgram(program *rvcode.Program) Result {
	value, err := v.Run(program)
	if err != nil {
		fmt.Fprintln(v.stderr, err)
		return ResultRuntimeError
	}
	fmt.Fprintln(v.stdout, value)
	return ResultOK
}

// Eval compiles and runs src, returning the result.
func (v *VM) Eval(src string) (rvcode.Value, error) {
	program := rvcode.NewProgram()
	if err := rvlang.Compile(src, program, v.compileOptions(nil)...); err != nil {
		return rvcode.None, err
	}
	return v.Run(program)
}

func (v *VM) resetStack() {
	clear(v.stack[:v.sp])
	v.sp = 0
}

func (v *VM) push(val rvcode.Value) error {
	if v.sp >= StackMax {
		return ErrStackOverflow
	}
	v.stack[v.sp] = val
	v.sp++
	return nil
}

func (v *VM) pop() (rvcode.Value, error) {
	if v.sp <= 0 {
		return rvcode.None, ErrStackUnderflow
	}
	v.sp--
	return v.stack[v.sp], nil
}

func (v *VM) peek(distance int) (rvcode.Value, error) {
	if distance >= v.sp {
		return rvcode.None, ErrStackUnderflow
	}
	return v.stack[v.sp-1-distance], nil
}

// Stack returns a copy of the live stack slots, bottom first.
func (v *VM) Stack() []rvcode.Value {
	ret := make([]rvcode.Value, v.sp)
	copy(ret, v.stack[:v.sp])
	return ret
}

func (v *VM) stackString() string {
	var b strings.Builder
	for _, val := range v.stack[:v.sp] {
		b.WriteString("[ ")
		b.WriteString(val.String())
		b.WriteString(" ]")
	}
	return b.String()
}
