package rvvm

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/rvcode"
	"github.com/reusee/rv/rvconfigs"
)

type Module struct {
	dscope.Module
}

// NewVM builds a VM with the configured logger and settings.
type NewVM func(stdout, stderr io.Writer) *VM

func (Module) NewVM(
	logger logs.Logger,
	maxDepth rvconfigs.MaxDepth,
	trace rvconfigs.Trace,
	printCode rvconfigs.PrintCode,
) NewVM {
	return func(stdout, stderr io.Writer) *VM {
		return New(&Options{
			Stdout:    stdout,
			Stderr:    stderr,
			Logger:    logger,
			MaxDepth:  int(maxDepth),
			Trace:     bool(trace),
			PrintCode: bool(printCode),
		})
	}
}

// Interpret runs src on vm in a new span.
type Interpret func(ctx context.Context, vm *VM, src string) Result

func (Module) Interpret(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Interpret {
	return func(ctx context.Context, vm *VM, src string) Result {
		ctx, _ = newSpan(ctx, "")
		result := vm.Interpret(src)
		logger.DebugContext(ctx, "interpret",
			"source", src,
			"result", result,
		)
		return result
	}
}

// InterpretProgram runs a compiled program on vm in a new span.
type InterpretProgram func(ctx context.Context, vm *VM, program *rvcode.Program) Result

func (Module) InterpretProgram(
	logger logs.Logger,
	newSpan logs.NewSpan,
) InterpretProgram {
	return func(ctx context.Context, vm *VM, program *rvcode.Program) Result {
		ctx, _ = newSpan(ctx, "")
		result := vm.InterpretProgram(program)
		logger.DebugContext(ctx, "interpret program",
			"bytes", program.Len(),
			"result", result,
		)
		return result
	}
}
