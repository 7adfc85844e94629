package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/rv/cmds"
	"github.com/reusee/rv/debugs"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/modes"
	"github.com/reusee/rv/rvcode"
	"github.com/reusee/rv/rvconfigs"
	"github.com/reusee/rv/rvvm"
)

const (
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
	exitIO      = 74
)

const imageExt = ".rvc"

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var outputPath string

func init() {
	cmds.Define("-o", cmds.Func(func(path string) {
		outputPath = path
	}).Args("path").Desc("write the compiled image instead of running it"))
}

func main() {
	args := cmds.Execute(os.Args[1:])
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: rv [options] [path]")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(exitUsage)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	code := 0
	scope.Call(func(
		trace rvconfigs.Trace,
	) {
		// trace records are logged at info
		if trace && logs.Level() > slog.LevelInfo {
			logs.SetLevel(slog.LevelInfo)
		}
	})

	if len(args) == 0 {
		scope.Call(runREPL)
	} else {
		scope.Call(func(run RunFile) {
			code = run(context.Background(), args[0])
		})
	}
	os.Exit(code)
}

// RunFile runs a source file or a compiled image and returns the exit code.
// With -o the program is written as an image instead.
type RunFile func(ctx context.Context, path string) int

func (Module) RunFile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	newVM rvvm.NewVM,
	interpretProgram rvvm.InterpretProgram,
	tapEnabled debugs.TapEnabled,
	tap debugs.Tap,
) RunFile {
	return func(ctx context.Context, path string) int {
		ctx, _ = newSpan(ctx, "")
		program, code := loadProgram(path, newVM)
		if program == nil {
			return code
		}

		if tapEnabled {
			tap(ctx, filepath.Base(path), program)
		}

		if outputPath != "" {
			if err := writeImage(outputPath, program); err != nil {
				err = logs.WrapSpan(ctx, err)
				logger.ErrorContext(ctx, "write image",
					"path", outputPath,
					"error", err,
				)
				fmt.Fprintln(os.Stderr, err)
				return exitIO
			}
			return 0
		}

		vm := newVM(os.Stdout, os.Stderr)
		switch interpretProgram(ctx, vm, program) {
		case rvvm.ResultRuntimeError:
			return exitRuntime
		}
		return 0
	}
}

func loadProgram(path string, newVM rvvm.NewVM) (*rvcode.Program, int) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, exitIO
	}
	defer f.Close()

	if strings.HasSuffix(path, imageExt) {
		program, err := rvcode.DecodeImage(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return nil, exitIO
		}
		return program, 0
	}

	var b bytes.Buffer
	if _, err := b.ReadFrom(f); err != nil {
		fmt.Fprintln(os.Stderr, wrap(err))
		return nil, exitIO
	}
	program, err := newVM(os.Stdout, os.Stderr).Compile(b.String())
	if err != nil {
		return nil, exitCompile
	}
	return program, 0
}

func writeImage(path string, program *rvcode.Program) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = wrap(e)
		}
	}()
	if err := rvcode.EncodeImage(f, program); err != nil {
		return wrap(err)
	}
	return nil
}
