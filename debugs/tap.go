package debugs

import (
	"context"
	"strings"

	"github.com/reusee/rv/cmds"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/rvcode"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var tapFlag = cmds.Switch("-tap", "inspect the compiled program in a starlark REPL")

// TapEnabled reports whether compiled programs should be tapped.
type TapEnabled bool

func (Module) TapEnabled() TapEnabled {
	return TapEnabled(*tapFlag)
}

// Tap opens a starlark REPL on stdin for inspecting program.
// The globals code, lines, consts and program are bound, and disasm()
// returns the listing.
type Tap func(ctx context.Context, what string, program *rvcode.Program)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, program *rvcode.Program) {
		logger.InfoContext(ctx, "tap: "+what,
			"bytes", program.Len(),
			"consts", len(program.Consts),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(what, program))
	}
}

func Globals(what string, program *rvcode.Program) starlark.StringDict {
	return starlark.StringDict{
		"program": ToStarlark(program),
		"code":    ToStarlark(program.Code),
		"lines":   ToStarlark(program.Lines),
		"consts":  ToStarlark(program.Consts),
		"disasm": starlarkutil.MakeFunc("disasm", func() string {
			var b strings.Builder
			rvcode.Disassemble(&b, program, what)
			return b.String()
		}),
	}
}
