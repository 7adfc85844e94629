package rvconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/rv/cmds"
	"github.com/reusee/rv/configs"
	"github.com/reusee/rv/rvlang"
	"github.com/reusee/rv/vars"
)

type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth", "expression nesting limit")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		vars.DerefOrZero(maxDepthFlag),
		configs.First[int](loader, "max_depth"),
		rvlang.DefaultMaxDepth,
	))
}

type Trace bool

var traceFlag = cmds.Switch("-trace", "log every executed instruction with the stack")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

type PrintCode bool

var printCodeFlag = cmds.Switch("-print-code", "disassemble compiled programs")

func (Module) PrintCode(
	loader configs.Loader,
) PrintCode {
	return PrintCode(*printCodeFlag || configs.First[bool](loader, "print_code"))
}

type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history-file", "REPL history file")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	var home string
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".rv_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFileFlag,
		configs.First[string](loader, "history_file"),
		home,
	))
}

type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		configs.First[string](loader, "prompt"),
		">>> ",
	))
}
