package logs

import (
	"log/slog"

	"github.com/reusee/rv/cmds"
)

// the REPL prints results on the same terminal, so only warnings show by default
var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	for name, l := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+name))
	}
}

func Level() slog.Level {
	return level.Level()
}

// SetLevel changes the level of every logger built by this package.
func SetLevel(l slog.Level) {
	level.Set(l)
}
