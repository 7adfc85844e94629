package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/rv/cmds"
)

// Writer receives terminal log records. Results go to stdout, so logs default
// to stderr.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file", "append logs to a file instead of stderr")

func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return os.Stderr
	}
	return f
}
