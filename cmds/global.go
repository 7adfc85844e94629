package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor holds the commands packages define at init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the global commands in args and returns the positional words.
// It exits the process with status 64 on errors.
func Execute(args []string) []string {
	positional, err := GlobalExecutor.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
	return positional
}
