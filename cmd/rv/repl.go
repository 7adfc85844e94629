package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/rvconfigs"
	"github.com/reusee/rv/rvvm"
)

func runREPL(
	logger logs.Logger,
	newVM rvvm.NewVM,
	interpret rvvm.Interpret,
	historyFile rvconfigs.HistoryFile,
	prompt rvconfigs.Prompt,
) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      string(prompt),
		HistoryFile: string(historyFile),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitIO)
	}
	defer rl.Close()

	fmt.Printf("RV (%s)\n", time.Now().Format("2006-1-2"))
	fmt.Println("Type 'exit' or press CTRL + C to exit")

	ctx := context.Background()
	vm := newVM(os.Stdout, os.Stderr)
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		result := interpret(ctx, vm, line)
		if result != rvvm.ResultOK {
			logger.InfoContext(ctx, "repl",
				"result", result,
			)
		}
	}
}
