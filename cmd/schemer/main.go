package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/colvin/schemer/internal/cli"
	"github.com/colvin/schemer/pkg/schemer"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(schemer.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(schemer.ExitCodeForError(err))
	}
}
