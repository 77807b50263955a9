package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and maps its outcome onto a process exit code.
// A failed backend operation exits with the child's own exit code.
func run(args []string) int {
	a := newApp()
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
