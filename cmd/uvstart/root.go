package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uvstart/internal/backend"
	"uvstart/internal/config"
	"uvstart/internal/engine"
	"uvstart/internal/executor"
	"uvstart/internal/history"
)

// exitError carries a child process exit code up to main.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// app holds the wired collaborators behind the command tree. env,
// runner and the writers are fields so tests can substitute them.
type app struct {
	env    map[string]string
	runner executor.Runner
	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	registry *backend.Registry
	engine   *engine.Engine
	store    *history.Store
}

func newApp() *app {
	return &app{
		env: map[string]string{
			"UVSTART_PROJECT_DIR": os.Getenv("UVSTART_PROJECT_DIR"),
			"UVSTART_BACKEND":     os.Getenv("UVSTART_BACKEND"),
			"UVSTART_CONFIG":      os.Getenv("UVSTART_CONFIG"),
			"UVSTART_HISTORY_DIR": os.Getenv("UVSTART_HISTORY_DIR"),
		},
		runner: executor.ExecRunner{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// init wires registry, engine and history from config. Called from the
// root command's PersistentPreRunE so the --path flag is already set.
func (a *app) init(pathFlag string) error {
	cfg, err := config.Load(a.env)
	if err != nil {
		return err
	}
	if pathFlag != "" {
		cfg.ProjectDir = pathFlag
	}

	reg := backend.NewRegistry()
	if cfg.BackendsFile != "" {
		if err := config.RegisterBackends(cfg.BackendsFile, reg); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.registry = reg
	a.engine = engine.New(reg, a.runner, cfg.ProjectDir)

	if cfg.HistoryDir != "" {
		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			return err
		}
		a.store = store
	}
	return nil
}

func (a *app) rootCmd() *cobra.Command {
	var path string

	root := &cobra.Command{
		Use:           "uvstart",
		Short:         "Unified front-end for Python package managers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(path)
		},
	}
	root.PersistentFlags().StringVar(&path, "path", "", "project directory (default: current directory)")

	root.AddCommand(
		a.addCmd(),
		a.removeCmd(),
		a.syncCmd(),
		a.runCmd(),
		a.listCmd(),
		a.versionCmd(),
		a.cleanCmd(),
		a.detectCmd(),
		a.backendsCmd(),
		a.installCmd(),
		a.cleanFilesCmd(),
		a.doctorCmd(),
		a.historyCmd(),
	)
	return root
}

// backendName applies the configured default when no flag was given.
// Detection only runs when both are empty.
func (a *app) backendName(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.DefaultBackend
}

// finish records the operation, relays the captured output and turns a
// failed result into the process exit code.
func (a *app) finish(op, backendName string, args []string, res executor.Result) error {
	if a.store != nil {
		resolved := backendName
		if resolved == "" {
			resolved = a.engine.Detect()
		}
		_, err := a.store.Append(history.Record{
			Backend:   resolved,
			Operation: op,
			Argv:      args,
			ExitCode:  res.ExitCode,
			Success:   res.Success,
		})
		if err != nil {
			slog.Warn("recording history failed", "error", err)
		}
	}

	if res.Stdout != "" {
		fmt.Fprint(a.stdout, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(a.stderr, res.Stderr)
		if !strings.HasSuffix(res.Stderr, "\n") {
			fmt.Fprintln(a.stderr)
		}
	}

	if !res.Success {
		code := res.ExitCode
		if code == 0 {
			code = 1
		}
		return &exitError{code: code}
	}
	return nil
}
