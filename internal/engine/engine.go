// Package engine is the single entry point for dependency-management
// operations. It resolves a backend for the current project directory,
// builds the concrete command line from the backend's templates, and
// hands it to the process executor.
package engine

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"uvstart/internal/backend"
	"uvstart/internal/executor"
)

// Engine orchestrates registry lookup, detection, command resolution
// and execution. The project directory is the only mutable field; no
// resolved backend is cached, so each call observes directory changes
// made between calls.
type Engine struct {
	registry   *backend.Registry
	runner     executor.Runner
	projectDir string
}

// New wires an engine from its collaborators. Pass the registry in
// explicitly; there is no package-level default.
func New(reg *backend.Registry, runner executor.Runner, projectDir string) *Engine {
	return &Engine{registry: reg, runner: runner, projectDir: projectDir}
}

// SetProjectDir changes the directory subsequent operations run in.
func (e *Engine) SetProjectDir(dir string) {
	e.projectDir = dir
}

// ProjectDir returns the current project directory.
func (e *Engine) ProjectDir() string {
	return e.projectDir
}

// Detect returns the backend name chosen for the project directory, or
// "" when no signal matches.
func (e *Engine) Detect() string {
	return backend.Detect(e.registry, e.projectDir)
}

// Backends lists registered backend names in sorted order.
func (e *Engine) Backends() []string {
	return e.registry.Names()
}

// Add installs a package, as a dev dependency when dev is set.
func (e *Engine) Add(pkg string, dev bool, backendName string) executor.Result {
	return e.execute("add", backendName, func(def backend.Definition) []string {
		if dev {
			return def.AddDevCmd
		}
		return def.AddCmd
	}, pkg)
}

// Remove uninstalls a package.
func (e *Engine) Remove(pkg string, backendName string) executor.Result {
	return e.execute("remove", backendName, func(def backend.Definition) []string {
		return def.RemoveCmd
	}, pkg)
}

// Sync installs the project's declared dependencies.
func (e *Engine) Sync(dev bool, backendName string) executor.Result {
	return e.execute("sync", backendName, func(def backend.Definition) []string {
		if dev {
			return def.SyncDevCmd
		}
		return def.SyncCmd
	})
}

// Run executes an arbitrary subcommand through the backend. The caller
// argv is appended verbatim; nothing is reinterpreted or stripped.
func (e *Engine) Run(argv []string, backendName string) executor.Result {
	return e.execute("run", backendName, func(def backend.Definition) []string {
		return def.RunCmd
	}, argv...)
}

// ListPackages lists installed packages.
func (e *Engine) ListPackages(backendName string) executor.Result {
	return e.execute("list", backendName, func(def backend.Definition) []string {
		return def.ListCmd
	})
}

// Version reports the backend tool's own version.
func (e *Engine) Version(backendName string) executor.Result {
	return e.execute("version", backendName, func(def backend.Definition) []string {
		return def.VersionCmd
	})
}

// Clean removes the backend's generated files under the project
// directory without spawning any process. A target that does not exist
// is a no-op; a removal failure is recorded and the sweep continues.
// Success means every existing target was removed.
func (e *Engine) Clean(backendName string) executor.Result {
	def, failure, ok := e.resolve(backendName)
	if !ok {
		return failure
	}

	var out strings.Builder
	clean := true
	for _, rel := range def.CleanFiles {
		target := filepath.Join(e.projectDir, rel)
		if _, err := os.Stat(target); err != nil {
			continue
		}
		if err := os.RemoveAll(target); err != nil {
			fmt.Fprintf(&out, "failed to remove %s: %v\n", rel, err)
			clean = false
			continue
		}
		fmt.Fprintf(&out, "removed %s\n", rel)
	}

	if !clean {
		slog.Warn("clean left targets behind", "backend", def.Name)
		return executor.Result{
			Stdout:   out.String(),
			Stderr:   "one or more clean targets could not be removed",
			ExitCode: 1,
			Kind:     executor.KindPartialCleanFailure,
		}
	}
	return executor.Result{Success: true, Stdout: out.String(), Kind: executor.KindOK}
}

// InstallHint returns the informational install command for a backend,
// or "" for an unknown name.
func (e *Engine) InstallHint(backendName string) string {
	def, ok := e.registry.Get(backendName)
	if !ok {
		return ""
	}
	return def.InstallHint
}

// CleanFiles returns the relative paths Clean would consider for a
// backend, in definition order. Unknown names yield nil.
func (e *Engine) CleanFiles(backendName string) []string {
	def, ok := e.registry.Get(backendName)
	if !ok {
		return nil
	}
	return def.CleanFiles
}

// execute resolves the backend, builds the argv from the operation's
// template plus caller args, and runs it.
func (e *Engine) execute(op, backendName string, pick func(backend.Definition) []string, args ...string) executor.Result {
	def, failure, ok := e.resolve(backendName)
	if !ok {
		return failure
	}

	tmpl := pick(def)
	if len(tmpl) == 0 {
		return executor.Failure(executor.KindEmptyCommand,
			fmt.Sprintf("backend %q has no command configured for %s", def.Name, op))
	}

	argv := make([]string, 0, len(tmpl)+len(args))
	argv = append(argv, tmpl...)
	argv = append(argv, args...)

	slog.Debug("executing", "op", op, "backend", def.Name, "argv", argv, "dir", e.projectDir)
	return e.runner.Run(e.projectDir, argv)
}

// resolve picks the backend definition for an operation: an explicit
// name is used verbatim without re-detection, otherwise detection runs.
// The failure Result is only meaningful when ok is false.
func (e *Engine) resolve(backendName string) (backend.Definition, executor.Result, bool) {
	name := backendName
	if name == "" {
		name = e.Detect()
	}
	if name == "" {
		return backend.Definition{}, executor.Failure(executor.KindNoBackendResolved,
			"no backend specified and none detected in "+e.projectDir), false
	}

	def, ok := e.registry.Get(name)
	if !ok {
		return backend.Definition{}, executor.Failure(executor.KindBackendNotFound,
			"backend not found: "+name), false
	}
	return def, executor.Result{}, true
}
