package executor

import (
	"bytes"
	"os/exec"

	"github.com/pkg/errors"
)

// Kind classifies the outcome of an operation.
type Kind string

const (
	KindOK                  Kind = "ok"
	KindNoBackendResolved   Kind = "no_backend_resolved"
	KindBackendNotFound     Kind = "backend_not_found"
	KindEmptyCommand        Kind = "empty_command"
	KindSpawnFailure        Kind = "spawn_failure"
	KindNonZeroExit         Kind = "non_zero_exit"
	KindPartialCleanFailure Kind = "partial_clean_failure"
)

// Result is the uniform outcome record for every executing operation.
// Failures are reported here as data, never as returned errors.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode int
	Kind     Kind
}

// Failure builds a non-success Result carrying only a diagnostic message.
func Failure(kind Kind, msg string) Result {
	return Result{Stderr: msg, ExitCode: 1, Kind: kind}
}

// Runner executes a resolved argv as a child process rooted at a project
// directory. It is the only platform-specific surface in the engine;
// tests substitute a fake to keep everything else deterministic.
type Runner interface {
	Run(dir string, argv []string) Result
}

var _ Runner = ExecRunner{}

// ExecRunner spawns the child directly with an explicit argument vector.
// No shell is involved, so tokens containing whitespace reach the child
// as single arguments and caller-supplied tokens cannot inject extra
// shell syntax.
type ExecRunner struct{}

// Run blocks until the child exits. A process that could not be started
// at all (missing executable, permission denied) yields ExitCode -1 and
// KindSpawnFailure, distinct from a tool that ran and returned failure.
func (ExecRunner) Run(dir string, argv []string) Result {
	if len(argv) == 0 {
		return Failure(KindEmptyCommand, "empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		res.Success = true
		res.Kind = KindOK
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		res.Kind = KindNonZeroExit
		if res.Stderr == "" {
			res.Stderr = err.Error()
		}
		return res
	}

	res.ExitCode = -1
	res.Kind = KindSpawnFailure
	res.Stderr = errors.Wrapf(err, "could not start %q", argv[0]).Error()
	return res
}
