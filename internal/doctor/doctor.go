// Package doctor reports whether the registered backend tools are
// actually installed on this machine.
package doctor

import (
	"os/exec"
	"strings"

	"uvstart/internal/backend"
	"uvstart/internal/executor"
)

// Status is the health check result for one backend.
type Status struct {
	Backend     string
	Executable  string
	Available   bool
	Version     string
	InstallHint string
}

// Report aggregates the per-backend statuses.
type Report struct {
	Statuses  []Status
	Available int
	Missing   int
}

// Doctor probes backend availability. LookPath and Runner are fields
// so tests can substitute them.
type Doctor struct {
	Registry *backend.Registry
	Runner   executor.Runner
	LookPath func(file string) (string, error)
}

// New returns a doctor probing the real PATH.
func New(reg *backend.Registry, runner executor.Runner) *Doctor {
	return &Doctor{Registry: reg, Runner: runner, LookPath: exec.LookPath}
}

// Check probes every registered backend in name order. A backend is
// available when the first token of its version template resolves on
// PATH; for available tools the version command is run in dir and its
// trimmed stdout recorded. Missing tools carry the install hint.
func (d *Doctor) Check(dir string) Report {
	var report Report
	for _, name := range d.Registry.Names() {
		def, _ := d.Registry.Get(name)
		status := Status{Backend: name, InstallHint: def.InstallHint}

		if len(def.VersionCmd) == 0 {
			report.Missing++
			report.Statuses = append(report.Statuses, status)
			continue
		}
		status.Executable = def.VersionCmd[0]

		if _, err := d.LookPath(status.Executable); err != nil {
			report.Missing++
			report.Statuses = append(report.Statuses, status)
			continue
		}

		status.Available = true
		if res := d.Runner.Run(dir, def.VersionCmd); res.Success {
			status.Version = strings.TrimSpace(res.Stdout)
		}
		report.Available++
		report.Statuses = append(report.Statuses, status)
	}
	return report
}
