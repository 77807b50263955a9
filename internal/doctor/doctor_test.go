package doctor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvstart/internal/backend"
	"uvstart/internal/executor"
)

type versionRunner struct {
	out map[string]string
}

func (r versionRunner) Run(dir string, argv []string) executor.Result {
	out, ok := r.out[argv[0]]
	if !ok {
		return executor.Failure(executor.KindSpawnFailure, "not installed")
	}
	return executor.Result{Success: true, Stdout: out + "\n", Kind: executor.KindOK}
}

func pathWith(tools ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, tool := range tools {
			if tool == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.Errorf("%s not found", file)
	}
}

func TestCheck_ReportsAvailableAndMissing(t *testing.T) {
	reg := backend.NewRegistry()
	d := &Doctor{
		Registry: reg,
		Runner:   versionRunner{out: map[string]string{"uv": "uv 0.5.1", "poetry": "Poetry (version 1.8.3)"}},
		LookPath: pathWith("uv", "poetry"),
	}

	report := d.Check(t.TempDir())
	require.Len(t, report.Statuses, 5)
	assert.Equal(t, 2, report.Available)
	assert.Equal(t, 3, report.Missing)

	byName := map[string]Status{}
	for _, s := range report.Statuses {
		byName[s.Backend] = s
	}
	assert.True(t, byName["uv"].Available)
	assert.Equal(t, "uv 0.5.1", byName["uv"].Version)
	assert.False(t, byName["pdm"].Available)
	assert.NotEmpty(t, byName["pdm"].InstallHint)
}

func TestCheck_StatusesFollowNameOrder(t *testing.T) {
	reg := backend.NewRegistry()
	d := &Doctor{Registry: reg, Runner: versionRunner{}, LookPath: pathWith()}

	report := d.Check(t.TempDir())
	var names []string
	for _, s := range report.Statuses {
		names = append(names, s.Backend)
	}
	assert.Equal(t, reg.Names(), names)
}

func TestCheck_NoVersionTemplateCountsMissing(t *testing.T) {
	reg := backend.NewRegistry()
	reg.Register(backend.Definition{Name: "stub"})
	d := &Doctor{Registry: reg, Runner: versionRunner{}, LookPath: pathWith("stub")}

	report := d.Check(t.TempDir())
	byName := map[string]Status{}
	for _, s := range report.Statuses {
		byName[s.Backend] = s
	}
	assert.False(t, byName["stub"].Available)
	assert.Empty(t, byName["stub"].Executable)
}

func TestCheck_VersionProbeFailureStillAvailable(t *testing.T) {
	reg := backend.NewRegistry()
	d := &Doctor{Registry: reg, Runner: versionRunner{}, LookPath: pathWith("uv")}

	report := d.Check(t.TempDir())
	byName := map[string]Status{}
	for _, s := range report.Statuses {
		byName[s.Backend] = s
	}
	// the tool is on PATH even though the probe failed
	assert.True(t, byName["uv"].Available)
	assert.Empty(t, byName["uv"].Version)
}
