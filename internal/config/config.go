package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"uvstart/internal/backend"
)

// Config holds the front-end settings. All of it comes from the
// environment; every key is optional.
type Config struct {
	// ProjectDir is the directory operations run against.
	ProjectDir string
	// DefaultBackend, when set, is used instead of detection for calls
	// that pass no explicit backend.
	DefaultBackend string
	// BackendsFile is an optional YAML file of extra backend
	// definitions merged into the registry at startup.
	BackendsFile string
	// HistoryDir enables the operation log when non-empty.
	HistoryDir string
}

// Load reads config from an env map. For production use LoadFromEnv.
func Load(env map[string]string) (*Config, error) {
	projectDir := env["UVSTART_PROJECT_DIR"]
	if projectDir == "" {
		projectDir = "."
	}

	if file := env["UVSTART_CONFIG"]; file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrap(err, "UVSTART_CONFIG")
		}
	}

	return &Config{
		ProjectDir:     projectDir,
		DefaultBackend: env["UVSTART_BACKEND"],
		BackendsFile:   env["UVSTART_CONFIG"],
		HistoryDir:     env["UVSTART_HISTORY_DIR"],
	}, nil
}

// LoadFromEnv loads config from os environment variables.
func LoadFromEnv() (*Config, error) {
	env := map[string]string{
		"UVSTART_PROJECT_DIR": os.Getenv("UVSTART_PROJECT_DIR"),
		"UVSTART_BACKEND":     os.Getenv("UVSTART_BACKEND"),
		"UVSTART_CONFIG":      os.Getenv("UVSTART_CONFIG"),
		"UVSTART_HISTORY_DIR": os.Getenv("UVSTART_HISTORY_DIR"),
	}
	return Load(env)
}

// backendsFile is the YAML shape of a user backends file.
type backendsFile struct {
	Backends []backendEntry `yaml:"backends"`
}

type backendEntry struct {
	Name              string   `yaml:"name"`
	DetectionFiles    []string `yaml:"detection_files"`
	DetectionPatterns []string `yaml:"detection_patterns"`
	InstallHint       string   `yaml:"install_hint"`
	Add               []string `yaml:"add"`
	AddDev            []string `yaml:"add_dev"`
	Remove            []string `yaml:"remove"`
	Sync              []string `yaml:"sync"`
	SyncDev           []string `yaml:"sync_dev"`
	Run               []string `yaml:"run"`
	List              []string `yaml:"list"`
	Version           []string `yaml:"version"`
	CleanFiles        []string `yaml:"clean_files"`
}

// RegisterBackends parses a user backends file and registers every
// entry, shadowing built-ins with the same name. A malformed file is a
// startup error, not an operation result.
func RegisterBackends(path string, reg *backend.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading backends file")
	}

	var file backendsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(err, "parsing backends file")
	}

	for i, entry := range file.Backends {
		if entry.Name == "" {
			return errors.Errorf("backends[%d]: missing name", i)
		}
		reg.Register(backend.Definition{
			Name:              entry.Name,
			DetectionFiles:    entry.DetectionFiles,
			DetectionPatterns: entry.DetectionPatterns,
			InstallHint:       entry.InstallHint,
			AddCmd:            entry.Add,
			AddDevCmd:         entry.AddDev,
			RemoveCmd:         entry.Remove,
			SyncCmd:           entry.Sync,
			SyncDevCmd:        entry.SyncDev,
			RunCmd:            entry.Run,
			ListCmd:           entry.List,
			VersionCmd:        entry.Version,
			CleanFiles:        entry.CleanFiles,
		})
	}
	return nil
}
