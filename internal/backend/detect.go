package backend

import (
	"os"
	"path/filepath"
	"strings"
)

// ManifestFile is the single file whose contents are searched for
// detection patterns when no detection file is present.
const ManifestFile = "pyproject.toml"

// Detect chooses at most one backend for a project directory.
//
// Phase 1 checks each backend's detection files directly under dir;
// phase 2, reached only when phase 1 matched nothing, looks for each
// backend's detection patterns as literal substrings of pyproject.toml.
// Backends are tried in Registry.Names order, so a file signal for any
// backend beats a content signal for every backend, and ties fall to
// the lexicographically smaller name. Returns "" when nothing matches;
// that is absence, not an error.
func Detect(reg *Registry, dir string) string {
	names := reg.Names()

	for _, name := range names {
		def, _ := reg.Get(name)
		for _, file := range def.DetectionFiles {
			if _, err := os.Stat(filepath.Join(dir, file)); err == nil {
				return name
			}
		}
	}

	content, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return ""
	}
	manifest := string(content)
	for _, name := range names {
		def, _ := reg.Get(name)
		for _, pattern := range def.DetectionPatterns {
			if pattern != "" && strings.Contains(manifest, pattern) {
				return name
			}
		}
	}

	return ""
}
