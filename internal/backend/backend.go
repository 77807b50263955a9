// Package backend holds the configuration records for the external
// package-manager tools the engine can dispatch to, and the detection
// logic that picks one for a project directory.
package backend

import "sort"

// Definition is the immutable configuration record for one external
// tool. Every backend shares this shape; adding a backend means adding
// data, not logic.
type Definition struct {
	Name              string
	DetectionFiles    []string
	DetectionPatterns []string
	InstallHint       string

	AddCmd     []string
	AddDevCmd  []string
	RemoveCmd  []string
	SyncCmd    []string
	SyncDevCmd []string
	RunCmd     []string
	ListCmd    []string
	VersionCmd []string

	CleanFiles []string
}

// Registry owns the canonical set of definitions. Populate it before
// first use; it is treated as read-only afterwards and is not safe for
// concurrent registration.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns a registry populated with the built-in backends.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]Definition)}
	for _, def := range builtins() {
		r.Register(def)
	}
	return r
}

// Register inserts or overwrites a definition. Overwriting is allowed
// so user configuration can shadow a built-in.
func (r *Registry) Register(def Definition) {
	r.defs[def.Name] = def
}

// Get looks up a definition by name. A missing name is a normal
// outcome, not an error.
func (r *Registry) Get(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns all registered names sorted lexicographically.
// Detection iterates in this order, so results never depend on map
// iteration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
