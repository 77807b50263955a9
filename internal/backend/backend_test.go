package backend

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_HasBuiltins(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{"hatch", "pdm", "poetry", "rye", "uv"}, reg.Names())
}

func TestGet_NameMatchesDefinition(t *testing.T) {
	reg := NewRegistry()
	for _, name := range reg.Names() {
		def, ok := reg.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, def.Name)
	}
}

func TestGet_UnknownNameIsAbsent(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Get("npm")
	assert.False(t, ok)
}

func TestRegister_OverwritesExisting(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Definition{Name: "uv", InstallHint: "custom"})

	def, ok := reg.Get("uv")
	require.True(t, ok)
	assert.Equal(t, "custom", def.InstallHint)
	// no duplicate entry appears
	assert.Len(t, reg.Names(), 5)
}

func TestNames_Sorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Definition{Name: "aaa"})
	reg.Register(Definition{Name: "zzz"})

	names := reg.Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, "aaa", names[0])
	assert.Equal(t, "zzz", names[len(names)-1])
}

func TestBuiltins_NonEmptyTemplates(t *testing.T) {
	reg := NewRegistry()
	for _, name := range reg.Names() {
		def, _ := reg.Get(name)
		for op, tmpl := range map[string][]string{
			"add":      def.AddCmd,
			"add-dev":  def.AddDevCmd,
			"remove":   def.RemoveCmd,
			"sync":     def.SyncCmd,
			"sync-dev": def.SyncDevCmd,
			"run":      def.RunCmd,
			"list":     def.ListCmd,
			"version":  def.VersionCmd,
		} {
			assert.NotEmptyf(t, tmpl, "%s %s", name, op)
		}
	}
}
