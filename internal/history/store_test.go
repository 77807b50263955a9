package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	rec, err := store.Append(Record{Backend: "uv", Operation: "add", Argv: []string{"uv", "add", "requests"}, Success: true})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestList_NewestFirst(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	base := time.Now()
	for i, op := range []string{"add", "sync", "remove"} {
		_, err := store.Append(Record{Operation: op, Timestamp: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "remove", records[0].Operation)
	assert.Equal(t, "add", records[2].Operation)
}

func TestList_Limit(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := store.Append(Record{Operation: "sync"})
		require.NoError(t, err)
	}

	records, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestList_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Append(Record{Operation: "add", Success: true})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{"), 0644))

	records, err := store.List(0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSummary(t *testing.T) {
	ok := Record{Operation: "add", Backend: "uv", Success: true, Timestamp: time.Now()}
	assert.Contains(t, ok.Summary(), "ok")

	failed := Record{Operation: "sync", Backend: "poetry", ExitCode: 2, Timestamp: time.Now()}
	assert.Contains(t, failed.Summary(), "exit 2")
}
