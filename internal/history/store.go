package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Record is one executed engine operation.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Backend   string    `json:"backend"`
	Operation string    `json:"operation"`
	Argv      []string  `json:"argv,omitempty"`
	ExitCode  int       `json:"exit_code"`
	Success   bool      `json:"success"`
}

// Summary returns a one-line rendering of the record for listing.
func (r *Record) Summary() string {
	status := "ok"
	if !r.Success {
		status = fmt.Sprintf("exit %d", r.ExitCode)
	}
	return fmt.Sprintf("%s  %-8s %-8s %s", r.Timestamp.Format("Jan 2 15:04"), r.Operation, r.Backend, status)
}

// Store persists operation records to disk, one JSON file per record.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates a store at the given base directory.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating history directory")
	}
	return &Store{baseDir: baseDir}, nil
}

// Append writes a new record, assigning its ID and timestamp.
func (s *Store) Append(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.NewString()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, errors.Wrap(err, "marshaling record")
	}

	path := filepath.Join(s.baseDir, rec.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Record{}, errors.Wrap(err, "writing record")
	}
	return rec, nil
}

// List returns records newest first, at most limit when limit > 0.
// Unreadable or malformed files are skipped.
func (s *Store) List(limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(err, "reading history directory")
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
