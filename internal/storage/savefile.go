package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

// FileSaveStore persists run progress as a JSON document. Commits go
// through a temp file and a rename, so a crash mid-write leaves the
// previous save intact. Anything unreadable or invalid on load counts
// as "no save", never as an error.
type FileSaveStore struct {
	path    string
	catalog config.WorldCatalog
	logger  *log.Logger
}

// NewFileSaveStore creates a store writing to the given path.
// It creates the parent directories if needed; ~ expands to the home
// directory. A nil logger discards diagnostics.
func NewFileSaveStore(path string, catalog config.WorldCatalog, logger *log.Logger) (*FileSaveStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &FileSaveStore{path: path, catalog: catalog, logger: logger}, nil
}

// Commit writes the record, replacing any previous save atomically.
func (f *FileSaveStore) Commit(rec survivor.SaveRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write save: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("storage: cannot replace save: %w", err)
	}
	return nil
}

// Load reads the last committed record. Missing, corrupt and invalid
// files all report no save.
func (f *FileSaveStore) Load() (*survivor.SaveRecord, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read save: %w", err)
	}

	var rec survivor.SaveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		f.logger.Info("ignoring unreadable save file", "path", f.path, "err", err)
		return nil, nil
	}
	if !rec.Valid(f.catalog) {
		f.logger.Info("ignoring invalid save file", "path", f.path)
		return nil, nil
	}
	return &rec, nil
}

// Clear removes the save file. Clearing a store that has no save is
// not an error.
func (f *FileSaveStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: cannot remove save: %w", err)
	}
	return nil
}

// Ensure FileSaveStore implements SaveStore
var _ survivor.SaveStore = (*FileSaveStore)(nil)

// MemSaveStore keeps the record in memory. SSH sessions get one per
// connection, so progress lives as long as the session does.
type MemSaveStore struct {
	mu  sync.Mutex
	rec *survivor.SaveRecord
}

// Commit replaces the stored record.
func (m *MemSaveStore) Commit(rec survivor.SaveRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = &rec
	return nil
}

// Load returns a copy of the last committed record, or nil if nothing
// has been committed.
func (m *MemSaveStore) Load() (*survivor.SaveRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil, nil
	}
	rec := *m.rec
	return &rec, nil
}

// Ensure MemSaveStore implements SaveStore
var _ survivor.SaveStore = (*MemSaveStore)(nil)
