package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in <dir>/<name>.json as a pretty-printed
// JSON array. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated collection behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Read(name string, out any) error {
	content, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		// Missing file behaves as an empty collection.
		return json.Unmarshal([]byte("[]"), out)
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Write(name string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection %s: %w", name, err)
	}
	return nil
}
