// Package baseline persists measurement snapshots as a flat JSON record and
// loads them back for comparison.
package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tikictx/internal/model"
)

// Filename is the well-known baseline location relative to the project root.
const Filename = ".tiki/context-baseline.json"

// ErrNotFound indicates that no baseline has been saved yet. Callers are
// expected to detect it and direct the user to produce one first.
var ErrNotFound = errors.New("no baseline found")

// Store reads and writes the baseline record for one project root.
type Store struct {
	path string
}

// NewStore returns a Store for the project rooted at root.
func NewStore(root string) *Store {
	return &Store{path: filepath.Join(root, Filename)}
}

// Path returns the absolute or root-relative baseline file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot as indented JSON. All integer and string fields
// round-trip exactly through Load.
func (s *Store) Save(snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding baseline: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating baseline dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}
	return nil
}

// Load reads the saved baseline. A missing file yields ErrNotFound; a
// malformed record is a fatal error outside the recovery contract.
func (s *Store) Load() (*model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading baseline: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing baseline %s: %w", s.path, err)
	}
	return &snap, nil
}
