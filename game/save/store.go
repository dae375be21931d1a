package save

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store reads and writes collection states as JSON files in a data
// directory, one file per collection short name.
type Store struct {
	dataDir string
}

// NewStore creates the data directory if needed and returns a store over
// it.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (st *Store) path(name string) string {
	return filepath.Join(st.dataDir, name+".json")
}

// Load returns the saved state for the named collection. A missing or
// unreadable file yields a fresh state; losing a save must never block
// playing.
func (st *Store) Load(name string) *CollectionState {
	data, err := os.ReadFile(st.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[SAVE] ignoring unreadable state for %s: %v", name, err)
		}
		return NewCollectionState(name)
	}
	var cs CollectionState
	if err := json.Unmarshal(data, &cs); err != nil {
		log.Printf("[SAVE] ignoring corrupt state for %s: %v", name, err)
		return NewCollectionState(name)
	}
	return &cs
}

// Save writes the collection state to disk.
func (st *Store) Save(cs *CollectionState) error {
	data, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(st.path(cs.Name), data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
