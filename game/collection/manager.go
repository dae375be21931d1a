package collection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrCollectionNotFound = errors.New("collection not found")

// Manager handles collection loading and caching from a levels directory.
type Manager struct {
	levelsDir         string
	defaultCollection *Collection
	collections       map[string]*Collection
	mu                sync.RWMutex
}

// NewManager creates a collection manager over the given directory. The
// directory must exist and contain at least one loadable collection,
// which becomes the default.
func NewManager(levelsDir string) (*Manager, error) {
	if _, err := os.Stat(levelsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("levels directory does not exist: %s", levelsDir)
	}

	m := &Manager{
		levelsDir:   levelsDir,
		collections: make(map[string]*Collection),
	}
	if err := m.loadDefaultCollection(); err != nil {
		return nil, fmt.Errorf("failed to load default collection: %w", err)
	}
	return m, nil
}

// Load returns the collection with the given short name, reading it from
// disk on first use.
func (m *Manager) Load(name string) (*Collection, error) {
	name = strings.TrimSuffix(name, ".lvl")

	m.mu.RLock()
	if c, exists := m.collections[name]; exists {
		m.mu.RUnlock()
		return c, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if c, exists := m.collections[name]; exists {
		return c, nil
	}

	data, err := os.ReadFile(filepath.Join(m.levelsDir, name+".lvl"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	c, err := Parse(name, string(data))
	if err != nil {
		return nil, err
	}
	m.collections[name] = c
	return c, nil
}

// List returns information about every loadable collection in the levels
// directory. Broken files are skipped.
func (m *Manager) List() ([]*Info, error) {
	entries, err := os.ReadDir(m.levelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var infos []*Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lvl") {
			continue
		}
		c, err := m.Load(strings.TrimSuffix(entry.Name(), ".lvl"))
		if err != nil {
			continue
		}
		infos = append(infos, c.Info())
	}
	return infos, nil
}

// GetDefault returns the default collection.
func (m *Manager) GetDefault() *Collection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultCollection
}

// SetDefault sets the default collection by short name.
func (m *Manager) SetDefault(name string) error {
	c, err := m.Load(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultCollection = c
	return nil
}

// RefreshCache drops all cached collections and reloads the default.
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.collections = make(map[string]*Collection)
	m.mu.Unlock()
	return m.loadDefaultCollection()
}

func (m *Manager) loadDefaultCollection() error {
	if c, err := m.Load("original"); err == nil {
		m.mu.Lock()
		m.defaultCollection = c
		m.mu.Unlock()
		return nil
	}

	infos, err := m.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return fmt.Errorf("no collections in %s", m.levelsDir)
	}
	c, err := m.Load(infos[0].ShortName)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.defaultCollection = c
	m.mu.Unlock()
	return nil
}
