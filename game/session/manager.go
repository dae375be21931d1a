package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/play"
	"github.com/wricardo/sokoban/game/save"
	"github.com/wricardo/sokoban/game/service"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Manager handles play session lifecycle. Each session gets its own save
// directory under dataDir, so concurrent sessions never clobber each
// other's progress.
type Manager struct {
	loader      service.CollectionManager
	dataDir     string
	sessions    map[string]*service.Session
	persistence Persistence
	mu          sync.RWMutex
}

// NewManager creates a session manager keeping sessions in memory only.
func NewManager(loader service.CollectionManager, dataDir string) *Manager {
	return &Manager{
		loader:   loader,
		dataDir:  dataDir,
		sessions: make(map[string]*service.Session),
	}
}

// NewManagerWithPersistence creates a session manager that records
// sessions through the given persistence layer and can rebuild them
// after a restart.
func NewManagerWithPersistence(loader service.CollectionManager, dataDir string, persistence Persistence) *Manager {
	m := NewManager(loader, dataDir)
	m.persistence = persistence
	return m
}

// Create creates a new session playing the given collection. An empty ID
// gets a generated one.
func (m *Manager) Create(id string, col *collection.Collection) (*service.Session, error) {
	if id == "" {
		id = m.generateSessionID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[strings.ToLower(id)]; exists {
		return nil, ErrSessionAlreadyExists
	}

	sess, err := m.buildSession(id, col.ShortName, col)
	if err != nil {
		return nil, err
	}
	sess.CreatedAt = time.Now()
	sess.LastAccessedAt = sess.CreatedAt
	m.sessions[strings.ToLower(id)] = sess

	m.persist(sess)
	return sess, nil
}

// Get retrieves a session by ID (case-insensitive), falling back to
// persistence when it is not in memory.
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	sess, exists := m.sessions[strings.ToLower(id)]
	m.mu.RUnlock()
	if exists {
		return sess, nil
	}

	if m.persistence != nil && m.persistence.Exists(id) {
		data, err := m.persistence.Load(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load persisted session: %w", err)
		}
		sess, err := m.restoreSession(data)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.sessions[strings.ToLower(id)] = sess
		m.mu.Unlock()
		return sess, nil
	}

	return nil, ErrSessionNotFound
}

// GetOrCreate gets an existing session or creates a new one.
func (m *Manager) GetOrCreate(id string, col *collection.Collection) (*service.Session, error) {
	sess, err := m.Get(id)
	if err == nil {
		return sess, nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		return m.Create(id, col)
	}
	return nil, err
}

// List returns all in-memory sessions.
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		result = append(result, sess)
	}
	return result
}

// Delete removes a session from memory and persistence.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	_, inMemory := m.sessions[strings.ToLower(id)]
	delete(m.sessions, strings.ToLower(id))
	m.mu.Unlock()

	if m.persistence != nil && m.persistence.Exists(id) {
		return m.persistence.Delete(id)
	}
	if !inMemory {
		return ErrSessionNotFound
	}
	return nil
}

// UpdateLastAccessed updates the last accessed time for a session.
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return ErrSessionNotFound
	}
	sess.LastAccessedAt = time.Now()
	m.persist(sess)
	return nil
}

// CleanupExpiredSessions removes in-memory sessions not accessed within
// maxAge and returns how many were dropped.
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, sess := range m.sessions {
		if sess.LastAccessedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of in-memory sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// LoadPersistedSessions rebuilds all persisted sessions into memory.
func (m *Manager) LoadPersistedSessions() error {
	if m.persistence == nil {
		return nil
	}

	ids, err := m.persistence.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list persisted sessions: %w", err)
	}

	loaded := 0
	for _, id := range ids {
		m.mu.RLock()
		_, exists := m.sessions[strings.ToLower(id)]
		m.mu.RUnlock()
		if exists {
			continue
		}
		if _, err := m.Get(id); err != nil {
			log.Printf("[SESSION] skipping persisted session %s: %v", id, err)
			continue
		}
		loaded++
	}
	if loaded > 0 {
		log.Printf("[SESSION] restored %d persisted sessions", loaded)
	}
	return nil
}

// buildSession constructs a session and its game, with the session's own
// save directory.
func (m *Manager) buildSession(id, collectionName string, col *collection.Collection) (*service.Session, error) {
	store, err := save.NewStore(filepath.Join(m.dataDir, id))
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	game, err := play.NewGame(m.loader, store, col)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	return &service.Session{
		ID:         id,
		Game:       game,
		Collection: collectionName,
	}, nil
}

// restoreSession rebuilds a session from its persisted record. The game
// resumes from the save files in the session's data directory.
func (m *Manager) restoreSession(data *PersistedSession) (*service.Session, error) {
	col, err := m.loader.Load(data.Collection)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", data.Collection, err)
	}
	sess, err := m.buildSession(data.ID, data.Collection, col)
	if err != nil {
		return nil, err
	}
	sess.CreatedAt = data.CreatedAt
	sess.LastAccessedAt = data.LastAccessedAt
	return sess, nil
}

// persist writes the session record, logging failures instead of
// surfacing them; persistence is best-effort.
func (m *Manager) persist(sess *service.Session) {
	if m.persistence == nil {
		return
	}
	err := m.persistence.Save(&PersistedSession{
		ID:             sess.ID,
		Collection:     sess.Collection,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
	})
	if err != nil {
		log.Printf("[SESSION] failed to persist %s: %v", sess.ID, err)
	}
}

// generateSessionID generates a random 4-character session ID.
func (m *Manager) generateSessionID() string {
	bytes := make([]byte, 2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
