package session

import "time"

// PersistedSession is the durable record of a session. The game state
// itself lives in the session's save files and is rebuilt on load.
type PersistedSession struct {
	ID             string    `json:"id"`
	Collection     string    `json:"collection"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}

// Persistence defines session metadata storage.
type Persistence interface {
	Save(data *PersistedSession) error
	Load(id string) (*PersistedSession, error)
	Delete(id string) error
	ListAll() ([]string, error)
	Exists(id string) bool
}
