package service

import (
	"sync"
	"time"

	"github.com/wricardo/sokoban/game/engine"
	"github.com/wricardo/sokoban/game/play"
	"github.com/wricardo/sokoban/game/save"
)

// Session represents an active play session.
type Session struct {
	ID             string
	Game           *play.Game
	Collection     string
	CreatedAt      time.Time
	LastAccessedAt time.Time

	// mu serializes command execution; the engine below is
	// single-threaded by design.
	mu sync.Mutex
}

// Lock takes the session's command lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session's command lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// LevelSnapshot is the wire representation of a session's current level.
type LevelSnapshot struct {
	Collection  string `json:"collection"`
	Rank        int    `json:"rank"`
	TotalLevels int    `json:"total_levels"`
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`

	// Grid is the level rendered in the ASCII format, one row per entry.
	Grid []string `json:"grid"`

	Worker          engine.Position   `json:"worker"`
	WorkerDirection string            `json:"worker_direction"`
	Crates          []engine.Position `json:"crates"`

	Moves       int    `json:"moves"`
	Pushes      int    `json:"pushes"`
	MovesString string `json:"moves_string"`
	EmptyGoals  int    `json:"empty_goals"`
	Finished    bool   `json:"finished"`
}

// SessionInfo provides information about a session.
type SessionInfo struct {
	ID             string         `json:"id"`
	Collection     string         `json:"collection"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAccessedAt time.Time      `json:"last_accessed_at"`
	Level          *LevelSnapshot `json:"level"`
}

// CommandResult is the outcome of one executed command.
type CommandResult struct {
	// Success is false when the command was refused or a failure event
	// was emitted (blocked move, no path, nothing to undo).
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	Events []engine.Event       `json:"events,omitempty"`
	Update *save.UpdateResponse `json:"update,omitempty"`
	Level  *LevelSnapshot       `json:"level"`
}

// HistoryMove is one committed move in a session's history.
type HistoryMove struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Push      bool   `json:"push"`
}

// HistoryOptions configures move history retrieval.
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history.
type HistoryResponse struct {
	Moves       []HistoryMove `json:"moves"`
	TotalMoves  int           `json:"total_moves"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}
