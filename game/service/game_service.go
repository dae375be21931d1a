package service

import (
	"context"

	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/command"
	"github.com/wricardo/sokoban/game/engine"
)

// GameService defines all game-related operations.
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, collectionName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Movement
	Move(ctx context.Context, sessionID, direction string) (*CommandResult, error)
	MoveUntil(ctx context.Context, sessionID, direction string, push bool) (*CommandResult, error)
	MoveTo(ctx context.Context, sessionID string, to engine.Position, push bool) (*CommandResult, error)
	PushCrate(ctx context.Context, sessionID string, from, to engine.Position) (*CommandResult, error)
	Undo(ctx context.Context, sessionID string) (*CommandResult, error)
	Redo(ctx context.Context, sessionID string) (*CommandResult, error)

	// Level control
	ResetLevel(ctx context.Context, sessionID string) (*CommandResult, error)
	NextLevel(ctx context.Context, sessionID string) (*CommandResult, error)
	PreviousLevel(ctx context.Context, sessionID string) (*CommandResult, error)
	SaveProgress(ctx context.Context, sessionID string) (*CommandResult, error)

	// Generic dispatch, used for macros and by the websocket transport.
	Execute(ctx context.Context, sessionID string, c command.Command) (*CommandResult, error)

	// State
	GetLevel(ctx context.Context, sessionID string) (*LevelSnapshot, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Collections
	ListCollections(ctx context.Context) ([]*collection.Info, error)
	LoadCollection(ctx context.Context, sessionID, name string) (*CommandResult, error)
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, col *collection.Collection) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, col *collection.Collection) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Count() int
}

// CollectionManager handles level collection loading.
type CollectionManager interface {
	Load(name string) (*collection.Collection, error)
	List() ([]*collection.Info, error)
	GetDefault() *collection.Collection
}
