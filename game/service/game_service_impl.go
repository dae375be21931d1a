package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/command"
	"github.com/wricardo/sokoban/game/engine"
	"github.com/wricardo/sokoban/game/play"
)

// ErrSessionIDRequired is returned when an operation is called without a
// session ID.
var ErrSessionIDRequired = errors.New("session ID is required")

type gameServiceImpl struct {
	sessions    SessionManager
	collections CollectionManager
}

// NewGameService creates the service implementation over a session
// manager and a collection manager.
func NewGameService(sessions SessionManager, collections CollectionManager) GameService {
	return &gameServiceImpl{sessions: sessions, collections: collections}
}

func (s *gameServiceImpl) CreateSession(ctx context.Context, collectionName string) (*SessionInfo, error) {
	col := s.collections.GetDefault()
	if collectionName != "" {
		var err error
		col, err = s.collections.Load(collectionName)
		if err != nil {
			return nil, err
		}
	}

	sess, err := s.sessions.Create("", col)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	log.Printf("[SESSION] created %s on collection %s", sess.ID, sess.Collection)
	return s.sessionInfo(sess), nil
}

func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess), nil
}

func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	infos := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		infos = append(infos, s.sessionInfo(sess))
	}
	return infos, nil
}

func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDRequired
	}
	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	log.Printf("[SESSION] deleted %s", sessionID)
	return nil
}

func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string) (*CommandResult, error) {
	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, sessionID, command.Command{Type: command.Step, Direction: dir, MayPushCrate: true})
}

func (s *gameServiceImpl) MoveUntil(ctx context.Context, sessionID, direction string, push bool) (*CommandResult, error) {
	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, sessionID, command.Command{Type: command.MoveAsFarAsPossible, Direction: dir, MayPushCrate: push})
}

func (s *gameServiceImpl) MoveTo(ctx context.Context, sessionID string, to engine.Position, push bool) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.MoveToPosition, Position: to, MayPushCrate: push})
}

func (s *gameServiceImpl) PushCrate(ctx context.Context, sessionID string, from, to engine.Position) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.MoveCrateToTarget, From: from, To: to})
}

func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.Undo})
}

func (s *gameServiceImpl) Redo(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.Redo})
}

func (s *gameServiceImpl) ResetLevel(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.ResetLevel})
}

func (s *gameServiceImpl) NextLevel(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.NextLevel})
}

func (s *gameServiceImpl) PreviousLevel(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.PreviousLevel})
}

func (s *gameServiceImpl) SaveProgress(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.Save})
}

func (s *gameServiceImpl) LoadCollection(ctx context.Context, sessionID, name string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, command.Command{Type: command.LoadCollection, Collection: name})
}

// Execute dispatches a command against the session's game. Game-level
// refusals (unfinished level, end of collection) come back as
// unsuccessful results, not errors.
func (s *gameServiceImpl) Execute(ctx context.Context, sessionID string, c command.Command) (*CommandResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	log.Printf("[COMMAND] session=%s %s", sess.ID, c)
	res, err := sess.Game.Execute(c)
	if err != nil {
		if isRefusal(err) {
			return &CommandResult{
				Success: false,
				Message: err.Error(),
				Level:   snapshot(sess),
			}, nil
		}
		return nil, err
	}

	sess.Collection = sess.Game.Collection().ShortName
	result := &CommandResult{
		Success: true,
		Events:  res.Events,
		Update:  res.Update,
		Level:   snapshot(sess),
	}
	for _, ev := range res.Events {
		if ev.IsFailure() {
			result.Success = false
			if result.Message == "" {
				result.Message = failureMessage(ev)
			}
		}
	}
	return result, nil
}

func (s *gameServiceImpl) GetLevel(ctx context.Context, sessionID string) (*LevelSnapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return snapshot(sess), nil
}

func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	movesString := sess.Game.Current().MovesString()
	sess.Unlock()

	moves := make([]HistoryMove, len(movesString))
	for i := 0; i < len(movesString); i++ {
		m, err := engine.MoveFromChar(movesString[i])
		if err != nil {
			return nil, err
		}
		moves[i] = HistoryMove{Number: i + 1, Direction: m.Direction.String(), Push: m.MovesCrate}
	}
	return paginate(moves, opts), nil
}

func (s *gameServiceImpl) ListCollections(ctx context.Context) ([]*collection.Info, error) {
	return s.collections.List()
}

func (s *gameServiceImpl) session(id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionIDRequired
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.UpdateLastAccessed(id); err != nil {
		log.Printf("[SESSION] could not touch %s: %v", id, err)
	}
	return sess, nil
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	sess.Lock()
	defer sess.Unlock()
	return &SessionInfo{
		ID:             sess.ID,
		Collection:     sess.Collection,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Level:          snapshot(sess),
	}
}

// snapshot renders the session's current level. Callers hold the session
// lock.
func snapshot(sess *Session) *LevelSnapshot {
	cl := sess.Game.Current()
	return &LevelSnapshot{
		Collection:      sess.Game.Collection().ShortName,
		Rank:            cl.Rank(),
		TotalLevels:     sess.Game.Collection().NumberOfLevels(),
		Columns:         cl.Columns(),
		Rows:            cl.Rows(),
		Grid:            strings.Split(strings.TrimRight(cl.String(), "\n"), "\n"),
		Worker:          cl.WorkerPosition(),
		WorkerDirection: cl.WorkerDirection().String(),
		Crates:          cl.CratePositions(),
		Moves:           cl.NumberOfMoves(),
		Pushes:          cl.NumberOfPushes(),
		MovesString:     cl.MovesString(),
		EmptyGoals:      cl.EmptyGoals(),
		Finished:        cl.IsFinished(),
	}
}

// isRefusal reports whether the error is a game rule saying no, rather
// than something going wrong.
func isRefusal(err error) bool {
	return errors.Is(err, play.ErrLevelNotFinished) ||
		errors.Is(err, play.ErrEndOfCollection) ||
		errors.Is(err, play.ErrAtFirstLevel)
}

func failureMessage(ev engine.Event) string {
	switch ev.Type {
	case engine.EventMoveBlocked:
		what := "the worker"
		if ev.WithCrate {
			what = "the crate"
		}
		return fmt.Sprintf("%s is blocked by a %s at %v", what, ev.Obstacle, ev.To)
	case engine.EventNoPathFound:
		if ev.Reason != "" {
			return "no path found: " + ev.Reason
		}
		return "no path found"
	case engine.EventPushAxisRequired:
		return "pushing requires a target on the worker's row or column"
	case engine.EventNothingToUndo:
		return "nothing to undo"
	case engine.EventNothingToRedo:
		return "nothing to redo"
	}
	return ""
}

func paginate(moves []HistoryMove, opts HistoryOptions) *HistoryResponse {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Order == "desc" {
		reversed := make([]HistoryMove, len(moves))
		for i, m := range moves {
			reversed[len(moves)-1-i] = m
		}
		moves = reversed
	}

	total := len(moves)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Moves:       moves[start:end],
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1 && total > 0,
	}
}
