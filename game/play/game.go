package play

import (
	"errors"
	"fmt"
	"log"

	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/command"
	"github.com/wricardo/sokoban/game/engine"
	"github.com/wricardo/sokoban/game/save"
)

var (
	ErrLevelNotFinished = errors.New("current level is not finished")
	ErrEndOfCollection  = errors.New("no next level in the collection")
	ErrAtFirstLevel     = errors.New("already at the first level")
)

// CollectionLoader provides collections by short name. *collection.Manager
// implements it.
type CollectionLoader interface {
	Load(name string) (*collection.Collection, error)
}

// Result is what dispatching one command produced.
type Result struct {
	// Events are the engine events the command caused, in order.
	Events []engine.Event `json:"events"`
	// Update is set when the command saved state, in particular when it
	// finished the level.
	Update *save.UpdateResponse `json:"update,omitempty"`
	// NewLevel is set when the command replaced the current level
	// (reset, next, previous, load).
	NewLevel bool `json:"new_level,omitempty"`
}

// Game is one playthrough of a level collection.
type Game struct {
	loader CollectionLoader
	store  *save.Store

	col     *collection.Collection
	state   *save.CollectionState
	current *engine.CurrentLevel
	macros  *command.Macros

	listeners []engine.Listener
	pending   []engine.Event
}

// NewGame starts (or resumes) playing a collection. Saved progress under
// the store decides the starting level; an in-progress move log is
// replayed.
func NewGame(loader CollectionLoader, store *save.Store, col *collection.Collection) (*Game, error) {
	g := &Game{
		loader: loader,
		store:  store,
		macros: command.NewMacros(),
	}
	if err := g.useCollection(col); err != nil {
		return nil, err
	}
	return g, nil
}

// Subscribe registers a listener for engine events of the current and all
// future levels.
func (g *Game) Subscribe(l engine.Listener) {
	g.listeners = append(g.listeners, l)
	g.current.Subscribe(l)
}

// Collection returns the collection being played.
func (g *Game) Collection() *collection.Collection { return g.col }

// Current returns the level being played.
func (g *Game) Current() *engine.CurrentLevel { return g.current }

// State returns the saved state of the collection being played.
func (g *Game) State() *save.CollectionState { return g.state }

// useCollection switches to a collection and resumes where its saved
// state left off.
func (g *Game) useCollection(col *collection.Collection) error {
	g.col = col
	g.state = g.store.Load(col.ShortName)

	rank := 1
	if !g.state.CollectionSolved {
		rank = g.state.LevelsFinished() + 1
		if rank > col.NumberOfLevels() {
			rank = col.NumberOfLevels()
		}
	}
	if err := g.startLevel(rank); err != nil {
		return err
	}

	if rank-1 < len(g.state.Levels) {
		ls := g.state.Levels[rank-1]
		if !ls.Finished && ls.Moves != "" {
			if err := g.current.ExecuteMoves(ls.NumberOfMoves, ls.Moves); err != nil {
				// A save from an incompatible level file; start over
				// rather than refuse to play.
				log.Printf("[PLAY] discarding unreplayable moves for %s level %d: %v", col.ShortName, rank, err)
				return g.startLevel(rank)
			}
		}
	}
	return nil
}

// startLevel replaces the current level with a fresh play of the given
// rank and re-attaches all listeners.
func (g *Game) startLevel(rank int) error {
	level, err := g.col.Level(rank)
	if err != nil {
		return err
	}
	g.current = engine.NewCurrentLevel(level)
	g.current.Subscribe(func(ev engine.Event) {
		g.pending = append(g.pending, ev)
	})
	for _, l := range g.listeners {
		g.current.Subscribe(l)
	}
	return nil
}

// Execute dispatches one command. Blocked moves and failed pathfinding
// are not errors; they surface as failure events in the result. Errors
// are reserved for commands that could not be carried out at all.
func (g *Game) Execute(c command.Command) (*Result, error) {
	g.pending = nil
	res := &Result{}

	var err error
	switch c.Type {
	case command.RecordMacro:
		err = g.macros.Record(c.Slot)
	case command.StoreMacro:
		g.macros.Store()
	case command.ExecuteMacro:
		g.macros.Push(c)
		for _, mc := range g.macros.Get(c.Slot) {
			if err = g.dispatch(mc, res); err != nil {
				break
			}
		}
	default:
		g.macros.Push(c)
		err = g.dispatch(c, res)
	}
	if err != nil {
		return nil, err
	}
	res.Events = g.pending
	return res, nil
}

func (g *Game) dispatch(c command.Command, res *Result) error {
	wasFinished := g.current.IsFinished()

	switch c.Type {
	case command.Nothing, "":
	case command.Step:
		if c.MayPushCrate {
			g.current.Step(c.Direction)
		} else {
			g.current.Walk(c.Direction)
		}
	case command.MoveAsFarAsPossible:
		g.current.MoveAsFarAsPossible(c.Direction, c.MayPushCrate)
	case command.MoveToPosition:
		g.current.MoveToPosition(c.Position, c.MayPushCrate)
	case command.MoveCrateToTarget:
		g.current.MoveCrateToTarget(c.From, c.To)
	case command.Undo:
		g.current.Undo()
	case command.Redo:
		g.current.Redo()
	case command.ResetLevel:
		res.NewLevel = true
		return g.startLevel(g.current.Rank())
	case command.NextLevel:
		res.NewLevel = true
		return g.nextLevel()
	case command.PreviousLevel:
		res.NewLevel = true
		return g.previousLevel()
	case command.Save:
		update, err := g.saveState()
		if err != nil {
			return err
		}
		res.Update = update
		return nil
	case command.LoadCollection:
		return g.loadCollection(c.Collection, res)
	default:
		return fmt.Errorf("unknown command %q", c.Type)
	}

	// The move that fills the last goal saves automatically.
	if !wasFinished && g.current.IsFinished() {
		update, err := g.saveState()
		if err != nil {
			return err
		}
		res.Update = update
	}
	return nil
}

// nextLevel advances to the next level. Allowed once the current level is
// finished, or when it was already solved in an earlier session.
func (g *Game) nextLevel() error {
	rank := g.current.Rank()
	solvedBefore := rank <= g.state.LevelsFinished() || g.state.CollectionSolved
	if !g.current.IsFinished() && !solvedBefore {
		return ErrLevelNotFinished
	}
	if rank >= g.col.NumberOfLevels() {
		return ErrEndOfCollection
	}
	return g.startLevel(rank + 1)
}

func (g *Game) previousLevel() error {
	rank := g.current.Rank()
	if rank <= 1 {
		return ErrAtFirstLevel
	}
	return g.startLevel(rank - 1)
}

// saveState merges the current level into the collection state and writes
// it to disk.
func (g *Game) saveState() (*save.UpdateResponse, error) {
	update := g.state.Update(g.current.Rank()-1, save.LevelStateFromLevel(g.current))
	if g.state.LevelsFinished() == g.col.NumberOfLevels() {
		g.state.CollectionSolved = true
	}
	if err := g.store.Save(g.state); err != nil {
		return nil, err
	}
	return &update, nil
}

// loadCollection saves the running level and switches collections.
func (g *Game) loadCollection(name string, res *Result) error {
	col, err := g.loader.Load(name)
	if err != nil {
		return err
	}
	if _, err := g.saveState(); err != nil {
		log.Printf("[PLAY] could not save %s before switching: %v", g.col.ShortName, err)
	}
	res.NewLevel = true
	return g.useCollection(col)
}
