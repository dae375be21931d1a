package engine

import "fmt"

// CurrentLevel is the live state of a level being played. It keeps a
// reference to the immutable Level template and owns the dynamic parts:
// worker position, crate positions, the unfilled-goal counter, the move
// log, and the registered listeners.
//
// CurrentLevel is not safe for concurrent use; callers above the engine
// serialize access per session.
type CurrentLevel struct {
	level *Level

	// crates maps crate id to current position; crateAt is the reverse
	// index. Both are updated together.
	crates  []Position
	crateAt map[Position]int

	worker     Position
	emptyGoals int

	log       moveLog
	listeners []Listener
}

// NewCurrentLevel starts a fresh play of the given level.
func NewCurrentLevel(level *Level) *CurrentLevel {
	crates := level.CratePositions()
	crateAt := make(map[Position]int, len(crates))
	emptyGoals := 0
	for id, pos := range crates {
		crateAt[pos] = id
		if level.Background(pos) != BackgroundGoal {
			emptyGoals++
		}
	}
	return &CurrentLevel{
		level:      level,
		crates:     crates,
		crateAt:    crateAt,
		worker:     level.WorkerPosition(),
		emptyGoals: emptyGoals,
	}
}

// Subscribe registers a listener for all subsequent events.
func (cl *CurrentLevel) Subscribe(l Listener) {
	cl.listeners = append(cl.listeners, l)
}

func (cl *CurrentLevel) notify(ev Event) {
	for _, l := range cl.listeners {
		l(ev)
	}
}

// Level returns the immutable template this play is based on.
func (cl *CurrentLevel) Level() *Level { return cl.level }

// Rank returns the level's 1-based number within its collection.
func (cl *CurrentLevel) Rank() int { return cl.level.Rank() }

// Columns returns the width of the grid.
func (cl *CurrentLevel) Columns() int { return cl.level.Columns() }

// Rows returns the height of the grid.
func (cl *CurrentLevel) Rows() int { return cl.level.Rows() }

// WorkerPosition returns the worker's current position.
func (cl *CurrentLevel) WorkerPosition() Position { return cl.worker }

// WorkerDirection returns the direction of the last committed move, Left
// before any move. Undo rolls it back with the cursor.
func (cl *CurrentLevel) WorkerDirection() Direction {
	if m, ok := cl.log.lastMove(); ok {
		return m.Direction
	}
	return Left
}

// Background returns the static cell at pos.
func (cl *CurrentLevel) Background(pos Position) Background {
	return cl.level.Background(pos)
}

// IsCrate reports whether a crate currently occupies pos.
func (cl *CurrentLevel) IsCrate(pos Position) bool {
	_, ok := cl.crateAt[pos]
	return ok
}

// isEmpty reports whether the worker or a crate could occupy pos: a
// walkable cell with no crate on it. The worker's own cell is empty;
// only crates and walls block.
func (cl *CurrentLevel) isEmpty(pos Position) bool {
	return cl.level.IsInterior(pos) && !cl.IsCrate(pos)
}

// emptyNeighbours returns the adjacent cells that are empty or hold the
// worker, in the fixed Directions order.
func (cl *CurrentLevel) emptyNeighbours(pos Position) []Position {
	neighbours := make([]Position, 0, 4)
	for _, d := range Directions {
		n := pos.Neighbour(d)
		if cl.isEmpty(n) || n == cl.worker {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// IsFinished reports whether every goal cell holds a crate.
func (cl *CurrentLevel) IsFinished() bool { return cl.emptyGoals == 0 }

// EmptyGoals returns how many goal cells still lack a crate.
func (cl *CurrentLevel) EmptyGoals() int { return cl.emptyGoals }

// NumberOfMoves returns the number of committed moves.
func (cl *CurrentLevel) NumberOfMoves() int { return cl.log.numberOfMoves() }

// NumberOfPushes returns the number of committed moves that pushed a
// crate.
func (cl *CurrentLevel) NumberOfPushes() int { return cl.log.numberOfPushes() }

// MovesString encodes the committed moves in l/u/r/d notation, upper-case
// for pushes.
func (cl *CurrentLevel) MovesString() string {
	return MovesToString(cl.log.committed())
}

// AllMovesString encodes the whole log including the redo buffer.
func (cl *CurrentLevel) AllMovesString() string {
	return MovesToString(cl.log.all())
}

// CratePositions returns the current position of each crate, indexed by
// crate id.
func (cl *CurrentLevel) CratePositions() []Position {
	crates := make([]Position, len(cl.crates))
	copy(crates, cl.crates)
	return crates
}

// String renders the current state in the ASCII level format.
func (cl *CurrentLevel) String() string {
	return cl.level.render(cl.worker, cl.crateAt)
}

// relocateCrate moves the crate at from to to, keeps the unfilled-goal
// counter in step, and returns the event describing the change. The
// caller delivers the event once the whole step has been applied.
func (cl *CurrentLevel) relocateCrate(from, to Position) Event {
	id, ok := cl.crateAt[from]
	if !ok {
		panic(fmt.Sprintf("no crate at %v", from))
	}
	delete(cl.crateAt, from)
	cl.crateAt[to] = id
	cl.crates[id] = to
	if cl.level.Background(from) == BackgroundGoal {
		cl.emptyGoals++
	}
	if cl.level.Background(to) == BackgroundGoal {
		cl.emptyGoals--
	}
	return Event{Type: EventCrateMoved, CrateID: id, From: from, To: to}
}

// relocateWorker moves the worker and returns the event describing the
// change. dir is the direction of the move being applied, which for an
// undo is the direction of the reverted move.
func (cl *CurrentLevel) relocateWorker(to Position, dir Direction) Event {
	from := cl.worker
	cl.worker = to
	return Event{Type: EventWorkerMoved, From: from, To: to, Direction: dir}
}
