package engine

import "fmt"

// FailedMove describes why a step could not be performed. Nothing changed
// when it is returned.
type FailedMove struct {
	// ObstacleAt is the cell that blocked the step: the cell in front of
	// the worker, or the cell behind a crate being pushed.
	ObstacleAt Position
	Obstacle   Obstacle
	// WithCrate is true when the blocked thing was a crate being pushed
	// rather than the worker itself.
	WithCrate bool
}

// Error implements the error interface.
func (f *FailedMove) Error() string {
	if f.WithCrate {
		return fmt.Sprintf("crate blocked by %s at %v", f.Obstacle, f.ObstacleAt)
	}
	return fmt.Sprintf("worker blocked by %s at %v", f.Obstacle, f.ObstacleAt)
}

// verifiedMove is the outcome of evaluating a move against the current
// state, ready to apply.
type verifiedMove struct {
	workerTo   Position
	movesCrate bool
	crateFrom  Position
	crateTo    Position
}

// evaluateMove checks a move without changing any state. m.MovesCrate set
// means the caller intends to push the crate in front of the worker.
func (cl *CurrentLevel) evaluateMove(m Move) (verifiedMove, *FailedMove) {
	next := cl.worker.Neighbour(m.Direction)
	if m.MovesCrate && cl.IsCrate(next) {
		next2 := next.Neighbour(m.Direction)
		if !cl.isEmpty(next2) {
			obstacle := ObstacleWall
			if cl.IsCrate(next2) {
				obstacle = ObstacleCrate
			}
			return verifiedMove{}, &FailedMove{ObstacleAt: next2, Obstacle: obstacle, WithCrate: true}
		}
		return verifiedMove{workerTo: next, movesCrate: true, crateFrom: next, crateTo: next2}, nil
	}
	if !cl.isEmpty(next) {
		obstacle := ObstacleWall
		if cl.IsCrate(next) {
			obstacle = ObstacleCrate
		}
		return verifiedMove{}, &FailedMove{ObstacleAt: next, Obstacle: obstacle}
	}
	return verifiedMove{workerTo: next}, nil
}

// performMove applies an evaluated move, records it when asked, and
// notifies listeners: worker event, then crate event, then level-finished
// when the push filled the last goal.
func (cl *CurrentLevel) performMove(m Move, record bool) *FailedMove {
	v, failed := cl.evaluateMove(m)
	if failed != nil {
		return failed
	}
	var crateEvent Event
	if v.movesCrate {
		crateEvent = cl.relocateCrate(v.crateFrom, v.crateTo)
	}
	workerEvent := cl.relocateWorker(v.workerTo, m.Direction)
	if record {
		cl.log.record(Move{Direction: m.Direction, MovesCrate: v.movesCrate})
	}
	cl.notify(workerEvent)
	if v.movesCrate {
		cl.notify(crateEvent)
		if cl.emptyGoals == 0 {
			cl.notify(Event{
				Type:     EventLevelFinished,
				Moves:    cl.NumberOfMoves(),
				Pushes:   cl.NumberOfPushes(),
				Solution: cl.MovesString(),
			})
		}
	}
	return nil
}

// step performs one step in the given direction, pushing a crate when
// allowed and necessary. On failure a move-blocked event is emitted and
// the state is unchanged.
func (cl *CurrentLevel) step(dir Direction, mayPushCrate bool) *FailedMove {
	next := cl.worker.Neighbour(dir)
	m := Move{Direction: dir, MovesCrate: mayPushCrate && cl.IsCrate(next)}
	if failed := cl.performMove(m, true); failed != nil {
		cl.notify(Event{
			Type:      EventMoveBlocked,
			To:        failed.ObstacleAt,
			Direction: dir,
			Obstacle:  failed.Obstacle,
			WithCrate: failed.WithCrate,
		})
		return failed
	}
	return nil
}

// mustStep performs a step that the caller has already proven possible.
func (cl *CurrentLevel) mustStep(dir Direction, mayPushCrate bool) {
	if failed := cl.step(dir, mayPushCrate); failed != nil {
		panic(fmt.Sprintf("verified step %v failed: %v", dir, failed))
	}
}

// Step takes one step in the given direction, pushing a crate if one is in
// the way and the cell behind it is free. The returned error is a
// *FailedMove when the step was blocked.
func (cl *CurrentLevel) Step(dir Direction) error {
	if failed := cl.step(dir, true); failed != nil {
		return failed
	}
	return nil
}

// Walk takes one step in the given direction without pushing: a crate in
// the way blocks the step.
func (cl *CurrentLevel) Walk(dir Direction) error {
	if failed := cl.step(dir, false); failed != nil {
		return failed
	}
	return nil
}

// Undo reverts the most recent committed move: the worker steps back and a
// pushed crate is pulled back with it. Returns false (after a
// nothing-to-undo event) when the log is empty.
func (cl *CurrentLevel) Undo() bool {
	m, ok := cl.log.undo()
	if !ok {
		cl.notify(Event{Type: EventNothingToUndo})
		return false
	}
	cratePos := cl.worker.Neighbour(m.Direction)
	cl.notify(cl.relocateWorker(cl.worker.Neighbour(m.Direction.Reverse()), m.Direction))
	if m.MovesCrate {
		cl.notify(cl.relocateCrate(cratePos, cratePos.Neighbour(m.Direction.Reverse())))
	}
	return true
}

// Redo re-executes the next move from the redo buffer. Returns false
// (after a nothing-to-redo event) when the buffer is empty. A buffered
// move replays against exactly the state it was first executed in, so it
// cannot be blocked.
func (cl *CurrentLevel) Redo() bool {
	m, ok := cl.log.redo()
	if !ok {
		cl.notify(Event{Type: EventNothingToRedo})
		return false
	}
	if failed := cl.performMove(m, false); failed != nil {
		panic(fmt.Sprintf("redo of %v blocked at %v", m, failed.ObstacleAt))
	}
	return true
}

// MoveAsFarAsPossible repeats steps in the given direction until a step is
// blocked, or the level is finished while pushing.
func (cl *CurrentLevel) MoveAsFarAsPossible(dir Direction, mayPushCrate bool) {
	for cl.step(dir, mayPushCrate) == nil {
		if mayPushCrate && cl.IsFinished() {
			return
		}
	}
}

// MoveToPosition moves the worker towards to. Without pushing, a
// non-adjacent target is reached via the pathfinder; otherwise the worker
// walks straight. With pushing the target must share the worker's row or
// column, else a push-axis-required event is emitted. Movement stops early
// when blocked.
func (cl *CurrentLevel) MoveToPosition(to Position, mayPushCrate bool) {
	if !mayPushCrate {
		dx, dy := to.X-cl.worker.X, to.Y-cl.worker.Y
		if abs(dx)+abs(dy) > 1 {
			if path := cl.FindPath(to); path != nil {
				cl.followPath(path)
			}
			return
		}
	}

	dir, kind := DirectionTo(cl.worker, to)
	switch kind {
	case SamePosition:
	case AxisAligned:
		for cl.step(dir, mayPushCrate) == nil {
			if cl.worker == to || (mayPushCrate && cl.IsFinished()) {
				return
			}
		}
	case Diagonal:
		cl.notify(Event{Type: EventPushAxisRequired})
	}
}

// MoveCrateToTarget pushes the crate at from to to, walking the worker
// into pushing position as needed. Returns false when the crate cannot be
// brought there; a no-path-found event carries the reason.
func (cl *CurrentLevel) MoveCrateToTarget(from, to Position) bool {
	path := cl.FindPathWithCrate(from, to)
	if path == nil {
		return false
	}
	return cl.pushCrateAlongPath(path)
}

// ExecuteMoves replays a recorded move string: the first performed moves
// are executed, the rest becomes the redo buffer. Used to restore a saved
// in-progress level.
func (cl *CurrentLevel) ExecuteMoves(performed int, moves string) error {
	parsed, err := ParseMoves(moves)
	if err != nil {
		return err
	}
	if performed > len(parsed) {
		performed = len(parsed)
	}
	for _, m := range parsed[:performed] {
		if failed := cl.step(m.Direction, true); failed != nil {
			return fmt.Errorf("replaying move %v: %w", m, failed)
		}
	}
	if performed < len(parsed) {
		cl.log.actions = append([]Move(nil), parsed...)
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
