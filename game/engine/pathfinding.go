package engine

import (
	"fmt"
	"math"
)

// Path is an ordered sequence of moves starting at a fixed position.
type Path struct {
	Start Position
	Steps []Move
}

// FindPath returns a shortest free-walk path from the worker to to,
// ignoring crates as intermediate obstacles only insofar as they block
// cells. A target equal to the worker's position or not empty yields the
// trivial empty path. When the target is unreachable a no-path-found
// event is emitted and nil returned.
//
// The search runs backwards from the target so the forward path falls out
// of a single descent over the distance field. Ties between equally short
// neighbours resolve in the fixed Directions order.
func (cl *CurrentLevel) FindPath(to Position) *Path {
	if cl.worker == to || !cl.isEmpty(to) {
		return &Path{Start: cl.worker}
	}

	distances := make([]int, cl.level.columns*cl.level.rows)
	for i := range distances {
		distances[i] = math.MaxInt
	}
	index := func(pos Position) int { return pos.Y*cl.level.columns + pos.X }
	distances[index(to)] = 0

	queue := []Position{to}
	found := false
	for len(queue) > 0 && !found {
		pos := queue[0]
		queue = queue[1:]
		for _, n := range cl.emptyNeighbours(pos) {
			if distances[index(n)] != math.MaxInt {
				continue
			}
			distances[index(n)] = distances[index(pos)] + 1
			if n == cl.worker {
				found = true
				break
			}
			queue = append(queue, n)
		}
	}
	if !found {
		cl.notify(Event{Type: EventNoPathFound})
		return nil
	}

	path := &Path{Start: cl.worker, Steps: make([]Move, 0, distances[index(cl.worker)])}
	pos := cl.worker
	for pos != to {
		current := distances[index(pos)]
		for _, d := range Directions {
			n := pos.Neighbour(d)
			if !cl.level.InBounds(n) || distances[index(n)] >= current {
				continue
			}
			path.Steps = append(path.Steps, Move{Direction: d})
			pos = n
			break
		}
	}
	return path
}

// followPath walks the worker along a path produced by FindPath. The path
// was verified against the current state, so every step must succeed.
func (cl *CurrentLevel) followPath(path *Path) {
	if cl.worker != path.Start {
		panic(fmt.Sprintf("following path starting at %v from %v", path.Start, cl.worker))
	}
	for _, m := range path.Steps {
		cl.mustStep(m.Direction, true)
	}
}

// FindPathWithCrate returns a shortest push sequence bringing the crate at
// from to to, or nil when none exists. Preconditions (from holds a crate,
// to is empty, the two differ) and unreachable targets are reported via a
// no-path-found event.
func (cl *CurrentLevel) FindPathWithCrate(from, to Position) *Path {
	switch {
	case from == to:
		cl.notify(Event{Type: EventNoPathFound, Reason: "crate is already there"})
		return nil
	case !cl.IsCrate(from):
		cl.notify(Event{Type: EventNoPathFound, Reason: fmt.Sprintf("no crate at %v", from)})
		return nil
	case !cl.isEmpty(to):
		cl.notify(Event{Type: EventNoPathFound, Reason: fmt.Sprintf("target %v is not free", to)})
		return nil
	}

	path := cl.buildCrateGraph(from).findCratePath(from, to)
	if path == nil {
		cl.notify(Event{Type: EventNoPathFound})
	}
	return path
}

// pushCrateAlongPath executes a crate path: walk the worker behind the
// crate, push one cell, repeat. Returns false when the worker cannot
// reach a pushing position.
func (cl *CurrentLevel) pushCrateAlongPath(path *Path) bool {
	if len(path.Steps) == 0 {
		panic("crate path with no steps")
	}
	cratePos := path.Start
	for _, m := range path.Steps {
		if !cl.moveWorkerBehindCrate(cratePos, m.Direction) {
			return false
		}
		cl.mustStep(m.Direction, true)
		cratePos = cratePos.Neighbour(m.Direction)
	}
	return true
}

// moveWorkerBehindCrate walks the worker to the cell from which it can
// push the crate at cratePos in direction dir.
func (cl *CurrentLevel) moveWorkerBehindCrate(cratePos Position, dir Direction) bool {
	target := cratePos.Neighbour(dir.Reverse())
	path := cl.FindPath(target)
	if path == nil {
		return false
	}
	cl.followPath(path)
	return true
}
