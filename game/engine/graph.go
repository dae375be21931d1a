package engine

import "fmt"

// crateGraph is the directed reachability graph of a single crate: an edge
// pos -> n exists when the crate can be pushed from pos onto n, i.e. n is
// free and the worker could stand on the cell opposite n. The graph is
// built per query and thrown away.
type crateGraph struct {
	neighbours map[Position][]Position
}

// buildCrateGraph explores every cell the crate at start could be pushed
// through. A cell counts as standable for the worker when it is empty or
// is the crate's own starting cell, which the crate vacates on the first
// push.
func (cl *CurrentLevel) buildCrateGraph(start Position) *crateGraph {
	g := &crateGraph{neighbours: make(map[Position][]Position)}
	visited := make(map[Position]bool)
	queue := []Position{start}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if visited[pos] {
			continue
		}
		visited[pos] = true
		if _, ok := g.neighbours[pos]; !ok {
			g.neighbours[pos] = nil
		}
		for _, n := range cl.emptyNeighbours(pos) {
			dir, kind := DirectionTo(n, pos)
			if kind != AxisAligned {
				panic(fmt.Sprintf("neighbour %v of %v is not adjacent", n, pos))
			}
			// The worker pushes from the far side of pos.
			opposite := pos.Neighbour(dir)
			if !cl.isEmpty(opposite) && opposite != start {
				continue
			}
			g.neighbours[pos] = append(g.neighbours[pos], n)
			queue = append(queue, n)
		}
	}
	return g
}

// predecessors runs a BFS from from and records, for every reached cell,
// the cells it was discovered from in visit order.
func (g *crateGraph) predecessors(from Position) map[Position][]Position {
	preds := make(map[Position][]Position, len(g.neighbours))
	visited := make(map[Position]bool)
	queue := []Position{from}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if visited[pos] {
			continue
		}
		visited[pos] = true
		for _, n := range g.neighbours[pos] {
			preds[n] = append(preds[n], pos)
			if !visited[n] {
				queue = append(queue, n)
			}
		}
	}
	return preds
}

// findCratePath reconstructs a shortest push path from from to to by
// walking first-discovered predecessors back from the target. Returns nil
// when the target is not in the graph.
func (g *crateGraph) findCratePath(from, to Position) *Path {
	if _, ok := g.neighbours[to]; !ok {
		return nil
	}

	preds := g.predecessors(from)
	positions := []Position{to}
	for positions[len(positions)-1] != from {
		pos := positions[len(positions)-1]
		ps, ok := preds[pos]
		if !ok {
			return nil
		}
		positions = append(positions, ps[0])
	}

	path := &Path{Start: from, Steps: make([]Move, 0, len(positions)-1)}
	for i := len(positions) - 1; i > 0; i-- {
		dir, kind := DirectionTo(positions[i], positions[i-1])
		if kind != AxisAligned {
			panic(fmt.Sprintf("crate path step %v -> %v is not axis-aligned", positions[i], positions[i-1]))
		}
		path.Steps = append(path.Steps, Move{Direction: dir, MovesCrate: true})
	}
	return path
}
