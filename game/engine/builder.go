package engine

import (
	"fmt"
	"strings"
)

// ParseLevel parses the ASCII level format:
//
//	#  wall        .  goal
//	$  crate       *  crate on goal
//	@  worker      +  worker on goal
//
// Blanks are floor inside the walls and empty outside. Which is which is
// decided in two passes: a blank left of the first wall in its row is
// assumed outside, then a reachability pass corrects floor cells that
// cannot be reached from the worker, a crate, or a goal.
func ParseLevel(rank int, s string) (*Level, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	columns := 0
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
		if len(lines[i]) > columns {
			columns = len(lines[i])
		}
	}
	rows := len(lines)
	if columns == 0 {
		return nil, fmt.Errorf("level #%d: %w", rank, ErrNoLevel)
	}

	background := make([]Background, columns*rows)
	crates := make(map[Position]int)
	var worker Position
	workerSeen := false

	for y, line := range lines {
		insideHint := false
		for x := 0; x < len(line); x++ {
			pos := Position{x, y}
			var cell Background
			switch line[x] {
			case '#':
				insideHint = true
				cell = BackgroundWall
			case ' ':
				if insideHint {
					cell = BackgroundFloor
				} else {
					cell = BackgroundEmpty
				}
			case '$':
				cell = BackgroundFloor
				crates[pos] = len(crates)
			case '@':
				if workerSeen {
					return nil, fmt.Errorf("level #%d: %w", rank, ErrTwoWorkers)
				}
				cell = BackgroundFloor
				worker, workerSeen = pos, true
			case '.':
				cell = BackgroundGoal
			case '*':
				cell = BackgroundGoal
				crates[pos] = len(crates)
			case '+':
				if workerSeen {
					return nil, fmt.Errorf("level #%d: %w", rank, ErrTwoWorkers)
				}
				cell = BackgroundGoal
				worker, workerSeen = pos, true
			default:
				return nil, fmt.Errorf("level #%d: invalid character %q at row %d, column %d", rank, line[x], y, x)
			}
			background[y*columns+x] = cell
		}
	}

	if !workerSeen {
		return nil, fmt.Errorf("level #%d: %w", rank, ErrNoWorker)
	}

	correctOutsideCells(background, columns, rows, worker, crates)

	return NewLevel(rank, columns, rows, background, crates, worker)
}

// correctOutsideCells reclassifies floor cells that are unreachable from
// the worker, any crate, or any goal back to empty. The row heuristic in
// ParseLevel misclassifies blanks right of a wall that belongs to another
// room; this pass fixes them.
func correctOutsideCells(background []Background, columns, rows int, worker Position, crates map[Position]int) {
	inside := make([]bool, len(background))
	queue := make([]Position, 0, len(crates)+1)

	seed := func(pos Position) {
		i := pos.Y*columns + pos.X
		if !inside[i] {
			inside[i] = true
			queue = append(queue, pos)
		}
	}
	seed(worker)
	for pos := range crates {
		seed(pos)
	}
	for i, b := range background {
		if b == BackgroundGoal {
			seed(Position{i % columns, i / columns})
		}
	}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := pos.Neighbour(d)
			if n.X < 0 || n.X >= columns || n.Y < 0 || n.Y >= rows {
				continue
			}
			i := n.Y*columns + n.X
			if inside[i] || background[i] == BackgroundWall || background[i] == BackgroundEmpty {
				continue
			}
			inside[i] = true
			queue = append(queue, n)
		}
	}

	for i, b := range background {
		if b == BackgroundFloor && !inside[i] {
			background[i] = BackgroundEmpty
		}
	}
}
