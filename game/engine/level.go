package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors returned by NewLevel and ParseLevel. They are fatal
// to loading the affected level.
var (
	ErrNoLevel           = errors.New("level description is empty")
	ErrNoWorker          = errors.New("level contains no worker")
	ErrTwoWorkers        = errors.New("level contains more than one worker")
	ErrCrateGoalMismatch = errors.New("number of crates and goals does not match")
)

// Level is the immutable template of a parsed level. CurrentLevel shares
// the background by reference and copies the dynamic parts, so a Level can
// back any number of concurrent plays.
type Level struct {
	rank    int
	columns int
	rows    int

	// background holds columns*rows cells in row-major order.
	background []Background
	crates     map[Position]int
	worker     Position
}

// NewLevel builds a level from an already-classified grid. The crates map
// assigns a stable id to each crate starting position. Invariants that
// cannot hold during play (mismatched crate/goal counts, worker outside
// the interior) are rejected here.
func NewLevel(rank, columns, rows int, background []Background, crates map[Position]int, worker Position) (*Level, error) {
	if columns == 0 || rows == 0 || len(background) != columns*rows {
		return nil, fmt.Errorf("level #%d: %w", rank, ErrNoLevel)
	}
	l := &Level{
		rank:       rank,
		columns:    columns,
		rows:       rows,
		background: background,
		crates:     crates,
		worker:     worker,
	}
	if !l.IsInterior(worker) {
		return nil, fmt.Errorf("level #%d: worker at %v is not on a floor or goal cell", rank, worker)
	}
	goals := 0
	for _, b := range background {
		if b == BackgroundGoal {
			goals++
		}
	}
	if goals != len(crates) {
		return nil, fmt.Errorf("level #%d: %d crates, %d goals: %w", rank, len(crates), goals, ErrCrateGoalMismatch)
	}
	for pos := range crates {
		if !l.IsInterior(pos) {
			return nil, fmt.Errorf("level #%d: crate at %v is not on a floor or goal cell", rank, pos)
		}
	}
	return l, nil
}

// Rank returns the 1-based number of the level within its collection.
func (l *Level) Rank() int { return l.rank }

// Columns returns the width of the grid.
func (l *Level) Columns() int { return l.columns }

// Rows returns the height of the grid.
func (l *Level) Rows() int { return l.rows }

// WorkerPosition returns the worker's starting position.
func (l *Level) WorkerPosition() Position { return l.worker }

// InBounds reports whether the position lies on the grid.
func (l *Level) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < l.columns && pos.Y >= 0 && pos.Y < l.rows
}

// Background returns the static cell at pos. Out-of-bounds positions read
// as empty.
func (l *Level) Background(pos Position) Background {
	if !l.InBounds(pos) {
		return BackgroundEmpty
	}
	return l.background[pos.Y*l.columns+pos.X]
}

// IsInterior reports whether pos is a walkable cell (floor or goal).
func (l *Level) IsInterior(pos Position) bool {
	b := l.Background(pos)
	return b == BackgroundFloor || b == BackgroundGoal
}

// IsOutside reports whether pos is off-grid or outside the walls.
func (l *Level) IsOutside(pos Position) bool {
	return l.Background(pos) == BackgroundEmpty
}

// NumberOfCrates returns how many crates the level contains.
func (l *Level) NumberOfCrates() int { return len(l.crates) }

// CratePositions returns the starting position of each crate, indexed by
// crate id.
func (l *Level) CratePositions() []Position {
	crates := make([]Position, len(l.crates))
	for pos, id := range l.crates {
		crates[id] = pos
	}
	return crates
}

// render draws the level in the ASCII format with the given dynamic worker
// and crate positions.
func (l *Level) render(worker Position, crateAt map[Position]int) string {
	var sb strings.Builder
	sb.Grow((l.columns + 1) * l.rows)
	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.columns; x++ {
			pos := Position{x, y}
			_, crate := crateAt[pos]
			sb.WriteByte(cellChar(l.Background(pos), crate, pos == worker))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellChar(b Background, crate, worker bool) byte {
	switch b {
	case BackgroundWall:
		return '#'
	case BackgroundGoal:
		switch {
		case crate:
			return '*'
		case worker:
			return '+'
		default:
			return '.'
		}
	default:
		switch {
		case crate:
			return '$'
		case worker:
			return '@'
		default:
			return ' '
		}
	}
}

// String renders the level template in the same ASCII format it was parsed
// from.
func (l *Level) String() string {
	crateAt := make(map[Position]int, len(l.crates))
	for pos, id := range l.crates {
		crateAt[pos] = id
	}
	return l.render(l.worker, crateAt)
}
