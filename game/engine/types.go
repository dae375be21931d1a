package engine

import "fmt"

// Background represents the static classification of a grid cell. It is
// fixed when the level is parsed and never changes during play.
type Background uint8

const (
	// BackgroundEmpty marks cells outside the playable interior.
	BackgroundEmpty Background = iota
	BackgroundWall
	BackgroundFloor
	BackgroundGoal
)

// String returns a readable name for the background.
func (b Background) String() string {
	switch b {
	case BackgroundEmpty:
		return "empty"
	case BackgroundWall:
		return "wall"
	case BackgroundFloor:
		return "floor"
	case BackgroundGoal:
		return "goal"
	}
	return fmt.Sprintf("background(%d)", uint8(b))
}

// Direction represents one of the four movement directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions is the fixed neighbour iteration order. Pathfinding tie-breaks
// depend on it, so it must not be reordered.
var Directions = [4]Direction{Left, Right, Up, Down}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "down"
	}
}

// ParseDirection parses a direction name as used by the API layer.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Left, fmt.Errorf("invalid direction %q", s)
}

// Position represents x,y grid coordinates. X grows to the right, Y grows
// downwards, matching the row order of the ASCII level format.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Neighbour returns the adjacent position in the given direction. The
// result may lie outside the grid; callers bounds-check via the level.
func (p Position) Neighbour(d Direction) Position {
	switch d {
	case Left:
		return Position{p.X - 1, p.Y}
	case Right:
		return Position{p.X + 1, p.Y}
	case Up:
		return Position{p.X, p.Y - 1}
	default:
		return Position{p.X, p.Y + 1}
	}
}

// String returns the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Displacement classifies the offset between two positions.
type Displacement uint8

const (
	SamePosition Displacement = iota
	// AxisAligned offsets share a row or column; the distance may be more
	// than one cell.
	AxisAligned
	Diagonal
)

// DirectionTo classifies the offset from one position to another. The
// returned direction is only meaningful when the displacement is
// AxisAligned.
func DirectionTo(from, to Position) (Direction, Displacement) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy == 0:
		return Left, SamePosition
	case dy == 0 && dx < 0:
		return Left, AxisAligned
	case dy == 0 && dx > 0:
		return Right, AxisAligned
	case dx == 0 && dy < 0:
		return Up, AxisAligned
	case dx == 0:
		return Down, AxisAligned
	}
	return Left, Diagonal
}

// Obstacle identifies what blocked a movement.
type Obstacle uint8

const (
	ObstacleWall Obstacle = iota
	ObstacleCrate
)

// String returns a readable name for the obstacle.
func (o Obstacle) String() string {
	if o == ObstacleCrate {
		return "crate"
	}
	return "wall"
}
