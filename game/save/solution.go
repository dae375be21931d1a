package save

import (
	"errors"

	"github.com/wricardo/sokoban/game/engine"
)

// ErrNotFinished is returned when a solution is requested for a level
// that is not solved yet.
var ErrNotFinished = errors.New("level is not finished")

// Solution is one complete solution of a level.
type Solution struct {
	NumberOfMoves  int    `json:"number_of_moves"`
	NumberOfPushes int    `json:"number_of_pushes"`
	Steps          string `json:"steps"`
}

// SolutionFromLevel captures the committed moves of a finished level.
func SolutionFromLevel(cl *engine.CurrentLevel) (*Solution, error) {
	if !cl.IsFinished() {
		return nil, ErrNotFinished
	}
	return &Solution{
		NumberOfMoves:  cl.NumberOfMoves(),
		NumberOfPushes: cl.NumberOfPushes(),
		Steps:          cl.MovesString(),
	}, nil
}

// LessMoves reports whether s beats other on moves, pushes breaking ties.
func (s *Solution) LessMoves(other *Solution) bool {
	if s.NumberOfMoves != other.NumberOfMoves {
		return s.NumberOfMoves < other.NumberOfMoves
	}
	return s.NumberOfPushes < other.NumberOfPushes
}

// LessPushes reports whether s beats other on pushes, moves breaking ties.
func (s *Solution) LessPushes(other *Solution) bool {
	if s.NumberOfPushes != other.NumberOfPushes {
		return s.NumberOfPushes < other.NumberOfPushes
	}
	return s.NumberOfMoves < other.NumberOfMoves
}

// MinMoves returns the solution with fewer moves.
func (s *Solution) MinMoves(other *Solution) *Solution {
	if other.LessMoves(s) {
		return other
	}
	return s
}

// MinPushes returns the solution with fewer pushes.
func (s *Solution) MinPushes(other *Solution) *Solution {
	if other.LessPushes(s) {
		return other
	}
	return s
}
