package engine

import (
	"fmt"
	"strings"
)

// Move records everything needed to perform or revert a single step: the
// direction and whether a crate was pushed.
type Move struct {
	Direction  Direction `json:"direction"`
	MovesCrate bool      `json:"moves_crate"`
}

// Char encodes the move in the standard notation: l/u/r/d for plain steps,
// upper-case for pushes.
func (m Move) Char() byte {
	var c byte
	switch m.Direction {
	case Left:
		c = 'l'
	case Right:
		c = 'r'
	case Up:
		c = 'u'
	default:
		c = 'd'
	}
	if m.MovesCrate {
		c -= 'a' - 'A'
	}
	return c
}

// MoveFromChar decodes a single move character.
func MoveFromChar(c byte) (Move, error) {
	push := c >= 'A' && c <= 'Z'
	if push {
		c += 'a' - 'A'
	}
	var d Direction
	switch c {
	case 'l':
		d = Left
	case 'r':
		d = Right
	case 'u':
		d = Up
	case 'd':
		d = Down
	default:
		return Move{}, fmt.Errorf("invalid move character %q", c)
	}
	return Move{Direction: d, MovesCrate: push}, nil
}

// ParseMoves decodes a move string as produced by MovesToString.
func ParseMoves(s string) ([]Move, error) {
	moves := make([]Move, 0, len(s))
	for i := 0; i < len(s); i++ {
		m, err := MoveFromChar(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// MovesToString encodes a sequence of moves as a single string.
func MovesToString(moves []Move) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, m := range moves {
		sb.WriteByte(m.Char())
	}
	return sb.String()
}
