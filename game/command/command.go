package command

import (
	"fmt"

	"github.com/wricardo/sokoban/game/engine"
)

// Type identifies a player command.
type Type string

const (
	Nothing             Type = "nothing"
	Step                Type = "step"
	MoveAsFarAsPossible Type = "move_as_far_as_possible"
	MoveToPosition      Type = "move_to_position"
	MoveCrateToTarget   Type = "move_crate_to_target"
	Undo                Type = "undo"
	Redo                Type = "redo"
	ResetLevel          Type = "reset_level"
	NextLevel           Type = "next_level"
	PreviousLevel       Type = "previous_level"
	Save                Type = "save"
	LoadCollection      Type = "load_collection"
	RecordMacro         Type = "record_macro"
	StoreMacro          Type = "store_macro"
	ExecuteMacro        Type = "execute_macro"
)

// Command is one player command. Which fields are meaningful depends on
// Type.
type Command struct {
	Type Type `json:"type"`

	Direction engine.Direction `json:"direction,omitempty"`
	// MayPushCrate distinguishes walking from pushing on the movement
	// commands.
	MayPushCrate bool            `json:"may_push_crate,omitempty"`
	Position     engine.Position `json:"position,omitzero"`
	From         engine.Position `json:"from,omitzero"`
	To           engine.Position `json:"to,omitzero"`
	Collection   string          `json:"collection,omitempty"`
	Slot         uint8           `json:"slot,omitempty"`
}

// IsEmpty reports whether the command does nothing.
func (c Command) IsEmpty() bool { return c.Type == Nothing || c.Type == "" }

// ChangesMacros reports whether the command mutates the macro recorder
// itself. Such commands are never recorded into a macro.
func (c Command) ChangesMacros() bool {
	switch c.Type {
	case RecordMacro, StoreMacro:
		return true
	}
	return false
}

// String returns a compact notation for logs.
func (c Command) String() string {
	switch c.Type {
	case Step:
		return fmt.Sprintf("step %v", c.Direction)
	case MoveAsFarAsPossible:
		return fmt.Sprintf("move %v as far as possible (push=%v)", c.Direction, c.MayPushCrate)
	case MoveToPosition:
		return fmt.Sprintf("move to %v (push=%v)", c.Position, c.MayPushCrate)
	case MoveCrateToTarget:
		return fmt.Sprintf("push crate %v -> %v", c.From, c.To)
	case LoadCollection:
		return fmt.Sprintf("load collection %q", c.Collection)
	case RecordMacro, StoreMacro, ExecuteMacro:
		return fmt.Sprintf("%s %d", c.Type, c.Slot)
	default:
		return string(c.Type)
	}
}
