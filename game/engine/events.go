package engine

// EventType identifies the kind of change or failure an Event reports.
type EventType string

const (
	// EventWorkerMoved and EventCrateMoved report successful relocations.
	// When a step pushes a crate the worker event is delivered first,
	// then the crate event.
	EventWorkerMoved EventType = "worker_moved"
	EventCrateMoved  EventType = "crate_moved"

	// EventLevelFinished fires on the push that fills the last goal.
	EventLevelFinished EventType = "level_finished"

	// EventMoveBlocked reports a step that could not be performed. No
	// state changed.
	EventMoveBlocked EventType = "move_blocked"

	// EventNoPathFound reports a failed pathfinding query, free-walk or
	// crate-push.
	EventNoPathFound EventType = "no_path_found"

	// EventPushAxisRequired reports a push request towards a target that
	// is neither on the worker's row nor column.
	EventPushAxisRequired EventType = "push_axis_required"

	EventNothingToUndo EventType = "nothing_to_undo"
	EventNothingToRedo EventType = "nothing_to_redo"
)

// Event is a single notification from a CurrentLevel. Which fields are
// meaningful depends on Type.
type Event struct {
	Type      EventType `json:"type"`
	From      Position  `json:"from,omitzero"`
	To        Position  `json:"to,omitzero"`
	Direction Direction `json:"direction"`
	CrateID   int       `json:"crate_id,omitempty"`
	Obstacle  Obstacle  `json:"obstacle,omitempty"`
	WithCrate bool      `json:"with_crate,omitempty"`
	Reason    string    `json:"reason,omitempty"`

	// Set on level_finished.
	Moves    int    `json:"moves,omitempty"`
	Pushes   int    `json:"pushes,omitempty"`
	Solution string `json:"solution,omitempty"`
}

// IsFailure reports whether the event signals that a requested operation
// did not happen.
func (e Event) IsFailure() bool {
	switch e.Type {
	case EventMoveBlocked, EventNoPathFound, EventPushAxisRequired, EventNothingToUndo, EventNothingToRedo:
		return true
	}
	return false
}

// Listener receives events synchronously, in the order the changes
// happened. Listeners must not mutate the level from inside the callback.
type Listener func(Event)
