package engine

// moveLog is the ordered record of executed moves plus a cursor separating
// committed moves from entries available to redo. actions[:performed] have
// been executed; actions[performed:] is the redo buffer.
type moveLog struct {
	actions   []Move
	performed int
}

// record appends a move at the cursor. Recording the exact move that sits
// at the cursor keeps the redo buffer intact; recording a different move
// discards everything from the cursor on.
func (l *moveLog) record(m Move) {
	if l.performed < len(l.actions) && l.actions[l.performed] == m {
		l.performed++
		return
	}
	l.actions = append(l.actions[:l.performed], m)
	l.performed++
}

// undo steps the cursor back and returns the move to revert.
func (l *moveLog) undo() (Move, bool) {
	if l.performed == 0 {
		return Move{}, false
	}
	l.performed--
	return l.actions[l.performed], true
}

// redo returns the next buffered move and advances the cursor.
func (l *moveLog) redo() (Move, bool) {
	if l.performed == len(l.actions) {
		return Move{}, false
	}
	m := l.actions[l.performed]
	l.performed++
	return m, true
}

// numberOfMoves returns how many moves are committed.
func (l *moveLog) numberOfMoves() int { return l.performed }

// numberOfPushes returns how many committed moves pushed a crate.
func (l *moveLog) numberOfPushes() int {
	pushes := 0
	for _, m := range l.actions[:l.performed] {
		if m.MovesCrate {
			pushes++
		}
	}
	return pushes
}

// lastMove returns the most recently committed move.
func (l *moveLog) lastMove() (Move, bool) {
	if l.performed == 0 {
		return Move{}, false
	}
	return l.actions[l.performed-1], true
}

// committed returns the committed prefix of the log.
func (l *moveLog) committed() []Move { return l.actions[:l.performed] }

// all returns every logged move including the redo buffer.
func (l *moveLog) all() []Move { return l.actions }
