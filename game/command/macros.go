package command

import "fmt"

// NumberOfMacros is how many macro slots a game carries.
const NumberOfMacros = 12

// Macros records command sequences into numbered slots. Recording
// buffers commands until Store assigns them to the chosen slot.
type Macros struct {
	// tmp buffers the commands of the recording in progress.
	tmp []Command
	// slot is the target of the recording in progress, -1 when idle.
	slot  int
	saved [NumberOfMacros][]Command
}

// NewMacros returns an idle recorder with empty slots.
func NewMacros() *Macros {
	return &Macros{slot: -1}
}

// Recording reports whether a recording is in progress.
func (m *Macros) Recording() bool { return m.slot != -1 }

// Record starts recording into the given slot. A recording already in
// progress is stored first.
func (m *Macros) Record(slot uint8) error {
	if slot >= NumberOfMacros {
		return fmt.Errorf("macro slot %d out of range", slot)
	}
	if m.Recording() {
		m.Store()
	}
	m.slot = int(slot)
	m.tmp = nil
	return nil
}

// Push appends a command to the recording in progress. Commands that
// change the recorder itself are skipped, which keeps macros from
// recursively recording. Reports whether the command was taken.
func (m *Macros) Push(c Command) bool {
	if !m.Recording() || c.IsEmpty() || c.ChangesMacros() {
		return false
	}
	m.tmp = append(m.tmp, c)
	return true
}

// Store finishes the recording in progress and returns the number of
// commands stored, 0 when idle.
func (m *Macros) Store() int {
	if !m.Recording() {
		return 0
	}
	m.saved[m.slot] = m.tmp
	n := len(m.tmp)
	m.tmp = nil
	m.slot = -1
	return n
}

// Get returns the commands stored in a slot.
func (m *Macros) Get(slot uint8) []Command {
	if slot >= NumberOfMacros {
		return nil
	}
	return m.saved[slot]
}
