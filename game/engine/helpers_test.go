package engine

import "testing"

// mustLevel parses a level and starts a play, failing the test on any
// construction error.
func mustLevel(t *testing.T, s string) *CurrentLevel {
	t.Helper()
	level, err := ParseLevel(1, s)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	return NewCurrentLevel(level)
}

// recordEvents subscribes a collector and returns the slice it fills.
func recordEvents(cl *CurrentLevel) *[]Event {
	events := &[]Event{}
	cl.Subscribe(func(ev Event) {
		*events = append(*events, ev)
	})
	return events
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func sameTypes(got []EventType, want ...EventType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
