// Package engine provides the core Sokoban rules engine.
//
// The engine package implements the puzzle mechanics including:
//   - Grid model and ASCII level parsing
//   - Worker movement and crate pushing with collision rules
//   - Unlimited undo/redo backed by a move log
//   - Free-walk pathfinding (shortest walk to a cell)
//   - Crate pathfinding (shortest push sequence for a single crate)
//
// Core Types:
//
// Level is the immutable template produced by ParseLevel. CurrentLevel is
// the live state of a level being played; it shares the Level's static
// background and owns the dynamic parts (worker, crates, move log).
//
// Usage:
//
//	level, err := engine.ParseLevel(1, "#####\n#@$.#\n#####")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	current := engine.NewCurrentLevel(level)
//	current.Subscribe(func(ev engine.Event) { log.Println(ev.Type) })
//	current.Step(engine.Right)
//
// Game Rules:
//
// The worker walks on floor and goal cells. Walking into a crate pushes it
// one cell in the same direction, provided the cell behind the crate is
// free. At most one crate moves per step. The level is finished when every
// goal cell holds a crate. Listeners observe every worker and crate
// relocation as well as failure notifications; delivery is synchronous and
// in the order the changes happened.
package engine
