// Package play runs one playthrough of a level collection: it owns the
// current level, dispatches player commands against the engine, records
// macros, and saves progress and highscores through the save package.
// Each play session gets its own Game; the engine below it stays
// single-threaded.
package play
