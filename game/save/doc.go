// Package save persists playing progress: which levels of a collection
// are solved, the best solutions so far, and the move string of the level
// currently in progress. State is stored as one indented JSON file per
// collection under a data directory.
package save
