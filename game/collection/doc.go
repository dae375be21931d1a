// Package collection loads Sokoban level collections from .lvl files.
//
// A .lvl file starts with a header block (collection name on the first
// line, free-form description on the following lines) and continues with
// one ASCII level per blank-line-separated block. The Manager caches
// parsed collections from a levels directory and tracks a default
// collection for new sessions.
package collection
