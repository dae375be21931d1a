// Package session manages the lifecycle of play sessions: creation with
// generated IDs, lookup, expiry cleanup, and optional file persistence.
// A session's game progress is saved continuously by the play layer into
// the session's own data directory; the persistence here only records
// which session plays which collection, enough to rebuild the game after
// a restart.
package session
