// Package service defines the application-facing API of the Sokoban
// server: session lifecycle, command execution against a session's game,
// level snapshots, move history, and collection listing. The interfaces
// here are implemented by the session and collection packages and wired
// together in main.
package service
