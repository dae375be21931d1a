// Package command defines the vocabulary of player commands dispatched
// against a running game, plus a macro recorder that stores command
// sequences in numbered slots for replay.
package command
