package save

import "github.com/wricardo/sokoban/game/engine"

// LevelState is the saved state of a single level: either solved with the
// best solutions so far, or started with the move log to resume from.
type LevelState struct {
	Rank     int  `json:"rank"`
	Finished bool `json:"finished"`

	// Set while the level is merely started.
	Moves         string `json:"moves,omitempty"`
	NumberOfMoves int    `json:"number_of_moves,omitempty"`

	// Set once the level is solved.
	LeastMoves  *Solution `json:"least_moves,omitempty"`
	LeastPushes *Solution `json:"least_pushes,omitempty"`
}

// NewSolvedLevelState records a fresh solve; the one solution is the best
// by both measures.
func NewSolvedLevelState(rank int, solution *Solution) LevelState {
	return LevelState{
		Rank:        rank,
		Finished:    true,
		LeastMoves:  solution,
		LeastPushes: solution,
	}
}

// LevelStateFromLevel captures the current level: solved with its
// solution, or started with its move log (including the redo buffer, so
// undone moves survive a restart).
func LevelStateFromLevel(cl *engine.CurrentLevel) LevelState {
	if solution, err := SolutionFromLevel(cl); err == nil {
		return NewSolvedLevelState(cl.Rank(), solution)
	}
	return LevelState{
		Rank:          cl.Rank(),
		Moves:         cl.AllMovesString(),
		NumberOfMoves: cl.NumberOfMoves(),
	}
}

// UpdateResponse tells the caller what a save changed.
type UpdateResponse struct {
	Rank            int  `json:"rank"`
	FirstTimeSolved bool `json:"first_time_solved"`
	ImprovedMoves   bool `json:"improved_moves"`
	ImprovedPushes  bool `json:"improved_pushes"`
}

// CollectionState is the saved state of a whole collection.
type CollectionState struct {
	Name             string       `json:"name"`
	CollectionSolved bool         `json:"collection_solved"`
	Levels           []LevelState `json:"levels"`
}

// NewCollectionState creates an empty state for the named collection.
func NewCollectionState(name string) *CollectionState {
	return &CollectionState{Name: name}
}

// LevelsFinished returns the number of consecutively solved levels from
// the start of the collection, which is where play resumes.
func (cs *CollectionState) LevelsFinished() int {
	for i, level := range cs.Levels {
		if !level.Finished {
			return i
		}
	}
	return len(cs.Levels)
}

// Update merges a level state at the given 0-based index and reports what
// changed. A solved level never regresses to started, and recorded best
// solutions only improve.
func (cs *CollectionState) Update(index int, state LevelState) UpdateResponse {
	for len(cs.Levels) <= index {
		cs.Levels = append(cs.Levels, LevelState{Rank: len(cs.Levels) + 1})
	}

	response := UpdateResponse{Rank: state.Rank}
	old := cs.Levels[index]
	switch {
	case !state.Finished:
		if !old.Finished {
			cs.Levels[index] = state
		}
	case !old.Finished:
		cs.Levels[index] = state
		response.FirstTimeSolved = true
	default:
		response.ImprovedMoves = state.LeastMoves.LessMoves(old.LeastMoves)
		response.ImprovedPushes = state.LeastPushes.LessPushes(old.LeastPushes)
		cs.Levels[index] = LevelState{
			Rank:        state.Rank,
			Finished:    true,
			LeastMoves:  old.LeastMoves.MinMoves(state.LeastMoves),
			LeastPushes: old.LeastPushes.MinPushes(state.LeastPushes),
		}
	}
	return response
}
