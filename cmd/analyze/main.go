// Command analyze prints quick, human-readable statistics about the .lvl
// collections in a levels directory. It summarizes per-collection level
// counts and, per level, grid dimensions, crate counts, interior size, and
// how many crates start on a goal. Levels where a crate sits in a corner
// away from any goal are flagged as likely deadlocked from the start.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/engine"
)

// LevelStats aggregates the per-level numbers the report prints.
type LevelStats struct {
	Rank          int
	Columns       int
	Rows          int
	Crates        int
	Interior      int
	SolvedAtStart int
	CornerCrates  []engine.Position
}

func main() {
	levelsDir := "assets/levels"
	if len(os.Args) > 1 {
		levelsDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(levelsDir, "*.lvl"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No .lvl files found in %s\n", levelsDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeCollection(file)
	}
}

func analyzeCollection(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	shortName := strings.TrimSuffix(filepath.Base(path), ".lvl")
	coll, err := collection.Parse(shortName, string(data))
	if err != nil {
		fmt.Printf("Error parsing collection: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", coll.Name)
	if coll.Description != "" {
		fmt.Printf("Description: %s\n", coll.Description)
	}
	fmt.Printf("Levels: %d\n", coll.NumberOfLevels())

	for _, level := range coll.Levels() {
		stats := analyzeLevel(level)

		fmt.Printf("\nLevel %d: %dx%d, %d crates, %d interior cells\n",
			stats.Rank, stats.Columns, stats.Rows, stats.Crates, stats.Interior)
		if stats.SolvedAtStart > 0 {
			fmt.Printf("  %d/%d crates start on a goal\n", stats.SolvedAtStart, stats.Crates)
		}

		if len(stats.CornerCrates) > 0 {
			fmt.Printf("⚠️  WARNING: %d crates start in a corner off any goal (dead from move one)\n", len(stats.CornerCrates))
			for i, p := range stats.CornerCrates {
				if i < 5 { // Show first 5 stuck crates
					fmt.Printf("   Corner crate: (%d, %d)\n", p.X, p.Y)
				}
			}
			if len(stats.CornerCrates) > 5 {
				fmt.Printf("   ... and %d more\n", len(stats.CornerCrates)-5)
			}
		} else {
			fmt.Printf("✅ No crate starts in a dead corner\n")
		}
	}
}

func analyzeLevel(level *engine.Level) LevelStats {
	stats := LevelStats{
		Rank:    level.Rank(),
		Columns: level.Columns(),
		Rows:    level.Rows(),
		Crates:  level.NumberOfCrates(),
	}

	for y := 0; y < level.Rows(); y++ {
		for x := 0; x < level.Columns(); x++ {
			if level.IsInterior(engine.Position{X: x, Y: y}) {
				stats.Interior++
			}
		}
	}

	for _, pos := range level.CratePositions() {
		onGoal := level.Background(pos) == engine.BackgroundGoal
		if onGoal {
			stats.SolvedAtStart++
		}
		if !onGoal && isCorner(level, pos) {
			stats.CornerCrates = append(stats.CornerCrates, pos)
		}
	}

	return stats
}

// isCorner reports whether the position is blocked on two orthogonally
// adjacent sides. A crate there can never move again.
func isCorner(level *engine.Level, pos engine.Position) bool {
	blocked := func(d engine.Direction) bool {
		return !level.IsInterior(pos.Neighbour(d))
	}
	horizontal := blocked(engine.Left) || blocked(engine.Right)
	vertical := blocked(engine.Up) || blocked(engine.Down)
	return horizontal && vertical
}
