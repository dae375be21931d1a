// Command validate provides a small CLI that validates .lvl collection files
// in the ../assets/levels directory (or one given as argument). It checks:
//   - Collection structure (title block plus at least one level)
//   - Level parsing: exactly one worker, matching crate/goal counts,
//     worker and crates on interior cells
//   - Connectivity: all crates and goals are reachable from the worker
//     via interior cells (ignoring crates)
//   - Levels that start already solved
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateCollection loads and validates a single .lvl file. Parse errors
// abort the file; a parsed collection additionally gets per-level
// connectivity checks.
func validateCollection(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	shortName := strings.TrimSuffix(filepath.Base(filePath), ".lvl")
	coll, err := collection.Parse(shortName, string(data))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Parse error: %v", err))
		return result
	}

	if coll.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Collection has no title")
	}

	for _, level := range coll.Levels() {
		for _, problem := range checkLevel(level) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Level %d: %s", level.Rank(), problem))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", coll.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Levels: %d", coll.NumberOfLevels()))
		for _, level := range coll.Levels() {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Level %d: %dx%d, %d crates",
				level.Rank(), level.Columns(), level.Rows(), level.NumberOfCrates()))
		}
	}

	return result
}

// checkLevel runs the checks the parser does not enforce: every crate and
// every goal must be reachable from the worker, and a level should not
// start already solved.
func checkLevel(level *engine.Level) []string {
	var problems []string

	reachable := floodFill(level)

	for id, pos := range level.CratePositions() {
		if !reachable[pos] {
			problems = append(problems, fmt.Sprintf("crate %d at (%d,%d) is unreachable from the worker", id, pos.X, pos.Y))
		}
	}

	goalsOnCrates := 0
	for y := 0; y < level.Rows(); y++ {
		for x := 0; x < level.Columns(); x++ {
			pos := engine.Position{X: x, Y: y}
			if level.Background(pos) != engine.BackgroundGoal {
				continue
			}
			if !reachable[pos] {
				problems = append(problems, fmt.Sprintf("goal at (%d,%d) is unreachable from the worker", x, y))
			}
			for _, crate := range level.CratePositions() {
				if crate == pos {
					goalsOnCrates++
				}
			}
		}
	}

	if level.NumberOfCrates() > 0 && goalsOnCrates == level.NumberOfCrates() {
		problems = append(problems, "level starts already solved")
	}

	return problems
}

// floodFill returns the set of interior cells reachable from the worker's
// starting position, ignoring crates. Crates can at worst be pushed out of
// the way, so this is the widest area play can touch.
func floodFill(level *engine.Level) map[engine.Position]bool {
	visited := make(map[engine.Position]bool)
	queue := []engine.Position{level.WorkerPosition()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, dir := range engine.Directions {
			next := current.Neighbour(dir)
			if !visited[next] && level.IsInterior(next) {
				queue = append(queue, next)
			}
		}
	}

	return visited
}

// main scans the levels directory for *.lvl files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	levelsDir := "../assets/levels"
	if len(os.Args) > 1 {
		levelsDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(levelsDir, "*.lvl"))
	if err != nil {
		fmt.Printf("Error finding level files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No .lvl files found in %s\n", levelsDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateCollection(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All collections are valid!")
	} else {
		fmt.Println("❌ Some collections have errors")
		os.Exit(1)
	}
}
