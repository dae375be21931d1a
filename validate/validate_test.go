package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/sokoban/game/engine"
)

func writeCollection(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.lvl")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write collection: %v", err)
	}
	return path
}

func TestValidateCollection_Valid(t *testing.T) {
	validCollection := `Test Collection
A small collection for validation tests

#####
#@$.#
#####

 #####
##   #
#@$. #
##   #
 #####
`

	result := validateCollection(writeCollection(t, validCollection))
	if !result.Valid {
		t.Errorf("Expected valid collection, but got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Test Collection") {
		t.Errorf("Expected collection name in report, got: %v", result.Errors)
	}
	if !strings.Contains(joined, "Levels: 2") {
		t.Errorf("Expected level count in report, got: %v", result.Errors)
	}
}

func TestValidateCollection_MissingFile(t *testing.T) {
	result := validateCollection("/non/existent/file.lvl")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Failed to read file") {
		t.Errorf("Expected read error, got: %v", result.Errors)
	}
}

func TestValidateCollection_ParseError(t *testing.T) {
	// Two crates but only one goal.
	broken := `Broken Collection

######
#@$$.#
######
`

	result := validateCollection(writeCollection(t, broken))
	if result.Valid {
		t.Error("Expected invalid result for crate/goal mismatch")
	}
	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Parse error") {
		t.Errorf("Expected parse error in report, got: %v", result.Errors)
	}
}

func TestValidateCollection_NoLevels(t *testing.T) {
	result := validateCollection(writeCollection(t, "Just A Title\n"))
	if result.Valid {
		t.Error("Expected invalid result for collection without levels")
	}
}

func TestCheckLevel_UnreachableCrate(t *testing.T) {
	// The wall column cuts the crate and goal off from the worker.
	level, err := engine.ParseLevel(1, strings.Join([]string{
		"#######",
		"#@# $.#",
		"#######",
	}, "\n"))
	if err != nil {
		t.Fatalf("Failed to parse level: %v", err)
	}

	problems := checkLevel(level)
	if len(problems) == 0 {
		t.Fatal("Expected problems for unreachable crate and goal")
	}
	joined := strings.Join(problems, "\n")
	if !strings.Contains(joined, "crate 0") {
		t.Errorf("Expected unreachable crate report, got: %v", problems)
	}
	if !strings.Contains(joined, "goal at") {
		t.Errorf("Expected unreachable goal report, got: %v", problems)
	}
}

func TestCheckLevel_AlreadySolved(t *testing.T) {
	level, err := engine.ParseLevel(1, strings.Join([]string{
		"#####",
		"#@* #",
		"#####",
	}, "\n"))
	if err != nil {
		t.Fatalf("Failed to parse level: %v", err)
	}

	problems := checkLevel(level)
	if len(problems) != 1 || !strings.Contains(problems[0], "already solved") {
		t.Errorf("Expected already-solved report, got: %v", problems)
	}
}

func TestCheckLevel_Clean(t *testing.T) {
	level, err := engine.ParseLevel(1, strings.Join([]string{
		"#####",
		"#@$.#",
		"#####",
	}, "\n"))
	if err != nil {
		t.Fatalf("Failed to parse level: %v", err)
	}

	if problems := checkLevel(level); len(problems) != 0 {
		t.Errorf("Expected no problems, got: %v", problems)
	}
}

func TestFloodFill(t *testing.T) {
	level, err := engine.ParseLevel(1, strings.Join([]string{
		"#####",
		"#@$.#",
		"#####",
	}, "\n"))
	if err != nil {
		t.Fatalf("Failed to parse level: %v", err)
	}

	reachable := floodFill(level)

	// The three interior cells of the corridor.
	for x := 1; x <= 3; x++ {
		if !reachable[engine.Position{X: x, Y: 1}] {
			t.Errorf("Expected (%d,1) to be reachable", x)
		}
	}
	if reachable[engine.Position{X: 0, Y: 0}] {
		t.Error("Wall corner should not be reachable")
	}
}
