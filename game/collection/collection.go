package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wricardo/sokoban/game/engine"
)

var (
	ErrEmptyCollection = errors.New("collection contains no levels")
	ErrNoSuchLevel     = errors.New("no such level")
)

// Info describes a collection without its levels, for listings.
type Info struct {
	Filename    string `json:"filename"`
	ShortName   string `json:"short_name"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Levels      int    `json:"levels"`
}

// Collection is a named, ordered set of levels parsed from one .lvl file.
type Collection struct {
	// ShortName is the file name without extension; it identifies the
	// collection in the API and keys its save state.
	ShortName   string
	Name        string
	Description string

	levels []*engine.Level
}

// Parse reads a .lvl document. Levels that fail to parse abort the whole
// collection; a broken file should be noticed, not half-loaded.
func Parse(shortName, data string) (*Collection, error) {
	blocks := splitBlocks(data)
	if len(blocks) < 2 {
		return nil, fmt.Errorf("collection %q: %w", shortName, ErrEmptyCollection)
	}

	name, description, _ := strings.Cut(blocks[0], "\n")
	c := &Collection{
		ShortName:   shortName,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		levels:      make([]*engine.Level, 0, len(blocks)-1),
	}
	for i, block := range blocks[1:] {
		level, err := engine.ParseLevel(i+1, block)
		if err != nil {
			return nil, fmt.Errorf("collection %q: %w", shortName, err)
		}
		c.levels = append(c.levels, level)
	}
	return c, nil
}

// splitBlocks splits the document on blank lines, dropping empty blocks.
func splitBlocks(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	var blocks []string
	for _, block := range strings.Split(data, "\n\n") {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, strings.Trim(block, "\n"))
		}
	}
	return blocks
}

// NumberOfLevels returns how many levels the collection holds.
func (c *Collection) NumberOfLevels() int { return len(c.levels) }

// Level returns the level with the given 1-based rank.
func (c *Collection) Level(rank int) (*engine.Level, error) {
	if rank < 1 || rank > len(c.levels) {
		return nil, fmt.Errorf("%w: rank %d of %d", ErrNoSuchLevel, rank, len(c.levels))
	}
	return c.levels[rank-1], nil
}

// Levels returns all levels in rank order.
func (c *Collection) Levels() []*engine.Level {
	levels := make([]*engine.Level, len(c.levels))
	copy(levels, c.levels)
	return levels
}

// Info returns the listing entry for the collection.
func (c *Collection) Info() *Info {
	return &Info{
		Filename:    c.ShortName + ".lvl",
		ShortName:   c.ShortName,
		Name:        c.Name,
		Description: c.Description,
		Levels:      len(c.levels),
	}
}
