package track

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// cellForRune maps a track-file character to its cell type.
func cellForRune(b byte) (Cell, bool) {
	switch b {
	case 'O':
		return CellWall, true
	case 'G':
		return CellGrass, true
	case ' ':
		return CellRoad, true
	case 'S':
		return CellStart, true
	case 'F':
		return CellGoal, true
	default:
		return CellWall, false
	}
}

// Load reads a track file from disk. See Parse for the format rules.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", path, err)
	}
	return g, nil
}

// Parse reads a character-grid track. One row per line; every row must have
// the same length; recognised characters are 'O' (wall), 'G' (grass),
// ' ' (road), 'S' (start), 'F' (goal). Empty input, ragged rows and unknown
// characters are all hard errors — a malformed track never yields a grid.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var rows [][]Cell
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if len(rows) > 0 && len(text) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", line, len(text), len(rows[0]))
		}
		row := make([]Cell, len(text))
		for i := 0; i < len(text); i++ {
			c, ok := cellForRune(text[i])
			if !ok {
				return nil, fmt.Errorf("row %d: unknown cell character %q", line, text[i])
			}
			row[i] = c
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read track: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("track is empty")
	}
	return NewGrid(rows), nil
}
