// Package grid holds the letters of a word search puzzle.
//
// A [Grid] is a sequence of independently sized rows. Puzzle files are read
// line by line and every whitespace-separated token on a line becomes its own
// row, so "CAT DOG" on one line yields two rows. Rows may differ in length;
// lookups outside a row report absence rather than failing.
package grid

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"
)

// Grid is an immutable ragged grid of runes addressed by (x, y), where y
// selects the row and x the column within that row.
type Grid struct {
	rows [][]rune
}

// New builds a grid from rows of text, one row per string.
func New(rows ...string) *Grid {
	g := &Grid{rows: make([][]rune, 0, len(rows))}
	for _, r := range rows {
		g.rows = append(g.rows, []rune(r))
	}
	return g
}

// Read parses puzzle text from r. Each line is split on whitespace and every
// token becomes one row.
func Read(r io.Reader) (*Grid, error) {
	g := &Grid{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			g.rows = append(g.rows, []rune(tok))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Load reads a puzzle file from disk.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width returns the length of row y, or 0 if y is out of range.
func (g *Grid) Width(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

// Cells returns the total number of cells across all rows.
func (g *Grid) Cells() int {
	n := 0
	for _, r := range g.rows {
		n += len(r)
	}
	return n
}

// Contains reports whether (x, y) addresses a cell.
func (g *Grid) Contains(x, y int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[y])
}

// At returns the rune at (x, y). The second result is false outside the grid.
func (g *Grid) At(x, y int) (rune, bool) {
	if !g.Contains(x, y) {
		return 0, false
	}
	return g.rows[y][x], true
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= len(g.rows) {
		return ""
	}
	return string(g.rows[y])
}

// Fold returns a copy of g with every rune upper-cased.
func (g *Grid) Fold() *Grid {
	out := &Grid{rows: make([][]rune, len(g.rows))}
	for y, row := range g.rows {
		folded := make([]rune, len(row))
		for x, r := range row {
			folded[x] = unicode.ToUpper(r)
		}
		out.rows[y] = folded
	}
	return out
}
