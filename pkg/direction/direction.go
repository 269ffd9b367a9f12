// Package direction defines the eight straight-line directions a word can
// run in on a puzzle grid.
//
// Each [Direction] has a fixed unit offset (dx, dy) and a short label used on
// the command line ("ul", "u", "ur", "l", "r", "dl", "d", "dr"). A [Set] is the
// immutable collection of directions enabled for one search.
//
// Coordinates grow to the right (x) and downward (y), so [Up] is (0, -1) and
// [DownRight] is (1, 1).
package direction

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is one of the eight grid directions.
type Direction uint8

const (
	UpLeft Direction = iota
	Up
	UpRight
	Left
	Right
	DownLeft
	Down
	DownRight
)

// count is the number of defined directions.
const count = 8

var labels = [count]string{"ul", "u", "ur", "l", "r", "dl", "d", "dr"}

var names = [count]string{"up-left", "up", "up-right", "left", "right", "down-left", "down", "down-right"}

var offsets = [count][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// All returns every direction in declaration order.
func All() []Direction {
	out := make([]Direction, count)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool { return d < count }

// Offset returns the unit step (dx, dy) for d. At least one of dx, dy is non-zero.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

// Label returns the short command-line label, e.g. "ul" or "d".
func (d Direction) Label() string { return labels[d] }

// String returns the long name, e.g. "up-left".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// MarshalText encodes d as its short label.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.Label()), nil
}

// UnmarshalText decodes a short label or long name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse converts a label ("ul") or long name ("up-left") into a Direction.
// Surrounding whitespace and case are ignored.
func Parse(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range labels {
		if s == labels[i] || s == names[i] {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not a valid way", s)
}

// Set is an immutable set of enabled directions. The zero value is empty.
type Set struct {
	bits uint8
}

// NewSet returns a set containing dirs. Invalid directions are ignored.
func NewSet(dirs ...Direction) Set {
	var s Set
	for _, d := range dirs {
		if d.Valid() {
			s.bits |= 1 << d
		}
	}
	return s
}

// AllSet returns the set of all eight directions.
func AllSet() Set { return NewSet(All()...) }

// Has reports whether d is enabled.
func (s Set) Has(d Direction) bool { return d.Valid() && s.bits&(1<<d) != 0 }

// Len returns the number of enabled directions.
func (s Set) Len() int {
	n := 0
	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Empty reports whether no direction is enabled.
func (s Set) Empty() bool { return s.bits == 0 }

// Directions returns the enabled directions in declaration order.
func (s Set) Directions() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range All() {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Labels returns the short labels of the enabled directions, sorted lexicographically.
func (s Set) Labels() []string {
	out := make([]string, 0, s.Len())
	for _, d := range s.Directions() {
		out = append(out, d.Label())
	}
	sort.Strings(out)
	return out
}

// String joins the sorted labels with ", ".
func (s Set) String() string { return strings.Join(s.Labels(), ", ") }

// ParseList parses a comma-separated list of direction labels such as
// "ul, ur, dl, dr". Tokens that are not valid directions are skipped and
// returned as warnings. When no valid token remains the result is [AllSet].
func ParseList(list string) (Set, []string) {
	var (
		dirs     []Direction
		warnings []string
	)
	for _, tok := range strings.Split(list, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		d, err := Parse(tok)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return AllSet(), warnings
	}
	return NewSet(dirs...), warnings
}
