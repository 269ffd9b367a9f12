package search

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/grid"
)

// Options tunes a scan. The zero value scans sequentially.
type Options struct {
	// Workers is the number of goroutines scanning rows. Values below 2 scan
	// on the calling goroutine; a negative value uses runtime.NumCPU.
	Workers int
}

// Scan finds every dictionary word reachable by a straight walk from any
// cell in any direction of dirs. It never modifies its inputs.
func Scan(g *grid.Grid, dict *dictionary.Set, dirs direction.Set) *Index {
	idx := NewIndex()
	scanRows(g, dict, dirs.Directions(), 0, g.Height(), idx)
	return idx
}

// ScanWithOptions is Scan with worker partitioning and cancellation.
// The result is identical to Scan for the same inputs.
func ScanWithOptions(ctx context.Context, g *grid.Grid, dict *dictionary.Set, dirs direction.Set, opts Options) (*Index, error) {
	workers := opts.Workers
	if workers < 0 {
		workers = runtime.NumCPU()
	}
	height := g.Height()
	if workers > height {
		workers = height
	}
	if workers < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Scan(g, dict, dirs), nil
	}

	ds := dirs.Directions()
	parts := make([]*Index, height)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := 0; y < height; y++ {
		y := y
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			part := NewIndex()
			scanRows(g, dict, ds, y, y+1, part)
			parts[y] = part
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	idx := NewIndex()
	for _, part := range parts {
		idx.Merge(part)
	}
	return idx, nil
}

// scanRows walks every start cell in rows [from, to) and records matches in idx.
func scanRows(g *grid.Grid, dict *dictionary.Set, dirs []direction.Direction, from, to int, idx *Index) {
	if dict.Len() == 0 {
		return
	}
	maxLen := dict.MaxLength()
	var acc strings.Builder
	for y := from; y < to; y++ {
		for x := 0; x < g.Width(y); x++ {
			for _, d := range dirs {
				dx, dy := d.Offset()
				acc.Reset()
				// Words longer than maxLen cannot match, so the walk stops there.
				for n, xl, yl := 0, x, y; n < maxLen; n, xl, yl = n+1, xl+dx, yl+dy {
					r, ok := g.At(xl, yl)
					if !ok {
						break
					}
					acc.WriteRune(r)
					if w := acc.String(); dict.Contains(w) {
						idx.Add(Occurrence{Word: w, X: x, Y: y, Direction: d})
					}
				}
			}
		}
	}
}

// Verify reports whether walking from (o.X, o.Y) along o.Direction for the
// rune length of o.Word spells exactly o.Word.
func Verify(g *grid.Grid, o Occurrence) bool {
	if o.Word == "" || !o.Direction.Valid() {
		return false
	}
	dx, dy := o.Direction.Offset()
	x, y := o.X, o.Y
	for _, want := range o.Word {
		got, ok := g.At(x, y)
		if !ok || got != want {
			return false
		}
		x, y = x+dx, y+dy
	}
	return true
}
