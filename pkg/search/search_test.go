package search

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/grid"
)

func TestScanSingleRow(t *testing.T) {
	g := grid.New("CAT")
	dict := dictionary.New(3, "CAT")
	idx := Scan(g, dict, direction.NewSet(direction.Right))

	want := []Occurrence{{Word: "CAT", X: 0, Y: 0, Direction: direction.Right}}
	if diff := cmp.Diff(want, idx.All()); diff != "" {
		t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
	}
}

func TestScanStackedRows(t *testing.T) {
	g := grid.New("CAT", "TAC")
	dict := dictionary.New(3, "CAT", "TAC")
	idx := Scan(g, dict, direction.NewSet(direction.Right))

	if diff := cmp.Diff([]string{"CAT", "TAC"}, idx.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if idx.Count("CAT") != 1 || idx.Count("TAC") != 1 {
		t.Errorf("counts CAT=%d TAC=%d, want 1 each", idx.Count("CAT"), idx.Count("TAC"))
	}
	if o := idx.Occurrences("TAC")[0]; o.Y != 1 || o.X != 0 {
		t.Errorf("TAC found at (%d,%d), want (0,1)", o.X, o.Y)
	}
}

func TestScanAllDirections(t *testing.T) {
	// The palindrome-free word is found once per direction it is spelled in.
	g := grid.New(
		"TAC",
		"AAA",
		"CAT",
	)
	dict := dictionary.New(3, "CAT")
	idx := Scan(g, dict, direction.AllSet())

	want := []Occurrence{
		{Word: "CAT", X: 2, Y: 0, Direction: direction.Left},
		{Word: "CAT", X: 2, Y: 0, Direction: direction.Down},
		{Word: "CAT", X: 0, Y: 2, Direction: direction.Up},
		{Word: "CAT", X: 0, Y: 2, Direction: direction.Right},
	}
	if diff := cmp.Diff(want, idx.Occurrences("CAT")); diff != "" {
		t.Errorf("discovery order mismatch (-want +got):\n%s", diff)
	}
}

func TestScanRaggedRows(t *testing.T) {
	// Row 1 is shorter; a diagonal walk must stop when it leaves that row
	// even though row 2 is wide enough.
	g := grid.New(
		"ABCD",
		"E",
		"GHIJ",
	)
	dict := dictionary.New(2, "AE", "BF", "DJ", "CI", "AEG")
	idx := Scan(g, dict, direction.AllSet())

	if diff := cmp.Diff([]string{"AE", "AEG"}, idx.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanEmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		g    *grid.Grid
		dict *dictionary.Set
	}{
		{"empty dictionary", grid.New("CAT"), dictionary.New(3)},
		{"empty grid", grid.New(), dictionary.New(3, "CAT")},
		{"no directions", grid.New("CAT"), dictionary.New(3, "CAT")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dirs := direction.AllSet()
			if tt.name == "no directions" {
				dirs = direction.Set{}
			}
			idx := Scan(tt.g, tt.dict, dirs)
			if idx.Len() != 0 || idx.Total() != 0 {
				t.Errorf("expected empty index, got %d words", idx.Len())
			}
		})
	}
}

func TestScanCaseSensitive(t *testing.T) {
	idx := Scan(grid.New("cat"), dictionary.New(3, "CAT"), direction.AllSet())
	if idx.Len() != 0 {
		t.Error("matching must be case-sensitive")
	}
}

func TestScanSingleRuneWords(t *testing.T) {
	// A one-letter word matches once per start cell and enabled direction.
	idx := Scan(grid.New("A"), dictionary.New(1, "A"), direction.NewSet(direction.Right, direction.Down))
	if idx.Count("A") != 2 {
		t.Errorf("Count(A) = %d, want 2", idx.Count("A"))
	}
}

func TestVerify(t *testing.T) {
	g := grid.New("CAT", "XYZ")
	tests := []struct {
		occ  Occurrence
		want bool
	}{
		{Occurrence{Word: "CAT", X: 0, Y: 0, Direction: direction.Right}, true},
		{Occurrence{Word: "TAC", X: 2, Y: 0, Direction: direction.Left}, true},
		{Occurrence{Word: "CX", X: 0, Y: 0, Direction: direction.Down}, true},
		{Occurrence{Word: "CAT", X: 0, Y: 1, Direction: direction.Right}, false},
		{Occurrence{Word: "CATS", X: 0, Y: 0, Direction: direction.Right}, false},
		{Occurrence{Word: "", X: 0, Y: 0, Direction: direction.Right}, false},
	}

	for _, tt := range tests {
		if got := Verify(g, tt.occ); got != tt.want {
			t.Errorf("Verify(%v) = %v, want %v", tt.occ, got, tt.want)
		}
	}
}

// randomPuzzle builds a ragged grid over a small alphabet so that many
// dictionary words occur.
func randomPuzzle(rng *rand.Rand) (*grid.Grid, *dictionary.Set) {
	const alphabet = "ABC"
	rows := make([]string, 1+rng.Intn(6))
	for i := range rows {
		b := make([]byte, 1+rng.Intn(6))
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		rows[i] = string(b)
	}
	words := make([]string, 12)
	for i := range words {
		b := make([]byte, 2+rng.Intn(3))
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		words[i] = string(b)
	}
	return grid.New(rows...), dictionary.New(2, words...)
}

// bruteForce checks every (start, direction, length) triple independently.
func bruteForce(g *grid.Grid, dict *dictionary.Set, dirs direction.Set) map[Occurrence]int {
	found := make(map[Occurrence]int)
	for _, w := range dict.Words() {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(y); x++ {
				for _, d := range dirs.Directions() {
					o := Occurrence{Word: w, X: x, Y: y, Direction: d}
					if Verify(g, o) {
						found[o]++
					}
				}
			}
		}
	}
	return found
}

func asMultiset(idx *Index) map[Occurrence]int {
	m := make(map[Occurrence]int)
	for _, o := range idx.All() {
		m[o]++
	}
	return m
}

func TestScanMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		g, dict := randomPuzzle(rng)
		idx := Scan(g, dict, direction.AllSet())

		for _, o := range idx.All() {
			if !Verify(g, o) {
				t.Fatalf("case %d: reported occurrence %v does not re-walk", i, o)
			}
		}
		if diff := cmp.Diff(bruteForce(g, dict, direction.AllSet()), asMultiset(idx)); diff != "" {
			t.Fatalf("case %d: scan differs from brute force (-want +got):\n%s", i, diff)
		}
	}
}

func TestScanIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, dict := randomPuzzle(rng)
	a := Scan(g, dict, direction.AllSet())
	b := Scan(g, dict, direction.AllSet())
	if diff := cmp.Diff(a.All(), b.All()); diff != "" {
		t.Errorf("repeated scans differ (-first +second):\n%s", diff)
	}
}

func TestScanWithOptionsMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, workers := range []int{0, 1, 2, 4, -1} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				g, dict := randomPuzzle(rng)
				want := Scan(g, dict, direction.AllSet())
				got, err := ScanWithOptions(context.Background(), g, dict, direction.AllSet(), Options{Workers: workers})
				if err != nil {
					t.Fatalf("ScanWithOptions: %v", err)
				}
				for _, w := range want.Words() {
					if diff := cmp.Diff(want.Occurrences(w), got.Occurrences(w)); diff != "" {
						t.Fatalf("word %s order differs (-seq +par):\n%s", w, diff)
					}
				}
				if got.Len() != want.Len() || got.Total() != want.Total() {
					t.Fatalf("got %d/%d, want %d/%d", got.Len(), got.Total(), want.Len(), want.Total())
				}
			}
		})
	}
}

func TestScanWithOptionsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := grid.New("CAT", "DOG", "COW")
	dict := dictionary.New(3, "CAT")
	for _, workers := range []int{1, 3} {
		if _, err := ScanWithOptions(ctx, g, dict, direction.AllSet(), Options{Workers: workers}); err != context.Canceled {
			t.Errorf("workers=%d: err = %v, want context.Canceled", workers, err)
		}
	}
}

func TestIndexMerge(t *testing.T) {
	a := NewIndex()
	a.Add(Occurrence{Word: "CAT", X: 0, Y: 0, Direction: direction.Right})
	b := NewIndex()
	b.Add(Occurrence{Word: "CAT", X: 1, Y: 1, Direction: direction.Down})
	b.Add(Occurrence{Word: "DOG", X: 2, Y: 1, Direction: direction.Up})
	a.Merge(b)

	if a.Len() != 2 || a.Total() != 3 || a.Count("CAT") != 2 {
		t.Errorf("merged Len=%d Total=%d Count(CAT)=%d", a.Len(), a.Total(), a.Count("CAT"))
	}
	if a.Occurrences("CAT")[1].Y != 1 {
		t.Error("merged occurrences should follow existing ones")
	}
}
