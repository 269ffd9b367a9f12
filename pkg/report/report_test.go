package report

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/grid"
	"github.com/matzehuels/wordsearch/pkg/search"
)

func indexOf(counts map[string]int) *search.Index {
	idx := search.NewIndex()
	for w, n := range counts {
		for i := 0; i < n; i++ {
			idx.Add(search.Occurrence{Word: w, X: i, Y: 0, Direction: direction.Right})
		}
	}
	return idx
}

func TestBuildSingleWord(t *testing.T) {
	idx := search.Scan(grid.New("CAT"), dictionary.New(3, "CAT"), direction.NewSet(direction.Right))
	r := Build(idx, 1, 3, direction.NewSet(direction.Right))

	if got := r.Body(); got != "CAT" {
		t.Errorf("Body() = %q, want %q", got, "CAT")
	}
	if got := r.Header(); got != "1 3+ words (searching r)," {
		t.Errorf("Header() = %q", got)
	}
	if got := r.String(); got != "1 3+ words (searching r), CAT" {
		t.Errorf("String() = %q", got)
	}
}

func TestBuildStackedRows(t *testing.T) {
	dirs := direction.NewSet(direction.Right)
	idx := search.Scan(grid.New("CAT", "TAC"), dictionary.New(3, "CAT", "TAC"), dirs)
	r := Build(idx, 1, 3, dirs)
	if got := r.Body(); got != "CAT, TAC" {
		t.Errorf("Body() = %q, want %q", got, "CAT, TAC")
	}
}

func TestMinCountFilter(t *testing.T) {
	idx := indexOf(map[string]int{"ONE": 1, "TRIO": 3, "PAIR": 2})

	tests := []struct {
		minCount int
		body     string
	}{
		{0, "ONE, PAIR (2), TRIO (3)"},
		{1, "ONE, PAIR (2), TRIO (3)"},
		{2, "PAIR (2), TRIO (3)"},
		{3, "TRIO (3)"},
		{4, ""},
	}

	for _, tt := range tests {
		r := Build(idx, tt.minCount, 3, direction.AllSet())
		if got := r.Body(); got != tt.body {
			t.Errorf("minCount=%d: Body() = %q, want %q", tt.minCount, got, tt.body)
		}
		// The header total is counted before filtering.
		if !strings.HasPrefix(r.Header(), "3 3+ words") {
			t.Errorf("minCount=%d: Header() = %q, want total 3", tt.minCount, r.Header())
		}
	}
}

func TestHeaderCountsBeforeFiltering(t *testing.T) {
	idx := indexOf(map[string]int{"WORD": 3, "LONE": 1})
	r := Build(idx, 2, 3, direction.AllSet())

	if r.Total != 2 {
		t.Errorf("Total = %d, want 2", r.Total)
	}
	if got := r.Body(); got != "WORD (3)" {
		t.Errorf("Body() = %q, want %q", got, "WORD (3)")
	}
	if len(r.Entries) != 1 {
		t.Errorf("len(Entries) = %d, want 1", len(r.Entries))
	}
}

func TestEmptyIndex(t *testing.T) {
	r := Build(search.NewIndex(), 1, 3, direction.AllSet())
	if got := r.Header(); got != "0 3+ words (searching d, dl, dr, l, r, u, ul, ur)," {
		t.Errorf("Header() = %q", got)
	}
	if r.Body() != "" {
		t.Errorf("Body() = %q, want empty", r.Body())
	}
}

func TestBodyIsSorted(t *testing.T) {
	idx := indexOf(map[string]int{"zeta": 1, "Alpha": 1, "beta": 2, "alpha": 1})
	r := Build(idx, 1, 3, direction.AllSet())

	words := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		words[i] = e.Word
	}
	if !sort.StringsAreSorted(words) {
		t.Errorf("entries not sorted: %v", words)
	}
	if got := r.Body(); got != "Alpha, alpha, beta (2), zeta" {
		t.Errorf("Body() = %q", got)
	}
}

func TestDeterministic(t *testing.T) {
	g := grid.New("DOGOD", "OXOXO", "GODOG")
	dict := dictionary.New(3, "DOG", "GOD", "DOGOD")
	var first string
	for i := 0; i < 5; i++ {
		r := Build(search.Scan(g, dict, direction.AllSet()), 1, 3, direction.AllSet())
		if i == 0 {
			first = r.String()
			continue
		}
		if got := r.String(); got != first {
			t.Fatalf("run %d output %q differs from %q", i, got, first)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	idx := indexOf(map[string]int{"CAT": 2, "DOG": 1})
	r := Build(idx, 2, 3, direction.NewSet(direction.Right, direction.Up))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r, "run-1"); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got struct {
		RunID      string   `json:"run_id"`
		Total      int      `json:"total"`
		Reported   int      `json:"reported"`
		Directions []string `json:"directions"`
		Entries    []struct {
			Word        string `json:"word"`
			Count       int    `json:"count"`
			Occurrences []struct {
				Direction string `json:"direction"`
			} `json:"occurrences"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.RunID != "run-1" || got.Total != 2 || got.Reported != 1 {
		t.Errorf("unexpected header fields: %+v", got)
	}
	if diff := cmp.Diff([]string{"r", "u"}, got.Directions); diff != "" {
		t.Errorf("directions mismatch (-want +got):\n%s", diff)
	}
	if len(got.Entries) != 1 || got.Entries[0].Word != "CAT" || got.Entries[0].Count != 2 {
		t.Fatalf("unexpected entries: %+v", got.Entries)
	}
	if got.Entries[0].Occurrences[0].Direction != "r" {
		t.Errorf("direction should be encoded by label, got %q", got.Entries[0].Occurrences[0].Direction)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Build(search.NewIndex(), 1, 3, direction.AllSet()), ""); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"entries": []`) {
		t.Errorf("empty report should encode entries as []: %s", buf.String())
	}
	if strings.Contains(buf.String(), "run_id") {
		t.Error("empty run id should be omitted")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	r := Build(indexOf(map[string]int{"CAT": 1}), 1, 3, direction.NewSet(direction.Right))
	if err := WriteText(&buf, r); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 3+ words (searching r), CAT\n" {
		t.Errorf("WriteText wrote %q", buf.String())
	}
}
