package search

import (
	"fmt"
	"sort"

	"github.com/matzehuels/wordsearch/pkg/direction"
)

// Occurrence is one place a word was found: walking from (X, Y) along
// Direction spells Word.
type Occurrence struct {
	Word      string              `json:"word"`
	X         int                 `json:"x"`
	Y         int                 `json:"y"`
	Direction direction.Direction `json:"direction"`
}

// String formats the occurrence as "WORD@(x,y) dir".
func (o Occurrence) String() string {
	return fmt.Sprintf("%s@(%d,%d) %s", o.Word, o.X, o.Y, o.Direction.Label())
}

// Index maps each found word to its occurrences in discovery order.
// It grows during a scan and is read-only afterwards.
type Index struct {
	byWord map[string][]Occurrence
	total  int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byWord: make(map[string][]Occurrence)}
}

// Add appends an occurrence.
func (idx *Index) Add(o Occurrence) {
	idx.byWord[o.Word] = append(idx.byWord[o.Word], o)
	idx.total++
}

// Merge appends every occurrence of other after the ones already present.
func (idx *Index) Merge(other *Index) {
	for w, occs := range other.byWord {
		idx.byWord[w] = append(idx.byWord[w], occs...)
	}
	idx.total += other.total
}

// Len returns the number of distinct words.
func (idx *Index) Len() int { return len(idx.byWord) }

// Total returns the number of occurrences across all words.
func (idx *Index) Total() int { return idx.total }

// Count returns how many times word was found.
func (idx *Index) Count(word string) int { return len(idx.byWord[word]) }

// Occurrences returns the occurrences of word in discovery order.
// The returned slice must not be modified.
func (idx *Index) Occurrences(word string) []Occurrence { return idx.byWord[word] }

// Words returns the found words in lexicographic order.
func (idx *Index) Words() []string {
	out := make([]string, 0, len(idx.byWord))
	for w := range idx.byWord {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// All returns every occurrence, grouped by word in lexicographic order.
func (idx *Index) All() []Occurrence {
	out := make([]Occurrence, 0, idx.total)
	for _, w := range idx.Words() {
		out = append(out, idx.byWord[w]...)
	}
	return out
}
