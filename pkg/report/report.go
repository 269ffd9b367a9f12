// Package report turns a search index into the summary printed to the user.
//
// A [Report] has two parts. The header states how many distinct words were
// found, the minimum word length, and the directions searched:
//
//	12 3+ words (searching d, dl, dr, l, r, u, ul, ur),
//
// The body lists the words that meet the minimum count in lexicographic
// order, with the count in parentheses when a word was found more than once:
//
//	CAT, DOG (3), EMU
//
// The header total counts words before the minimum-count filter is applied,
// so raising the count threshold shortens the body but not the total.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/search"
)

// Entry is one word in the report body.
type Entry struct {
	Word        string              `json:"word"`
	Count       int                 `json:"count"`
	Occurrences []search.Occurrence `json:"occurrences,omitempty"`
}

// String formats the entry as "word" or "word (count)".
func (e Entry) String() string {
	if e.Count > 1 {
		return fmt.Sprintf("%s (%d)", e.Word, e.Count)
	}
	return e.Word
}

// Report is the deterministic summary of one search.
type Report struct {
	// Total is the number of distinct words found before count filtering.
	Total      int
	MinLength  int
	MinCount   int
	Directions direction.Set
	// Entries holds the words with at least MinCount occurrences, sorted.
	Entries []Entry
}

// Build aggregates idx into a report.
func Build(idx *search.Index, minCount, minLength int, dirs direction.Set) Report {
	r := Report{
		Total:      idx.Len(),
		MinLength:  minLength,
		MinCount:   minCount,
		Directions: dirs,
	}
	for _, w := range idx.Words() {
		occs := idx.Occurrences(w)
		if len(occs) < minCount {
			continue
		}
		r.Entries = append(r.Entries, Entry{Word: w, Count: len(occs), Occurrences: occs})
	}
	return r
}

// Header returns the header sentence, e.g.
// "3 3+ words (searching d, r),".
func (r Report) Header() string {
	return fmt.Sprintf("%d %d+ words (searching %s),", r.Total, r.MinLength, r.Directions)
}

// Body returns the comma-separated list of reported words.
func (r Report) Body() string {
	parts := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// String returns the header and body on one line separated by a space.
func (r Report) String() string {
	return r.Header() + " " + r.Body()
}

// WriteText writes the one-line report followed by a newline.
func WriteText(w io.Writer, r Report) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}

type jsonReport struct {
	RunID      string   `json:"run_id,omitempty"`
	Total      int      `json:"total"`
	Reported   int      `json:"reported"`
	MinLength  int      `json:"min_length"`
	MinCount   int      `json:"min_count"`
	Directions []string `json:"directions"`
	Entries    []Entry  `json:"entries"`
}

// WriteJSON writes r as indented JSON. runID is included when non-empty.
func WriteJSON(w io.Writer, r Report, runID string) error {
	entries := r.Entries
	if entries == nil {
		entries = []Entry{}
	}
	out := jsonReport{
		RunID:      runID,
		Total:      r.Total,
		Reported:   len(r.Entries),
		MinLength:  r.MinLength,
		MinCount:   r.MinCount,
		Directions: r.Directions.Labels(),
		Entries:    entries,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
