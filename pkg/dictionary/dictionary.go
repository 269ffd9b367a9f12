// Package dictionary provides the set of admissible words for a search.
//
// A [Set] is built once from a word list (one word per line) and filtered by
// a minimum rune length. It is never modified afterwards, so it can be shared
// by concurrent readers.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultPath is the system word list used when no dictionary is given.
const DefaultPath = "/usr/share/dict/words"

// Set is an immutable set of words.
type Set struct {
	words     map[string]struct{}
	minLength int
	maxLength int
}

// New builds a set from words, dropping any shorter than minLength runes.
func New(minLength int, words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words)), minLength: minLength}
	for _, w := range words {
		s.add(w)
	}
	return s
}

func (s *Set) add(w string) {
	n := utf8.RuneCountInString(w)
	if n < s.minLength {
		return
	}
	s.words[w] = struct{}{}
	if n > s.maxLength {
		s.maxLength = n
	}
}

// Read builds a set from r, one word per line. Line terminators are
// stripped; no other normalization is applied.
func Read(r io.Reader, minLength int) (*Set, error) {
	s := New(minLength)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		s.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a word list file from disk.
func Load(path string, minLength int) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, minLength)
}

// Contains reports whether w is in the set.
func (s *Set) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of words.
func (s *Set) Len() int { return len(s.words) }

// MinLength returns the minimum word length the set was filtered with.
func (s *Set) MinLength() int { return s.minLength }

// MaxLength returns the rune length of the longest word, or 0 when empty.
func (s *Set) MaxLength() int { return s.maxLength }

// Words returns the words in lexicographic order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Fold returns a copy of s with every word upper-cased. Words that collide
// after folding collapse into one entry.
func (s *Set) Fold() *Set {
	out := New(s.minLength)
	for w := range s.words {
		out.add(strings.ToUpper(w))
	}
	return out
}

// WriteTo writes the words to w in lexicographic order, one per line, in the
// same format [Read] accepts.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, word := range s.Words() {
		m, err := bw.WriteString(word + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
