package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadFiltersByLength(t *testing.T) {
	s, err := Read(strings.NewReader("a\nan\ncat\nCAT\ncats\r\ncat\n\n"), 3)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []string{"CAT", "cat", "cats"}
	if diff := cmp.Diff(want, s.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if s.Contains("an") {
		t.Error("words shorter than the minimum should be dropped")
	}
	if !s.Contains("cats") {
		t.Error("carriage return should be stripped from lines")
	}
	if s.MaxLength() != 4 {
		t.Errorf("MaxLength() = %d, want 4", s.MaxLength())
	}
	if s.MinLength() != 3 {
		t.Errorf("MinLength() = %d, want 3", s.MinLength())
	}
}

func TestRuneLength(t *testing.T) {
	s := New(3, "été", "ét")
	if !s.Contains("été") {
		t.Error("length should be measured in runes")
	}
	if s.Contains("ét") {
		t.Error("two-rune word should be filtered at minimum 3")
	}
}

func TestEmpty(t *testing.T) {
	s := New(3)
	if s.Len() != 0 || s.MaxLength() != 0 {
		t.Errorf("empty set Len %d MaxLength %d", s.Len(), s.MaxLength())
	}
	if s.Contains("") {
		t.Error("empty set contains nothing")
	}
}

func TestFold(t *testing.T) {
	s := New(3, "cat", "Cat", "dog").Fold()
	if diff := cmp.Diff([]string{"CAT", "DOG"}, s.Words()); diff != "" {
		t.Errorf("Fold() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	s := New(2, "zebra", "ox", "yak")
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != "ox\nyak\nzebra\n" {
		t.Errorf("WriteTo wrote %q", buf.String())
	}
	back, err := Read(&buf, 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(s.Words(), back.Words()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	if err := os.WriteFile(path, []byte("cat\ndog\nox\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path, 3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope"), 3); err == nil {
		t.Error("Load of missing file should fail")
	}
}
