package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/grid"
	"github.com/matzehuels/wordsearch/pkg/report"
	"github.com/matzehuels/wordsearch/pkg/search"
)

func testReport() report.Report {
	g := grid.New("GNUX", "NXXX", "UXEMU")
	dirs := direction.NewSet(direction.Right, direction.Down)
	idx := search.Scan(g, dictionary.New(3, "GNU", "EMU", "XXX"), dirs)
	return report.Build(idx, 1, 3, dirs)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m ResultListModel, keys ...string) ResultListModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(ResultListModel)
	}
	return m
}

func TestResultListNavigation(t *testing.T) {
	m := NewResultListModel(testReport())
	if len(m.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(m.Entries))
	}

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"start", nil, 0},
		{"down", []string{"down"}, 1},
		{"vim down", []string{"j", "j"}, 2},
		{"clamped at end", []string{"down", "down", "down", "down"}, 2},
		{"clamped at start", []string{"up", "k"}, 0},
		{"down then up", []string{"j", "j", "k"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := update(t, m, tt.keys...)
			if got.Cursor != tt.want {
				t.Errorf("cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestResultListScrolls(t *testing.T) {
	m := NewResultListModel(testReport())
	m.Height = 1

	m = update(t, m, "down", "down")
	if m.Offset != 2 {
		t.Errorf("offset = %d, want 2", m.Offset)
	}
	m = update(t, m, "up")
	if m.Offset != 1 {
		t.Errorf("offset = %d, want 1", m.Offset)
	}
}

func TestResultListExpand(t *testing.T) {
	m := update(t, NewResultListModel(testReport()), "down", "enter")
	if !m.Expanded {
		t.Fatal("enter should expand the selected word")
	}
	view := m.View()
	// GNU is found at (0,0) both right and down.
	for _, want := range []string{"GNU", "(0,0)", "right", "down"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if m = update(t, m, "enter"); m.Expanded {
		t.Error("second enter should collapse")
	}
}

func TestResultListQuit(t *testing.T) {
	m := NewResultListModel(testReport())
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = key(k)
		}
		if _, cmd := m.Update(msg); cmd == nil {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestResultListView(t *testing.T) {
	m := NewResultListModel(testReport())
	view := m.View()
	for _, want := range []string{"3 3+ words (searching d, r),", "EMU", "XXX", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	empty := NewResultListModel(report.Report{Directions: direction.AllSet(), MinLength: 3})
	if !strings.Contains(empty.View(), "no words found") {
		t.Errorf("empty view = %q", empty.View())
	}
}

func TestResultListWindowSize(t *testing.T) {
	m := NewResultListModel(testReport())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(ResultListModel).Height; got != 5 {
		t.Errorf("height = %d, want minimum 5", got)
	}
}
