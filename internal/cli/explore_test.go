package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graphvis/pkg/graph"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, dropped := graph.Build(10, []graph.Pair{
		{4, 5}, {1, 6}, {6, 4}, {5, 3}, {3, 6}, {0, 2}, {5, 8},
		{0, 6}, {3, 0}, {6, 8}, {2, 8}, {1, 2}, {9, 4},
	})
	if len(dropped) != 0 {
		t.Fatalf("unexpected dropped edges: %v", dropped)
	}
	return g
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m GraphModel, keys ...string) GraphModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(GraphModel)
	}
	return m
}

func TestGraphModelNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"starts at zero", nil, 0},
		{"down", []string{"down", "down"}, 2},
		{"vim keys", []string{"j", "j", "j", "k"}, 2},
		{"up clamps", []string{"up"}, 0},
		{"end", []string{"G"}, 9},
		{"down clamps", []string{"G", "down"}, 9},
		{"home", []string{"G", "g"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewGraphModel(sampleGraph(t)), tt.keys...)
			if m.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.want)
			}
		})
	}
}

func TestGraphModelFollowEdge(t *testing.T) {
	m := NewGraphModel(sampleGraph(t))

	// node 0 neighbors: 2 3 6
	m = press(m, "enter")
	if m.Cursor != 2 {
		t.Fatalf("after first jump Cursor = %d, want 2", m.Cursor)
	}
	// node 2 neighbors: 0 1 8; we came from 0 so the next jump continues at 1
	m = press(m, "enter")
	if m.Cursor != 1 {
		t.Fatalf("after second jump Cursor = %d, want 1", m.Cursor)
	}
}

func TestGraphModelFollowIsolated(t *testing.T) {
	m := NewGraphModel(sampleGraph(t))
	m = press(m, "down", "down", "down", "down", "down", "down", "down") // node 7
	if m.Cursor != 7 {
		t.Fatalf("Cursor = %d, want 7", m.Cursor)
	}
	m = press(m, "enter")
	if m.Cursor != 7 {
		t.Errorf("jump from isolated node moved cursor to %d", m.Cursor)
	}
}

func TestGraphModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		_, cmd := NewGraphModel(sampleGraph(t)).Update(key(k))
		if cmd == nil {
			t.Errorf("%q: expected quit command", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: command did not quit", k)
		}
	}
}

func TestGraphModelScrolls(t *testing.T) {
	m := NewGraphModel(sampleGraph(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(GraphModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want minimum of 5", m.Height)
	}

	m = press(m, "G")
	if m.Offset != 5 {
		t.Errorf("Offset = %d, want 5 so node 9 is visible", m.Offset)
	}
	m = press(m, "g")
	if m.Offset != 0 {
		t.Errorf("Offset = %d, want 0 after home", m.Offset)
	}
}

func TestGraphModelView(t *testing.T) {
	view := NewGraphModel(sampleGraph(t)).View()

	for _, want := range []string{"Graph Explorer", "10 nodes · 13 edges", "Neighbors", "0 1 3 4 8", "[1/10]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestGraphModelViewEmpty(t *testing.T) {
	view := NewGraphModel(graph.New(0)).View()
	if !strings.Contains(view, "(empty graph)") {
		t.Errorf("View() = %q, want empty marker", view)
	}

	m := press(NewGraphModel(graph.New(0)), "down", "enter", "G")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d on empty graph", m.Cursor)
	}
}
