package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

func testPreviewModel(t *testing.T, sizes ...geom.Size) previewModel {
	t.Helper()
	opts := pipeline.Options{Sizes: sizes}
	if err := opts.ValidateForLayout(); err != nil {
		t.Fatal(err)
	}
	return newPreviewModel(opts)
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m previewModel, msg tea.Msg) (previewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(previewModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func TestPreviewPlace(t *testing.T) {
	m := testPreviewModel(t, geom.Sz(4, 2), geom.Sz(3, 3), geom.Sz(2, 2))

	m, _ = update(t, m, key(" "))
	if m.next != 1 || m.layouter.Len() != 1 {
		t.Fatalf("after space: next=%d len=%d", m.next, m.layouter.Len())
	}
	m, _ = update(t, m, key("enter"))
	if m.next != 2 {
		t.Fatalf("after enter: next=%d", m.next)
	}
	m, _ = update(t, m, key("a"))
	if m.next != 3 || m.layouter.Len() != 3 {
		t.Fatalf("after a: next=%d len=%d", m.next, m.layouter.Len())
	}

	// Nothing left to place.
	m, _ = update(t, m, key(" "))
	if m.layouter.Len() != 3 || m.err != nil {
		t.Errorf("extra place: len=%d err=%v", m.layouter.Len(), m.err)
	}
}

func TestPreviewRecenter(t *testing.T) {
	m := testPreviewModel(t, geom.Sz(2, 2))

	m, _ = update(t, m, key("up"))
	m, _ = update(t, m, key("right"))
	m, _ = update(t, m, key("right"))
	if m.center != geom.Pt(2, -1) {
		t.Errorf("center = %v, want (2,-1)", m.center)
	}
	if got := geom.Round(m.layouter.Center()); got != geom.Pt(2, -1) {
		t.Errorf("layouter center = %v, want (2,-1)", got)
	}
}

func TestPreviewQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			_, cmd := update(t, testPreviewModel(t), key(k))
			if cmd == nil {
				t.Fatal("no command returned")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("%q did not quit", k)
			}
		})
	}
}

func TestPreviewView(t *testing.T) {
	m := testPreviewModel(t, geom.Sz(6, 4), geom.Sz(3, 3))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	m, _ = update(t, m, key("a"))

	view := m.View()
	if !strings.Contains(view, "2/2 placed") {
		t.Errorf("status missing from view:\n%s", view)
	}
	if !strings.Contains(view, "+") {
		t.Errorf("center marker missing from view:\n%s", view)
	}
	if !strings.ContainsRune(view, rune(previewFill[0])) {
		t.Errorf("first rect missing from view:\n%s", view)
	}
}

func TestPreviewCanvasSize(t *testing.T) {
	m := testPreviewModel(t, geom.Sz(200, 100))
	m, _ = update(t, m, key(" "))

	lines := strings.Split(m.canvas(30, 10), "\n")
	if len(lines) != 10 {
		t.Fatalf("canvas has %d lines, want 10", len(lines))
	}
}
