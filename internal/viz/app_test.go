package viz

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/clock/clocktest"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

func newTestModel(t *testing.T) (Model, *clocktest.Fake) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := catalog.NewRegistry()
	board := NewBoard(reg.For(sorting.Bubble{}))
	clk := clocktest.NewFake()
	p := player.New(board, player.WithClock(clk), player.WithLogger(logger))
	s := session.New(p, sorting.Bubble{}, sorting.Array{5, 3, 8, 1},
		session.WithLogger(logger), session.WithRand(rand.New(rand.NewSource(1))))
	return NewModel(s, board, reg, WithLogger(logger)), clk
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestStepKey(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "n", "n", "n")

	if got := m.session.State().Cursor; got != 3 {
		t.Errorf("expected cursor 3, got %d", got)
	}
	d := m.board.Snapshot()
	if d.Compare != [2]int{0, 1} {
		t.Errorf("expected first comparison highlighted, got %v", d.Compare)
	}
}

func TestToggleKey(t *testing.T) {
	m, clk := newTestModel(t)
	m = press(m, " ")
	if !m.session.State().Playing {
		t.Fatal("expected playing after space")
	}
	if clk.Pending() != 1 {
		t.Errorf("expected one pending tick, got %d", clk.Pending())
	}

	clk.Advance(session.DefaultDebounce)
	m = press(m, " ")
	if m.session.State().Playing {
		t.Error("expected paused after second space")
	}
}

func TestAlgorithmKeySwitchesEntry(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "a")
	if m.session.Algorithm().Name() != "selection" {
		t.Fatalf("expected selection, got %s", m.session.Algorithm().Name())
	}
	if m.board.Entry().Name != "selection" {
		t.Errorf("expected selection pseudocode, got %s", m.board.Entry().Name)
	}
	if m.session.State().State != player.Idle {
		t.Errorf("expected idle after switch, got %s", m.session.State().State)
	}
}

func TestEditArray(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "e")
	if !m.editing || m.editBuf != "5,3,8,1" {
		t.Fatalf("expected edit buffer with current array, got %q", m.editBuf)
	}

	m = press(m, "backspace", "backspace", "backspace", "backspace", "backspace", "backspace", "backspace")
	m = press(m, "9", ",", "x", "2", "enter")

	if m.editing {
		t.Error("expected edit mode to end on enter")
	}
	if got := m.session.Array(); !got.Equal(sorting.Array{9, 2}) {
		t.Errorf("expected [9,2], got %s", got)
	}
}

func TestEditTruncationNotice(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "e")
	m.editBuf = "1,2,3,4,5,6,7,8,9,10,11,12"
	m = press(m, "enter")

	if !strings.Contains(m.notice, "limited to 10") {
		t.Errorf("expected truncation notice, got %q", m.notice)
	}
	if len(m.session.Array()) != 10 {
		t.Errorf("expected 10 elements, got %d", len(m.session.Array()))
	}
}

func TestEditEmptyKeepsArray(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "e")
	m.editBuf = ""
	m = press(m, "enter")

	if m.notice == "" {
		t.Error("expected notice for empty input")
	}
	if got := m.session.Array(); !got.Equal(sorting.Array{5, 3, 8, 1}) {
		t.Errorf("expected array unchanged, got %s", got)
	}
}

func TestSpeedKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "-", "-", "-", "-", "-")
	if m.session.Multiplier() != player.MinMultiplier {
		t.Errorf("expected %dx, got %dx", player.MinMultiplier, m.session.Multiplier())
	}
	m = press(m, "+")
	if m.session.Multiplier() != 2 {
		t.Errorf("expected 2x, got %dx", m.session.Multiplier())
	}
}

func TestThemeAndCodeViewKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "t", "c")
	if m.theme.Name != "retro" {
		t.Errorf("expected retro theme, got %s", m.theme.Name)
	}
	if m.view != catalog.ViewPython {
		t.Errorf("expected python view, got %s", m.view)
	}
	if !strings.Contains(m.View(), "def bubble_sort") {
		t.Error("expected python listing in view")
	}
}

func TestViewLabels(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"bubble sort", "[5,3,8,1]", "Repeat until no swaps"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	m = press(m, "n")
	if !strings.Contains(m.View(), "sorting...") {
		t.Error("expected sorting label while stepping")
	}
}

func TestGenerateKey(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "g")
	if got := len(m.session.Array()); got != 8 {
		t.Errorf("expected 8 random values, got %d", got)
	}
}

func TestQuitPauses(t *testing.T) {
	m, clk := newTestModel(t)
	m = press(m, " ")
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if clk.Pending() != 0 {
		t.Errorf("expected no pending ticks after quit, got %d", clk.Pending())
	}
}
