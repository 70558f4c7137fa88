package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/gridmenu/pkg/menu"
	"github.com/marcus/gridmenu/pkg/menu/menutest"
)

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	if next != m {
		t.Fatalf("Update returned a different model")
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newModel(items ...string) *Model {
	c := menu.NewConfig(0, 0, items...)
	c.Clock = &menutest.Clock{}
	return New(c)
}

func TestModelSelects(t *testing.T) {
	m := newModel("alpha", "beta", "gamma")

	if cmd := send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10}); cmd != nil {
		t.Fatalf("start returned a command: %v", cmd)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, ">alpha<") {
		t.Errorf("view missing selected alpha:\n%s", view)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if !strings.Contains(ansi.Strip(m.View()), ">beta <") {
		t.Errorf("view after down:\n%s", ansi.Strip(m.View()))
	}

	if cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter}); !isQuit(cmd) {
		t.Fatal("enter did not quit")
	}
	index, err := m.Result()
	if err != nil || index != 1 {
		t.Errorf("Result = %d, %v, want 1, nil", index, err)
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelVimKeysAndCancel(t *testing.T) {
	m := newModel("a", "b")
	send(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})

	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !isQuit(cmd) {
		t.Fatal("esc did not quit")
	}
	if _, err := m.Result(); !menu.IsCancelled(err) {
		t.Errorf("err = %v, want cancelled", err)
	}
}

func TestModelLayoutError(t *testing.T) {
	m := newModel("a")

	cmd := send(t, m, tea.WindowSizeMsg{Width: 2, Height: 5})
	if !isQuit(cmd) {
		t.Fatal("layout error did not quit")
	}
	index, err := m.Result()
	if !errors.Is(err, menu.ErrWindowTooSmall) || index != int(menu.StatusWindowTooSmall) {
		t.Errorf("Result = %d, %v, want window too small", index, err)
	}
}

func TestModelTickKeepsTicking(t *testing.T) {
	m := newModel("a")
	send(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})

	if cmd := send(t, m, tickMsg{}); cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestKeyMapTranslate(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want menu.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, menu.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, menu.KeyDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, menu.KeyEnter},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, menu.KeyEnter},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, menu.KeyEscape},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, menu.KeyNone},
	}

	for _, tt := range tests {
		if got := km.Translate(tt.msg); got != tt.want {
			t.Errorf("Translate(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestDefaultStylesFollowEngine(t *testing.T) {
	styles := DefaultStyles()
	for slot, colors := range menu.DefaultPalette() {
		st := styles.style(slot)
		if st.GetForeground() != lipgloss.Color(colors.Fg) || st.GetBackground() != lipgloss.Color(colors.Bg) {
			t.Errorf("slot %v: got fg=%v bg=%v, want %+v", slot, st.GetForeground(), st.GetBackground(), colors)
		}
	}
	if !styles.style(menu.SlotSelected).GetBold() {
		t.Error("selected style should be bold")
	}
}
