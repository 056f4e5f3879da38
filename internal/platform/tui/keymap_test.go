package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"next", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"pause esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := keys.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultGameKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(runeKey("r"), &frame) {
		t.Error("restart is not a quit request")
	}
	if !frame.Has(core.ActionRestart) {
		t.Error("restart should be set on the frame")
	}
	if !keys.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should request quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the program, not the frame")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	frame := core.NewInputFrame()

	events := []tea.MouseMsg{
		{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 8, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 8, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 7, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		{X: 7, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
	}
	for _, ev := range events {
		MapMouseToFrame(ev, &frame)
	}

	expected := []core.PointerEvent{
		{Kind: core.PointerDown, X: 10, Y: 5},
		{Kind: core.PointerMove, X: 8, Y: 6},
		{Kind: core.PointerUp, X: 7, Y: 7},
	}
	if len(frame.Pointer) != len(expected) {
		t.Fatalf("got %d pointer events, expected %d: %v", len(frame.Pointer), len(expected), frame.Pointer)
	}
	for i, want := range expected {
		if frame.Pointer[i] != want {
			t.Errorf("event %d = %+v, expected %+v", i, frame.Pointer[i], want)
		}
	}
}
