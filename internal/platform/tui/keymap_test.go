package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-rush/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"s", runeKey('s'), core.ActionSlow, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlow, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionCycleColor, false},
		{"1", runeKey('1'), core.ActionColor1, false},
		{"4", runeKey('4'), core.ActionColor4, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	km := NewKeyMapperWithHold(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('s'), t0, &frame)
	if !frame.Has(core.ActionSlow) {
		t.Fatal("press should set Slow on the current frame")
	}

	frame.Clear()
	km.ApplyHeld(t0.Add(50*time.Millisecond), &frame)
	if !frame.Has(core.ActionSlow) {
		t.Error("Slow should still be held inside the window")
	}

	// An auto-repeat extends the hold
	km.MapKeyToFrame(runeKey('s'), t0.Add(90*time.Millisecond), &frame)
	frame.Clear()
	km.ApplyHeld(t0.Add(150*time.Millisecond), &frame)
	if !frame.Has(core.ActionSlow) {
		t.Error("repeat should extend the hold")
	}

	frame.Clear()
	km.ApplyHeld(t0.Add(300*time.Millisecond), &frame)
	if frame.Has(core.ActionSlow) {
		t.Error("Slow should be released once repeats stop")
	}
}

func TestOneShotKeysAreNotHeld(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('p'), t0, &frame)
	frame.Clear()
	km.ApplyHeld(t0.Add(time.Millisecond), &frame)
	if frame.Has(core.ActionPause) {
		t.Error("Pause must only fire on the press frame")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, t0, &frame)
	km.Release()
	frame.Clear()
	km.ApplyHeld(t0, &frame)
	if frame.Has(core.ActionJump) {
		t.Error("Release should drop held keys")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.action)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	if got := frameDelta(time.Time{}, t0, 60, 0.05); got != 1.0/60 {
		t.Errorf("first frame = %g, expected one nominal frame", got)
	}
	if got := frameDelta(t0, t0.Add(20*time.Millisecond), 60, 0.05); got != 0.02 {
		t.Errorf("frameDelta = %g, expected 0.02", got)
	}
	if got := frameDelta(t0, t0.Add(2*time.Second), 60, 0.05); got != 0.05 {
		t.Errorf("long frame = %g, expected clamp to 0.05", got)
	}
	if got := frameDelta(t0, t0.Add(-time.Second), 60, 0.05); got != 0 {
		t.Errorf("backwards clock = %g, expected 0", got)
	}
}
