package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui2048/internal/t2048"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func TestPlayKeyMapDirection(t *testing.T) {
	keys := DefaultPlayKeyMap()

	tests := []struct {
		key      string
		expected t2048.Direction
	}{
		{key: "up", expected: t2048.DirUp},
		{key: "w", expected: t2048.DirUp},
		{key: "k", expected: t2048.DirUp},
		{key: "down", expected: t2048.DirDown},
		{key: "s", expected: t2048.DirDown},
		{key: "j", expected: t2048.DirDown},
		{key: "left", expected: t2048.DirLeft},
		{key: "a", expected: t2048.DirLeft},
		{key: "h", expected: t2048.DirLeft},
		{key: "right", expected: t2048.DirRight},
		{key: "d", expected: t2048.DirRight},
		{key: "l", expected: t2048.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			dir, ok := keys.Direction(keyMsg(tt.key))
			if !ok {
				t.Fatalf("key %q not mapped to a direction", tt.key)
			}
			if dir != tt.expected {
				t.Errorf("key %q = %s, want %s", tt.key, dir, tt.expected)
			}
		})
	}
}

func TestPlayKeyMapIgnoresOtherKeys(t *testing.T) {
	keys := DefaultPlayKeyMap()

	for _, k := range []string{"x", "1", "enter"} {
		if _, ok := keys.Direction(keyMsg(k)); ok {
			t.Errorf("key %q unexpectedly mapped to a direction", k)
		}
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		expected t2048.Direction
		ok       bool
	}{
		{name: "right", dx: 8, dy: 1, expected: t2048.DirRight, ok: true},
		{name: "left", dx: -5, dy: 0, expected: t2048.DirLeft, ok: true},
		{name: "down", dx: 1, dy: 6, expected: t2048.DirDown, ok: true},
		{name: "up", dx: 0, dy: -4, expected: t2048.DirUp, ok: true},
		{name: "tie goes horizontal", dx: 5, dy: 5, expected: t2048.DirRight, ok: true},
		{name: "click", dx: 0, dy: 0, ok: false},
		{name: "tiny drag", dx: 2, dy: 1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := swipeDirection(tt.dx, tt.dy)
			if ok != tt.ok {
				t.Fatalf("swipeDirection(%d, %d) ok = %v, want %v", tt.dx, tt.dy, ok, tt.ok)
			}
			if ok && dir != tt.expected {
				t.Errorf("swipeDirection(%d, %d) = %s, want %s", tt.dx, tt.dy, dir, tt.expected)
			}
		})
	}
}

func TestSwipeTrackerPressRelease(t *testing.T) {
	var tracker swipeTracker

	// Press at (10, 10), drag to (20, 11): a right swipe.
	if _, ok := tracker.Track(tea.MouseMsg{
		X: 10, Y: 10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}); ok {
		t.Fatal("press alone completed a swipe")
	}

	dir, ok := tracker.Track(tea.MouseMsg{
		X: 20, Y: 11,
		Action: tea.MouseActionRelease,
	})
	if !ok {
		t.Fatal("release did not complete the swipe")
	}
	if dir != t2048.DirRight {
		t.Errorf("swipe = %s, want %s", dir, t2048.DirRight)
	}
}

func TestSwipeTrackerReleaseWithoutPress(t *testing.T) {
	var tracker swipeTracker

	if _, ok := tracker.Track(tea.MouseMsg{
		X: 30, Y: 5,
		Action: tea.MouseActionRelease,
	}); ok {
		t.Error("release without press completed a swipe")
	}
}

func TestSwipeTrackerResetsAfterRelease(t *testing.T) {
	var tracker swipeTracker

	tracker.Track(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tracker.Track(tea.MouseMsg{X: 9, Y: 0, Action: tea.MouseActionRelease})

	// A second release must not produce another swipe.
	if _, ok := tracker.Track(tea.MouseMsg{X: 20, Y: 0, Action: tea.MouseActionRelease}); ok {
		t.Error("stale tracker state produced a second swipe")
	}
}
