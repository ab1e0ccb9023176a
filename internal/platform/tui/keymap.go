package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui2048/internal/t2048"
)

// PlayKeyMap defines the key bindings for the game screen.
type PlayKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Continue key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Continue, k.Restart, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"), // vim-style k for up
			key.WithHelp("up/w/k", "slide up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"), // vim-style j for down
			key.WithHelp("down/s/j", "slide down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a/h", "slide left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d/l", "slide right"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "keep playing"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key message to a board direction.
func (k PlayKeyMap) Direction(msg tea.KeyMsg) (t2048.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return t2048.DirUp, true
	case key.Matches(msg, k.Down):
		return t2048.DirDown, true
	case key.Matches(msg, k.Left):
		return t2048.DirLeft, true
	case key.Matches(msg, k.Right):
		return t2048.DirRight, true
	}
	return 0, false
}

// minSwipeDistance filters out plain clicks and accidental tiny drags.
const minSwipeDistance = 3

// swipeTracker turns a mouse press/release pair into a board direction.
type swipeTracker struct {
	tracking bool
	startX   int
	startY   int
}

// Track consumes a mouse message. The returned bool is true when a
// swipe completed on this message.
func (s *swipeTracker) Track(msg tea.MouseMsg) (t2048.Direction, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.tracking = true
			s.startX, s.startY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if !s.tracking {
			return 0, false
		}
		s.tracking = false
		return swipeDirection(msg.X-s.startX, msg.Y-s.startY)
	}
	return 0, false
}

// swipeDirection picks the dominant axis of a drag. Ties go to the
// horizontal axis.
func swipeDirection(dx, dy int) (t2048.Direction, bool) {
	absX, absY := abs(dx), abs(dy)
	if absX < minSwipeDistance && absY < minSwipeDistance {
		return 0, false
	}
	if absX >= absY {
		if dx > 0 {
			return t2048.DirRight, true
		}
		return t2048.DirLeft, true
	}
	if dy > 0 {
		return t2048.DirDown, true
	}
	return t2048.DirUp, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
