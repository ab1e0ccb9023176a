package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/rng"
	"github.com/vovakirdan/tui2048/internal/storage"
	"github.com/vovakirdan/tui2048/internal/t2048"
)

// PlayModel is the Bubble Tea model for a single game of 2048.
// The game is turn-based, so there is no tick loop: the model only
// reacts to input and resize events.
type PlayModel struct {
	variant    config.Variant
	rules      t2048.Rules
	store      *storage.Store
	source     *rng.Source
	game       t2048.Model
	keys       PlayKeyMap
	help       help.Model
	swipe      swipeTracker
	width      int
	height     int
	moves      int
	quitting   bool
	scoreSaved bool // Whether the current game has been persisted
}

// NewPlayModel creates a model playing the given variant. Seed 0 picks
// a time-based seed. The best score is loaded from storage when
// available so the HUD starts with history.
func NewPlayModel(variant config.Variant, store *storage.Store, seed int64, width, height int) PlayModel {
	source := rng.New(seed)
	rules := variant.Rules()

	game := rules.NewGame(source.Func())
	if store != nil {
		if best, err := store.BestScore(variant.ID); err == nil && best > game.BestScore {
			game.BestScore = best
		}
	}

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		variant: variant,
		rules:   rules,
		store:   store,
		source:  source,
		game:    game,
		keys:    DefaultPlayKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
}

// Init implements tea.Model. Nothing to schedule for a turn-based game.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and advances the game.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if dir, ok := m.swipe.Track(msg); ok {
			m.doMove(dir)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		if next := t2048.KeepPlaying(m.game); next != nil {
			m.game = *next
		}
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.doMove(dir)
	}
	return m, nil
}

// doMove runs one turn: clear the previous move's tile states, slide,
// then persist if the board died.
func (m *PlayModel) doMove(dir t2048.Direction) {
	prepared := t2048.PrepareMove(m.game)
	if prepared == nil {
		return
	}

	next := m.rules.Move(*prepared, dir, m.source.Func())
	if next == nil {
		return
	}

	m.game = *next
	m.moves++

	if m.game.Status == t2048.StatusOver {
		m.saveResult()
	}
}

// restart abandons the current game and deals a fresh board with a new
// time-based seed. The best score carries over.
func (m *PlayModel) restart() {
	m.saveResult()

	best := m.game.BestScore
	m.source = rng.New(0)
	m.game = m.rules.NewGame(m.source.Func())
	m.game.BestScore = best
	m.moves = 0
	m.scoreSaved = false
}

// saveResult records the game once it made progress. Runs ended by
// quitting or restarting are persisted the same as finished games.
func (m *PlayModel) saveResult() {
	if m.scoreSaved || m.store == nil || m.moves == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.variant.ID, m.game.Score(), t2048.MaxTile(m.game.Tiles), m.moves)
	m.scoreSaved = true
}

// View renders the HUD, board and status line.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		renderHUD(m.variant.Name, m.game.Score(), m.game.BestScore, t2048.MaxTile(m.game.Tiles)),
		renderBoard(m.game, m.rules.Size),
	}
	if banner := statusBanner(m.game.Status); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Game exposes the current game state, mainly for tests.
func (m PlayModel) Game() t2048.Model {
	return m.game
}

// RunPlay starts the Bubble Tea program for a local game.
func RunPlay(variant config.Variant, store *storage.Store, seed int64, width, height int) error {
	model := NewPlayModel(variant, store, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for swipe input
	)

	_, err := p.Run()
	return err
}
