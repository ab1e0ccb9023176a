package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui2048/internal/t2048"
)

// Cell dimensions. Wide enough for a 5-digit tile with breathing room.
const (
	tileWidth  = 7
	tileHeight = 3
)

// tileBackgrounds follows the classic palette: pale for small values,
// warming up toward the winning tile.
var tileBackgrounds = map[int]lipgloss.Color{
	2:    lipgloss.Color("255"),
	4:    lipgloss.Color("253"),
	8:    lipgloss.Color("222"),
	16:   lipgloss.Color("215"),
	32:   lipgloss.Color("209"),
	64:   lipgloss.Color("203"),
	128:  lipgloss.Color("227"),
	256:  lipgloss.Color("226"),
	512:  lipgloss.Color("220"),
	1024: lipgloss.Color("214"),
	2048: lipgloss.Color("208"),
}

// highTileBackground covers everything past 2048.
var highTileBackground = lipgloss.Color("135")

var (
	emptyCellStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Align(lipgloss.Center)

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wonBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	overBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
)

// renderBoard draws the grid with one styled cell per position.
func renderBoard(game t2048.Model, size int) string {
	tiles := make(map[t2048.Position]t2048.Tile, len(game.Tiles))
	for _, tile := range game.Tiles {
		tiles[tile.Pos] = tile
	}

	rows := make([]string, size)
	for r := 0; r < size; r++ {
		cells := make([]string, size)
		for c := 0; c < size; c++ {
			tile, ok := tiles[t2048.Position{Row: r, Col: c}]
			if !ok {
				cells[c] = emptyCellStyle.Render("·")
				continue
			}
			cells[c] = tileStyle(tile).Render(strconv.Itoa(tile.Value))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// tileStyle picks the base style for a value and accents tiles that
// changed this move: merged tiles render bold, spawned ones italic.
func tileStyle(tile t2048.Tile) lipgloss.Style {
	bg, ok := tileBackgrounds[tile.Value]
	if !ok {
		bg = highTileBackground
	}

	style := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Foreground(lipgloss.Color("235"))

	switch tile.State.(type) {
	case t2048.Merged:
		style = style.Bold(true)
	case t2048.Spawned:
		style = style.Italic(true)
	}
	return style
}

// renderHUD draws the variant title and the score boxes above the board.
func renderHUD(title string, score, best, maxTile int) string {
	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		hudBox("SCORE", score),
		" ",
		hudBox("BEST", best),
		" ",
		hudBox("MAX", maxTile),
	)
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), boxes)
}

func hudBox(label string, value int) string {
	return hudBoxStyle.Render(hudLabelStyle.Render(label) + "\n" + fmt.Sprintf("%d", value))
}

// statusBanner returns the line shown under the board for special
// states, empty while an ordinary game is running.
func statusBanner(status t2048.Status) string {
	switch status {
	case t2048.StatusWon:
		return wonBannerStyle.Render("You win! Press c to keep playing or r to restart.")
	case t2048.StatusOver:
		return overBannerStyle.Render("Game over. Press r to restart or q to quit.")
	}
	return ""
}
