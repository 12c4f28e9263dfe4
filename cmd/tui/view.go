package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("81")).Foreground(lipgloss.Color("255"))
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	bombStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	explodedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	countStyles   = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
	labelStyle  = lipgloss.NewStyle().Background(lipgloss.Color("212")).Foreground(lipgloss.Color("235")).Bold(true).Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")).Padding(0, 1)
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	noticeStyle = lipgloss.NewStyle().Italic(true)
)

// glyph is how a tile is drawn; every glyph is one column wide.
func glyph(t render.Tile) (string, lipgloss.Style) {
	switch {
	case t == render.TileZero:
		return "·", hiddenStyle
	case t.IsCount():
		return fmt.Sprint(int(t)), countStyles[t-1]
	case t == render.TileExploded:
		return "*", explodedStyle
	case t == render.TileFlag:
		return "⚑", flagStyle
	case t == render.TileNotABomb:
		return "x", flagStyle
	case t == render.TileBomb:
		return "*", bombStyle
	default:
		return "■", hiddenStyle
	}
}

func (m *model) viewBoard() string {
	width, height := m.game.Size()
	tiles := render.Tiles(m.game, m.game.Status().Over())

	var board strings.Builder
	for y := range height {
		for x := range width {
			char, style := glyph(tiles[y*width+x])
			content := " " + char + " "
			if m.cursor == (mines.Point{X: x, Y: y}) {
				style = cursorStyle
			}
			board.WriteString(style.Render(content))
		}
		if y < height-1 {
			board.WriteString("\n")
		}
	}
	return boardStyle.Render(board.String())
}

func (m *model) View() string {
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("BOMBS LEFT"),
		valueStyle.Render(fmt.Sprintf("%d", m.game.BombsRemaining())),
	)

	var help string
	switch m.game.Status() {
	case mines.Won:
		help = wonStyle.Render("You won! YAY!!! • n: new game • q: quit")
	case mines.Lost:
		help = lostStyle.Render("GAME. OVER • n: new game • q: quit")
	default:
		help = helpStyle.Render("click: tap cycle • right click: flag • arrows: move • space: reveal • f: flag • c: chord • n: new game • q: quit")
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			buttonStyle.Render(newGameLabel),
			" ",
			titleStyle.Render("Minesweeper "+m.params.String()),
		),
		m.viewBoard(),
		status,
		help,
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
