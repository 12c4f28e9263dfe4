package main

import (
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Screen geometry of the board: the title row and its margin sit above the
// bordered board, every tile is three columns wide.
const (
	newGameLabel = "[ New Game ]"

	boardTop   = 3
	boardLeft  = 2
	tileWidth  = 3
	tileHeight = 1
)

type model struct {
	params mines.GameParams
	rnd    mines.Source
	log    *slog.Logger

	id       uuid.UUID
	game     *mines.GameState
	cursor   mines.Point
	notice   string
	debounce *input.Debouncer
	now      func() time.Time
}

func newModel(params mines.GameParams, rnd mines.Source, logger *slog.Logger) (*model, error) {
	m := &model{
		params:   params,
		rnd:      rnd,
		log:      logger,
		debounce: input.NewDebouncer(input.DefaultDebounce),
		now:      time.Now,
	}
	if err := m.newGame(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *model) newGame() error {
	game, err := mines.NewGame(m.params, m.rnd)
	if err != nil {
		return err
	}
	m.id = uuid.New()
	m.game = game
	m.cursor = mines.Point{}
	m.notice = ""
	m.log.Info("new game", "game_id", m.id, "params", m.params.String())
	return nil
}

// newGameButton is the hit box of the button drawn at the start of the
// title row.
func (m *model) newGameButton() input.Rect {
	return input.Rect{X: 0, Y: 0, Width: lipgloss.Width(newGameLabel), Height: 1}
}

// layout maps mouse cells to tiles of the current board.
func (m *model) layout() input.Layout {
	width, height := m.game.Size()
	return input.Layout{
		OriginX: boardLeft, OriginY: boardTop,
		TileWidth: tileWidth, TileHeight: tileHeight,
		Cols: width, Rows: height,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	width, height := m.game.Size()
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}
	case "down", "j":
		if m.cursor.Y < height-1 {
			m.cursor.Y++
		}
	case "left", "h":
		if m.cursor.X > 0 {
			m.cursor.X--
		}
	case "right", "l":
		if m.cursor.X < width-1 {
			m.cursor.X++
		}
	case " ", "enter":
		m.play(input.Reveal, m.cursor)
	case "f":
		m.play(input.Flag, m.cursor)
	case "c":
		m.play(input.Chord, m.cursor)
	case "n", "r":
		m.restart()
	}
	return nil
}

func (m *model) restart() {
	if err := m.newGame(); err != nil {
		m.log.Error("unable to start game", "error", err)
		m.notice = err.Error()
	}
}

// handleMouse plays a left press through the tap cycle and flags on a right
// press. A left press on the New Game button restarts. Presses elsewhere are
// ignored and do not hold off the next one.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	var action input.Action
	switch msg.Button {
	case tea.MouseButtonLeft:
		action = input.Reveal
	case tea.MouseButtonRight:
		action = input.Flag
	default:
		return
	}

	if action == input.Reveal && m.newGameButton().Contains(msg.X, msg.Y) {
		if m.debounce.Allow(m.now()) {
			m.restart()
		}
		return
	}

	p, ok := m.layout().Locate(msg.X, msg.Y)
	if !ok || !m.debounce.Allow(m.now()) {
		return
	}
	m.cursor = p
	if action == input.Reveal {
		action = input.Tap(m.game.Visibility(p.X, p.Y))
	}
	m.play(action, p)
}

func (m *model) play(action input.Action, p mines.Point) {
	outcome, err := input.Command{Action: action, X: p.X, Y: p.Y}.Apply(m.game)
	switch {
	case errors.Is(err, mines.ErrGameOver):
		m.notice = "The game is over, press n to play again"
		return
	case err != nil:
		m.log.Error("move failed", "game_id", m.id, "action", action, "error", err)
		m.notice = err.Error()
		return
	}
	m.notice = ""

	log := m.log.With("game_id", m.id, "action", action.String(), "x", p.X, "y", p.Y)
	if outcome == mines.BombHit {
		log.Info("bomb hit")
	} else {
		log.Debug("move")
	}
	if m.game.Status() == mines.Won {
		log.Info("game won")
	}
}
