// Package input turns raw player input, typed lines or pointer presses,
// into moves on a game. It checks the shape of the input only; whether a
// cell exists is for the game to decide.
package input

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Action uint8

const (
	Reveal Action = iota + 1
	Flag
	Chord
	NewGame
	Redraw
	Quit
)

func (a Action) String() string {
	switch a {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	case NewGame:
		return "new game"
	case Redraw:
		return "redraw"
	case Quit:
		return "quit"
	default:
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
}

type Command struct {
	Action Action
	X, Y   int
	Params url.Values // NewGame only
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid arguments")
)

// Maps known commands to actions and number of arguments; -1 means any.
var commands = map[string]struct {
	action Action
	nargs  int
}{
	"o": {Reveal, 2},
	"f": {Flag, 2},
	"c": {Chord, 2},
	"n": {NewGame, -1},
	"r": {Redraw, 0},
	"q": {Quit, 0},
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: first argument must be an int", ErrBadArguments)
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: second argument must be an int", ErrBadArguments)
	}
	return x, y, nil
}

// ParseCommand reads one line of console input. Besides the letter commands
//
//	o x y    reveal
//	f x y    toggle flag
//	c x y    chord
//	n [width=W] [height=H] [bombs=B] | n W H B
//	r        redraw
//	q        quit
//
// a bare "row, col" pair reveals that cell.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	parts := strings.Fields(line)
	known, ok := commands[strings.ToLower(parts[0])]
	if !ok {
		if row, col, ok := strings.Cut(line, ","); ok {
			y, x, err := parseXY([]string{strings.TrimSpace(row), strings.TrimSpace(col)})
			if err != nil {
				return Command{}, err
			}
			return Command{Action: Reveal, X: x, Y: y}, nil
		}
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	if known.nargs >= 0 && known.nargs != len(args) {
		return Command{}, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrBadArguments, parts[0], known.nargs, len(args))
	}

	cmd := Command{Action: known.action}
	switch known.action {
	case Reveal, Flag, Chord:
		x, y, err := parseXY(args)
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	case NewGame:
		params, err := parseParams(args)
		if err != nil {
			return Command{}, err
		}
		cmd.Params = params
	}
	return cmd, nil
}

var positionalParams = []string{"width", "height", "bombs"}

// parseParams accepts either key=value pairs or exactly three positional
// values in width, height, bombs order. Values may be split by spaces or
// commas.
func parseParams(fields []string) (url.Values, error) {
	var args []string
	for _, field := range fields {
		for _, arg := range strings.Split(field, ",") {
			if arg != "" {
				args = append(args, arg)
			}
		}
	}

	values := url.Values{}
	if len(args) == len(positionalParams) && !strings.Contains(strings.Join(args, ""), "=") {
		for i, arg := range args {
			values.Set(positionalParams[i], arg)
		}
		return values, nil
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrBadArguments, arg)
		}
		values.Add(key, value)
	}
	return values, nil
}

// Apply plays a move command on g.
func (c Command) Apply(g *mines.GameState) (mines.Outcome, error) {
	switch c.Action {
	case Reveal:
		return g.Reveal(c.X, c.Y)
	case Flag:
		return mines.Safe, g.ToggleFlag(c.X, c.Y)
	case Chord:
		return g.Chord(c.X, c.Y)
	default:
		return mines.Safe, fmt.Errorf("%w: %s is not a move", ErrBadArguments, c.Action)
	}
}
