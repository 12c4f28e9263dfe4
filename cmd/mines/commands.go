package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const prompt = "Where would you like to dig? Input as row, col (or o/f/c x y, n, r, q): "

type session struct {
	out    io.Writer
	rnd    mines.Source
	params mines.GameParams
	id     uuid.UUID
	game   *mines.GameState
}

func newSession(out io.Writer, params mines.GameParams, rnd mines.Source) (*session, error) {
	s := &session{out: out, rnd: rnd}
	if err := s.newGame(params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) logger() *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"game_id": s.id,
		"params":  s.params.String(),
	})
}

func (s *session) newGame(params mines.GameParams) error {
	game, err := mines.NewGame(params, s.rnd)
	if err != nil {
		return err
	}
	s.params = params
	s.id = uuid.New()
	s.game = game
	s.logger().Info("new game")
	return nil
}

func (s *session) draw() {
	over := s.game.Status().Over()
	fmt.Fprintln(s.out, render.Text(s.game, over))
	fmt.Fprintf(s.out, "Bombs left: %d\n", s.game.BombsRemaining())
	switch s.game.Status() {
	case mines.Won:
		fmt.Fprintln(s.out, "You won! YAY!!!")
	case mines.Lost:
		fmt.Fprintln(s.out, "GAME. OVER")
	}
}

// execute runs one line of input and reports whether the player quit.
func (s *session) execute(line string) (quit bool) {
	cmd, err := input.ParseCommand(line)
	if errors.Is(err, input.ErrEmptyCommand) {
		return false
	}
	if err != nil {
		s.logger().WithError(err).Debug("bad input")
		fmt.Fprintln(s.out, "Invalid format, try again")
		return false
	}

	switch cmd.Action {
	case input.Quit:
		return true
	case input.Redraw:
		s.draw()
		return false
	case input.NewGame:
		params, err := input.ParseGameParams(cmd.Params, s.params)
		if err == nil {
			err = s.newGame(params)
		}
		if err != nil {
			s.logger().WithError(err).Debug("new game rejected")
			fmt.Fprintf(s.out, "Cannot start that game: %s\n", err)
			return false
		}
		s.draw()
		return false
	}

	outcome, err := cmd.Apply(s.game)
	switch {
	case errors.Is(err, mines.ErrOutOfBounds):
		fmt.Fprintln(s.out, "Invalid location, try again.")
		return false
	case errors.Is(err, mines.ErrGameOver):
		fmt.Fprintln(s.out, "The game is over, type n to play again.")
		return false
	case err != nil:
		s.logger().WithError(err).Error("move failed")
		fmt.Fprintln(s.out, "Invalid format, try again")
		return false
	}

	l := s.logger().WithFields(logrus.Fields{
		"action": cmd.Action.String(),
		"x":      cmd.X,
		"y":      cmd.Y,
	})
	if outcome == mines.BombHit {
		l.Info("bomb hit")
	} else {
		l.Debug("move")
	}
	if s.game.Status() == mines.Won {
		l.Info("game won")
	}
	s.draw()
	return false
}

// run plays lines until the player quits, the input ends or ctx is done.
func (s *session) run(ctx context.Context, lines <-chan string) error {
	s.draw()
	for {
		fmt.Fprint(s.out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return nil
			}
			if s.execute(line) {
				return nil
			}
		}
	}
}
