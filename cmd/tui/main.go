package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

func main() {
	envPath := flag.String("env", ".env", "env file path")
	pyportal := flag.Bool("pyportal", false, "play on the 20x12 touchscreen board")
	flag.Parse()

	if err := config.Load(*envPath); err != nil {
		slog.Error("unable to read env file", "path", *envPath, "error", err)
		os.Exit(1)
	}

	logPath := config.LogFile()
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), "mines-tui.log")
	}
	logFile := logging.OpenFile(logPath)
	defer logFile.Close()

	logger := logging.New(logFile, config.Development())
	mines.Log = logger

	params, err := config.Board()
	if err != nil {
		logger.Error("unable to read board config", "error", err)
		os.Exit(1)
	}
	if *pyportal {
		params.Width, params.Height = input.PyPortal.Cols, input.PyPortal.Rows
		if err := params.Validate(); err != nil {
			logger.Error("unable to use touchscreen board", "error", err)
			os.Exit(1)
		}
	}
	rnd, err := config.Rand()
	if err != nil {
		logger.Error("unable to seed bomb placement", "error", err)
		os.Exit(1)
	}

	m, err := newModel(params, rnd, logger)
	if err != nil {
		logger.Error("unable to start game", "error", err)
		os.Exit(1)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		p.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("exit reason", "error", err)
	}
	logger.Info("bye")
}
