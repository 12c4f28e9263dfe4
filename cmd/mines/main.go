package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	envPath string
)

func init() {
	const (
		defaultEnvPath = ".env"
		usage          = "env file path"
	)
	flag.StringVar(&envPath, "env", defaultEnvPath, usage)
	flag.StringVar(&envPath, "e", defaultEnvPath, usage+" (shorthand)")
}

// setupLogging keeps the terminal for the board: logs go to MINES_LOG_FILE
// when set, otherwise only warnings reach stderr outside development.
func setupLogging() error {
	logLevel := logrus.WarnLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	path := config.LogFile()
	if path == "" {
		return nil
	}

	if logLevel < logrus.InfoLevel {
		logLevel = logrus.InfoLevel
		log.SetLevel(logLevel)
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", path, err)
	}
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

// engineLogger routes the engine's slog events into log at debug level, so
// they land wherever setupLogging sent logrus.
func engineLogger() (*slog.Logger, io.Closer) {
	w := log.WriterLevel(logrus.DebugLevel)
	return logging.New(w, true), w
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.Load(envPath); err != nil {
		log.Fatalf("unable to read env file %s: %s", envPath, err.Error())
	}

	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	engineLog, closer := engineLogger()
	defer closer.Close()
	mines.Log = engineLog

	params, err := config.Board()
	if err != nil {
		log.Fatal("unable to read board config: ", err)
	}

	rnd, err := config.Rand()
	if err != nil {
		log.Fatal("unable to seed bomb placement: ", err)
	}

	sess, err := newSession(os.Stdout, params, rnd)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	lines := make(chan string)
	go func() {
		if err := scanLines(os.Stdin, lines); err != nil {
			log.Error("unable to read input: ", err)
		}
	}()

	if err := sess.run(mainCtx, lines); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("game stopped: ", err)
	}
	log.Info("bye")
}
