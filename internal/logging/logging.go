// Package logging builds the structured loggers the games write to.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a tint logger at debug level in development and a JSON logger
// otherwise. Colors are used only when w is a terminal.
func New(w io.Writer, development bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(w, nil)
	if development {
		handler = tint.NewHandler(w, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: !isTerminal(w),
		})
	}
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// OpenFile returns a size-rotated log file at path.
func OpenFile(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}
