package cmd

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger fans records out to a text handler on stderr and, when logOut
// is non-nil, a JSON handler writing every record to logOut.
func newLogger(stderr io.Writer, verbose bool, logOut io.Writer) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if verbose {
		level.Set(slog.LevelDebug)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	if logOut != nil {
		handlers = append(handlers, slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func openLogFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// closeLog closes the log file, if one is open. It is safe to call twice.
func (o *options) closeLog() error {
	if o.logOut == nil {
		return nil
	}
	out := o.logOut
	o.logOut = nil
	return out.Close()
}
