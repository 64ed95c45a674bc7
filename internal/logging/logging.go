package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggersMu sync.Mutex
	loggers   = make(map[string]*logrus.Entry)

	base = newBase()
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return l
}

// NewLogger returns the entry for a component. Entries share one logger, so
// a later Configure call applies to entries created before it.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// Configure points all loggers at the file at path and sets the level.
// An empty path discards output. The returned closer releases the file.
func Configure(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	base.SetLevel(lvl)

	if strings.TrimSpace(path) == "" {
		base.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	base.SetOutput(f)
	return f, nil
}

// SetOutput redirects all loggers to w
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// ParseLevel parses a level name, defaulting to info for an empty string
func ParseLevel(level string) (logrus.Level, error) {
	if strings.TrimSpace(level) == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
