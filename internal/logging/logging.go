// Package logging holds the process-wide debug logger. The engine reports
// every synthesized statement through it; output is side-effect only and
// carries no delivery guarantee.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// Config controls the global logger.
type Config struct {
	Debug bool      // enable debug-level records
	JSON  bool      // JSON handler instead of text
	Out   io.Writer // destination; nil means stderr
}

// Init replaces the global logger. Call once at process start; the library
// falls back to a warn-level stderr default when Init was never called.
func Init(cfg Config) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	mu.Lock()
	logger = slog.New(h)
	mu.Unlock()
}

// Get returns the global logger, initializing a quiet default on first use.
func Get() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}
	return logger
}
