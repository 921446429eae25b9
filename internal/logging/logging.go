// Package logging configures the process-wide zerolog logger and adapts it
// to the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level   string    // debug, info, warn, error
	File    string    // optional rotating log file
	Pretty  bool      // force console formatting even when not a terminal
	Console io.Writer // defaults to os.Stderr
}

// ParseLevel maps a level name to a zerolog level; unknown names are info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing to the console and, when cfg.File is set,
// to a size-rotated file.
func New(cfg Config) (zerolog.Logger, error) {
	level := ParseLevel(cfg.Level)
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Console
	if out == nil {
		out = os.Stderr
	}

	var console io.Writer = out
	if f, ok := out.(*os.File); ok {
		isTerminal := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		if isTerminal || cfg.Pretty {
			console = zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05", NoColor: !isTerminal}
		}
	} else if cfg.Pretty {
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}

	writer := console
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    16, // megabytes
			MaxBackups: 8,
			MaxAge:     90, // days
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

// Init builds a logger and installs it as the package-level zerolog logger
func Init(cfg Config) (zerolog.Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return l, err
	}
	log.Logger = l
	return l, nil
}

// ZerologAdapter implements calculation.Logger on top of zerolog
type ZerologAdapter struct {
	Logger zerolog.Logger
}

// NewAdapter wraps l, tagging every entry with the component name
func NewAdapter(l zerolog.Logger, component string) ZerologAdapter {
	return ZerologAdapter{Logger: l.With().Str("component", component).Logger()}
}

func (a ZerologAdapter) Debugf(format string, args ...interface{}) {
	a.Logger.Debug().Msgf(format, args...)
}

func (a ZerologAdapter) Infof(format string, args ...interface{}) {
	a.Logger.Info().Msgf(format, args...)
}

func (a ZerologAdapter) Warnf(format string, args ...interface{}) {
	a.Logger.Warn().Msgf(format, args...)
}

func (a ZerologAdapter) Errorf(format string, args ...interface{}) {
	a.Logger.Error().Msgf(format, args...)
}
