package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogFileName is the log file created under Config.Dir
const LogFileName = "hitscan.log"

// Config selects log destination and verbosity
type Config struct {
	Debug   bool   // Logging is disabled unless set
	Dir     string // Directory for LogFileName
	Level   string // trace, debug, info, warn, error
	Console io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup builds the process logger
// Disabled config yields zerolog.Nop; otherwise JSON lines go to Dir/hitscan.log
// and a human-readable copy to Console when set
// The returned closer releases the log file
func Setup(cfg Config) (zerolog.Logger, io.Closer, error) {
	if !cfg.Debug {
		return zerolog.Nop(), nopCloser{}, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	var out io.Writer = file
	if cfg.Console != nil {
		out = zerolog.MultiLevelWriter(
			file,
			zerolog.ConsoleWriter{
				Out:        cfg.Console,
				TimeFormat: time.RFC3339,
			},
		)
	}

	logger := zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()

	logger.Info().Str("path", path).Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, file, nil
}
