package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level.
// Output goes to a console writer on stderr; color is enabled only when
// stderr is a terminal and NO_COLOR is not set. The level is set on the
// logger, not globally: a render's process log keeps its own level.
func SetupLogger(verbosity int) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !useColor(os.Stderr),
	}

	log.Logger = zerolog.New(consoleWriter).
		Level(levelFor(verbosity)).
		With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 3 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// levelFor maps a -v count to a zerolog level
func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.ErrorLevel
	case 1:
		return zerolog.WarnLevel
	case 2:
		return zerolog.InfoLevel
	case 3:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// useColor reports whether colored console output is appropriate for f
func useColor(f *os.File) bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ProcessLog is a render-scoped log file placed alongside the rendered
// readme. It mirrors log events to both the console and the file for the
// duration of one render, and must be closed on every exit path.
type ProcessLog struct {
	Logger zerolog.Logger
	file   *os.File
}

// NewProcessLog creates the process-log file at path and returns a logger
// writing to both the file and the global console writer.
func NewProcessLog(path string, verbosity int) (*ProcessLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.DateTime,
		NoColor:    true,
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !useColor(os.Stderr),
	}

	// the file records the render at info regardless of the console
	// verbosity; only debug and up lowers it further
	fileLevel := zerolog.InfoLevel
	if verbosity >= 3 {
		fileLevel = zerolog.DebugLevel
	}
	out := zerolog.MultiLevelWriter(
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: fileWriter},
			Level:  fileLevel,
		},
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  levelFor(verbosity),
		},
	)
	logger := zerolog.New(out).With().Timestamp().Logger()

	return &ProcessLog{Logger: logger, file: file}, nil
}

// Close releases the underlying log file handle
func (p *ProcessLog) Close() error {
	if p == nil || p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}
