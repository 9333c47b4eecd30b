// Package logger builds the developer log used by profiltool.
//
// Entries are zerolog JSON lines appended to a log file, optionally mirrored
// to stderr in human-readable form when verbose mode is enabled. The result
// is handed to the core as a driven.Logger; nothing here is global.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
)

// Ensure Logger implements the interface.
var _ driven.Logger = (*Logger)(nil)

// Options configures New.
type Options struct {
	// File is the path of the append-mode log file. Empty disables the file sink.
	File string

	// Console mirrors entries to ConsoleOut (stderr by default) in text form.
	Console bool

	// ConsoleOut overrides the console destination.
	ConsoleOut io.Writer

	// Writer receives JSON entries in addition to File. Used by tests.
	Writer io.Writer

	// Verbose lowers the minimum level from info to debug.
	Verbose bool
}

// Logger adapts a zerolog.Logger to driven.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New builds a logger from opts. The returned close function releases the
// log file and is safe to call when no file was opened.
func New(opts Options) (*Logger, func() error, error) {
	var (
		writers []io.Writer
		file    *os.File
	)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	if opts.Writer != nil {
		writers = append(writers, opts.Writer)
	}

	if opts.Console {
		out := opts.ConsoleOut
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	}

	closeFn := func() error {
		if file == nil {
			return nil
		}
		return file.Close()
	}

	if len(writers) == 0 {
		return Nop(), closeFn, nil
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}, closeFn, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Debug logs detail that is only useful while diagnosing.
func (l *Logger) Debug(msg string, fields driven.Fields) {
	l.zl.Debug().Fields(map[string]any(fields)).Msg(msg)
}

// Info logs progress.
func (l *Logger) Info(msg string, fields driven.Fields) {
	l.zl.Info().Fields(map[string]any(fields)).Msg(msg)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string, fields driven.Fields) {
	l.zl.Warn().Fields(map[string]any(fields)).Msg(msg)
}

// Error logs a failure. A nil err is omitted from the entry.
func (l *Logger) Error(msg string, err error, fields driven.Fields) {
	ev := l.zl.Error()
	if err != nil {
		ev = ev.Err(err).Str("error_type", fmt.Sprintf("%T", domain.RootCause(err)))
	}
	ev.Fields(map[string]any(fields)).Msg(msg)
}

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields driven.Fields) driven.Logger {
	if len(fields) == 0 {
		return l
	}
	return &Logger{zl: l.zl.With().Fields(map[string]any(fields)).Logger()}
}
