// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides the diagnostic logger. User-facing report text is
// written directly to the command's output; this logger carries debug and
// warning detail to stderr.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level names accepted by SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger is the subset of zap.SugaredLogger used by irck.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var (
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	encoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "lvl",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
)

// Default writes console-encoded entries to stderr.
var Default Logger = New(os.Stderr)

// New builds a logger writing to w that shares the package level.
func New(w io.Writer) Logger {
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)).Sugar()
}

// SetLevel sets the level of every logger built by this package. Unknown
// names fall back to warn.
func SetLevel(name string) {
	switch name {
	case LevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case LevelInfo:
		level.SetLevel(zapcore.InfoLevel)
	case LevelError:
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.WarnLevel)
	}
}

// Debugf logs at debug level on Default.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Infof logs at info level on Default.
func Infof(format string, args ...any) { Default.Infof(format, args...) }

// Warnf logs at warn level on Default.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }
