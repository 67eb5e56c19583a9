// Package logger is the structured logger used by the check composers and
// pwcheck. A Logger travels in a context.Context; code that finds none there
// logs nothing.
package logger

import (
	"context"
	"fmt"
	"strings"
)

type Config struct {
	Environment string
	Level       Level
	Format      Format
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Decode lets envconfig parse a Level.
func (l *Level) Decode(value string) error {
	switch lvl := Level(strings.ToLower(value)); lvl {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		*l = lvl
		return nil
	}
	return fmt.Errorf("invalid log level: %s", value)
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Decode lets envconfig parse a Format.
func (f *Format) Decode(value string) error {
	switch format := Format(strings.ToLower(value)); format {
	case FormatJSON, FormatText:
		*f = format
		return nil
	}
	return fmt.Errorf("invalid log format: %s", value)
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or NewNop.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return NewNop()
}
