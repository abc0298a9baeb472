// Package logging is a small leveled, field-carrying logger used by the
// command line and the device-facing packages.
package logging

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"sort"
	"strings"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts the names printed by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for l := DebugLevel; l <= ErrorLevel; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

type Fields map[string]any

type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
	SetLevel(level Level)
}

type DefaultLogger struct {
	out    *log.Logger
	level  *Level
	fields Fields
}

func New(w io.Writer) *DefaultLogger {
	level := InfoLevel
	return &DefaultLogger{
		out:    log.New(w, "", log.LstdFlags),
		level:  &level,
		fields: make(Fields),
	}
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields []Fields) string {
	all := make(Fields)
	maps.Copy(all, d.fields)
	for _, f := range fields {
		maps.Copy(all, f)
	}

	line := fmt.Sprintf("[%s] %s", level, msg)
	if err != nil {
		line += fmt.Sprintf(": %v", err)
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line += fmt.Sprintf(" %s=%v", k, all[k])
	}
	return line
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields []Fields) {
	if level < *d.level {
		return
	}
	d.out.Println(d.format(level, err, msg, fields))
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) { d.log(DebugLevel, nil, msg, fields) }
func (d *DefaultLogger) Info(msg string, fields ...Fields)  { d.log(InfoLevel, nil, msg, fields) }
func (d *DefaultLogger) Warn(msg string, fields ...Fields)  { d.log(WarnLevel, nil, msg, fields) }
func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields)
}

// WithFields returns a child logger. Children share the parent's level.
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)
	return &DefaultLogger{out: d.out, level: d.level, fields: merged}
}

func (d *DefaultLogger) SetLevel(level Level) {
	*d.level = level
}

type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)        {}
func (NoOpLogger) Info(string, ...Fields)         {}
func (NoOpLogger) Warn(string, ...Fields)         {}
func (NoOpLogger) Error(error, string, ...Fields) {}
func (n NoOpLogger) WithFields(Fields) Logger     { return n }
func (NoOpLogger) SetLevel(Level)                 {}

var global Logger = New(os.Stderr)

func SetGlobalLogger(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	global = l
}

func Get() Logger { return global }

func Debug(msg string, fields ...Fields)            { global.Debug(msg, fields...) }
func Info(msg string, fields ...Fields)             { global.Info(msg, fields...) }
func Warn(msg string, fields ...Fields)             { global.Warn(msg, fields...) }
func Error(err error, msg string, fields ...Fields) { global.Error(err, msg, fields...) }
func WithFields(fields Fields) Logger               { return global.WithFields(fields) }
