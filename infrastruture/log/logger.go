// Package log implements the i.Logger interface with a colored,
// component-prefixed logger writing to a single stream.
package log

import (
	"errors"
	"io"
	stdlog "log"

	"github.com/beka-birhanu/pony-rescuer/config"
	"github.com/beka-birhanu/pony-rescuer/service/i"
)

// Logger writes leveled, prefixed log lines in a fixed color.
type Logger struct {
	prefix string
	color  string
	out    *stdlog.Logger
}

// New creates a Logger for the named component, coloring its prefix with
// the given ANSI color code.
func New(prefix, color string, out io.Writer) (i.Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    stdlog.New(out, "", stdlog.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor+"[INFO]"+config.LogColorReset, msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print("[WARNING]", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor+"[ERROR]"+config.LogColorReset, msg)
}

func (l *Logger) print(level, msg string) {
	l.out.Printf("%s[%s]%s %s %s", l.color, l.prefix, config.ColorReset, level, msg)
}
