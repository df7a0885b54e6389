package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	debugColor = color.New(color.Faint)
	warnColor  = color.New(color.FgYellow)
)

// Logger writes harness diagnostics, separate from the test report
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a Logger; debug messages are only written when verbose is set
func NewLogger(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// Debugf logs a message in verbose mode
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	debugColor.Fprintln(l.out, fmt.Sprintf(format, args...))
}

// Warnf always logs a message
func (l *Logger) Warnf(format string, args ...any) {
	warnColor.Fprintln(l.out, "warning: "+fmt.Sprintf(format, args...))
}
