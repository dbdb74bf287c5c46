package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	l       *log.Logger
	verbose bool
}

// exit is swapped out by tests.
var exit = os.Exit

var std = NewFromLogger(log.New(os.Stderr, "minifixed: ", 0), false)

// Default returns the standard logger used by the package-level output functions.
func Default() *Logger { return std }

func New(out io.Writer, prefix string, flag int, verbose bool) *Logger {
	return NewFromLogger(log.New(out, prefix, flag), verbose)
}

func NewFromLogger(l *log.Logger, verbose bool) *Logger {
	return &Logger{l: l, verbose: verbose}
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// SetVerbose enables or disables debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// SetOutput sets the output destination for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.l.SetOutput(w)
}

// Writer returns the output destination for the logger.
func (l *Logger) Writer() io.Writer {
	return l.l.Writer()
}

// Output writes the output for a logging event. Calldepth is used to recover
// the PC when file and line flags are set.
func (l *Logger) Output(calldepth int, s string) error {
	return l.l.Output(calldepth+1, s)
}

// Debugf prints like Printf, but only when the logger is verbose.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.verbose {
		return
	}
	l.l.Output(2, "debug: "+fmt.Sprintf(format, v...))
}

// Printf calls l.Output to print to the logger.
// Arguments are handled in the manner of [fmt.Printf].
func (l *Logger) Printf(format string, v ...any) {
	l.l.Output(2, fmt.Sprintf(format, v...))
}

// Println calls l.Output to print to the logger.
// Arguments are handled in the manner of [fmt.Println].
func (l *Logger) Println(v ...any) {
	l.l.Output(2, fmt.Sprintln(v...))
}

// Fatal is equivalent to l.Print() followed by a call to [os.Exit](1).
func (l *Logger) Fatal(v ...any) {
	l.l.Output(2, fmt.Sprint(v...))
	exit(1)
}

// Fatalf is equivalent to l.Printf() followed by a call to [os.Exit](1).
func (l *Logger) Fatalf(format string, v ...any) {
	l.l.Output(2, fmt.Sprintf(format, v...))
	exit(1)
}

// Fatalln is equivalent to l.Println() followed by a call to [os.Exit](1).
func (l *Logger) Fatalln(v ...any) {
	l.l.Output(2, fmt.Sprintln(v...))
	exit(1)
}

// SetOutput sets the output destination for the standard logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetVerbose enables or disables debug output on the standard logger.
func SetVerbose(verbose bool) {
	std.SetVerbose(verbose)
}

// These functions write to the standard logger.

// Debugf prints to the standard logger when it is verbose.
func Debugf(format string, v ...any) {
	if !std.verbose {
		return
	}
	std.l.Output(2, "debug: "+fmt.Sprintf(format, v...))
}

// Printf calls Output to print to the standard logger.
// Arguments are handled in the manner of [fmt.Printf].
func Printf(format string, v ...any) {
	std.l.Output(2, fmt.Sprintf(format, v...))
}

// Println calls Output to print to the standard logger.
// Arguments are handled in the manner of [fmt.Println].
func Println(v ...any) {
	std.l.Output(2, fmt.Sprintln(v...))
}

// Fatal is equivalent to [Print] followed by a call to [os.Exit](1).
func Fatal(v ...any) {
	std.l.Output(2, fmt.Sprint(v...))
	exit(1)
}

// Fatalf is equivalent to [Printf] followed by a call to [os.Exit](1).
func Fatalf(format string, v ...any) {
	std.l.Output(2, fmt.Sprintf(format, v...))
	exit(1)
}

// Fatalln is equivalent to [Println] followed by a call to [os.Exit](1).
func Fatalln(v ...any) {
	std.l.Output(2, fmt.Sprintln(v...))
	exit(1)
}
