// Package diagnostics provides the leveled console output for the CLI and
// the Reporter surface the emission driver records NOTEs and ERRORs on.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level controls how much diagnostic output is produced.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelDebug
)

// System provides structured, user-friendly console output.
type System struct {
	level     Level
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
}

// NewSystem creates a diagnostic system at the given level.
func NewSystem(level Level) *System {
	return &System{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= LevelVerbose,
		output:    os.Stdout,
		errorOut:  os.Stderr,
	}
}

// NewQuiet creates a diagnostic system that only shows errors.
func NewQuiet() *System {
	return NewSystem(LevelError)
}

// NewVerbose creates a diagnostic system with full output.
func NewVerbose() *System {
	return NewSystem(LevelVerbose)
}

// Error outputs error messages (always shown unless silent).
func (s *System) Error(format string, args ...any) {
	if s.level >= LevelError {
		s.writeMessage(s.errorOut, "ERROR", color.FgRed, format, args...)
	}
}

// Warn outputs warning messages.
func (s *System) Warn(format string, args ...any) {
	if s.level >= LevelWarn {
		s.writeMessage(s.output, "WARN", color.FgYellow, format, args...)
	}
}

// Info outputs informational messages.
func (s *System) Info(format string, args ...any) {
	if s.level >= LevelInfo {
		s.writeMessage(s.output, "INFO", color.FgBlue, format, args...)
	}
}

// Success outputs success messages with emphasis.
func (s *System) Success(format string, args ...any) {
	if s.level >= LevelInfo {
		s.writeMessage(s.output, "SUCCESS", color.FgGreen, format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only).
func (s *System) Verbose(format string, args ...any) {
	if s.level >= LevelVerbose {
		s.writeMessage(s.output, "VERBOSE", color.FgHiBlack, format, args...)
	}
}

// Debug outputs debug messages (highest verbosity).
func (s *System) Debug(format string, args ...any) {
	if s.level >= LevelDebug {
		s.writeMessage(s.output, "DEBUG", color.FgMagenta, format, args...)
	}
}

// Section creates a prominent section header.
func (s *System) Section(title string) {
	if s.level >= LevelInfo {
		fmt.Fprintf(s.output, "%s\n", title)
	}
}

// List outputs a bulleted list item.
func (s *System) List(format string, args ...any) {
	if s.level >= LevelInfo {
		fmt.Fprintf(s.output, "- %s\n", fmt.Sprintf(format, args...))
	}
}

// Summary outputs a final summary with statistics in a stable order.
func (s *System) Summary(title string, stats []Stat) {
	if s.level >= LevelInfo {
		fmt.Fprintf(s.output, "\n%s\n", title)
		for _, stat := range stats {
			fmt.Fprintf(s.output, "   %s: %v\n", stat.Name, stat.Value)
		}
		fmt.Fprintln(s.output)
	}
}

// Stat is one summary line.
type Stat struct {
	Name  string
	Value any
}

// writeMessage is the internal message writing function.
func (s *System) writeMessage(writer io.Writer, label string, attr color.Attribute, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	var out strings.Builder
	if s.showTime {
		out.WriteString(time.Now().Format("15:04:05 "))
	}
	if s.useColors {
		out.WriteString(color.New(attr).Sprintf("[%s]", label))
		out.WriteString(" ")
	} else {
		fmt.Fprintf(&out, "[%s] ", label)
	}
	out.WriteString(message)
	out.WriteString("\n")

	fmt.Fprint(writer, out.String())
}

// shouldUseColors determines if colors should be used.
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
