// Package logger writes leveled messages to the console and, when configured, to a log file.
// The file receives every level with a timestamp; the console only what passes the threshold.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level is a message severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// consolePrefix decorates console lines; INFO stays bare so CLI output reads cleanly
var consolePrefix = [...]string{"[DEBUG] ", "", "⚠️  ", "❌ "}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel accepts the level names used in config files, case-insensitively
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Options configures Init
type Options struct {
	Console io.Writer // nil means stdout
	File    string    // empty disables the log file
	Level   Level     // console threshold
}

type logger struct {
	console *log.Logger
	file    *log.Logger
	f       *os.File
	level   Level
}

var std *logger

// Init replaces the process logger. A previously opened log file is closed.
func Init(opts Options) error {
	Close()

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	l := &logger{
		console: log.New(console, "", 0),
		level:   opts.Level,
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.f = f
		l.file = log.New(f, "", log.LstdFlags)
	}

	std = l
	return nil
}

// Close flushes and closes the log file, if any
func Close() {
	if std != nil && std.f != nil {
		std.f.Close()
		std.f = nil
		std.file = nil
	}
}

// FilePath returns the open log file, or "" when logging to the console only
func FilePath() string {
	if std == nil || std.f == nil {
		return ""
	}
	return std.f.Name()
}

func Debug(format string, args ...any) { output(LevelDebug, format, args...) }
func Info(format string, args ...any)  { output(LevelInfo, format, args...) }
func Warn(format string, args ...any)  { output(LevelWarn, format, args...) }
func Error(format string, args ...any) { output(LevelError, format, args...) }

// Plain prints to the console without prefix and skips the log file.
// Used for usage text and result summaries.
func Plain(format string, args ...any) {
	if std == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	std.console.Printf(format, args...)
}

// ScanError records a route file that could not be read or parsed.
// Details go to the log file; the console sees them only at debug level.
func ScanError(path string, err error, stage string) {
	if std == nil {
		return
	}
	if std.file != nil {
		std.file.Printf("[SCAN_ERROR] %s (%s): %v", path, stage, err)
	}
	if std.level <= LevelDebug {
		std.console.Printf("%s%s: %v", consolePrefix[LevelDebug], path, err)
	}
}

func output(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if std == nil {
		// Before Init only warnings and errors are worth printing
		if level >= LevelWarn {
			fmt.Println(level.String() + ": " + msg)
		} else if level == LevelInfo {
			fmt.Println(msg)
		}
		return
	}

	if std.file != nil {
		std.file.Printf("[%s] %s", level, msg)
	}
	if level >= std.level {
		std.console.Print(consolePrefix[level] + msg)
	}
}
