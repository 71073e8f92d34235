// SPDX-License-Identifier: Apache-2.0

// Package report provides the leveled reporter the engine receives as an
// explicit dependency. There is no process-wide logger; every component that
// reports progress is handed a Reporter.
package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level is the minimum severity a Reporter emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// Reporter is a small leveled logger. The zero value is not usable; construct
// with New or Discard.
type Reporter struct {
	out   *log.Logger
	err   *log.Logger
	level Level
}

// New creates a Reporter writing to stderr at the given level. Stdout is
// left to the MCP stdio transport.
func New(level Level) *Reporter {
	return &Reporter{
		out:   log.New(os.Stderr, "", 0),
		err:   log.New(os.Stderr, "", 0),
		level: level,
	}
}

// Discard creates a Reporter that swallows all output; used in tests and as
// the default when a caller passes nil.
func Discard() *Reporter {
	silent := log.New(io.Discard, "", 0)
	return &Reporter{out: silent, err: silent, level: LevelError + 1}
}

func (r *Reporter) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (r *Reporter) Debug(format string, args ...any) {
	if r.level <= LevelDebug {
		r.out.Printf(fmt.Sprintf("[%s] DEBUG %s", r.timestamp(), format), args...)
	}
}

func (r *Reporter) Info(format string, args ...any) {
	if r.level <= LevelInfo {
		r.out.Printf(fmt.Sprintf("[%s] INFO  %s", r.timestamp(), format), args...)
	}
}

func (r *Reporter) Warn(format string, args ...any) {
	if r.level <= LevelWarn {
		r.out.Printf(fmt.Sprintf("[%s] WARN  %s", r.timestamp(), format), args...)
	}
}

func (r *Reporter) Error(format string, args ...any) {
	if r.level <= LevelError {
		r.err.Printf(fmt.Sprintf("[%s] ERROR %s", r.timestamp(), format), args...)
	}
}
