// Package logging implements the ambient structured logger gmtool and the
// codec packages use to report entry-level failures and verbose diagnostics
// without aborting the operation in progress.
package logging

import (
	"fmt"
	"time"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Component identifies which part of the codec stack produced a log entry.
type Component string

const (
	ComponentIO  Component = "IO"
	ComponentTGX Component = "TGX"
	ComponentGM1 Component = "GM1"
	ComponentCLI Component = "CLI"
)

// Entry is a single log record.
type Entry struct {
	Timestamp time.Time
	Component Component
	Level     Level
	Message   string
}

// Format renders e the way gmtool prints it to stderr under --verbose.
func (e Entry) Format() string {
	return fmt.Sprintf("[%s] [%s] %s: %s", e.Timestamp.Format("15:04:05.000"), e.Component, e.Level, e.Message)
}
