package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record
type Level int8

const (
	// LevelNone renders no level token
	LevelNone Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for warnings; the record carries the last system error
	WarningLevel
	// CriticalLevel for failures; the record carries the last system error
	CriticalLevel
)

// String returns the canonical name of the level.
// LevelNone and unknown values return an empty string.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return ""
	}
}

// ReportsError reports whether records at this level append the
// last system error description.
func (l Level) ReportsError() bool {
	return l == WarningLevel || l == CriticalLevel
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LevelNone, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "crit", "critical":
		return CriticalLevel, nil
	default:
		return LevelNone, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
