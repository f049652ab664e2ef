package logger

import (
	"github.com/philipp01105/tinylog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	LevelNone     = core.LevelNone
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	CriticalLevel = core.CriticalLevel
)

// Flags Re-export type and constants for convenience
type Flags = core.Flags

const (
	FlagDate     = core.FlagDate
	FlagTime     = core.FlagTime
	FlagFile     = core.FlagFile
	FlagFunc     = core.FlagFunc
	FlagLine     = core.FlagLine
	FlagTID      = core.FlagTID
	FlagPID      = core.FlagPID
	FlagRollOver = core.FlagRollOver
	FlagsAll     = core.FlagsAll
	FlagsAllFile = core.FlagsAllFile
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
