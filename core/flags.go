package core

import (
	"fmt"
	"strings"
)

// Flags selects the contextual fields rendered in a record prefix
type Flags uint8

const (
	FlagDate Flags = 1 << iota
	FlagTime
	FlagFile
	FlagFunc
	FlagLine
	FlagTID
	FlagPID
	// FlagRollOver enables size-triggered rotation. Only the file sink honours it.
	FlagRollOver
)

const (
	// FlagsAll enables every rendered field
	FlagsAll = FlagDate | FlagTime | FlagFile | FlagFunc | FlagLine | FlagTID | FlagPID
	// FlagsAllFile is FlagsAll plus rotation, for the file sink
	FlagsAllFile = FlagsAll | FlagRollOver
)

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{FlagDate, "date"},
	{FlagTime, "time"},
	{FlagFile, "file"},
	{FlagFunc, "func"},
	{FlagLine, "line"},
	{FlagTID, "tid"},
	{FlagPID, "pid"},
	{FlagRollOver, "rollover"},
}

// Has reports whether every bit of other is set in f
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String returns the set flag names joined by '|', or "none"
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var sb strings.Builder
	for _, fn := range flagNames {
		if f&fn.flag == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(fn.name)
	}
	return sb.String()
}

// ParseFlags combines flag names into a Flags value. Besides the
// individual names it accepts "all" and "allfile".
func ParseFlags(names []string) (Flags, error) {
	var f Flags
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "":
			continue
		case "all":
			f |= FlagsAll
			continue
		case "allfile":
			f |= FlagsAllFile
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, raw)
		}
	}
	return f, nil
}
