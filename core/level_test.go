package core

import (
	"errors"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelNone, ""},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{CriticalLevel, "CRITICAL"},
		{Level(42), ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{LevelNone, DebugLevel, InfoLevel, WarningLevel, CriticalLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("expected %d < %d", order[i-1], order[i])
		}
	}
}

func TestLevel_ReportsError(t *testing.T) {
	for _, l := range []Level{LevelNone, DebugLevel, InfoLevel} {
		if l.ReportsError() {
			t.Errorf("%v.ReportsError() = true, want false", l)
		}
	}
	for _, l := range []Level{WarningLevel, CriticalLevel} {
		if !l.ReportsError() {
			t.Errorf("%v.ReportsError() = false, want true", l)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"", LevelNone},
		{"none", LevelNone},
		{"DEBUG", DebugLevel},
		{"Info", InfoLevel},
		{"warn", WarningLevel},
		{"warning", WarningLevel},
		{" critical ", CriticalLevel},
		{"crit", CriticalLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(verbose) error = %v, want ErrUnknownLevel", err)
	}
}
