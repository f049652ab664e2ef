package core

import "errors"

var (
	// ErrUnknownLevel is returned by ParseLevel for an unrecognised name
	ErrUnknownLevel = errors.New("tinylog: unknown level")

	// ErrUnknownFlag is returned by ParseFlags for an unrecognised name
	ErrUnknownFlag = errors.New("tinylog: unknown flag")
)
