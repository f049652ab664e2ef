package config

import "errors"

var (
	// ErrEmptyPath is returned when no config path is given
	ErrEmptyPath = errors.New("config: empty config path")

	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON
	ErrUnsupportedFormat = errors.New("config: unsupported config format")

	// ErrLoadFailed is returned when a config file cannot be read or parsed
	ErrLoadFailed = errors.New("config: failed to load config")

	// ErrInvalid is returned when a loaded config fails validation
	ErrInvalid = errors.New("config: invalid config")
)
