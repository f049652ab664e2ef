package filehandler

import (
	"os"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
)

// DefaultFileMode is the permission used when a log file is created
const DefaultFileMode os.FileMode = 0644

// Option configures a FileHandler
type Option func(*FileHandler)

// WithEnv sets the providers used to render records.
// Nil providers fall back to the defaults.
func WithEnv(env core.Env) Option {
	return func(h *FileHandler) {
		h.formatter = formatter.New(env)
	}
}

// WithFileMode sets the permission bits of newly created files
func WithFileMode(mode os.FileMode) Option {
	return func(h *FileHandler) {
		h.mode = mode
	}
}
