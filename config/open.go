package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/tinylog/handler/filehandler"
)

// nopCloser keeps Close from closing a standard stream
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenStream opens the stream target. Standard streams are returned with
// a no-op Close. A file target with a rotate block is managed by
// lumberjack; other file targets are opened for appending.
func (c *Config) OpenStream() (io.WriteCloser, error) {
	switch strings.ToLower(c.Stream.Target) {
	case "", TargetStdout:
		return nopCloser{os.Stdout}, nil
	case TargetStderr:
		return nopCloser{os.Stderr}, nil
	}

	if r := c.Stream.Rotate; r != nil {
		return &lumberjack.Logger{
			Filename:   c.Stream.Target,
			MaxSize:    r.MaxSizeMB,
			MaxBackups: r.MaxBackups,
			MaxAge:     r.MaxAgeDays,
			Compress:   r.Compress,
			LocalTime:  true,
		}, nil
	}

	f, err := os.OpenFile(c.Stream.Target, os.O_WRONLY|os.O_APPEND|os.O_CREATE, filehandler.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("config: open stream target: %w", err)
	}
	return f, nil
}

// OpenFile opens the configured log file handler
func (c *Config) OpenFile(opts ...filehandler.Option) (*filehandler.FileHandler, error) {
	return filehandler.Open(c.File.Path, c.File.MaxSize, opts...)
}
