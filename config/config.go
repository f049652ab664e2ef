package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/philipp01105/tinylog/core"
)

// Format is a config file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Stream targets with a fixed meaning
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// Config is the decoded config file
type Config struct {
	// LevelName is the level used by the command line tool
	LevelName string       `koanf:"level"`
	File      FileConfig   `koanf:"file"`
	Stream    StreamConfig `koanf:"stream"`
}

// FileConfig describes the rotating log file
type FileConfig struct {
	Path    string   `koanf:"path"`
	MaxSize int64    `koanf:"max_size"` // bytes, 0 selects the handler default
	Flags   []string `koanf:"flags"`
}

// StreamConfig describes the stream target
type StreamConfig struct {
	Target string        `koanf:"target"` // stdout, stderr or a file path
	Flags  []string      `koanf:"flags"`
	Rotate *RotateConfig `koanf:"rotate"`
}

// RotateConfig configures lumberjack for a file stream target
type RotateConfig struct {
	MaxSizeMB  int  `koanf:"max_size_mb"`
	MaxBackups int  `koanf:"max_backups"`
	MaxAgeDays int  `koanf:"max_age_days"`
	Compress   bool `koanf:"compress"`
}

// Load reads and validates the config at path.
// The format is chosen by extension: .yaml, .yml or .json.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return Parse(data, format)
}

// Parse decodes and validates config data. Empty data yields the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	k := koanf.New(".")
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	} else if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if cfg.Stream.Target == "" {
		cfg.Stream.Target = TargetStdout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks level and flag names and the stream rotation settings
func (c *Config) Validate() error {
	if _, err := core.ParseLevel(c.LevelName); err != nil {
		return fmt.Errorf("%w: level: %w", ErrInvalid, err)
	}
	if _, err := core.ParseFlags(c.File.Flags); err != nil {
		return fmt.Errorf("%w: file.flags: %w", ErrInvalid, err)
	}
	if _, err := core.ParseFlags(c.Stream.Flags); err != nil {
		return fmt.Errorf("%w: stream.flags: %w", ErrInvalid, err)
	}
	if c.File.MaxSize < 0 {
		return fmt.Errorf("%w: file.max_size must not be negative", ErrInvalid)
	}
	if r := c.Stream.Rotate; r != nil {
		if c.Stream.isStd() {
			return fmt.Errorf("%w: stream.rotate needs a file target, got %q", ErrInvalid, c.Stream.Target)
		}
		if r.MaxSizeMB < 0 || r.MaxBackups < 0 || r.MaxAgeDays < 0 {
			return fmt.Errorf("%w: stream.rotate values must not be negative", ErrInvalid)
		}
	}
	return nil
}

// Level returns the configured level. Call Validate first.
func (c *Config) Level() core.Level {
	l, _ := core.ParseLevel(c.LevelName)
	return l
}

// FileFlags returns the flags for file records. Call Validate first.
func (c *Config) FileFlags() core.Flags {
	f, _ := core.ParseFlags(c.File.Flags)
	return f
}

// StreamFlags returns the flags for stream records. Call Validate first.
func (c *Config) StreamFlags() core.Flags {
	f, _ := core.ParseFlags(c.Stream.Flags)
	return f
}

func (s StreamConfig) isStd() bool {
	switch strings.ToLower(s.Target) {
	case "", TargetStdout, TargetStderr:
		return true
	default:
		return false
	}
}

// detectFormat picks the format from the file extension
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// loadData parses data into k
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return nil
}
