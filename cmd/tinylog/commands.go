package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/philipp01105/tinylog/config"
	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler"
	"github.com/philipp01105/tinylog/handler/streamhandler"
	"github.com/philipp01105/tinylog/logger"
)

// usageError reports invalid command line arguments (exit code 2)
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// app carries the writers the commands print to
type app struct {
	stdout io.Writer
}

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		a.fileCommand(),
		a.streamCommand(),
		a.demoCommand(),
	}
}

func levelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "record level: none, debug, info, warning, critical",
	}
}

func flagsFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "flags",
		Aliases: []string{"f"},
		Usage:   "prefix fields: date, time, file, func, line, tid, pid, rollover, all, allfile",
	}
}

func (a *app) fileCommand() *cli.Command {
	return &cli.Command{
		Name:         "file",
		Usage:        "write one record to the log file",
		ArgsUsage:    "<message...>",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			levelFlag(),
			flagsFlag(),
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "log file path"},
			&cli.IntFlag{Name: "max-size", Usage: "rotation threshold in bytes"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, msg, err := prepare(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("path") {
				cfg.File.Path = cmd.String("path")
			}
			if cmd.IsSet("max-size") {
				cfg.File.MaxSize = cmd.Int("max-size")
			}
			if cmd.IsSet("flags") {
				cfg.File.Flags = cmd.StringSlice("flags")
			}
			if err := cfg.Validate(); err != nil {
				return &usageError{msg: err.Error()}
			}

			h, err := cfg.OpenFile()
			if err != nil {
				return err
			}
			defer h.Close()

			logger.ToFile(h, cfg.Level(), cfg.FileFlags(), "%s", msg)
			return droppedError(h.Stats())
		},
	}
}

func (a *app) streamCommand() *cli.Command {
	return &cli.Command{
		Name:         "stream",
		Usage:        "write one record to the stream target",
		ArgsUsage:    "<message...>",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			levelFlag(),
			flagsFlag(),
			&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Usage: "stdout, stderr or a file path"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, msg, err := prepare(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("target") {
				cfg.Stream.Target = cmd.String("target")
			}
			if cmd.IsSet("flags") {
				cfg.Stream.Flags = cmd.StringSlice("flags")
			}
			if err := cfg.Validate(); err != nil {
				return &usageError{msg: err.Error()}
			}

			w, err := a.openStream(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: w})
			log := logger.NewBuilder().WithSink(h).WithFlags(cfg.StreamFlags()).Build()
			log.Logf(cfg.Level(), "%s", msg)
			return droppedError(h.Stats())
		},
	}
}

func (a *app) demoCommand() *cli.Command {
	return &cli.Command{
		Name:         "demo",
		Usage:        "write sample records to a log file and to stdout",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "directory for the demo log file", Value: "."},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.File.Path == "" {
				cfg.File.Path = filepath.Join(cmd.String("dir"), "tinylog_demo.log")
			}
			return a.demo(cfg)
		},
	}
}

// demo logs the same records to the file and to stdout, directly and
// through the slog and zap adapters.
func (a *app) demo(cfg *config.Config) error {
	fh, err := cfg.OpenFile()
	if err != nil {
		return err
	}
	sh := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: a.stdout})
	sinks := handler.NewMultiSink(fh, sh)
	defer sinks.Close()

	fileFlags := cfg.FileFlags()
	if len(cfg.File.Flags) == 0 {
		fileFlags = core.FlagsAllFile
	}
	streamFlags := cfg.StreamFlags()
	if len(cfg.Stream.Flags) == 0 {
		streamFlags = core.FlagsAll
	}

	logger.ToFile(fh, core.InfoLevel, fileFlags, "demo record written to %s", fh.Path())
	logger.ToStream(a.stdout, core.InfoLevel, streamFlags, "demo record written to stdout")

	log := logger.NewBuilder().WithSink(sinks).WithFlags(core.FlagDate | core.FlagTime | core.FlagFunc).Build()
	log.Warningf("demo warning carries the last system error")

	slog.New(handler.NewSlogHandler(sinks, core.FlagTime, nil)).Info("demo via slog", "sinks", sinks.Len())

	zl := zap.New(handler.NewZapCore(sinks, core.FlagTime, nil))
	zl.Info("demo via zap", zap.Int("sinks", sinks.Len()))

	fmt.Fprintf(a.stdout, "file: %s\n", fh.Path())
	return droppedError(fh.Stats())
}

// prepare loads the config, applies --level and returns the message
func prepare(cmd *cli.Command) (*config.Config, string, error) {
	msg := strings.Join(cmd.Args().Slice(), " ")
	if msg == "" {
		return nil, "", usagef("%s: missing message", cmd.Name)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	if cmd.IsSet("level") {
		cfg.LevelName = cmd.String("level")
	}
	return cfg, msg, nil
}

// loadConfig loads --config, or returns the defaults when it is not set
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.Load(path)
	}
	return config.Parse(nil, config.FormatYAML)
}

func (a *app) openStream(cfg *config.Config) (io.WriteCloser, error) {
	if strings.EqualFold(cfg.Stream.Target, config.TargetStdout) {
		return nopWriteCloser{a.stdout}, nil
	}
	return cfg.OpenStream()
}

// droppedError turns dropped records into a command failure
func droppedError(s handler.Snapshot) error {
	if n := s.TotalDropped(); n > 0 {
		return fmt.Errorf("%d record(s) dropped", n)
	}
	return nil
}
