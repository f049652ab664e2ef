// tinylog writes log records to a rotating file or a stream from the
// command line.
//
// Usage:
//
//	tinylog [global options] <command> [command options] <message...>
//
// Global options:
//
//	-c, --config   YAML or JSON config file
//
// Commands:
//
//	file     write one record to the configured log file
//	stream   write one record to the configured stream (stdout by default)
//	demo     write sample records to a file and to stdout
//
// Command options override values from the config file.
//
// Exit codes:
//
//	0: success
//	1: the config or a log destination could not be opened
//	2: invalid arguments or config values (unknown level or flag, missing
//	   message, unknown command)
//
// Examples:
//
//	tinylog stream --level info --flags date,time "service started"
//	tinylog file --path logs/app.log --flags allfile --max-size 1048576 "x=5"
//	tinylog -c tinylog.yaml demo
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/philipp01105/tinylog/config"
)

// Version can be set with -ldflags "-X main.Version=1.0.0"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// createApp creates the CLI application
func createApp(stdout, stderr io.Writer) *cli.Command {
	a := &app{stdout: stdout}
	return &cli.Command{
		Name:      "tinylog",
		Usage:     "write log records to a rotating file or a stream",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or JSON config file",
			},
		},
		Commands:     a.commands(),
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return usagef("unknown command %q", cmd.Args().First())
			}
			return usagef("missing command, see %s --help", cmd.Name)
		},
		// run maps errors to exit codes; cli must not call os.Exit itself
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := createApp(stdout, stderr).Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "usage error: %v\n", usageErr)
			return 2
		}
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintf(stderr, "usage error: %v\n", err)
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// onUsageError marks flag parsing failures as usage errors
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}
