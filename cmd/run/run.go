// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the `streamout run` subcommand, which spawns a
// child process and streams its output.
package run

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/matt-FFFFFF/streamout/internal/ctxlog"
	"github.com/matt-FFFFFF/streamout/internal/streamer"
	"github.com/urfave/cli/v3"
)

const (
	verboseFlag  = "verbose"
	noStderrFlag = "no-stderr"

	// pollInterval is how often runChild checks whether a worker has
	// finished forwarding its pipe.
	pollInterval = 10 * time.Millisecond
)

var (
	// ErrNoCommand is returned when no command is given to run.
	ErrNoCommand = errors.New("no command given to run")
	// ErrCouldNotStartProcess is returned when the child process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
)

// RunCmd is the command that spawns a child process and streams its stdout
// and stderr to the parent's stdout.
var RunCmd = &cli.Command{
	Name:        "run",
	Description: "Run a command and relay its output to stdout, line by line.",
	ArgsUsage:   "CMD [ARGS...]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    verboseFlag,
			Aliases: []string{"v"},
			Usage:   "Write streamer diagnostics inline with the output",
		},
		&cli.BoolFlag{
			Name:  noStderrFlag,
			Usage: "Pass the child's stderr through unmonitored instead of relaying it to stdout",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	argv := cmd.Args().Slice()

	err := runChild(ctx, cmd.Writer, cmd.Bool(verboseFlag), !cmd.Bool(noStderrFlag), argv)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child's output has already been relayed; follow its exit code.
		return cli.Exit("", exitErr.ExitCode())
	}

	if errors.Is(err, ErrNoCommand) {
		return cli.Exit("Please provide a command to run", 1)
	}

	return cli.Exit(err.Error(), 1)
}

// runChild spawns argv as a child process with its stdout (and optionally
// stderr) attached to pipes, each monitored by its own Streamer writing to
// out. It blocks until the child has exited and every monitored line has
// been forwarded.
func runChild(ctx context.Context, out io.Writer, verbose, relayStderr bool, argv []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}

	child := exec.CommandContext(ctx, argv[0], argv[1:]...)
	child.Stdin = os.Stdin

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return errors.Join(ErrFailedToCreatePipe, err)
	}

	child.Stdout = wOut

	opts := []streamer.Option{streamer.WithOutput(out)}
	if verbose {
		opts = append(opts, streamer.WithVerbose())
	}

	outStreamer := streamer.New(ctx, append(
		[]streamer.Option{streamer.WithStream(streamer.NewReaderStream(rOut))}, opts...)...)

	var (
		errStreamer *streamer.Streamer
		rErr, wErr  *os.File
	)

	if relayStderr {
		rErr, wErr, err = os.Pipe()
		if err != nil {
			_ = wOut.Close()
			waitForWorker(ctx, outStreamer)
			_ = rOut.Close()

			return errors.Join(ErrFailedToCreatePipe, err)
		}

		child.Stderr = wErr
		errStreamer = streamer.New(ctx, append(
			[]streamer.Option{streamer.WithStream(streamer.NewReaderStream(rErr))}, opts...)...)
	} else {
		child.Stderr = os.Stderr
	}

	ctxlog.Debug(ctx, "starting child process", "argv", argv)

	if err := child.Start(); err != nil {
		// Closing the write ends lets the workers reach EOF and exit on
		// their own, keeping the error path leak free.
		_ = wOut.Close()
		waitForWorker(ctx, outStreamer)
		_ = rOut.Close()

		if relayStderr {
			_ = wErr.Close()
			waitForWorker(ctx, errStreamer)
			_ = rErr.Close()
		}

		return errors.Join(ErrCouldNotStartProcess, err)
	}

	ctxlog.Debug(ctx, "child process started", "pid", child.Process.Pid)

	waitErr := child.Wait()

	// Closing the parent's write ends delivers EOF to the workers once the
	// remaining buffered output has been drained. The workers then exit by
	// themselves; stopping them early could cut off buffered lines.
	_ = wOut.Close()
	waitForWorker(ctx, outStreamer)
	_ = rOut.Close()

	if relayStderr {
		_ = wErr.Close()
		waitForWorker(ctx, errStreamer)
		_ = rErr.Close()
	}

	ctxlog.Debug(ctx, "child process finished", "error", waitErr)

	return waitErr
}

// waitForWorker blocks until the streamer's worker has forwarded everything
// and exited. On context cancellation it falls back to Stop, which joins
// the worker without waiting for end of stream.
func waitForWorker(ctx context.Context, s *streamer.Streamer) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for s.IsMonitoring() {
		select {
		case <-ctx.Done():
			s.Stop(ctx)

			return
		case <-ticker.C:
		}
	}
}
