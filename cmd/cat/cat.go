// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cat implements the `streamout cat` subcommand, which streams a
// file's contents to stdout through a background worker.
package cat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/matt-FFFFFF/streamout/internal/ctxlog"
	"github.com/matt-FFFFFF/streamout/internal/streamer"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileArg     = "file"
	verboseFlag = "verbose"

	// pollInterval is how often the action checks whether the worker has
	// finished forwarding the file.
	pollInterval = 10 * time.Millisecond
)

var (
	// ErrNoFile is returned when no file is given to stream.
	ErrNoFile = errors.New("no file given to stream")
	// ErrOpenFile is returned when the file cannot be opened.
	ErrOpenFile = errors.New("failed to open file")
)

// fileSystem is the filesystem files are opened from. Tests swap it for an
// in-memory filesystem.
var fileSystem = afero.NewOsFs()

// CatCmd is the command that streams a file's contents line by line.
var CatCmd = &cli.Command{
	Name:        "cat",
	Description: "Stream a file's contents to stdout, line by line, via a background worker.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      fileArg,
			UsageText: "FILE",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    verboseFlag,
			Aliases: []string{"v"},
			Usage:   "Write streamer diagnostics inline with the output",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	err := streamFile(ctx, cmd.Writer, cmd.Bool(verboseFlag), cmd.StringArg(fileArg))
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNoFile) {
		return cli.Exit("Please provide a file to stream", 1)
	}

	return cli.Exit(err.Error(), 1)
}

// streamFile monitors the named file with a Streamer writing to out and
// blocks until the whole file has been forwarded, or the context is
// cancelled.
func streamFile(ctx context.Context, out io.Writer, verbose bool, name string) error {
	if name == "" {
		return ErrNoFile
	}

	f, err := fileSystem.Open(name)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpenFile, name, err)
	}

	defer f.Close() //nolint:errcheck

	opts := []streamer.Option{
		streamer.WithOutput(out),
		streamer.WithStream(streamer.NewReaderStream(f)),
	}
	if verbose {
		opts = append(opts, streamer.WithVerbose())
	}

	s := streamer.New(ctx, opts...)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for s.IsMonitoring() {
		select {
		case <-ctx.Done():
			ctxlog.Debug(ctx, "context cancelled, stopping streamer")
			s.Stop(ctx)

			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}
