// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/streamout/cmd/cat"
	"github.com/matt-FFFFFF/streamout/cmd/run"
	"github.com/urfave/cli/v3"
)

// Version is set during the build process.
var Version = "dev"

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		cat.CatCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "streamout",
	Version:   Version,
	Description: `Streamout relays the output of a child process to stdout, line by line.
Each monitored stream is read on its own background worker, so the parent
is never blocked by the producer, and whole lines from concurrent streams
interleave without being split.`,
	Usage:                 "streamout run -- watch -n 2 ls",
	Copyright:             "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors:               []any{"Matt White (matt-FFFFFF)"},
	EnableShellCompletion: true,
}
