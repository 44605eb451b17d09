// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package streamer forwards lines from a byte-oriented, line-delimited
// stream (typically a child process's captured stdout or stderr) to the
// process's standard output on a background goroutine, so the caller is
// never blocked by the producer.
//
// Each Streamer owns at most one worker goroutine at a time. Monitor starts
// the worker and returns immediately; Stop requests a cooperative shutdown
// and blocks until the worker has exited, guaranteeing no further output
// from that instance afterwards. Independent Streamer instances may run
// concurrently: each writes whole lines to the shared sink, so output from
// different instances interleaves but individual lines are never split.
//
// The Streamer only reads the stream it is given. Opening and closing the
// underlying resource, and the child process itself, remain the caller's
// responsibility.
package streamer
