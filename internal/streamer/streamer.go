// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package streamer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/matt-FFFFFF/streamout/internal/ctxlog"
)

// yieldEvery is the number of lines written within a single burst before the
// worker yields the processor, so a high-volume producer cannot starve other
// goroutines.
const yieldEvery = 10

// Streamer forwards lines from a monitored stream to the sink on a
// background worker goroutine. The zero value is not usable; call New.
//
// A Streamer runs at most one worker at a time. The worker never blocks
// process exit: Stop is the only join point, and not calling it simply
// leaves a daemonic goroutine behind.
type Streamer struct {
	verbose bool
	out     io.Writer

	// mu guards the worker bookkeeping below. The exit flag and done
	// channel are replaced as a pair on every successful Monitor call and
	// are shared only with the worker of that generation.
	mu   sync.Mutex
	exit *atomic.Bool
	done chan struct{}

	pending LineStream
}

// Option configures a Streamer at construction.
type Option func(*Streamer)

// WithVerbose makes the Streamer write its diagnostic messages to the sink,
// inline with the forwarded content.
func WithVerbose() Option {
	return func(s *Streamer) {
		s.verbose = true
	}
}

// WithOutput sets the sink the Streamer writes to. The default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Streamer) {
		s.out = w
	}
}

// WithStream supplies a stream to monitor immediately, equivalent to
// calling Monitor right after New.
func WithStream(stream LineStream) Option {
	return func(s *Streamer) {
		s.pending = stream
	}
}

// New creates a Streamer. If WithStream was given, monitoring starts before
// New returns (though no line is guaranteed to have been read yet).
func New(ctx context.Context, opts ...Option) *Streamer {
	s := &Streamer{out: os.Stdout}

	for _, opt := range opts {
		opt(s)
	}

	if s.pending != nil {
		s.Monitor(ctx, s.pending)
		s.pending = nil
	}

	return s
}

// Monitor starts forwarding lines from stream to the sink on a background
// worker and returns immediately. It is a logged no-op when a worker is
// already running, or when stream is nil. Misuse never panics.
func (s *Streamer) Monitor(ctx context.Context, stream LineStream) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.monitoring() {
		ctxlog.Debug(ctx, "monitor called while already monitoring")
		s.diag(eventAlreadyMonitoring)

		return
	}

	if stream == nil {
		ctxlog.Debug(ctx, "monitor called with nil stream")
		s.diag(eventNilStream)

		return
	}

	exit := &atomic.Bool{}
	done := make(chan struct{})
	s.exit = exit
	s.done = done

	ctxlog.Debug(ctx, "starting worker")

	go s.flush(stream, exit, done)
}

// IsMonitoring reports whether a worker is currently running and has not
// been asked to exit. It is safe to call from any goroutine.
func (s *Streamer) IsMonitoring() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.monitoring()
}

// monitoring reports the worker state. Callers must hold mu.
func (s *Streamer) monitoring() bool {
	if s.done == nil {
		return false
	}

	select {
	case <-s.done:
		return false
	default:
	}

	return !s.exit.Load()
}

// Stop asks the worker to exit and blocks until it has. After Stop returns,
// no further output from this instance's stream occurs. Stop is a logged
// no-op when nothing is being monitored.
//
// Cancellation is cooperative: the worker checks the exit flag between
// bursts, so Stop may wait for the lines of an in-flight burst to finish
// printing.
func (s *Streamer) Stop(ctx context.Context) {
	s.mu.Lock()

	if !s.monitoring() {
		ctxlog.Debug(ctx, "stop called but not monitoring")
		s.diag(eventStopNotMonitoring)
		s.mu.Unlock()

		return
	}

	exit, done := s.exit, s.done
	s.mu.Unlock()

	exit.Store(true)
	runtime.Gosched()

	ctxlog.Debug(ctx, "waiting for worker to exit")
	<-done
	ctxlog.Debug(ctx, "worker exited")
}

// flush is the worker body. It reads bursts of lines from the stream and
// writes them to the sink until the exit flag is set, the stream reports
// closed, or a read fails. All failures are contained here; nothing
// propagates to the caller.
func (s *Streamer) flush(stream LineStream, exit *atomic.Bool, done chan struct{}) {
	defer func() {
		if done != nil {
			close(done)
		}
	}()
	defer s.diag(eventFinished)

	if exit == nil || stream == nil {
		s.diag(eventNothingMonitored)

		return
	}

	for !exit.Load() && !stream.Closed() {
		if err := s.drain(stream); err != nil {
			if errors.Is(err, fs.ErrClosed) {
				s.diag(eventClosedEarly)
			}

			return
		}
	}
}

// drain reads a single burst: successive lines up to and including the
// end-of-stream marker (an empty read). Lines are written in the order they
// are read, yielding the processor every yieldEvery lines.
func (s *Streamer) drain(stream LineStream) error {
	for n := 1; ; n++ {
		line, err := stream.ReadLine()
		if err != nil {
			return err
		}

		if len(line) == 0 {
			return nil
		}

		s.writeLine(line)

		if n%yieldEvery == 0 {
			runtime.Gosched()
		}
	}
}

// writeLine prints one line to the sink, newline terminated, as a single
// write so concurrent instances interleave whole lines only. Invalid UTF-8
// is replaced with U+FFFD rather than dropping the line.
func (s *Streamer) writeLine(line []byte) {
	text := strings.TrimRight(string(line), "\r\n")
	fmt.Fprintln(s.out, strings.ToValidUTF8(text, "�")) //nolint:errcheck
}

// diag writes a diagnostic message to the sink when verbose.
func (s *Streamer) diag(e event) {
	if !s.verbose {
		return
	}

	fmt.Fprintln(s.out, e.String()) //nolint:errcheck
}
