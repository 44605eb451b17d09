// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package streamer

import (
	"bytes"
	"io/fs"
	"sync"
	"time"
)

// scriptedStream is a LineStream test double that delivers its lines in
// bursts, each terminated by the empty end-of-stream marker. It reports
// closed once every burst has been consumed, and a closed-stream read error
// on any read after that.
type scriptedStream struct {
	mu      sync.Mutex
	bursts  [][]string
	burst   int
	line    int
	delay   time.Duration // pause before the first line of each burst
	readErr error         // forced ReadLine error, for failure injection
}

func (m *scriptedStream) ReadLine() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return nil, m.readErr
	}

	if m.burst >= len(m.bursts) {
		return nil, fs.ErrClosed
	}

	if m.line == 0 && m.delay > 0 {
		time.Sleep(m.delay)
	}

	current := m.bursts[m.burst]
	if m.line >= len(current) {
		m.burst++
		m.line = 0

		return nil, nil
	}

	v := current[m.line]
	m.line++

	return []byte(v), nil
}

func (m *scriptedStream) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.readErr == nil && m.burst >= len(m.bursts)
}

// tickingStream is a LineStream test double that produces lines forever,
// with a burst boundary after every line so the worker's exit check is
// reachable.
type tickingStream struct {
	mu   sync.Mutex
	tick bool
}

func (ts *tickingStream) ReadLine() ([]byte, error) {
	time.Sleep(2 * time.Millisecond)

	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tick = !ts.tick
	if ts.tick {
		return []byte("tick"), nil
	}

	return nil, nil
}

func (ts *tickingStream) Closed() bool {
	return false
}

// syncBuffer is a goroutine-safe sink for capturing Streamer output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Len()
}
