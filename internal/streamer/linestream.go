// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package streamer

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// LineStream is the contract a monitored resource must satisfy. The Streamer
// only ever reads; it never opens or closes the resource.
type LineStream interface {
	// ReadLine returns the next line from the stream, including any line
	// terminator. An empty slice with a nil error is the end-of-stream
	// marker. Reading after the underlying resource has been closed must
	// return an error satisfying errors.Is(err, fs.ErrClosed).
	ReadLine() ([]byte, error)

	// Closed reports whether the underlying resource is closed.
	Closed() bool
}

// ReaderStream adapts an io.Reader, such as a child process pipe or an open
// file, to the LineStream contract. The stream reports Closed after the
// reader returns io.EOF or a closed-resource error, so a pipe is a single
// burst that ends when the writing end is closed.
type ReaderStream struct {
	mu      sync.Mutex
	br      *bufio.Reader
	eof     bool
	readErr error
}

// NewReaderStream wraps r in a buffered line reader.
func NewReaderStream(r io.Reader) *ReaderStream {
	return &ReaderStream{br: bufio.NewReader(r)}
}

// ReadLine implements LineStream. A partial line at end of stream is
// returned as a final line; the call after that returns the end-of-stream
// marker.
func (rs *ReaderStream) ReadLine() ([]byte, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.readErr != nil {
		return nil, rs.readErr
	}

	if rs.eof {
		return nil, nil
	}

	line, err := rs.br.ReadBytes('\n')

	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		rs.eof = true
		return line, nil
	default:
		// os.File reads after Close surface as fs.ErrClosed; keep the
		// original error so the worker can tell closure from other
		// failures.
		rs.readErr = err
		return nil, err
	}
}

// Closed implements LineStream.
func (rs *ReaderStream) Closed() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.eof || rs.readErr != nil
}

var _ LineStream = (*ReaderStream)(nil)
