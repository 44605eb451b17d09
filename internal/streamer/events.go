// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package streamer

// event identifies a diagnostic condition reported by a Streamer. The set is
// closed; each event maps to a fixed message written to the sink when the
// Streamer is verbose.
type event int

const (
	// eventNothingMonitored indicates the read loop was entered without a
	// stream to read from.
	eventNothingMonitored event = iota
	// eventClosedEarly indicates the stream was closed while being read.
	eventClosedEarly
	// eventFinished indicates the worker has terminated.
	eventFinished
	// eventAlreadyMonitoring indicates Monitor was called while a worker
	// was running.
	eventAlreadyMonitoring
	// eventNilStream indicates Monitor was called with a nil stream.
	eventNilStream
	// eventStopNotMonitoring indicates Stop was called with no worker
	// running.
	eventStopNotMonitoring
)

// String implements the Stringer interface for event.
func (e event) String() string {
	switch e {
	case eventNothingMonitored:
		return "streamer: nothing is being monitored, pass a stream to New or Monitor"
	case eventClosedEarly:
		return "streamer: the stream closed while being read from"
	case eventFinished:
		return "streamer: finished"
	case eventAlreadyMonitoring:
		return "streamer: already monitoring"
	case eventNilStream:
		return "streamer: the given stream to monitor is nil"
	case eventStopNotMonitoring:
		return "streamer: stop called but not monitoring"
	default:
		return "streamer: unknown event"
	}
}
