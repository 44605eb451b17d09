// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package streamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStrings(t *testing.T) {
	t.Parallel()

	events := []event{
		eventNothingMonitored,
		eventClosedEarly,
		eventFinished,
		eventAlreadyMonitoring,
		eventNilStream,
		eventStopNotMonitoring,
	}

	seen := make(map[string]struct{}, len(events))

	for _, e := range events {
		s := e.String()
		assert.NotEmpty(t, s)
		assert.NotContains(t, s, "unknown")

		_, dup := seen[s]
		assert.False(t, dup, "duplicate message for %d", int(e))
		seen[s] = struct{}{}
	}

	assert.Equal(t, "streamer: unknown event", event(99).String())
}
