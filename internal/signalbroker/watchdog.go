// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/streamout/internal/ctxlog"
)

// Watch monitors the signal channel and handles signals.
// The first signal of a given type is left for the child process to handle
// via the shared terminal; the second cancels the context so the host can
// terminate the child itself.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sigMap := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := sigMap[sig]; ok {
			ctxlog.Logger(ctx).Info("watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received first signal of type, no-op", "signal", sig.String())

		sigMap[sig] = struct{}{}
	}
}
