// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried structured logger built on the
// slog package. The log level is read from the STREAMOUT_LOG_LEVEL
// environment variable ("DEBUG", "INFO", "WARN", "ERROR"; anything else
// defaults to "WARN").
//
// Log output goes to standard error so that it never interleaves with the
// stream content the tool forwards to standard output.
package ctxlog
