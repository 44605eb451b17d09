// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides functions to determine if color output is enabled
// and to colorize strings with ANSI escape codes. It honors the NO_COLOR
// and FORCE_COLOR environment variables and falls back to terminal
// detection via the golang.org/x/term package.
package color
