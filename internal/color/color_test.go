// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorEnabled(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorEnabled(), "Expected color output to be disabled")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorEnabled(), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv(NoColor, "")
	assert.True(t, isColorEnabled(), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
}

func TestColorizeDisabledPassesThrough(t *testing.T) {
	prev := enabled
	defer func() { enabled = prev }()

	enabled = false
	assert.Equal(t, "plain", Colorize("plain", FgRed))
}

func TestColorizeEnabled(t *testing.T) {
	prev := enabled
	defer func() { enabled = prev }()

	enabled = true
	assert.Equal(t, "\033[31mred\033[0m", Colorize("red", FgRed))
	assert.Equal(t, "\033[31;97mtwo\033[0m", Colorize("two", FgRed, FgHiWhite))
}
