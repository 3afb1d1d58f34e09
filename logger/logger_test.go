// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetOutput(t *testing.T) {
	defer Set(Logger())

	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	l := Logger()
	l.Info().Str("k", "v").Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestDisable(t *testing.T) {
	defer Set(Logger())

	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	Disable()
	l := Logger()
	l.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}
