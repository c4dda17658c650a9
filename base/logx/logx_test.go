// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	h := NewHandler(b, slog.LevelInfo)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	l := slog.New(h).With("chart", "line").WithGroup("render")
	l.Info("rendered", "ms", 12)
	l.Debug("hidden")
	out := b.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, "chart=line")
	assert.Contains(t, out, "render.ms=12")
	assert.NotContains(t, out, "render.chart")
	assert.NotContains(t, out, "hidden")

	b.Reset()
	l.With("format", "svg").WithGroup("size").Info("done", "w", 800)
	out = b.String()
	assert.Contains(t, out, " chart=line")
	assert.Contains(t, out, " render.format=svg")
	assert.Contains(t, out, " render.size.w=800")
}
