// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	b := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(b, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return b
}

func TestLog(t *testing.T) {
	b := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, b.String(), "boom")
	assert.Contains(t, b.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	b := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, fmt.Errorf("bad value")))
	assert.Contains(t, b.String(), "bad value")
	assert.Equal(t, "x", Ignore1("x", New("ignored")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("fatal")) })
	wrapped := fmt.Errorf("outer: %w", New("inner"))
	assert.False(t, Is(wrapped, New("inner")))
}
