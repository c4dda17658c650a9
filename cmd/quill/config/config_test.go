// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tf := filepath.Join(dir, "quill.toml")
	require.NoError(t, os.WriteFile(tf, []byte("output = \"out\"\nformats = [\"svg\", \"png\"]\nscale = 1.5\nfont = \"Arial\"\n"), 0666))
	var c Config
	c.Defaults()
	require.NoError(t, c.Open(tf))
	assert.Equal(t, "out", c.Output)
	assert.Equal(t, []string{"svg", "png"}, c.Formats)
	assert.Equal(t, float32(1.5), c.Scale)
	assert.Equal(t, "Arial", c.Font)
	assert.Equal(t, 4, c.Parallel)

	yf := filepath.Join(dir, "quill.yaml")
	require.NoError(t, os.WriteFile(yf, []byte("width: 640\nheight: 480\nbackground: ivory\nparallel: 2\n"), 0666))
	c.Defaults()
	require.NoError(t, c.Open(yf))
	assert.Equal(t, float32(640), c.Width)
	assert.Equal(t, float32(480), c.Height)
	assert.Equal(t, "ivory", c.Background)
	assert.Equal(t, 2, c.Parallel)
	assert.Equal(t, "gallery", c.Output)

	assert.Error(t, c.Open(filepath.Join(dir, "quill.json")))
	assert.Error(t, c.Open(filepath.Join(dir, "missing.toml")))
}

func TestValidate(t *testing.T) {
	var c Config
	c.Defaults()
	c.Formats = []string{".PNG", "svg"}
	c.Parallel = 0
	require.NoError(t, c.Validate())
	assert.Equal(t, []string{"png", "svg"}, c.Formats)
	assert.Equal(t, 1, c.Parallel)

	c.Formats = []string{"pdf"}
	assert.Error(t, c.Validate())

	c.Defaults()
	c.Scale = 0
	assert.Error(t, c.Validate())

	c.Defaults()
	c.Background = "ivorry"
	assert.ErrorContains(t, c.Validate(), `did you mean "ivory"`)

	c.Defaults()
	assert.Empty(t, c.Background)
	c.Output = "~/charts"
	require.NoError(t, c.Validate())
	assert.NotContains(t, c.Output, "~")
}
