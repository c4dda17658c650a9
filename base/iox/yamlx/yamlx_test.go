// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name    string   `yaml:"name"`
	Formats []string `yaml:"formats"`
	Scale   float64  `yaml:"scale"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.yaml")
	in := &testStruct{Name: "gallery", Formats: []string{"svg"}, Scale: 2}
	require.NoError(t, Save(in, fn))
	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	b, err := WriteBytes(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: gallery")
}
