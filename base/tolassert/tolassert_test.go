// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordT struct {
	errors []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestEqual(t *testing.T) {
	Equal(t, float32(0.1), float32(0.1004))
	Equal(t, 0.25, 0.2505)
	Equal(t, 3, 3)

	r := &recordT{}
	assert.False(t, Equal(r, 1.0, 1.01))
	assert.False(t, Equal(r, 2, 3))
	assert.Len(t, r.errors, 2)
}

func TestEqualTol(t *testing.T) {
	EqualTol(t, float32(2), 2.015, 0.02)
	EqualTol(t, 10, 12, 2)

	r := &recordT{}
	assert.False(t, EqualTol(r, 2.0, 2.1, 0.05))
	assert.Len(t, r.errors, 1)
}

func TestEqualTolSlice(t *testing.T) {
	EqualTolSlice(t, []float64{1, 2, 3}, []float64{1.001, 1.999, 3}, 0.01)

	r := &recordT{}
	assert.False(t, EqualTolSlice(r, []float64{1, 2}, []float64{1}, 0.01))
	assert.False(t, EqualTolSlice(r, []float64{1, 2}, []float64{1, 2.5}, 0.01))
	assert.Len(t, r.errors, 2)
}
