// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"cogentcore.org/quill/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	tolassert.EqualTol(t, 5, v.Length(), standardTol)
	n := v.Normal()
	tolassert.EqualTol(t, 0.6, n.X, standardTol)
	tolassert.EqualTol(t, 0.8, n.Y, standardTol)
	assert.Equal(t, Vector2{}, Vector2{}.Normal())
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	tolassert.EqualTol(t, -2, v.Cross(Vec2(2, 2)), standardTol)
	assert.Equal(t, image.Point{4, 5}, Vec2(3.2, 4.9).ToPointCeil())
	assert.Equal(t, Vec2(-3, -4), v.Negate())
	tolassert.EqualTol(t, 11, v.Dot(Vec2(1, 2)), standardTol)
	assert.Equal(t, Vec2(2, 3), Vec2(1, 2).Lerp(Vec2(3, 4), 0.5))
	assert.Equal(t, Vec2(0, -1), Vec2(1, 0).Rot90CW())
	assert.Equal(t, Vec2(0, 1), Vec2(1, 0).Rot90CCW())
	tolassert.EqualTol(t, Pi/2, Atan2(1, 0), standardTol)
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(5, -2))
	assert.Equal(t, B2(1, -2, 5, 2), b)
	assert.Equal(t, Vec2(4, 4), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(2, 0)))
	assert.False(t, b.ContainsPoint(Vec2(6, 0)))
	b.ExpandByScalar(1)
	assert.Equal(t, B2(0, -3, 6, 3), b)
	assert.Equal(t, image.Rect(0, -3, 6, 3), b.ToRect())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1.001))
	assert.Equal(t, float32(2), Clamp(5, 0, 2))
	assert.Equal(t, float32(0), Clamp(-1, 0, 2))
	assert.Equal(t, float32(1000), Pow10(3))
}
