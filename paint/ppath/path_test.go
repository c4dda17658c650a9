// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/quill/base/tolassert"
	"cogentcore.org/quill/math32"
	"github.com/stretchr/testify/assert"
)

func TestPathLineTo(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(2, 0) // collinear, kept as its own vertex
	p.LineTo(2, 0) // zero length, dropped
	p.LineTo(2, 3)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}}, p.Coords())
	assert.Equal(t, math32.Vec2(2, 3), p.Pos())
	assert.Equal(t, "M0 0 L1 0 L2 0 L2 3", p.ToSVG())
	assert.False(t, p.Closed())
}

func TestPathImplicitMoveTo(t *testing.T) {
	p := Path{}
	p.LineTo(5, 5)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 5, Y: 5}}, p.Coords())

	q := Path{}
	q.MoveTo(1, 1)
	q.MoveTo(2, 2)
	assert.Equal(t, Path{MoveTo, 2, 2, MoveTo}, q)
	assert.True(t, q.Empty())
}

func TestPathRectangle(t *testing.T) {
	p := New().Rectangle(10, 20, 30, 40)
	assert.True(t, p.Closed())
	assert.Equal(t, "M10 20 L40 20 L40 60 L10 60 z", p.ToSVG())
	bb := p.Bounds()
	assert.Equal(t, math32.B2(10, 20, 40, 60), bb)
	assert.True(t, New().Rectangle(0, 0, 0, 5).Empty())
}

func TestPathCubeFlatten(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.CubeTo(0, 10, 10, 10, 10, 0)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "M0 0 C0 10 10 10 10 0", p.ToSVG())

	f := p.Flatten()
	pts := f.Coords()
	assert.Greater(t, len(pts), 4)
	assert.Equal(t, math32.Vec2(10, 0), pts[len(pts)-1])
	mid := CubicPoint(math32.Vec2(0, 0), math32.Vec2(0, 10), math32.Vec2(10, 10), math32.Vec2(10, 0), 0.5)
	tolassert.EqualTol(t, 5, mid.X, 1e-5)
	tolassert.EqualTol(t, 7.5, mid.Y, 1e-5)
}

func TestPathCircle(t *testing.T) {
	p := New().Circle(50, 50, 10)
	bb := p.Bounds()
	tolassert.EqualTol(t, 40, bb.Min.X, 1e-4)
	tolassert.EqualTol(t, 60, bb.Max.Y, 1e-4)
	assert.True(t, p.Closed())
	for s := p.Flatten().Scanner(); s.Scan(); {
		d := s.End().Sub(math32.Vec2(50, 50)).Length()
		tolassert.EqualTol(t, 10, d, 0.1)
	}
}

func TestPathTransform(t *testing.T) {
	p := New().Line(1, 2, 3, 4)
	q := p.Scale(2, 3)
	assert.Equal(t, []math32.Vector2{{X: 2, Y: 6}, {X: 6, Y: 12}}, q.Coords())
	assert.Equal(t, []math32.Vector2{{X: 1, Y: 2}, {X: 3, Y: 4}}, p.Coords())
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", Num(0))
	assert.Equal(t, "1.5", Num(1.5))
	assert.Equal(t, "-20", Num(-20))
	assert.Equal(t, "0.1", Num(0.1))
}

func TestPathSplitReverse(t *testing.T) {
	p := New().Line(0, 0, 10, 0)
	p.MoveTo(0, 5)
	p.LineTo(5, 5)
	p.LineTo(5, 10)
	ps := p.Split()
	assert.Len(t, ps, 2)
	assert.Equal(t, "M0 0 L10 0", ps[0].ToSVG())
	assert.Equal(t, "M0 5 L5 5 L5 10", ps[1].ToSVG())

	assert.Equal(t, "M5 10 L5 5 L0 5 M10 0 L0 0", p.Reverse().ToSVG())

	r := New().Rectangle(0, 0, 2, 1)
	rr := r.Reverse()
	assert.True(t, rr.Closed())
	assert.Equal(t, "M0 0 L0 1 L2 1 L2 0 z", rr.ToSVG())
}

func TestPathJoin(t *testing.T) {
	a := New().Line(0, 0, 1, 0)
	b := New().Line(1, 0, 1, 1)
	assert.Equal(t, "M0 0 L1 0 L1 1", a.Join(*b).ToSVG())
	c := New().Line(2, 2, 3, 3)
	assert.Equal(t, "M0 0 L1 0 M2 2 L3 3", a.Join(*c).ToSVG())
	assert.Equal(t, "M0 0 L1 0", a.ToSVG(), "receiver is unchanged")
}

func TestPathSplitAt(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	tolassert.EqualTol(t, 20, p.Length(), 1e-5)
	ps := p.SplitAt(5, 10, 15)
	assert.Len(t, ps, 4)
	assert.Equal(t, "M0 0 L5 0", ps[0].ToSVG())
	assert.Equal(t, "M5 0 L10 0", ps[1].ToSVG())
	assert.Equal(t, "M10 0 L10 5", ps[2].ToSVG())
	assert.Equal(t, "M10 5 L10 10", ps[3].ToSVG())
}

func TestPathDash(t *testing.T) {
	p := New().Line(0, 0, 20, 0)
	assert.Equal(t, "M0 0 L5 0 M10 0 L15 0", p.Dash(0, 5, 5).ToSVG())
	assert.Equal(t, "M0 0 L5 0 M10 0 L15 0", p.Dash(0, 5).ToSVG(), "odd patterns repeat")
	assert.Equal(t, "M2 0 L7 0 M12 0 L17 0", p.Dash(8, 5, 5).ToSVG())
	assert.Equal(t, p.ToSVG(), p.Dash(0).ToSVG())
	assert.True(t, p.Dash(0, 0, 0).Empty())

	// each subpath restarts the pattern
	q := p.Append(*New().Line(0, 10, 8, 10))
	assert.Equal(t, "M0 0 L5 0 M10 0 L15 0 M0 10 L5 10", q.Dash(0, 5, 5).ToSVG())
}
