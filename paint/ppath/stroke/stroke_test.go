// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	"testing"

	"cogentcore.org/quill/base/tolassert"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
	"github.com/stretchr/testify/assert"
)

func TestStrokeLine(t *testing.T) {
	p := ppath.New().Line(0, 0, 10, 0)
	q := Stroke(*p, 2, ButtCap, RoundJoin)
	assert.Equal(t, "M0 -1 L10 -1 L10 1 L0 1 z", q.ToSVG())
	assert.Equal(t, math32.B2(0, -1, 10, 1), q.Bounds())
}

func TestStrokeEmpty(t *testing.T) {
	p := ppath.Path{}
	p.MoveTo(5, 5)
	assert.True(t, Stroke(p, 2, nil, nil).Empty())
}

func TestStrokeJoin(t *testing.T) {
	p := ppath.Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	q := Stroke(p, 2, nil, nil)
	assert.Len(t, q.Split(), 1)
	bb := q.Bounds()
	tolassert.EqualTol(t, -1, bb.Min.Y, 1e-5)
	tolassert.EqualTol(t, 11, bb.Max.X, 1e-5)
	tolassert.EqualTol(t, 10, bb.Max.Y, 1e-5)

	// the outer corner follows a circle around the bend
	for _, c := range q.Coords() {
		if c.X > 10 && c.Y < 0 {
			tolassert.EqualTol(t, 1, c.Sub(math32.Vec2(10, 0)).Length(), 1e-4)
		}
	}
	// the inner side is cut at the crossing of both offset lines
	inner := false
	for _, c := range q.Coords() {
		assert.False(t, ppath.EqualPoint(c, math32.Vec2(10, 0)))
		if c.Sub(math32.Vec2(9, 1)).Length() < 1e-4 {
			inner = true
		}
	}
	assert.True(t, inner)
}

func TestStrokeClosed(t *testing.T) {
	p := ppath.New().Rectangle(0, 0, 10, 10)
	q := Stroke(*p, 2, nil, nil)
	ps := q.Split()
	assert.Len(t, ps, 2)
	assert.True(t, ps[0].Closed())
	assert.True(t, ps[1].Closed())
	outer, inner := ps[0].Bounds(), ps[1].Bounds()
	if outer.Size().X < inner.Size().X {
		outer, inner = inner, outer
	}
	tolassert.EqualTol(t, 12, outer.Size().X, 1e-4)
	tolassert.EqualTol(t, 8, inner.Size().X, 1e-4)
	// opposite orientations leave the inside unfilled
	assert.Less(t, area(ps[0])*area(ps[1]), float32(0))
}

// area returns the signed area of a polygon path.
func area(p ppath.Path) float32 {
	a := float32(0)
	for s := p.Scanner(); s.Scan(); {
		if s.Cmd() == ppath.MoveTo {
			continue
		}
		a += s.Start().Cross(s.End())
	}
	return a / 2
}
