// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/quill/math32"
)

// PixelTolerance is the maximum deviation of a flattened path from
// the original, in pixels.
var PixelTolerance = float32(0.1)

// Flatten returns a copy of the path where every CubeTo is replaced by a
// sequence of LineTo commands within [PixelTolerance] of the curve.
func (p Path) Flatten() Path {
	q := Path{}
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case MoveTo:
			q.MoveTo(end.X, end.Y)
		case LineTo:
			q.LineTo(end.X, end.Y)
		case CubeTo:
			flattenCube(&q, s.Start(), s.CP1(), s.CP2(), end)
		case Close:
			q.Close()
		}
	}
	return q
}

// flattenCube appends line segments approximating the cubic Bézier
// from p0 to p3. The segment count follows from the second differences
// of the control polygon, which bound the curve's deviation from its chords.
func flattenCube(q *Path, p0, p1, p2, p3 math32.Vector2) {
	dd1 := p0.Sub(p1.MulScalar(2)).Add(p2).Length()
	dd2 := p1.Sub(p2.MulScalar(2)).Add(p3).Length()
	dd := math32.Max(dd1, dd2)
	n := int(math32.Ceil(math32.Sqrt(0.75 * dd / PixelTolerance)))
	n = max(1, min(n, 256))
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		pt := CubicPoint(p0, p1, p2, p3, t)
		q.LineTo(pt.X, pt.Y)
	}
}

// CubicPoint returns the point on the cubic Bézier curve at parameter t in [0,1].
func CubicPoint(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return math32.Vec2(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}
