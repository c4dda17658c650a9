// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots builds the drawable curves and marker glyphs of data
// series from points already mapped to screen space.
package plots

import (
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
)

// Interpolations specify how consecutive points of a series are connected.
type Interpolations int32

const (
	// Linear connects points with straight lines.
	Linear Interpolations = iota

	// Step connects two points by following lines: horizontal, vertical.
	Step

	// Bezier connects points with cubic Bézier curves whose control points
	// follow the direction of the neighboring points. The curve passes
	// through every point but is not a true interpolating spline.
	Bezier

	// Spline connects points with a cardinal spline of tension [Tension].
	Spline
)

func (i Interpolations) String() string {
	switch i {
	case Step:
		return "Step"
	case Bezier:
		return "Bezier"
	case Spline:
		return "Spline"
	}
	return "Linear"
}

const (
	// BezierScale is the distance of Bézier control points from
	// their end point, relative to the segment length.
	BezierScale = 0.25

	// Tension is the cardinal spline tension.
	Tension = 0.5
)

// BuildPath returns the path connecting the points in order with the given
// interpolation. Fewer than two points give an empty path.
func BuildPath(pts []math32.Vector2, interp Interpolations) ppath.Path {
	p := ppath.Path{}
	if len(pts) < 2 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	switch interp {
	case Step:
		for i := 1; i < len(pts); i++ {
			p.LineTo(pts[i].X, pts[i-1].Y)
			p.LineTo(pts[i].X, pts[i].Y)
		}
	case Bezier:
		bezier(&p, pts)
	case Spline:
		if len(pts) < 3 {
			linear(&p, pts)
			break
		}
		spline(&p, pts)
	default:
		linear(&p, pts)
	}
	return p
}

func linear(p *ppath.Path, pts []math32.Vector2) {
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// neighbors returns the points before and after the segment from i to i+1,
// using the segment's own end points at the ends of the series.
func neighbors(pts []math32.Vector2, i int) (prev, next math32.Vector2) {
	prev, next = pts[i], pts[i+1]
	if i > 0 {
		prev = pts[i-1]
	}
	if i+2 < len(pts) {
		next = pts[i+2]
	}
	return
}

// bezier places the control points of each segment along the direction
// from the neighbor before to the neighbor after each end point, at
// [BezierScale] of the segment length. A zero direction gives a zero offset.
func bezier(p *ppath.Path, pts []math32.Vector2) {
	for i := 0; i < len(pts)-1; i++ {
		cur, nxt := pts[i], pts[i+1]
		prev, after := neighbors(pts, i)
		dist := nxt.Sub(cur).Length() * BezierScale
		d1 := nxt.Sub(prev).MulScalar(0.5).Normal()
		d2 := after.Sub(cur).MulScalar(0.5).Normal()
		cp1 := cur.Add(d1.MulScalar(dist))
		cp2 := nxt.Sub(d2.MulScalar(dist))
		p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, nxt.X, nxt.Y)
	}
}

// spline draws a cardinal spline through the points, using the
// end points as their own neighbors.
func spline(p *ppath.Path, pts []math32.Vector2) {
	for i := 0; i < len(pts)-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		p0, p3 := neighbors(pts, i)
		cp1 := p1.Add(p2.Sub(p0).MulScalar(Tension / 6))
		cp2 := p2.Sub(p3.Sub(p1).MulScalar(Tension / 6))
		p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p2.X, p2.Y)
	}
}
