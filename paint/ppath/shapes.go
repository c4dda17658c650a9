// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

// kappa is the control point distance ratio of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// Line adds a line segment of from (x1,y1) to (x2,y2).
func (p *Path) Line(x1, y1, x2, y2 float32) *Path {
	if Equal(x1, x2) && Equal(y1, y2) {
		return p
	}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Rectangle adds a rectangle of width w and height h.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Circle adds a circle at given center coordinates of radius r,
// as four cubic Bézier quarter arcs.
func (p *Path) Circle(cx, cy, r float32) *Path {
	if Equal(r, 0.0) {
		return p
	}
	k := r * kappa
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}
