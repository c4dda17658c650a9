// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stroke converts paths into the outlines of their strokes,
// which can then be filled with the nonzero rule.
package stroke

import (
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
)

// roundSegments is the number of line segments per half turn
// used to approximate round joins.
const roundSegments = 12

// Stroke converts a path into a stroke of width w and returns the
// outline as a new path. Curves are flattened first. It uses cr to cap
// the start and end of open subpaths, and jr to join all segments.
// Closed subpaths are joined between their end and start instead of
// being capped, and produce an outer and an inner contour of opposite
// orientation.
func Stroke(p ppath.Path, w float32, cr Capper, jr Joiner) ppath.Path {
	if cr == nil {
		cr = ButtCap
	}
	if jr == nil {
		jr = RoundJoin
	}
	q := ppath.Path{}
	halfWidth := math32.Abs(w) / 2
	if halfWidth == 0 {
		return q
	}
	for _, pi := range p.Flatten().Split() {
		rhs, lhs := offset(pi, halfWidth, cr, jr)
		if rhs == nil {
			continue
		} else if lhs == nil {
			q = q.Append(rhs)
		} else {
			q = q.Append(rhs, lhs.Reverse())
		}
	}
	return q
}

// Capper implements Cap, with p the path to append to, halfWidth the
// half width of the stroke, pivot the point around which to construct
// the cap, and n0 the normal pointing from the pivot to the current
// position of p. The length of n0 is equal to halfWidth.
type Capper interface {
	Cap(p *ppath.Path, halfWidth float32, pivot, n0 math32.Vector2)
}

// ButtCap caps the start or end of a path by a butt cap.
var ButtCap Capper = ButtCapper{}

// ButtCapper is a butt capper.
type ButtCapper struct{}

// Cap adds a cap to path p of width 2*halfWidth,
// at a pivot point and initial normal direction of n0.
func (ButtCapper) Cap(p *ppath.Path, halfWidth float32, pivot, n0 math32.Vector2) {
	end := pivot.Sub(n0)
	p.LineTo(end.X, end.Y)
}

func (ButtCapper) String() string {
	return "Butt"
}

// Joiner implements Join, with rhs the right path and lhs the left path
// to append to, pivot the intersection of both path segments, and n0
// and n1 the normals at the end of the previous and the start of the
// next segment. The length of n0 and n1 is equal to halfWidth.
type Joiner interface {
	Join(rhs, lhs *ppath.Path, halfWidth float32, pivot, n0, n1 math32.Vector2)
}

// RoundJoin connects two path segments by a round join.
var RoundJoin Joiner = RoundJoiner{}

// RoundJoiner is a round joiner. The outer side follows a circle
// around the pivot, and the inner side passes through the pivot so
// that the outline keeps a non-negative winding when the offset
// segments do not cross.
type RoundJoiner struct{}

func (RoundJoiner) Join(rhs, lhs *ppath.Path, halfWidth float32, pivot, n0, n1 math32.Vector2) {
	rEnd := pivot.Add(n1)
	lEnd := pivot.Sub(n1)
	cw := 0 <= n0.Rot90CW().Dot(n1)
	if cw { // bend to the right
		rhs.LineTo(pivot.X, pivot.Y)
		rhs.LineTo(rEnd.X, rEnd.Y)
		arc(lhs, pivot, n0.Negate(), n1.Negate())
	} else { // bend to the left
		arc(rhs, pivot, n0, n1)
		lhs.LineTo(pivot.X, pivot.Y)
		lhs.LineTo(lEnd.X, lEnd.Y)
	}
}

func (RoundJoiner) String() string {
	return "Round"
}

// arc adds line segments along the shorter circular arc around pivot
// from pivot+n0 to pivot+n1.
func arc(p *ppath.Path, pivot, n0, n1 math32.Vector2) {
	r := n0.Length()
	a0 := math32.Atan2(n0.Y, n0.X)
	da := math32.Atan2(n0.Cross(n1), n0.Dot(n1))
	n := int(math32.Ceil(math32.Abs(da) / math32.Pi * roundSegments))
	for i := 1; i < n; i++ {
		s, c := math32.Sincos(a0 + da*float32(i)/float32(n))
		p.LineTo(pivot.X+r*c, pivot.Y+r*s)
	}
	end := pivot.Add(n1)
	p.LineTo(end.X, end.Y)
}

type segment struct {
	p0, p1 math32.Vector2 // start and end
	n      math32.Vector2 // normal pointing right when walking the path
}

// offset returns the rhs and lhs paths from offsetting a flattened path
// without subpaths. For closed paths both sides are closed; for open
// paths the capped outline is returned as rhs and lhs is nil.
func offset(p ppath.Path, halfWidth float32, cr Capper, jr Joiner) (ppath.Path, ppath.Path) {
	closed := false
	var segs []segment
	for s := p.Scanner(); s.Scan(); {
		cmd := s.Cmd()
		if cmd == ppath.MoveTo {
			continue
		}
		start, end := s.Start(), s.End()
		if cmd == ppath.Close {
			closed = true
		}
		if ppath.EqualPoint(start, end) {
			continue
		}
		n := end.Sub(start).Rot90CW().Normal().MulScalar(halfWidth)
		segs = append(segs, segment{p0: start, p1: end, n: n})
	}
	if len(segs) == 0 {
		return nil, nil
	}

	rhs, lhs := ppath.Path{}, ppath.Path{}
	rStart := segs[0].p0.Add(segs[0].n)
	lStart := segs[0].p0.Sub(segs[0].n)
	rhs.MoveTo(rStart.X, rStart.Y)
	lhs.MoveTo(lStart.X, lStart.Y)
	rhsJoin, lhsJoin := -1, -1
	for i, cur := range segs {
		rEnd := cur.p1.Add(cur.n)
		lEnd := cur.p1.Sub(cur.n)
		rhs.LineTo(rEnd.X, rEnd.Y)
		lhs.LineTo(lEnd.X, lEnd.Y)

		if rhsJoin != -1 {
			optimizeInnerBend(&rhs, rhsJoin)
		} else if lhsJoin != -1 {
			optimizeInnerBend(&lhs, lhsJoin)
		}
		rhsJoin, lhsJoin = -1, -1

		if i+1 < len(segs) || closed {
			next := segs[0]
			if i+1 < len(segs) {
				next = segs[i+1]
			}
			if !ppath.EqualPoint(cur.n, next.n) {
				if 0 <= cur.n.Rot90CW().Dot(next.n) {
					rhsJoin = len(rhs)
				} else {
					lhsJoin = len(lhs)
				}
				jr.Join(&rhs, &lhs, halfWidth, cur.p1, cur.n, next.n)
			}
		}
	}

	if closed {
		if rhsJoin != -1 {
			optimizeInnerClose(&rhs, rhsJoin)
		} else if lhsJoin != -1 {
			optimizeInnerClose(&lhs, lhsJoin)
		}
		rhs.Close()
		lhs.Close()
		return rhs, lhs
	}
	first, last := segs[0], segs[len(segs)-1]
	lhs = lhs.Reverse()
	cr.Cap(&rhs, halfWidth, last.p1, last.n)
	rhs = rhs.Join(lhs)
	cr.Cap(&rhs, halfWidth, first.p0, first.n.Negate())
	rhs.Close()
	return rhs, nil
}

// The inner side of a bend, from index i of the path, runs from the end
// of the previous offset segment through the join to the start of the
// next one. When the two offset segments cross, optimizeInnerBend
// replaces that detour by their intersection. Each command on the
// inner side is a MoveTo or LineTo of four values.
func optimizeInnerBend(p *ppath.Path, i int) {
	q := *p
	n := len(q)
	if i < 8 || n-4 <= i {
		return
	}
	a0, a1 := math32.Vec2(q[i-7], q[i-6]), math32.Vec2(q[i-3], q[i-2])
	b0, b1 := math32.Vec2(q[n-7], q[n-6]), math32.Vec2(q[n-3], q[n-2])
	x, ok := intersection(a0, a1, b0, b1)
	if !ok {
		return
	}
	q[i-3], q[i-2] = x.X, x.Y
	*p = append(q[:i], q[n-4:]...)
}

// optimizeInnerClose is [optimizeInnerBend] for the bend between the
// last and the first segment of a closed path, which moves the start
// of the path to the intersection.
func optimizeInnerClose(p *ppath.Path, i int) {
	q := *p
	if i < 8 || len(q) <= i || len(q) < 8 || q[4] != ppath.LineTo {
		return
	}
	a0, a1 := math32.Vec2(q[i-7], q[i-6]), math32.Vec2(q[i-3], q[i-2])
	b0, b1 := math32.Vec2(q[1], q[2]), math32.Vec2(q[5], q[6])
	x, ok := intersection(a0, a1, b0, b1)
	if !ok {
		return
	}
	q[i-3], q[i-2] = x.X, x.Y
	q[1], q[2] = x.X, x.Y
	*p = q[:i]
}

// intersection returns the crossing point of the segments a0-a1 and
// b0-b1, if they cross away from their end points.
func intersection(a0, a1, b0, b1 math32.Vector2) (math32.Vector2, bool) {
	da, db := a1.Sub(a0), b1.Sub(b0)
	den := da.Cross(db)
	if ppath.Equal(den, 0) {
		return math32.Vector2{}, false
	}
	w := b0.Sub(a0)
	s := w.Cross(db) / den
	u := w.Cross(da) / den
	if s <= 0 || 1 <= s || u <= 0 || 1 <= u {
		return math32.Vector2{}, false
	}
	return a0.Add(da.MulScalar(s)), true
}
