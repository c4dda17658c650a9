// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath is a compact float32 path representation used to carry
// chart curves from the curve builders to the rendering backends.
package ppath

import (
	"slices"

	"cogentcore.org/quill/math32"
)

// Path is a sequence of MoveTo, LineTo, CubeTo, and Close commands,
// each followed by the float32 coordinate data for it.
// To support bidirectional scanning, the command verb is also added
// to the end of the coordinate data.
// The last two coordinate values are the end point position of the pen
// after the action (x,y). CubeTo defines two control points before that.
// Unlike a general vector path, consecutive collinear LineTo segments are
// never merged, so that the vertex list returned by [Path.Coords] matches
// the points given to the constructors exactly. Zero-length LineTo
// segments are dropped.
type Path []float32

func New() *Path {
	return &Path{}
}

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	CubeTo float32 = 2
	Close  float32 = 3
)

var cmdLens = [4]int{4, 4, 8, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Epsilon is the smallest number below which we assume the value to be zero.
var Epsilon = float32(1e-7)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if both coordinates of a and b are [Equal].
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Empty returns true if p is an empty path or consists of only MoveTos and Closes.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Closed returns true if the last subpath of p is a closed path.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1] == Close
}

// Len returns the number of commands in the path.
func (p Path) Len() int {
	n := 0
	for i := 0; i < len(p); {
		i += CmdLen(p[i])
		n++
	}
	return n
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// i.e. it returns the position of the last MoveTo command.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// Coords returns all the coordinates of the segment
// start/end points, in order. It omits zero-length Closes.
func (p Path) Coords() []math32.Vector2 {
	coords := []math32.Vector2{}
	for i := 0; i < len(p); {
		cmd := p[i]
		i += CmdLen(cmd)
		pt := math32.Vec2(p[i-3], p[i-2])
		if len(coords) == 0 || cmd != Close || !EqualPoint(coords[len(coords)-1], pt) {
			coords = append(coords, pt)
		}
	}
	return coords
}

// Bounds returns the bounding box of all points and control points of the path.
func (p Path) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j < i+n-1; j += 2 {
			bb.ExpandByPoint(math32.Vec2(p[j], p[j+1]))
		}
		i += n
	}
	return bb
}

// MoveTo moves the path to (x,y) without connecting the path.
// It starts a new independent subpath.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float32) {
	end := math32.Vec2(x, y)
	if 0 < len(*p) && EqualPoint(p.Pos(), end) {
		return
	}
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
	*p = append(*p, LineTo, end.X, end.Y, LineTo)
}

// CubeTo adds a cubic Bézier path with control points
// (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	start := p.Pos()
	cp1 := math32.Vec2(cpx1, cpy1)
	cp2 := math32.Vec2(cpx2, cpy2)
	end := math32.Vec2(x, y)
	if 0 < len(*p) && EqualPoint(start, end) && EqualPoint(start, cp1) && EqualPoint(start, cp2) {
		return
	}
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
	*p = append(*p, CubeTo, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y, CubeTo)
}

// Close closes a (sub)path with a LineTo to the start of the path
// (the most recent MoveTo command).
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		return
	} else if (*p)[len(*p)-1] == MoveTo {
		*p = (*p)[:len(*p)-CmdLen(MoveTo)]
		return
	}
	end := p.StartPos()
	if (*p)[len(*p)-1] == LineTo && EqualPoint(p.Pos(), end) {
		(*p)[len(*p)-1] = Close
		(*p)[len(*p)-CmdLen(LineTo)] = Close
		return
	}
	*p = append(*p, Close, end.X, end.Y, Close)
}

// Scale returns a copy of the path with all points multiplied by (sx,sy).
func (p Path) Scale(sx, sy float32) Path {
	return p.transform(func(v math32.Vector2) math32.Vector2 {
		return math32.Vec2(v.X*sx, v.Y*sy)
	})
}

func (p Path) transform(fn func(v math32.Vector2) math32.Vector2) Path {
	q := p.Clone()
	for i := 0; i < len(q); {
		n := CmdLen(q[i])
		for j := i + 1; j < i+n-1; j += 2 {
			v := fn(math32.Vec2(q[j], q[j+1]))
			q[j], q[j+1] = v.X, v.Y
		}
		i += n
	}
	return q
}

// Append appends path q to p as separate subpaths and returns a new path.
func (p Path) Append(qs ...Path) Path {
	q := p[:len(p):len(p)]
	for _, qi := range qs {
		q = append(q, qi...)
	}
	return q
}

// Join joins path q to p and returns the extended path. When q starts
// where p ends, the last subpath of p continues into q; otherwise q is
// appended as a new subpath.
func (p Path) Join(q Path) Path {
	if len(q) == 0 {
		return p
	} else if len(p) == 0 {
		return q
	}
	if q[0] == MoveTo && p[len(p)-1] != Close && EqualPoint(p.Pos(), math32.Vec2(q[1], q[2])) {
		q = q[CmdLen(MoveTo):]
	}
	return p.Append(q)
}

// Split splits the path into its independent subpaths.
// The returned paths share memory with p.
func (p Path) Split() []Path {
	var ps []Path
	start := 0
	for i := 0; i < len(p); {
		if start < i && p[i] == MoveTo {
			ps = append(ps, p[start:i:i])
			start = i
		}
		i += CmdLen(p[i])
	}
	if start < len(p) {
		ps = append(ps, p[start:])
	}
	return ps
}

// Reverse returns a new path that is the same as p but in the
// reverse direction. Subpaths are reversed in place and in order.
func (p Path) Reverse() Path {
	q := Path{}
	ps := p.Split()
	for i := len(ps) - 1; 0 <= i; i-- {
		q = append(q, ps[i].reverseSubpath()...)
	}
	return q
}

func (p Path) reverseSubpath() Path {
	type segment struct {
		cmd                   float32
		start, cp1, cp2, end math32.Vector2
	}
	var segs []segment
	for s := p.Scanner(); s.Scan(); {
		seg := segment{cmd: s.Cmd(), start: s.Start(), end: s.End()}
		switch seg.cmd {
		case MoveTo:
			continue
		case CubeTo:
			seg.cp1, seg.cp2 = s.CP1(), s.CP2()
		}
		segs = append(segs, seg)
	}
	q := Path{}
	end := p.Pos()
	q.MoveTo(end.X, end.Y)
	for i := len(segs) - 1; 0 <= i; i-- {
		seg := segs[i]
		if seg.cmd == CubeTo {
			q.CubeTo(seg.cp2.X, seg.cp2.Y, seg.cp1.X, seg.cp1.Y, seg.start.X, seg.start.Y)
		} else {
			q.LineTo(seg.start.X, seg.start.Y)
		}
	}
	if p.Closed() {
		q.Close()
	}
	return q
}

// Length returns the length of the path, with curves measured
// on their flattened form.
func (p Path) Length() float32 {
	d := float32(0)
	for s := p.Flatten().Scanner(); s.Scan(); {
		if s.Cmd() != MoveTo {
			d += s.End().Sub(s.Start()).Length()
		}
	}
	return d
}

// SplitAt splits the path at the given increasing lengths along it,
// returning len(ts)+1 open paths. Curves are flattened first.
func (p Path) SplitAt(ts ...float32) []Path {
	if len(ts) == 0 {
		return []Path{p}
	}
	ps := make([]Path, 0, len(ts)+1)
	q := Path{}
	j := 0
	pos := float32(0)
	for s := p.Flatten().Scanner(); s.Scan(); {
		start, end := s.Start(), s.End()
		if s.Cmd() == MoveTo {
			q.MoveTo(end.X, end.Y)
			continue
		}
		l := end.Sub(start).Length()
		if l == 0 {
			continue
		}
		for j < len(ts) && ts[j] <= pos+l {
			pt := start.Lerp(end, (ts[j]-pos)/l)
			q.LineTo(pt.X, pt.Y)
			ps = append(ps, q)
			q = Path{}
			q.MoveTo(pt.X, pt.Y)
			j++
		}
		q.LineTo(end.X, end.Y)
		pos += l
	}
	for ; j < len(ts); j++ {
		end := q.Pos()
		ps = append(ps, q)
		q = Path{}
		q.MoveTo(end.X, end.Y)
	}
	return append(ps, q)
}
