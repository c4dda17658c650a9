// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "slices"

// Dash returns a new path that consists of the dashes of p.
// The elements in d alternate between dash and gap lengths; an odd
// count is equivalent to passing d twice. The offset shifts the start
// of the pattern into d. Each subpath is dashed independently, and the
// pattern restarts at the start of every subpath.
func (p Path) Dash(offset float32, d ...float32) Path {
	offset, d = dashCanonical(offset, slices.Clone(d))
	if len(d) == 0 {
		return p
	} else if len(d) == 1 && d[0] == 0 {
		return Path{}
	}
	if len(d)%2 == 1 {
		d = append(d, d...)
	}

	i0, pos0 := dashStart(offset, d)

	q := Path{}
	for _, ps := range p.Split() {
		i := i0
		pos := pos0

		var t []float32
		length := ps.Length()
		for pos+d[i]+Epsilon < length {
			pos += d[i]
			if 0 < pos {
				t = append(t, pos)
			}
			i++
			if i == len(d) {
				i = 0
			}
		}

		j0 := 0
		endsInDash := i%2 == 0
		if len(t)%2 == 1 && endsInDash || len(t)%2 == 0 && !endsInDash {
			j0 = 1
		}

		qd := Path{}
		pd := ps.SplitAt(t...)
		for j := j0; j < len(pd)-1; j += 2 {
			qd = qd.Append(pd[j])
		}
		if endsInDash {
			if ps.Closed() {
				qd = pd[len(pd)-1].Join(qd)
			} else {
				qd = qd.Append(pd[len(pd)-1])
			}
		}
		q = q.Append(qd)
	}
	return q
}

// dashStart returns the index into d and the (non-positive) path position
// at which the pattern starts for the given offset.
func dashStart(offset float32, d []float32) (int, float32) {
	i0 := 0
	for d[i0] <= offset {
		offset -= d[i0]
		i0++
		if i0 == len(d) {
			i0 = 0
		}
	}
	pos0 := -offset
	if offset < 0 {
		total := float32(0)
		for _, dd := range d {
			total += dd
		}
		pos0 = -(total + offset)
	}
	return i0, pos0
}

// dashCanonical returns an equivalent, simplified dash array.
// A result of [0] means nothing is drawn, and an empty result means
// a solid line.
func dashCanonical(offset float32, d []float32) (float32, []float32) {
	if len(d) == 0 {
		return 0, []float32{}
	}

	// zeros between dashes merge their neighbors
	for i := 1; i < len(d)-1; i++ {
		if Equal(d[i], 0) {
			d[i-1] += d[i+1]
			d = append(d[:i], d[i+2:]...)
			i--
		}
	}

	if Equal(d[0], 0) {
		if len(d) < 3 {
			return 0, []float32{0}
		}
		offset -= d[1]
		d[len(d)-1] += d[1]
		d = d[2:]
	}

	if Equal(d[len(d)-1], 0) {
		if len(d) < 3 {
			return 0, []float32{}
		}
		offset += d[len(d)-2]
		d[0] += d[len(d)-2]
		d = d[:len(d)-2]
	}

	for _, di := range d {
		if di < 0 || Equal(di, 0) {
			return 0, []float32{0}
		}
	}

REPEAT:
	for len(d)%2 == 0 {
		mid := len(d) / 2
		for i := 0; i < mid; i++ {
			if !Equal(d[i], d[mid+i]) {
				break REPEAT
			}
		}
		d = d[:mid]
	}
	return offset, d
}
