// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/quill/math32"
)

// Rect is the plot area in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Box returns the rectangle as a [math32.Box2].
func (r Rect) Box() math32.Box2 {
	return math32.B2(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Mapper maps data values to pixel positions in the plot area.
// Y is inverted, so that larger values are higher on the screen.
type Mapper struct {
	X, Y Domain

	XScale, YScale Scales

	Rect Rect

	// Epsilon is the domain width at or below which a domain is
	// degenerate, and maps every value to the center of the plot area.
	Epsilon float64
}

// MapX returns the pixel x of the data value.
func (m *Mapper) MapX(v float64) float32 {
	return m.Rect.X + float32(m.fraction(v, m.X, m.XScale))*m.Rect.W
}

// MapY returns the pixel y of the data value.
func (m *Mapper) MapY(v float64) float32 {
	return m.Rect.Y + m.Rect.H - float32(m.fraction(v, m.Y, m.YScale))*m.Rect.H
}

// MapXY returns the pixel position of the data point.
func (m *Mapper) MapXY(x, y float64) math32.Vector2 {
	return math32.Vec2(m.MapX(x), m.MapY(y))
}

// fraction returns the position of v within the domain, from 0 to 1
// for values inside it. Log scales clamp non-positive values to 0.001,
// a non-positive min to 1 and a non-positive max to 10.
func (m *Mapper) fraction(v float64, d Domain, scale Scales) float64 {
	if w := d.Range(); w == 0 || math.Abs(w) < m.Epsilon {
		return 0.5
	}
	if scale == ScaleLog {
		lo, hi := d.Min, d.Max
		if lo <= 0 {
			lo = 1
		}
		if hi <= 0 {
			hi = 10
		}
		if v <= 0 {
			v = 0.001
		}
		d = Domain{Min: math.Log10(lo), Max: math.Log10(hi)}
		v = math.Log10(v)
		if d.Range() == 0 {
			return 0.5
		}
	}
	return d.NormValue(v)
}
