// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
	"cogentcore.org/quill/paint/render"
)

// Shapes are the marker glyphs drawn at data points.
type Shapes int32

const (
	// NoShape draws no markers.
	NoShape Shapes = iota

	// Circle is a filled circle whose diameter is the marker size.
	Circle

	// Square is a filled square whose side is the marker size.
	Square

	// Cross is an unfilled X whose half-width is half the marker size.
	Cross
)

func (s Shapes) String() string {
	switch s {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	case Cross:
		return "Cross"
	}
	return "None"
}

// CrossWidth is the stroke width of [Cross] markers.
const CrossWidth = 1.0

// DrawShape adds the items for the given shape centered at pos.
func DrawShape(r *render.Render, pos math32.Vector2, size float32, shape Shapes, c color.Color) {
	h := size / 2
	switch shape {
	case Circle:
		r.Add(&render.Circle{Center: pos, Radius: h, Style: render.Filled(c)})
	case Square:
		r.Add(&render.Rect{Pos: math32.Vec2(pos.X-h, pos.Y-h), Size: math32.Vec2(size, size), Style: render.Filled(c)})
	case Cross:
		p := ppath.New().Line(pos.X-h, pos.Y-h, pos.X+h, pos.Y+h)
		p = p.Line(pos.X+h, pos.Y-h, pos.X-h, pos.Y+h)
		r.Add(&render.Path{Path: *p, Style: render.Stroked(c, CrossWidth)})
	}
}

// Markers adds the given shape at every point.
func Markers(r *render.Render, pts []math32.Vector2, size float32, shape Shapes, c color.Color) {
	if shape == NoShape || size <= 0 {
		return
	}
	for _, pt := range pts {
		DrawShape(r, pt, size, shape, c)
	}
}
