// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the drawing primitives emitted by the chart
// engine, and the [Renderer] interface implemented by output backends.
package render

import (
	"image/color"

	"cogentcore.org/quill/math32"
)

// Renderer is the interface for all backend rendering outputs.
type Renderer interface {
	// Size returns the size of the render target in pixels.
	Size() math32.Vector2

	// Render renders the list of render items, in order.
	Render(r Render)
}

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Item is a union interface for render items: [Rect], [Line], [Path],
// [Circle], [Text], [ClipPush], and [ClipPop].
type Item interface {
	IsRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Items returns all items of type T in r, in order.
func Items[T Item](r Render) []T {
	var its []T
	for _, it := range r {
		if t, ok := it.(T); ok {
			its = append(its, t)
		}
	}
	return its
}

// Style has the stroke and fill parameters shared by all shape items.
type Style struct {
	// Stroke is the stroke color; nil means no stroke.
	Stroke color.Color

	// Fill is the fill color; nil means no fill.
	Fill color.Color

	// Width is the stroke width in pixels.
	Width float32

	// Dash is the dash pattern as alternating dash and gap lengths;
	// empty means a solid line.
	Dash []float32
}

// Stroked returns a stroke-only [Style].
func Stroked(c color.Color, width float32, dash ...float32) Style {
	return Style{Stroke: c, Width: width, Dash: dash}
}

// Filled returns a fill-only [Style].
func Filled(c color.Color) Style {
	return Style{Fill: c}
}

// HasStroke returns whether the style draws an outline.
func (s *Style) HasStroke() bool {
	return s.Stroke != nil && s.Width > 0
}

// HasFill returns whether the style fills the interior.
func (s *Style) HasFill() bool {
	return s.Fill != nil
}
