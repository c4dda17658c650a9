// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	Pos   math32.Vector2
	Size  math32.Vector2
	Style Style
}

func (r *Rect) IsRenderItem() {}

// Line is a single straight line segment.
type Line struct {
	Start math32.Vector2
	End   math32.Vector2
	Style Style
}

func (l *Line) IsRenderItem() {}

// Path is a general path drawn with the given style.
type Path struct {
	Path  ppath.Path
	Style Style
}

func (p *Path) IsRenderItem() {}

// Circle is a circle of given radius around Center.
type Circle struct {
	Center math32.Vector2
	Radius float32
	Style  Style
}

func (c *Circle) IsRenderItem() {}

// Text is a single line of text, with an optional superscript
// drawn right after the main text, raised and at a smaller size.
type Text struct {
	// Pos is the anchor point of the text.
	Pos math32.Vector2

	// Text is the main text.
	Text string

	// Sup is an optional superscript, such as an exponent.
	Sup string

	// Font is the font family name.
	Font string

	// Size is the font size in pixels.
	Size float32

	Color color.Color

	// Anchor is the horizontal alignment relative to Pos.
	Anchor Anchors

	// Baseline is the vertical alignment relative to Pos.
	Baseline Baselines

	// Rotation is the rotation in degrees around Pos;
	// negative values rotate counter-clockwise on screen.
	Rotation float32
}

func (t *Text) IsRenderItem() {}

// ClipPush starts clipping all following items to Rect,
// until the matching [ClipPop].
type ClipPush struct {
	Rect math32.Box2
}

func (c *ClipPush) IsRenderItem() {}

// ClipPop ends the clip region started by the last [ClipPush].
type ClipPop struct{}

func (c *ClipPop) IsRenderItem() {}
