// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterizer

import (
	"image/color"

	"cogentcore.org/quill/paint/ppath"
	"cogentcore.org/quill/paint/ppath/stroke"
)

// stroke draws the outline of the path with the given width and dash
// pattern, using butt caps and round joins.
func (rs *Renderer) stroke(p ppath.Path, width float32, dash []float32, c color.Color) {
	if width <= 0 {
		return
	}
	if len(dash) > 0 {
		p = p.Dash(0, dash...)
	}
	rs.fill(stroke.Stroke(p, width, stroke.ButtCap, stroke.RoundJoin), c)
}
