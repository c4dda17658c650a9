// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/render"
)

// newText returns a text item drawing the label as given.
func newText(pos math32.Vector2, label, family string, size float32, color string, anchor render.Anchors, baseline render.Baselines) *render.Text {
	return &render.Text{
		Pos:      pos,
		Text:     label,
		Font:     family,
		Size:     size,
		Color:    colors.OrBlack(color),
		Anchor:   anchor,
		Baseline: baseline,
	}
}

// newPowerText is [newText] for tick labels and the scale factor,
// splitting a "base^exponent" label into the text and its superscript.
func newPowerText(pos math32.Vector2, label, family string, size float32, color string, anchor render.Anchors, baseline render.Baselines) *render.Text {
	base, sup := SplitPower(label)
	tx := newText(pos, base, family, size, color, anchor, baseline)
	tx.Sup = sup
	return tx
}

// drawLabels adds the title and the axis labels that are set.
// The title is centered over the plot area in the top margin, the X label
// below the tick labels, and the Y label rotated in the left margin.
func drawLabels[T Value](rd *render.Render, pt *Plot[T], r Rect, em Margin) {
	cx := r.X + r.W/2
	if pt.Title != "" {
		ts := &pt.TitleStyle
		rd.Add(newText(math32.Vec2(cx, em.Top*0.5), pt.Title, pt.Font, ts.FontSize, ts.Color, render.AnchorMiddle, render.BaselineMiddle))
	}
	if pt.XLabel != "" {
		ls := &pt.XLabelStyle
		rd.Add(newText(math32.Vec2(cx, r.Bottom()+em.Bottom*0.6), pt.XLabel, pt.Font, ls.FontSize, ls.Color, render.AnchorMiddle, render.BaselineMiddle))
	}
	if pt.YLabel != "" {
		ls := &pt.YLabelStyle
		// measured from the plot area so that a left legend does not move it
		x := r.X - pt.Margin.Left*0.7
		tx := newText(math32.Vec2(x, r.Y+r.H/2), pt.YLabel, pt.Font, ls.FontSize, ls.Color, render.AnchorMiddle, render.BaselineMiddle)
		tx.Rotation = -90
		rd.Add(tx)
	}
}
