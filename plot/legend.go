// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/render"
)

// swatchRatio is the height of a legend swatch relative to the item height.
const swatchRatio = 0.8

// LegendEntry is one item of the legend.
type LegendEntry struct {
	Name  string
	Color color.Color
}

// drawLegend draws the bordered legend box at pos, with one color swatch
// and name per entry, stacked from the top. Nothing is drawn for an
// inactive plan.
func drawLegend(rd *render.Render, lp *LegendPlan, pos math32.Vector2, entries []LegendEntry, st *LegendStyle, family string) {
	if !lp.Active() || len(entries) == 0 {
		return
	}
	box := render.Style{Fill: colors.OrBlack(st.Background), Stroke: colors.OrBlack(st.BorderColor), Width: st.BorderWidth}
	rd.Add(&render.Rect{Pos: pos, Size: math32.Vec2(lp.Width, lp.Height), Style: box})
	sh := st.ItemHeight * swatchRatio
	for i, e := range entries {
		y := pos.Y + st.Padding + float32(i)*st.ItemHeight
		sx := pos.X + st.Padding
		rd.Add(&render.Rect{Pos: math32.Vec2(sx, y+(st.ItemHeight-sh)/2), Size: math32.Vec2(st.SwatchWidth, sh), Style: render.Filled(e.Color)})
		tp := math32.Vec2(sx+st.SwatchWidth+st.TextOffset, y+st.ItemHeight/2)
		rd.Add(&render.Text{Pos: tp, Text: e.Name, Font: family, Size: st.FontSize, Color: colors.OrBlack(st.TextColor), Anchor: render.AnchorStart, Baseline: render.BaselineMiddle})
	}
}
