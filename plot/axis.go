// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"strconv"

	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/render"
)

const (
	// edgeTolerance is how close in pixels a tick must be to a plot area
	// edge to be on it.
	edgeTolerance = 0.1

	// scaleFactorBase is the text of the scale factor annotation,
	// followed by the power as a superscript.
	scaleFactorBase = "×10"
)

// axisPainter draws the axis lines, gridlines, tick marks and
// tick labels of both axes.
type axisPainter struct {
	rd     *render.Render
	m      *Mapper
	axis   Axes
	tick   Ticks
	grid   Grids
	family string
	ts     *TickStyle
	gs     *GridStyle
	as     *AxisStyle
}

// near returns whether a and b are within [edgeTolerance].
func near(a, b float32) bool {
	return math32.Abs(a-b) < edgeTolerance
}

// inside returns whether the pixel position is within the plot area,
// give or take [edgeTolerance].
func (ap *axisPainter) inside(pos math32.Vector2) bool {
	b := ap.m.Rect.Box()
	b.ExpandByScalar(edgeTolerance)
	return b.ContainsPoint(pos)
}

func (ap *axisPainter) line(x1, y1, x2, y2 float32, st render.Style) {
	ap.rd.Add(&render.Line{Start: math32.Vec2(x1, y1), End: math32.Vec2(x2, y2), Style: st})
}

// drawAxisLines draws the box around the plot area, or the bottom
// and left axis lines.
func (ap *axisPainter) drawAxisLines() {
	r := ap.m.Rect
	st := render.Stroked(colors.OrBlack(ap.as.Color), ap.as.Width)
	if ap.axis == AxisBox {
		ap.rd.Add(&render.Rect{Pos: math32.Vec2(r.X, r.Y), Size: math32.Vec2(r.W, r.H), Style: st})
		return
	}
	ap.line(r.X, r.Bottom(), r.Right(), r.Bottom(), st)
	ap.line(r.X, r.Y, r.X, r.Bottom(), st)
}

func (ap *axisPainter) gridStyle(minor bool) render.Style {
	if minor {
		return render.Stroked(colors.OrBlack(ap.gs.MinorColor), ap.gs.MinorWidth, ap.grid.Dash()...)
	}
	return render.Stroked(colors.OrBlack(ap.gs.Color), ap.gs.Width, ap.grid.Dash()...)
}

func (ap *axisPainter) tickStyle(minor bool) (render.Style, float32) {
	if minor {
		return render.Stroked(colors.OrBlack(ap.ts.MinorColor), ap.ts.MinorWidth), ap.ts.MinorLength
	}
	return render.Stroked(colors.OrBlack(ap.ts.LineColor), ap.ts.Width), ap.ts.Length
}

// drawX draws the gridlines, tick marks and labels of the X axis,
// followed by its scale factor and its minor ticks.
func (ap *axisPainter) drawX(t *TickSet) {
	r := ap.m.Rect
	ts := ap.ts
	for _, tk := range t.Major {
		x := ap.m.MapX(tk.Value)
		if !ap.inside(math32.Vec2(x, r.Y)) {
			continue
		}
		skip := near(x, r.X) || (ap.axis == AxisBox && near(x, r.Right()))
		if ap.grid != GridNone && !skip {
			ap.line(x, r.Y, x, r.Bottom(), ap.gridStyle(false))
		}
		if ap.tick != TickNone {
			ap.xTickMarks(x, false)
		}
		ap.rd.Add(newPowerText(math32.Vec2(x, r.Bottom()+ts.FontSize*0.4+5), tk.Label, ap.family, ts.FontSize, ts.LabelColor, render.AnchorMiddle, render.BaselineHanging))
	}
	if t.Power != 0 {
		pos := math32.Vec2(r.Right()-ts.TextPadding, r.Bottom()+ts.FontSize+2*ts.TextPadding)
		ap.drawScaleFactor(pos, t.Power, render.AnchorEnd, render.BaselineTextTop)
	}
	for _, v := range t.Minor {
		x := ap.m.MapX(v)
		if !ap.inside(math32.Vec2(x, r.Y)) {
			continue
		}
		if ap.grid != GridNone {
			ap.line(x, r.Y, x, r.Bottom(), ap.gridStyle(true))
		}
		if ap.tick != TickNone {
			ap.xTickMarks(x, true)
		}
	}
}

// xTickMarks draws the tick mark at x on the bottom edge,
// mirrored on the top edge for box axes.
func (ap *axisPainter) xTickMarks(x float32, minor bool) {
	r := ap.m.Rect
	st, length := ap.tickStyle(minor)
	d := length * ap.tick.direction()
	ap.line(x, r.Bottom(), x, r.Bottom()+d, st)
	if ap.axis == AxisBox {
		ap.line(x, r.Y, x, r.Y-d, st)
	}
}

// drawY draws the gridlines, tick marks and labels of the Y axis,
// followed by its scale factor and its minor ticks.
func (ap *axisPainter) drawY(t *TickSet) {
	r := ap.m.Rect
	ts := ap.ts
	for _, tk := range t.Major {
		y := ap.m.MapY(tk.Value)
		if !ap.inside(math32.Vec2(r.X, y)) {
			continue
		}
		skip := near(y, r.Bottom()) || (ap.axis == AxisBox && near(y, r.Y))
		if ap.grid != GridNone && !skip {
			ap.line(r.X, y, r.Right(), y, ap.gridStyle(false))
		}
		if ap.tick != TickNone {
			ap.yTickMarks(y, false)
		}
		ap.rd.Add(newPowerText(math32.Vec2(r.X-ts.TextPadding-ts.Length, y), tk.Label, ap.family, ts.FontSize, ts.LabelColor, render.AnchorEnd, render.BaselineMiddle))
	}
	if t.Power != 0 {
		pos := math32.Vec2(r.X+ts.TextPadding, r.Y-ts.TextPadding)
		ap.drawScaleFactor(pos, t.Power, render.AnchorStart, render.BaselineTextBottom)
	}
	for _, v := range t.Minor {
		y := ap.m.MapY(v)
		if !ap.inside(math32.Vec2(r.X, y)) {
			continue
		}
		if ap.grid != GridNone {
			ap.line(r.X, y, r.Right(), y, ap.gridStyle(true))
		}
		if ap.tick != TickNone {
			ap.yTickMarks(y, true)
		}
	}
}

// yTickMarks draws the tick mark at y on the left edge,
// mirrored on the right edge for box axes.
func (ap *axisPainter) yTickMarks(y float32, minor bool) {
	r := ap.m.Rect
	st, length := ap.tickStyle(minor)
	d := length * ap.tick.direction()
	ap.line(r.X, y, r.X-d, y, st)
	if ap.axis == AxisBox {
		ap.line(r.Right(), y, r.Right()+d, y, st)
	}
}

// drawScaleFactor draws the "×10" annotation with the power as a superscript.
func (ap *axisPainter) drawScaleFactor(pos math32.Vector2, power int, anchor render.Anchors, baseline render.Baselines) {
	ts := ap.ts
	ap.rd.Add(newPowerText(pos, scaleFactorBase+"^"+strconv.Itoa(power), ap.family, ts.FontSize, ts.LabelColor, anchor, baseline))
}
