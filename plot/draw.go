// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/quill/base/iox/imagex"
	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/render"
	"cogentcore.org/quill/paint/renderers/rasterizer"
	"cogentcore.org/quill/paint/renderers/svgrender"
	"cogentcore.org/quill/plot/plots"
)

// Render returns the drawing primitives of the plot, or a [*LayoutError]
// if the canvas has no room for the plot area. Items are in drawing order:
// background, title and axis labels, axis lines, gridlines with tick marks
// and labels, the series clipped to the plot area, and the legend.
func (pt *Plot[T]) Render() (render.Render, error) {
	var entries []LegendEntry
	for _, s := range pt.Series {
		if s != nil {
			entries = append(entries, LegendEntry{Name: s.Name, Color: colors.OrBlack(s.Color)})
		}
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	lp := NewLegendPlan(names, pt.Legend, &pt.LegendStyle, pt.Font, pt.metrics())
	r, err := ComputePlotRect(pt.Size, pt.Margin, lp)
	if err != nil {
		return nil, err
	}
	em := EffectiveMargin(pt.Margin, lp)

	xd := ResolveRange(pt.Series, X, pt.XRange, pt.XScale)
	yd := ResolveRange(pt.Series, Y, pt.YRange, pt.YScale)
	xt := NewTickSet(xd, pt.XScale, TargetTicks(r.W, pt.TickStyle.Density(X)), pt.minorPerMajor(X))
	yt := NewTickSet(yd, pt.YScale, TargetTicks(r.H, pt.TickStyle.Density(Y)), pt.minorPerMajor(Y))
	m := &Mapper{X: xd, Y: yd, XScale: pt.XScale, YScale: pt.YScale, Rect: r, Epsilon: Epsilon[T]()}
	slog.Debug("plot: layout", "rect", r, "x", xd, "y", yd, "xTicks", len(xt.Major), "yTicks", len(yt.Major), "xPower", xt.Power, "yPower", yt.Power)

	var rd render.Render
	if pt.Background != "" {
		rd.Add(&render.Rect{Size: pt.Size, Style: render.Filled(colors.OrBlack(pt.Background))})
	}
	drawLabels(&rd, pt, r, em)
	ap := &axisPainter{rd: &rd, m: m, axis: pt.Axis, tick: pt.Tick, grid: pt.Grid, family: pt.Font,
		ts: &pt.TickStyle, gs: &pt.GridStyle, as: &pt.AxisStyle}
	ap.drawAxisLines()
	ap.drawX(xt)
	ap.drawY(yt)

	rd.Add(&render.ClipPush{Rect: r.Box()})
	for _, s := range pt.Series {
		if s != nil {
			drawSeries(&rd, s, m)
		}
	}
	rd.Add(&render.ClipPop{})

	drawLegend(&rd, &lp, lp.Position(pt.Size, r, em), entries, &pt.LegendStyle, pt.Font)
	return rd, nil
}

// minorPerMajor returns the number of linear minor ticks per major
// interval for the dimension, or 0 when minor ticks are off.
func (pt *Plot[T]) minorPerMajor(d Dims) int {
	if !pt.MinorGrid.Has(d) {
		return 0
	}
	return max(pt.TickStyle.MinorPerMajor, 1)
}

// drawSeries draws the line and markers of the series.
func drawSeries[T Value](rd *render.Render, s *Series[T], m *Mapper) {
	pts := make([]math32.Vector2, 0, len(s.Data))
	for _, xy := range s.Data {
		if finite(xy) {
			pts = append(pts, m.MapXY(float64(xy.X), float64(xy.Y)))
		}
	}
	c := colors.OrBlack(s.Color)
	if s.Line != LineNone && len(pts) > 1 {
		var dash []float32
		if s.Line == LineDashed {
			dash = SeriesDash
		}
		rd.Add(&render.Path{Path: plots.BuildPath(pts, s.Interpolation), Style: render.Stroked(c, s.LineWidth, dash...)})
	}
	plots.Markers(rd, pts, s.MarkerSize, s.Marker, c)
}

// Draw renders the plot to the given renderer.
func (pt *Plot[T]) Draw(rs render.Renderer) error {
	rd, err := pt.Render()
	if err != nil {
		return err
	}
	rs.Render(rd)
	return nil
}

// SVGString returns an SVG representation of the plot as a string.
func (pt *Plot[T]) SVGString() (string, error) {
	sr := svgrender.New(pt.Size)
	if err := pt.Draw(sr); err != nil {
		return "", err
	}
	return sr.String(), nil
}

// SVGToFile saves the SVG to the given file.
func (pt *Plot[T]) SVGToFile(filename string) error {
	sr := svgrender.New(pt.Size)
	if err := pt.Draw(sr); err != nil {
		return err
	}
	return sr.Save(filename)
}

// Image returns the plot rasterized at the given scale factor.
func (pt *Plot[T]) Image(scale float32) (*image.RGBA, error) {
	rs := rasterizer.New(pt.Size, scale)
	if err := pt.Draw(rs); err != nil {
		return nil, err
	}
	return rs.Image(), nil
}

// PNGToFile saves the plot rasterized at the given scale factor
// to the given PNG file.
func (pt *Plot[T]) PNGToFile(filename string, scale float32) error {
	img, err := pt.Image(scale)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, filename); err != nil {
		return fmt.Errorf("plot: saving %s: %w", filename, err)
	}
	return nil
}
