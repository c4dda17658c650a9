// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders 2D charts of data series to drawing primitives.
// A [Plot] resolves the range of each axis, generates ticks for its
// scale, lays out the plot area around the legend, and emits the
// background, labels, axes, gridlines, curves, markers and legend as a
// [render.Render], which the renderers in paint/renderers turn into
// SVG or images.
package plot

import (
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/fonts"
	"github.com/jinzhu/copier"
)

// Plot is the configuration and data of one chart.
// Rendering never modifies a Plot, so it can be rendered repeatedly,
// and different plots can be rendered concurrently.
type Plot[T Value] struct {
	// Size is the size of the canvas in pixels.
	Size math32.Vector2

	Title  string
	XLabel string
	YLabel string

	// XRange and YRange are the data ranges of the axes,
	// automatic by default.
	XRange Range
	YRange Range

	XScale Scales
	YScale Scales

	Legend    Legends
	Axis      Axes
	Tick      Ticks
	Grid      Grids
	MinorGrid MinorGrids

	// Font is the font family of all text.
	Font string

	// Background is the color of the canvas, or "" for none.
	Background string `default:"white"`

	Margin      Margin
	TitleStyle  TitleStyle
	XLabelStyle LabelStyle
	YLabelStyle LabelStyle
	TickStyle   TickStyle
	LegendStyle LegendStyle
	AxisStyle   AxisStyle
	GridStyle   GridStyle

	Series []*Series[T]

	// Metrics measures the legend names. It defaults to
	// [fonts.DefaultHeuristic].
	Metrics fonts.Metrics `copier:"-"`
}

// New returns a new plot of the given series with defaults applied.
func New[T Value](series ...*Series[T]) *Plot[T] {
	pt := &Plot[T]{Series: series}
	pt.Defaults()
	return pt
}

// Defaults sets the default size, font and styles.
func (pt *Plot[T]) Defaults() {
	pt.Size = math32.Vec2(800, 600)
	pt.Font = DefaultFontFamily
	pt.Background = "white"
	pt.Margin.Defaults()
	pt.TitleStyle.Defaults()
	pt.XLabelStyle.Defaults()
	pt.YLabelStyle.Defaults()
	pt.TickStyle.Defaults()
	pt.LegendStyle.Defaults()
	pt.AxisStyle.Defaults()
	pt.GridStyle.Defaults()
}

// Add adds series to the plot.
func (pt *Plot[T]) Add(series ...*Series[T]) *Plot[T] {
	pt.Series = append(pt.Series, series...)
	return pt
}

// Clone returns a deep copy of the plot, sharing only the [Plot.Metrics].
func (pt *Plot[T]) Clone() *Plot[T] {
	cp := &Plot[T]{}
	if err := copier.CopyWithOption(cp, pt, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		panic(err)
	}
	cp.Metrics = pt.Metrics
	return cp
}

func (pt *Plot[T]) metrics() fonts.Metrics {
	if pt.Metrics == nil {
		return fonts.DefaultHeuristic
	}
	return pt.Metrics
}
