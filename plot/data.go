// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/quill/plot/plots"
	"golang.org/x/exp/constraints"
)

// Value is the constraint for the scalar type of plot data.
// Values are converted to float64 for range and tick computation,
// and to float32 pixel coordinates for drawing.
type Value interface {
	constraints.Integer | constraints.Float
}

// Epsilon returns the smallest meaningful difference between two values
// of type T: the machine epsilon for floating point types, and 1 for integers.
// Ranges narrower than this are padded by [ResolveRange].
func Epsilon[T Value]() float64 {
	var z T
	switch any(z).(type) {
	case float32:
		return 1.1920928955078125e-07
	case float64:
		return 2.220446049250313e-16
	}
	return 1
}

// Bounds returns the lowest and highest values representable in T.
func Bounds[T Value]() (lo, hi float64) {
	var z T
	switch any(z).(type) {
	case float32:
		return -math.MaxFloat32, math.MaxFloat32
	case float64:
		return -math.MaxFloat64, math.MaxFloat64
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int, int64:
		return math.MinInt64, math.MaxInt64
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	}
	return 0, math.MaxUint64
}

// XY is one data point.
type XY[T Value] struct {
	X, Y T
}

// Get returns the value on the given dimension as a float64.
func (xy XY[T]) Get(d Dims) float64 {
	if d == Y {
		return float64(xy.Y)
	}
	return float64(xy.X)
}

// Dims are the plot dimensions.
type Dims int32

const (
	X Dims = iota
	Y
)

func (d Dims) String() string {
	if d == Y {
		return "Y"
	}
	return "X"
}

// Series is a named, styled sequence of points.
// Rendering never modifies a Series.
type Series[T Value] struct {
	// Name is the label shown in the legend; it may be empty.
	Name string

	// Color is a CSS color name, #rgb, #rrggbb or rgb(r,g,b) string.
	// Unrecognized colors are drawn black.
	Color string `default:"black"`

	// Line is the style of the line connecting the points.
	Line Lines

	// LineWidth is the width of the line in pixels.
	LineWidth float32 `default:"1.5"`

	// Marker is the glyph drawn at each point.
	Marker plots.Shapes

	// MarkerSize is the diameter or side of the marker glyph in pixels.
	MarkerSize float32 `default:"4"`

	// Interpolation is how consecutive points are connected.
	Interpolation plots.Interpolations

	// Data are the points, drawn in order. Non-finite points are skipped.
	Data []XY[T]
}

// NewSeries returns a new [Series] with the given name and data,
// and defaults applied.
func NewSeries[T Value](name string, data ...XY[T]) *Series[T] {
	s := &Series[T]{Name: name, Data: data}
	s.Defaults()
	return s
}

func (s *Series[T]) Defaults() {
	s.Color = "black"
	s.Line = LineSolid
	s.LineWidth = 1.5
	s.MarkerSize = 4
}

// finite returns whether both coordinates of the point are finite.
func finite[T Value](xy XY[T]) bool {
	x, y := float64(xy.X), float64(xy.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
