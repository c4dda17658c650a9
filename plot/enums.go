// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Scales are the scale disciplines of an axis, selecting both the tick
// generation and the label formatting.
type Scales int32

const (
	// ScaleLinear uses nice-number ticks with plain one-decimal labels.
	ScaleLinear Scales = iota

	// ScaleScientific uses linear ticks with labels divided by a shared
	// power of ten, so that the largest label is in [1, 10).
	ScaleScientific

	// ScaleEngineering is like [ScaleScientific] with the power
	// a multiple of 3, so that the largest label is in [1, 1000).
	ScaleEngineering

	// ScaleLog maps log10 of the values, with ticks at powers of ten.
	ScaleLog

	// ScalePi uses ticks at simple fractions of π, labeled as such.
	ScalePi
)

var scaleNames = []string{"Linear", "Scientific", "Engineering", "Log", "Pi"}

func (s Scales) String() string {
	return enumName(scaleNames, int(s))
}

// ScalesValues returns all possible values for [Scales].
func ScalesValues() []Scales {
	return []Scales{ScaleLinear, ScaleScientific, ScaleEngineering, ScaleLog, ScalePi}
}

// Lines are the line styles of a series.
type Lines int32

const (
	// LineSolid is a solid line.
	LineSolid Lines = iota

	// LineDashed is a line dashed with [SeriesDash].
	LineDashed

	// LineNone draws no line, only markers.
	LineNone
)

var lineNames = []string{"Solid", "Dashed", "None"}

func (l Lines) String() string {
	return enumName(lineNames, int(l))
}

// Axes are the styles of the axis lines.
type Axes int32

const (
	// AxisBox draws a rectangle around the plot area, with ticks
	// mirrored on the top and right sides.
	AxisBox Axes = iota

	// AxisBottomLeft draws only the bottom and left axis lines.
	AxisBottomLeft
)

var axisNames = []string{"Box", "BottomLeft"}

func (a Axes) String() string {
	return enumName(axisNames, int(a))
}

// Ticks are the directions of the tick marks.
type Ticks int32

const (
	// TickInward draws tick marks into the plot area.
	TickInward Ticks = iota

	// TickOutward draws tick marks away from the plot area.
	TickOutward

	// TickNone draws no tick marks.
	TickNone
)

var tickNames = []string{"Inward", "Outward", "None"}

func (t Ticks) String() string {
	return enumName(tickNames, int(t))
}

// direction returns the sign of the tick offset away from the plot area.
func (t Ticks) direction() float32 {
	if t == TickInward {
		return -1
	}
	return 1
}

// Grids are the patterns of the gridlines.
type Grids int32

const (
	GridSolid Grids = iota
	GridDashed
	GridDotted
	GridNone
)

var gridNames = []string{"Solid", "Dashed", "Dotted", "None"}

func (g Grids) String() string {
	return enumName(gridNames, int(g))
}

// Dash returns the dash pattern of the grid, or nil for solid lines.
func (g Grids) Dash() []float32 {
	switch g {
	case GridDashed:
		return []float32{4, 4}
	case GridDotted:
		return []float32{1, 2}
	}
	return nil
}

// MinorGrids select the axes that get minor ticks and gridlines.
type MinorGrids int32

const (
	MinorGridNone MinorGrids = iota
	MinorGridX
	MinorGridY
	MinorGridBoth
)

var minorGridNames = []string{"None", "X", "Y", "Both"}

func (m MinorGrids) String() string {
	return enumName(minorGridNames, int(m))
}

// Has returns whether minor ticks are on for the given dimension.
func (m MinorGrids) Has(d Dims) bool {
	switch m {
	case MinorGridBoth:
		return true
	case MinorGridX:
		return d == X
	case MinorGridY:
		return d == Y
	}
	return false
}

// Legends are the placements of the legend box.
type Legends int32

const (
	// LegendNone draws no legend.
	LegendNone Legends = iota

	LegendTopRightInside
	LegendTopRightOutside
	LegendTopLeftInside
	LegendTopLeftOutside
	LegendBottomRightInside
	LegendBottomRightOutside
	LegendBottomLeftInside
	LegendBottomLeftOutside
	LegendRightCenterInside
	LegendRightCenterOutside
	LegendLeftCenterInside
	LegendLeftCenterOutside

	// LegendTopCenter is centered horizontally inside the top of the plot area.
	LegendTopCenter

	// LegendBottomCenter is centered horizontally inside the bottom of the plot area.
	LegendBottomCenter
)

var legendNames = []string{"None",
	"TopRightInside", "TopRightOutside", "TopLeftInside", "TopLeftOutside",
	"BottomRightInside", "BottomRightOutside", "BottomLeftInside", "BottomLeftOutside",
	"RightCenterInside", "RightCenterOutside", "LeftCenterInside", "LeftCenterOutside",
	"TopCenter", "BottomCenter"}

func (l Legends) String() string {
	return enumName(legendNames, int(l))
}

// LegendsValues returns all possible values for [Legends].
func LegendsValues() []Legends {
	vs := make([]Legends, len(legendNames))
	for i := range vs {
		vs[i] = Legends(i)
	}
	return vs
}

// OutsideRight returns whether the legend is outside the plot area on the right,
// which widens the right margin.
func (l Legends) OutsideRight() bool {
	return l == LegendTopRightOutside || l == LegendRightCenterOutside || l == LegendBottomRightOutside
}

// OutsideLeft returns whether the legend is outside the plot area on the left,
// which widens the left margin.
func (l Legends) OutsideLeft() bool {
	return l == LegendTopLeftOutside || l == LegendLeftCenterOutside || l == LegendBottomLeftOutside
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}
