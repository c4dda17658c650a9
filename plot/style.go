// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// DefaultFontFamily is the font family of all plot text.
var DefaultFontFamily = "Times New Roman"

// SeriesDash is the dash pattern of [LineDashed] series.
var SeriesDash = []float32{5, 5}

// Margin is the space between the canvas edges and the plot area,
// holding the title, axis labels and tick labels.
type Margin struct {
	Top    float32 `default:"60"`
	Bottom float32 `default:"70"`
	Left   float32 `default:"80"`
	Right  float32 `default:"30"`
}

func (m *Margin) Defaults() {
	m.Top = 60
	m.Bottom = 70
	m.Left = 80
	m.Right = 30
}

// TickStyle has the styling of tick marks and tick labels.
type TickStyle struct {
	// FontSize is the size of tick labels.
	FontSize float32 `default:"10"`

	LabelColor string `default:"black"`

	LineColor string `default:"black"`

	// Length is the length of major tick marks.
	Length float32 `default:"5"`

	// Width is the stroke width of major tick marks.
	Width float32 `default:"1"`

	// TextPadding is the gap between tick marks and their labels.
	TextPadding float32 `default:"3"`

	// DensityX is the pixel spacing per X tick used to pick the tick count.
	DensityX float32 `default:"50"`

	// DensityY is the pixel spacing per Y tick used to pick the tick count.
	DensityY float32 `default:"50"`

	MinorLength float32 `default:"3"`

	MinorWidth float32 `default:"0.5"`

	MinorColor string `default:"black"`

	// MinorPerMajor is the number of minor ticks between linear major ticks.
	MinorPerMajor int `default:"4"`
}

func (ts *TickStyle) Defaults() {
	ts.FontSize = 10
	ts.LabelColor = "black"
	ts.LineColor = "black"
	ts.Length = 5
	ts.Width = 1
	ts.TextPadding = 3
	ts.DensityX = 50
	ts.DensityY = 50
	ts.MinorLength = 3
	ts.MinorWidth = 0.5
	ts.MinorColor = "black"
	ts.MinorPerMajor = 4
}

// Density returns the tick density for the given dimension.
func (ts *TickStyle) Density(d Dims) float32 {
	if d == Y {
		return ts.DensityY
	}
	return ts.DensityX
}

// GridStyle has the styling of gridlines.
type GridStyle struct {
	Color      string  `default:"lightgray"`
	Width      float32 `default:"0.5"`
	MinorColor string  `default:"lightgray"`
	MinorWidth float32 `default:"0.3"`
}

func (gs *GridStyle) Defaults() {
	gs.Color = "lightgray"
	gs.Width = 0.5
	gs.MinorColor = "lightgray"
	gs.MinorWidth = 0.3
}

// LegendStyle has the styling of the legend box.
type LegendStyle struct {
	FontSize float32 `default:"12"`

	TextColor string `default:"black"`

	BorderColor string `default:"black"`

	BorderWidth float32 `default:"1"`

	Background string `default:"white"`

	// Padding is the space inside the box, and between the box and
	// the plot area edge it is placed against.
	Padding float32 `default:"10"`

	// ItemHeight is the height of each series entry.
	ItemHeight float32 `default:"18"`

	// SwatchWidth is the width of the color swatch of each entry.
	SwatchWidth float32 `default:"15"`

	// TextOffset is the gap between the swatch and the name.
	TextOffset float32 `default:"5"`
}

func (ls *LegendStyle) Defaults() {
	ls.FontSize = 12
	ls.TextColor = "black"
	ls.BorderColor = "black"
	ls.BorderWidth = 1
	ls.Background = "white"
	ls.Padding = 10
	ls.ItemHeight = 18
	ls.SwatchWidth = 15
	ls.TextOffset = 5
}

// AxisStyle has the styling of the axis lines.
type AxisStyle struct {
	Color string  `default:"black"`
	Width float32 `default:"1.5"`
}

func (as *AxisStyle) Defaults() {
	as.Color = "black"
	as.Width = 1.5
}

// TextStyle has the styling of the title and axis labels.
type TextStyle struct {
	FontSize float32
	Color    string `default:"black"`
}

// TitleStyle has the styling of the plot title.
type TitleStyle struct {
	TextStyle
}

func (ts *TitleStyle) Defaults() {
	ts.FontSize = 20
	ts.Color = "black"
}

// LabelStyle has the styling of an axis label.
type LabelStyle struct {
	TextStyle
}

func (ls *LabelStyle) Defaults() {
	ls.FontSize = 14
	ls.Color = "black"
}
