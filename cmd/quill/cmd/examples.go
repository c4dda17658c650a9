// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"math"

	"cogentcore.org/quill/cmd/quill/config"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/plot"
	"cogentcore.org/quill/plot/plots"
)

// Chart is a plot of any value type that can be saved.
type Chart interface {
	SVGToFile(filename string) error
	PNGToFile(filename string, scale float32) error
}

// Example is a chart of the gallery.
type Example struct {
	// Name is the base name of the output files.
	Name string

	Description string

	// Make returns the chart with the configuration overrides applied.
	Make func(c *config.Config) Chart
}

// Examples are all the charts of the gallery.
var Examples = []Example{
	{"line", "a sine curve", lineChart},
	{"scatter", "a Lissajous curve drawn with markers only", scatterChart},
	{"logarithmic", "exponential and power law growth on a log Y axis", logChart},
	{"weather", "daily temperature and humidity with integer data", weatherChart},
	{"monthly-sales", "unit sales of three products over a year", salesChart},
	{"investment-growth", "compound growth at three rates of return", investmentChart},
	{"trigonometry", "sine and cosine over a π scaled axis", piChart},
	{"engineering", "capacitor discharge with engineering notation", engineeringChart},
}

// configure applies the overrides of the configuration to the plot.
func configure[T plot.Value](pt *plot.Plot[T], c *config.Config) *plot.Plot[T] {
	if c.Width > 0 {
		pt.Size.X = c.Width
	}
	if c.Height > 0 {
		pt.Size.Y = c.Height
	}
	if c.Font != "" {
		pt.Font = c.Font
	}
	if c.Background != "" {
		pt.Background = c.Background
	}
	return pt
}

func series[T plot.Value](name, color string, marker plots.Shapes, data []plot.XY[T]) *plot.Series[T] {
	s := plot.NewSeries(name, data...)
	s.Color = color
	s.Marker = marker
	return s
}

func lineChart(c *config.Config) Chart {
	var data []plot.XY[float32]
	for i := 0; i <= 100; i++ {
		x := float32(i) * 0.1
		data = append(data, plot.XY[float32]{X: x, Y: math32.Sin(x)})
	}
	pt := plot.New(series("Sine Curve", "blue", plots.NoShape, data))
	pt.Size = math32.Vec2(600, 400)
	pt.Title = "Line Graph Example"
	pt.XLabel = "X Axis"
	pt.YLabel = "Y Axis"
	pt.Legend = plot.LegendTopRightOutside
	return configure(pt, c)
}

func scatterChart(c *config.Config) Chart {
	var data []plot.XY[float32]
	for i := 0; i <= 100; i++ {
		t := float32(i) * 0.1
		data = append(data, plot.XY[float32]{X: 10 * math32.Sin(2*t), Y: 10 * math32.Cos(3*t+0.5)})
	}
	s := series("Lissajous Curve", "red", plots.Circle, data)
	s.MarkerSize = 5
	s.Line = plot.LineNone
	pt := plot.New(s)
	pt.Size = math32.Vec2(600, 400)
	pt.Title = "Scatter Graph Example"
	pt.XLabel = "X Axis"
	pt.YLabel = "Y Axis"
	pt.Legend = plot.LegendTopRightOutside
	pt.Grid = plot.GridDashed
	return configure(pt, c)
}

func logChart(c *config.Config) Chart {
	var exp, pow []plot.XY[float64]
	for x := 0; x <= 20; x++ {
		xf := float64(x)
		exp = append(exp, plot.XY[float64]{X: xf, Y: math.Pow(10, xf*0.1)})
		if x > 0 {
			pow = append(pow, plot.XY[float64]{X: xf, Y: xf * xf * xf})
		}
	}
	e := series("10^(x/10)", "red", plots.Circle, exp)
	e.LineWidth = 2
	p := series("x³", "blue", plots.Square, pow)
	p.LineWidth = 2
	p.Line = plot.LineDashed
	pt := plot.New(e, p)
	pt.Title = "Logarithmic Y-Scale Example"
	pt.XLabel = "Time"
	pt.YLabel = "Value (Log Scale)"
	pt.Legend = plot.LegendTopLeftInside
	pt.YScale = plot.ScaleLog
	pt.MinorGrid = plot.MinorGridY
	return configure(pt, c)
}

func weatherChart(c *config.Config) Chart {
	temps := []int{32, 28, 35, 42, 38, 45, 52, 48, 55, 61, 58, 65, 72, 68, 75,
		78, 82, 79, 85, 88, 84, 81, 77, 73, 69, 66, 62, 58, 54, 51}
	hums := []int{85, 88, 82, 75, 78, 72, 68, 71, 65, 62, 66, 58, 55, 59, 52,
		48, 45, 49, 42, 38, 41, 44, 47, 51, 54, 57, 61, 64, 68, 72}
	days := func(vs []int) []plot.XY[int] {
		data := make([]plot.XY[int], len(vs))
		for i, v := range vs {
			data[i] = plot.XY[int]{X: i + 1, Y: v}
		}
		return data
	}
	t := series("Temperature (°F)", "red", plots.Circle, days(temps))
	t.Interpolation = plots.Spline
	h := series("Humidity (%)", "blue", plots.Square, days(hums))
	h.Interpolation = plots.Spline
	h.Line = plot.LineDashed
	pt := plot.New(t, h)
	pt.Size = math32.Vec2(800, 500)
	pt.Title = "Daily Weather Data"
	pt.XLabel = "Day of Month"
	pt.YLabel = "Temperature (°F) and Humidity (%)"
	pt.XRange = plot.Manual(1, 30)
	pt.YRange = plot.Manual(25, 90)
	pt.Legend = plot.LegendTopRightOutside
	pt.Font = "Arial"
	return configure(pt, c)
}

func salesChart(c *config.Config) Chart {
	months := func(first int, vs ...float64) []plot.XY[float64] {
		data := make([]plot.XY[float64], len(vs))
		for i, v := range vs {
			data[i] = plot.XY[float64]{X: float64(first + i), Y: v}
		}
		return data
	}
	a := series("Product A", "blue", plots.Circle,
		months(1, 150, 160, 170, 155, 180, 190, 200, 185, 210, 220, 240, 250))
	b := series("Product B", "firebrick", plots.Square,
		months(1, 80, 85, 90, 100, 95, 110, 105, 120, 130, 115, 140, 150))
	b.Interpolation = plots.Step
	cs := series("Product C (New)", "dark sea green", plots.Cross,
		months(4, 30, 45, 60, 70, 85, 100, 110, 125, 140))
	cs.Line = plot.LineDashed
	pt := plot.New(a, b, cs)
	pt.Size = math32.Vec2(900, 500)
	pt.Title = "Monthly Sales Data - 2024"
	pt.XLabel = "Month"
	pt.YLabel = "Units Sold"
	pt.XRange = plot.Manual(1, 12)
	pt.YRange = plot.Manual(0, 300)
	pt.Legend = plot.LegendTopLeftInside
	pt.Font = "Verdana"
	return configure(pt, c)
}

func investmentChart(c *config.Config) Chart {
	growth := func(rate float64) []plot.XY[float64] {
		var data []plot.XY[float64]
		for y := 0; y <= 10; y++ {
			v := 1000 * math.Pow(1+rate, float64(y))
			data = append(data, plot.XY[float64]{X: float64(y), Y: math.Round(v*10) / 10})
		}
		return data
	}
	pt := plot.New(
		series("Low-Risk Investment", "green", plots.Circle, growth(0.05)),
		series("Medium-Risk Investment", "orange", plots.Square, growth(0.10)),
		series("High-Risk Investment", "crimson", plots.Cross, growth(0.15)),
	)
	pt.Series[2].Interpolation = plots.Bezier
	pt.Title = "Hypothetical Investment Growth"
	pt.XLabel = "Years"
	pt.YLabel = "Value ($)"
	pt.XRange = plot.Manual(0, 10)
	pt.Legend = plot.LegendTopLeftInside
	pt.Grid = plot.GridDotted
	return configure(pt, c)
}

func piChart(c *config.Config) Chart {
	var sin, cos []plot.XY[float64]
	for i := 0; i <= 32; i++ {
		x := float64(i) * 2 * math.Pi / 32
		sin = append(sin, plot.XY[float64]{X: x, Y: math.Sin(x)})
		cos = append(cos, plot.XY[float64]{X: x, Y: math.Cos(x)})
	}
	s := series("sin(x)", "steelblue", plots.NoShape, sin)
	s.Interpolation = plots.Bezier
	co := series("cos(x)", "tomato", plots.NoShape, cos)
	co.Interpolation = plots.Bezier
	co.Line = plot.LineDashed
	pt := plot.New(s, co)
	pt.Title = "Trigonometric Functions"
	pt.XLabel = "Angle (radians)"
	pt.YLabel = "Value"
	pt.XScale = plot.ScalePi
	pt.XRange = plot.Manual(0, 2*math.Pi)
	pt.YRange = plot.Manual(-1.2, 1.2)
	pt.MinorGrid = plot.MinorGridX
	pt.Legend = plot.LegendBottomCenter
	return configure(pt, c)
}

func engineeringChart(c *config.Config) Chart {
	const tau = 470e-6
	var data []plot.XY[float64]
	for i := 0; i <= 50; i++ {
		t := float64(i) * 50e-6
		data = append(data, plot.XY[float64]{X: t, Y: 4.7e3 * math.Exp(-t/tau)})
	}
	s := series("V(t) = V₀·e^(-t/RC)", "darkviolet", plots.Circle, data)
	s.MarkerSize = 3
	pt := plot.New(s)
	pt.Title = "Capacitor Discharge"
	pt.XLabel = "Time (s)"
	pt.YLabel = "Voltage (mV)"
	pt.XScale = plot.ScaleEngineering
	pt.YScale = plot.ScaleScientific
	pt.Axis = plot.AxisBottomLeft
	pt.Tick = plot.TickOutward
	pt.MinorGrid = plot.MinorGridBoth
	pt.Legend = plot.LegendRightCenterOutside
	return configure(pt, c)
}
