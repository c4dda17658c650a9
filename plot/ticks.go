// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Tick is a major tick with its label.
type Tick struct {
	Value float64

	// Label is the text of the tick. Log labels use "base^exponent"
	// and are drawn with the exponent as a superscript.
	Label string
}

// TickSet has the ticks of one axis.
type TickSet struct {
	// Major are the labeled ticks, in increasing order.
	Major []Tick

	// Minor are the unlabeled ticks between major ticks.
	Minor []float64

	// Power and Factor are the shared scale factor of scientific and
	// engineering labels, from [ScaleFactor].
	Power  int
	Factor float64
}

// NewTickSet returns the ticks of an axis with the given domain and scale,
// aiming for n linear ticks. When minorPerMajor > 0, minor ticks are
// added, with minorPerMajor ticks per linear interval.
func NewTickSet(d Domain, scale Scales, n, minorPerMajor int) *TickSet {
	var major []float64
	switch scale {
	case ScaleLog:
		major = LogTicks(d.Min, d.Max)
	case ScalePi:
		major = PiTicks(d.Min, d.Max)
	default:
		major = LinearTicks(d.Min, d.Max, n)
	}
	ts := &TickSet{Major: make([]Tick, len(major))}
	ts.Power, ts.Factor = ScaleFactor(scale, major)
	for i, v := range major {
		ts.Major[i] = Tick{Value: v, Label: FormatTick(v, scale, ts.Factor)}
	}
	if minorPerMajor > 0 {
		switch scale {
		case ScaleLog:
			ts.Minor = LogMinorTicks(major)
		case ScalePi:
			ts.Minor = PiMinorTicks(major)
		default:
			ts.Minor = LinearMinorTicks(major, minorPerMajor)
		}
	}
	return ts
}

// FormatTick returns the label of a tick value on an axis with the given
// scale, dividing linear values by the scale factor.
func FormatTick(v float64, scale Scales, factor float64) string {
	switch scale {
	case ScaleLog:
		return FormatLogValue(v)
	case ScalePi:
		return FormatPiValue(v)
	}
	return FormatLinear(v, factor)
}

// Values returns the values of the major ticks.
func (ts *TickSet) Values() []float64 {
	vs := make([]float64, len(ts.Major))
	for i, t := range ts.Major {
		vs[i] = t.Value
	}
	return vs
}
