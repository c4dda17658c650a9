// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"cogentcore.org/quill/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetTicks(t *testing.T) {
	assert.Equal(t, 13, TargetTicks(690, 50))
	assert.Equal(t, 2, TargetTicks(40, 50))
	assert.Equal(t, 2, TargetTicks(690, 0))
}

func TestLinearTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, LinearTicks(0, 10, 6))
	assert.Equal(t, []float64{5}, LinearTicks(5, 5, 4))

	a := LinearTicks(-3.7, 12.9, 8)
	b := LinearTicks(-3.7, 12.9, 8)
	assert.Equal(t, a, b)
	require.Greater(t, len(a), 2)
	step := a[1] - a[0]
	for i := 1; i < len(a); i++ {
		tolassert.EqualTol(t, step, a[i]-a[i-1], 1e-9)
	}
	assert.GreaterOrEqual(t, a[0], -3.7-0.1*step)
	assert.LessOrEqual(t, a[len(a)-1], 12.9+0.1*step)
}

func TestLinearTicksIncreasing(t *testing.T) {
	ticks := LinearTicks(1e16, 1e16+4, 10)
	require.GreaterOrEqual(t, len(ticks), 2)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1])
	}

	for e := -20; e <= 20; e++ {
		m := math.Pow(10, float64(e))
		for _, w := range []float64{m * 1e-15, m * 1e-9, m * 1e-3, m, 100 * m} {
			for _, r := range [][2]float64{{m, m + w}, {-m - w, -m}, {-w / 2, w / 2}} {
				lo, hi := r[0], r[1]
				if hi <= lo {
					continue
				}
				for n := 2; n <= 12; n++ {
					ticks := LinearTicks(lo, hi, n)
					require.GreaterOrEqual(t, len(ticks), 2, "lo %g hi %g n %d", lo, hi, n)
					for i := 1; i < len(ticks); i++ {
						require.Greater(t, ticks[i], ticks[i-1], "lo %g hi %g n %d: %v", lo, hi, n, ticks)
					}
				}
			}
		}
	}
}

func TestLinearMinorTicks(t *testing.T) {
	tolassert.EqualTolSlice(t, []float64{0.5, 1, 1.5, 2.5, 3, 3.5}, LinearMinorTicks([]float64{0, 2, 4}, 3), 1e-12)
	assert.Empty(t, LinearMinorTicks([]float64{1}, 4))
}

func TestLogTicks(t *testing.T) {
	assert.Equal(t, []float64{1, 10, 100, 1000}, LogTicks(1, 1000))
	assert.Equal(t, []float64{1, 10, 100, 1000}, LogTicks(0, -5))
	assert.Equal(t, []float64{10, 100}, LogTicks(3, 450))
	assert.Equal(t, []float64{2, 5}, LogTicks(2, 5))

	minor := LogMinorTicks([]float64{1, 10, 100})
	assert.Len(t, minor, 16)
	assert.Equal(t, 2.0, minor[0])
	assert.Equal(t, 90.0, minor[15])
}

func TestPiTicks(t *testing.T) {
	ticks := PiTicks(0, 2*math.Pi)
	for _, f := range []float64{0, 0.5, 1, 1.5, 2} {
		found := false
		for _, v := range ticks {
			if math.Abs(v-f*math.Pi) < 1e-9 {
				found = true
			}
		}
		assert.True(t, found, "missing %gπ in %v", f, ticks)
	}
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1])
	}

	assert.Len(t, PiTicks(0, 4*math.Pi), 9)
	assert.LessOrEqual(t, len(PiTicks(0, 100*math.Pi)), maxPiTicks)
	assert.LessOrEqual(t, len(PiTicks(-1000, 1000)), maxPiTicks)

	fine := PiTicks(0, math.Pi/4)
	assert.Contains(t, fine, math.Pi/8)
	assert.Contains(t, fine, math.Pi/4)

	assert.Equal(t, []float64{1.2, 1.3}, PiTicks(1.2, 1.3))
}

func TestFormatPiValue(t *testing.T) {
	cases := map[float64]string{
		0:                "0",
		1e-9:             "0",
		math.Pi:          "π",
		-math.Pi:         "-π",
		2 * math.Pi:      "2π",
		math.Pi / 2:      "π/2",
		-math.Pi / 2:     "-π/2",
		3 * math.Pi / 4:  "3π/4",
		5 * math.Pi / 6:  "5π/6",
		3 * math.Pi / 2:  "3π/2",
		-7 * math.Pi / 8: "-7π/8",
		0.3:              "0.10π",
	}
	for v, want := range cases {
		assert.Equal(t, want, FormatPiValue(v), "value %g", v)
	}
}

func TestScaleFactor(t *testing.T) {
	p, f := ScaleFactor(ScaleScientific, []float64{0, 20000, 40000})
	assert.Equal(t, 4, p)
	assert.Equal(t, 1e4, f)

	p, _ = ScaleFactor(ScaleScientific, []float64{0, 0.25, 0.5})
	assert.Equal(t, -1, p)

	p, f = ScaleFactor(ScaleScientific, []float64{0, 5})
	assert.Equal(t, 0, p)
	assert.Equal(t, 1.0, f)

	p, _ = ScaleFactor(ScaleEngineering, []float64{0, 20000, 40000})
	assert.Equal(t, 3, p)

	p, _ = ScaleFactor(ScaleEngineering, []float64{0, 0.0005})
	assert.Equal(t, -6, p)

	p, f = ScaleFactor(ScaleLinear, []float64{0, 1e9})
	assert.Equal(t, 0, p)
	assert.Equal(t, 1.0, f)

	p, _ = ScaleFactor(ScaleEngineering, []float64{0, 0})
	assert.Equal(t, 0, p)
}

func TestEngineeringMantissa(t *testing.T) {
	for e := -12; e <= 12; e++ {
		for _, m := range []float64{1, 2.5, 7.3, 9.99} {
			for _, sign := range []float64{1, -1} {
				v := sign * m * math.Pow10(e)
				p, f := ScaleFactor(ScaleEngineering, []float64{0, v})
				assert.Zero(t, p%3, "power %d for %g", p, v)
				mant := math.Abs(v) / f
				assert.GreaterOrEqual(t, mant, 1.0, "mantissa of %g", v)
				assert.Less(t, mant, 1000.0, "mantissa of %g", v)
			}
		}
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, floorDiv(5, 3))
	assert.Equal(t, -2, floorDiv(-5, 3))
	assert.Equal(t, -1, floorDiv(-3, 3))
	assert.Equal(t, 0, floorDiv(0, 3))
}

func TestFormatLinear(t *testing.T) {
	assert.Equal(t, "2.5", FormatLinear(2.5, 1))
	assert.Equal(t, "4.0", FormatLinear(40000, 1e4))
	assert.Equal(t, "0.0", FormatLinear(-0.0001, 1))
	assert.Equal(t, "-1.5", FormatLinear(-1.5, 1))
}

func TestFormatLogValue(t *testing.T) {
	assert.Equal(t, "10^3", FormatLogValue(1000))
	assert.Equal(t, "10^0", FormatLogValue(1))
	assert.Equal(t, "10^-2", FormatLogValue(0.01))
	assert.Equal(t, "2.0·10^2", FormatLogValue(200))
	assert.Equal(t, "0", FormatLogValue(0))

	base, sup := SplitPower("10^3")
	assert.Equal(t, "10", base)
	assert.Equal(t, "3", sup)
	base, sup = SplitPower("2.5")
	assert.Equal(t, "2.5", base)
	assert.Empty(t, sup)
}

func TestNewTickSet(t *testing.T) {
	ts := NewTickSet(Domain{Min: 0, Max: 40000}, ScaleScientific, 5, 0)
	assert.Equal(t, 4, ts.Power)
	assert.Empty(t, ts.Minor)
	assert.Equal(t, "0.0", ts.Major[0].Label)
	assert.Equal(t, "4.0", ts.Major[len(ts.Major)-1].Label)

	ts = NewTickSet(Domain{Min: 1, Max: 1000}, ScaleLog, 5, 4)
	assert.Equal(t, []float64{1, 10, 100, 1000}, ts.Values())
	assert.Equal(t, "10^2", ts.Major[2].Label)
	assert.Len(t, ts.Minor, 24)

	ts = NewTickSet(Domain{Min: 0, Max: 2 * math.Pi}, ScalePi, 5, 1)
	assert.Equal(t, "0", ts.Major[0].Label)
	assert.Equal(t, "2π", ts.Major[len(ts.Major)-1].Label)
	assert.NotEmpty(t, ts.Minor)

	ts = NewTickSet(Domain{Min: 0, Max: 10}, ScaleLinear, 6, 4)
	assert.Len(t, ts.Minor, 20)
	assert.Equal(t, "10.0", ts.Major[5].Label)
}
