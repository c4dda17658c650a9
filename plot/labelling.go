// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// TargetTicks returns the number of ticks to aim for on an axis of the
// given pixel length, at one tick per density pixels and at least 2.
func TargetTicks(length, density float32) int {
	if density <= 0 {
		return 2
	}
	return max(2, int(length/density))
}

// niceStep returns the step from {1, 2, 5, 10} times a power of ten
// closest to the rough step.
func niceStep(rough float64) float64 {
	exp := math.Floor(math.Log10(rough))
	pow := math.Pow(10, exp)
	frac := rough / pow
	var nice float64
	switch {
	case frac < 1.5:
		nice = 1
	case frac < 3.5:
		nice = 2
	case frac < 7.5:
		nice = 5
	default:
		nice = 10
	}
	return nice * pow
}

// LinearTicks returns nice-number ticks covering [lo, hi] aiming for n
// ticks. Ticks are integer multiples of the step, starting at or below lo,
// and kept within a tenth of a step of the range. Ticks are strictly
// increasing, also when the step is below the float64 spacing of the
// range. Equal lo and hi give [lo], and fewer than two ticks fall back
// to include both ends.
func LinearTicks(lo, hi float64, n int) []float64 {
	if lo == hi {
		return []float64{lo}
	}
	n = max(n, 2)
	step := niceStep((hi - lo) / float64(n-1))
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return []float64{lo, hi}
	}
	k0 := math.Floor(lo / step)
	var ticks []float64
	for i := 0; i < 4*n+4; i++ {
		v := (k0 + float64(i)) * step
		if v > hi+step/2 {
			break
		}
		if len(ticks) > 0 && v <= ticks[len(ticks)-1] {
			continue
		}
		if v >= lo-0.1*step && v <= hi+0.1*step {
			ticks = append(ticks, v)
		}
		if len(ticks) > 2*n {
			break
		}
	}
	switch len(ticks) {
	case 0:
		return []float64{lo, hi}
	case 1:
		if ticks[0] < hi {
			return append(ticks, hi)
		}
		return []float64{lo, ticks[0]}
	}
	return ticks
}

// LogTicks returns ticks at the powers of ten within [lo, hi].
// A non-positive lo is replaced with 1, and a non-positive hi with lo*1000.
func LogTicks(lo, hi float64) []float64 {
	if lo <= 0 {
		lo = 1
	}
	if hi <= 0 {
		hi = lo * 1000
	}
	e0, e1 := int(math.Floor(log10(lo))), int(math.Ceil(log10(hi)))
	var ticks []float64
	for e := e0; e <= e1; e++ {
		v := math.Pow10(e)
		if v >= lo*(1-1e-9) && v <= hi*(1+1e-9) {
			ticks = append(ticks, v)
		}
	}
	if len(ticks) == 0 {
		if lo == hi {
			return []float64{lo}
		}
		return []float64{lo, hi}
	}
	return ticks
}

// LogMinorTicks returns the ticks at 2..9 times the lower power of ten
// between each pair of major ticks that are one decade apart.
func LogMinorTicks(major []float64) []float64 {
	var minor []float64
	for i := 0; i+1 < len(major); i++ {
		a, b := major[i], major[i+1]
		if a <= 0 || b <= 0 {
			continue
		}
		la := log10(a)
		if math.Abs(log10(b)-la-1) >= 0.1 {
			continue
		}
		mag := math.Pow10(int(math.Floor(la)))
		for f := 2; f <= 9; f++ {
			if v := float64(f) * mag; v > a && v < b {
				minor = append(minor, v)
			}
		}
	}
	return minor
}

// LinearMinorTicks returns n evenly spaced ticks inside each interval
// between consecutive major ticks.
func LinearMinorTicks(major []float64, n int) []float64 {
	var minor []float64
	for i := 0; i+1 < len(major); i++ {
		a, b := major[i], major[i+1]
		step := (b - a) / float64(n+1)
		for j := 1; j <= n; j++ {
			minor = append(minor, a+step*float64(j))
		}
	}
	return minor
}

var (
	// piFine are the fractions of π used for ranges up to half a period.
	piFine = []float64{0, 1.0 / 8, 1.0 / 6, 1.0 / 4, 1.0 / 3, 3.0 / 8, 1.0 / 2, 5.0 / 8, 2.0 / 3, 3.0 / 4, 5.0 / 6, 7.0 / 8, 1}

	// piFractions are the canonical fractions of π over one full period.
	piFractions = []float64{0, 1.0 / 6, 1.0 / 4, 1.0 / 3, 1.0 / 2, 2.0 / 3, 3.0 / 4, 5.0 / 6, 1,
		7.0 / 6, 5.0 / 4, 4.0 / 3, 3.0 / 2, 5.0 / 3, 7.0 / 4, 11.0 / 6, 2}
)

const (
	// piTolerance is how far outside the range a π tick may be and still be kept.
	piTolerance = 1e-3

	// maxPiTicks is the most ticks generated for wide π ranges.
	maxPiTicks = 20
)

// PiTicks returns ticks at simple fractions of π within [lo, hi]:
// eighths and sixths of π for ranges up to half π, the canonical fractions
// of each period up to three π, and integer and half multiples of π beyond,
// thinned to at most 20 ticks.
func PiTicks(lo, hi float64) []float64 {
	in := func(v float64) bool {
		return v >= lo-piTolerance && v <= hi+piTolerance
	}
	var ticks []float64
	add := func(v float64) {
		if in(v) {
			ticks = append(ticks, v)
		}
	}
	r0, r1 := lo/math.Pi, hi/math.Pi
	switch span := r1 - r0; {
	case span <= 0.5:
		for _, f := range piFine {
			add(f * math.Pi)
			add(-f * math.Pi)
		}
	case span <= 3:
		for _, f := range piFractions {
			for k := -3; k <= 3; k++ {
				add((f + 2*float64(k)) * math.Pi)
			}
		}
	default:
		// in units of half π
		k0, k1 := int(math.Floor(2*r0)), int(math.Ceil(2*r1))
		stride := 1
		for i := 0; (k1-k0)/stride >= maxPiTicks; i++ {
			if i%3 == 2 {
				stride = stride * 5 / 2
			} else {
				stride *= 2
			}
		}
		for k := k0; k <= k1; k++ {
			if k%stride == 0 {
				add(float64(k) * math.Pi / 2)
			}
		}
	}
	slices.Sort(ticks)
	ticks = slices.CompactFunc(ticks, func(a, b float64) bool {
		return math.Abs(a-b) < 1e-6
	})
	if len(ticks) == 0 {
		return []float64{lo, hi}
	}
	return ticks
}

// PiMinorTicks returns the minor ticks between π major ticks: the midpoint
// of intervals up to π/2, and the quarter points of wider intervals.
func PiMinorTicks(major []float64) []float64 {
	var minor []float64
	for i := 0; i+1 < len(major); i++ {
		a, b := major[i], major[i+1]
		n := 4
		if b-a <= math.Pi/2 {
			n = 2
		}
		for j := 1; j < n; j++ {
			minor = append(minor, a+(b-a)*float64(j)/float64(n))
		}
	}
	return minor
}

// ScaleFactor returns the power of ten and its value that all labels of a
// [ScaleScientific] or [ScaleEngineering] axis are divided by, based on the
// largest absolute major tick. Scientific uses the decade of that tick when
// it is at least 10 or below 1. Engineering uses the multiple of 3 at or
// below the decade, corrected so that the scaled tick is in [1, 1000).
// Other scales, and all-zero ticks, give (0, 1).
func ScaleFactor(scale Scales, major []float64) (power int, factor float64) {
	if scale != ScaleScientific && scale != ScaleEngineering {
		return 0, 1
	}
	maxAbs := 0.0
	for _, v := range major {
		if a := math.Abs(v); a > maxAbs && !math.IsInf(a, 0) {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return 0, 1
	}
	exp := int(math.Floor(log10(maxAbs)))
	if scale == ScaleScientific {
		if maxAbs >= 10 || maxAbs < 1 {
			power = exp
		}
		return power, math.Pow10(power)
	}
	power = floorDiv(exp, 3) * 3
	for i := 0; i < 4 && maxAbs/math.Pow10(power) >= 1000; i++ {
		power += 3
	}
	for i := 0; i < 4 && maxAbs/math.Pow10(power) < 1; i++ {
		power -= 3
	}
	return power, math.Pow10(power)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FormatLinear formats the value divided by factor with one decimal.
func FormatLinear(v, factor float64) string {
	s := strconv.FormatFloat(v/factor, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}

// FormatLogValue formats a log axis value as "10^e", or "c.c·10^e" when
// it is not a power of ten.
func FormatLogValue(v float64) string {
	a := math.Abs(v)
	if a == 0 {
		return "0"
	}
	l := math.Log10(a)
	if r := math.Round(l); math.Abs(r-l) < 0.001 {
		return fmt.Sprintf("10^%d", int(r))
	}
	exp := math.Floor(l)
	c := v / math.Pow(10, exp)
	if math.Abs(c-1) < 0.001 {
		return fmt.Sprintf("10^%d", int(exp))
	}
	return fmt.Sprintf("%.1f·10^%d", c, int(exp))
}

// SplitPower splits a "base^exponent" label into the base and the
// exponent drawn as a superscript. Labels without "^" have no exponent.
func SplitPower(label string) (base, sup string) {
	base, sup, _ = strings.Cut(label, "^")
	return
}

// FormatPiValue formats a value as a simple fraction of π, such as
// "π", "-π/2" or "3π/4", trying denominators 1, 2, 3, 4, 6 and 8.
// Other values are formatted as "r.rrπ", and values near 0 as "0".
func FormatPiValue(v float64) string {
	if math.Abs(v) < 1e-6 {
		return "0"
	}
	ratio := v / math.Pi
	for _, d := range []int{1, 2, 3, 4, 6, 8} {
		nf := ratio * float64(d)
		n := int(math.Round(nf))
		if math.Abs(nf-float64(n)) >= piTolerance {
			continue
		}
		switch {
		case n == 0:
			return "0"
		case d == 1 && n == 1:
			return "π"
		case d == 1 && n == -1:
			return "-π"
		case d == 1:
			return fmt.Sprintf("%dπ", n)
		case n == 1:
			return fmt.Sprintf("π/%d", d)
		case n == -1:
			return fmt.Sprintf("-π/%d", d)
		}
		return fmt.Sprintf("%dπ/%d", n, d)
	}
	return fmt.Sprintf("%.2fπ", ratio)
}
