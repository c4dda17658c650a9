// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/quill/math32/minmax"
)

// Domain is the resolved data range of an axis.
type Domain = minmax.F64

// Range is the requested range of an axis: either automatic from the
// data, or fixed to Min and Max.
type Range struct {
	// Fixed uses Min and Max verbatim instead of the data range.
	Fixed bool

	Min, Max float64
}

// Manual returns a fixed [Range].
func Manual(lo, hi float64) Range {
	return Range{Fixed: true, Min: lo, Max: hi}
}

// ResolveRange returns the domain of the given dimension over all series.
// A fixed range is returned verbatim. Otherwise the range of the finite
// data values is used: (0, 1) with no data, padded by 0.5 on each side when
// narrower than [Epsilon], and snapped outward to powers of ten for
// [ScaleLog] when all values are positive.
func ResolveRange[T Value](series []*Series[T], dim Dims, rng Range, scale Scales) Domain {
	if rng.Fixed {
		return Domain{Min: rng.Min, Max: rng.Max}
	}
	var d Domain
	d.SetInfinity()
	for _, s := range series {
		if s == nil {
			continue
		}
		for _, xy := range s.Data {
			if finite(xy) {
				d.FitValInRange(xy.Get(dim))
			}
		}
	}
	if !d.IsValid() {
		return Domain{Min: 0, Max: 1}
	}
	if d.Range() < Epsilon[T]() {
		d.Min -= 0.5
		d.Max += 0.5
	}
	if scale == ScaleLog && d.Min > 0 {
		d.Min = math.Pow10(int(math.Floor(log10(d.Min))))
		d.Max = math.Pow10(int(math.Ceil(log10(d.Max))))
	}
	return d
}

// log10 is [math.Log10] rounded to the nearest integer when within
// floating point error of it, so that exact powers of ten give exact decades.
func log10(v float64) float64 {
	l := math.Log10(v)
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		return r
	}
	return l
}
