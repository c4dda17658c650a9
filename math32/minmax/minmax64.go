// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

const (
	MaxFloat64 float64 = math.MaxFloat64
)

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling FitValInRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit. NaN values are ignored.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range.
// A zero range returns 0.5.
func (mr *F64) NormValue(val float64) float64 {
	r := mr.Range()
	if r == 0 {
		return 0.5
	}
	return (val - mr.Min) / r
}

