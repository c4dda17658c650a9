// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s
// and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar divides each component of this vector by the scalar s
// and returns resulting vector. A zero s yields the zero vector.
func (v Vector2) DivScalar(s float32) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vector2{v.X / s, v.Y / s}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Lerp returns the linear interpolation between this vector
// and the other at the given fraction t.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vector2{v.X + (other.X-v.X)*t, v.Y + (other.Y-v.Y)*t}
}

// Rot90CW rotates the vector by 90 degrees clockwise.
func (v Vector2) Rot90CW() Vector2 {
	return Vector2{v.Y, -v.X}
}

// Rot90CCW rotates the vector by 90 degrees counter clockwise.
func (v Vector2) Rot90CCW() Vector2 {
	return Vector2{-v.Y, v.X}
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return Hypot(v.X, v.Y)
}

// Normal returns this vector divided by its length,
// or the zero vector if it has zero length.
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// Cross returns the z component of the cross product of the two vectors.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// ToPointCeil returns the vector as an [image.Point], rounding up.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}
