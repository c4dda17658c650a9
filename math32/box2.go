// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values
func B2Empty() Box2 {
	return Box2{Vec2(Infinity, Infinity), Vec2(-Infinity, -Infinity)}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.X = Min(b.Min.X, point.X)
	b.Min.Y = Min(b.Min.Y, point.Y)
	b.Max.X = Max(b.Max.X, point.X)
	b.Max.Y = Max(b.Max.Y, point.Y)
}

// ExpandByScalar expands this bounding box by the specified scalar
// subtracting from min and adding to max.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min.X -= scalar
	b.Min.Y -= scalar
	b.Max.X += scalar
	b.Max.Y += scalar
}

// Size returns the size of the bounding box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// ToRect returns the smallest [image.Rectangle] enclosing the box.
func (b Box2) ToRect() image.Rectangle {
	return image.Rect(int(Floor(b.Min.X)), int(Floor(b.Min.Y)), int(Ceil(b.Max.X)), int(Ceil(b.Max.Y)))
}
