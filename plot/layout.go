// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"

	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/fonts"
)

// ErrPlotTooSmall is the error of a plot area with no room left
// inside the margins.
var ErrPlotTooSmall = errors.New("plot area is too small")

// LayoutError is returned when the plot area has a non-positive
// width or height. It matches [ErrPlotTooSmall] with [errors.Is].
type LayoutError struct {
	Width, Height float32
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("plot: %v (width: %g, height: %g); check dimensions and margins", ErrPlotTooSmall, e.Width, e.Height)
}

func (e *LayoutError) Unwrap() error {
	return ErrPlotTooSmall
}

// LegendPlan is the size and placement of the legend box,
// decided before the plot area so that outside legends get room.
type LegendPlan struct {
	Placement Legends

	// Items is the number of entries.
	Items int

	// Width and Height are the size of the box.
	Width, Height float32

	// Padding is the legend padding, also used as the gap to the plot area.
	Padding float32
}

// NewLegendPlan returns the plan for a legend with the given entry names.
// The box is as wide as the swatch, the text offset and the widest name,
// and as tall as all the items plus padding above and below.
func NewLegendPlan(names []string, placement Legends, st *LegendStyle, family string, metrics fonts.Metrics) LegendPlan {
	lp := LegendPlan{Placement: placement, Items: len(names), Padding: st.Padding}
	if !lp.Active() {
		return lp
	}
	var tw float32
	for _, nm := range names {
		tw = math32.Max(tw, metrics.TextWidth(nm, family, st.FontSize))
	}
	lp.Width = st.SwatchWidth + st.TextOffset + tw
	lp.Height = float32(lp.Items)*st.ItemHeight + 2*st.Padding
	return lp
}

// Active returns whether the legend is drawn.
func (lp *LegendPlan) Active() bool {
	return lp.Placement != LegendNone && lp.Items > 0
}

// EffectiveMargin returns the margin widened on the side of an
// outside legend by its width plus padding.
func EffectiveMargin(m Margin, lp LegendPlan) Margin {
	if !lp.Active() {
		return m
	}
	switch {
	case lp.Placement.OutsideRight():
		m.Right += lp.Width + lp.Padding
	case lp.Placement.OutsideLeft():
		m.Left += lp.Width + lp.Padding
	}
	return m
}

// ComputePlotRect returns the plot area of a canvas of the given size
// inside the effective margins, or a [*LayoutError] if it has no room.
func ComputePlotRect(canvas math32.Vector2, m Margin, lp LegendPlan) (Rect, error) {
	em := EffectiveMargin(m, lp)
	r := Rect{X: em.Left, Y: em.Top, W: canvas.X - em.Left - em.Right, H: canvas.Y - em.Top - em.Bottom}
	if r.W <= 0 || r.H <= 0 {
		return r, &LayoutError{Width: r.W, Height: r.H}
	}
	return r, nil
}

// Position returns the top-left corner of the legend box for the plan's
// placement, given the canvas size, the plot area and the effective margin.
func (lp *LegendPlan) Position(canvas math32.Vector2, r Rect, em Margin) math32.Vector2 {
	pad := lp.Padding
	right := r.Right() - lp.Width - pad
	outRight := canvas.X - em.Right + pad
	left := r.X + pad
	centerX := r.X + (r.W-lp.Width)/2
	top := r.Y + pad
	bottom := r.Bottom() - lp.Height - pad
	centerY := r.Y + (r.H-lp.Height)/2
	switch lp.Placement {
	case LegendTopRightInside:
		return math32.Vec2(right, top)
	case LegendTopRightOutside:
		return math32.Vec2(outRight, top)
	case LegendTopLeftInside:
		return math32.Vec2(left, top)
	case LegendTopLeftOutside:
		return math32.Vec2(pad, top)
	case LegendBottomRightInside:
		return math32.Vec2(right, bottom)
	case LegendBottomRightOutside:
		return math32.Vec2(outRight, bottom)
	case LegendBottomLeftInside:
		return math32.Vec2(left, bottom)
	case LegendBottomLeftOutside:
		return math32.Vec2(pad, bottom)
	case LegendRightCenterInside:
		return math32.Vec2(right, centerY)
	case LegendRightCenterOutside:
		return math32.Vec2(outRight, centerY)
	case LegendLeftCenterInside:
		return math32.Vec2(left, centerY)
	case LegendLeftCenterOutside:
		return math32.Vec2(pad, centerY)
	case LegendTopCenter:
		return math32.Vec2(centerX, top)
	case LegendBottomCenter:
		return math32.Vec2(centerX, bottom)
	}
	return math32.Vector2{}
}
