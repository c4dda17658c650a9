// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterizer is a [render.Renderer] that draws into an
// [image.RGBA], using golang.org/x/image/vector for coverage.
package rasterizer

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/fonts"
	"cogentcore.org/quill/paint/ppath"
	"cogentcore.org/quill/paint/render"
	"golang.org/x/image/font"
	"golang.org/x/image/vector"
)

// Renderer is the raster renderer.
type Renderer struct {
	size  math32.Vector2
	scale float32

	// Fonts provides the font faces for text. It defaults to [fonts.Shared].
	Fonts *fonts.OpenType

	image *image.RGBA
	mask  *image.Alpha
	ras   *vector.Rasterizer
	clips []image.Rectangle
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float32
}

// New returns a new raster renderer for a canvas of the given size,
// drawn at the given scale factor (e.g. 2 for high density output).
// A non-positive scale is treated as 1.
func New(size math32.Vector2, scale float32) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{size: size, scale: scale, Fonts: fonts.Shared, ras: &vector.Rasterizer{}}
}

func (rs *Renderer) Size() math32.Vector2 {
	return rs.size
}

// Scale returns the scale factor from canvas units to pixels.
func (rs *Renderer) Scale() float32 {
	return rs.scale
}

// Image returns the image drawn by the last call to Render.
func (rs *Renderer) Image() *image.RGBA {
	return rs.image
}

// Render is the main rendering function. Each call starts from a
// fresh transparent image of size ceil(Size * Scale).
func (rs *Renderer) Render(r render.Render) {
	psz := rs.size.MulScalar(rs.scale).ToPointCeil()
	rs.image = image.NewRGBA(image.Rectangle{Max: psz})
	rs.mask = image.NewAlpha(rs.image.Bounds())
	rs.clips = rs.clips[:0]
	for _, ri := range r {
		switch x := ri.(type) {
		case *render.Rect:
			rs.renderPath(*ppath.New().Rectangle(x.Pos.X, x.Pos.Y, x.Size.X, x.Size.Y), &x.Style)
		case *render.Line:
			rs.renderPath(*ppath.New().Line(x.Start.X, x.Start.Y, x.End.X, x.End.Y), &x.Style)
		case *render.Path:
			rs.renderPath(x.Path, &x.Style)
		case *render.Circle:
			rs.renderPath(*ppath.New().Circle(x.Center.X, x.Center.Y, x.Radius), &x.Style)
		case *render.Text:
			rs.renderText(x)
		case *render.ClipPush:
			b := math32.Box2{Min: x.Rect.Min.MulScalar(rs.scale), Max: x.Rect.Max.MulScalar(rs.scale)}
			rs.clips = append(rs.clips, b.ToRect().Intersect(rs.clip()))
		case *render.ClipPop:
			if len(rs.clips) > 0 {
				rs.clips = rs.clips[:len(rs.clips)-1]
			}
		}
	}
}

// clip returns the current clip rectangle in pixels.
func (rs *Renderer) clip() image.Rectangle {
	if len(rs.clips) == 0 {
		return rs.image.Bounds()
	}
	return rs.clips[len(rs.clips)-1]
}

func (rs *Renderer) renderPath(p ppath.Path, st *render.Style) {
	if p.Empty() {
		return
	}
	p = p.Scale(rs.scale, rs.scale)
	if st.HasFill() {
		rs.fill(p, st.Fill)
	}
	if st.HasStroke() {
		dash := make([]float32, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * rs.scale
		}
		rs.stroke(p, st.Width*rs.scale, dash, st.Stroke)
	}
}

// fill fills the interior of the path.
func (rs *Renderer) fill(p ppath.Path, c color.Color) {
	z := rs.reset()
	open := false
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case ppath.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(end.X, end.Y)
			open = true
		case ppath.LineTo:
			z.LineTo(end.X, end.Y)
		case ppath.CubeTo:
			c1, c2 := s.CP1(), s.CP2()
			z.CubeTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		case ppath.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	rs.drawMask(c)
}

func (rs *Renderer) reset() *vector.Rasterizer {
	b := rs.image.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
	return rs.ras
}

// drawMask composites the color through the coverage accumulated in the
// rasterizer, limited to the current clip.
func (rs *Renderer) drawMask(c color.Color) {
	b := rs.image.Bounds()
	clear(rs.mask.Pix)
	rs.ras.Draw(rs.mask, b, image.Opaque, image.Point{})
	cr := rs.clip()
	draw.DrawMask(rs.image, cr, image.NewUniform(c), image.Point{}, rs.mask, cr.Min, draw.Over)
}
