// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterizer

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/fonts"
	"cogentcore.org/quill/paint/render"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// supScale is the size of superscript text relative to the main text.
	supScale = 0.75

	// supRaise is how far superscript text is raised, relative to the main size.
	supRaise = 0.4
)

// face returns the cached face for the family at the given pixel size.
func (rs *Renderer) face(family string, size float32) font.Face {
	key := faceKey{family, size}
	if f, ok := rs.faces[key]; ok {
		return f
	}
	f, err := rs.Fonts.NewFace(family, size)
	if err != nil {
		slog.Error("rasterizer: no face for text", "family", family, "err", err)
		return nil
	}
	if rs.faces == nil {
		rs.faces = map[faceKey]font.Face{}
	}
	rs.faces[key] = f
	return f
}

func (rs *Renderer) renderText(t *render.Text) {
	size := t.Size * rs.scale
	if size <= 0 || (t.Text == "" && t.Sup == "") {
		return
	}
	face := rs.face(t.Font, size)
	if face == nil {
		return
	}
	var sface font.Face
	if t.Sup != "" {
		sface = rs.face(t.Font, size*supScale)
	}
	w := fonts.FixedToFloat(font.MeasureString(face, t.Text))
	total := w
	if sface != nil {
		total += fonts.FixedToFloat(font.MeasureString(sface, t.Sup))
	}
	m := face.Metrics()
	ascent, descent := fonts.FixedToFloat(m.Ascent), fonts.FixedToFloat(m.Descent)

	// offset from the anchor point to the start of the baseline
	var off math32.Vector2
	switch t.Anchor {
	case render.AnchorMiddle:
		off.X = -total / 2
	case render.AnchorEnd:
		off.X = -total
	}
	switch t.Baseline {
	case render.BaselineMiddle:
		off.Y = (ascent - descent) / 2
	case render.BaselineHanging, render.BaselineTextTop:
		off.Y = ascent
	case render.BaselineTextBottom:
		off.Y = -descent
	}

	var col color.Color = colors.Black
	if t.Color != nil {
		col = t.Color
	}
	src := image.NewUniform(col)
	pos := t.Pos.MulScalar(rs.scale)
	dst := rs.image.SubImage(rs.clip()).(*image.RGBA)
	if t.Rotation == 0 {
		rs.drawText(dst, src, face, sface, t, pos.Add(off), w, size)
		return
	}

	// draw into a square centered on the anchor, rotate it about its
	// center, and composite it back centered on the anchor
	half := int(math32.Ceil(total+ascent+descent)) + 2
	tmp := image.NewRGBA(image.Rect(0, 0, 2*half, 2*half))
	c := math32.Vec2(float32(half), float32(half))
	rs.drawText(tmp, src, face, sface, t, c.Add(off), w, size)
	rot := transform.Rotate(tmp, float64(t.Rotation), nil)
	px, py := int(math32.Round(pos.X)), int(math32.Round(pos.Y))
	dr := image.Rect(px-half, py-half, px+half, py+half)
	draw.Draw(dst, dr, rot, image.Point{}, draw.Over)
}

// drawText draws the main text with its baseline starting at at,
// followed by the raised superscript.
func (rs *Renderer) drawText(dst draw.Image, src image.Image, face, sface font.Face, t *render.Text, at math32.Vector2, w, size float32) {
	d := &font.Drawer{Dst: dst, Src: src, Face: face, Dot: toFixed(at)}
	d.DrawString(t.Text)
	if sface == nil {
		return
	}
	d.Face = sface
	d.Dot = toFixed(math32.Vec2(at.X+w, at.Y-size*supRaise))
	d.DrawString(t.Sup)
}

func toFixed(v math32.Vector2) fixed.Point26_6 {
	return fixed.Point26_6{X: fonts.FloatToFixed(v.X), Y: fonts.FloatToFixed(v.Y)}
}
