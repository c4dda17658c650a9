// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgrender is a [render.Renderer] that writes SVG source.
package svgrender

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
	"cogentcore.org/quill/paint/render"
	svg "github.com/ajstarks/svgo"
)

// Renderer is the SVG renderer.
type Renderer struct {
	size math32.Vector2

	buf bytes.Buffer

	// nclip is the number of clip paths defined so far, for unique ids.
	nclip int
}

// New returns a new SVG renderer for a canvas of the given size.
func New(size math32.Vector2) *Renderer {
	return &Renderer{size: size}
}

func (rs *Renderer) Size() math32.Vector2 {
	return rs.size
}

// Source returns the SVG source generated by the last call to Render.
func (rs *Renderer) Source() []byte {
	return rs.buf.Bytes()
}

// String returns the SVG source as a string.
func (rs *Renderer) String() string {
	return rs.buf.String()
}

// WriteTo writes the SVG source to w.
func (rs *Renderer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(rs.buf.Bytes())
	return int64(n), err
}

// Save writes the SVG source to the given file.
func (rs *Renderer) Save(filename string) error {
	if err := os.WriteFile(filename, rs.buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("svgrender: %w", err)
	}
	return nil
}

// Render is the main rendering function. It replaces any previous output.
func (rs *Renderer) Render(r render.Render) {
	rs.buf.Reset()
	rs.nclip = 0
	w, h := int(math32.Ceil(rs.size.X)), int(math32.Ceil(rs.size.Y))
	canvas := svg.New(&rs.buf)
	canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h))
	depth := 0
	for _, ri := range r {
		switch x := ri.(type) {
		case *render.Rect:
			p := ppath.New().Rectangle(x.Pos.X, x.Pos.Y, x.Size.X, x.Size.Y)
			canvas.Path(p.ToSVG(), styleAttrs(&x.Style)...)
		case *render.Line:
			canvas.Path("M"+ppath.Num(x.Start.X)+" "+ppath.Num(x.Start.Y)+" L"+ppath.Num(x.End.X)+" "+ppath.Num(x.End.Y), styleAttrs(&x.Style)...)
		case *render.Path:
			if x.Path.Empty() {
				continue
			}
			canvas.Path(x.Path.ToSVG(), styleAttrs(&x.Style)...)
		case *render.Circle:
			rs.renderCircle(canvas, x)
		case *render.Text:
			rs.renderText(canvas, x)
		case *render.ClipPush:
			rs.nclip++
			id := "clip" + strconv.Itoa(rs.nclip)
			b := x.Rect
			canvas.Def()
			canvas.ClipPath(`id="` + id + `"`)
			sz := b.Size()
			canvas.Path(ppath.New().Rectangle(b.Min.X, b.Min.Y, sz.X, sz.Y).ToSVG())
			canvas.ClipEnd()
			canvas.DefEnd()
			canvas.Group(`clip-path="url(#` + id + `)"`)
			depth++
		case *render.ClipPop:
			if depth > 0 {
				canvas.Gend()
				depth--
			}
		}
	}
	for ; depth > 0; depth-- {
		canvas.Gend()
	}
	canvas.End()
}

func (rs *Renderer) renderCircle(canvas *svg.SVG, c *render.Circle) {
	cx, cy, r := ppath.Num(c.Center.X), ppath.Num(c.Center.Y), ppath.Num(c.Radius)
	fmt.Fprintf(canvas.Writer, `<circle cx="%s" cy="%s" r="%s" %s/>`+"\n", cx, cy, r, strings.Join(styleAttrs(&c.Style), " "))
}

func (rs *Renderer) renderText(canvas *svg.SVG, t *render.Text) {
	x, y := ppath.Num(t.Pos.X), ppath.Num(t.Pos.Y)
	var sb strings.Builder
	fmt.Fprintf(&sb, `<text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s"`, x, y, escape(t.Font), ppath.Num(t.Size), colors.AsHex(colorOr(t.Color)))
	if t.Anchor != render.AnchorStart {
		fmt.Fprintf(&sb, ` text-anchor="%s"`, t.Anchor)
	}
	if t.Baseline != render.BaselineAuto {
		fmt.Fprintf(&sb, ` dominant-baseline="%s"`, t.Baseline)
	}
	if t.Rotation != 0 {
		fmt.Fprintf(&sb, ` transform="rotate(%s, %s, %s)"`, ppath.Num(t.Rotation), x, y)
	}
	sb.WriteString(">")
	sb.WriteString(escape(t.Text))
	if t.Sup != "" {
		fmt.Fprintf(&sb, `<tspan dy="-0.4em" font-size="%s">%s</tspan>`, ppath.Num(t.Size*0.75), escape(t.Sup))
	}
	sb.WriteString("</text>\n")
	io.WriteString(canvas.Writer, sb.String())
}

// styleAttrs returns the SVG presentation attributes for the given style.
func styleAttrs(s *render.Style) []string {
	var attrs []string
	if s.HasFill() {
		attrs = append(attrs, `fill="`+colors.AsHex(opaque(s.Fill))+`"`)
		if op := colors.Opacity(s.Fill); op < 1 {
			attrs = append(attrs, `fill-opacity="`+strconv.FormatFloat(float64(op), 'f', 3, 32)+`"`)
		}
	} else {
		attrs = append(attrs, `fill="none"`)
	}
	if s.HasStroke() {
		attrs = append(attrs, `stroke="`+colors.AsHex(opaque(s.Stroke))+`"`, `stroke-width="`+ppath.Num(s.Width)+`"`)
		if len(s.Dash) > 0 {
			ds := make([]string, len(s.Dash))
			for i, d := range s.Dash {
				ds[i] = ppath.Num(d)
			}
			attrs = append(attrs, `stroke-dasharray="`+strings.Join(ds, " ")+`"`)
		}
	}
	return attrs
}

// opaque returns the color with full alpha, since opacity is
// written as a separate attribute.
func opaque(c color.Color) color.Color {
	return colors.WithAlpha(c, 255)
}

func colorOr(c color.Color) color.Color {
	if c == nil {
		return colors.Black
	}
	return c
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
