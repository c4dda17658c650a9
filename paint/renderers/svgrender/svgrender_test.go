// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgrender

import (
	"bytes"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"cogentcore.org/quill/colors"
	"cogentcore.org/quill/math32"
	"cogentcore.org/quill/paint/ppath"
	"cogentcore.org/quill/paint/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// elements returns the count of each start tag in the given SVG source,
// failing the test if the source is not well-formed.
func elements(t *testing.T, src []byte) map[string]int {
	t.Helper()
	l := xml.NewLexer(parse.NewInput(bytes.NewReader(src)))
	counts := map[string]int{}
	depth := 0
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			require.ErrorIs(t, l.Err(), io.EOF)
			assert.Zero(t, depth, "unbalanced tags")
			return counts
		case xml.StartTagToken:
			counts[string(l.Text())]++
			depth++
		case xml.StartTagCloseVoidToken, xml.EndTagToken:
			depth--
		}
	}
}

func testRender() render.Render {
	var r render.Render
	r.Add(&render.Rect{Size: math32.Vec2(200, 100), Style: render.Filled(colors.White)})
	r.Add(&render.ClipPush{Rect: math32.B2(10, 10, 190, 90)})
	p := ppath.Path{}
	p.MoveTo(10, 90)
	p.LineTo(100, 20)
	p.CubeTo(120, 10, 150, 10, 190, 50)
	r.Add(&render.Path{Path: p, Style: render.Stroked(colors.OrBlack("steelblue"), 1.5, 5, 5)})
	r.Add(&render.Circle{Center: math32.Vec2(100, 20), Radius: 2, Style: render.Filled(colors.OrBlack("red"))})
	r.Add(&render.ClipPop{})
	r.Add(&render.Line{Start: math32.Vec2(10, 90), End: math32.Vec2(190, 90), Style: render.Stroked(colors.Black, 1)})
	r.Add(&render.Text{Pos: math32.Vec2(20, 95), Text: "10", Sup: "3", Font: "Times New Roman", Size: 10,
		Color: colors.Black, Anchor: render.AnchorMiddle, Baseline: render.BaselineHanging})
	r.Add(&render.Text{Pos: math32.Vec2(5, 50), Text: "a < b & c", Size: 14, Rotation: -90,
		Anchor: render.AnchorMiddle, Baseline: render.BaselineMiddle})
	r.Add(&render.Rect{Pos: math32.Vec2(150, 15), Size: math32.Vec2(30, 20),
		Style: render.Style{Fill: colors.WithAlpha(color.White, 128), Stroke: colors.Black, Width: 1}})
	return r
}

func TestRenderer(t *testing.T) {
	rs := New(math32.Vec2(200, 100))
	assert.Equal(t, math32.Vec2(200, 100), rs.Size())
	rs.Render(testRender())
	src := rs.String()

	counts := elements(t, rs.Source())
	assert.Equal(t, 1, counts["svg"])
	assert.Equal(t, 1, counts["clipPath"])
	assert.Equal(t, 1, counts["g"])
	assert.Equal(t, 1, counts["circle"])
	assert.Equal(t, 2, counts["text"])
	assert.Equal(t, 1, counts["tspan"])

	assert.Contains(t, src, `width="200"`)
	assert.Contains(t, src, `viewBox="0 0 200 100"`)
	assert.Contains(t, src, `clip-path="url(#clip1)"`)
	assert.Contains(t, src, `d="M10 10 L190 10 L190 90 L10 90 z"`, "clip rectangle")
	assert.Contains(t, src, `d="M10 90 L100 20 C120 10 150 10 190 50"`)
	assert.Contains(t, src, `stroke="#4682b4"`)
	assert.Contains(t, src, `stroke-dasharray="5 5"`)
	assert.Contains(t, src, `text-anchor="middle"`)
	assert.Contains(t, src, `dominant-baseline="hanging"`)
	assert.Contains(t, src, `transform="rotate(-90, 5, 50)"`)
	assert.Contains(t, src, `a &lt; b &amp; c`)
	assert.Contains(t, src, `fill-opacity="0.502"`)
	assert.Contains(t, src, `>10<tspan dy="-0.4em" font-size="7.5">3</tspan></text>`)
}

func TestRendererRerender(t *testing.T) {
	rs := New(math32.Vec2(50, 50))
	rs.Render(testRender())
	first := rs.String()
	rs.Render(testRender())
	assert.Equal(t, first, rs.String())

	// unbalanced clip push is closed at the end
	var r render.Render
	r.Add(&render.ClipPush{Rect: math32.B2(0, 0, 10, 10)}, &render.ClipPop{}, &render.ClipPop{})
	r.Add(&render.ClipPush{Rect: math32.B2(0, 0, 10, 10)})
	rs.Render(r)
	counts := elements(t, rs.Source())
	assert.Equal(t, 2, counts["g"])
	assert.Contains(t, rs.String(), "clip2")
}

func TestRendererSave(t *testing.T) {
	rs := New(math32.Vec2(200, 100))
	rs.Render(testRender())
	fn := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, rs.Save(fn))
	var b bytes.Buffer
	n, err := rs.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(len(rs.Source())), n)
	assert.Error(t, rs.Save(filepath.Join(t.TempDir(), "missing", "out.svg")))
}
