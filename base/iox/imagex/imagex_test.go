// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			im.Set(x, y, color.RGBA{uint8(x * 30), uint8(y * 60), 100, 255})
		}
	}
	return im
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpeg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("svgz")
	assert.Error(t, err)
	assert.Equal(t, "TIFF", TIFF.String())
}

func TestWriteRead(t *testing.T) {
	im := testImage()
	b := &bytes.Buffer{}
	require.NoError(t, Write(im, b, PNG))
	rim, f, err := Read(b)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, im.Bounds(), rim.Bounds())
	assert.Equal(t, im.At(3, 2), AsRGBA(rim).At(3, 2))
	assert.Error(t, Write(im, b, None))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "img.bmp")
	require.NoError(t, Save(testImage(), fn))
	im, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, BMP, f)
	assert.Equal(t, 8, im.Bounds().Dx())
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{15, 5, 10, 255}, 5))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{30, 10, 10, 255}, 5))
	d := AsRGBA(DiffImage(testImage(), testImage()))
	r, g, b, _ := d.At(5, 3).RGBA()
	assert.Zero(t, r+g+b)
}

type recordT struct {
	errors []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, format)
}

func TestAssertEqual(t *testing.T) {
	t.Chdir(t.TempDir())
	rt := &recordT{}
	assert.True(t, AssertEqual(rt, testImage(), testImage(), "same"))
	assert.Empty(t, rt.errors)

	other := image.NewRGBA(testImage().Bounds())
	assert.False(t, AssertEqual(rt, other, testImage(), "other"))
	assert.Len(t, rt.errors, 1)
	assert.FileExists(t, filepath.Join("testdata", "other.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "other.diff.png"))

	assert.False(t, AssertEqual(rt, image.NewRGBA(image.Rect(0, 0, 2, 2)), testImage(), "bounds"))
	assert.Len(t, rt.errors, 2)
}
