// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"SteelBlue", color.RGBA{70, 130, 180, 255}},
		{"Dark Sea Green", color.RGBA{143, 188, 143, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#fff", White},
		{"ff8000", color.RGBA{255, 128, 0, 255}},
		{"rgb(10, 20, 30)", color.RGBA{10, 20, 30, 255}},
		{"rgb(100%, 0%, 0%)", color.RGBA{255, 0, 0, 255}},
		{"none", Transparent},
	}
	for _, tt := range tests {
		c, err := FromString(tt.in)
		if tt.in == "ff8000" {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	_, err := FromString("notacolor")
	assert.Error(t, err)
	_, err = FromString("")
	assert.Error(t, err)
	_, err = FromString("rgb(1,2)")
	assert.Error(t, err)
}

func TestOrBlack(t *testing.T) {
	assert.Equal(t, Black, OrBlack("notacolor"))
	assert.Equal(t, Black, OrBlack(""))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, OrBlack("blue"))
}

func TestHex(t *testing.T) {
	c, err := FromHex("#112233ff")
	assert.NoError(t, err)
	assert.Equal(t, "#112233", AsHex(c))
	c, err = FromHex("#ffffff80")
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)
	assert.Equal(t, "#ff0000", AsHex(OrBlack("red")))
	assert.InDelta(t, 0.5, Opacity(c), 0.01)
	assert.True(t, IsNil(Transparent))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(Black))
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "blue", Suggest("bluee"))
	assert.Equal(t, "darkgreen", Suggest("darkgren"))
	assert.Empty(t, Suggest("xq"))

	_, err := FromString("Bluee")
	assert.ErrorContains(t, err, `did you mean "blue"`)
}
