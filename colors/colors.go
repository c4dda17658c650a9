// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing, conversion, and palette
// functions for charts.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	LightGray = colornames.Lightgray
	Gray      = colornames.Gray
	// Transparent is fully transparent black.
	Transparent = color.RGBA{}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromRGB makes a new RGBA color from the given
// RGB uint8 values, using 255 for A.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromString returns a color value from the given string.
// It accepts hex forms (#rgb, #rrggbb, #rrggbbaa), rgb(r, g, b)
// and rgba(r, g, b, a) functional forms, the keywords "none" and
// "transparent", and any CSS / SVG color name, ignoring case and spaces.
func FromString(str string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	if s == "" {
		return color.RGBA{}, errors.New("colors.FromString: empty color string")
	}
	switch {
	case s == "none" || s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		return FromHex(s)
	case strings.HasPrefix(s, "rgb"):
		return fromFunc(s)
	}
	s = strings.ReplaceAll(s, " ", "")
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if sg := Suggest(s); sg != "" {
		return color.RGBA{}, fmt.Errorf("colors.FromString: unknown color %q (did you mean %q?)", str, sg)
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: unknown color %q", str)
}

// Suggest returns the color name most similar to the given unknown name,
// or "" if none is close enough.
func Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.6
	for _, nm := range colornames.Names {
		if sim := strutil.Similarity(name, nm, lev); sim > score {
			best, score = nm, sim
		}
	}
	return best
}

// OrBlack returns the color for the given string, falling back
// to black for an empty or unrecognized value.
func OrBlack(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		return Black
	}
	return c
}

// FromHex parses the given hex color string and returns the resulting color.
// The leading # is optional; three, six, and eight digit forms are supported.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 8:
		c, err := FromHex(hex[:6])
		if err != nil {
			return c, err
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid alpha in %q: %w", hex, err)
		}
		return WithAlpha(c, uint8(a)), nil
	}
	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := cf.RGB255()
	return FromRGB(r, g, b), nil
}

func fromFunc(s string) (color.RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.RGBA{}, fmt.Errorf("colors.FromString: malformed color function %q", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected 3 or 4 components in %q", s)
	}
	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		pct := strings.HasSuffix(p, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: %w", err)
		}
		switch {
		case pct:
			v /= 100
			if i < 3 {
				v *= 255
			}
		}
		vals[i] = v
	}
	c := color.RGBA{clamp8(vals[0]), clamp8(vals[1]), clamp8(vals[2]), 255}
	return WithAlpha(c, clamp8(vals[3]*255)), nil
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

// WithAlpha returns the given color with the
// given alpha value, premultiplying the color channels.
func WithAlpha(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}

// AsHex returns the color as a standard 6 digit hex string (e.g. #ff0000),
// using 8 digits when it is not fully opaque.
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Opacity returns the alpha of the color as a value in [0, 1].
func Opacity(c color.Color) float32 {
	_, _, _, a := c.RGBA()
	return float32(a) / 0xffff
}

// IsNil returns whether the color is nil or fully transparent.
func IsNil(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
