// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides read-only text measurement for chart layout,
// and the font faces used by the raster backend.
package fonts

import "unicode/utf8"

// Metrics measures the rendered width of text. Implementations must be
// safe for concurrent use, since charts may be rendered in parallel.
type Metrics interface {
	// TextWidth returns the width in pixels of the given text
	// in the given font family at the given size in pixels.
	TextWidth(text, family string, size float32) float32
}

// Heuristic is a [Metrics] that does not look at glyphs at all:
// every character is assumed to be Factor times the font size wide.
type Heuristic struct {
	// Factor is the average character width as a proportion of the font size.
	Factor float32
}

// DefaultHeuristic is the character-count heuristic used for layout
// when no other [Metrics] are given.
var DefaultHeuristic = Heuristic{Factor: 0.6}

func (h Heuristic) TextWidth(text, family string, size float32) float32 {
	f := h.Factor
	if f <= 0 {
		f = 0.6
	}
	return float32(utf8.RuneCountInString(text)) * size * f
}
