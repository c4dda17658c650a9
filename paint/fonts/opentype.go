// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Family names of the embedded faces.
const (
	Roman     = "Latin Modern Roman"
	RomanBold = "Latin Modern Roman Bold"
	Sans      = "Latin Modern Sans"
	Mono      = "Latin Modern Mono"
)

var embedded = map[string][]byte{
	Roman:     lmroman10regular.TTF,
	RomanBold: lmroman10bold.TTF,
	Sans:      lmsans10regular.TTF,
	Mono:      lmmono10regular.TTF,
}

// Resolve maps a requested font family name onto one of the embedded
// families. Generic CSS families and common system fonts are mapped to
// the closest match; anything unknown uses [Roman].
func Resolve(family string) string {
	f := strings.ToLower(strings.TrimSpace(family))
	switch {
	case f == "":
		return Roman
	case strings.Contains(f, "mono") || strings.Contains(f, "courier") || strings.Contains(f, "consol"):
		return Mono
	case strings.Contains(f, "sans") || strings.Contains(f, "arial") || strings.Contains(f, "helvetica") || strings.Contains(f, "verdana"):
		return Sans
	case strings.Contains(f, "bold"):
		return RomanBold
	}
	return Roman
}

type faceKey struct {
	family string
	size   float32
}

// OpenType is a [Metrics] that measures text with the glyph advances of
// the embedded Latin Modern fonts. The zero value is ready to use.
type OpenType struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

// Shared is the process-wide [OpenType] provider.
var Shared = &OpenType{}

func (ot *OpenType) font(family string) (*opentype.Font, error) {
	family = Resolve(family)
	if f, ok := ot.fonts[family]; ok {
		return f, nil
	}
	f, err := opentype.Parse(embedded[family])
	if err != nil {
		return nil, fmt.Errorf("fonts: parsing %s: %w", family, err)
	}
	if ot.fonts == nil {
		ot.fonts = map[string]*opentype.Font{}
	}
	ot.fonts[family] = f
	return f, nil
}

// NewFace returns a new [font.Face] for the given family and size in pixels.
// Faces are not safe for concurrent use, so each caller gets its own.
func (ot *OpenType) NewFace(family string, size float32) (font.Face, error) {
	ot.mu.Lock()
	f, err := ot.font(family)
	ot.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (ot *OpenType) TextWidth(text, family string, size float32) float32 {
	ot.mu.Lock()
	defer ot.mu.Unlock()
	key := faceKey{Resolve(family), size}
	face, ok := ot.faces[key]
	if !ok {
		f, err := ot.font(family)
		if err == nil {
			face, err = opentype.NewFace(f, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingNone})
		}
		if err != nil {
			slog.Error("fonts: falling back to heuristic width", "family", family, "err", err)
			return DefaultHeuristic.TextWidth(text, family, size)
		}
		if ot.faces == nil {
			ot.faces = map[faceKey]font.Face{}
		}
		ot.faces[key] = face
	}
	return FixedToFloat(font.MeasureString(face, text))
}

// FixedToFloat converts a 26.6 fixed point value to float32.
func FixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// FloatToFixed converts a float32 to a 26.6 fixed point value.
func FloatToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
