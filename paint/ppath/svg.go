// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"strconv"
	"strings"
)

// ToSVG returns a string that represents the path in the SVG path data format.
func (p Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	for s := p.Scanner(); s.Scan(); {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		end := s.End()
		switch s.Cmd() {
		case MoveTo:
			sb.WriteString("M" + Num(end.X) + " " + Num(end.Y))
		case LineTo:
			sb.WriteString("L" + Num(end.X) + " " + Num(end.Y))
		case CubeTo:
			c1, c2 := s.CP1(), s.CP2()
			sb.WriteString("C" + Num(c1.X) + " " + Num(c1.Y) + " " + Num(c2.X) + " " + Num(c2.Y) + " " + Num(end.X) + " " + Num(end.Y))
		case Close:
			sb.WriteString("z")
		}
	}
	return sb.String()
}

// String returns the SVG path data of the path.
func (p Path) String() string {
	return p.ToSVG()
}

// Num formats a coordinate with the minimal number of digits
// needed to represent it as a float32.
func Num(v float32) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
