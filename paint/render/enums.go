// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Anchors are horizontal text alignments, using the
// SVG text-anchor names.
type Anchors int32

const (
	// AnchorStart aligns the start of the text with the position.
	AnchorStart Anchors = iota

	// AnchorMiddle centers the text on the position.
	AnchorMiddle

	// AnchorEnd aligns the end of the text with the position.
	AnchorEnd
)

func (a Anchors) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "start"
}

// Baselines are vertical text alignments, using the
// SVG dominant-baseline names.
type Baselines int32

const (
	// BaselineAuto puts the alphabetic baseline at the position.
	BaselineAuto Baselines = iota

	// BaselineMiddle centers the text vertically on the position.
	BaselineMiddle

	// BaselineHanging puts the top of the text at the position.
	BaselineHanging

	// BaselineTextBottom puts the bottom of the text box at the position.
	BaselineTextBottom

	// BaselineTextTop puts the top of the text box at the position.
	BaselineTextTop
)

func (b Baselines) String() string {
	switch b {
	case BaselineMiddle:
		return "middle"
	case BaselineHanging:
		return "hanging"
	case BaselineTextBottom:
		return "text-after-edge"
	case BaselineTextTop:
		return "text-before-edge"
	}
	return "auto"
}
