// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/blend"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// CompareUint8 returns true if two numbers are within tol of each other
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if two colors are within tol of each other
// on every channel.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

// DiffImage returns the per-channel absolute difference between two images.
func DiffImage(a, b image.Image) image.Image {
	return blend.Difference(a, b)
}

// AssertEqual asserts that the given image is equivalent to the wanted
// image, allowing a difference of 10 on each channel. If it is not, it
// fails the test with an error, but continues its execution, and saves
// the image and its difference from the wanted one in the testdata
// directory as name.fail.png and name.diff.png.
func AssertEqual(t TestingT, img, want image.Image, name string) bool {
	failFilename := filepath.Join("testdata", name+".fail.png")
	diffFilename := filepath.Join("testdata", name+".diff.png")

	failed := false
	ibounds := img.Bounds()
	wbounds := want.Bounds()
	if ibounds != wbounds {
		t.Errorf("imagex.AssertEqual: expected bounds %v for image %s, but got bounds %v; see %s", wbounds, name, ibounds, failFilename)
		failed = true
	} else {
	loop:
		for y := ibounds.Min.Y; y < ibounds.Max.Y; y++ {
			for x := ibounds.Min.X; x < ibounds.Max.X; x++ {
				cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				wc := color.RGBAModel.Convert(want.At(x, y)).(color.RGBA)
				if !CompareColors(cc, wc, 10) {
					t.Errorf("imagex.AssertEqual: image %s is not the same as expected; see %s; expected color %v at (%d, %d), but got %v", name, failFilename, wc, x, y, cc)
					failed = true
					break loop
				}
			}
		}
	}

	if !failed {
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return true
	}
	if err := os.MkdirAll("testdata", 0750); err != nil {
		t.Errorf("imagex.AssertEqual: error making testdata directory: %v", err)
		return false
	}
	if err := Save(img, failFilename); err != nil {
		t.Errorf("imagex.AssertEqual: error saving fail image: %v", err)
	}
	if ibounds == wbounds {
		if err := Save(DiffImage(img, want), diffFilename); err != nil {
			t.Errorf("imagex.AssertEqual: error saving diff image: %v", err)
		}
	}
	return false
}
