// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"sync"
	"testing"

	"cogentcore.org/quill/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristic(t *testing.T) {
	tolassert.EqualTol(t, 5*12*0.6, DefaultHeuristic.TextWidth("Sales", "Times New Roman", 12), 1e-4)
	tolassert.EqualTol(t, 2*10*0.6, DefaultHeuristic.TextWidth("2π", "", 10), 1e-4)
	assert.Zero(t, DefaultHeuristic.TextWidth("", "", 10))
	tolassert.EqualTol(t, 3*10*0.6, Heuristic{}.TextWidth("abc", "", 10), 1e-4)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Roman, Resolve("Times New Roman"))
	assert.Equal(t, Roman, Resolve(""))
	assert.Equal(t, Sans, Resolve("Arial"))
	assert.Equal(t, Sans, Resolve("sans-serif"))
	assert.Equal(t, Mono, Resolve("Courier New"))
	assert.Equal(t, RomanBold, Resolve("Latin Modern Roman Bold"))
}

func TestOpenType(t *testing.T) {
	ot := &OpenType{}
	w10 := ot.TextWidth("Temperature", Roman, 10)
	w20 := ot.TextWidth("Temperature", Roman, 20)
	assert.Greater(t, w10, float32(0))
	// advances are hinted per size, so the widths scale only approximately
	tolassert.EqualTol(t, 2, w20/w10, 0.02)
	assert.Less(t, ot.TextWidth("iii", Roman, 12), ot.TextWidth("WWW", Roman, 12))
	assert.Zero(t, ot.TextWidth("", Roman, 12))

	face, err := ot.NewFace("Arial", 14)
	require.NoError(t, err)
	m := face.Metrics()
	assert.Greater(t, FixedToFloat(m.Ascent), float32(5))
	assert.Equal(t, float32(1.5), FixedToFloat(FloatToFixed(1.5)))
}

func TestOpenTypeConcurrent(t *testing.T) {
	ot := &OpenType{}
	want := ot.TextWidth("concurrent", Sans, 12)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ot.TextWidth("concurrent", Sans, 12))
		}()
	}
	wg.Wait()
}
