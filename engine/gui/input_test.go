package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/glim/engine/math32"
)

func TestDeriveFrameInputEdges(t *testing.T) {
	tests := []struct {
		name             string
		prevDown, down   bool
		clicked, release bool
	}{
		{"held up", false, false, false, false},
		{"held down", true, true, false, false},
		{"pressed", false, true, true, false},
		{"released", true, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DeriveFrameInput(
				RawSample{PointerDown: tt.prevDown},
				RawSample{PointerDown: tt.down},
			)
			assert.Equal(t, tt.down, in.PointerDown)
			assert.Equal(t, tt.clicked, in.PointerClicked)
			assert.Equal(t, tt.release, in.PointerReleased)
			assert.False(t, in.PointerClicked && in.PointerReleased)
		})
	}
}

func TestDeriveFrameInputCarriesSample(t *testing.T) {
	pos := math32.V2(12, 34)
	in := DeriveFrameInput(RawSample{}, RawSample{
		PointerDown:    true,
		PointerPos:     &pos,
		ViewportSize:   math32.V2(800, 600),
		PixelsPerPoint: 2,
	})
	assert.Equal(t, &pos, in.PointerPos)
	assert.Equal(t, math32.V2(800, 600), in.ViewportSize)
	assert.Equal(t, float32(2), in.PixelsPerPoint)
}

func TestFirstFrameSyntheticPrevious(t *testing.T) {
	// A zero previous sample means a button already held on frame one
	// reports a click, and an idle pointer reports nothing.
	in := DeriveFrameInput(RawSample{}, RawSample{PointerDown: true})
	assert.True(t, in.PointerClicked)

	in = DeriveFrameInput(RawSample{}, RawSample{})
	assert.False(t, in.PointerClicked)
	assert.False(t, in.PointerReleased)
}
