package gui

import "github.com/hubastard/glim/engine/math32"

// RawSample is what the host integration hands the gui once per frame:
// a plain snapshot of the pointer and window state, with no edge detection.
type RawSample struct {
	// PointerDown reports whether the primary button is currently held.
	PointerDown bool

	// PointerPos is the pointer position in points, or nil when the
	// pointer is outside the window.
	PointerPos *math32.Vec2

	// ViewportSize is the window size in points.
	ViewportSize math32.Vec2

	// PixelsPerPoint is the device pixel ratio, > 1 on HiDPI screens.
	PixelsPerPoint float32
}

// FrameInput is what the widgets consume: a RawSample diffed against the
// previous frame's sample so that click/release transitions appear exactly
// once.
type FrameInput struct {
	PointerDown bool

	// PointerClicked is set when the button went from up to down between
	// the two samples.
	PointerClicked bool

	// PointerReleased is set when the button went from down to up.
	PointerReleased bool

	PointerPos     *math32.Vec2
	ViewportSize   math32.Vec2
	PixelsPerPoint float32
}

// DeriveFrameInput diffs two consecutive raw samples into the frame's
// edge-detected input. It must be called exactly once per frame with the
// immediately preceding sample; a stale previous sample silently yields
// wrong edge events. On the very first frame pass a zero RawSample as
// previous so the frame cannot report a spurious click.
func DeriveFrameInput(previous, current RawSample) FrameInput {
	return FrameInput{
		PointerDown:     current.PointerDown,
		PointerClicked:  !previous.PointerDown && current.PointerDown,
		PointerReleased: previous.PointerDown && !current.PointerDown,
		PointerPos:      current.PointerPos,
		ViewportSize:    current.ViewportSize,
		PixelsPerPoint:  current.PixelsPerPoint,
	}
}
