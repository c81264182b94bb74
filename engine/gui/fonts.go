package gui

import "github.com/hubastard/glim/engine/math32"

// TextStyle selects a font from the font engine.
type TextStyle int

const (
	StyleBody TextStyle = iota
	StyleButton
	StyleHeading
	StyleMonospace
)

// TextLine is one laid-out line of wrapped text. XOffsets holds the x
// start of every rune relative to the line origin; len(XOffsets) equals
// the rune count of Text.
type TextLine struct {
	Text     string
	XOffsets []float32
}

// Fonts is the boundary to the text-shaping subsystem. Implementations
// report exact pixel sizes so space reservation and painting agree.
type Fonts interface {
	// LayoutWrapped word-wraps text to maxWidth and returns the lines
	// plus the total size of the block. maxWidth <= 0 disables wrapping.
	LayoutWrapped(style TextStyle, text string, maxWidth float32) ([]TextLine, math32.Vec2)

	// LineSpacing is the vertical distance between consecutive line
	// origins for the style.
	LineSpacing(style TextStyle) float32
}
