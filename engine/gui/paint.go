package gui

import (
	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/gfx"
	"github.com/hubastard/glim/engine/math32"
)

// Outline describes an optional stroke around a filled shape.
type Outline struct {
	Width float32
	Color colors.Color
}

// PaintCmd is one drawable primitive. The set is closed: a renderer
// switches exhaustively over the concrete types below.
type PaintCmd interface{ isPaintCmd() }

// CircleCmd paints a filled and/or outlined circle. Fill and Outline may
// both be nil, which paints nothing and is not an error.
type CircleCmd struct {
	Center  math32.Vec2
	Radius  float32
	Fill    *colors.Color
	Outline *Outline
}

// LineCmd paints an open polyline through Points.
type LineCmd struct {
	Points []math32.Vec2
	Color  colors.Color
	Width  float32
}

// RectCmd paints a filled and/or outlined rectangle with rounded corners.
type RectCmd struct {
	Rect         math32.Rect
	CornerRadius float32
	Fill         *colors.Color
	Outline      *Outline
}

// TextCmd paints a single line of text. Pos is the top-left corner of the
// first character. XOffsets holds the start of each rune relative to Pos.X;
// its length always equals the rune count of Text.
type TextCmd struct {
	Pos      math32.Vec2
	Text     string
	Style    TextStyle
	Color    colors.Color
	XOffsets []float32
}

// MeshCmd paints a pre-tessellated triangle mesh as-is.
type MeshCmd struct {
	Mesh *gfx.Mesh
}

func (CircleCmd) isPaintCmd() {}
func (LineCmd) isPaintCmd()   {}
func (RectCmd) isPaintCmd()   {}
func (TextCmd) isPaintCmd()   {}
func (MeshCmd) isPaintCmd()   {}
