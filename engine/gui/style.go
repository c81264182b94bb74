package gui

import (
	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/math32"
)

// Style is the fixed, read-only options record consumed by widget sizing
// and chrome. It is set once on the Context and never changes mid-frame.
type Style struct {
	// WindowPadding insets the root region from the viewport edges.
	WindowPadding math32.Vec2

	// ItemSpacing is the gap the region inserts after every reserved
	// rect along the flow direction.
	ItemSpacing math32.Vec2

	// ButtonPadding is the inset between a button's rect and its text.
	ButtonPadding math32.Vec2

	// StartIconWidth is the horizontal space reserved for the checkbox
	// and radio icons in front of their text.
	StartIconWidth float32

	// ColumnSpacing is the gap between columns.
	ColumnSpacing float32

	CornerRadius float32

	TextColor      colors.Color
	WidgetFill     colors.Color
	SeparatorColor colors.Color
	GrooveColor    colors.Color
	HandleColor    colors.Color
	OutlineColor   colors.Color
}

func DefaultStyle() *Style {
	return &Style{
		WindowPadding:  math32.V2(8, 8),
		ItemSpacing:    math32.V2(8, 4),
		ButtonPadding:  math32.V2(8, 4),
		StartIconWidth: 20,
		ColumnSpacing:  8,
		CornerRadius:   4,
		TextColor:      colors.White,
		WidgetFill:     colors.Grayf(0.24),
		SeparatorColor: colors.White,
		GrooveColor:    colors.Grayf(0.16),
		HandleColor:    colors.LightGray,
		OutlineColor:   colors.Grayf(0.6),
	}
}

// interactFill shades the base widget fill by the interaction state, the
// pressed shade darker and the hovered shade lighter.
func (s *Style) interactFill(i Interaction) colors.Color {
	switch {
	case i.Active:
		return s.WidgetFill.Scaled(0.85)
	case i.Hovered:
		return s.WidgetFill.Scaled(1.3)
	default:
		return s.WidgetFill
	}
}

// interactOutline returns a stroke for hovered or active chrome, nil
// otherwise.
func (s *Style) interactOutline(i Interaction) *Outline {
	if !i.Hovered && !i.Active {
		return nil
	}
	return &Outline{Width: 1, Color: s.OutlineColor}
}
