package gui

import "github.com/hubastard/glim/engine/math32"

// Interaction is the per-frame outcome of reserving space for a widget.
type Interaction struct {
	// Hovered reports that the pointer is over the widget's rect.
	Hovered bool

	// Clicked reports that the pointer was pressed on the widget this
	// frame.
	Clicked bool

	// Active reports that the widget owns the in-progress interaction,
	// e.g. an ongoing drag. At most one widget is active per frame.
	Active bool

	// Rect is the screen region the widget actually occupies after
	// layout. Widgets paint relative to this, never to a recomputed
	// position.
	Rect math32.Rect
}

// Response is handed back to the caller after each widget call so
// application code can branch on the interaction without re-deriving it.
type Response struct {
	Interaction Interaction
}

func (r Response) Hovered() bool     { return r.Interaction.Hovered }
func (r Response) Clicked() bool     { return r.Interaction.Clicked }
func (r Response) Active() bool      { return r.Interaction.Active }
func (r Response) Rect() math32.Rect { return r.Interaction.Rect }
