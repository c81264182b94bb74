package gui

import "github.com/hubastard/glim/engine/math32"

// Separator draws a line perpendicular to the flow direction through the
// center of its reserved strip. Stateless: no identity, no interaction.
type Separator struct {
	lineWidth float32
	spacing   float32
}

func NewSeparator() Separator {
	return Separator{lineWidth: 2, spacing: 6}
}

// LineWidth sets the stroke width of the painted line.
func (s Separator) LineWidth(w float32) Separator {
	s.lineWidth = w
	return s
}

// Spacing sets the thickness of the reserved strip along the flow
// direction.
func (s Separator) Spacing(spacing float32) Separator {
	s.spacing = spacing
	return s
}

func (s Separator) AddTo(r *Region) Response {
	avail := r.AvailableSpace()

	var rect math32.Rect
	var interact Interaction
	var points []math32.Vec2

	// The reserved strip spans the full cross axis; only the endpoints
	// differ between the two directions.
	switch r.Direction() {
	case Horizontal:
		rect, interact = r.ReserveSpace(math32.V2(s.spacing, avail.Y), nil)
		points = []math32.Vec2{
			math32.V2(rect.Center().X, rect.Min().Y),
			math32.V2(rect.Center().X, rect.Max().Y),
		}
	case Vertical:
		rect, interact = r.ReserveSpace(math32.V2(avail.X, s.spacing), nil)
		points = []math32.Vec2{
			math32.V2(rect.Min().X, rect.Center().Y),
			math32.V2(rect.Max().X, rect.Center().Y),
		}
	}

	r.addGraphic(LineCmd{
		Points: points,
		Color:  r.Style().SeparatorColor,
		Width:  s.lineWidth,
	})
	return r.Response(interact)
}
