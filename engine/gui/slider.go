package gui

import (
	"fmt"

	"github.com/hubastard/glim/engine/math32"
)

// Slider drags a caller-owned float32 across [min, max]. The float is
// borrowed for this single call only. With a label set it composes a text
// block (or a second column) with the bare slider; the bare slider carries
// the label-derived id either way, so a drag survives switching between
// the two variants.
type Slider struct {
	value *float32
	min   float32
	max   float32

	id        *ID
	text      string
	textOnTop bool
}

func NewSlider(value *float32, min, max float32) Slider {
	return Slider{value: value, min: min, max: max}
}

// ID sets an explicit identity, needed when two sliders would otherwise
// derive the same one.
func (s Slider) ID(id ID) Slider {
	s.id = &id
	return s
}

// Text attaches a label, shown with the current value.
func (s Slider) Text(text string) Slider {
	s.text = text
	return s
}

// TextOnTop stacks the label above the slider instead of beside it.
func (s Slider) TextOnTop(onTop bool) Slider {
	s.textOnTop = onTop
	return s
}

func (s Slider) AddTo(r *Region) Response {
	if s.text != "" {
		return s.addLabeled(r)
	}
	return s.addBare(r)
}

func (s Slider) addLabeled(r *Region) Response {
	full := fmt.Sprintf("%s: %.3f", s.text, *s.value)

	naked := s
	if naked.id == nil {
		id := MakeID(s.text)
		naked.id = &id
	}
	naked.text = ""

	if s.textOnTop {
		lines, size := r.Fonts().LayoutWrapped(StyleButton, full, r.Width())
		rect := r.reserveSpaceInner(size)
		r.addText(rect.Min(), StyleButton, r.Style().TextColor, lines)
		return naked.AddTo(r)
	}

	var resp Response
	r.Columns(2, func(cols []*Region) {
		cols[1].Add(NewLabel(full).TextStyle(StyleButton))
		resp = naked.AddTo(cols[0])
	})
	return resp
}

func (s Slider) addBare(r *Region) Response {
	assertUsage(s.min <= s.max, "slider: min must not exceed max")

	id := s.id
	if id == nil {
		derived := r.MakeChildID("slider")
		id = &derived
	}

	height := r.Fonts().LineSpacing(StyleButton)
	rect, interact := r.ReserveSpace(math32.V2(r.AvailableSpace().X, height), id)

	// Zero-width rects happen during degenerate layouts; skipping the
	// remap keeps the value NaN-free and unchanged for the frame.
	if interact.Active && r.Input().PointerPos != nil {
		x0, x1 := rect.Min().X, rect.Max().X
		if x0 < x1 {
			*s.value = math32.RemapClamp(r.Input().PointerPos.X, x0, x1, s.min, s.max)
		}
	}

	s.paintChrome(r, rect, interact)
	return r.Response(interact)
}

// paintChrome draws the groove and the handle placed by the post-mutation
// value.
func (s Slider) paintChrome(r *Region, rect math32.Rect, interact Interaction) {
	style := r.Style()
	handleRadius := rect.Height() / 3
	centerY := rect.Center().Y
	x0 := rect.Min().X + handleRadius
	x1 := rect.Max().X - handleRadius

	r.addGraphic(LineCmd{
		Points: []math32.Vec2{math32.V2(x0, centerY), math32.V2(x1, centerY)},
		Color:  style.GrooveColor,
		Width:  rect.Height() / 4,
	})

	handleX := x0
	if s.min < s.max && x0 < x1 {
		handleX = math32.RemapClamp(*s.value, s.min, s.max, x0, x1)
	}
	fill := style.HandleColor
	if interact.Active {
		fill = fill.Scaled(0.85)
	} else if interact.Hovered {
		fill = fill.Scaled(1.1)
	}
	r.addGraphic(CircleCmd{
		Center:  math32.V2(handleX, centerY),
		Radius:  handleRadius,
		Fill:    &fill,
		Outline: style.interactOutline(interact),
	})
}
