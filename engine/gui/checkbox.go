package gui

import "github.com/hubastard/glim/engine/math32"

// Checkbox is a toggle bound to a caller-owned bool. The bool is borrowed
// for this single call only and is flipped before the chrome is painted,
// so the check mark shows this frame's value.
type Checkbox struct {
	checked *bool
	text    string
}

func NewCheckbox(checked *bool, text string) Checkbox {
	return Checkbox{checked: checked, text: text}
}

func (c Checkbox) AddTo(r *Region) Response {
	style := r.Style()
	id := r.MakeChildID(c.text)

	pad := style.ButtonPadding
	iconW := style.StartIconWidth
	lines, textSize := r.Fonts().LayoutWrapped(StyleButton, c.text, r.Width()-2*pad.X-iconW)
	size := textSize.Add(pad.MulScalar(2)).Add(math32.V2(iconW, 0))
	rect, interact := r.ReserveSpace(size, &id)

	if interact.Clicked {
		*c.checked = !*c.checked
	}

	paintCheckIcon(r, rect, interact, *c.checked)
	r.addText(rect.Min().Add(pad).Add(math32.V2(iconW, 0)), StyleButton, style.TextColor, lines)

	return r.Response(interact)
}

// paintCheckIcon draws the box in front of the text and, when checked, the
// mark inside it. Shared by Checkbox only; the radio icon is round.
func paintCheckIcon(r *Region, rect math32.Rect, interact Interaction, checked bool) {
	style := r.Style()
	box := iconRect(style, rect)

	fill := style.interactFill(interact)
	r.addGraphic(RectCmd{
		Rect:         box,
		CornerRadius: style.CornerRadius / 2,
		Fill:         &fill,
		Outline:      style.interactOutline(interact),
	})
	if checked {
		min, max := box.Min(), box.Max()
		r.addGraphic(LineCmd{
			Points: []math32.Vec2{
				math32.V2(min.X+box.Width()*0.2, min.Y+box.Height()*0.55),
				math32.V2(min.X+box.Width()*0.4, max.Y-box.Height()*0.2),
				math32.V2(max.X-box.Width()*0.2, min.Y+box.Height()*0.25),
			},
			Color: style.TextColor,
			Width: 2,
		})
	}
}

// iconRect is the square icon area at the start of a checkbox or radio
// rect, centered on the first text line.
func iconRect(style *Style, rect math32.Rect) math32.Rect {
	side := math32.Min(style.StartIconWidth*0.75, rect.Height()-2*style.ButtonPadding.Y)
	side = math32.Max(side, 0)
	min := rect.Min()
	return math32.RectFromMinSize(
		math32.V2(min.X+style.ButtonPadding.X, min.Y+style.ButtonPadding.Y),
		math32.V2(side, side),
	)
}
