package gui

import "github.com/hubastard/glim/engine/math32"

// RadioButton shows a caller-supplied checked flag. It never mutates
// anything: group exclusivity is the caller's logic, driven by Clicked on
// the returned Response.
type RadioButton struct {
	checked bool
	text    string
}

func NewRadioButton(checked bool, text string) RadioButton {
	return RadioButton{checked: checked, text: text}
}

func (rb RadioButton) AddTo(r *Region) Response {
	style := r.Style()
	id := r.MakeChildID(rb.text)

	pad := style.ButtonPadding
	iconW := style.StartIconWidth
	lines, textSize := r.Fonts().LayoutWrapped(StyleButton, rb.text, r.Width()-2*pad.X-iconW)
	size := textSize.Add(pad.MulScalar(2)).Add(math32.V2(iconW, 0))
	rect, interact := r.ReserveSpace(size, &id)

	icon := iconRect(style, rect)
	center := icon.Center()
	radius := icon.Width() / 2

	fill := style.interactFill(interact)
	r.addGraphic(CircleCmd{
		Center:  center,
		Radius:  radius,
		Fill:    &fill,
		Outline: style.interactOutline(interact),
	})
	if rb.checked {
		dot := style.TextColor
		r.addGraphic(CircleCmd{
			Center: center,
			Radius: radius / 2,
			Fill:   &dot,
		})
	}
	r.addText(rect.Min().Add(pad).Add(math32.V2(iconW, 0)), StyleButton, style.TextColor, lines)

	return r.Response(interact)
}
