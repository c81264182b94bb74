package gui

// Button is clickable text on a padded chrome rect. It mutates nothing;
// the caller branches on Clicked from the returned Response.
type Button struct {
	text string
}

func NewButton(text string) Button {
	return Button{text: text}
}

func (b Button) AddTo(r *Region) Response {
	style := r.Style()
	id := r.MakeChildID(b.text)

	pad := style.ButtonPadding
	lines, textSize := r.Fonts().LayoutWrapped(StyleButton, b.text, r.Width()-2*pad.X)
	rect, interact := r.ReserveSpace(textSize.Add(pad.MulScalar(2)), &id)

	fill := style.interactFill(interact)
	r.addGraphic(RectCmd{
		Rect:         rect,
		CornerRadius: style.CornerRadius,
		Fill:         &fill,
		Outline:      style.interactOutline(interact),
	})
	r.addText(rect.Min().Add(pad), StyleButton, style.TextColor, lines)

	return r.Response(interact)
}
