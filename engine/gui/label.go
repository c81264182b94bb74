package gui

// Label is a block of wrapped text with no identity and no interaction.
type Label struct {
	text  string
	style TextStyle
}

func NewLabel(text string) Label {
	return Label{text: text, style: StyleBody}
}

// TextStyle overrides the default body style.
func (l Label) TextStyle(style TextStyle) Label {
	l.style = style
	return l
}

func (l Label) AddTo(r *Region) Response {
	lines, size := r.Fonts().LayoutWrapped(l.style, l.text, r.Width())
	rect, interact := r.ReserveSpace(size, nil)
	r.addText(rect.Min(), l.style, r.Style().TextColor, lines)
	return r.Response(interact)
}
