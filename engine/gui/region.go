package gui

import (
	"fmt"

	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/math32"
)

// Direction is the axis along which a region advances its cursor.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Region tracks the cursor and remaining space of one layout scope and
// performs space reservation for widgets. Widget calls never overlap, so a
// region is mutated by exactly one caller at a time.
type Region struct {
	ctx *Context

	// id scopes derived child widget ids to this region.
	id ID

	dir            Direction
	cursor         math32.Vec2
	availableSpace math32.Vec2
}

func (r *Region) Direction() Direction            { return r.dir }
func (r *Region) Cursor() math32.Vec2             { return r.cursor }
func (r *Region) AvailableSpace() math32.Vec2     { return r.availableSpace }
func (r *Region) Width() float32                  { return r.availableSpace.X }
func (r *Region) Style() *Style                   { return r.ctx.style }
func (r *Region) Fonts() Fonts                    { return r.ctx.fonts }
func (r *Region) Input() FrameInput               { return r.ctx.input }
func (r *Region) MakeChildID(label string) ID     { return r.id.Child(label) }
func (r *Region) Response(i Interaction) Response { return Response{Interaction: i} }

// Add runs the widget's single consuming operation against this region.
func (r *Region) Add(w Widget) Response { return w.AddTo(r) }

// ReserveSpace claims a rect of the given size at the cursor, advances the
// cursor past it along the flow direction, and reports how the pointer
// interacted with it. The rect never exceeds the space available; the
// requested size is clamped first. Pass a nil id for widgets that never
// persist interaction across frames.
func (r *Region) ReserveSpace(size math32.Vec2, id *ID) (math32.Rect, Interaction) {
	rect := r.reserveSpaceInner(size)
	return rect, r.interact(rect, id)
}

// reserveSpaceInner claims space without hit-testing it. Used for text
// blocks that share a widget's identity with a later reservation.
func (r *Region) reserveSpaceInner(size math32.Vec2) math32.Rect {
	size = size.Min(r.availableSpace).Max(math32.Vec2{})
	rect := math32.RectFromMinSize(r.cursor, size)

	spacing := r.ctx.style.ItemSpacing
	if r.dir == Horizontal {
		advance := size.X + spacing.X
		r.cursor.X += advance
		r.availableSpace.X = math32.Max(0, r.availableSpace.X-advance)
	} else {
		advance := size.Y + spacing.Y
		r.cursor.Y += advance
		r.availableSpace.Y = math32.Max(0, r.availableSpace.Y-advance)
	}
	return rect
}

// interact resolves hover/click/active for the rect. The active slot is
// taken on click when idle and holds until the pointer is released; while
// held, no other id can become active.
func (r *Region) interact(rect math32.Rect, id *ID) Interaction {
	in := r.ctx.input
	mem := &r.ctx.memory

	hovered := in.PointerPos != nil && rect.Contains(*in.PointerPos)
	clicked := hovered && in.PointerClicked

	active := false
	if id != nil {
		if clicked {
			if _, held := mem.ActiveID(); !held {
				mem.setActive(*id)
			}
		}
		active = mem.isActive(*id)
	}

	return Interaction{
		Hovered: hovered,
		Clicked: clicked,
		Active:  active,
		Rect:    rect,
	}
}

// Columns splits the remaining width into n equal columns and hands them
// to fn. Afterwards the parent cursor is advanced past the tallest column
// in one step.
func (r *Region) Columns(n int, fn func(cols []*Region)) {
	assertUsage(n > 0, "Columns: n must be positive")
	if n <= 0 {
		return
	}

	spacing := r.ctx.style.ColumnSpacing
	colWidth := (r.availableSpace.X - spacing*float32(n-1)) / float32(n)
	colWidth = math32.Max(0, colWidth)

	cols := make([]*Region, n)
	for i := range cols {
		cols[i] = &Region{
			ctx:            r.ctx,
			id:             r.id.Child(fmt.Sprintf("column-%d", i)),
			dir:            Vertical,
			cursor:         math32.V2(r.cursor.X+float32(i)*(colWidth+spacing), r.cursor.Y),
			availableSpace: math32.V2(colWidth, r.availableSpace.Y),
		}
	}

	fn(cols)

	var maxUsed float32
	for _, col := range cols {
		maxUsed = math32.Max(maxUsed, col.cursor.Y-r.cursor.Y)
	}
	// The columns already include trailing item spacing in their cursors.
	r.cursor.Y += maxUsed
	r.availableSpace.Y = math32.Max(0, r.availableSpace.Y-maxUsed)
}

// addGraphic appends one paint command to the frame output.
func (r *Region) addGraphic(cmd PaintCmd) {
	r.ctx.output = append(r.ctx.output, cmd)
}

// addText emits one TextCmd per laid-out line, stacked by the style's line
// spacing, starting at the top-left corner pos.
func (r *Region) addText(pos math32.Vec2, style TextStyle, color colors.Color, lines []TextLine) {
	lineSpacing := r.ctx.fonts.LineSpacing(style)
	for i, line := range lines {
		r.addGraphic(TextCmd{
			Pos:      math32.V2(pos.X, pos.Y+float32(i)*lineSpacing),
			Text:     line.Text,
			Style:    style,
			Color:    color,
			XOffsets: line.XOffsets,
		})
	}
}
