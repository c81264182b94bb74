package math32

// Rect is an axis-aligned rectangle stored as top-left position plus size.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// RectFromMinMax returns the rectangle spanning min to max.
func RectFromMinMax(min, max Vec2) Rect {
	return Rect{Pos: min, Size: max.Sub(min)}
}

// RectFromMinSize returns the rectangle at min with the given size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Pos: min, Size: size}
}

func (r Rect) Min() Vec2 { return r.Pos }
func (r Rect) Max() Vec2 { return r.Pos.Add(r.Size) }

func (r Rect) Center() Vec2 {
	return Vec2{r.Pos.X + r.Size.X/2, r.Pos.Y + r.Size.Y/2}
}

func (r Rect) Width() float32  { return r.Size.X }
func (r Rect) Height() float32 { return r.Size.Y }

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Y
}

// Expand grows the rectangle by d on all four sides.
func (r Rect) Expand(d float32) Rect {
	return Rect{
		Pos:  Vec2{r.Pos.X - d, r.Pos.Y - d},
		Size: Vec2{r.Size.X + 2*d, r.Size.Y + 2*d},
	}
}
