package colors

// Color is RGBA with each channel in [0, 1].
type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	LightGray = Color{0.8, 0.8, 0.8, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
)

// Grayf returns an opaque gray with the given brightness.
func Grayf(v float32) Color { return Color{v, v, v, 1} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scaled multiplies the RGB channels by s, leaving alpha untouched.
// Useful for hover/press shading of chrome colors.
func (c Color) Scaled(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s, c[3]}
}
