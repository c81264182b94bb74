package text

import (
	"fmt"

	"github.com/hubastard/glim/engine/gui"
	"github.com/hubastard/glim/engine/math32"
)

// Map binds gui text styles to fonts and implements gui.Fonts. Styles
// without an explicit font fall back to the body font.
type Map struct {
	body   *Font
	styled map[gui.TextStyle]*Font
}

// NewMap creates a map with body as the fallback font for every style.
func NewMap(body *Font) *Map {
	return &Map{body: body, styled: make(map[gui.TextStyle]*Font)}
}

// Set assigns a dedicated font to one style.
func (m *Map) Set(style gui.TextStyle, f *Font) {
	m.styled[style] = f
}

// Font returns the font serving the style.
func (m *Map) Font(style gui.TextStyle) *Font {
	if f, ok := m.styled[style]; ok {
		return f
	}
	return m.body
}

func (m *Map) LayoutWrapped(style gui.TextStyle, text string, maxWidth float32) ([]gui.TextLine, math32.Vec2) {
	return m.Font(style).LayoutWrapped(text, maxWidth)
}

func (m *Map) LineSpacing(style gui.TextStyle) float32 {
	return m.Font(style).LineSpacing()
}

// LoadMap loads one TTF at two sizes: body/button at sizePx and headings
// a third larger.
func LoadMap(path string, sizePx float32) (*Map, error) {
	body, err := LoadTTF(path, sizePx)
	if err != nil {
		return nil, fmt.Errorf("load body font: %w", err)
	}
	heading, err := LoadTTF(path, sizePx*4/3)
	if err != nil {
		return nil, fmt.Errorf("load heading font: %w", err)
	}
	m := NewMap(body)
	m.Set(gui.StyleHeading, heading)
	return m, nil
}
