package gui

import (
	"strings"

	"github.com/hubastard/glim/engine/math32"
)

// fakeFonts is a fixed-advance font engine so widget tests need no font
// file: every rune is advanceX wide, every line spacingY tall.
type fakeFonts struct {
	advanceX float32
	spacingY float32
}

func newFakeFonts() *fakeFonts {
	return &fakeFonts{advanceX: 8, spacingY: 16}
}

func (f *fakeFonts) LineSpacing(TextStyle) float32 { return f.spacingY }

func (f *fakeFonts) LayoutWrapped(_ TextStyle, text string, maxWidth float32) ([]TextLine, math32.Vec2) {
	maxRunes := 0
	if maxWidth > 0 {
		maxRunes = int(maxWidth / f.advanceX)
	}

	var lines []TextLine
	var widest float32
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(para)
		for {
			n := len(runes)
			if maxRunes > 0 && n > maxRunes {
				n = maxRunes
			}
			offsets := make([]float32, n)
			for i := range offsets {
				offsets[i] = float32(i) * f.advanceX
			}
			lines = append(lines, TextLine{Text: string(runes[:n]), XOffsets: offsets})
			widest = math32.Max(widest, float32(n)*f.advanceX)
			if n == len(runes) {
				break
			}
			runes = runes[n:]
		}
	}
	return lines, math32.V2(widest, float32(len(lines))*f.spacingY)
}

// testStyle is DefaultStyle with the paddings and spacing zeroed so test
// rects land at predictable coordinates.
func testStyle() *Style {
	s := DefaultStyle()
	s.WindowPadding = math32.Vec2{}
	s.ItemSpacing = math32.Vec2{}
	return s
}

func newTestContext() *Context {
	return NewContext(newFakeFonts(), testStyle())
}

// beginFrame starts a frame with the pointer in the given state over an
// 800x600 viewport.
func beginFrame(ctx *Context, down bool, pos *math32.Vec2) *Region {
	return ctx.BeginFrame(RawSample{
		PointerDown:    down,
		PointerPos:     pos,
		ViewportSize:   math32.V2(800, 600),
		PixelsPerPoint: 1,
	})
}

func vp(x, y float32) *math32.Vec2 {
	v := math32.V2(x, y)
	return &v
}

// textCmds filters the frame output down to its TextCmds.
func textCmds(cmds []PaintCmd) []TextCmd {
	var out []TextCmd
	for _, c := range cmds {
		if tc, ok := c.(TextCmd); ok {
			out = append(out, tc)
		}
	}
	return out
}

func lineCmds(cmds []PaintCmd) []LineCmd {
	var out []LineCmd
	for _, c := range cmds {
		if lc, ok := c.(LineCmd); ok {
			out = append(out, lc)
		}
	}
	return out
}
