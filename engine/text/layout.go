package text

import (
	"strings"

	"github.com/hubastard/glim/engine/gui"
	"github.com/hubastard/glim/engine/math32"
)

// measurer is what the wrap algorithm needs from a font. Font satisfies
// it; tests substitute a fixed-advance fake.
type measurer interface {
	advance(r rune) float32
	kern(prev, r rune) float32
	LineSpacing() float32
}

// LayoutWrapped word-wraps text to maxWidth and returns one TextLine per
// visual line with per-rune x offsets, plus the size of the whole block.
// maxWidth <= 0 disables wrapping. A word wider than maxWidth gets a line
// of its own and overflows.
func (f *Font) LayoutWrapped(text string, maxWidth float32) ([]gui.TextLine, math32.Vec2) {
	return layoutWrapped(f, text, maxWidth)
}

func layoutWrapped(m measurer, text string, maxWidth float32) ([]gui.TextLine, math32.Vec2) {
	var lines []gui.TextLine
	var widest float32

	for _, para := range strings.Split(text, "\n") {
		for _, assembled := range wrapParagraph(m, para, maxWidth) {
			line, width := layoutLine(m, assembled)
			lines = append(lines, line)
			widest = math32.Max(widest, width)
		}
	}

	height := float32(len(lines)) * m.LineSpacing()
	return lines, math32.V2(widest, height)
}

// wrapParagraph splits one paragraph (no newlines) into line strings.
// Wrap decisions use per-word widths and ignore cross-word kerning.
func wrapParagraph(m measurer, para string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return []string{para}
	}
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	spaceWidth := m.advance(' ')

	var out []string
	current := words[0]
	currentWidth := measureWord(m, words[0])
	for _, word := range words[1:] {
		wordWidth := measureWord(m, word)
		if currentWidth+spaceWidth+wordWidth > maxWidth {
			out = append(out, current)
			current = word
			currentWidth = wordWidth
		} else {
			current += " " + word
			currentWidth += spaceWidth + wordWidth
		}
	}
	return append(out, current)
}

func measureWord(m measurer, word string) float32 {
	var w float32
	prev := rune(-1)
	for _, r := range word {
		if prev >= 0 {
			w += m.kern(prev, r)
		}
		w += m.advance(r)
		prev = r
	}
	return w
}

// layoutLine computes the x offset of every rune in s. Kerning moves the
// rune it precedes. len(XOffsets) always equals the rune count of s.
func layoutLine(m measurer, s string) (gui.TextLine, float32) {
	offsets := make([]float32, 0, len(s))
	var x float32
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			x += m.kern(prev, r)
		}
		offsets = append(offsets, x)
		x += m.advance(r)
		prev = r
	}
	return gui.TextLine{Text: s, XOffsets: offsets}, x
}
