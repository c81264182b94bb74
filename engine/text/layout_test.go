package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFont measures every rune at 10px with no kerning, except the pair
// "AV" which kerns by -2.
type fixedFont struct{}

func (fixedFont) advance(rune) float32 { return 10 }
func (fixedFont) kern(prev, r rune) float32 {
	if prev == 'A' && r == 'V' {
		return -2
	}
	return 0
}
func (fixedFont) LineSpacing() float32 { return 20 }

func TestLayoutLineOffsets(t *testing.T) {
	line, width := layoutLine(fixedFont{}, "abc")
	assert.Equal(t, "abc", line.Text)
	assert.Equal(t, []float32{0, 10, 20}, line.XOffsets)
	assert.Equal(t, float32(30), width)
}

func TestLayoutLineKerning(t *testing.T) {
	line, width := layoutLine(fixedFont{}, "AVA")
	// V is pulled 2px toward the A before it
	assert.Equal(t, []float32{0, 8, 18}, line.XOffsets)
	assert.Equal(t, float32(28), width)
}

func TestLayoutWrappedBreaksAtWords(t *testing.T) {
	// each word is 30px, space is 10px: two words fit in 70px
	lines, size := layoutWrapped(fixedFont{}, "abc def ghi", 70)
	require.Len(t, lines, 2)
	assert.Equal(t, "abc def", lines[0].Text)
	assert.Equal(t, "ghi", lines[1].Text)
	assert.Equal(t, float32(70), size.X)
	assert.Equal(t, float32(40), size.Y)
}

func TestLayoutWrappedNoWrapWhenDisabled(t *testing.T) {
	lines, size := layoutWrapped(fixedFont{}, "abc def ghi", 0)
	require.Len(t, lines, 1)
	assert.Equal(t, "abc def ghi", lines[0].Text)
	assert.Equal(t, float32(110), size.X)
}

func TestLayoutWrappedKeepsParagraphs(t *testing.T) {
	lines, _ := layoutWrapped(fixedFont{}, "ab\n\ncd", 0)
	require.Len(t, lines, 3)
	assert.Equal(t, "ab", lines[0].Text)
	assert.Equal(t, "", lines[1].Text)
	assert.Empty(t, lines[1].XOffsets)
	assert.Equal(t, "cd", lines[2].Text)
}

func TestOffsetsMatchRuneCount(t *testing.T) {
	lines, _ := layoutWrapped(fixedFont{}, "päragraph with ümlauts", 80)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, len([]rune(line.Text)), len(line.XOffsets))
	}
}

func TestLongWordOverflowsAlone(t *testing.T) {
	lines, _ := layoutWrapped(fixedFont{}, "ab abcdefghij cd", 50)
	require.Len(t, lines, 3)
	assert.Equal(t, "abcdefghij", lines[1].Text)
}
