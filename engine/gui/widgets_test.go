package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonClick(t *testing.T) {
	ctx := newTestContext()

	// frame A: pointer up, nowhere
	r := beginFrame(ctx, false, nil)
	resp := r.Add(NewButton("OK"))
	assert.False(t, resp.Clicked())
	rect := resp.Rect()
	require.True(t, rect.Contains(*vp(10, 10)))

	// frame B: pointer pressed at (10,10) over the button
	r = beginFrame(ctx, true, vp(10, 10))
	resp = r.Add(NewButton("OK"))
	assert.True(t, resp.Interaction.Clicked)
	assert.True(t, resp.Clicked())
	assert.True(t, resp.Hovered())
}

func TestButtonChromeFollowsInteraction(t *testing.T) {
	ctx := newTestContext()

	r := beginFrame(ctx, false, nil)
	r.Add(NewButton("OK"))
	// the output slice is reused next frame, so copy what we compare
	idle, ok := ctx.EndFrame()[0].(RectCmd)
	require.True(t, ok)
	assert.Nil(t, idle.Outline)

	r = beginFrame(ctx, false, vp(5, 5))
	r.Add(NewButton("OK"))
	hovered, ok := ctx.EndFrame()[0].(RectCmd)
	require.True(t, ok)
	assert.NotNil(t, hovered.Outline)
	assert.NotEqual(t, *idle.Fill, *hovered.Fill)
}

func TestTextOffsetsMatchRuneCount(t *testing.T) {
	ctx := newTestContext()
	r := beginFrame(ctx, false, nil)

	r.Add(NewLabel("hello wörld, wrapped over several lines of text"))
	r.Add(NewButton("Press me"))
	var checked bool
	r.Add(NewCheckbox(&checked, "tick"))
	r.Add(NewRadioButton(true, "radio"))

	cmds := textCmds(ctx.EndFrame())
	require.NotEmpty(t, cmds)
	for _, tc := range cmds {
		assert.Equal(t, len([]rune(tc.Text)), len(tc.XOffsets), "text %q", tc.Text)
	}
}

func TestLabelReservesBlockSize(t *testing.T) {
	ctx := newTestContext()
	r := beginFrame(ctx, false, nil)

	// 150 runes at 8px wrap inside 800px into two lines
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'a'
	}
	resp := r.Add(NewLabel(string(long)))

	assert.Equal(t, float32(32), resp.Rect().Height())
	assert.Equal(t, 2, len(textCmds(ctx.EndFrame())))
}

func TestCheckboxTogglesOncePerClick(t *testing.T) {
	ctx := newTestContext()
	checked := false

	// pressed over the checkbox: flips
	r := beginFrame(ctx, true, vp(10, 10))
	resp := r.Add(NewCheckbox(&checked, "tick"))
	require.True(t, resp.Clicked())
	assert.True(t, checked)

	// still held, no new click event: unchanged
	r = beginFrame(ctx, true, vp(10, 10))
	resp = r.Add(NewCheckbox(&checked, "tick"))
	assert.False(t, resp.Clicked())
	assert.True(t, checked)
}

func TestCheckboxPaintsPostMutationValue(t *testing.T) {
	ctx := newTestContext()
	checked := false

	r := beginFrame(ctx, true, vp(10, 10))
	r.Add(NewCheckbox(&checked, "tick"))
	require.True(t, checked)

	// the check mark line is present on the same frame as the flip
	assert.NotEmpty(t, lineCmds(ctx.EndFrame()))
}

func TestRadioButtonNeverMutates(t *testing.T) {
	ctx := newTestContext()

	r := beginFrame(ctx, true, vp(10, 10))
	resp := r.Add(NewRadioButton(false, "choice"))
	assert.True(t, resp.Clicked())

	// chrome reflects the caller-supplied flag: no inner dot when false
	var circles int
	for _, c := range ctx.EndFrame() {
		if _, ok := c.(CircleCmd); ok {
			circles++
		}
	}
	assert.Equal(t, 1, circles)
}

func TestSeparatorOrientation(t *testing.T) {
	ctx := newTestContext()

	r := beginFrame(ctx, false, nil)
	r.Add(NewSeparator())
	vertFlow := lineCmds(ctx.EndFrame())
	require.Len(t, vertFlow, 1)
	require.Len(t, vertFlow[0].Points, 2)
	assert.Equal(t, vertFlow[0].Points[0].Y, vertFlow[0].Points[1].Y)

	r = beginFrame(ctx, false, nil)
	r.dir = Horizontal
	r.Add(NewSeparator())
	horizFlow := lineCmds(ctx.EndFrame())
	require.Len(t, horizFlow, 1)
	assert.Equal(t, horizFlow[0].Points[0].X, horizFlow[0].Points[1].X)
}

func TestSeparatorConfig(t *testing.T) {
	ctx := newTestContext()
	r := beginFrame(ctx, false, nil)

	resp := r.Add(NewSeparator().Spacing(12).LineWidth(1))
	assert.Equal(t, float32(12), resp.Rect().Height())
	assert.Equal(t, float32(800), resp.Rect().Width())

	lines := lineCmds(ctx.EndFrame())
	require.Len(t, lines, 1)
	assert.Equal(t, float32(1), lines[0].Width)
	// centered in the reserved strip
	assert.Equal(t, float32(6), lines[0].Points[0].Y)
}

func TestEmptyFillAndOutlineIsLegal(t *testing.T) {
	ctx := newTestContext()
	r := beginFrame(ctx, false, nil)
	rect, _ := r.ReserveSpace(*vp(40, 20), nil)
	r.addGraphic(RectCmd{Rect: rect})
	assert.Len(t, ctx.EndFrame(), 1)
}
