package gui

import "github.com/hubastard/glim/engine/math32"

// Context owns everything that outlives a single frame: the active-widget
// memory, the style, the font engine, and the previous frame's raw input
// sample. One Context per window; all calls are single-threaded.
type Context struct {
	fonts  Fonts
	style  *Style
	memory Memory

	prevSample RawSample
	input      FrameInput

	// output is append-only within a frame and reused across frames.
	output []PaintCmd
}

func NewContext(fonts Fonts, style *Style) *Context {
	if style == nil {
		style = DefaultStyle()
	}
	return &Context{
		fonts:  fonts,
		style:  style,
		output: make([]PaintCmd, 0, 256),
	}
}

func (c *Context) Style() *Style     { return c.style }
func (c *Context) Fonts() Fonts      { return c.fonts }
func (c *Context) Input() FrameInput { return c.input }
func (c *Context) Memory() *Memory   { return &c.memory }

// BeginFrame diffs raw against the previous frame's sample, releases the
// active slot if the pointer is up, resets the paint output, and returns
// the root region covering the viewport. The first frame diffs against a
// zero sample, so it can never report a click.
func (c *Context) BeginFrame(raw RawSample) *Region {
	c.input = DeriveFrameInput(c.prevSample, raw)
	c.prevSample = raw

	if !c.input.PointerDown {
		c.memory.clearActive()
	}

	c.output = c.output[:0]

	pad := c.style.WindowPadding
	return &Region{
		ctx:            c,
		id:             MakeID("root"),
		dir:            Vertical,
		cursor:         pad,
		availableSpace: c.input.ViewportSize.Sub(pad.MulScalar(2)).Max(math32.Vec2{}),
	}
}

// EndFrame returns the frame's paint commands in emission order. The slice
// is owned by the Context and valid until the next BeginFrame.
func (c *Context) EndFrame() []PaintCmd {
	return c.output
}
