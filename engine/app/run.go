// Package app wires the platform window, font engine, gui context and GL
// painter into a ready-made frame loop for hosts that don't need their
// own.
package app

import (
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/gfx/glpaint"
	"github.com/hubastard/glim/engine/gui"
	"github.com/hubastard/glim/engine/platform"
	"github.com/hubastard/glim/engine/text"
)

type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color

	// FontPath is the TTF file backing every text style.
	FontPath string
	FontSize float32

	// Style overrides the gui defaults when set.
	Style *gui.Style
}

// Run opens the window and drives the immediate-mode loop: every frame it
// samples input, begins a gui frame, calls build to declare the whole UI,
// and paints the emitted commands. It blocks until the window closes and
// must be called from the main goroutine.
func Run(cfg Config, build func(r *gui.Region)) error {
	win, err := platform.NewWindow(cfg.Title, cfg.Width, cfg.Height, cfg.VSync)
	if err != nil {
		return err
	}
	defer win.Destroy()

	fonts, err := text.LoadMap(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return err
	}
	defer fonts.Font(gui.StyleBody).Close()
	defer fonts.Font(gui.StyleHeading).Close()

	painter, err := glpaint.New(fonts)
	if err != nil {
		return err
	}
	defer painter.Destroy()

	ctx := gui.NewContext(fonts, cfg.Style)
	clear := cfg.ClearColor

	for !win.ShouldClose() {
		win.PollEvents()

		sample := win.Sample()
		region := ctx.BeginFrame(sample)
		build(region)
		cmds := ctx.EndFrame()

		fbW, fbH := win.FramebufferSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		painter.Paint(sample.ViewportSize, cmds)

		win.SwapBuffers()
	}

	log.Println("window closed")
	return nil
}
