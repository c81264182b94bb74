// Package platform owns the GLFW window and produces the raw per-frame
// input samples the gui consumes.
package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/glim/engine/gui"
	"github.com/hubastard/glim/engine/math32"
)

// Window wraps a GLFW window with a current GL 3.3 core context.
type Window struct {
	w *glfw.Window
}

// NewWindow must be called on the main OS thread before any GL calls.
func NewWindow(title string, width, height int, vsync bool) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires the forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{w: win}, nil
}

// Sample polls the pointer and window state into a gui.RawSample. Call
// once per frame after PollEvents.
func (w *Window) Sample() gui.RawSample {
	width, height := w.w.GetSize()
	viewport := math32.V2(float32(width), float32(height))

	scaleX, _ := w.w.GetContentScale()

	var pos *math32.Vec2
	cx, cy := w.w.GetCursorPos()
	p := math32.V2(float32(cx), float32(cy))
	if p.X >= 0 && p.Y >= 0 && p.X <= viewport.X && p.Y <= viewport.Y {
		pos = &p
	}

	return gui.RawSample{
		PointerDown:    w.w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		PointerPos:     pos,
		ViewportSize:   viewport,
		PixelsPerPoint: scaleX,
	}
}

func (w *Window) PollEvents()                 { glfw.PollEvents() }
func (w *Window) SwapBuffers()                { w.w.SwapBuffers() }
func (w *Window) ShouldClose() bool           { return w.w.ShouldClose() }
func (w *Window) SetTitle(t string)           { w.w.SetTitle(t) }
func (w *Window) FramebufferSize() (int, int) { return w.w.GetFramebufferSize() }

// Destroy tears the window and GLFW down.
func (w *Window) Destroy() {
	w.w.Destroy()
	glfw.Terminate()
}
