// Package glpaint renders gui paint commands with OpenGL 3.3. It batches
// triangles per texture: shapes sample a 1x1 white texture, text samples
// the font atlas.
package glpaint

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/gfx"
	"github.com/hubastard/glim/engine/gui"
	"github.com/hubastard/glim/engine/math32"
	"github.com/hubastard/glim/engine/text"
)

// pos2 + uv2 + color4
const vStride = 8

const circleSegments = 32
const cornerSegments = 6

type Painter struct {
	fonts *text.Map

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	white    uint32
	atlases  map[*text.Font]uint32
	curTex   uint32
	viewport math32.Vec2

	verts []float32
	inds  []uint32
}

// New compiles the shader and uploads the white texture plus every font
// atlas. Requires a current GL context.
func New(fonts *text.Map) (*Painter, error) {
	p := &Painter{
		fonts:   fonts,
		atlases: make(map[*text.Font]uint32),
		verts:   make([]float32, 0, 4096*vStride),
		inds:    make([]uint32, 0, 8192),
	}

	var err error
	p.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	const stride = vStride * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)
	gl.BindVertexArray(0)

	p.white = makeTexture(1, 1, []byte{255, 255, 255, 255})

	for _, style := range []gui.TextStyle{gui.StyleBody, gui.StyleButton, gui.StyleHeading, gui.StyleMonospace} {
		f := fonts.Font(style)
		if _, ok := p.atlases[f]; !ok {
			p.atlases[f] = makeTexture(f.AtlasSize, f.AtlasSize, f.Atlas.Pix)
		}
	}

	return p, nil
}

func (p *Painter) Destroy() {
	gl.DeleteTextures(1, &p.white)
	for _, tex := range p.atlases {
		tex := tex
		gl.DeleteTextures(1, &tex)
	}
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteBuffers(1, &p.ebo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

// Paint draws one frame of commands. viewport is in points.
func (p *Painter) Paint(viewport math32.Vec2, cmds []gui.PaintCmd) {
	p.viewport = viewport
	p.curTex = p.white
	p.verts = p.verts[:0]
	p.inds = p.inds[:0]

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(p.program)
	gl.Uniform2f(gl.GetUniformLocation(p.program, gl.Str("uScreen\x00")), viewport.X, viewport.Y)

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case gui.RectCmd:
			p.paintRect(c)
		case gui.CircleCmd:
			p.paintCircle(c)
		case gui.LineCmd:
			p.addPolyline(c.Points, c.Color, c.Width, false)
		case gui.TextCmd:
			p.paintText(c)
		case gui.MeshCmd:
			p.paintMesh(c.Mesh)
		}
	}
	p.flush()

	gl.UseProgram(0)
}

func (p *Painter) paintRect(c gui.RectCmd) {
	path := roundedRectPath(c.Rect, c.CornerRadius)
	if c.Fill != nil {
		p.addConvexFill(path, *c.Fill)
	}
	if c.Outline != nil {
		p.addPolyline(path, c.Outline.Color, c.Outline.Width, true)
	}
}

func (p *Painter) paintCircle(c gui.CircleCmd) {
	path := make([]math32.Vec2, circleSegments)
	for i := range path {
		a := 2 * math32.Pi * float32(i) / circleSegments
		path[i] = math32.V2(c.Center.X+c.Radius*math32.Cos(a), c.Center.Y+c.Radius*math32.Sin(a))
	}
	if c.Fill != nil {
		p.addConvexFill(path, *c.Fill)
	}
	if c.Outline != nil {
		p.addPolyline(path, c.Outline.Color, c.Outline.Width, true)
	}
}

func (p *Painter) paintText(c gui.TextCmd) {
	f := p.fonts.Font(c.Style)
	p.setTexture(p.atlases[f])

	i := 0
	for _, r := range c.Text {
		g, ok := f.Glyphs[r]
		if !ok {
			g = f.Glyphs['?']
		}
		if g.W > 0 && g.H > 0 && i < len(c.XOffsets) {
			x := c.Pos.X + c.XOffsets[i] + g.BearingX
			y := c.Pos.Y + f.Ascent - g.BearingY
			p.addQuadUV(
				math32.RectFromMinSize(math32.V2(x, y), math32.V2(float32(g.W), float32(g.H))),
				g.U0, g.V0, g.U1, g.V1, c.Color,
			)
		}
		i++
	}
}

func (p *Painter) paintMesh(m *gfx.Mesh) {
	if m == nil || len(m.Indices) == 0 {
		return
	}
	p.setTexture(p.white)
	base := uint32(len(p.verts) / vStride)
	for _, v := range m.Vertices {
		p.pushVertex(v.Pos, v.UV.X, v.UV.Y, v.Color)
	}
	for _, idx := range m.Indices {
		p.inds = append(p.inds, base+idx)
	}
}

// roundedRectPath approximates the rect boundary clockwise, with radius
// clamped to half the shorter side.
func roundedRectPath(r math32.Rect, radius float32) []math32.Vec2 {
	radius = math32.Clamp(radius, 0, math32.Min(r.Width(), r.Height())/2)
	min, max := r.Min(), r.Max()
	if radius <= 0.5 {
		return []math32.Vec2{min, math32.V2(max.X, min.Y), max, math32.V2(min.X, max.Y)}
	}

	centers := []math32.Vec2{
		math32.V2(max.X-radius, min.Y+radius), // top right
		math32.V2(max.X-radius, max.Y-radius), // bottom right
		math32.V2(min.X+radius, max.Y-radius), // bottom left
		math32.V2(min.X+radius, min.Y+radius), // top left
	}
	var path []math32.Vec2
	for corner, center := range centers {
		start := -math32.Pi/2 + float32(corner)*math32.Pi/2
		for i := 0; i <= cornerSegments; i++ {
			a := start + math32.Pi/2*float32(i)/cornerSegments
			path = append(path, math32.V2(
				center.X+radius*math32.Cos(a),
				center.Y+radius*math32.Sin(a),
			))
		}
	}
	return path
}

// addConvexFill fans a convex path into triangles.
func (p *Painter) addConvexFill(path []math32.Vec2, color colors.Color) {
	if len(path) < 3 {
		return
	}
	p.setTexture(p.white)
	base := uint32(len(p.verts) / vStride)
	for _, pt := range path {
		p.pushVertex(pt, 0, 0, color)
	}
	for i := 2; i < len(path); i++ {
		p.inds = append(p.inds, base, base+uint32(i-1), base+uint32(i))
	}
}

// addPolyline strokes a path as one quad per segment. No joins; at gui
// line widths the overlap is invisible.
func (p *Painter) addPolyline(points []math32.Vec2, color colors.Color, width float32, closed bool) {
	if len(points) < 2 {
		return
	}
	p.setTexture(p.white)
	half := width / 2
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a := points[i]
		b := points[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math32.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}
		// unit normal
		nx, ny := -dy/length*half, dx/length*half

		base := uint32(len(p.verts) / vStride)
		p.pushVertex(math32.V2(a.X+nx, a.Y+ny), 0, 0, color)
		p.pushVertex(math32.V2(b.X+nx, b.Y+ny), 0, 0, color)
		p.pushVertex(math32.V2(b.X-nx, b.Y-ny), 0, 0, color)
		p.pushVertex(math32.V2(a.X-nx, a.Y-ny), 0, 0, color)
		p.inds = append(p.inds, base, base+1, base+2, base, base+2, base+3)
	}
}

func (p *Painter) addQuadUV(r math32.Rect, u0, v0, u1, v1 float32, color colors.Color) {
	min, max := r.Min(), r.Max()
	base := uint32(len(p.verts) / vStride)
	p.pushVertex(min, u0, v0, color)
	p.pushVertex(math32.V2(max.X, min.Y), u1, v0, color)
	p.pushVertex(max, u1, v1, color)
	p.pushVertex(math32.V2(min.X, max.Y), u0, v1, color)
	p.inds = append(p.inds, base, base+1, base+2, base, base+2, base+3)
}

func (p *Painter) pushVertex(pos math32.Vec2, u, v float32, color colors.Color) {
	p.verts = append(p.verts, pos.X, pos.Y, u, v, color[0], color[1], color[2], color[3])
}

// setTexture flushes the pending batch when the texture changes.
func (p *Painter) setTexture(tex uint32) {
	if tex == p.curTex {
		return
	}
	p.flush()
	p.curTex = tex
}

func (p *Painter) flush() {
	if len(p.inds) == 0 {
		return
	}

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.verts)*4, gl.Ptr(p.verts), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(p.inds)*4, gl.Ptr(p.inds), gl.STREAM_DRAW)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.curTex)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(p.inds)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	p.verts = p.verts[:0]
	p.inds = p.inds[:0]
}

func makeTexture(w, h int, pixels []byte) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return tex
}
