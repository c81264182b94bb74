// Package gfx holds the GPU-facing geometry types shared between the gui
// core and its renderers.
package gfx

import (
	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/math32"
)

// Vertex is one corner of a textured, colored triangle.
type Vertex struct {
	Pos   math32.Vec2
	UV    math32.Vec2
	Color colors.Color
}

// Mesh is an indexed triangle list. The gui treats meshes as opaque: they
// are produced by an external tessellator or by hand and painted verbatim.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Append adds the other mesh, rebasing its indices.
func (m *Mesh) Append(o *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, o.Vertices...)
	for _, idx := range o.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}
