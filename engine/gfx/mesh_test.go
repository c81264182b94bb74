package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/math32"
)

func TestMeshAppendRebasesIndices(t *testing.T) {
	tri := func(x float32) *Mesh {
		return &Mesh{
			Vertices: []Vertex{
				{Pos: math32.V2(x, 0), Color: colors.White},
				{Pos: math32.V2(x+1, 0), Color: colors.White},
				{Pos: math32.V2(x, 1), Color: colors.White},
			},
			Indices: []uint32{0, 1, 2},
		}
	}

	m := tri(0)
	m.Append(tri(10))

	assert.Len(t, m.Vertices, 6)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)
	assert.Equal(t, math32.V2(10, 0), m.Vertices[3].Pos)
}
