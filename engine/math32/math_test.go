package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(0.5, 1, 2))
	assert.Equal(t, float32(2), Clamp(3, 1, 2))
	assert.Equal(t, float32(1.5), Clamp(1.5, 1, 2))
}

func TestRemapClamp(t *testing.T) {
	// endpoints map exactly
	assert.Equal(t, float32(0), RemapClamp(100, 100, 300, 0, 100))
	assert.Equal(t, float32(100), RemapClamp(300, 100, 300, 0, 100))
	// midpoint
	assert.Equal(t, float32(50), RemapClamp(200, 100, 300, 0, 100))
	// outside the source interval clamps
	assert.Equal(t, float32(0), RemapClamp(-50, 100, 300, 0, 100))
	assert.Equal(t, float32(100), RemapClamp(1e6, 100, 300, 0, 100))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(0), Lerp(0, 10, 0))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
}

func TestVec2(t *testing.T) {
	assert.Equal(t, Vec2{3, 5}, V2(1, 2).Add(V2(2, 3)))
	assert.Equal(t, Vec2{1, 2}, V2(3, 5).Sub(V2(2, 3)))
	assert.Equal(t, Vec2{2, 4}, V2(1, 2).MulScalar(2))
	assert.Equal(t, Vec2{3, 4}, V2(3, 2).Max(V2(1, 4)))
	assert.Equal(t, Vec2{1, 2}, V2(3, 2).Min(V2(1, 4)))
}

func TestRect(t *testing.T) {
	r := RectFromMinMax(V2(10, 20), V2(30, 60))
	assert.Equal(t, V2(10, 20), r.Min())
	assert.Equal(t, V2(30, 60), r.Max())
	assert.Equal(t, V2(20, 40), r.Center())
	assert.Equal(t, float32(20), r.Width())
	assert.Equal(t, float32(40), r.Height())

	assert.True(t, r.Contains(V2(10, 20)))
	assert.True(t, r.Contains(V2(30, 60)))
	assert.True(t, r.Contains(V2(15, 30)))
	assert.False(t, r.Contains(V2(9, 30)))
	assert.False(t, r.Contains(V2(15, 61)))

	e := r.Expand(5)
	assert.Equal(t, V2(5, 15), e.Min())
	assert.Equal(t, V2(35, 65), e.Max())
}
