package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjection_CenterMapsToFocus(t *testing.T) {
	p := Projection{Width: 80, Height: 24, Focus: mgl32.Vec3{5, 0, -3}}

	col, row := p.ToCell(mgl32.Vec3{5, 0, -3})
	assert.Equal(t, 40, col)
	assert.Equal(t, 12, row)
	assert.Equal(t, mgl32.Vec3{5, 0, -3}, p.ToWorld(40, 12))
}

func TestProjection_RoundTrip(t *testing.T) {
	p := Projection{Width: 80, Height: 24}

	tests := []struct {
		col, row int
		want     mgl32.Vec3
	}{
		{44, 14, mgl32.Vec3{1, 0, 1}},
		{36, 10, mgl32.Vec3{-1, 0, -1}},
		{42, 12, mgl32.Vec3{0.5, 0, 0}},
	}

	for _, tt := range tests {
		got := p.ToWorld(tt.col, tt.row)
		assert.Equal(t, tt.want, got)

		col, row := p.ToCell(got)
		assert.Equal(t, tt.col, col)
		assert.Equal(t, tt.row, row)
	}
}

func TestProjection_InBounds(t *testing.T) {
	p := Projection{Width: 10, Height: 5}
	assert.True(t, p.InBounds(0, 0))
	assert.True(t, p.InBounds(9, 4))
	assert.False(t, p.InBounds(10, 0))
	assert.False(t, p.InBounds(0, -1))
}
