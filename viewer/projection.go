package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/arpg/parameter"
)

// Projection is an orthographic top-down mapping between world x/z and terminal cells
// +x grows to the right, +z grows downward; Focus sits at the screen centre
type Projection struct {
	Width  int
	Height int
	Focus  mgl32.Vec3
}

// ToCell returns the cell under a world position
func (p Projection) ToCell(pos mgl32.Vec3) (col, row int) {
	col = p.Width/2 + int(math.Round(float64((pos.X()-p.Focus.X())*parameter.ViewCellsPerUnitX)))
	row = p.Height/2 + int(math.Round(float64((pos.Z()-p.Focus.Z())*parameter.ViewCellsPerUnitZ)))
	return col, row
}

// ToWorld returns the ground point under a cell
func (p Projection) ToWorld(col, row int) mgl32.Vec3 {
	x := p.Focus.X() + float32(col-p.Width/2)/parameter.ViewCellsPerUnitX
	z := p.Focus.Z() + float32(row-p.Height/2)/parameter.ViewCellsPerUnitZ
	return mgl32.Vec3{x, parameter.GroundY, z}
}

// InBounds reports whether the cell is on screen
func (p Projection) InBounds(col, row int) bool {
	return col >= 0 && col < p.Width && row >= 0 && row < p.Height
}
