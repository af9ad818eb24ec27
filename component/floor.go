package component

// FloorTileComponent is one square of the checkerboard ground
// Position comes from the entity's TransformComponent (tile centre)
type FloorTileComponent struct {
	Size float32
	Dark bool
}
