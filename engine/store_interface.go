package engine

import (
	"github.com/lixenwraith/arpg/core"
)

// AnyStore provides type-erased operations for lifecycle management
// Lets World destroy entities and clear state without knowing concrete component types
type AnyStore interface {
	RemoveComponent(e core.Entity)
	HasComponent(e core.Entity) bool
	CountEntity() int
	ClearAllComponent()
}
