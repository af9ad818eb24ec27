package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/arpg/core"
)

var (
	// ErrDuplicatePlayer is returned when a second player is registered
	ErrDuplicatePlayer = errors.New("player already registered")

	// ErrDuplicateCamera is returned when a second tracking camera is registered
	ErrDuplicateCamera = errors.New("camera already registered")

	// ErrNotPlayer is returned when registering an entity missing player, path or transform
	ErrNotPlayer = errors.New("entity is not a player")

	// ErrNotCamera is returned when registering an entity missing camera or transform
	ErrNotCamera = errors.New("entity is not a camera")
)

// World contains all entities and their components using typed stores
// The player and camera are singletons; their ids are held explicitly and validated at registration
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	allStores  []AnyStore

	player core.Entity
	camera core.Entity

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		systems:      make([]System, 0),
	}
	w.allStores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components of an entity and releases its singleton slot
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.RemoveComponent(e)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.player == e {
		w.player = 0
	}
	if w.camera == e {
		w.camera = 0
	}
}

// Clear removes all entities, components and singleton registrations
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	w.player = 0
	w.camera = 0
	for _, store := range w.allStores {
		store.ClearAllComponent()
	}
}

// RegisterPlayer records e as the player
// e must carry Player, Path and Transform components
func (w *World) RegisterPlayer(e core.Entity) error {
	if !w.Components.Player.HasComponent(e) || !w.Components.Path.HasComponent(e) || !w.Components.Transform.HasComponent(e) {
		return fmt.Errorf("register player %d: %w", e, ErrNotPlayer)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.player != 0 {
		return fmt.Errorf("register player %d (existing %d): %w", e, w.player, ErrDuplicatePlayer)
	}
	w.player = e
	return nil
}

// RegisterCamera records e as the tracking camera
// e must carry Camera and Transform components
func (w *World) RegisterCamera(e core.Entity) error {
	if !w.Components.Camera.HasComponent(e) || !w.Components.Transform.HasComponent(e) {
		return fmt.Errorf("register camera %d: %w", e, ErrNotCamera)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.camera != 0 {
		return fmt.Errorf("register camera %d (existing %d): %w", e, w.camera, ErrDuplicateCamera)
	}
	w.camera = e
	return nil
}

// Player returns the registered player entity
func (w *World) Player() (core.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.player, w.player != 0
}

// Camera returns the registered camera entity
func (w *World) Camera() (core.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.camera, w.camera != 0
}

// AddSystem adds a system to the world and sorts by priority
// Systems of equal priority keep insertion order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, small N, stable
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Readers outside the frame loop (renderer, bridge) use this for a consistent view
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked(dt float32) {
	for _, system := range w.Systems() {
		system.Update(dt)
	}
}
