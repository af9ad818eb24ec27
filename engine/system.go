package engine

// System is a per-frame update step
// Systems that also implement event.Handler[*World] are registered with the router by GameContext.AddSystem
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt float32)
}
