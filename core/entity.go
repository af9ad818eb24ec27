package core

// Entity is an opaque handle to a game object
// Zero is reserved as "no entity" and is never issued by the world
type Entity uint64
