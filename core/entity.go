package core

// Entity identifies an actor in the simulated world
// Zero is never assigned and means "no entity"
type Entity uint64

// NoEntity is the null entity reference
const NoEntity Entity = 0

// Valid reports whether e refers to an entity
func (e Entity) Valid() bool {
	return e != NoEntity
}
