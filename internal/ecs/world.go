package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position   map[EntityID]Position
	Velocity   map[EntityID]Velocity
	Force      map[EntityID]Force
	Lifetime   map[EntityID]Lifetime
	Appearance map[EntityID]Appearance

	// Owner maps a particle to the emitter that spawned it
	Owner map[EntityID]string
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]Position),
		Velocity:   make(map[EntityID]Velocity),
		Force:      make(map[EntityID]Force),
		Lifetime:   make(map[EntityID]Lifetime),
		Appearance: make(map[EntityID]Appearance),
		Owner:      make(map[EntityID]string),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Force, id)
	delete(w.Lifetime, id)
	delete(w.Appearance, id)
	delete(w.Owner, id)
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.Position)
}

// ParticleConfig holds the initial state of a particle
type ParticleConfig struct {
	Owner      string
	X, Y       float64
	VX, VY     float64
	Force      Force
	Span       float64 // seconds
	Appearance Appearance
}

// CreateParticle creates a particle entity
func (w *World) CreateParticle(cfg ParticleConfig) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: cfg.X, Y: cfg.Y}
	w.Velocity[id] = Velocity{X: cfg.VX, Y: cfg.VY}
	w.Force[id] = cfg.Force
	w.Lifetime[id] = Lifetime{Span: cfg.Span}
	w.Appearance[id] = cfg.Appearance
	w.Owner[id] = cfg.Owner

	return id
}

// CountOwned returns the number of live particles spawned by owner
func (w *World) CountOwned(owner string) int {
	n := 0
	for _, o := range w.Owner {
		if o == owner {
			n++
		}
	}
	return n
}

// Clear destroys every entity. IDs keep increasing.
func (w *World) Clear() {
	for id := range w.Position {
		w.DestroyEntity(id)
	}
}
