package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storages, and system order.
type World struct {
	entities entityStore
	storages map[ComponentID]*SparseSet
	systems  []System
	commands CommandQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{storages: map[ComponentID]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity marks an entity as dead and drops its components.
// Returns false if the handle was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.storages {
		s.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Storage returns the sparse set for a component id, creating it on
// first use.
func (w *World) Storage(id ComponentID) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	if w.storages == nil {
		w.storages = map[ComponentID]*SparseSet{}
	}
	s, ok := w.storages[id]
	if !ok {
		s = &SparseSet{}
		w.storages[id] = s
	}
	return s
}

// entityFor rebuilds a live handle from a storage id.
func (w *World) entityFor(id int) Entity {
	if w == nil || id <= 0 || id > len(w.entities.gens) {
		return 0
	}
	return makeEntity(entityID(id), w.entities.gens[id-1])
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then applies deferred commands.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.commands.apply(w)
}

// Commands returns the world's deferred command queue.
func (w *World) Commands() *CommandQueue {
	if w == nil {
		return nil
	}
	return &w.commands
}
