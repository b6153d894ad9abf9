package ecs

// Add attaches a component value to an entity.
func Add[T any](w *World, e Entity, handle ComponentHandle[T], value T) error {
	if !handle.Kind().Valid() {
		return ErrInvalidComponentKind
	}
	if any(value) == nil {
		return ErrNilComponent
	}
	if w == nil || !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	w.Storage(handle.Kind().ID()).Set(int(e.id()), value)
	return nil
}

// Remove detaches a component from an entity. Returns false if absent.
func Remove[T any](w *World, e Entity, handle ComponentHandle[T]) bool {
	if w == nil || !handle.Kind().Valid() {
		return false
	}
	return w.Storage(handle.Kind().ID()).Remove(int(e.id()))
}

// Has reports whether an entity carries a component.
func Has[T any](w *World, e Entity, handle ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.Storage(handle.Kind().ID()).Has(int(e.id()))
}

// Get returns an entity's component value.
func Get[T any](w *World, e Entity, handle ComponentHandle[T]) (T, bool) {
	var zero T
	if w == nil || !w.IsAlive(e) {
		return zero, false
	}
	v := w.Storage(handle.Kind().ID()).Get(int(e.id()))
	if v == nil {
		return zero, false
	}
	cast, ok := v.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Each calls fn for every entity carrying the component.
func Each[T any](w *World, handle ComponentHandle[T], fn func(Entity, T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.Storage(handle.Kind().ID())
	// snapshot so fn may add/remove components
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		v := s.Get(id)
		if v == nil {
			continue
		}
		cast, ok := v.(T)
		if !ok {
			continue
		}
		fn(w.entityFor(id), cast)
	}
}

// Count returns how many entities carry the component.
func Count[T any](w *World, handle ComponentHandle[T]) int {
	if w == nil {
		return 0
	}
	return w.Storage(handle.Kind().ID()).Len()
}
