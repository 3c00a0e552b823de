package survivor

// EntityStore owns every entity in the arena. Entities are kept in
// spawn order and all iteration follows that order, which keeps the
// simulation deterministic for a given seed and input sequence.
type EntityStore struct {
	nextID   EntityID
	entities []*Entity
	byID     map[EntityID]*Entity
}

// NewEntityStore creates an empty store.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		nextID:   1,
		entities: make([]*Entity, 0, 64),
		byID:     make(map[EntityID]*Entity),
	}
}

// Reset removes all entities. IDs keep counting up so references from
// before the reset can never alias new entities.
func (s *EntityStore) Reset() {
	s.entities = s.entities[:0]
	for id := range s.byID {
		delete(s.byID, id)
	}
}

// Spawn inserts a copy of the given entity, assigning it a fresh ID.
// Returns the stored entity, which is live and mutable.
func (s *EntityStore) Spawn(e Entity) *Entity {
	e.ID = s.nextID
	s.nextID++
	e.Alive = true

	stored := &e
	s.entities = append(s.entities, stored)
	s.byID[stored.ID] = stored
	return stored
}

// Get returns the entity with the given ID, or nil if it no longer exists.
// Entities marked dead remain retrievable until the next Sweep.
func (s *EntityStore) Get(id EntityID) *Entity {
	return s.byID[id]
}

// Remove deletes an entity immediately, preserving spawn order of the rest.
func (s *EntityStore) Remove(id EntityID) {
	e, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	for i, cur := range s.entities {
		if cur == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// All returns every stored entity in spawn order, including dead ones
// awaiting a sweep. The returned slice is the store's own; do not keep it.
func (s *EntityStore) All() []*Entity {
	return s.entities
}

// Kind returns the alive entities of the given kind in spawn order.
func (s *EntityStore) Kind(kind EntityKind) []*Entity {
	out := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if e.Alive && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// CountAlive returns the number of alive entities of the given kind.
func (s *EntityStore) CountAlive(kind EntityKind) int {
	n := 0
	for _, e := range s.entities {
		if e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}

// Player returns the player entity, or nil before it is spawned.
func (s *EntityStore) Player() *Entity {
	for _, e := range s.entities {
		if e.Kind == KindPlayer && e.Alive {
			return e
		}
	}
	return nil
}

// Sweep removes all dead entities, preserving spawn order of the rest.
// Dead entities stay visible to the current tick until this runs, which
// lets death handling read their final state.
func (s *EntityStore) Sweep() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Alive {
			kept = append(kept, e)
		} else {
			delete(s.byID, e.ID)
		}
	}
	s.entities = kept
}

// Len returns the total number of stored entities, dead included.
func (s *EntityStore) Len() int {
	return len(s.entities)
}
