package engine

import (
	"github.com/kamstrup/intmap"
)

// Handle is a stable reference to an entity. Handles are never reused.
type Handle uint64

// Arena stores live entities in spawn order. Entities spawned while a pass
// is iterating are queued and join the live set when the pass ends, so
// pointers handed out during a pass stay valid.
type Arena struct {
	entities []Entity
	handles  []Handle
	index    *intmap.Map[Handle, int]
	pending  []Entity
	pendingH []Handle
	next     Handle
	passes   int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		index: intmap.New[Handle, int](64),
		next:  1,
	}
}

// Spawn adds an entity and returns its handle.
func (a *Arena) Spawn(e Entity) Handle {
	h := a.next
	a.next++

	if a.passes > 0 {
		a.pending = append(a.pending, e)
		a.pendingH = append(a.pendingH, h)
		return h
	}
	a.index.Put(h, len(a.entities))
	a.entities = append(a.entities, e)
	a.handles = append(a.handles, h)
	return h
}

// Len returns the number of live entities, excluding pending spawns.
func (a *Arena) Len() int {
	return len(a.entities)
}

// Pending returns the number of spawns waiting for the current pass to end.
func (a *Arena) Pending() int {
	return len(a.pending)
}

// At returns the entity in slot i.
func (a *Arena) At(i int) *Entity {
	return &a.entities[i]
}

// Get resolves a handle. Pending spawns are not resolvable until flushed.
func (a *Arena) Get(h Handle) (*Entity, bool) {
	i, ok := a.index.Get(h)
	if !ok {
		return nil, false
	}
	return &a.entities[i], true
}

// Each visits every entity that was live when the pass started.
func (a *Arena) Each(fn func(h Handle, e *Entity)) {
	a.begin()
	defer a.end()

	n := len(a.entities)
	for i := 0; i < n; i++ {
		fn(a.handles[i], &a.entities[i])
	}
}

// Count returns how many live entities satisfy pred.
func (a *Arena) Count(pred func(e *Entity) bool) int {
	n := 0
	for i := range a.entities {
		if pred(&a.entities[i]) {
			n++
		}
	}
	return n
}

func (a *Arena) begin() {
	a.passes++
}

func (a *Arena) end() {
	a.passes--
	if a.passes == 0 {
		a.flush()
	}
}

func (a *Arena) flush() {
	for i, e := range a.pending {
		h := a.pendingH[i]
		a.index.Put(h, len(a.entities))
		a.entities = append(a.entities, e)
		a.handles = append(a.handles, h)
	}
	a.pending = a.pending[:0]
	a.pendingH = a.pendingH[:0]
}

// Compact removes dead entities, calling onRemove for each one first.
// It returns the number removed. Order of survivors is preserved.
func (a *Arena) Compact(onRemove func(e *Entity)) int {
	kept := 0
	for i := range a.entities {
		e := &a.entities[i]
		if e.Dead() {
			if onRemove != nil {
				onRemove(e)
			}
			a.index.Del(a.handles[i])
			continue
		}
		if kept != i {
			a.entities[kept] = a.entities[i]
			a.handles[kept] = a.handles[i]
			a.index.Put(a.handles[kept], kept)
		}
		kept++
	}

	removed := len(a.entities) - kept
	clear(a.entities[kept:])
	a.entities = a.entities[:kept]
	a.handles = a.handles[:kept]
	return removed
}
