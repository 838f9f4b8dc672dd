package engine

// Reaction is invoked for an overlapping pair, with the entities in the
// order the arena holds them. It must work out which argument is which.
type Reaction func(a, b *Entity)

// Registry maps an unordered pair of kinds to a reaction.
type Registry struct {
	table [kindCount][kindCount]Reaction
}

func pairKey(a, b Kind) (Kind, Kind) {
	if a > b {
		return b, a
	}
	return a, b
}

// Register binds fn to the pair. One registration covers both orders.
func (r *Registry) Register(a, b Kind, fn Reaction) {
	lo, hi := pairKey(a, b)
	r.table[lo][hi] = fn
}

// Lookup returns the reaction for the pair, or nil.
func (r *Registry) Lookup(a, b Kind) Reaction {
	lo, hi := pairKey(a, b)
	if lo >= kindCount || hi >= kindCount {
		return nil
	}
	return r.table[lo][hi]
}

// Collides reports whether two active entities' boxes overlap.
func Collides(a, b *Entity) bool {
	if !a.Active || !b.Active {
		return false
	}
	return a.Box().Overlaps(b.Box())
}

// Check visits every pair i<j of live entities and fires the registered
// reaction for each overlap. A pair that keeps overlapping fires again on
// every call. Spawns made by reactions join the arena after the pass.
// It returns the number of reactions fired.
func (r *Registry) Check(arena *Arena) int {
	arena.begin()
	defer arena.end()

	fired := 0
	n := arena.Len()
	for i := 0; i < n; i++ {
		a := arena.At(i)
		if a.Kind == KindExplosion {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := arena.At(j)
			if b.Kind == KindExplosion || !Collides(a, b) {
				continue
			}
			if fn := r.Lookup(a.Kind, b.Kind); fn != nil {
				fn(a, b)
				fired++
			}
		}
	}
	return fired
}
