package ecs

import "iter"

// Join2 yields every entity present in both a and b. It walks the smaller
// side and probes the other, so the result has |a ∩ b| elements.
func Join2[A, B any](a Reader[A], b Reader[B]) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if a.Len() <= b.Len() {
			for e := range a.All() {
				if b.Has(e) && !yield(e) {
					return
				}
			}
			return
		}
		for e := range b.All() {
			if a.Has(e) && !yield(e) {
				return
			}
		}
	}
}
