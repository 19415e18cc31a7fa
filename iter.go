package flathash

import "iter"

// All returns an iterator over every live (key, value) pair, scanning
// aligned groups in tag order and using matchFull/matchLeadingFull to skip
// whole groups of empty/deleted slots at once and to resume mid-group
// after each yield. Iteration order is unspecified and mutating the table
// mid-iteration is not supported.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.tag == nil {
			return
		}
		capacity := t.mask + 1
		for base := uintptr(0); base < capacity; base += uintptr(GroupWidth) {
			g := groupLoadAligned(t.tag, int(base))
			pos := matchFull(g).trailingOne()
			for pos != GroupWidth {
				idx := base + uintptr(pos)
				rec := t.data[idx]
				if !yield(rec.Key, rec.Value) {
					return
				}
				pos = matchLeadingFull(g, pos).trailingOne()
			}
		}
	}
}
