package flathash

// setTag writes a slot's metadata byte and keeps the replica group (the
// GroupWidth bytes mirroring [0,GroupWidth) at the tail of the tag slice)
// in sync, so an unaligned group load straddling the end of the array
// never needs a branch for the wraparound.
func (t *Table[K, V]) setTag(i uintptr, tag byte) {
	t.tag[i] = tag
	capacity := t.mask + 1
	if i < uintptr(GroupWidth) {
		t.tag[capacity+i] = tag
	}
}

// find runs the probe sequence from hash's home group forward, testing
// every candidate whose tag's fingerprint matches key's before calling eq,
// and stopping at the first empty slot in any probed group. It returns the
// index of a live match, or the index of the first empty-or-deleted slot
// the probe crossed (for insertion) when ok is false.
func (t *Table[K, V]) find(key K, hash uint64) (idx uintptr, ok bool) {
	fp := fingerprint(hash)
	firstSlot := ^uintptr(0)
	haveFirstSlot := false

	seq := newProbeSeq(hash, t.mask)
	for {
		g := groupLoadUnaligned(t.tag, int(seq.offset))

		matches := matchTag(g, fp)
		for matches.hasOne() {
			pos := matches.trailingOne()
			idx := (seq.offset + uintptr(pos)) & t.mask
			if t.eq(t.data[idx].Key, key) {
				return idx, true
			}
			matches = matches.removeFirst()
		}

		if !haveFirstSlot {
			if open := matchEmptyOrDeleted(g); open.hasOne() {
				firstSlot = (seq.offset + uintptr(open.trailingOne())) & t.mask
				haveFirstSlot = true
			}
		}

		if empties := matchEmpty(g); empties.hasOne() {
			if !haveFirstSlot {
				firstSlot = (seq.offset + uintptr(empties.trailingOne())) & t.mask
			}
			return firstSlot, false
		}

		seq.next()
	}
}

// findInsertSlot runs the same probe as find but skips the fingerprint/eq
// work, for callers (Entry, rehash) that already know the key is absent
// and only need the first empty-or-deleted slot on its probe chain.
func (t *Table[K, V]) findInsertSlot(hash uint64) uintptr {
	firstSlot := ^uintptr(0)
	haveFirstSlot := false

	seq := newProbeSeq(hash, t.mask)
	for {
		g := groupLoadUnaligned(t.tag, int(seq.offset))

		if !haveFirstSlot {
			if open := matchEmptyOrDeleted(g); open.hasOne() {
				firstSlot = (seq.offset + uintptr(open.trailingOne())) & t.mask
				haveFirstSlot = true
			}
		}

		if matchEmpty(g).hasOne() {
			return firstSlot
		}

		seq.next()
	}
}
