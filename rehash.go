package flathash

// rehash reclaims capacity before an insert that would otherwise overflow
// the 7/8 load factor. A table-owned (dynamic) table grows once its live
// records plus the pending one would exceed half its capacity; below that,
// it reclaims tombstones in place instead. A table over caller-supplied
// storage can only reclaim tombstones in place, and reports
// ErrNoAllocationFunction if that still isn't enough room.
func (t *Table[K, V]) rehash() error {
	if t.dynamic && t.count+1 > (t.mask+1)/2 {
		return t.growRehash()
	}
	t.inPlaceRehash()
	if t.remain == 0 {
		return ErrNoAllocationFunction
	}
	return nil
}

// growRehash doubles capacity, allocates fresh data/tag slices, and
// reinserts every live record. Every live key is distinct, so reinsertion
// only needs findInsertSlot (no eq calls, no possibility of a collision
// with an existing key).
func (t *Table[K, V]) growRehash() error {
	oldData := t.data
	oldTag := t.tag
	oldCapacity := t.mask + 1

	newCapacity := oldCapacity * 2
	if newCapacity < uintptr(GroupWidth) {
		newCapacity = uintptr(GroupWidth)
	}
	if newCapacity <= oldCapacity {
		return ErrAllocator
	}

	newData := make([]Record[K, V], dataLen(newCapacity))
	newTag := make([]byte, tagLen(newCapacity))
	resetTags(newTag)

	t.data = newData
	t.tag = newTag
	t.mask = newCapacity - 1
	t.remain = effectiveCapacity(newCapacity)
	t.tombstones = 0

	for i := uintptr(0); i < oldCapacity; i++ {
		if !isFull(oldTag[i]) {
			continue
		}
		rec := oldData[i]
		h := t.hash(rec.Key)
		slot := t.findInsertSlot(h)
		t.setTag(slot, fingerprint(h))
		t.data[slot] = rec
		t.remain--
	}
	return nil
}

// inPlaceRehash is the convert-then-replace algorithm: first every tag is
// remapped so DELETED becomes EMPTY and FULL becomes a temporary "needs
// relocation" DELETED marker, then each such slot is walked to its
// probe-correct home, using the swap slot (the trailing data element) to
// exchange two live records that both still need placement.
func (t *Table[K, V]) inPlaceRehash() {
	capacity := t.mask + 1

	for i := uintptr(0); i < capacity; i += uintptr(GroupWidth) {
		g := groupLoadAligned(t.tag, int(i))
		groupStoreAligned(t.tag, int(i), convertConstantToEmptyFullToDeleted(g))
	}
	for i := uintptr(0); i < uintptr(GroupWidth); i++ {
		t.tag[capacity+i] = t.tag[i]
	}

	swap := capacity // the trailing data element reserved as swap space

	for i := uintptr(0); i < capacity; i++ {
		for t.tag[i] == tagDeleted {
			key := t.data[i].Key
			h := t.hash(key)
			target := t.findInsertSlot(h)

			if sameGroup(i, target, uintptr(h)&t.mask, t.mask) {
				t.tag[i] = fingerprint(h)
				t.setTagReplica(i)
				break
			}

			switch t.tag[target] {
			case tagEmpty:
				t.setTag(target, fingerprint(h))
				t.data[target] = t.data[i]
				t.tag[i] = tagEmpty
				t.setTagReplica(i)
				var zero Record[K, V]
				t.data[i] = zero
			case tagDeleted:
				t.data[swap] = t.data[target]
				t.data[target] = t.data[i]
				t.data[i] = t.data[swap]
				t.setTag(target, fingerprint(h))
				// t.tag[i] stays tagDeleted: it now holds the record
				// formerly at target, which still needs placement.
			}
		}
	}

	var zero Record[K, V]
	t.data[swap] = zero
	t.remain = effectiveCapacity(capacity) - t.count
	t.tombstones = 0
}

// sameGroup reports whether i and target fall in the same probe window
// relative to ideal (the key's home slot, hash&mask), in which case a
// relocation is unnecessary: a lookup scanning from ideal reaches i and
// target in the same group step, so leaving the record at i still
// satisfies its own probe. This must be measured relative to ideal, not
// to absolute array alignment: a window starting at a non-zero ideal
// straddles an aligned-group boundary, so "same aligned group" and "same
// probe window" only agree when ideal happens to be 0.
func sameGroup(i, target, ideal, mask uintptr) bool {
	windowOf := func(x uintptr) uintptr { return ((x - ideal) & mask) / uintptr(GroupWidth) }
	return windowOf(i) == windowOf(target)
}

// setTagReplica refreshes the replica byte for a logical index below
// GroupWidth after a direct t.tag[i] write (setTag does this already;
// this is for the few in-place-rehash writes that touch t.tag directly).
func (t *Table[K, V]) setTagReplica(i uintptr) {
	if i < uintptr(GroupWidth) {
		t.tag[t.mask+1+i] = t.tag[i]
	}
}
