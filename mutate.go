package flathash

import "fmt"

// prepareInsert ensures the table is initialized and has head-room for one
// more FULL-or-DELETED slot, rehashing first if remain has hit zero, then
// returns the slot a fresh key (not already present) should occupy. Any
// failure here is wrapped in ErrInsert: the caller was specifically trying
// to make room for an insert, as opposed to a plain lookup's ensureInit
// check, which reports its cause directly.
func (t *Table[K, V]) prepareInsert(hash uint64) (uintptr, error) {
	if err := t.ensureInit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInsert, err)
	}
	if t.remain == 0 {
		if err := t.rehash(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInsert, err)
		}
	}
	return t.findInsertSlot(hash), nil
}

// insertAt writes a new record into slot i, which must be empty or
// deleted (as returned by find/findInsertSlot). remain only drops when the
// slot was truly empty: reusing a tombstone doesn't cost any of the 7/8
// load-factor budget, since the slot was already counted as outside the
// table's head-room when it became a tombstone.
func (t *Table[K, V]) insertAt(i uintptr, tag byte, key K, value V) {
	switch t.tag[i] {
	case tagEmpty:
		t.remain--
	case tagDeleted:
		t.tombstones--
	}
	t.setTag(i, tag)
	t.data[i] = Record[K, V]{Key: key, Value: value}
	t.count++
}

// eraseAt clears a live slot, deciding between EMPTY and DELETED: count the
// non-empty slots immediately before i, plus i itself (still live) plus the
// non-empty slots immediately after i. If that run reaches a full
// GroupWidth, some GroupWidth-wide probe window containing i holds no empty
// slot, so a probe may have crossed i to place a key further on; i becomes
// a tombstone so such lookups keep going. Otherwise every window containing
// i already has an empty slot, and marking i EMPTY cannot cut a probe
// short. Counting byte-by-byte instead of via the group-match SWAR
// primitives keeps this, the single subtlest invariant in the table, legible
// enough to verify by inspection. It does not run destroy: callers that hand
// the value back to the caller (RemoveEntry) must not destroy it, so only
// Delete and Clear invoke destroy themselves.
func (t *Table[K, V]) eraseAt(i uintptr) {
	prevFull := 0
	for k := uintptr(1); k <= uintptr(GroupWidth); k++ {
		if t.tag[(i-k)&t.mask] == tagEmpty {
			break
		}
		prevFull++
	}

	curFull := 1 // i itself, still live
	for k := uintptr(1); k < uintptr(GroupWidth); k++ {
		if t.tag[(i+k)&t.mask] == tagEmpty {
			break
		}
		curFull++
	}

	var newTag byte
	if prevFull+curFull >= GroupWidth {
		newTag = tagDeleted
		t.tombstones++
	} else {
		newTag = tagEmpty
		t.remain++
	}

	var zero Record[K, V]
	t.data[i] = zero
	t.setTag(i, newTag)
	t.count--
}
