package flathash

// Get returns the value stored under key and whether it was found.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t.tag == nil {
		var zero V
		return zero, false
	}
	idx, ok := t.find(key, t.hash(key))
	if !ok {
		var zero V
		return zero, false
	}
	return t.data[idx].Value, true
}

// Has reports whether key is present, without paying for a value copy.
func (t *Table[K, V]) Has(key K) bool {
	if t.tag == nil {
		return false
	}
	_, ok := t.find(key, t.hash(key))
	return ok
}

// Set is the unconditional upsert: it inserts key if absent, or
// overwrites the existing value if present.
func (t *Table[K, V]) Set(key K, value V) error {
	if err := t.ensureInit(); err != nil {
		return err
	}
	h := t.hash(key)
	if idx, ok := t.find(key, h); ok {
		t.data[idx].Value = value
		return nil
	}
	slot, err := t.prepareInsert(h)
	if err != nil {
		return err
	}
	// prepareInsert may have rehashed, but rehashing only relocates
	// existing entries: key was already confirmed absent above, so it
	// can't have appeared, and slot is the correct insertion point.
	t.insertAt(slot, fingerprint(h), key, value)
	return nil
}

// Put inserts key only if it is absent, reporting whether it did so.
func (t *Table[K, V]) Put(key K, value V) (inserted bool, err error) {
	if err := t.ensureInit(); err != nil {
		return false, err
	}
	h := t.hash(key)
	if _, ok := t.find(key, h); ok {
		return false, nil
	}
	slot, err := t.prepareInsert(h)
	if err != nil {
		return false, err
	}
	t.insertAt(slot, fingerprint(h), key, value)
	return true, nil
}

// Delete removes key if present, running destroy (if set) against its
// value, and reports whether it was found.
func (t *Table[K, V]) Delete(key K) bool {
	if t.tag == nil {
		return false
	}
	idx, ok := t.find(key, t.hash(key))
	if !ok {
		return false
	}
	if t.destroy != nil {
		t.destroy(t.data[idx].Value)
	}
	t.eraseAt(idx)
	return true
}

// Compact runs an in-place rehash to reclaim tombstone slots without
// growing. Check Stats to decide whether tombstone pressure makes it
// worthwhile.
func (t *Table[K, V]) Compact() error {
	if err := t.ensureInit(); err != nil {
		return err
	}
	t.inPlaceRehash()
	return nil
}

// CopyFrom inserts every key/value pair from src into t, overwriting t's
// existing value for any key present in both. A dynamic t grows as needed;
// a t over caller-supplied storage returns ErrNoAllocationFunction as soon
// as src no longer fits, leaving t holding whatever was copied so far.
func (t *Table[K, V]) CopyFrom(src *Table[K, V]) error {
	for k, v := range src.All() {
		if err := t.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
