package flathash

// EntryStatus classifies an Entry: whether the key was present when the
// entry was built, or whether building it failed outright.
type EntryStatus int

const (
	// Vacant means the key was absent when the Entry was built.
	Vacant EntryStatus = iota
	// Occupied means the key was present; Entry.slot names its record.
	Occupied
	// EntryError means ensureInit failed (caller-supplied storage that
	// doesn't validate); the inserting methods (OrInsert, InsertOrAssign,
	// TryInsert, SwapEntry) return Entry.err, while Get, AndModify and
	// RemoveEntry behave as on a Vacant entry.
	EntryError
)

// Entry is a single-lookup handle for a read-then-maybe-write sequence on
// one key, avoiding a second probe for the common insert-if-absent and
// update-if-present patterns.
type Entry[K comparable, V any] struct {
	table  *Table[K, V]
	key    K
	hash   uint64
	slot   uintptr
	status EntryStatus
	err    error
}

// Entry looks up key once and returns a handle describing whether it is
// present, for a caller that wants to decide what to do next without a
// second probe.
func (t *Table[K, V]) Entry(key K) Entry[K, V] {
	if err := t.ensureInit(); err != nil {
		return Entry[K, V]{table: t, key: key, status: EntryError, err: err}
	}
	h := t.hash(key)
	idx, ok := t.find(key, h)
	if ok {
		return Entry[K, V]{table: t, key: key, hash: h, slot: idx, status: Occupied}
	}
	return Entry[K, V]{table: t, key: key, hash: h, status: Vacant}
}

// Status reports which of Vacant/Occupied/EntryError this Entry is.
func (e Entry[K, V]) Status() EntryStatus {
	return e.status
}

// Get returns the entry's current value and whether it is occupied.
func (e Entry[K, V]) Get() (V, bool) {
	if e.status != Occupied {
		var zero V
		return zero, false
	}
	return e.table.data[e.slot].Value, true
}

// OrInsert returns the entry's value if occupied, or inserts value and
// returns it if vacant.
func (e Entry[K, V]) OrInsert(value V) (V, error) {
	switch e.status {
	case Occupied:
		return e.table.data[e.slot].Value, nil
	case EntryError:
		var zero V
		return zero, e.err
	}
	slot, err := e.table.prepareInsert(e.hash)
	if err != nil {
		var zero V
		return zero, err
	}
	e.table.insertAt(slot, fingerprint(e.hash), e.key, value)
	return value, nil
}

// InsertOrAssign is the unconditional upsert: it assigns value whether the
// key was present or not.
func (e Entry[K, V]) InsertOrAssign(value V) error {
	if e.status == EntryError {
		return e.err
	}
	if e.status == Occupied {
		e.table.data[e.slot].Value = value
		return nil
	}
	slot, err := e.table.prepareInsert(e.hash)
	if err != nil {
		return err
	}
	e.table.insertAt(slot, fingerprint(e.hash), e.key, value)
	return nil
}

// TryInsert inserts value only if the key was absent, reporting whether it
// did so. A false, nil result means the key was already present.
func (e Entry[K, V]) TryInsert(value V) (inserted bool, err error) {
	if e.status == EntryError {
		return false, e.err
	}
	if e.status == Occupied {
		return false, nil
	}
	slot, err := e.table.prepareInsert(e.hash)
	if err != nil {
		return false, err
	}
	e.table.insertAt(slot, fingerprint(e.hash), e.key, value)
	return true, nil
}

// AndModify runs fn against the entry's value in place if occupied, and
// returns the (possibly unmodified) entry for further chaining.
func (e Entry[K, V]) AndModify(fn func(value *V)) Entry[K, V] {
	if e.status == Occupied {
		fn(&e.table.data[e.slot].Value)
	}
	return e
}

// RemoveEntry erases the entry if occupied and hands its value back; the
// caller now owns it, so destroy is not invoked.
func (e Entry[K, V]) RemoveEntry() (V, bool) {
	if e.status != Occupied {
		var zero V
		return zero, false
	}
	value := e.table.data[e.slot].Value
	e.table.eraseAt(e.slot)
	return value, true
}

// SwapEntry exchanges the entry's value for newValue if occupied,
// returning the value that was there before (wasOccupied true). On a
// vacant entry it inserts newValue instead of doing nothing (wasOccupied
// false, old is the zero value).
func (e Entry[K, V]) SwapEntry(newValue V) (old V, wasOccupied bool, err error) {
	if e.status == EntryError {
		var zero V
		return zero, false, e.err
	}
	if e.status == Occupied {
		old = e.table.data[e.slot].Value
		e.table.data[e.slot].Value = newValue
		return old, true, nil
	}
	slot, err := e.table.prepareInsert(e.hash)
	if err != nil {
		var zero V
		return zero, false, err
	}
	e.table.insertAt(slot, fingerprint(e.hash), e.key, newValue)
	var zero V
	return zero, false, nil
}
