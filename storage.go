package flathash

// Record is one slot's payload: a key/value pair, laid out as its own
// element of the data slice rather than split across parallel key/value
// slices.
type Record[K comparable, V any] struct {
	Key   K
	Value V
}

// Table is a SIMD-style open-addressed hash table: one metadata byte per
// slot (see tag.go) drives group-at-a-time probing so lookups reject whole
// groups of candidates without touching data or calling eq.
//
// A Table is unusable until ensureInit runs (on first mutation, first
// lookup against a non-empty table, or an explicit Reserve): a table built
// with NewWithStorage holds onto the caller's buffers in
// backingData/backingTag without touching them (no memset, no validation)
// until something actually needs the table to exist.
type Table[K comparable, V any] struct {
	data []Record[K, V]
	tag  []byte

	backingData []Record[K, V]
	backingTag  []byte

	requestedCapacity int
	dynamic           bool

	mask       uintptr
	count      uintptr
	tombstones uintptr
	remain     uintptr

	hash    HashFunc[K]
	eq      EqFunc[K]
	destroy DestroyFunc[V]
}

// Option configures a Table at construction, following the functional-
// options pattern common across this codebase's constructors.
type Option[K comparable, V any] func(*Table[K, V])

// WithHashFunc overrides the default maphash-based hasher.
func WithHashFunc[K comparable, V any](h HashFunc[K]) Option[K, V] {
	return func(t *Table[K, V]) { t.hash = h }
}

// WithEqFunc overrides the default == comparison.
func WithEqFunc[K comparable, V any](eq EqFunc[K]) Option[K, V] {
	return func(t *Table[K, V]) { t.eq = eq }
}

// WithDestroyFunc registers a callback Clear runs against every live value.
func WithDestroyFunc[K comparable, V any](d DestroyFunc[V]) Option[K, V] {
	return func(t *Table[K, V]) { t.destroy = d }
}

// New returns a table-owned, dynamically growing table. capacity is a hint:
// the table allocates nothing until first touch, and then rounds capacity
// up to a power of two no smaller than GroupWidth.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Table[K, V] {
	t := &Table[K, V]{dynamic: true, requestedCapacity: capacity}
	applyOptions(t, opts)
	return t
}

// NewWithStorage returns a table over caller-supplied storage: it never
// reallocates, so growth past capacity fails with ErrNoAllocationFunction
// (in-place rehash can still reclaim tombstones). data must have length
// capacity+1 (the trailing element is the swap slot) and tag must have
// length capacity+GroupWidth (the trailing bytes are the replica group),
// for some capacity that is a power of two no smaller than GroupWidth;
// these are validated lazily, on first touch, not here.
func NewWithStorage[K comparable, V any](data []Record[K, V], tag []byte, opts ...Option[K, V]) *Table[K, V] {
	t := &Table[K, V]{backingData: data, backingTag: tag}
	applyOptions(t, opts)
	return t
}

func applyOptions[K comparable, V any](t *Table[K, V], opts []Option[K, V]) {
	for _, opt := range opts {
		opt(t)
	}
	if t.hash == nil {
		t.hash = defaultHashFunc[K]()
	}
	if t.eq == nil {
		t.eq = defaultEqFunc[K]()
	}
}

// ensureInit materializes data/tag on first touch: caller-supplied storage
// wins over a dynamic capacity hint if both are somehow present, and a
// table with neither reports ErrNoAllocationFunction rather than panicking
// on a zero-value Table.
func (t *Table[K, V]) ensureInit() error {
	if t.tag != nil {
		return nil
	}
	if t.backingTag != nil {
		capacity := capacityFromTagLen(len(t.backingTag))
		if capacity < uintptr(GroupWidth) || !isPowerOfTwo(capacity) || len(t.backingData) != dataLen(capacity) {
			return ErrArgument
		}
		t.data = t.backingData
		t.tag = t.backingTag
		t.mask = capacity - 1
		resetTags(t.tag)
		t.remain = effectiveCapacity(capacity)
		return nil
	}
	if !t.dynamic {
		return ErrNoAllocationFunction
	}
	capacity := normalizeCapacity(t.requestedCapacity)
	t.data = make([]Record[K, V], dataLen(capacity))
	t.tag = make([]byte, tagLen(capacity))
	t.mask = capacity - 1
	resetTags(t.tag)
	t.remain = effectiveCapacity(capacity)
	return nil
}

// resetTags fills every slot, including the replica group, with tagEmpty.
func resetTags(tag []byte) {
	for i := range tag {
		tag[i] = tagEmpty
	}
}

// Reserve forces initialization without performing an insert; it is a
// no-op on an already-initialized table.
func (t *Table[K, V]) Reserve() error {
	return t.ensureInit()
}

// Len reports the number of live (FULL) entries.
func (t *Table[K, V]) Len() int {
	return int(t.count)
}

// Cap reports the table's current slot capacity, or 0 if uninitialized.
func (t *Table[K, V]) Cap() int {
	if t.tag == nil {
		return 0
	}
	return int(t.mask + 1)
}

// EffectiveCapacity reports the maximum number of FULL-or-DELETED slots the
// table may currently hold before it must rehash.
func (t *Table[K, V]) EffectiveCapacity() int {
	if t.tag == nil {
		return 0
	}
	return int(effectiveCapacity(t.mask + 1))
}

// Stats reports diagnostic counters for deciding whether a Compact is
// worthwhile.
type Stats struct {
	Size                    int
	Tombstones              int
	TombstonesCapacityRatio float64
	TombstonesSizeRatio     float64
}

func (t *Table[K, V]) Stats() Stats {
	if t.tag == nil {
		return Stats{}
	}
	s := Stats{Size: int(t.count), Tombstones: int(t.tombstones)}
	if cap := t.Cap(); cap > 0 {
		s.TombstonesCapacityRatio = float64(s.Tombstones) / float64(cap)
	}
	if s.Size > 0 {
		s.TombstonesSizeRatio = float64(s.Tombstones) / float64(s.Size)
	}
	return s
}

// Clear empties the table without releasing its storage, running destroy
// (if set) against every live value first.
func (t *Table[K, V]) Clear() {
	if t.tag == nil {
		return
	}
	capacity := t.mask + 1
	if t.destroy != nil {
		for i := uintptr(0); i < capacity; i++ {
			if isFull(t.tag[i]) {
				t.destroy(t.data[i].Value)
			}
		}
	}
	resetTags(t.tag)
	var zero Record[K, V]
	for i := uintptr(0); i < capacity; i++ {
		t.data[i] = zero
	}
	t.count = 0
	t.tombstones = 0
	t.remain = effectiveCapacity(t.mask + 1)
}
