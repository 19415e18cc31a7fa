package flathash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetGetDelete(t *testing.T) {
	tt := New[string, string](16)

	require.NoError(t, tt.Set("foo", "bar"))
	v, ok := tt.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)

	require.NoError(t, tt.Set("foo", "bar2"))
	v, ok = tt.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar2", v)

	assert.True(t, tt.Delete("foo"))
	_, ok = tt.Get("foo")
	assert.False(t, ok)
	assert.False(t, tt.Delete("foo"))
}

func TestTable_Put(t *testing.T) {
	tt := New[string, string](16)

	inserted, err := tt.Put("foo", "bar")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = tt.Put("foo", "bar2")
	require.NoError(t, err)
	assert.False(t, inserted)

	v, _ := tt.Get("foo")
	assert.Equal(t, "bar", v)
}

func TestTable_GrowsPastEffectiveCapacity(t *testing.T) {
	tt := New[uint64, uint64](16)
	require.NoError(t, tt.Reserve())
	want := tt.EffectiveCapacity()

	for i := 0; i < want+64; i++ {
		require.NoError(t, tt.Set(uint64(i), uint64(i)))
	}

	for i := 0; i < want+64; i++ {
		v, ok := tt.Get(uint64(i))
		require.True(t, ok)
		assert.Equal(t, uint64(i), v)
	}
	assert.Equal(t, want+64, tt.Len())
}

func TestTable_CollisionProbeChain(t *testing.T) {
	// Every key hashes to the same home slot, forcing every insert past
	// the first to walk the probe sequence.
	collisionHash := func(string) uint64 { return 0 }
	tt := New[string, int](16, WithHashFunc[string, int](collisionHash))

	keys := []string{"A", "B", "C", "D", "E"}
	for i, k := range keys {
		require.NoError(t, tt.Set(k, i))
	}
	for i, k := range keys {
		v, ok := tt.Get(k)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	// Erasing one in the middle of the chain must not break lookups for
	// keys that probed through it.
	assert.True(t, tt.Delete("C"))
	for i, k := range keys {
		if k == "C" {
			continue
		}
		v, ok := tt.Get(k)
		require.True(t, ok, "key %q should still be found after erasing C", k)
		assert.Equal(t, i, v)
	}
	_, ok := tt.Get("C")
	assert.False(t, ok)
}

func TestTable_EraseAllThenReinsert(t *testing.T) {
	tt := New[int, int](16)
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, tt.Set(i, i*2))
	}
	for i := 0; i < n; i++ {
		require.True(t, tt.Delete(i))
	}
	assert.Equal(t, 0, tt.Len())
	for i := 0; i < n; i++ {
		require.NoError(t, tt.Set(i, i*3))
	}
	assert.Equal(t, n, tt.Len())
	for i := 0; i < n; i++ {
		v, ok := tt.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*3, v)
	}
}

func TestTable_NewWithStorage_RejectsBadCapacity(t *testing.T) {
	data := make([]Record[int, int], 10) // not capacity+1 for any valid capacity
	tag := make([]byte, 9)
	tt := NewWithStorage[int, int](data, tag)
	err := tt.Reserve()
	assert.ErrorIs(t, err, ErrArgument)
}

func TestTable_NewWithStorage_FixedCapacityReportsNoAllocation(t *testing.T) {
	capacity := GroupWidth
	data := make([]Record[int, int], capacity+1)
	tag := make([]byte, capacity+GroupWidth)
	tt := NewWithStorage[int, int](data, tag)
	require.NoError(t, tt.Reserve())

	limit := tt.EffectiveCapacity()
	for i := 0; i < limit; i++ {
		require.NoError(t, tt.Set(i, i))
	}
	err := tt.Set(limit, limit)
	assert.ErrorIs(t, err, ErrNoAllocationFunction)
}

func TestTable_CompactReclaimsTombstones(t *testing.T) {
	collisionHash := func(int) uint64 { return 0 }
	tt := New[int, int](16, WithHashFunc[int, int](collisionHash))

	for i := 0; i < 8; i++ {
		require.NoError(t, tt.Set(i, i))
	}
	for i := 0; i < 8; i++ {
		require.True(t, tt.Delete(i))
	}
	before := tt.Stats()
	require.NoError(t, tt.Compact())
	after := tt.Stats()
	assert.LessOrEqual(t, after.Tombstones, before.Tombstones)

	for i := 100; i < 108; i++ {
		require.NoError(t, tt.Set(i, i))
	}
	for i := 100; i < 108; i++ {
		v, ok := tt.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestTable_Clear(t *testing.T) {
	var destroyed []string
	tt := New[string, string](16, WithDestroyFunc[string, string](func(v string) {
		destroyed = append(destroyed, v)
	}))
	require.NoError(t, tt.Set("a", "1"))
	require.NoError(t, tt.Set("b", "2"))

	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	assert.ElementsMatch(t, []string{"1", "2"}, destroyed)

	_, ok := tt.Get("a")
	assert.False(t, ok)
}
