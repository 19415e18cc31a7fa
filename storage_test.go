package flathash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueTableReportsNoAllocationFunction(t *testing.T) {
	var tt Table[string, int]
	err := tt.Reserve()
	assert.ErrorIs(t, err, ErrNoAllocationFunction)

	_, ok := tt.Get("x")
	assert.False(t, ok, "a never-allocated table must report every lookup as a miss")
}

func TestWithEqFuncOverridesDefault(t *testing.T) {
	// Case-insensitive string keys via a custom EqFunc, plus a hash that
	// folds case so equal keys still land in the same home group.
	fold := func(s string) uint64 {
		h := uint64(0)
		for _, r := range s {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			h = h*31 + uint64(r)
		}
		return h
	}
	eq := func(a, b string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			ca, cb := a[i], b[i]
			if ca >= 'A' && ca <= 'Z' {
				ca += 'a' - 'A'
			}
			if cb >= 'A' && cb <= 'Z' {
				cb += 'a' - 'A'
			}
			if ca != cb {
				return false
			}
		}
		return true
	}

	tt := New[string, int](16, WithHashFunc[string, int](fold), WithEqFunc[string, int](eq))
	require.NoError(t, tt.Set("Foo", 1))

	v, ok := tt.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	inserted, err := tt.Put("FOO", 2)
	require.NoError(t, err)
	assert.False(t, inserted, "FOO must be considered equal to Foo")
}

func TestReserveIsIdempotent(t *testing.T) {
	tt := New[int, int](16)
	require.NoError(t, tt.Reserve())
	cap1 := tt.Cap()
	require.NoError(t, tt.Reserve())
	assert.Equal(t, cap1, tt.Cap())
}
