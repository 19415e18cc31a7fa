package flathash

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestTable_AllVisitsEveryLiveRecord(t *testing.T) {
	tt := New[int, string](16)
	want := map[int]string{}
	for i := 0; i < 50; i++ {
		v := string(rune('a' + i%26))
		require.NoError(t, tt.Set(i, v))
		want[i] = v
	}
	// A third of the keys are erased so the iterator also has to skip
	// tombstones correctly, not just empty slots.
	for i := 0; i < 50; i += 3 {
		require.True(t, tt.Delete(i))
		delete(want, i)
	}

	type pair struct {
		Key   int
		Value string
	}
	var got []pair
	for k, v := range tt.All() {
		got = append(got, pair{k, v})
	}

	var wantPairs []pair
	for k, v := range want {
		wantPairs = append(wantPairs, pair{k, v})
	}

	less := func(a, b pair) bool { return a.Key < b.Key }
	if diff := cmp.Diff(wantPairs, got, cmpopts.SortSlices(less)); diff != "" {
		t.Fatalf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_AllStopsEarly(t *testing.T) {
	tt := New[int, int](16)
	for i := 0; i < 20; i++ {
		require.NoError(t, tt.Set(i, i))
	}

	seen := 0
	for range tt.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

func TestTable_AllOnUninitializedTable(t *testing.T) {
	tt := New[int, int](16)
	count := 0
	for range tt.All() {
		count++
	}
	require.Equal(t, 0, count)
}
