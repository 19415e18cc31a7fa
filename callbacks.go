package flathash

import "hash/maphash"

// HashFunc computes a 64-bit hash for a key. The top 7 bits feed the tag
// fingerprint (see fingerprint), so a hash with weak high-bit entropy will
// see more fingerprint collisions and more eq calls, but never incorrect
// results.
type HashFunc[K any] func(key K) uint64

// EqFunc reports whether two keys are equal. The default, used when no
// EqFunc option is supplied, is Go's built-in == on comparable keys.
type EqFunc[K any] func(a, b K) bool

// DestroyFunc runs on every live value during Clear and Delete. It has no
// default; Clear/Delete without one simply drop references.
type DestroyFunc[V any] func(value V)

// defaultHashFunc builds the table's default HashFunc from a fresh
// maphash.Seed, seeded once per table rather than once per process so two
// tables of the same key type don't share a fingerprint distribution.
func defaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

func defaultEqFunc[K comparable]() EqFunc[K] {
	return func(a, b K) bool {
		return a == b
	}
}
