// Package flathash implements a SIMD-style open-addressed hash table (a
// "flat hash map") in the spirit of Abseil's flat_hash_map and Rust's
// hashbrown: one byte of metadata per slot drives group-at-a-time probing,
// so most lookups reject entire groups of candidates without ever touching
// user data or calling the key-equality function.
//
// The table is single-threaded, has no stable iteration order, and does not
// persist itself anywhere; see the package-level Non-goals in the project's
// design notes. It supports two storage regimes: table-owned dynamic storage
// (New), which allocates and grows on demand, and caller-supplied storage
// (NewWithStorage), which never reallocates and can only reclaim tombstones
// through an in-place rehash.
package flathash
