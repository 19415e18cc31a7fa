//go:build !amd64 || flathash_portable

package flathash

import "encoding/binary"

// GroupWidth is the number of tags scanned together as one group. This is
// the portable fallback: 8-wide, built for any non-amd64 target or when the
// flathash_portable build tag forces it on amd64 too. True vector
// intrinsics (NEON, SSE2) aren't expressible in portable Go, so this
// backend uses the same SWAR lane formulas as the 16-wide path, just
// running the single 8-byte lane instead of two.
const GroupWidth = 8

func groupLoadUnaligned(tag []byte, index int) groupTags {
	return groupTags{lo: binary.LittleEndian.Uint64(tag[index : index+8])}
}

func groupLoadAligned(tag []byte, index int) groupTags {
	return groupLoadUnaligned(tag, index)
}

func groupStoreAligned(tag []byte, index int, g groupTags) {
	binary.LittleEndian.PutUint64(tag[index:index+8], g.lo)
}
