//go:build amd64 && !flathash_portable

package flathash

import "encoding/binary"

// GroupWidth is 16 on amd64: the width a real SSE2 pcmpeqb/pmovmskb group
// scan would use. Real SSE2 assembly needs a code generator this tree can't
// run, so the 16-wide contract is realized as two independent 8-byte SWAR
// lanes using the exact same formulas as the 8-wide backend, scanned
// together. The externally observable group width is still 16; only the
// internals are pure Go instead of vector instructions.
const GroupWidth = 16

func groupLoadUnaligned(tag []byte, index int) groupTags {
	return groupTags{
		lo: binary.LittleEndian.Uint64(tag[index : index+8]),
		hi: binary.LittleEndian.Uint64(tag[index+8 : index+16]),
	}
}

func groupLoadAligned(tag []byte, index int) groupTags {
	return groupLoadUnaligned(tag, index)
}

func groupStoreAligned(tag []byte, index int, g groupTags) {
	binary.LittleEndian.PutUint64(tag[index:index+8], g.lo)
	binary.LittleEndian.PutUint64(tag[index+8:index+16], g.hi)
}
