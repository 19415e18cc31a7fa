package flathash

import "errors"

// Sentinel errors, each wrapping a single well-defined failure mode so
// callers can errors.Is against the one they care about.
var (
	// ErrArgument is returned when caller-supplied storage fails validation:
	// a tag slice shorter than GroupWidth, a capacity that isn't a power of
	// two, or a capacity smaller than GroupWidth.
	ErrArgument = errors.New("flathash: invalid argument")

	// ErrAllocator is returned when growth arithmetic would overflow or
	// otherwise produce a nonsensical byte count.
	ErrAllocator = errors.New("flathash: allocator failure")

	// ErrNoAllocationFunction is returned when a table over caller-supplied
	// storage needs to grow past its fixed capacity. Such a table can still
	// reclaim tombstones via an in-place rehash; it just cannot allocate a
	// larger block, because it never owned the one it has.
	ErrNoAllocationFunction = errors.New("flathash: no allocation function for caller-supplied storage")

	// ErrInsert wraps every failure that prepareInsert reports: the table
	// could not be made ready for a new record (growth failed or was
	// disallowed). Every Set/Put/Entry insert path surfaces it wrapping the
	// underlying cause (errors.Is matches both). It is never returned by a
	// pure lookup.
	ErrInsert = errors.New("flathash: insert failed")
)
