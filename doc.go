// Package arena implements a region-based memory allocator built on a
// chain of bump-allocated blocks.
//
// # Overview
//
// Callers request memory from a long-lived arena instead of freeing each
// allocation individually; everything is released at once when the arena
// is cleared or destroyed, or selectively rewound through temporary
// scopes. This suits programs with clear allocation-lifetime phases:
//
//   - Per-frame scratch memory in render or simulation loops
//   - Request-scoped allocations in servers
//   - Per-pass buffers in parsers and compilers
//
// # Basic Usage
//
//	a, err := arena.New()
//	if err != nil {
//		// handle it
//	}
//	defer a.Destroy()
//
//	buf, err := a.Alloc(1024)
//	s, err := a.Strdup("hello")
//
//	// Typed allocation
//	p, err := arena.Alloc[MyStruct](a)
//	xs, err := arena.AllocSlice[int](a, 100)
//
//	// Release everything, keep the blocks for reuse
//	a.Clear()
//
// # Temporary Scopes
//
// A Temp checkpoint rewinds the arena to an earlier state, invalidating
// everything allocated after it:
//
//	tmp := a.TempBegin()
//	scratch, _ := a.Alloc(4096)
//	// ... use scratch ...
//	tmp.End() // scratch is gone, its capacity reusable
//
// Scopes nest as long as they end last-opened first-closed.
//
// # Memory Layout
//
// The arena grows by blocks (default 64 KiB). When the current block runs
// out, already-existing blocks ahead of it are recycled first; only then
// is a new block created, sized up to the request and rounded to a page
// multiple for oversized allocations. A fixed-size arena never grows past
// the blocks it was constructed with.
//
// # Errors
//
// Every fallible operation returns an error the caller can test with
// errors.Is against the package sentinels (ErrOutOfMemory,
// ErrInvalidSize, ...). The arena additionally records a sticky ErrorCode
// readable through LastError; it is overwritten by each failure and never
// cleared by success, so consult it only after an operation reports
// failure.
//
// # Thread Safety
//
// Arena is single-threaded and carries no lock. SafeArena wraps the same
// surface behind one mutex per arena, held for the whole of every
// mutating operation. Its statistics accessors are deliberately
// unsynchronized best-effort snapshots.
//
// # Important Notes
//
//   - Returned slices alias arena memory; they are invalid after a Temp
//     rewind past them, a Clear, or a Destroy.
//   - There is no per-allocation free. Resize only works in place on the
//     most recent allocation; anything else is relocated.
//   - Calloc and the typed helpers zero their memory; Alloc does not,
//     and recycled blocks retain stale bytes.
package arena
