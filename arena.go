package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Arena is a region-based allocator: a chain of fixed-capacity blocks with
// a bump cursor in the current block. Individual allocations are never
// freed; memory is reclaimed wholesale by Clear, Destroy, or a Temp scope
// rewind. Not goroutine-safe; use SafeArena for concurrent access.
type Arena struct {
	first   *block // head of the chain, never moves
	current *block // block actively receiving allocations

	totalAllocated int // sum of all block sizes ever created
	totalUsed      int // live bytes, including alignment padding

	config  Config
	lastErr ErrorCode
}

// New creates an arena with DefaultConfig.
func New() (*Arena, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an arena from cfg and eagerly allocates its first
// block. A rejected configuration or a failed initial block yields no
// arena.
func NewWithConfig(cfg Config) (*Arena, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	a := &Arena{config: cfg}
	b, err := a.newBlock(0)
	if err != nil {
		return nil, errors.Wrap(ErrArenaNotAllocated, "initial block allocation failed")
	}
	a.first = b
	a.current = b
	return a, nil
}

// Alloc returns size usable bytes at the arena's default alignment. The
// returned slice aliases arena memory and stays valid until the next Temp
// rewind, Clear, or Destroy, whichever comes first.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if a == nil {
		return nil, a.fail(ErrCodeInvalidArena)
	}
	return a.alloc(size, a.config.Alignment)
}

// AllocAligned returns size usable bytes whose address is a multiple of
// alignment, which must be a power of two.
func (a *Arena) AllocAligned(size, alignment int) ([]byte, error) {
	return a.alloc(size, alignment)
}

// Calloc is Alloc followed by zero-filling the region. Blocks are recycled
// without scrubbing, so the zeroing is not redundant.
func (a *Arena) Calloc(size int) ([]byte, error) {
	if a == nil {
		return nil, a.fail(ErrCodeInvalidArena)
	}
	buf, err := a.alloc(size, a.config.Alignment)
	if err != nil {
		return nil, err
	}
	clear(buf)
	return buf, nil
}

func (a *Arena) alloc(size, align int) ([]byte, error) {
	if a == nil {
		return nil, a.fail(ErrCodeInvalidArena)
	}
	if size <= 0 {
		return nil, a.fail(ErrCodeInvalidSize)
	}
	if size > MaxAllocSize {
		return nil, a.fail(ErrCodeAllocationTooLarge)
	}
	if !isPowerOfTwo(align) {
		return nil, a.fail(ErrCodeInvalidAlignment)
	}
	cur := a.current
	if cur == nil {
		return nil, a.fail(ErrCodeInvalidArena)
	}

	// Fast path: the request fits behind the current block's cursor.
	if off, ok := cur.fit(size, align); ok {
		return a.commit(cur, off, size), nil
	}

	// Recycle blocks ahead of current. Anything the scan touches holds
	// only data already invalidated by a rewind or Clear, so resetting
	// the cursor reclaims it without releasing the block.
	for nb := cur.next; nb != nil; nb = nb.next {
		nb.used = 0
		if off, ok := nb.fit(size, align); ok {
			a.current = nb
			return a.commit(nb, off, size), nil
		}
	}

	if a.config.FixedSize {
		return nil, a.fail(ErrCodeOutOfMemory)
	}

	// Grow. Over-reserve by align-1 so the aligned start always fits,
	// whatever the new region's base address turns out to be. A valid but
	// enormous alignment can push that reservation past any size the
	// allocator could plausibly satisfy; refuse before asking it.
	if align-1 > MaxAllocSize-size {
		return nil, a.fail(ErrCodeOutOfMemory)
	}
	nb, err := a.newBlock(size + align - 1)
	if err != nil {
		return nil, err
	}
	nb.next = cur.next
	cur.next = nb
	a.current = nb

	off, _ := nb.fit(size, align)
	return a.commit(nb, off, size), nil
}

// commit advances the block's cursor past the request and accounts the
// request plus its alignment padding against totalUsed.
func (a *Arena) commit(b *block, off, size int) []byte {
	padding := off - b.used
	b.used = off + size
	a.totalUsed += size + padding
	return b.buf[off : off+size : off+size]
}

// Resize grows or shrinks a previous allocation. Only the most recent
// allocation (the tail of the current block) can be resized in place and
// keep its address; any other slice is relocated to a fresh allocation
// with min(len(old), newSize) bytes copied over. Tail-ness is a documented
// precondition for in-place behavior, not something the arena tracks.
func (a *Arena) Resize(old []byte, newSize int) ([]byte, error) {
	if a == nil {
		return nil, a.fail(ErrCodeInvalidArena)
	}
	if len(old) == 0 || newSize <= 0 {
		return nil, a.fail(ErrCodeInvalidSize)
	}
	if newSize > MaxAllocSize {
		return nil, a.fail(ErrCodeAllocationTooLarge)
	}
	cur := a.current
	if cur == nil {
		return nil, a.fail(ErrCodeInvalidArena)
	}
	oldSize := len(old)

	if !cur.tail(old) {
		// Not the most recent allocation; always relocate.
		fresh, err := a.alloc(newSize, a.config.Alignment)
		if err != nil {
			return nil, errors.Wrap(err, "resize relocation")
		}
		copy(fresh, old)
		return fresh, nil
	}

	if newSize > oldSize {
		extra := newSize - oldSize
		if cur.used+extra > len(cur.buf) {
			if a.config.FixedSize {
				return nil, a.fail(ErrCodeOutOfMemory)
			}
			fresh, err := a.alloc(newSize, a.config.Alignment)
			if err != nil {
				return nil, errors.Wrap(err, "resize growth")
			}
			copy(fresh, old)
			// Retract the old tail from its block's bookkeeping.
			cur.used -= oldSize
			a.totalUsed -= oldSize
			return fresh, nil
		}
	}

	// In place: adjust the cursor by the signed delta. Shrinking never
	// returns capacity to other allocations except through the cursor.
	cur.used += newSize - oldSize
	a.totalUsed += newSize - oldSize
	return unsafe.Slice(unsafe.SliceData(old), newSize), nil
}

// Strdup copies s into the arena as a NUL-terminated byte sequence. The
// returned slice is len(s)+1 bytes with a trailing zero byte.
func (a *Arena) Strdup(s string) ([]byte, error) {
	buf, err := a.Alloc(len(s) + 1)
	if err != nil {
		return nil, err
	}
	copy(buf, s)
	buf[len(s)] = 0
	return buf, nil
}

// AllocString copies s into the arena and returns a string aliasing arena
// memory, without a terminator. The empty string allocates nothing.
func (a *Arena) AllocString(s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	buf, err := a.Alloc(len(s))
	if err != nil {
		return "", err
	}
	copy(buf, s)
	return unsafe.String(unsafe.SliceData(buf), len(buf)), nil
}

// Clear resets every block's cursor and moves current back to the first
// block, releasing all logical allocations while keeping every physical
// block (and totalAllocated) for reuse. No memory is released.
func (a *Arena) Clear() {
	if a == nil || a.first == nil {
		return
	}
	for b := a.first; b != nil; b = b.next {
		b.used = 0
	}
	a.current = a.first
	a.totalUsed = 0
}

// Destroy releases every block back to the configured allocator and
// leaves the arena unusable: subsequent allocations fail with
// ErrInvalidArena. Destroying an already-destroyed or nil arena is a
// no-op. Outstanding slices are invalid after Destroy by contract.
func (a *Arena) Destroy() {
	if a == nil || a.first == nil {
		return
	}
	for b := a.first; b != nil; {
		next := b.next
		a.config.Allocator.Release(b.buf)
		b.buf = nil
		b.next = nil
		b = next
	}
	a.first = nil
	a.current = nil
	a.totalAllocated = 0
	a.totalUsed = 0
}
