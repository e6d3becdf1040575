package arena

import "unsafe"

// MaxAllocSize bounds a single request (1 GiB). Larger requests fail with
// ErrAllocationTooLarge.
const MaxAllocSize = 1 << 30

// pageSize is the granularity oversized blocks are rounded up to.
const pageSize = 4096

// block is one contiguous region in an arena's chain. The chain is singly
// linked; blocks are inserted after the current block and never reordered.
type block struct {
	buf  []byte
	used int
	next *block
}

// alignedOffset returns the smallest offset >= b.used whose absolute
// address is aligned. Alignment is computed on addresses, not offsets, so
// the guarantee holds regardless of how the backing region is based.
func (b *block) alignedOffset(align int) int {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
	return int(alignForward(base+uintptr(b.used), uintptr(align)) - base)
}

// fit reports whether a request of size bytes at the given alignment fits
// in the block's remaining capacity, and at which offset.
func (b *block) fit(size, align int) (int, bool) {
	off := b.alignedOffset(align)
	if off+size > len(b.buf) {
		return 0, false
	}
	return off, true
}

// tail reports whether p is the block's most recent allocation, i.e. its
// region ends exactly at the used cursor.
func (b *block) tail(p []byte) bool {
	if len(p) == 0 || b.used < len(p) {
		return false
	}
	return unsafe.SliceData(p) == &b.buf[b.used-len(p)]
}

// newBlock acquires a region of at least minSize bytes from the configured
// allocator and links nothing; the caller splices it into the chain.
// Requests above the default block size are rounded up to a page multiple
// so single oversized requests do not under-allocate.
func (a *Arena) newBlock(minSize int) (*block, error) {
	size := a.config.BlockSize
	if minSize > size {
		size = alignForward(minSize, pageSize)
	}

	buf := a.config.Allocator.Acquire(size)
	if buf == nil || len(buf) < size {
		return nil, a.fail(ErrCodeOutOfMemory)
	}

	a.totalAllocated += len(buf)
	return &block{buf: buf}, nil
}
