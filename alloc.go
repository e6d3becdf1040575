package arena

import "unsafe"

// Alloc allocates a zeroed T inside the arena, aligned to T's natural
// alignment. The pointer stays valid until the arena is rewound past it,
// cleared, or destroyed. Zero-size types take no arena space.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	buf, err := a.AllocAligned(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(buf)
	return (*T)(unsafe.Pointer(unsafe.SliceData(buf))), nil
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the
// arena, aligned to T's natural alignment.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, a.fail(ErrCodeInvalidSize)
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n), nil
	}
	if n > MaxAllocSize/elemSize {
		return nil, a.fail(ErrCodeAllocationTooLarge)
	}
	buf, err := a.AllocAligned(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(buf)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n), nil
}
