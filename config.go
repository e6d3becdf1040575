package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// DefaultBlockSize is the default growth unit for new arenas (64 KiB).
const DefaultBlockSize = 1 << 16

// DefaultAlignment is the default allocation alignment (pointer width).
const DefaultAlignment = int(unsafe.Sizeof(uintptr(0)))

// Allocator is the low-level memory source an arena draws its blocks from.
// Acquire returns a region of at least size bytes, or nil when the source
// is exhausted. Release returns a region previously handed out by Acquire;
// it is called once per region during Destroy.
type Allocator interface {
	Acquire(size int) []byte
	Release(buf []byte)
}

// heapAllocator is the default Allocator backed by the Go heap. Release is
// a no-op; the garbage collector reclaims dropped regions.
type heapAllocator struct{}

func (heapAllocator) Acquire(size int) []byte { return make([]byte, size) }
func (heapAllocator) Release([]byte)          {}

// Config controls an arena's growth and alignment policy. It is immutable
// after construction.
type Config struct {
	// BlockSize is the default size of each block, in bytes. Must be
	// positive. Oversized single requests get a larger block.
	BlockSize int

	// Alignment is the default alignment applied by Alloc. Must be a
	// power of two.
	Alignment int

	// FixedSize disallows creating blocks beyond those present at
	// construction; exhaustion is then terminal for the arena.
	FixedSize bool

	// Allocator is the low-level memory source. Nil selects the Go heap.
	Allocator Allocator
}

// DefaultConfig returns the configuration used by New: 64 KiB growable
// blocks, pointer-width alignment, heap-backed.
func DefaultConfig() Config {
	return Config{
		BlockSize: DefaultBlockSize,
		Alignment: DefaultAlignment,
		Allocator: heapAllocator{},
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Alignment <= 0 || !isPowerOfTwo(cfg.Alignment) {
		return errors.Wrapf(ErrInvalidAlignment, "alignment %d must be a power of two", cfg.Alignment)
	}
	if cfg.BlockSize <= 0 {
		return errors.Wrapf(ErrInvalidSize, "block size %d must be positive", cfg.BlockSize)
	}
	if cfg.Allocator == nil {
		cfg.Allocator = heapAllocator{}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// alignForward rounds v up to the next multiple of align, which must be a
// power of two.
func alignForward[T ~int | ~uintptr](v, align T) T {
	mask := align - 1
	return (v + mask) &^ mask
}
