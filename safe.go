package arena

import "sync"

// SafeArena is a mutex-guarded wrapper around Arena for concurrent use.
// Every state-mutating operation holds the lock for its full duration, so
// each allocation's read-modify-write is atomic with respect to other
// callers and every caller receives a disjoint region. The statistics
// accessors do not lock: they are best-effort snapshots that may race with
// concurrent mutators, and callers needing consistency must serialize
// externally.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe creates a thread-safe arena with DefaultConfig.
func NewSafe() (*SafeArena, error) {
	return NewSafeWithConfig(DefaultConfig())
}

// NewSafeWithConfig creates a thread-safe arena from cfg.
func NewSafeWithConfig(cfg Config) (*SafeArena, error) {
	a, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Alloc allocates size bytes at the arena's default alignment.
func (s *SafeArena) Alloc(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size)
}

// AllocAligned allocates size bytes at the given power-of-two alignment.
func (s *SafeArena) AllocAligned(size, alignment int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(size, alignment)
}

// Calloc allocates size zeroed bytes.
func (s *SafeArena) Calloc(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Calloc(size)
}

// Resize grows or shrinks a previous allocation; see Arena.Resize.
func (s *SafeArena) Resize(old []byte, newSize int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Resize(old, newSize)
}

// Strdup copies s into the arena with a trailing NUL byte.
func (s *SafeArena) Strdup(str string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Strdup(str)
}

// AllocString copies str into the arena and returns a string aliasing
// arena memory.
func (s *SafeArena) AllocString(str string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocString(str)
}

// SafeTemp is a checkpoint on a SafeArena. End acquires the arena lock
// before rewinding.
type SafeTemp struct {
	s *SafeArena
	t Temp
}

// TempBegin snapshots the arena state; see Arena.TempBegin.
func (s *SafeArena) TempBegin() SafeTemp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SafeTemp{s: s, t: s.a.TempBegin()}
}

// End rewinds the arena to the checkpoint; see Temp.End.
func (t SafeTemp) End() {
	if t.s == nil {
		return
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.t.End()
}

// Clear releases all logical allocations while keeping every block.
func (s *SafeArena) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Destroy releases every block and makes the arena unusable.
func (s *SafeArena) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Destroy()
}

// Unsynchronized snapshot accessors.

// LastError returns the sticky error code without locking.
func (s *SafeArena) LastError() ErrorCode { return s.a.LastError() }

// TotalAllocated returns the bytes held in blocks without locking.
func (s *SafeArena) TotalAllocated() int { return s.a.TotalAllocated() }

// TotalUsed returns the live byte count without locking.
func (s *SafeArena) TotalUsed() int { return s.a.TotalUsed() }

// Utilization returns TotalUsed/TotalAllocated without locking.
func (s *SafeArena) Utilization() float64 { return s.a.Utilization() }

// NumBlocks returns the chain length without locking.
func (s *SafeArena) NumBlocks() int { return s.a.NumBlocks() }

// Metrics returns a best-effort statistics snapshot without locking.
func (s *SafeArena) Metrics() Metrics { return s.a.Metrics() }

// Generic allocation helpers for SafeArena.

// SafeAlloc allocates a zeroed T inside the arena under the lock.
func SafeAlloc[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice allocates a zeroed slice of n elements of T under the lock.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}
