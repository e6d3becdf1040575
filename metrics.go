package arena

// TotalAllocated returns the sum of all block sizes ever created for the
// arena. It only grows, and resets to zero on Destroy.
func (a *Arena) TotalAllocated() int {
	if a == nil {
		return 0
	}
	return a.totalAllocated
}

// TotalUsed returns the logically live bytes across blocks, including
// alignment padding. Clear and Destroy reset it to zero.
func (a *Arena) TotalUsed() int {
	if a == nil {
		return 0
	}
	return a.totalUsed
}

// Utilization returns TotalUsed divided by TotalAllocated, in [0.0, 1.0],
// or 0.0 when nothing has been allocated.
func (a *Arena) Utilization() float64 {
	if a == nil || a.totalAllocated == 0 {
		return 0
	}
	return float64(a.totalUsed) / float64(a.totalAllocated)
}

// NumBlocks returns the number of blocks currently in the chain.
func (a *Arena) NumBlocks() int {
	if a == nil {
		return 0
	}
	n := 0
	for b := a.first; b != nil; b = b.next {
		n++
	}
	return n
}

// BlockSize returns the configured default growth unit.
func (a *Arena) BlockSize() int {
	if a == nil {
		return 0
	}
	return a.config.BlockSize
}

// Metrics is a snapshot of arena statistics.
type Metrics struct {
	TotalAllocated int     // bytes held in blocks
	TotalUsed      int     // live bytes, padding included
	NumBlocks      int     // blocks in the chain
	BlockSize      int     // configured growth unit
	Utilization    float64 // TotalUsed / TotalAllocated, 0.0-1.0
}

// Metrics returns a snapshot of the arena's statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		TotalAllocated: a.TotalAllocated(),
		TotalUsed:      a.TotalUsed(),
		NumBlocks:      a.NumBlocks(),
		BlockSize:      a.BlockSize(),
		Utilization:    a.Utilization(),
	}
}
