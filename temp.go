package arena

// Temp is a checkpoint of an arena's allocation state. Ending it rewinds
// the arena, invalidating every allocation made since TempBegin. Scopes
// nest as long as they end in reverse order of opening; ending an outer
// scope subsumes any still-open inner ones. A Temp must not be reused
// after End.
type Temp struct {
	arena     *Arena
	block     *block
	used      int
	totalUsed int
}

// TempBegin snapshots the current block, its cursor, and the arena's used
// total. Allocations remain possible while the scope is open.
func (a *Arena) TempBegin() Temp {
	if a == nil || a.current == nil {
		return Temp{arena: a}
	}
	return Temp{
		arena:     a,
		block:     a.current,
		used:      a.current.used,
		totalUsed: a.totalUsed,
	}
}

// End rewinds the arena to the checkpoint: current moves back to the
// checkpointed block, its cursor and the used total are restored. Blocks
// created or advanced past since the checkpoint stay in the chain as
// scratch; the allocation scan reclaims their capacity lazily. Ending a
// checkpoint with no arena or no captured block is a no-op.
func (t Temp) End() {
	a := t.arena
	if a == nil || t.block == nil {
		return
	}
	a.current = t.block
	t.block.used = t.used
	a.totalUsed = t.totalUsed
}
