package arena

import "errors"

// ErrorCode identifies the last failure recorded by an arena. Codes are
// sticky: a failing operation overwrites the previous code, a successful
// one never clears it. Check the error returned by the operation itself
// for success; consult LastError only after observing a failure.
type ErrorCode uint8

const (
	ErrCodeNone ErrorCode = iota
	ErrCodeOutOfMemory
	ErrCodeInvalidAlignment
	ErrCodeInvalidSize
	ErrCodeInvalidArena
	ErrCodeArenaNotAllocated
	ErrCodeAllocationTooLarge
)

// Sentinel errors returned by fallible operations. Wrapped values satisfy
// errors.Is against these.
var (
	ErrOutOfMemory        = errors.New("arena: out of memory")
	ErrInvalidAlignment   = errors.New("arena: invalid alignment")
	ErrInvalidSize        = errors.New("arena: invalid size")
	ErrInvalidArena       = errors.New("arena: invalid arena")
	ErrArenaNotAllocated  = errors.New("arena: arena not allocated")
	ErrAllocationTooLarge = errors.New("arena: allocation too large")
)

var codeErrs = [...]error{
	ErrCodeNone:               nil,
	ErrCodeOutOfMemory:        ErrOutOfMemory,
	ErrCodeInvalidAlignment:   ErrInvalidAlignment,
	ErrCodeInvalidSize:        ErrInvalidSize,
	ErrCodeInvalidArena:       ErrInvalidArena,
	ErrCodeArenaNotAllocated:  ErrArenaNotAllocated,
	ErrCodeAllocationTooLarge: ErrAllocationTooLarge,
}

// Err returns the sentinel error corresponding to the code, or nil for
// ErrCodeNone.
func (c ErrorCode) Err() error {
	if int(c) < len(codeErrs) {
		return codeErrs[c]
	}
	return ErrInvalidArena
}

// ErrorString returns a human-readable description of an error code.
func ErrorString(code ErrorCode) string {
	switch code {
	case ErrCodeNone:
		return "no error"
	case ErrCodeOutOfMemory:
		return "out of memory"
	case ErrCodeInvalidAlignment:
		return "invalid alignment"
	case ErrCodeInvalidSize:
		return "invalid size"
	case ErrCodeInvalidArena:
		return "invalid arena"
	case ErrCodeArenaNotAllocated:
		return "failed to allocate arena"
	case ErrCodeAllocationTooLarge:
		return "allocation too large"
	default:
		return "unknown error"
	}
}

func (c ErrorCode) String() string {
	return ErrorString(c)
}

// fail records code as the arena's sticky last error and returns the
// matching sentinel.
func (a *Arena) fail(code ErrorCode) error {
	if a != nil {
		a.lastErr = code
	}
	return code.Err()
}

// LastError returns the most recent failure code recorded by the arena.
// It is never reset by a successful operation.
func (a *Arena) LastError() ErrorCode {
	if a == nil {
		return ErrCodeInvalidArena
	}
	return a.lastErr
}
