package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeNone, "no error"},
		{ErrCodeOutOfMemory, "out of memory"},
		{ErrCodeInvalidAlignment, "invalid alignment"},
		{ErrCodeInvalidSize, "invalid size"},
		{ErrCodeInvalidArena, "invalid arena"},
		{ErrCodeArenaNotAllocated, "failed to allocate arena"},
		{ErrCodeAllocationTooLarge, "allocation too large"},
		{ErrorCode(200), "unknown error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorString(tt.code))
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestErrorCodeErr(t *testing.T) {
	assert.NoError(t, ErrCodeNone.Err())
	assert.Equal(t, ErrOutOfMemory, ErrCodeOutOfMemory.Err())
	assert.Equal(t, ErrInvalidSize, ErrCodeInvalidSize.Err())
}

func TestLastErrorSticky(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	defer a.Destroy()

	assert.Equal(t, ErrCodeNone, a.LastError())

	_, err = a.Alloc(0)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidSize, a.LastError())

	// Success does not clear the code.
	_, err = a.Alloc(64)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeInvalidSize, a.LastError())

	// The next failure overwrites it.
	_, err = a.AllocAligned(64, 7)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidAlignment, a.LastError())
}

func TestConfigErrorsWrapped(t *testing.T) {
	_, err := NewWithConfig(Config{BlockSize: 1024, Alignment: 12})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAlignment))
	assert.Contains(t, err.Error(), "power of two")

	_, err = NewWithConfig(Config{BlockSize: -3, Alignment: 8})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}
