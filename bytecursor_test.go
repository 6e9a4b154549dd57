package bytecursor

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func TestExecuteConversionAdvancesCursor(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	pos := 1
	v, err := ExecuteConversion(buf, &pos, 3, identity)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4}, v)
	assert.Equal(t, 4, pos)
}

func TestExecuteConversionExactEnd(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	pos := 2
	_, err := ExecuteConversion(buf, &pos, 2, identity)
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
}

func TestExecuteConversionOneByteShort(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	pos := 3
	_, err := ExecuteConversion(buf, &pos, 2, identity)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 3, pos, "failed decode must not advance the cursor")
	assert.Contains(t, err.Error(), "need 2 bytes at position 3, buffer holds 4")
}

func TestExecuteConversionHugePosition(t *testing.T) {
	// pos+size would wrap past MaxInt; the bounds check must still fail cleanly
	buf := []byte{1, 2, 3, 4}
	pos := math.MaxInt - 2
	_, err := ExecuteConversion(buf, &pos, 8, identity)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, math.MaxInt-2, pos)

	pos = math.MaxInt - 2
	v := ExecuteConversionOrDefault(buf, &pos, 8, identity, []byte{9})
	assert.Equal(t, []byte{9}, v)
	assert.Equal(t, math.MaxInt-2, pos)
}

func TestExecuteConversionRejectsBadArgs(t *testing.T) {
	buf := []byte{1, 2}
	pos := 0

	_, err := ExecuteConversion(buf, &pos, 0, identity)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ExecuteConversion(buf, &pos, -3, identity)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ExecuteConversion(buf, nil, 1, identity)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ExecuteConversion[[]byte](buf, &pos, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	neg := -1
	_, err = ExecuteConversion(buf, &neg, 1, identity)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, -1, neg)
	assert.Equal(t, 0, pos)
}

func TestExecuteConversionConverterErrorKeepsCursor(t *testing.T) {
	boom := errors.New("boom")
	pos := 0
	_, err := ExecuteConversion([]byte{1, 2}, &pos, 2, func([]byte) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, pos)
}

func TestExecuteConversionOrDefault(t *testing.T) {
	pos := 0
	var seen error
	obs := func(err error) { seen = err }

	v := ExecuteConversionOrDefault([]byte{7}, &pos, 4, identity, []byte{9}, obs)
	assert.Equal(t, []byte{9}, v)
	assert.Equal(t, 0, pos)
	require.Error(t, seen)
	assert.ErrorIs(t, seen, ErrOutOfRange)

	seen = nil
	v = ExecuteConversionOrDefault([]byte{7}, &pos, 1, identity, nil, obs)
	assert.Equal(t, []byte{7}, v)
	assert.Equal(t, 1, pos)
	assert.NoError(t, seen)
}

func TestAt(t *testing.T) {
	buf := []byte{0, 0, 0xAB, 0}
	v, err := At(ToByte, buf, 2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), v)

	_, err = At(ToByte, buf, 9)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, byte(0xAB), AtOrDefault(ToByte, buf, 2, 0))
	assert.Equal(t, byte(0x55), AtOrDefault(ToByte, buf, 9, 0x55))
}
