package tlv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleFrameSymmetry(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x41}, {0x7E, 0x7E}, make([]byte, 300)} {
		framed := AddSimpleFrame(data)
		require.Len(t, framed, len(data)+2)
		assert.Equal(t, DefaultFrameMarker, framed[0])
		assert.Equal(t, DefaultFrameMarker, framed[len(framed)-1])

		back, err := RemoveSimpleFrame(framed)
		require.NoError(t, err)
		assert.Equal(t, append([]byte{}, data...), back)
	}
}

func TestRemoveFrameMarkerMismatch(t *testing.T) {
	framed := AddFrame([]byte{1}, 0x02, 0x03)

	_, err := RemoveFrame(framed, 0x7E, 0x03)
	require.ErrorIs(t, err, ErrMarkerMismatch)
	assert.Contains(t, err.Error(), "0x02")
	assert.Contains(t, err.Error(), "0x7e")

	_, err = RemoveFrame(framed, 0x02, 0x7E)
	require.ErrorIs(t, err, ErrMarkerMismatch)

	_, err = RemoveFrame([]byte{0x7E}, 0x7E, 0x7E)
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestLengthPrefixedFrame(t *testing.T) {
	framed, err := AddLengthPrefixedFrame([]byte{0x41, 0x42, 0x43})
	require.NoError(t, err)
	want := binary.NativeEndian.AppendUint16(nil, 3)
	want = append(want, 0x41, 0x42, 0x43)
	assert.Equal(t, want, framed)

	back, err := RemoveLengthPrefixedFrame(framed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x42, 0x43}, back)
}

func TestLengthPrefixedFrameEmptyPayload(t *testing.T) {
	framed, err := AddLengthPrefixedFrame(nil)
	require.NoError(t, err)
	require.Len(t, framed, 2)

	back, err := RemoveLengthPrefixedFrame(framed)
	require.NoError(t, err)
	assert.Empty(t, back)
}

func TestLengthPrefixedFrameErrors(t *testing.T) {
	_, err := AddLengthPrefixedFrame(make([]byte, 65536))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	_, err = RemoveLengthPrefixedFrame([]byte{0x01})
	assert.ErrorIs(t, err, ErrShortFrame)

	// prefix says 3 bytes but only 2 follow
	buf := binary.NativeEndian.AppendUint16(nil, 3)
	buf = append(buf, 1, 2)
	_, err = RemoveLengthPrefixedFrame(buf)
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "prefix says 3 bytes, frame carries 2")

	// trailing bytes beyond the declared length are rejected too
	buf = binary.NativeEndian.AppendUint16(nil, 1)
	buf = append(buf, 1, 2)
	_, err = RemoveLengthPrefixedFrame(buf)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestChecksums(t *testing.T) {
	assert.Equal(t, byte(6), Sum8([]byte{1, 2, 3}))
	assert.Equal(t, byte(0), Sum8([]byte{0xFF, 1}), "sum truncates modulo 256")
	assert.Equal(t, byte(0), Xor8([]byte{0xAA, 0xAA}))
	assert.Equal(t, byte(0xAA), Xor8([]byte{0xAA}))
	assert.Equal(t, byte(0), Sum8(nil))
}

func TestChecksumAppendValidate(t *testing.T) {
	payload := []byte{0x10, 0x20, 0x30}

	for _, sum := range []ChecksumFunc{Sum8, Xor8} {
		buf, err := AppendChecksum(payload, sum)
		require.NoError(t, err)
		require.Len(t, buf, len(payload)+1)

		back, err := ValidateChecksum(buf, sum)
		require.NoError(t, err)
		assert.Equal(t, payload, back)

		buf[0] ^= 0xFF
		_, err = ValidateChecksum(buf, sum)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
		buf[0] ^= 0xFF
	}
}

func TestChecksumEdgeCases(t *testing.T) {
	_, err := ValidateChecksum(nil, Sum8)
	assert.ErrorIs(t, err, ErrShortFrame)

	_, err = AppendChecksum([]byte{1}, nil)
	assert.Error(t, err)

	// a lone checksum byte over an empty payload
	buf, err := AppendChecksum(nil, Sum8)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, buf)
	back, err := ValidateChecksum(buf, Sum8)
	require.NoError(t, err)
	assert.Empty(t, back)
}
