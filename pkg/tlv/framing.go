package tlv

import (
	"math"

	"github.com/pkg/errors"

	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/pkg/builder"
)

// DefaultFrameMarker delimits simple frames unless the caller picks
// something else.
const DefaultFrameMarker byte = 0x7E

var (
	ErrShortFrame      = errors.New("tlv: frame too short")
	ErrMarkerMismatch  = errors.New("tlv: frame marker mismatch")
	ErrLengthMismatch  = errors.New("tlv: frame length mismatch")
	ErrPayloadTooLarge = errors.New("tlv: payload exceeds 65535 bytes")
)

// AddFrame wraps data between a start and an end marker byte.
func AddFrame(data []byte, start, end byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, start)
	out = append(out, data...)
	return append(out, end)
}

// AddSimpleFrame is AddFrame with the default 0x7E markers.
func AddSimpleFrame(data []byte) []byte {
	return AddFrame(data, DefaultFrameMarker, DefaultFrameMarker)
}

// RemoveFrame validates both markers and strips them, returning a copy of
// the payload.
func RemoveFrame(data []byte, start, end byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, errors.Wrapf(ErrShortFrame, "%d bytes, need at least 2", len(data))
	}
	if data[0] != start {
		return nil, errors.Wrapf(ErrMarkerMismatch, "start marker %#02x, want %#02x", data[0], start)
	}
	if data[len(data)-1] != end {
		return nil, errors.Wrapf(ErrMarkerMismatch, "end marker %#02x, want %#02x", data[len(data)-1], end)
	}
	return bytecursor.SubArray(data, 1, len(data)-2)
}

// RemoveSimpleFrame is RemoveFrame with the default 0x7E markers.
func RemoveSimpleFrame(data []byte) ([]byte, error) {
	return RemoveFrame(data, DefaultFrameMarker, DefaultFrameMarker)
}

// AddLengthPrefixedFrame emits a 2-byte host-order length followed by
// data.
func AddLengthPrefixedFrame(data []byte) ([]byte, error) {
	if len(data) > math.MaxUint16 {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "payload holds %d bytes", len(data))
	}
	return builder.WithCapacity(2 + len(data)).
		AppendUint16(uint16(len(data))).
		AppendBytes(data).
		ToBytes()
}

// RemoveLengthPrefixedFrame reads the 2-byte length and returns the
// payload, which must fill the remainder of the frame exactly.
func RemoveLengthPrefixedFrame(data []byte) ([]byte, error) {
	pos := 0
	length, err := bytecursor.ToUint16(data, &pos)
	if err != nil {
		return nil, errors.Wrapf(ErrShortFrame, "length prefix: %v", err)
	}
	if len(data)-pos != int(length) {
		return nil, errors.Wrapf(ErrLengthMismatch, "prefix says %d bytes, frame carries %d", length, len(data)-pos)
	}
	return bytecursor.SubArray(data, pos, int(length))
}
