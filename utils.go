package bytecursor

import (
	"bytes"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/bytecursor/internal/common"
)

// Leaf helpers for bounds-safe buffer manipulation; the protocol layer and
// the decoders lean on these.

// IndexOfPattern returns the offset of the first occurrence of pattern in
// buf at or after start, or -1.
func IndexOfPattern(buf, pattern []byte, start int) int {
	if start < 0 || len(pattern) == 0 || start >= len(buf) {
		return -1
	}
	i := bytes.Index(buf[start:], pattern)
	if i < 0 {
		return -1
	}
	return start + i
}

// TrimStart drops leading occurrences of v.
func TrimStart(buf []byte, v byte) []byte {
	i := 0
	for i < len(buf) && buf[i] == v {
		i++
	}
	return buf[i:]
}

// TrimEnd drops trailing occurrences of v.
func TrimEnd(buf []byte, v byte) []byte {
	n := len(buf)
	for n > 0 && buf[n-1] == v {
		n--
	}
	return buf[:n]
}

// PadLeft left-pads buf with pad up to size. Buffers already at least
// size bytes long come back unchanged.
func PadLeft(buf []byte, size int, pad byte) []byte {
	if len(buf) >= size {
		return buf
	}
	out := make([]byte, size)
	for i := 0; i < size-len(buf); i++ {
		out[i] = pad
	}
	copy(out[size-len(buf):], buf)
	return out
}

// PadRight right-pads buf with pad up to size.
func PadRight(buf []byte, size int, pad byte) []byte {
	if len(buf) >= size {
		return buf
	}
	out := make([]byte, size)
	copy(out, buf)
	for i := len(buf); i < size; i++ {
		out[i] = pad
	}
	return out
}

// SubArray copies length bytes starting at start. Bounds are checked; the
// result never aliases buf.
func SubArray(buf []byte, start, length int) ([]byte, error) {
	if length < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative length %d", length)
	}
	if start < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "negative start %d", start)
	}
	if start > len(buf) || length > len(buf)-start {
		return nil, errors.Wrapf(ErrOutOfRange, "need %d bytes at position %d, buffer holds %d", length, start, len(buf))
	}
	out := make([]byte, length)
	copy(out, buf[start:start+length])
	return out, nil
}

// Bit addressing is LSB-first within each byte: bit 0 is the lowest bit of
// buf[0], bit 8 the lowest bit of buf[1].

func bitIndex(buf []byte, bit int) (int, byte, error) {
	if bit < 0 || bit >= len(buf)*8 {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "bit %d in %d-byte buffer", bit, len(buf))
	}
	return bit / 8, 1 << (bit % 8), nil
}

// GetBit reports whether the given bit is set.
func GetBit(buf []byte, bit int) (bool, error) {
	i, mask, err := bitIndex(buf, bit)
	if err != nil {
		return false, err
	}
	return buf[i]&mask != 0, nil
}

// SetBit sets the given bit in place.
func SetBit(buf []byte, bit int) error {
	i, mask, err := bitIndex(buf, bit)
	if err != nil {
		return err
	}
	buf[i] |= mask
	return nil
}

// ClearBit clears the given bit in place.
func ClearBit(buf []byte, bit int) error {
	i, mask, err := bitIndex(buf, bit)
	if err != nil {
		return err
	}
	buf[i] &^= mask
	return nil
}

// ToggleBit flips the given bit in place.
func ToggleBit(buf []byte, bit int) error {
	i, mask, err := bitIndex(buf, bit)
	if err != nil {
		return err
	}
	buf[i] ^= mask
	return nil
}

// Equal is byte-wise structural equality.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// SameBacking reports whether a and b are the same slice over the same
// backing array, as opposed to merely holding equal bytes.
func SameBacking(a, b []byte) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

// ToDebugString renders buf as comma-separated decimal bytes.
func ToDebugString(buf []byte) string {
	return common.DebugString(buf)
}
