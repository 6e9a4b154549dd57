package common

import (
	"encoding/binary"
	"strconv"
)

// IsFixedWidth reports whether n is a supported fixed integer width.
func IsFixedWidth(n int) bool {
	switch n {
	case 1, 2, 4, 8:
		return true
	default:
		return false
	}
}

// Uint decodes b as an unsigned integer of width len(b) using order.
// b must be 1, 2, 4 or 8 bytes long.
func Uint(b []byte, order binary.ByteOrder) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	default:
		return 0
	}
}

// AppendUint appends x to dst as a width-byte integer in the given order.
// Unsupported widths append nothing; callers validate width first.
func AppendUint(dst []byte, x uint64, width int, order binary.AppendByteOrder) []byte {
	switch width {
	case 1:
		return append(dst, byte(x))
	case 2:
		return order.AppendUint16(dst, uint16(x))
	case 4:
		return order.AppendUint32(dst, uint32(x))
	case 8:
		return order.AppendUint64(dst, x)
	default:
		return dst
	}
}

// DebugString renders b as comma-separated decimal bytes, e.g. "1,2,255".
func DebugString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*4)
	for i, c := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(c), 10)
	}
	return string(out)
}
