package tlv

import (
	"github.com/pkg/errors"

	"github.com/rawbytedev/bytecursor"
)

// ChecksumFunc reduces a payload to a single checksum byte. The checksum
// travels as the final byte of a buffer.
type ChecksumFunc func([]byte) byte

var ErrChecksumMismatch = errors.New("tlv: checksum mismatch")

// Sum8 is the truncating sum of all bytes modulo 256.
func Sum8(b []byte) byte {
	var s byte
	for _, c := range b {
		s += c
	}
	return s
}

// Xor8 folds all bytes together with XOR.
func Xor8(b []byte) byte {
	var s byte
	for _, c := range b {
		s ^= c
	}
	return s
}

// AppendChecksum returns data with sum(data) appended as the final byte.
func AppendChecksum(data []byte, sum ChecksumFunc) ([]byte, error) {
	if sum == nil {
		return nil, errors.Wrap(bytecursor.ErrInvalidArgument, "nil checksum function")
	}
	out := make([]byte, 0, len(data)+1)
	out = append(out, data...)
	return append(out, sum(data)), nil
}

// ValidateChecksum checks the final byte of data against sum over the
// rest and returns the payload without it.
func ValidateChecksum(data []byte, sum ChecksumFunc) ([]byte, error) {
	if sum == nil {
		return nil, errors.Wrap(bytecursor.ErrInvalidArgument, "nil checksum function")
	}
	if len(data) < 1 {
		return nil, errors.Wrap(ErrShortFrame, "no checksum byte")
	}
	payload, stored := data[:len(data)-1], data[len(data)-1]
	if computed := sum(payload); computed != stored {
		return nil, errors.Wrapf(ErrChecksumMismatch, "stored %#02x, computed %#02x", stored, computed)
	}
	return bytecursor.SubArray(data, 0, len(data)-1)
}
