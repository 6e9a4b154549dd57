// Package bytecursor decodes typed values out of byte buffers at an
// explicit cursor position. Every decoder funnels through a single
// conversion primitive that validates bounds, extracts a slice, converts
// and advances the cursor; a failed decode never moves the cursor.
//
// Each decoder comes in a strict form returning (T, error) and an
// OrDefault form that never fails and substitutes a fallback value.
// Subpackages build the inverse direction (pkg/builder) and a small
// TLV/framing protocol layer (pkg/tlv) on top of the same discipline.
package bytecursor

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("bytecursor: invalid argument")
	ErrOutOfRange      = errors.New("bytecursor: out of range")
	ErrFormat          = errors.New("bytecursor: malformed value")
	ErrSizeLimit       = errors.New("bytecursor: size limit exceeded")
)

// Observer receives failures swallowed by OrDefault decoders. Observers
// must not retain err beyond the call.
type Observer func(err error)

// ExecuteConversion reads size bytes from buf at *pos, converts them and
// advances *pos by size. On any failure the cursor is left untouched and
// the zero value is returned with a wrapped ErrInvalidArgument or
// ErrOutOfRange (or the converter's own error).
func ExecuteConversion[T any](buf []byte, pos *int, size int, convert func([]byte) (T, error)) (T, error) {
	var zero T
	if convert == nil {
		return zero, errors.Wrap(ErrInvalidArgument, "nil converter")
	}
	if size <= 0 {
		return zero, errors.Wrapf(ErrInvalidArgument, "conversion size %d", size)
	}
	if pos == nil {
		return zero, errors.Wrap(ErrInvalidArgument, "nil position")
	}
	if *pos < 0 {
		return zero, errors.Wrapf(ErrOutOfRange, "negative position %d", *pos)
	}
	// subtraction form so *pos+size cannot overflow for huge positions
	if *pos > len(buf) || size > len(buf)-*pos {
		return zero, errors.Wrapf(ErrOutOfRange, "need %d bytes at position %d, buffer holds %d", size, *pos, len(buf))
	}
	v, err := convert(buf[*pos : *pos+size])
	if err != nil {
		return zero, err
	}
	*pos += size
	return v, nil
}

// ExecuteConversionOrDefault is ExecuteConversion with the error swallowed:
// on failure def is returned, the cursor stays where it was, and any
// observers are invoked with the failure.
func ExecuteConversionOrDefault[T any](buf []byte, pos *int, size int, convert func([]byte) (T, error), def T, obs ...Observer) T {
	v, err := ExecuteConversion(buf, pos, size, convert)
	if err != nil {
		notify(obs, err)
		return def
	}
	return v
}

func notify(obs []Observer, err error) {
	for _, o := range obs {
		if o != nil {
			o(err)
		}
	}
}

// orDefault folds a strict decode result into the defaulting contract.
func orDefault[T any](v T, err error, def T, obs []Observer) T {
	if err != nil {
		notify(obs, err)
		return def
	}
	return v
}

// At runs a two-argument cursor decoder once from a fixed offset using a
// throwaway cursor:
//
//	v, err := bytecursor.At(bytecursor.ToInt32, buf, 4)
func At[T any](decode func([]byte, *int) (T, error), buf []byte, offset int) (T, error) {
	pos := offset
	return decode(buf, &pos)
}

// AtOrDefault is At with the defaulting contract.
func AtOrDefault[T any](decode func([]byte, *int) (T, error), buf []byte, offset int, def T, obs ...Observer) T {
	v, err := At(decode, buf, offset)
	return orDefault(v, err, def, obs)
}
