package bytecursor

import (
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/bytecursor/internal/common"
)

// ToEnum decodes an enum of underlying integer type E (width taken from E,
// host order) and validates the value against the declared members.
func ToEnum[E integer](buf []byte, pos *int, members []E) (E, error) {
	var zero E
	if len(members) == 0 {
		return zero, errors.Wrap(ErrInvalidArgument, "empty enum member set")
	}
	size := int(unsafe.Sizeof(zero))
	return ExecuteConversion(buf, pos, size, func(b []byte) (E, error) {
		v := E(common.Uint(b, binary.NativeEndian))
		for _, m := range members {
			if m == v {
				return v, nil
			}
		}
		return zero, errors.Wrapf(ErrInvalidArgument, "enum value %v is not one of %v", v, members)
	})
}

// ToEnumOrDefault is ToEnum with the defaulting contract.
func ToEnumOrDefault[E integer](buf []byte, pos *int, members []E, def E, obs ...Observer) E {
	v, err := ToEnum(buf, pos, members)
	return orDefault(v, err, def, obs)
}

// ToEnumOrFirst is ToEnumOrDefault falling back to the first declared
// member (or the zero value when none are declared).
func ToEnumOrFirst[E integer](buf []byte, pos *int, members []E, obs ...Observer) E {
	var def E
	if len(members) > 0 {
		def = members[0]
	}
	return ToEnumOrDefault(buf, pos, members, def, obs...)
}

// ToFlags decodes a flags enum: every set bit must belong to the union of
// the declared flag values.
func ToFlags[E integer](buf []byte, pos *int, members []E) (E, error) {
	var zero E
	if len(members) == 0 {
		return zero, errors.Wrap(ErrInvalidArgument, "empty flags member set")
	}
	var union uint64
	for _, m := range members {
		union |= uint64(m)
	}
	size := int(unsafe.Sizeof(zero))
	return ExecuteConversion(buf, pos, size, func(b []byte) (E, error) {
		raw := common.Uint(b, binary.NativeEndian)
		if size < 8 {
			// compare within the enum's width; union of signed members
			// may carry sign-extended high bits
			raw &= 1<<(size*8) - 1
		}
		if raw&^union != 0 {
			return zero, errors.Wrapf(ErrInvalidArgument, "flags value %#x has bits outside %v", raw, members)
		}
		return E(raw), nil
	})
}

// ToFlagsOrDefault is ToFlags with the defaulting contract.
func ToFlagsOrDefault[E integer](buf []byte, pos *int, members []E, def E, obs ...Observer) E {
	v, err := ToFlags(buf, pos, members)
	return orDefault(v, err, def, obs)
}
