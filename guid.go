package bytecursor

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ToGUID decodes 16 raw bytes as a UUID in RFC 4122 byte order.
func ToGUID(buf []byte, pos *int) (uuid.UUID, error) {
	return ExecuteConversion(buf, pos, 16, func(b []byte) (uuid.UUID, error) {
		u, err := uuid.FromBytes(b)
		if err != nil {
			return uuid.Nil, errors.Wrapf(ErrFormat, "guid: %v", err)
		}
		return u, nil
	})
}

func ToGUIDOrDefault(buf []byte, pos *int, def uuid.UUID, obs ...Observer) uuid.UUID {
	v, err := ToGUID(buf, pos)
	return orDefault(v, err, def, obs)
}
