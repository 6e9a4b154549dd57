package bytecursor

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a 2-, 3- or 4-field version number. Absent optional fields
// hold -1: Build == -1 implies Revision == -1.
type Version struct {
	Major    int32
	Minor    int32
	Build    int32
	Revision int32
}

// NewVersion builds a 2-field version.
func NewVersion(major, minor int32) Version {
	return Version{Major: major, Minor: minor, Build: -1, Revision: -1}
}

// NewVersion3 builds a 3-field version.
func NewVersion3(major, minor, build int32) Version {
	return Version{Major: major, Minor: minor, Build: build, Revision: -1}
}

// NewVersion4 builds a 4-field version.
func NewVersion4(major, minor, build, revision int32) Version {
	return Version{Major: major, Minor: minor, Build: build, Revision: revision}
}

// Fields reports how many components are present (2, 3 or 4).
func (v Version) Fields() int {
	switch {
	case v.Build == -1:
		return 2
	case v.Revision == -1:
		return 3
	default:
		return 4
	}
}

func (v Version) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(int64(v.Major), 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatInt(int64(v.Minor), 10))
	if v.Build != -1 {
		sb.WriteByte('.')
		sb.WriteString(strconv.FormatInt(int64(v.Build), 10))
		if v.Revision != -1 {
			sb.WriteByte('.')
			sb.WriteString(strconv.FormatInt(int64(v.Revision), 10))
		}
	}
	return sb.String()
}

func validVersion(v Version) error {
	if v.Major < 0 || v.Minor < 0 {
		return errors.Wrapf(ErrFormat, "negative version field in %d.%d", v.Major, v.Minor)
	}
	if v.Build < -1 || v.Revision < -1 {
		return errors.Wrapf(ErrFormat, "invalid version sentinel (build %d, revision %d)", v.Build, v.Revision)
	}
	if v.Build == -1 && v.Revision != -1 {
		return errors.Wrapf(ErrFormat, "revision %d without build", v.Revision)
	}
	return nil
}

// ParseVersion parses "major.minor[.build[.revision]]".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 4 {
		return Version{}, errors.Wrapf(ErrFormat, "version %q must have 2 to 4 fields", s)
	}
	fields := [4]int32{0, 0, -1, -1}
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil || n < 0 {
			return Version{}, errors.Wrapf(ErrFormat, "version field %q in %q", p, s)
		}
		fields[i] = int32(n)
	}
	return Version{Major: fields[0], Minor: fields[1], Build: fields[2], Revision: fields[3]}, nil
}

// ToVersion decodes the 16-byte binary form: four signed 32-bit fields in
// host order with trailing -1 sentinels for absent build/revision.
func ToVersion(buf []byte, pos *int) (Version, error) {
	return ExecuteConversion(buf, pos, 16, func(b []byte) (Version, error) {
		v := Version{
			Major:    int32(binary.NativeEndian.Uint32(b[0:4])),
			Minor:    int32(binary.NativeEndian.Uint32(b[4:8])),
			Build:    int32(binary.NativeEndian.Uint32(b[8:12])),
			Revision: int32(binary.NativeEndian.Uint32(b[12:16])),
		}
		if err := validVersion(v); err != nil {
			return Version{}, err
		}
		return v, nil
	})
}

func ToVersionOrDefault(buf []byte, pos *int, def Version, obs ...Observer) Version {
	v, err := ToVersion(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToVersionString decodes numberOfBytes bytes as UTF-8 and parses them as
// a version number.
func ToVersionString(buf []byte, pos *int, numberOfBytes int) (Version, error) {
	if pos == nil {
		return Version{}, errors.Wrap(ErrInvalidArgument, "nil position")
	}
	start := *pos
	s, err := ToUTF8String(buf, pos, numberOfBytes)
	if err != nil {
		return Version{}, err
	}
	v, err := ParseVersion(s)
	if err != nil {
		*pos = start
		return Version{}, err
	}
	return v, nil
}

func ToVersionStringOrDefault(buf []byte, pos *int, numberOfBytes int, def Version, obs ...Observer) Version {
	v, err := ToVersionString(buf, pos, numberOfBytes)
	return orDefault(v, err, def, obs)
}
