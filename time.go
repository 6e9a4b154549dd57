package bytecursor

import (
	"encoding/binary"
	"time"
)

// Tick layout: times travel as 100-nanosecond ticks counted from
// 0001-01-01T00:00:00, with the clock kind packed into the top two bits of
// the 8-byte binary form (0 unspecified, 1 UTC, 2 local).
const (
	TicksPerSecond = 10_000_000
	TicksPerMinute = 60 * TicksPerSecond

	// UnixEpochTicks is 1970-01-01 expressed in ticks since year 1.
	UnixEpochTicks int64 = 621_355_968_000_000_000

	ticksMask uint64 = 0x3FFF_FFFF_FFFF_FFFF

	kindUnspecified = 0
	kindUTC         = 1
	kindLocal       = 2
)

// TimeToTicks converts an instant to ticks since year 1. Sub-100ns
// precision is truncated.
func TimeToTicks(t time.Time) int64 {
	return t.Unix()*TicksPerSecond + int64(t.Nanosecond())/100 + UnixEpochTicks
}

// TimeFromTicks converts ticks since year 1 back to an instant in loc.
func TimeFromTicks(ticks int64, loc *time.Location) time.Time {
	unixTicks := ticks - UnixEpochTicks
	sec := unixTicks / TicksPerSecond
	nsec := (unixTicks % TicksPerSecond) * 100
	return time.Unix(sec, nsec).In(loc)
}

// TimeToBinary packs t into the 8-byte tick+kind form. UTC instants carry
// the UTC kind, everything else the local kind.
func TimeToBinary(t time.Time) uint64 {
	kind := uint64(kindLocal)
	if t.Location() == time.UTC {
		kind = kindUTC
	}
	return uint64(TimeToTicks(t))&ticksMask | kind<<62
}

// TimeFromBinary unpacks the 8-byte tick+kind form.
func TimeFromBinary(v uint64) time.Time {
	ticks := int64(v & ticksMask)
	loc := time.UTC
	if v>>62 == kindLocal {
		loc = time.Local
	}
	return TimeFromTicks(ticks, loc)
}

// ToDateTime decodes the 8-byte tick+kind binary form.
func ToDateTime(buf []byte, pos *int) (time.Time, error) {
	return ExecuteConversion(buf, pos, 8, func(b []byte) (time.Time, error) {
		return TimeFromBinary(binary.NativeEndian.Uint64(b)), nil
	})
}

func ToDateTimeOrDefault(buf []byte, pos *int, def time.Time, obs ...Observer) time.Time {
	v, err := ToDateTime(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToTimeSpan decodes 8 bytes of signed ticks as a duration.
func ToTimeSpan(buf []byte, pos *int) (time.Duration, error) {
	return ExecuteConversion(buf, pos, 8, func(b []byte) (time.Duration, error) {
		return time.Duration(int64(binary.NativeEndian.Uint64(b))) * 100, nil
	})
}

func ToTimeSpanOrDefault(buf []byte, pos *int, def time.Duration, obs ...Observer) time.Duration {
	v, err := ToTimeSpan(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToDateTimeOffset decodes the 16-byte form: 8 bytes of local wall-clock
// ticks followed by 8 bytes of zone offset ticks. Not interchangeable with
// the 10-byte compact form.
func ToDateTimeOffset(buf []byte, pos *int) (time.Time, error) {
	return ExecuteConversion(buf, pos, 16, func(b []byte) (time.Time, error) {
		local := int64(binary.NativeEndian.Uint64(b[0:8]))
		offsetTicks := int64(binary.NativeEndian.Uint64(b[8:16]))
		loc := time.FixedZone("", int(offsetTicks/TicksPerSecond))
		return TimeFromTicks(local-offsetTicks, loc), nil
	})
}

func ToDateTimeOffsetOrDefault(buf []byte, pos *int, def time.Time, obs ...Observer) time.Time {
	v, err := ToDateTimeOffset(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToDateTimeOffsetCompact decodes the 10-byte form: 8 bytes of local
// wall-clock ticks followed by a signed 16-bit zone offset in minutes.
func ToDateTimeOffsetCompact(buf []byte, pos *int) (time.Time, error) {
	return ExecuteConversion(buf, pos, 10, func(b []byte) (time.Time, error) {
		local := int64(binary.NativeEndian.Uint64(b[0:8]))
		offsetMinutes := int64(int16(binary.NativeEndian.Uint16(b[8:10])))
		loc := time.FixedZone("", int(offsetMinutes)*60)
		return TimeFromTicks(local-offsetMinutes*TicksPerMinute, loc), nil
	})
}

func ToDateTimeOffsetCompactOrDefault(buf []byte, pos *int, def time.Time, obs ...Observer) time.Time {
	v, err := ToDateTimeOffsetCompact(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToDateTimeFromUnixTime decodes 4 bytes of signed seconds since the Unix
// epoch as a UTC instant.
func ToDateTimeFromUnixTime(buf []byte, pos *int) (time.Time, error) {
	return ExecuteConversion(buf, pos, 4, func(b []byte) (time.Time, error) {
		return time.Unix(int64(int32(binary.NativeEndian.Uint32(b))), 0).UTC(), nil
	})
}

func ToDateTimeFromUnixTimeOrDefault(buf []byte, pos *int, def time.Time, obs ...Observer) time.Time {
	v, err := ToDateTimeFromUnixTime(buf, pos)
	return orDefault(v, err, def, obs)
}
