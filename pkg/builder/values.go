package builder

import (
	"encoding/binary"
	"math"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/rawbytedev/bytecursor"
)

// AppendTime appends the 8-byte tick+kind binary form.
func (b *Builder) AppendTime(t time.Time) *Builder {
	return b.appendUint(bytecursor.TimeToBinary(t), 8, binary.NativeEndian)
}

// AppendDuration appends 8 bytes of signed 100-nanosecond ticks.
func (b *Builder) AppendDuration(d time.Duration) *Builder {
	return b.appendUint(uint64(int64(d)/100), 8, binary.NativeEndian)
}

// AppendDateTimeOffset appends the 16-byte form: local wall-clock ticks
// followed by 8 bytes of zone offset ticks. This is a sequence of two
// atomic appends; it pairs with bytecursor.ToDateTimeOffset, not the
// compact decoder.
func (b *Builder) AppendDateTimeOffset(t time.Time) *Builder {
	_, offsetSec := t.Zone()
	offsetTicks := int64(offsetSec) * bytecursor.TicksPerSecond
	local := bytecursor.TimeToTicks(t) + offsetTicks
	return b.
		appendUint(uint64(local), 8, binary.NativeEndian).
		appendUint(uint64(offsetTicks), 8, binary.NativeEndian)
}

// AppendDateTimeOffsetCompact appends the 10-byte form: local wall-clock
// ticks followed by a signed 16-bit zone offset in minutes.
func (b *Builder) AppendDateTimeOffsetCompact(t time.Time) *Builder {
	_, offsetSec := t.Zone()
	offsetMinutes := offsetSec / 60
	local := bytecursor.TimeToTicks(t) + int64(offsetMinutes)*bytecursor.TicksPerMinute
	return b.
		appendUint(uint64(local), 8, binary.NativeEndian).
		appendUint(uint64(uint16(int16(offsetMinutes))), 2, binary.NativeEndian)
}

// AppendUnixTime appends 4 bytes of signed seconds since the Unix epoch.
func (b *Builder) AppendUnixTime(t time.Time) *Builder {
	if b.err != nil {
		return b
	}
	sec := t.Unix()
	if sec < math.MinInt32 || sec > math.MaxInt32 {
		return b.fail(errors.Wrapf(bytecursor.ErrOutOfRange, "unix time %d does not fit 32 bits", sec))
	}
	return b.appendUint(uint64(uint32(int32(sec))), 4, binary.NativeEndian)
}

// AppendGUID appends the 16 raw UUID bytes.
func (b *Builder) AppendGUID(u uuid.UUID) *Builder {
	return b.AppendBytes(u[:])
}

// AppendIP appends the raw address octets, 4 for IPv4 and 16 for IPv6.
func (b *Builder) AppendIP(a netip.Addr) *Builder {
	if b.err != nil {
		return b
	}
	if !a.IsValid() {
		return b.fail(errors.Wrap(bytecursor.ErrInvalidArgument, "invalid IP address"))
	}
	return b.AppendBytes(a.AsSlice())
}

// AppendIPEndpoint appends the address octets followed by the port in
// network byte order.
func (b *Builder) AppendIPEndpoint(ap netip.AddrPort) *Builder {
	if b.err != nil {
		return b
	}
	if !ap.Addr().IsValid() {
		return b.fail(errors.Wrap(bytecursor.ErrInvalidArgument, "invalid IP endpoint"))
	}
	return b.
		AppendBytes(ap.Addr().AsSlice()).
		appendUint(uint64(ap.Port()), 2, binary.BigEndian)
}

// AppendDecimal appends the 16-byte four-word decimal layout, words in
// host order. The words are computed before any bytes land, so a value
// that does not fit leaves the buffer untouched.
func (b *Builder) AppendDecimal(d decimal.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	lo, mid, hi, flags, err := bytecursor.DecimalBits(d)
	if err != nil {
		return b.fail(err)
	}
	return b.
		appendUint(uint64(lo), 4, binary.NativeEndian).
		appendUint(uint64(mid), 4, binary.NativeEndian).
		appendUint(uint64(hi), 4, binary.NativeEndian).
		appendUint(uint64(flags), 4, binary.NativeEndian)
}

// AppendVersion appends the 16-byte binary version form: four signed
// 32-bit fields with -1 sentinels for absent build/revision.
func (b *Builder) AppendVersion(v bytecursor.Version) *Builder {
	return b.
		appendUint(uint64(uint32(v.Major)), 4, binary.NativeEndian).
		appendUint(uint64(uint32(v.Minor)), 4, binary.NativeEndian).
		appendUint(uint64(uint32(v.Build)), 4, binary.NativeEndian).
		appendUint(uint64(uint32(v.Revision)), 4, binary.NativeEndian)
}
