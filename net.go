package bytecursor

import (
	"encoding/binary"
	"net/netip"
)

// ToIPv4 decodes 4 raw address octets.
func ToIPv4(buf []byte, pos *int) (netip.Addr, error) {
	return ExecuteConversion(buf, pos, 4, func(b []byte) (netip.Addr, error) {
		return netip.AddrFrom4([4]byte(b)), nil
	})
}

func ToIPv4OrDefault(buf []byte, pos *int, def netip.Addr, obs ...Observer) netip.Addr {
	v, err := ToIPv4(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToIPv6 decodes 16 raw address octets.
func ToIPv6(buf []byte, pos *int) (netip.Addr, error) {
	return ExecuteConversion(buf, pos, 16, func(b []byte) (netip.Addr, error) {
		return netip.AddrFrom16([16]byte(b)), nil
	})
}

func ToIPv6OrDefault(buf []byte, pos *int, def netip.Addr, obs ...Observer) netip.Addr {
	v, err := ToIPv6(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToIPv4Endpoint decodes 4 address octets plus a 2-byte port in network
// byte order, 6 bytes in total.
func ToIPv4Endpoint(buf []byte, pos *int) (netip.AddrPort, error) {
	return ExecuteConversion(buf, pos, 6, func(b []byte) (netip.AddrPort, error) {
		addr := netip.AddrFrom4([4]byte(b[:4]))
		return netip.AddrPortFrom(addr, binary.BigEndian.Uint16(b[4:6])), nil
	})
}

func ToIPv4EndpointOrDefault(buf []byte, pos *int, def netip.AddrPort, obs ...Observer) netip.AddrPort {
	v, err := ToIPv4Endpoint(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToIPv6Endpoint decodes 16 address octets plus a 2-byte port in network
// byte order, 18 bytes in total.
func ToIPv6Endpoint(buf []byte, pos *int) (netip.AddrPort, error) {
	return ExecuteConversion(buf, pos, 18, func(b []byte) (netip.AddrPort, error) {
		addr := netip.AddrFrom16([16]byte(b[:16]))
		return netip.AddrPortFrom(addr, binary.BigEndian.Uint16(b[16:18])), nil
	})
}

func ToIPv6EndpointOrDefault(buf []byte, pos *int, def netip.AddrPort, obs ...Observer) netip.AddrPort {
	v, err := ToIPv6Endpoint(buf, pos)
	return orDefault(v, err, def, obs)
}
