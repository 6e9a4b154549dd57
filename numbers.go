package bytecursor

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/x448/float16"

	"github.com/rawbytedev/bytecursor/internal/common"
)

// integer covers every fixed-width integer type the decoders support,
// including named types (enums) over those underlying types.
type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// toInteger is the shared fixed-width integer decode; width comes from the
// target type, byte order from the caller.
func toInteger[T integer](buf []byte, pos *int, order binary.ByteOrder) (T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return ExecuteConversion(buf, pos, size, func(b []byte) (T, error) {
		return T(common.Uint(b, order)), nil
	})
}

// ToBool decodes one byte as a boolean: zero is false, anything else true.
func ToBool(buf []byte, pos *int) (bool, error) {
	return ExecuteConversion(buf, pos, 1, func(b []byte) (bool, error) {
		return b[0] != 0, nil
	})
}

func ToBoolOrDefault(buf []byte, pos *int, def bool, obs ...Observer) bool {
	v, err := ToBool(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToByte decodes one raw byte.
func ToByte(buf []byte, pos *int) (byte, error) {
	return ExecuteConversion(buf, pos, 1, func(b []byte) (byte, error) {
		return b[0], nil
	})
}

func ToByteOrDefault(buf []byte, pos *int, def byte, obs ...Observer) byte {
	v, err := ToByte(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToSByte decodes one byte reinterpreted as a signed 8-bit integer.
func ToSByte(buf []byte, pos *int) (int8, error) {
	return ExecuteConversion(buf, pos, 1, func(b []byte) (int8, error) {
		return int8(b[0]), nil
	})
}

func ToSByteOrDefault(buf []byte, pos *int, def int8, obs ...Observer) int8 {
	v, err := ToSByte(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToChar decodes a 2-byte UTF-16 code unit in host order.
func ToChar(buf []byte, pos *int) (rune, error) {
	v, err := toInteger[uint16](buf, pos, binary.NativeEndian)
	return rune(v), err
}

func ToCharOrDefault(buf []byte, pos *int, def rune, obs ...Observer) rune {
	v, err := ToChar(buf, pos)
	return orDefault(v, err, def, obs)
}

// 16-bit integers.

func ToInt16(buf []byte, pos *int) (int16, error) {
	return toInteger[int16](buf, pos, binary.NativeEndian)
}

func ToInt16OrDefault(buf []byte, pos *int, def int16, obs ...Observer) int16 {
	v, err := ToInt16(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt16BigEndian(buf []byte, pos *int) (int16, error) {
	return toInteger[int16](buf, pos, binary.BigEndian)
}

func ToInt16BigEndianOrDefault(buf []byte, pos *int, def int16, obs ...Observer) int16 {
	v, err := ToInt16BigEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt16LittleEndian(buf []byte, pos *int) (int16, error) {
	return toInteger[int16](buf, pos, binary.LittleEndian)
}

func ToInt16LittleEndianOrDefault(buf []byte, pos *int, def int16, obs ...Observer) int16 {
	v, err := ToInt16LittleEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

// ToInt16NetworkOrder decodes big-endian, the conventional network order.
func ToInt16NetworkOrder(buf []byte, pos *int) (int16, error) {
	return ToInt16BigEndian(buf, pos)
}

func ToInt16NetworkOrderOrDefault(buf []byte, pos *int, def int16, obs ...Observer) int16 {
	return ToInt16BigEndianOrDefault(buf, pos, def, obs...)
}

func ToUint16(buf []byte, pos *int) (uint16, error) {
	return toInteger[uint16](buf, pos, binary.NativeEndian)
}

func ToUint16OrDefault(buf []byte, pos *int, def uint16, obs ...Observer) uint16 {
	v, err := ToUint16(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint16BigEndian(buf []byte, pos *int) (uint16, error) {
	return toInteger[uint16](buf, pos, binary.BigEndian)
}

func ToUint16BigEndianOrDefault(buf []byte, pos *int, def uint16, obs ...Observer) uint16 {
	v, err := ToUint16BigEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint16LittleEndian(buf []byte, pos *int) (uint16, error) {
	return toInteger[uint16](buf, pos, binary.LittleEndian)
}

func ToUint16LittleEndianOrDefault(buf []byte, pos *int, def uint16, obs ...Observer) uint16 {
	v, err := ToUint16LittleEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint16NetworkOrder(buf []byte, pos *int) (uint16, error) {
	return ToUint16BigEndian(buf, pos)
}

func ToUint16NetworkOrderOrDefault(buf []byte, pos *int, def uint16, obs ...Observer) uint16 {
	return ToUint16BigEndianOrDefault(buf, pos, def, obs...)
}

// 32-bit integers.

func ToInt32(buf []byte, pos *int) (int32, error) {
	return toInteger[int32](buf, pos, binary.NativeEndian)
}

func ToInt32OrDefault(buf []byte, pos *int, def int32, obs ...Observer) int32 {
	v, err := ToInt32(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt32BigEndian(buf []byte, pos *int) (int32, error) {
	return toInteger[int32](buf, pos, binary.BigEndian)
}

func ToInt32BigEndianOrDefault(buf []byte, pos *int, def int32, obs ...Observer) int32 {
	v, err := ToInt32BigEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt32LittleEndian(buf []byte, pos *int) (int32, error) {
	return toInteger[int32](buf, pos, binary.LittleEndian)
}

func ToInt32LittleEndianOrDefault(buf []byte, pos *int, def int32, obs ...Observer) int32 {
	v, err := ToInt32LittleEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt32NetworkOrder(buf []byte, pos *int) (int32, error) {
	return ToInt32BigEndian(buf, pos)
}

func ToInt32NetworkOrderOrDefault(buf []byte, pos *int, def int32, obs ...Observer) int32 {
	return ToInt32BigEndianOrDefault(buf, pos, def, obs...)
}

func ToUint32(buf []byte, pos *int) (uint32, error) {
	return toInteger[uint32](buf, pos, binary.NativeEndian)
}

func ToUint32OrDefault(buf []byte, pos *int, def uint32, obs ...Observer) uint32 {
	v, err := ToUint32(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint32BigEndian(buf []byte, pos *int) (uint32, error) {
	return toInteger[uint32](buf, pos, binary.BigEndian)
}

func ToUint32BigEndianOrDefault(buf []byte, pos *int, def uint32, obs ...Observer) uint32 {
	v, err := ToUint32BigEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint32LittleEndian(buf []byte, pos *int) (uint32, error) {
	return toInteger[uint32](buf, pos, binary.LittleEndian)
}

func ToUint32LittleEndianOrDefault(buf []byte, pos *int, def uint32, obs ...Observer) uint32 {
	v, err := ToUint32LittleEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint32NetworkOrder(buf []byte, pos *int) (uint32, error) {
	return ToUint32BigEndian(buf, pos)
}

func ToUint32NetworkOrderOrDefault(buf []byte, pos *int, def uint32, obs ...Observer) uint32 {
	return ToUint32BigEndianOrDefault(buf, pos, def, obs...)
}

// 64-bit integers.

func ToInt64(buf []byte, pos *int) (int64, error) {
	return toInteger[int64](buf, pos, binary.NativeEndian)
}

func ToInt64OrDefault(buf []byte, pos *int, def int64, obs ...Observer) int64 {
	v, err := ToInt64(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt64BigEndian(buf []byte, pos *int) (int64, error) {
	return toInteger[int64](buf, pos, binary.BigEndian)
}

func ToInt64BigEndianOrDefault(buf []byte, pos *int, def int64, obs ...Observer) int64 {
	v, err := ToInt64BigEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt64LittleEndian(buf []byte, pos *int) (int64, error) {
	return toInteger[int64](buf, pos, binary.LittleEndian)
}

func ToInt64LittleEndianOrDefault(buf []byte, pos *int, def int64, obs ...Observer) int64 {
	v, err := ToInt64LittleEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToInt64NetworkOrder(buf []byte, pos *int) (int64, error) {
	return ToInt64BigEndian(buf, pos)
}

func ToInt64NetworkOrderOrDefault(buf []byte, pos *int, def int64, obs ...Observer) int64 {
	return ToInt64BigEndianOrDefault(buf, pos, def, obs...)
}

func ToUint64(buf []byte, pos *int) (uint64, error) {
	return toInteger[uint64](buf, pos, binary.NativeEndian)
}

func ToUint64OrDefault(buf []byte, pos *int, def uint64, obs ...Observer) uint64 {
	v, err := ToUint64(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint64BigEndian(buf []byte, pos *int) (uint64, error) {
	return toInteger[uint64](buf, pos, binary.BigEndian)
}

func ToUint64BigEndianOrDefault(buf []byte, pos *int, def uint64, obs ...Observer) uint64 {
	v, err := ToUint64BigEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint64LittleEndian(buf []byte, pos *int) (uint64, error) {
	return toInteger[uint64](buf, pos, binary.LittleEndian)
}

func ToUint64LittleEndianOrDefault(buf []byte, pos *int, def uint64, obs ...Observer) uint64 {
	v, err := ToUint64LittleEndian(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToUint64NetworkOrder(buf []byte, pos *int) (uint64, error) {
	return ToUint64BigEndian(buf, pos)
}

func ToUint64NetworkOrderOrDefault(buf []byte, pos *int, def uint64, obs ...Observer) uint64 {
	return ToUint64BigEndianOrDefault(buf, pos, def, obs...)
}

// Floating point.

// ToFloat16 decodes a 2-byte IEEE-754 half precision value, widened to
// float32.
func ToFloat16(buf []byte, pos *int) (float32, error) {
	return ExecuteConversion(buf, pos, 2, func(b []byte) (float32, error) {
		return float16.Frombits(binary.NativeEndian.Uint16(b)).Float32(), nil
	})
}

func ToFloat16OrDefault(buf []byte, pos *int, def float32, obs ...Observer) float32 {
	v, err := ToFloat16(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToFloat32(buf []byte, pos *int) (float32, error) {
	return ExecuteConversion(buf, pos, 4, func(b []byte) (float32, error) {
		return math.Float32frombits(binary.NativeEndian.Uint32(b)), nil
	})
}

func ToFloat32OrDefault(buf []byte, pos *int, def float32, obs ...Observer) float32 {
	v, err := ToFloat32(buf, pos)
	return orDefault(v, err, def, obs)
}

func ToFloat64(buf []byte, pos *int) (float64, error) {
	return ExecuteConversion(buf, pos, 8, func(b []byte) (float64, error) {
		return math.Float64frombits(binary.NativeEndian.Uint64(b)), nil
	})
}

func ToFloat64OrDefault(buf []byte, pos *int, def float64, obs ...Observer) float64 {
	v, err := ToFloat64(buf, pos)
	return orDefault(v, err, def, obs)
}
