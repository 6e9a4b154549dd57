// Package builder implements the encode direction of bytecursor: a
// growable byte buffer with type-dispatched sequential appends and a
// sticky first error, so call sites chain appends freely and check the
// outcome once at finalization.
package builder

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"

	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/internal/common"
)

// Builder accumulates encoded bytes. The zero value is usable; appends
// after a failure are no-ops, and the first failure surfaces through Err
// and ToBytes. Builders are not safe for concurrent use.
type Builder struct {
	buf []byte
	err error
}

func New() *Builder {
	return &Builder{}
}

// WithCapacity pre-sizes the backing buffer.
func WithCapacity(n int) *Builder {
	if n < 0 {
		n = 0
	}
	return &Builder{buf: make([]byte, 0, n)}
}

// Err returns the first append failure, if any.
func (b *Builder) Err() error {
	return b.err
}

// Len is the number of bytes built so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Clear truncates the buffer to empty without releasing capacity and
// resets any recorded failure.
func (b *Builder) Clear() *Builder {
	b.buf = b.buf[:0]
	b.err = nil
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// ToBytes finalizes into an independent copy of the built bytes.
func (b *Builder) ToBytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out, nil
}

// ToBytesMax is ToBytes with a maximum-size invariant on the result.
func (b *Builder) ToBytesMax(maxSize int) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.buf) > maxSize {
		return nil, errors.Wrapf(bytecursor.ErrSizeLimit, "built %d bytes, maximum %d", len(b.buf), maxSize)
	}
	return b.ToBytes()
}

// String renders the current bytes as comma-separated decimals for
// debugging.
func (b *Builder) String() string {
	return common.DebugString(b.buf)
}

// Fixed-width primitives, host order unless the name says otherwise.

func (b *Builder) AppendByte(v byte) *Builder {
	if b.err != nil {
		return b
	}
	b.buf = append(b.buf, v)
	return b
}

func (b *Builder) AppendSByte(v int8) *Builder {
	return b.AppendByte(byte(v))
}

func (b *Builder) AppendBool(v bool) *Builder {
	if v {
		return b.AppendByte(1)
	}
	return b.AppendByte(0)
}

// AppendBytes appends a raw byte sequence verbatim. A nil slice appends
// nothing.
func (b *Builder) AppendBytes(p []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.buf = append(b.buf, p...)
	return b
}

// AppendChar appends a UTF-16 code unit. Code points beyond the basic
// multilingual plane do not fit a single unit.
func (b *Builder) AppendChar(c rune) *Builder {
	if b.err != nil {
		return b
	}
	if c < 0 || c > 0xFFFF {
		return b.fail(errors.Wrapf(bytecursor.ErrInvalidArgument, "rune %U does not fit a UTF-16 code unit", c))
	}
	return b.appendUint(uint64(c), 2, binary.NativeEndian)
}

func (b *Builder) appendUint(x uint64, width int, order binary.AppendByteOrder) *Builder {
	if b.err != nil {
		return b
	}
	b.buf = common.AppendUint(b.buf, x, width, order)
	return b
}

func (b *Builder) AppendInt16(v int16) *Builder {
	return b.appendUint(uint64(uint16(v)), 2, binary.NativeEndian)
}

func (b *Builder) AppendUint16(v uint16) *Builder {
	return b.appendUint(uint64(v), 2, binary.NativeEndian)
}

func (b *Builder) AppendInt32(v int32) *Builder {
	return b.appendUint(uint64(uint32(v)), 4, binary.NativeEndian)
}

func (b *Builder) AppendUint32(v uint32) *Builder {
	return b.appendUint(uint64(v), 4, binary.NativeEndian)
}

func (b *Builder) AppendInt64(v int64) *Builder {
	return b.appendUint(uint64(v), 8, binary.NativeEndian)
}

func (b *Builder) AppendUint64(v uint64) *Builder {
	return b.appendUint(v, 8, binary.NativeEndian)
}

// Endianness-explicit integer appends.

func (b *Builder) AppendInt16BigEndian(v int16) *Builder {
	return b.appendUint(uint64(uint16(v)), 2, binary.BigEndian)
}

func (b *Builder) AppendUint16BigEndian(v uint16) *Builder {
	return b.appendUint(uint64(v), 2, binary.BigEndian)
}

func (b *Builder) AppendInt32BigEndian(v int32) *Builder {
	return b.appendUint(uint64(uint32(v)), 4, binary.BigEndian)
}

func (b *Builder) AppendUint32BigEndian(v uint32) *Builder {
	return b.appendUint(uint64(v), 4, binary.BigEndian)
}

func (b *Builder) AppendInt64BigEndian(v int64) *Builder {
	return b.appendUint(uint64(v), 8, binary.BigEndian)
}

func (b *Builder) AppendUint64BigEndian(v uint64) *Builder {
	return b.appendUint(v, 8, binary.BigEndian)
}

func (b *Builder) AppendInt16LittleEndian(v int16) *Builder {
	return b.appendUint(uint64(uint16(v)), 2, binary.LittleEndian)
}

func (b *Builder) AppendUint16LittleEndian(v uint16) *Builder {
	return b.appendUint(uint64(v), 2, binary.LittleEndian)
}

func (b *Builder) AppendInt32LittleEndian(v int32) *Builder {
	return b.appendUint(uint64(uint32(v)), 4, binary.LittleEndian)
}

func (b *Builder) AppendUint32LittleEndian(v uint32) *Builder {
	return b.appendUint(uint64(v), 4, binary.LittleEndian)
}

func (b *Builder) AppendInt64LittleEndian(v int64) *Builder {
	return b.appendUint(uint64(v), 8, binary.LittleEndian)
}

func (b *Builder) AppendUint64LittleEndian(v uint64) *Builder {
	return b.appendUint(v, 8, binary.LittleEndian)
}

// Floating point.

func (b *Builder) AppendFloat16(v float32) *Builder {
	return b.appendUint(uint64(float16.Fromfloat32(v).Bits()), 2, binary.NativeEndian)
}

func (b *Builder) AppendFloat32(v float32) *Builder {
	return b.appendUint(uint64(math.Float32bits(v)), 4, binary.NativeEndian)
}

func (b *Builder) AppendFloat64(v float64) *Builder {
	return b.appendUint(math.Float64bits(v), 8, binary.NativeEndian)
}

// Bulk helpers.

// AppendRepeat appends v n times.
func (b *Builder) AppendRepeat(v byte, n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		return b.fail(errors.Wrapf(bytecursor.ErrInvalidArgument, "repeat count %d", n))
	}
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, v)
	}
	return b
}

// AppendPattern appends pattern n times.
func (b *Builder) AppendPattern(pattern []byte, n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		return b.fail(errors.Wrapf(bytecursor.ErrInvalidArgument, "repeat count %d", n))
	}
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, pattern...)
	}
	return b
}

// AppendIf dispatches v through Append only when cond holds.
func (b *Builder) AppendIf(cond bool, v any) *Builder {
	if !cond {
		return b
	}
	return b.Append(v)
}

// Append is the runtime type-dispatch entry point. Each value encodes per
// its type; nils append nothing; named integer types (enums) resolve
// through their underlying kind and width; anything else records an
// invalid-argument failure naming the type.
func (b *Builder) Append(values ...any) *Builder {
	for _, v := range values {
		if b.err != nil {
			return b
		}
		b.appendValue(v)
	}
	return b
}

func (b *Builder) appendValue(v any) *Builder {
	if v == nil {
		return b
	}
	switch x := v.(type) {
	case byte:
		return b.AppendByte(x)
	case int8:
		return b.AppendSByte(x)
	case bool:
		return b.AppendBool(x)
	case []byte:
		return b.AppendBytes(x)
	case int16:
		return b.AppendInt16(x)
	case uint16:
		return b.AppendUint16(x)
	case int32:
		return b.AppendInt32(x)
	case uint32:
		return b.AppendUint32(x)
	case int64:
		return b.AppendInt64(x)
	case uint64:
		return b.AppendUint64(x)
	case float32:
		return b.AppendFloat32(x)
	case float64:
		return b.AppendFloat64(x)
	case string:
		return b.AppendStringUTF8(x)
	}
	// enums and other named integer types land here
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return b.appendUint(uint64(rv.Int()), int(rv.Type().Size()), binary.NativeEndian)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return b.appendUint(rv.Uint(), int(rv.Type().Size()), binary.NativeEndian)
	case reflect.Bool:
		return b.AppendBool(rv.Bool())
	}
	return b.fail(errors.Wrapf(bytecursor.ErrInvalidArgument, "unsupported append type %T", v))
}

// Stream bridging.

// ReadFrom appends everything r yields until EOF, implementing
// io.ReaderFrom. The read error, if any, is returned and recorded.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	var total int64
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		b.buf = append(b.buf, chunk[:n]...)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			b.fail(err)
			return total, err
		}
	}
}

// ReadFromN appends up to n bytes from r, stopping early at EOF.
func (b *Builder) ReadFromN(r io.Reader, n int64) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		return b.fail(errors.Wrapf(bytecursor.ErrInvalidArgument, "read count %d", n))
	}
	_, err := b.ReadFrom(io.LimitReader(r, n))
	if err != nil {
		return b.fail(err)
	}
	return b
}

// WriteTo writes the built bytes to w, implementing io.WriterTo.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	n, err := w.Write(b.buf)
	return int64(n), err
}
