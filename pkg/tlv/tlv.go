// Package tlv layers a small wire protocol on top of bytecursor:
// type-length-value records, marker- and length-delimited frames, and
// trailing byte checksums.
//
// Record layout: [type:1][length:2 host order][value:length].
//
// Parse failures carry both this package's sentinels and the underlying
// bytecursor sentinel, so errors.Is works against either.
package tlv

import (
	"fmt"
	"iter"
	"math"

	"github.com/pkg/errors"

	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/pkg/builder"
)

// HeaderLen is the fixed record header size: 1 type byte + 2 length bytes.
const HeaderLen = 3

var (
	ErrShortRecord  = errors.New("tlv: short record")
	ErrValueTooLong = errors.New("tlv: value exceeds 65535 bytes")
)

// Record is one immutable type-length-value triple. Length always equals
// len(Value).
type Record struct {
	Type   byte
	Length uint16
	Value  []byte
}

// Equal is structural equality over type, length and value bytes.
func (r Record) Equal(o Record) bool {
	return r.Type == o.Type && r.Length == o.Length && bytecursor.Equal(r.Value, o.Value)
}

// Parse reads one record from buf at *pos, advancing the cursor by
// 3+length on success and leaving it untouched on failure. The value is
// copied out, never aliased.
func Parse(buf []byte, pos *int) (Record, error) {
	if pos == nil {
		return Record{}, errors.Wrap(bytecursor.ErrInvalidArgument, "nil position")
	}
	start := *pos
	typ, err := bytecursor.ToByte(buf, pos)
	if err != nil {
		// both sentinels stay in the chain so callers can match either family
		return Record{}, fmt.Errorf("%w: type byte at position %d: %w", ErrShortRecord, start, err)
	}
	length, err := bytecursor.ToUint16(buf, pos)
	if err != nil {
		*pos = start
		return Record{}, fmt.Errorf("%w: length field at position %d: %w", ErrShortRecord, start, err)
	}
	value, err := bytecursor.SubArray(buf, *pos, int(length))
	if err != nil {
		*pos = start
		return Record{}, fmt.Errorf("%w: value of %d bytes at position %d: %w", ErrShortRecord, length, *pos, err)
	}
	*pos += int(length)
	return Record{Type: typ, Length: length, Value: value}, nil
}

// Records iterates lazily over the records in buf from position 0,
// stopping without error on trailing incomplete data.
func Records(buf []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		pos := 0
		for len(buf)-pos >= HeaderLen {
			rec, err := Parse(buf, &pos)
			if err != nil {
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// ParseAll collects Records into a slice.
func ParseAll(buf []byte) []Record {
	var out []Record
	for rec := range Records(buf) {
		out = append(out, rec)
	}
	return out
}

// Create emits one record for the given type and value.
func Create(typ byte, value []byte) ([]byte, error) {
	if len(value) > math.MaxUint16 {
		return nil, errors.Wrapf(ErrValueTooLong, "value holds %d bytes", len(value))
	}
	return builder.WithCapacity(HeaderLen + len(value)).
		AppendByte(typ).
		AppendUint16(uint16(len(value))).
		AppendBytes(value).
		ToBytes()
}
