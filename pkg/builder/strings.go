package builder

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/rawbytedev/bytecursor"
)

var (
	utf16Codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf32Codec = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// AppendStringUTF8 appends the UTF-8 bytes of s, no terminator, no length.
func (b *Builder) AppendStringUTF8(s string) *Builder {
	if b.err != nil {
		return b
	}
	b.buf = append(b.buf, s...)
	return b
}

// AppendStringASCII appends s as 7-bit ASCII; runes outside ASCII encode
// as '?'.
func (b *Builder) AppendStringASCII(s string) *Builder {
	if b.err != nil {
		return b
	}
	for _, r := range s {
		if r > 0x7F {
			r = '?'
		}
		b.buf = append(b.buf, byte(r))
	}
	return b
}

// AppendStringUTF16 appends s as little-endian UTF-16 code units.
func (b *Builder) AppendStringUTF16(s string) *Builder {
	return b.AppendStringWithEncoding(s, utf16Codec)
}

// AppendStringUTF32 appends s as little-endian UTF-32 code points.
func (b *Builder) AppendStringUTF32(s string) *Builder {
	return b.AppendStringWithEncoding(s, utf32Codec)
}

// AppendStringWithEncoding appends s converted through any x/text
// encoding.
func (b *Builder) AppendStringWithEncoding(s string, enc encoding.Encoding) *Builder {
	if b.err != nil {
		return b
	}
	if enc == nil {
		return b.fail(errors.Wrap(bytecursor.ErrInvalidArgument, "nil encoding"))
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return b.fail(errors.Wrapf(bytecursor.ErrFormat, "encode text: %v", err))
	}
	b.buf = append(b.buf, out...)
	return b
}

// AppendStringHex decodes s as hexadecimal text and appends the raw
// bytes. Odd-length or non-hex input fails.
func (b *Builder) AppendStringHex(s string) *Builder {
	if b.err != nil {
		return b
	}
	if len(s)%2 != 0 {
		return b.fail(errors.Wrapf(bytecursor.ErrFormat, "hex string has odd length %d", len(s)))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return b.fail(errors.Wrapf(bytecursor.ErrFormat, "hex string: %v", err))
	}
	b.buf = append(b.buf, raw...)
	return b
}

// AppendStringBase64 decodes s as standard Base64 and appends the raw
// bytes.
func (b *Builder) AppendStringBase64(s string) *Builder {
	if b.err != nil {
		return b
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return b.fail(errors.Wrapf(bytecursor.ErrFormat, "base64 string: %v", err))
	}
	b.buf = append(b.buf, raw...)
	return b
}

// AppendStringLengthPrefixed appends a 2-byte host-order length followed
// by the UTF-8 bytes of s. An empty string writes a zero length and
// nothing else.
func (b *Builder) AppendStringLengthPrefixed(s string) *Builder {
	if b.err != nil {
		return b
	}
	if len(s) > math.MaxUint16 {
		return b.fail(errors.Wrapf(bytecursor.ErrSizeLimit, "string of %d bytes exceeds 2-byte length prefix", len(s)))
	}
	b.buf = binary.NativeEndian.AppendUint16(b.buf, uint16(len(s)))
	b.buf = append(b.buf, s...)
	return b
}

// AppendStringNullTerminated appends the UTF-8 bytes of s followed by a
// zero byte.
func (b *Builder) AppendStringNullTerminated(s string) *Builder {
	if b.err != nil {
		return b
	}
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
	return b
}
