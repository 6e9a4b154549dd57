package bytecursor

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ReadToEnd as a byte count means "consume everything from the cursor to
// the end of the buffer".
const ReadToEnd = -1

var (
	utf16Codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf32Codec = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// toText handles the byte-count contract shared by all string decoders:
// ReadToEnd consumes the remainder, 0 yields "" without moving the cursor,
// anything else reads exactly numberOfBytes.
func toText(buf []byte, pos *int, numberOfBytes int, decode func([]byte) (string, error)) (string, error) {
	if pos == nil {
		return "", errors.Wrap(ErrInvalidArgument, "nil position")
	}
	if numberOfBytes == 0 {
		return "", nil
	}
	if numberOfBytes == ReadToEnd {
		if *pos < 0 {
			return "", errors.Wrapf(ErrOutOfRange, "negative position %d", *pos)
		}
		if *pos > len(buf) {
			return "", errors.Wrapf(ErrOutOfRange, "position %d past end of %d-byte buffer", *pos, len(buf))
		}
		numberOfBytes = len(buf) - *pos
		if numberOfBytes == 0 {
			return "", nil
		}
	}
	return ExecuteConversion(buf, pos, numberOfBytes, decode)
}

// ToUTF8String decodes numberOfBytes bytes as UTF-8 text.
func ToUTF8String(buf []byte, pos *int, numberOfBytes int) (string, error) {
	return toText(buf, pos, numberOfBytes, func(b []byte) (string, error) {
		return string(b), nil
	})
}

func ToUTF8StringOrDefault(buf []byte, pos *int, numberOfBytes int, def string, obs ...Observer) string {
	v, err := ToUTF8String(buf, pos, numberOfBytes)
	return orDefault(v, err, def, obs)
}

// ToASCIIString decodes 7-bit ASCII; bytes above 0x7F come out as '?'.
func ToASCIIString(buf []byte, pos *int, numberOfBytes int) (string, error) {
	return toText(buf, pos, numberOfBytes, func(b []byte) (string, error) {
		out := make([]byte, len(b))
		for i, c := range b {
			if c > 0x7F {
				c = '?'
			}
			out[i] = c
		}
		return string(out), nil
	})
}

func ToASCIIStringOrDefault(buf []byte, pos *int, numberOfBytes int, def string, obs ...Observer) string {
	v, err := ToASCIIString(buf, pos, numberOfBytes)
	return orDefault(v, err, def, obs)
}

// ToUTF16String decodes little-endian UTF-16 code units.
func ToUTF16String(buf []byte, pos *int, numberOfBytes int) (string, error) {
	return ToStringWithEncoding(buf, pos, numberOfBytes, utf16Codec)
}

func ToUTF16StringOrDefault(buf []byte, pos *int, numberOfBytes int, def string, obs ...Observer) string {
	v, err := ToUTF16String(buf, pos, numberOfBytes)
	return orDefault(v, err, def, obs)
}

// ToUTF32String decodes little-endian UTF-32 code points.
func ToUTF32String(buf []byte, pos *int, numberOfBytes int) (string, error) {
	return ToStringWithEncoding(buf, pos, numberOfBytes, utf32Codec)
}

func ToUTF32StringOrDefault(buf []byte, pos *int, numberOfBytes int, def string, obs ...Observer) string {
	v, err := ToUTF32String(buf, pos, numberOfBytes)
	return orDefault(v, err, def, obs)
}

// ToStringWithEncoding decodes text in any x/text encoding.
func ToStringWithEncoding(buf []byte, pos *int, numberOfBytes int, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", errors.Wrap(ErrInvalidArgument, "nil encoding")
	}
	return toText(buf, pos, numberOfBytes, func(b []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", errors.Wrapf(ErrFormat, "decode text: %v", err)
		}
		return string(out), nil
	})
}

func ToStringWithEncodingOrDefault(buf []byte, pos *int, numberOfBytes int, enc encoding.Encoding, def string, obs ...Observer) string {
	v, err := ToStringWithEncoding(buf, pos, numberOfBytes, enc)
	return orDefault(v, err, def, obs)
}
