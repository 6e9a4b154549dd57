package bytecursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTF8String(t *testing.T) {
	buf := []byte("hello, world")
	pos := 0
	s, err := ToUTF8String(buf, &pos, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, 5, pos)

	s, err = ToUTF8String(buf, &pos, ReadToEnd)
	require.NoError(t, err)
	assert.Equal(t, ", world", s)
	assert.Equal(t, len(buf), pos)
}

func TestToUTF8StringZeroBytes(t *testing.T) {
	pos := 3
	s, err := ToUTF8String([]byte("abcdef"), &pos, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, 3, pos, "zero-byte read must not consume")
}

func TestToUTF8StringReadToEndAtEnd(t *testing.T) {
	pos := 3
	s, err := ToUTF8String([]byte("abc"), &pos, ReadToEnd)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, 3, pos)
}

func TestToUTF8StringOutOfRange(t *testing.T) {
	pos := 1
	_, err := ToUTF8String([]byte("ab"), &pos, 5)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 1, pos)

	pos = 7
	_, err = ToUTF8String([]byte("ab"), &pos, ReadToEnd)
	require.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, "fallback", ToUTF8StringOrDefault([]byte("ab"), &pos, ReadToEnd, "fallback"))
}

func TestToASCIIString(t *testing.T) {
	pos := 0
	s, err := ToASCIIString([]byte{'o', 'k', 0xC3, 0xA9}, &pos, ReadToEnd)
	require.NoError(t, err)
	assert.Equal(t, "ok??", s)
}

func TestToUTF16String(t *testing.T) {
	// "héllo" as little-endian UTF-16
	buf := []byte{'h', 0, 0xE9, 0, 'l', 0, 'l', 0, 'o', 0}
	pos := 0
	s, err := ToUTF16String(buf, &pos, ReadToEnd)
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)
	assert.Equal(t, len(buf), pos)
}

func TestToUTF32String(t *testing.T) {
	buf := []byte{'H', 0, 0, 0, 'i', 0, 0, 0}
	pos := 0
	s, err := ToUTF32String(buf, &pos, 8)
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestToStringWithEncodingNil(t *testing.T) {
	pos := 0
	_, err := ToStringWithEncoding([]byte("x"), &pos, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
