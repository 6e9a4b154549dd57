package bytecursor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func versionBytes(major, minor, build, revision int32) []byte {
	buf := binary.NativeEndian.AppendUint32(nil, uint32(major))
	buf = binary.NativeEndian.AppendUint32(buf, uint32(minor))
	buf = binary.NativeEndian.AppendUint32(buf, uint32(build))
	return binary.NativeEndian.AppendUint32(buf, uint32(revision))
}

func TestToVersionTwoFieldForm(t *testing.T) {
	pos := 0
	v, err := ToVersion(versionBytes(1, 2, -1, -1), &pos)
	require.NoError(t, err)
	assert.Equal(t, NewVersion(1, 2), v)
	assert.Equal(t, 2, v.Fields())
	assert.Equal(t, "1.2", v.String())
	assert.Equal(t, 16, pos)
}

func TestToVersionThreeAndFourFieldForms(t *testing.T) {
	pos := 0
	v, err := ToVersion(versionBytes(1, 2, 3, -1), &pos)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Fields())
	assert.Equal(t, "1.2.3", v.String())

	pos = 0
	v, err = ToVersion(versionBytes(4, 5, 6, 7), &pos)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Fields())
	assert.Equal(t, "4.5.6.7", v.String())
}

func TestToVersionRejectsBadSentinels(t *testing.T) {
	// revision present while build is absent
	pos := 0
	_, err := ToVersion(versionBytes(1, 2, -1, 7), &pos)
	require.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 0, pos)

	pos = 0
	_, err = ToVersion(versionBytes(-3, 2, -1, -1), &pos)
	assert.ErrorIs(t, err, ErrFormat)

	assert.Equal(t, NewVersion(9, 9), ToVersionOrDefault(versionBytes(1, 2, -1, 7), &pos, NewVersion(9, 9)))
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("10.4.2")
	require.NoError(t, err)
	assert.Equal(t, NewVersion3(10, 4, 2), v)

	_, err = ParseVersion("7")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ParseVersion("1.2.3.4.5")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ParseVersion("1.x")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ParseVersion("1.-2")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestToVersionString(t *testing.T) {
	buf := []byte("2.10.33rest")
	pos := 0
	v, err := ToVersionString(buf, &pos, 7)
	require.NoError(t, err)
	assert.Equal(t, NewVersion3(2, 10, 33), v)
	assert.Equal(t, 7, pos)

	// unparsable text rewinds the cursor
	pos = 7
	_, err = ToVersionString(buf, &pos, ReadToEnd)
	require.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 7, pos)

	assert.Equal(t, NewVersion(0, 0), ToVersionStringOrDefault(buf, &pos, ReadToEnd, NewVersion(0, 0)))
}
