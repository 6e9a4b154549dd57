package bytecursor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opcode uint32

const (
	opNop   opcode = 1
	opRead  opcode = 2
	opWrite opcode = 3
)

var opcodes = []opcode{opNop, opRead, opWrite}

type permission uint8

const (
	permRead  permission = 1 << 0
	permWrite permission = 1 << 1
	permAdmin permission = 1 << 2
)

var permissions = []permission{permRead, permWrite, permAdmin}

func TestToEnum(t *testing.T) {
	buf := binary.NativeEndian.AppendUint32(nil, uint32(opWrite))
	pos := 0
	v, err := ToEnum(buf, &pos, opcodes)
	require.NoError(t, err)
	assert.Equal(t, opWrite, v)
	assert.Equal(t, 4, pos, "width follows the enum's underlying type")
}

func TestToEnumRejectsUndeclaredValue(t *testing.T) {
	buf := binary.NativeEndian.AppendUint32(nil, 99)
	pos := 0
	_, err := ToEnum(buf, &pos, opcodes)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "99")
	assert.Contains(t, err.Error(), "[1 2 3]")
	assert.Equal(t, 0, pos)

	assert.Equal(t, opNop, ToEnumOrDefault(buf, &pos, opcodes, opNop))
	assert.Equal(t, opNop, ToEnumOrFirst(buf, &pos, opcodes))
	assert.Equal(t, 0, pos)
}

func TestToEnumEmptyMemberSet(t *testing.T) {
	pos := 0
	_, err := ToEnum([]byte{1, 0, 0, 0}, &pos, []opcode(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToFlags(t *testing.T) {
	pos := 0
	v, err := ToFlags([]byte{byte(permRead | permAdmin)}, &pos, permissions)
	require.NoError(t, err)
	assert.Equal(t, permRead|permAdmin, v)
	assert.Equal(t, 1, pos)

	// zero is the empty flag set
	pos = 0
	v, err = ToFlags([]byte{0}, &pos, permissions)
	require.NoError(t, err)
	assert.Equal(t, permission(0), v)
}

func TestToFlagsRejectsUnknownBits(t *testing.T) {
	pos := 0
	_, err := ToFlags([]byte{0x88}, &pos, permissions)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, pos)

	assert.Equal(t, permRead, ToFlagsOrDefault([]byte{0x88}, &pos, permissions, permRead))
}

func TestEnumShortBuffer(t *testing.T) {
	pos := 0
	_, err := ToEnum([]byte{1, 0}, &pos, opcodes)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 0, pos)
}
