package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RoundTrip(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0xBEEF)
	s.Write32(0xDEADBEEF)
	s.Write64(0x0123456789ABCDEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	r, err := StateFromBytes(s.Bytes())
	require.NoError(t, err)

	assert.Equal(t, uint8(0x12), r.Read8())
	assert.Equal(t, uint16(0xBEEF), r.Read16())
	assert.Equal(t, uint32(0xDEADBEEF), r.Read32())
	assert.Equal(t, uint64(0x0123456789ABCDEF), r.Read64())
	assert.True(t, r.ReadBool())
	data := make([]byte, 3)
	r.ReadData(data)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.NoError(t, r.Err())
}

func TestState_Corrupt(t *testing.T) {
	s := NewState()
	s.Write16(0x1234)
	b := s.Bytes()
	b[0] ^= 0xFF

	_, err := StateFromBytes(b)
	assert.ErrorIs(t, err, ErrStateChecksum)

	_, err = StateFromBytes([]byte{1, 2})
	assert.ErrorIs(t, err, ErrShortState)
}

func TestState_ShortRead(t *testing.T) {
	s := NewState()
	s.Write8(0x01)

	r, err := StateFromBytes(s.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), r.Read8())
	assert.Equal(t, uint16(0), r.Read16())
	assert.ErrorIs(t, r.Err(), ErrShortState)

	// the first error sticks
	r.Read8()
	assert.ErrorIs(t, r.Err(), ErrShortState)
}

func TestState_DataLengthMismatch(t *testing.T) {
	s := NewState()
	s.WriteData([]byte{1, 2, 3, 4})

	r, err := StateFromBytes(s.Bytes())
	require.NoError(t, err)
	r.ReadData(make([]byte, 2))
	assert.ErrorIs(t, r.Err(), ErrShortState)
}

func TestState_Invalid(t *testing.T) {
	s := NewState()
	s.Write8(0x09)

	r, err := StateFromBytes(s.Bytes())
	require.NoError(t, err)
	r.Invalid("register", int(r.Read8()))
	assert.ErrorIs(t, r.Err(), ErrInvalidState)
	assert.Contains(t, r.Err().Error(), "register 0x9")

	// a later short read does not replace the first error
	r.Read8()
	assert.ErrorIs(t, r.Err(), ErrInvalidState)
	assert.NotErrorIs(t, r.Err(), ErrShortState)
}
