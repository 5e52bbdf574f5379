package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
)

// recorder is a controller backed by a flat address space that records the
// order of every access.
type recorder struct {
	mem    [0x10000]uint8
	reads  []uint16
	writes []uint16
}

func (r *recorder) Read(address uint16) uint8 {
	r.reads = append(r.reads, address)
	return r.mem[address]
}

func (r *recorder) Write(address uint16, value uint8) {
	r.writes = append(r.writes, address)
	r.mem[address] = value
}

func (r *recorder) Header() *cartridge.Header { return &cartridge.Header{} }
func (r *recorder) Load(s *types.State)       { s.ReadData(r.mem[:]) }
func (r *recorder) Save(s *types.State)       { s.WriteData(r.mem[:]) }

func TestMMU_Byte(t *testing.T) {
	rec := &recorder{}
	m := NewMMU(rec)

	m.Write(0xC000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xC000))
	assert.Equal(t, []uint16{0xC000}, rec.writes)
	assert.Equal(t, []uint16{0xC000}, rec.reads)
}

func TestMMU_Word(t *testing.T) {
	rec := &recorder{}
	m := NewMMU(rec)

	m.WriteWord(0xFFFC, 0xBEEF)
	assert.Equal(t, uint8(0xEF), rec.mem[0xFFFC])
	assert.Equal(t, uint8(0xBE), rec.mem[0xFFFD])
	assert.Equal(t, []uint16{0xFFFC, 0xFFFD}, rec.writes, "low byte is written first")

	assert.Equal(t, uint16(0xBEEF), m.ReadWord(0xFFFC))
	assert.Equal(t, []uint16{0xFFFC, 0xFFFD}, rec.reads, "low byte is read first")
}

func TestMMU_WordWraps(t *testing.T) {
	rec := &recorder{}
	m := NewMMU(rec)

	m.WriteWord(0xFFFF, 0x1234)
	assert.Equal(t, uint8(0x34), rec.mem[0xFFFF])
	assert.Equal(t, uint8(0x12), rec.mem[0x0000])
	assert.Equal(t, uint16(0x1234), m.ReadWord(0xFFFF))
}

func TestMMU_Cartridge(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0147] = uint8(cartridge.ROM)
	rom[0x0150] = 0xCD
	rom[0x0151] = 0xAB
	cart, err := cartridge.New(rom, nil)
	require.NoError(t, err)

	m := NewMMU(cart)
	assert.Equal(t, uint16(0xABCD), m.ReadWord(0x0150))
	assert.Equal(t, uint8(0xFF), m.Read(0xA000))
	assert.Equal(t, uint16(0xFFFF), m.ReadWord(0xC000))

	// rom is read only and unmapped writes are dropped
	m.WriteWord(0x0150, 0x0000)
	m.Write(0xC000, 0x01)
	assert.Equal(t, uint16(0xABCD), m.ReadWord(0x0150))
	assert.Equal(t, uint8(0xFF), m.Read(0xC000))
}

func TestMMU_State(t *testing.T) {
	rec := &recorder{}
	m := NewMMU(rec)
	m.Write(0x1234, 0x56)

	s := types.NewState()
	m.Save(s)

	other := NewMMU(&recorder{})
	restored, err := types.StateFromBytes(s.Bytes())
	require.NoError(t, err)
	other.Load(restored)
	require.NoError(t, restored.Err())
	assert.Equal(t, uint8(0x56), other.Read(0x1234))
}
