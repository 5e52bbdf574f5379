package cartridge

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MemoryBankedCartridge5 represents an MBC5 cartridge. It supports 512 ROM
// banks and 16 RAM banks. Unlike the earlier controllers ROM bank 0 may be
// mapped into $4000-$7FFF.
//
//	$0000-$1FFF RAM enable (0x0A in the low nibble)
//	$2000-$2FFF ROM bank, lower 8 bits
//	$3000-$3FFF ROM bank, bit 8
//	$4000-$5FFF RAM bank, 4 bits
type MemoryBankedCartridge5 struct {
	memoryBankedCartridge

	romBank uint16
	ramBank uint8
}

// NewMemoryBankedCartridge5 returns a new MemoryBankedCartridge5 cartridge.
func NewMemoryBankedCartridge5(rom []byte, header *Header, l log.Logger) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		memoryBankedCartridge: newMemoryBankedCartridge(rom, header, header.RAMSize, l),
		romBank:               1,
	}
}

// ROMBank returns the bank mapped to $4000-$7FFF.
func (m *MemoryBankedCartridge5) ROMBank() int {
	return int(m.romBank)
}

// RAMBank returns the bank mapped to $A000-$BFFF.
func (m *MemoryBankedCartridge5) RAMBank() int {
	return int(m.ramBank)
}

func (m *MemoryBankedCartridge5) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // first bank is always fixed
	case address < 0x8000:
		return m.readROM(m.ROMBank(), address)
	case address >= 0xA000 && address < 0xC000:
		return m.readRAM(m.RAMBank(), address)
	}
	return 0xFF
}

func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.enableRAM(value)
	case address < 0x3000:
		m.romBank = m.romBank&0x100 | uint16(value)
	case address < 0x4000:
		m.romBank = m.romBank&0x00FF | uint16(value&0x01)<<8
	case address < 0x6000:
		m.ramBank = value & 0x0F
	case address >= 0xA000 && address < 0xC000:
		m.writeRAM(m.RAMBank(), address, value)
	default:
		m.ignored(address, value)
	}
}

func (m *MemoryBankedCartridge5) Load(s *types.State) {
	m.load(s)
	m.romBank = s.Read16()
	m.ramBank = s.Read8()
	if m.romBank > 0x1FF {
		s.Invalid("mbc5 rom bank", int(m.romBank))
		m.romBank = 1
	}
	if m.ramBank > 0x0F {
		s.Invalid("mbc5 ram bank", int(m.ramBank))
		m.ramBank = 0
	}
}

func (m *MemoryBankedCartridge5) Save(s *types.State) {
	m.save(s)
	s.Write16(m.romBank)
	s.Write8(m.ramBank)
}
